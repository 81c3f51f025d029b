// Copyright 2025 go-sortlab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads sortbench suite files.
//
// A suite file is TOML:
//
//	algorithms = ["insertion", "shell", "merge"]
//	sizes = [1000, 10000, 100000]
//	patterns = ["random", "sorted"]
//	seed = 42
//	repeat = 3
//	verify = true
//	memory-source = "rss"
//	format = "table"
//
//	[log]
//	level = "info"
//	filename = "sortbench.log"
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortlab/bench"
	"github.com/ajroetker/go-sortlab/logutil"
	"github.com/ajroetker/go-sortlab/sort"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	defaultSize   = 1000
	defaultRepeat = 1
)

// Config describes one benchmark suite.
type Config struct {
	Algorithms   []string `toml:"algorithms"`
	Sizes        []int    `toml:"sizes"`
	Patterns     []string `toml:"patterns"`
	Seed         uint64   `toml:"seed"`
	Repeat       int      `toml:"repeat"`
	Verify       bool     `toml:"verify"`
	MemorySource string   `toml:"memory-source"`
	// Workers sizes the generation/verification pool; 0 means GOMAXPROCS.
	Workers      int    `toml:"workers"`
	Format       string `toml:"format"`
	PromTextfile string `toml:"prom-textfile"`

	Log logutil.LogConfig `toml:"log"`
}

// Load decodes the TOML file at path, fills defaults and validates it.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "%s: unknown keys %v", path, undecoded)
	}
	cfg.Fill()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return &cfg, nil
}

// Fill sets defaults for unset fields.
func (c *Config) Fill() {
	if len(c.Algorithms) == 0 {
		c.Algorithms = sort.Names()
	}
	if len(c.Sizes) == 0 {
		c.Sizes = []int{defaultSize}
	}
	if len(c.Patterns) == 0 {
		c.Patterns = []string{string(bench.PatternRandom)}
	}
	if c.Repeat == 0 {
		c.Repeat = defaultRepeat
	}
	if c.MemorySource == "" {
		c.MemorySource = bench.MemoryRSS
	}
	if c.Format == "" {
		c.Format = bench.FormatTable
	}
	c.Log.Fill()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := bench.ResolveAlgorithms(c.Algorithms); err != nil {
		return invalid(err, "algorithms")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return errors.Wrapf(ErrInvalidConfig, "negative size %d", n)
		}
	}
	if dup := lo.FindDuplicates(c.Sizes); len(dup) > 0 {
		return errors.Wrapf(ErrInvalidConfig, "duplicate sizes %v", dup)
	}
	patterns, err := bench.ParsePatterns(c.Patterns)
	if err != nil {
		return invalid(err, "patterns")
	}
	if dup := lo.FindDuplicates(patterns); len(dup) > 0 {
		return errors.Wrapf(ErrInvalidConfig, "duplicate patterns %v", dup)
	}
	if c.Repeat < 1 {
		return errors.Wrapf(ErrInvalidConfig, "repeat %d, want >= 1", c.Repeat)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers %d, want >= 0", c.Workers)
	}
	if _, err := bench.NewMemorySampler(c.MemorySource); err != nil {
		return invalid(err, "memory-source")
	}
	if _, err := bench.ParseFormat(c.Format); err != nil {
		return invalid(err, "format")
	}
	if err := c.Log.Validate(); err != nil {
		return invalid(err, "log")
	}
	return nil
}

// invalid marks err as ErrInvalidConfig while keeping its own cause chain.
func invalid(err error, field string) error {
	return errors.Mark(errors.Wrap(err, field), ErrInvalidConfig)
}

// Plan builds the benchmark plan. The config must be valid.
func (c *Config) Plan() (bench.Plan, error) {
	algos, err := bench.ResolveAlgorithms(c.Algorithms)
	if err != nil {
		return bench.Plan{}, err
	}
	patterns, err := bench.ParsePatterns(c.Patterns)
	if err != nil {
		return bench.Plan{}, err
	}
	return bench.Plan{
		Algorithms: algos,
		Sizes:      c.Sizes,
		Patterns:   patterns,
		Repeat:     c.Repeat,
	}, nil
}
