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

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortlab/bench"
	"github.com/ajroetker/go-sortlab/config"
)

func newRunCommand(root *rootOptions) *cobra.Command {
	cfg := &config.Config{}
	var (
		size    int
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time one or all algorithms on a generated array of --size elements",
		Example: "  sortbench run -a insertion -n 10000\n" +
			"  sortbench run -a all -n 5000 --verify --format csv",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.buildLogger(cmd, nil)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				cfg.Seed = uint64(time.Now().UnixNano())
			}
			cfg.Sizes = []int{size}
			cfg.Patterns = []string{pattern}
			cfg.Log = root.log
			cfg.Fill()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return execute(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&cfg.Algorithms, "algorithm", "a", []string{bench.AllAlgorithms}, "algorithm name(s), or \"all\"")
	flags.IntVarP(&size, "size", "n", 1000, "array size")
	flags.StringVarP(&pattern, "pattern", "p", string(bench.PatternRandom), "input pattern (random, sorted, reversed, equal)")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "random seed (default: derived from the clock)")
	flags.IntVar(&cfg.Repeat, "repeat", 1, "number of rounds, each with a fresh input")
	flags.BoolVar(&cfg.Verify, "verify", false, "check every output is a sorted permutation of its input")
	flags.StringVar(&cfg.MemorySource, "memory", bench.MemoryRSS, "memory source (rss, heap)")
	flags.IntVar(&cfg.Workers, "workers", 0, "workers for input generation and verification (0: GOMAXPROCS)")
	flags.StringVarP(&cfg.Format, "format", "o", bench.FormatTable, "output format (table, json, csv)")
	flags.StringVar(&cfg.PromTextfile, "prom-textfile", "", "also write results as a Prometheus textfile")
	return cmd
}
