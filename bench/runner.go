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

package bench

import (
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortlab/sort"
	"github.com/ajroetker/go-sortlab/workerpool"
)

// Options configures a Runner.
type Options struct {
	// Seed is the base seed; round r of a plan uses Seed+r.
	Seed uint64

	// Verify checks every output against a reference copy of its input.
	Verify bool

	// Memory samples process memory before and after each sort call.
	// Nil selects the rss sampler.
	Memory MemorySampler

	// Pool is used for input generation and verification. May be nil.
	Pool *workerpool.Pool

	// Logger receives one line per result. Nil disables logging.
	Logger *zap.Logger
}

// Plan is the cross product a suite runs: every algorithm for every
// (size, pattern, round).
type Plan struct {
	Algorithms []sort.Algorithm
	Sizes      []int
	Patterns   []Pattern
	Repeat     int
}

// Len returns the number of runs in the plan.
func (p Plan) Len() int {
	return len(p.Algorithms) * len(p.Sizes) * len(p.patterns()) * p.repeat()
}

func (p Plan) patterns() []Pattern {
	if len(p.Patterns) == 0 {
		return []Pattern{PatternRandom}
	}
	return p.Patterns
}

func (p Plan) repeat() int {
	return max(p.Repeat, 1)
}

// Runner times sort calls one at a time.
type Runner struct {
	opts Options
	now  func() time.Time
}

// NewRunner returns a runner for opts.
func NewRunner(opts Options) *Runner {
	if opts.Memory == nil {
		opts.Memory = rssSampler{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Runner{opts: opts, now: time.Now}
}

// Run executes the plan sequentially. The context is checked between runs;
// on cancellation the results gathered so far are returned with ctx.Err().
// Every algorithm sorts an identical input for a given size, pattern and
// round.
func (r *Runner) Run(ctx context.Context, plan Plan) ([]Result, error) {
	results := make([]Result, 0, plan.Len())
	for round := range plan.repeat() {
		seed := r.opts.Seed + uint64(round)
		gen := NewGenerator(seed, r.opts.Pool)
		for _, size := range plan.Sizes {
			for _, pattern := range plan.patterns() {
				for _, algo := range plan.Algorithms {
					if err := ctx.Err(); err != nil {
						return results, err
					}
					res, err := r.run(gen, algo, size, pattern)
					if err != nil {
						return results, err
					}
					res.Round = round
					res.Seed = seed
					results = append(results, res)
				}
			}
		}
	}
	return results, nil
}

// RunOne generates an input of size elements and times algo on it.
func (r *Runner) RunOne(algo sort.Algorithm, size int, pattern Pattern) (Result, error) {
	res, err := r.run(NewGenerator(r.opts.Seed, r.opts.Pool), algo, size, pattern)
	res.Seed = r.opts.Seed
	return res, err
}

func (r *Runner) run(gen *Generator, algo sort.Algorithm, size int, pattern Pattern) (Result, error) {
	if size < 0 {
		return Result{}, errors.Wrapf(ErrInvalidSize, "%d", size)
	}
	if !slices.Contains(Patterns(), pattern) {
		return Result{}, errors.Wrapf(ErrUnknownPattern, "%q", pattern)
	}

	data := gen.Generate(size, pattern)
	var ref []int
	if r.opts.Verify {
		ref = slices.Clone(data)
	}

	before, err := r.opts.Memory.ResidentBytes()
	if err != nil {
		return Result{}, errors.Wrap(err, "sample memory before sort")
	}

	start := r.now()
	algo.Sort(data)
	elapsed := r.now().Sub(start)

	after, err := r.opts.Memory.ResidentBytes()
	if err != nil {
		return Result{}, errors.Wrap(err, "sample memory after sort")
	}

	res := Result{
		Algorithm: algo.Name,
		Size:      size,
		Pattern:   pattern,
		Elapsed:   elapsed,
		MemBefore: before,
		MemAfter:  after,
		MemDelta:  memDelta(before, after),
	}

	if r.opts.Verify {
		if err := verify(r.opts.Pool, data, ref); err != nil {
			return res, errors.Wrapf(err, "%s sort, size %d, %s input", algo.Name, size, pattern)
		}
		res.Verified = true
	}

	r.opts.Logger.Info("sort finished",
		zap.String("algorithm", res.Algorithm),
		zap.Int("size", res.Size),
		zap.String("pattern", string(res.Pattern)),
		zap.Duration("elapsed", res.Elapsed),
		zap.Uint64("mem_before_kb", kb(res.MemBefore)),
		zap.Uint64("mem_after_kb", kb(res.MemAfter)),
		zap.Int64("mem_delta_kb", kb(res.MemDelta)),
		zap.Bool("verified", res.Verified),
	)
	return res, nil
}
