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
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortlab/bench"
	"github.com/ajroetker/go-sortlab/config"
	"github.com/ajroetker/go-sortlab/platform"
	"github.com/ajroetker/go-sortlab/workerpool"
)

// execute runs the suite described by cfg and renders it to out. Partial
// results are still rendered when the suite is interrupted or fails.
func execute(ctx context.Context, out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}
	mem, err := bench.NewMemorySampler(cfg.MemorySource)
	if err != nil {
		return err
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	info := platform.Describe()
	logger.Info("starting benchmark",
		zap.Stringer("platform", info),
		zap.Int("runs", plan.Len()),
		zap.Uint64("seed", cfg.Seed),
		zap.String("memory_source", cfg.MemorySource),
		zap.Int("workers", pool.NumWorkers()),
	)

	runner := bench.NewRunner(bench.Options{
		Seed:   cfg.Seed,
		Verify: cfg.Verify,
		Memory: mem,
		Pool:   pool,
		Logger: logger,
	})
	results, runErr := runner.Run(ctx, plan)
	if runErr != nil {
		logger.Warn("benchmark stopped early", zap.Error(runErr), zap.Int("completed", len(results)))
	}

	rep := bench.Report{Platform: info, Results: results}
	if err := bench.Render(out, rep, cfg.Format); err != nil {
		return errors.CombineErrors(runErr, err)
	}
	if cfg.PromTextfile != "" {
		if err := bench.WritePromTextfile(cfg.PromTextfile, results); err != nil {
			return errors.CombineErrors(runErr, err)
		}
		logger.Info("wrote prometheus textfile", zap.String("path", cfg.PromTextfile))
	}
	return runErr
}
