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

// Command sortbench times the classical sorting algorithms and reports the
// process memory sampled around each call.
//
// Usage:
//
//	sortbench run -a shell -n 100000                 # one algorithm, one size
//	sortbench run -a all -n 20000 --verify           # every algorithm
//	sortbench run -a merge -n 1000000 --format json
//	sortbench suite --config suite.toml              # sizes x algorithms x patterns
//	sortbench list
//
// Results go to stdout; log lines go to stderr (and --log-file when set).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
