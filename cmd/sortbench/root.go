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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortlab/logutil"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	log    logutil.LogConfig
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark classical in-memory sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.log.Level, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.log.Format, "log-format", logutil.FormatConsole, "log encoding (console, json)")
	flags.StringVar(&opts.log.Filename, "log-file", "", "also write JSON logs to this file, rotated by size")

	cmd.AddCommand(
		newRunCommand(opts),
		newSuiteCommand(opts),
		newListCommand(),
		newVersionCommand(),
	)
	return cmd
}

// buildLogger merges fileCfg with any log flags set on the command line.
// Flags win.
func (o *rootOptions) buildLogger(cmd *cobra.Command, fileCfg *logutil.LogConfig) (*zap.Logger, error) {
	cfg := o.log
	if fileCfg != nil {
		cfg = *fileCfg
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.Level = o.log.Level
		}
		if flags.Changed("log-format") {
			cfg.Format = o.log.Format
		}
		if flags.Changed("log-file") {
			cfg.Filename = o.log.Filename
		}
	}
	logger, err := logutil.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	o.logger = logger
	return logger, nil
}
