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

	"github.com/ajroetker/go-sortlab/config"
)

func newSuiteCommand(root *rootOptions) *cobra.Command {
	var (
		path   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run the algorithm x size x pattern grid described by a TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger, err := root.buildLogger(cmd, &cfg.Log)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "suite file (required)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "override the file's output format")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
