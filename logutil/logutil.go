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

// Package logutil builds the zap logger used by sortbench.
package logutil

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig controls level, encoding and the optional rotating file sink.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Fill sets defaults for empty fields.
func (c *LogConfig) Fill() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Filename != "" && c.MaxSize == 0 {
		c.MaxSize = 64
	}
}

// Validate rejects unknown levels and formats.
func (c *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return errors.Wrapf(err, "log level %q", c.Level)
	}
	switch c.Format {
	case FormatConsole, FormatJSON:
	default:
		return errors.Newf("unknown log format %q", c.Format)
	}
	if c.MaxSize < 0 || c.MaxDays < 0 || c.MaxBackups < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}

// NewLogger builds a logger writing to stderr and, when Filename is set,
// to a lumberjack-rotated file.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	cfg.Fill()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(cfg.Level)

	encoder := getLoggerEncoder(cfg.Format)
	core := zapcore.NewCore(encoder, getConsoleSyncer(), zap.NewAtomicLevelAt(level))
	if cfg.Filename != "" {
		file := zapcore.NewCore(getLoggerEncoder(FormatJSON), getFileSyncer(cfg), zap.NewAtomicLevelAt(level))
		core = zapcore.NewTee(core, file)
	}
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder
	if strings.EqualFold(format, FormatJSON) {
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func getFileSyncer(cfg LogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}
