// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is one of trace, debug, info, warn, error, disabled. Default: info
	Level string

	// Format is json or console. Default: json
	Format string

	// Caller adds file:line to every entry
	Caller bool

	// Output defaults to os.Stderr
	Output io.Writer
}

// global is the process logger shared by the package-level helpers.
var global struct {
	sync.RWMutex
	logger zerolog.Logger
}

//nolint:gochecknoinits // package helpers must log before Init runs
func init() {
	global.logger = build(Config{})
}

// Init reconfigures the process logger. Later calls replace earlier ones.
func Init(cfg Config) {
	logger := build(cfg)

	global.Lock()
	defer global.Unlock()
	global.logger = logger
}

// SetLogger installs l as the process logger and returns the one it replaced.
//
//nolint:gocritic // zerolog.Logger is passed by value
func SetLogger(l zerolog.Logger) zerolog.Logger {
	global.Lock()
	defer global.Unlock()
	prev := global.logger
	global.logger = l
	return prev
}

func current() *zerolog.Logger {
	global.RLock()
	defer global.RUnlock()
	logger := global.logger
	return &logger
}

// build sets the zerolog globals for cfg and returns the configured logger.
func build(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	builder := zerolog.New(out).With().Timestamp()
	if cfg.Caller {
		builder = builder.Caller()
	}
	return builder.Logger()
}

// parseLevel maps a configured level name to zerolog, defaulting to info.
func parseLevel(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Debug starts a debug entry on the process logger.
func Debug() *zerolog.Event { return current().Debug() }

// Info starts an info entry on the process logger.
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
func Info() *zerolog.Event { return current().Info() }

// Warn starts a warning entry on the process logger.
func Warn() *zerolog.Event { return current().Warn() }

// Error starts an error entry on the process logger.
func Error() *zerolog.Event { return current().Error() }

// Fatal starts a fatal entry; the process exits after it is written.
func Fatal() *zerolog.Event { return current().Fatal() }

// Err starts an error entry carrying err.
func Err(err error) *zerolog.Event { return current().Err(err) }
