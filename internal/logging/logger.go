// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package logging provides the process-wide zerolog logger for Sakefinder.
//
// JSON output is the default; console output is available for local runs.
// Request and correlation IDs travel in the context and are attached by Ctx.
// Adapters expose the same logger to log/slog consumers (the supervisor) and
// to watermill.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Info().Str("session_id", id).Msg("Quiz completed")
//
//	log := logging.WithComponent("recommend")
//	log.Debug().Int("candidates", n).Msg("Filtered catalog")
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error, fatal, panic, disabled.
	// Default: info
	Level string

	// Format is json or console.
	// Default: json
	Format string

	// Caller adds file:line to every event.
	// Default: false
	Caller bool

	// Timestamp adds a time field.
	// Default: true
	Timestamp bool

	// Output is where events go.
	// Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// levels maps accepted level names to zerolog levels.
var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

// global is swapped whole by Init and SetLogger; event helpers load it once.
var global atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // logging must work before Init is called
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "message"
	Init(DefaultConfig())
}

// Init configures the global logger. Safe to call more than once.
func Init(cfg Config) {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	out := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	global.Store(&l)
}

// parseLevel falls back to info for unknown names.
func parseLevel(level string) zerolog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// ValidLevel reports whether level is a recognized level name.
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(level)]
	return ok
}

func current() *zerolog.Logger {
	return global.Load()
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	return *current()
}

// SetLogger replaces the global logger, mostly for tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	global.Store(&l)
}

// With starts a child logger context.
func With() zerolog.Context { return current().With() }

// Debug starts a debug event.
func Debug() *zerolog.Event { return current().Debug() }

// Info starts an info event.
func Info() *zerolog.Event { return current().Info() }

// Warn starts a warn event.
func Warn() *zerolog.Event { return current().Warn() }

// Error starts an error event.
func Error() *zerolog.Event { return current().Error() }

// Fatal starts a fatal event; os.Exit(1) follows Msg.
func Fatal() *zerolog.Event { return current().Fatal() }

// Err starts an error-level event carrying err, or info when err is nil.
func Err(err error) *zerolog.Event { return current().Err(err) }

// SetLevelString changes the global level at runtime. Unknown names mean info.
func SetLevelString(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
}

// WithComponent returns a child logger tagged with component.
//
//	log := logging.WithComponent("catalog")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}

// NewTestLogger returns a JSON logger writing to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
