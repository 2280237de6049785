// Package logging holds the process logger for bsearch-bench, built on zerolog.
//
// Standard output carries the CSV report and standard error carries the
// allocation-failure diagnostic, so the logger stays at warn level unless
// diagnostics are requested.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps the normal path silent.
const DefaultLevel = zerolog.WarnLevel

var (
	logger *zerolog.Logger
	pretty bool
)

func init() {
	l := zerolog.New(os.Stderr).Level(DefaultLevel).With().Timestamp().Logger()
	logger = &l
}

// Init configures the process logger to write to stderr.
// If human is true, uses a human-friendly console writer.
func Init(level zerolog.Level, human bool) {
	InitWriter(os.Stderr, level, human)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level zerolog.Level, human bool) {
	out := w
	if human {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	pretty = human

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	logger = &l
}

// ParseLevel maps a level name to a zerolog level. An empty name yields
// DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return DefaultLevel, nil
	}
	return zerolog.ParseLevel(name)
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}

// IsPrettyMode reports whether the console writer is active. Event builders
// add human-readable companion fields only in that mode.
func IsPrettyMode() bool {
	return pretty
}

// WithPhase returns a logger with the phase field set.
func WithPhase(phase string) zerolog.Logger {
	return logger.With().Str("phase", phase).Logger()
}

// SetLogger allows overriding the process logger (useful for testing).
func SetLogger(l zerolog.Logger) {
	logger = &l
	pretty = false
}
