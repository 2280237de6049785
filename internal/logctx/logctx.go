// Package logctx carries a zerolog logger through context.Context so that
// scenario fields (case_id, case_type, n) attached by the sweep runner show
// up on every event emitted further down the call stack.
//
//	ctx = logctx.WithLogger(ctx, logging.WithPhase("sweep"))
//	ctx = logctx.WithScenario(ctx, caseID, "best", 1000)
//	logctx.FromContext(ctx).Debug().Msg("timed")
package logctx

import (
	"context"

	"github.com/eunmann/bsearch-bench/pkg/logging"
	"github.com/rs/zerolog"
)

type loggerKey struct{}

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger from ctx. Without one it returns the
// process logger from package logging.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
			return logger
		}
	}
	return *logging.L()
}

// WithStr returns a context whose logger carries an extra string field.
func WithStr(ctx context.Context, key, value string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithInt returns a context whose logger carries an extra int field.
func WithInt(ctx context.Context, key string, value int) context.Context {
	return WithLogger(ctx, FromContext(ctx).With().Int(key, value).Logger())
}

// WithScenario tags the context logger with the scenario identity.
func WithScenario(ctx context.Context, caseID int, caseType string, n int) context.Context {
	logger := FromContext(ctx).With().
		Int("case_id", caseID).
		Str("case_type", caseType).
		Int("n", n).
		Logger()
	return WithLogger(ctx, logger)
}
