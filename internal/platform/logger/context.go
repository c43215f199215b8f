package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type for context keys defined by this package.
type contextKey int

// loggerKey is the context key under which a request-scoped logger is stored.
const loggerKey contextKey = iota

// WithLogger returns a copy of ctx carrying the given logger.
// Handlers and middleware use this to pass request-scoped loggers
// (e.g. with a trace ID attached) down to services and stores.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context.
// If no logger is present, the process default logger is returned.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default rather than the process default. Components that
// hold their own component-tagged logger use this so context loggers win
// when present.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
