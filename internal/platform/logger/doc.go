// Package logger provides structured logging for the application.
//
// It uses Go's standard library log/slog package to produce JSON log lines
// with a configurable level, and carries request-scoped loggers through
// context so every layer logs with the same trace ID.
package logger
