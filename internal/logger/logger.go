// Package logger provides structured logging for the service.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog with level control resolved from configuration.
type Logger struct {
	internal *slog.Logger
}

// NewLogger creates a logger writing text records to stderr at the given
// level. Unknown levels fall back to info.
func NewLogger(level string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	handler := slog.NewTextHandler(os.Stderr, opts)

	return &Logger{internal: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) { l.internal.Debug(msg, args...) }

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) { l.internal.Info(msg, args...) }

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) { l.internal.Warn(msg, args...) }

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) { l.internal.Error(msg, args...) }

// With creates a child logger carrying the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{internal: l.internal.With(args...)}
}
