package blockvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with blockvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

var noopLogger = NoopLogger()

// WithSize adds an element count field to the logger.
func (l *Logger) WithSize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", n),
	}
}

// LogAlloc logs a block allocation.
func (l *Logger) LogAlloc(size, bytes int, zeroed bool, err error) {
	sl := l.WithSize(size)
	if err != nil {
		sl.Error("block allocation failed",
			"zeroed", zeroed,
			"error", err,
		)
	} else {
		sl.Debug("block allocated",
			"bytes", bytes,
			"zeroed", zeroed,
		)
	}
}

// LogRelease logs a block release.
func (l *Logger) LogRelease(size, bytes int, err error) {
	sl := l.WithSize(size)
	if err != nil {
		sl.Warn("block release failed",
			"error", err,
		)
	} else {
		sl.Debug("block released",
			"bytes", bytes,
		)
	}
}
