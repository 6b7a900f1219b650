// Package diag is the diagnostic channel for store-level failures.
// Persistence errors that the stores swallow (a failed append, a failed
// rewrite) are reported here so they are at least visible to an operator.
package diag

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component name.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a text-handler logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler), component: "ipon"}
}

// Default returns a logger writing to stderr at Info level.
func Default() *Logger {
	return New(os.Stderr, slog.LevelInfo)
}

// Discard returns a logger that drops everything. Stores treat a nil
// logger the same way, so this exists mostly for explicitness in tests.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}

// WithComponent returns a logger tagged with a component name.
// A nil receiver stays nil.
func (l *Logger) WithComponent(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

// WriteFailed reports a swallowed persistence failure.
// It is safe to call on a nil logger.
func (l *Logger) WriteFailed(op, path string, err error) {
	if l == nil {
		return
	}
	l.Error("write failed", "op", op, "path", path, "err", err)
}

// ParseLevel maps a config string to a slog level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
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
