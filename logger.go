package statlearn

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with statlearn-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogBuild logs a tree construction.
func (l *Logger) LogBuild(ctx context.Context, count, dimension, height int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "build completed",
		"count", count,
		"dimension", dimension,
		"height", height,
		"elapsed", elapsed,
	)
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, k, resultsFound, visited int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"k", k,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"k", k,
		"results", resultsFound,
		"visited", visited,
	)
}

// LogTrain logs a perceptron training run.
func (l *Logger) LogTrain(ctx context.Context, form Form, samples, epochs, updates int, err error) {
	switch {
	case err == nil:
		l.InfoContext(ctx, "training converged",
			"form", form.String(),
			"samples", samples,
			"epochs", epochs,
			"updates", updates,
		)
	case epochs > 0:
		l.WarnContext(ctx, "training stopped",
			"form", form.String(),
			"samples", samples,
			"epochs", epochs,
			"updates", updates,
			"error", err,
		)
	default:
		l.ErrorContext(ctx, "training failed",
			"form", form.String(),
			"samples", samples,
			"error", err,
		)
	}
}
