package dbscango

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dbscango-specific context.
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

// WithEpsilon adds an epsilon (neighborhood radius) field to the logger.
func (l *Logger) WithEpsilon(epsilon float32) *Logger {
	return &Logger{
		Logger: l.Logger.With("epsilon", epsilon),
	}
}

// WithMinPoints adds a min_points field to the logger.
func (l *Logger) WithMinPoints(minPoints int) *Logger {
	return &Logger{
		Logger: l.Logger.With("min_points", minPoints),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogIndexBuild logs construction of the internal scan index.
func (l *Logger) LogIndexBuild(ctx context.Context, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index build completed",
			"points", points,
		)
	}
}

// LogRun logs a clustering run.
func (l *Logger) LogRun(ctx context.Context, points, clusters, noise int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "clustering completed",
			"points", points,
			"clusters", clusters,
			"noise", noise,
		)
	}
}
