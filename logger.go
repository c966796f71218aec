package parsearch

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with parsearch-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// WithVariant adds a variant field to the logger.
func (l *Logger) WithVariant(v Variant) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", v.String()),
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, index, rounds int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"rounds", rounds,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"index", index,
		"found", index >= 0,
		"rounds", rounds,
	)
}

// LogBatch logs a batch search operation.
func (l *Logger) LogBatch(ctx context.Context, count, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch search failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch search completed",
		"count", count,
		"found", found,
		"missing", count-found,
	)
}
