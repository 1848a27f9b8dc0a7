package slotlist

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with slotlist-specific context.
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

// WithOp adds an operation name field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(op string, slot SlotID, err error) {
	if err != nil {
		l.Error("insert failed",
			"op", op,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"op", op,
			"slot", int(slot),
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(op string, slot SlotID, err error) {
	if err != nil {
		l.Error("remove failed",
			"op", op,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"op", op,
			"slot", int(slot),
		)
	}
}

// LogGrow logs a capacity increase. Growth is the slow path, so it is
// reported as a warning.
func (l *Logger) LogGrow(oldCapacity, newCapacity int) {
	l.Warn("list capacity increased; recreate the list with a bigger capacity to avoid reallocation",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
	)
}

// LogCompact logs a compaction.
func (l *Logger) LogCompact(length int, err error) {
	if err != nil {
		l.Error("compact failed",
			"error", err,
		)
	} else {
		l.Debug("compact completed",
			"len", length,
		)
	}
}

// LogValidation logs a failed validation.
func (l *Logger) LogValidation(op string, code ErrorCode, post bool) {
	l.Error("validation failed",
		"op", op,
		"code", code.String(),
		"post_condition", post,
		"description", code.Description(),
	)
}
