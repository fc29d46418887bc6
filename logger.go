package gonoise

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gonoise-specific context.
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

// WithSeed adds a seed field to the logger (useful for tagging samplers).
func (l *Logger) WithSeed(seed uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithPeriod adds a period field to the logger.
func (l *Logger) WithPeriod(period float32) *Logger {
	return &Logger{
		Logger: l.Logger.With("period", period),
	}
}

// LogBuild logs a sampler construction.
func (l *Logger) LogBuild(kind string, err error) {
	if err != nil {
		l.Error("build failed",
			"kind", kind,
			"error", err,
		)
	} else {
		l.Debug("build completed",
			"kind", kind,
		)
	}
}
