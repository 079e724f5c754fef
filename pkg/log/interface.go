// Package log provides a structured logging interface for sparsegen.
//
// The interface is slog-compatible so backends can be swapped. The default
// backend writes JSON through github.com/rs/zerolog; SetupLogger switches
// the process to a log/slog JSON handler instead.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("datasets")
//	logger.Info("dataset generated",
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 50,
//	)
package log

import (
	"context"
)

// Logger is a structured logger with key/value fields.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs a recoverable or suspicious condition.
	Warn(msg string, fields ...any)

	// Error logs an error condition. If the first field is an error it is
	// attached under the "error" key.
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level, numerically compatible with slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// splitError pulls a leading error value out of fields.
func splitError(fields []any) (error, []any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			return err, fields[1:]
		}
	}
	return nil, fields
}
