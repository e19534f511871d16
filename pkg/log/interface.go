// Package log provides structured logging for estimation operations.
//
// The interface is a minimal slog-compatible surface: implementations can
// sit on log/slog (the default provider), on another backend, or on the
// in-memory test capture, without call sites changing. Domain attribute
// keys for models, data shapes, and optimizer state live in attributes.go
// so every component logs the same vocabulary.
//
// Typical use:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "Model",
//	    log.FamilyKey, "logit",
//	)
//	logger.Info("Fit started",
//	    log.OperationKey, log.OperationFit,
//	    log.ObservationsKey, 101,
//	    log.RegressorsKey, 4,
//	)
package log

import (
	"context"
)

// Logger is the structured logging surface handed to estimation code.
// Fields are alternating key/value pairs, as in slog. With returns a
// child logger carrying its fields on every later record.
type Logger interface {
	// Debug logs detailed diagnostic records, usually disabled outside
	// development.
	Debug(msg string, fields ...any)

	// Info logs operational records such as fit completion.
	Info(msg string, fields ...any)

	// Warn logs conditions the estimation survived, such as an optimizer
	// stopping on its iteration limit.
	Warn(msg string, fields ...any)

	// Error logs failures. An error value passed as a field is flattened
	// by the handler, stack trace included when it carries one.
	Error(msg string, fields ...any)

	// With returns a Logger that adds the given fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted, so
	// callers can skip building expensive attributes:
	//
	//	if logger.Enabled(ctx, LevelDebug) {
	//	    logger.Debug("Gradient state", "norm", norm)
	//	}
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level. Values match slog.Level, so providers can
// cast directly.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the level name, "UNKNOWN" for values off the scale.
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

// LoggerProvider constructs the loggers a process uses. The package-level
// functions in global.go delegate to the installed provider, which tests
// swap for the in-memory capture.
type LoggerProvider interface {
	// GetLogger returns the default logger.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel adjusts the minimum level for the provider's loggers.
	SetLevel(level Level)
}
