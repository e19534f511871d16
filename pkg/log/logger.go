package log

import (
	"fmt"
	"log/slog"
	"os"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger installs the process-wide slog default: a JSON handler on
// stdout with source locations, CloudLogging key names, and cockroachdb
// stack trace extraction via ErrFmtHandler.
func SetupLogger(loglevel string) {
	opts := slog.HandlerOptions{
		AddSource:   true,
		Level:       ToLogLevel(loglevel),
		ReplaceAttr: replaceCloudLoggingKeys,
	}
	h := slog.NewJSONHandler(os.Stdout, &opts)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(h)))
}

// replaceCloudLoggingKeys renames the standard slog keys to the names the
// CloudLogging ingestion expects.
func replaceCloudLoggingKeys(groups []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.LevelKey:
		attr.Key = "severity"
	case slog.MessageKey:
		attr.Key = "message"
	case slog.SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	}
	return attr
}

// ToLogLevel maps a level name to its slog.Level. Unknown names panic.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("unknown log level %q", level))
	}
}

// ErrAttr wraps err as the slog attribute ErrFmtHandler looks for.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
