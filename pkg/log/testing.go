// In-memory log capture for tests. TestLogger implements Logger by
// writing JSON lines into a buffer, and TestLoggerProvider plugs it into
// the package-level provider so code under test logs into the capture
// instead of the process default.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// TestLogger captures log records in memory as JSON lines, one object per
// record carrying "level", "message", and the flattened key/value fields.
type TestLogger struct {
	buffer *bytes.Buffer
	level  Level
	fields map[string]interface{}
}

// NewTestLogger returns a TestLogger recording records at or above level,
// together with the buffer the JSON lines land in.
//
//	logger, buffer := log.NewTestLogger(log.LevelDebug)
//	logger.Info("Fit completed", log.FamilyKey, "ols")
//	// buffer now holds one JSON line
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		buffer: buffer,
		level:  level,
		fields: make(map[string]interface{}),
	}, buffer
}

func (t *TestLogger) Debug(msg string, fields ...any) { t.emit(LevelDebug, "DEBUG", msg, fields) }
func (t *TestLogger) Info(msg string, fields ...any)  { t.emit(LevelInfo, "INFO", msg, fields) }
func (t *TestLogger) Warn(msg string, fields ...any)  { t.emit(LevelWarn, "WARN", msg, fields) }
func (t *TestLogger) Error(msg string, fields ...any) { t.emit(LevelError, "ERROR", msg, fields) }

// With returns a child logger whose records carry the given fields on top
// of the parent's. Parent and child share one buffer.
func (t *TestLogger) With(fields ...any) Logger {
	merged := make(map[string]interface{}, len(t.fields)+len(fields)/2)
	for k, v := range t.fields {
		merged[k] = v
	}
	foldFields(merged, fields)
	return &TestLogger{buffer: t.buffer, level: t.level, fields: merged}
}

// Enabled reports whether records at the given level would be captured.
func (t *TestLogger) Enabled(ctx context.Context, level Level) bool {
	return t.level <= level
}

func (t *TestLogger) emit(level Level, name, msg string, fields []any) {
	if t.level > level {
		return
	}

	entry := map[string]interface{}{
		"level":   name,
		"message": msg,
	}
	for k, v := range t.fields {
		entry[k] = v
	}
	foldFields(entry, fields)

	line, _ := json.Marshal(entry)
	t.buffer.Write(line)
	t.buffer.WriteByte('\n')
}

// foldFields folds alternating key/value pairs into dst, flattening error
// values to their messages. A trailing key without a value is dropped.
func foldFields(dst map[string]interface{}, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		if err, ok := fields[i+1].(error); ok {
			dst[key] = err.Error()
			continue
		}
		dst[key] = fields[i+1]
	}
}

// GetLogEntries parses the captured JSON lines into one map per record.
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(t.buffer.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ContainsMessage reports whether any captured record contains message.
func (t *TestLogger) ContainsMessage(message string) bool {
	return strings.Contains(t.buffer.String(), message)
}

// ContainsField reports whether some captured record carries the field at
// the given value. Numeric values compare as float64, the type JSON
// parsing yields.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if got, ok := entry[key]; ok && got == value {
			return true
		}
	}
	return false
}

// TestLoggerProvider serves one shared TestLogger through the
// LoggerProvider interface.
type TestLoggerProvider struct {
	logger *TestLogger
}

// NewTestLoggerProvider returns a provider backed by a fresh TestLogger
// plus the capture buffer.
func NewTestLoggerProvider(level Level) (*TestLoggerProvider, *bytes.Buffer) {
	logger, buffer := NewTestLogger(level)
	return &TestLoggerProvider{logger: logger}, buffer
}

func (p *TestLoggerProvider) GetLogger() Logger { return p.logger }

// GetLoggerWithName returns the shared logger tagged with the component
// attribute, mirroring how the slog provider names component loggers.
func (p *TestLoggerProvider) GetLoggerWithName(name string) Logger {
	return p.logger.With(ComponentKey, name)
}

func (p *TestLoggerProvider) SetLevel(level Level) {
	p.logger.level = level
}
