package log

import (
	"context"
	"log/slog"
	"sync"
)

// The package-level provider backs GetLogger and GetLoggerWithName. It
// defaults to a slog-based provider so SetupLogger configuration applies
// without extra wiring; tests and applications can swap it with
// SetLoggerProvider.
var (
	providerMu     sync.RWMutex
	globalProvider LoggerProvider = newSlogProvider()
)

// SetLoggerProvider replaces the package-level provider. A nil provider
// is ignored.
func SetLoggerProvider(p LoggerProvider) {
	if p == nil {
		return
	}
	providerMu.Lock()
	defer providerMu.Unlock()
	globalProvider = p
}

// GetLogger returns the default logger of the package-level provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return globalProvider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with a component name, for
// example "regression.model".
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return globalProvider.GetLoggerWithName(name)
}

// slogProvider adapts the process-wide slog default logger to the
// LoggerProvider interface. SetLevel filters below the slog handler's
// own level, so it can silence but not un-silence it.
type slogProvider struct {
	level *slog.LevelVar
}

func newSlogProvider() *slogProvider {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &slogProvider{level: level}
}

func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{base: slog.New(newLevelHandler(p.level, slog.Default().Handler()))}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

func (p *slogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	base *slog.Logger
}

func (l *slogLogger) Debug(msg string, fields ...any) { l.base.Debug(msg, fields...) }
func (l *slogLogger) Info(msg string, fields ...any)  { l.base.Info(msg, fields...) }
func (l *slogLogger) Warn(msg string, fields ...any)  { l.base.Warn(msg, fields...) }
func (l *slogLogger) Error(msg string, fields ...any) { l.base.Error(msg, fields...) }

func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{base: l.base.With(fields...)}
}

func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.base.Enabled(ctx, slog.Level(level))
}
