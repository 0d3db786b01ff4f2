// Package logging configures the shared slog logger. The core input
// packages stay quiet; the config watcher, plugin engine, and demo
// harness log through here.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu       sync.RWMutex
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	levelVar = new(slog.LevelVar)
)

// Init configures the package logger with a level and output writer.
// Before Init is called, logging is discarded.
func Init(level slog.Level, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	levelVar.Set(level)

	opts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.SourceKey:
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			case slog.TimeKey:
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}

	mu.Lock()
	logger = slog.New(slog.NewTextHandler(output, opts))
	mu.Unlock()
}

// SetLevel changes the log level at runtime.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// Logger returns the configured logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns a logger with the given attributes attached.
func With(args ...any) *slog.Logger {
	return Logger().With(args...)
}
