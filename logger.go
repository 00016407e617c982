package sparkle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Logger receives optional diagnostic messages. Implementations must not
// affect control flow; a System behaves identically with any Logger.
type Logger interface {
	Logf(format string, args ...any)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(format string, args ...any)

// Logf calls f.
func (f LoggerFunc) Logf(format string, args ...any) {
	f(format, args...)
}

// StderrLogger writes each message to stderr with a "[sparkle]" prefix.
// It is the default when SystemConfig.Logger is nil.
var StderrLogger Logger = LoggerFunc(func(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[sparkle] "+format+"\n", args...)
})

// NopLogger discards everything.
var NopLogger Logger = LoggerFunc(func(string, ...any) {})

// SlogLogger adapts l so diagnostics are emitted as Debug records.
func SlogLogger(l *slog.Logger) Logger {
	return LoggerFunc(func(format string, args ...any) {
		if !l.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		l.Debug(fmt.Sprintf(format, args...))
	})
}
