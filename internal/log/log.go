// ABOUTME: Level-gated printf logger built on slog levels
// ABOUTME: Writes to stderr by default; SetOutput redirects so full-screen modes keep the terminal clean

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. A nil writer discards everything.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	outMu.Lock()
	out = w
	outMu.Unlock()
}

// Enabled reports whether messages at l are emitted.
func Enabled(l slog.Level) bool {
	return l >= slog.Level(level.Load())
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if !Enabled(LevelDebug) {
		return
	}
	emit("DEBUG", format, args)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if !Enabled(LevelInfo) {
		return
	}
	emit("INFO", format, args)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if !Enabled(LevelWarn) {
		return
	}
	emit("WARN", format, args)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("ERROR", format, args)
}

func emit(tag, format string, args []any) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, "%s [%s] "+format+"\n",
		append([]any{time.Now().Format("15:04:05.000"), tag}, args...)...)
}
