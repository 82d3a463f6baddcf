// Package logging provides structured JSON logging for the pinball simulator
// and its hosts. Records carry the session id of the playfield that emitted
// them, and physics values that JSON cannot hold are written as text.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"
)

// LevelEnv names the variable read by NewLogger and NewLoggerTo
const LevelEnv = "PINBALL_LOG_LEVEL"

// Logger is a slog.Logger whose level methods take a context and add the
// session id found there
type Logger struct {
	*slog.Logger
}

// NewLogger writes JSON records to stdout at the level named by
// PINBALL_LOG_LEVEL (INFO when unset or unknown).
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w. Full-screen hosts use it to keep
// records off the terminal they draw on.
func NewLoggerTo(w io.Writer) *Logger {
	return NewLoggerWithLevel(w, getLogLevelFromEnv())
}

// NewLoggerWithLevel writes JSON records to w at a fixed level
func NewLoggerWithLevel(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: formatAttr,
	})
	return &Logger{slog.New(handler)}
}

// Discard returns a Logger that drops every record
func Discard() *Logger {
	return NewLoggerWithLevel(io.Discard, slog.LevelError+1)
}

// LogWithContext logs msg at level, adding the session id from ctx if any
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if id := SessionID(ctx); id != "" {
		args = append(args, "session", id)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs at INFO
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs at WARN
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs at ERROR with err under the "error" key
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs at DEBUG
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type sessionKey struct{}

// WithSession returns ctx tagged with a session id. An empty id is replaced
// by a fresh random one.
func WithSession(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewSessionID()
	}
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session id carried by ctx, or ""
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok {
		return id
	}
	return ""
}

// NewSessionID returns 16 random hex characters
func NewSessionID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// ParseLevel maps DEBUG, INFO, WARN (or WARNING) and ERROR, in any case,
// to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

func getLogLevelFromEnv() slog.Level {
	level, _ := ParseLevel(os.Getenv(LevelEnv))
	return level
}

// formatAttr keeps records encodable. encoding/json rejects NaN and
// infinities, which a diverging ball can produce, so those are written as
// strings; durations are written the way config files spell them.
func formatAttr(groups []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindFloat64:
		f := a.Value.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return slog.String(a.Key, fmt.Sprint(f))
		}
	case slog.KindDuration:
		return slog.String(a.Key, a.Value.Duration().Round(time.Microsecond).String())
	}
	return a
}

// WrapError prefixes err with a formatted message, keeping it unwrappable.
// A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return fmt.Errorf("%s: %w", format, err)
}
