// Package testutil holds helpers shared by the leapmath test suites.
package testutil

import (
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes through t.Log, so
// server and CLI logs show up only for failing tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return NewTestLoggerWithLevel(t, slog.LevelDebug)
}

// NewTestLoggerWithLevel is NewTestLogger with a minimum level.
func NewTestLoggerWithLevel(t testing.TB, level slog.Leveler) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(logWriter{t}, &slog.HandlerOptions{Level: level}))
}

// logWriter adapts testing.TB to io.Writer. slog emits one record per
// Write, so each call maps to one t.Log line.
type logWriter struct {
	t testing.TB
}

func (w logWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p[:len(p)-trailingNewline(p)]))
	return len(p), nil
}

func trailingNewline(p []byte) int {
	if len(p) > 0 && p[len(p)-1] == '\n' {
		return 1
	}
	return 0
}
