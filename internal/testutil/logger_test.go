package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTB struct {
	testing.TB
	lines []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Log(args ...any) {
	for _, a := range args {
		r.lines = append(r.lines, a.(string))
	}
}

func TestNewTestLoggerWithLevel(t *testing.T) {
	rec := &recordingTB{TB: t}
	logger := NewTestLoggerWithLevel(rec, slog.LevelInfo)

	logger.Debug("dropped")
	logger.Info("kept", "n", 1)

	if assert.Len(t, rec.lines, 1) {
		assert.Contains(t, rec.lines[0], "msg=kept")
		assert.Contains(t, rec.lines[0], "n=1")
		assert.NotContains(t, rec.lines[0], "\n")
	}
}
