package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"info":    slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"Debug":   slog.LevelDebug,
		"trace":   LevelTrace,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "ParseLevel(%q)", input)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(ParseLevel("info"), &buf)

	logger.Debug("hidden")
	logger.Info("shown", "sections", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "sections=3")
}

func TestNewLogger_LevelVarChangesAfterCreation(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := NewLogger(level, &buf)

	logger.Debug("before")
	level.Set(slog.LevelDebug)
	logger.Debug("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}

func TestNewLogger_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelTrace, &buf)

	logger.Log(context.Background(), LevelTrace, "step")

	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Contains(t, buf.String(), "msg=step")
}
