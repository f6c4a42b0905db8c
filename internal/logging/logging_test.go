package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var output bytes.Buffer
	logger := New(&output, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "context", "Focus Completed")

	assert.NotContains(t, output.String(), "hidden")
	assert.Contains(t, output.String(), "msg=shown")
	assert.Contains(t, output.String(), `context="Focus Completed"`)
	assert.Contains(t, output.String(), "app=zenpomodoro")
}
