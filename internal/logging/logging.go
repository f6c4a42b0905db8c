// Package logging builds the application's slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel parses a log level string into slog.Level.
// Unknown values map to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to output at the given level.
func New(output io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler).With("app", "zenpomodoro")
}
