// Package logging provides file-based logging for taskie. Logs go to
// taskie.log next to the task store so the CLI stays quiet on stdout.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to <dir>/taskie.log, creating the
// directory if needed. An empty dir disables logging. The file stays
// open for the process lifetime.
func New(dir string, level slog.Level) (*slog.Logger, error) {
	if dir == "" {
		return slog.New(slog.DiscardHandler), nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, "taskie.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), nil
}
