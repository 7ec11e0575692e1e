// Package log wires a file-backed slog logger for debug output.
// The TUI owns the terminal, so nothing here ever writes to stdout.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init points the package logger at a log file under dir. Failures leave the
// discard logger in place; debug logging is best-effort.
func Init(dir string) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// With returns a logger scoped to one component.
func With(component string) *slog.Logger {
	return logger.With("component", component)
}
