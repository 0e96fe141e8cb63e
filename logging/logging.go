// Package logging builds the slog.Logger shared by the server, the
// playback controller and the CLI. It does not touch the slog global, so
// tests can construct isolated instances.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options selects the handler configuration.
type Options struct {
	// Level is one of "debug", "info", "warn", "error". Unknown values
	// fall back to "info".
	Level string

	// JSON switches the handler from human-readable text to JSON records.
	JSON bool

	// Writer overrides the output destination; nil means os.Stderr.
	Writer io.Writer
}

// New returns a logger configured per opts.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
