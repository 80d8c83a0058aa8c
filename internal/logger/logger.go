package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the process-wide logger. It discards everything until Init is called.
var L = slog.New(slog.DiscardHandler)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum log level
	Output  io.Writer  // Destination, os.Stderr when nil
	JSON    bool       // Emit JSON records instead of text
}

// Init configures L from opts and returns it. Call from main before any log calls.
func Init(opts Options) *slog.Logger {
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return L
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(out, handlerOpts))
	} else {
		L = slog.New(slog.NewTextHandler(out, handlerOpts))
	}

	return L
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
