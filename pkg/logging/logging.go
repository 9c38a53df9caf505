// Package logging builds the process logger. The terminal UI owns the screen,
// so records always go to a file and only non-interactive commands also write
// to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// FileName is the log file created in the data directory.
const FileName = "ackgate.log"

var level = new(slog.LevelVar)

// Options configures New.
type Options struct {
	// Dir holds the log file. Empty disables file logging.
	Dir string
	// Stderr also writes to this writer, typically os.Stderr.
	Stderr io.Writer
	Level  string
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// SetLevel changes the level of every logger built by New.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// New returns a logger and a closer for the log file. With no destination the
// logger discards everything.
func New(opts Options) (*slog.Logger, func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	level.Set(lvl)

	closer := func() error { return nil }
	var handlers []slog.Handler
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(opts.Dir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		closer = f.Close
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	if opts.Stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: level}))
	}
	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
