package ui

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/shell"
	"tableflip.dev/ackgate/pkg/tui/gateapp"
)

// ErrNoTerminal is returned when stdout is not an interactive terminal.
var ErrNoTerminal = errors.New("ui: stdout is not a terminal")

type UI struct {
	Service *app.Service
	Log     *slog.Logger
	// Autostart installs the login entry before the window opens.
	Autostart bool
	Entry     shell.Autostart
}

func (u *UI) Do(ctx context.Context) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNoTerminal
	}
	log := u.Log
	if log == nil {
		log = slog.Default()
	}
	if u.Autostart {
		path, created, err := shell.InstallAutostart(u.Entry)
		switch {
		case err != nil:
			log.Warn("ui: autostart install failed", "err", err)
		case created:
			log.Info("ui: autostart installed", "path", path)
		}
	}
	return gateapp.Run(ctx, u.Service, log)
}
