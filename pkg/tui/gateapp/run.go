package gateapp

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/ackgate/pkg/app"
)

// Run starts the program and blocks until it exits.
func Run(ctx context.Context, svc *app.Service, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := New(ctx, svc, log)
	if err != nil {
		return err
	}
	events, err := svc.Watch(ctx)
	if err != nil {
		m.log.Warn("ui: store watch unavailable", "err", err)
	} else {
		m.SetEvents(events)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	m.SetWindow(programWindow{p: p})
	_, err = p.Run()
	return err
}
