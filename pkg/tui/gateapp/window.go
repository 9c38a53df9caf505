package gateapp

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// programWindow adapts a running program to shell.Window. Both methods send
// to the program, so they must not be called from inside Update.
type programWindow struct {
	p *tea.Program
}

func (w programWindow) Destroy() error {
	if w.p == nil {
		return errors.New("gateapp: no program")
	}
	w.p.Quit()
	return nil
}

func (w programWindow) Close() error {
	if w.p == nil {
		return errors.New("gateapp: no program")
	}
	w.p.Kill()
	return nil
}
