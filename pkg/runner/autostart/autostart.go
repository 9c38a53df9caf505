package autostart

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ackgate/pkg/shell"
)

type Autostart struct {
	Entry shell.Autostart
	Out   io.Writer
}

func (a *Autostart) Do(ctx context.Context) error {
	out := a.Out
	if out == nil {
		out = color.Output
	}
	path, created, err := shell.InstallAutostart(a.Entry)
	if err != nil {
		return err
	}
	if created {
		_, _ = fmt.Fprintf(out, "Installed login entry at %s\n", path)
	} else {
		_, _ = color.New(color.Faint).Fprintf(out, "Login entry already present at %s\n", path)
	}
	return nil
}
