package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/ackgate/pkg/logging"
	"tableflip.dev/ackgate/pkg/notify"
	"tableflip.dev/ackgate/pkg/store"
)

type Info struct {
	Settings    *store.Settings
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("ACKGATE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "ACKGATE_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "ACKGATE_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Settings.BasePath())
	_, _ = fmt.Fprintln(out, "Config.policy: ", n.Settings.Policy)
	_, _ = fmt.Fprintln(out, "Config.dwell: ", n.Settings.Dwell)
	_, _ = fmt.Fprintln(out, "Log file: ", filepath.Join(n.Settings.BasePath(), logging.FileName))
	_, _ = fmt.Fprintln(out, "Acknowledgement log: ", filepath.Join(n.Settings.BasePath(), notify.LogFile))

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	_, _ = fmt.Fprintf(out, "Records:\n")
	found := 0
	for _, k := range n.Persistence.Keys(ctx) {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
		found++
	}

	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no records")
	}

	return nil
}
