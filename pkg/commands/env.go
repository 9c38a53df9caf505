package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/logging"
	"tableflip.dev/ackgate/pkg/notify"
	"tableflip.dev/ackgate/pkg/store"
)

// env is what every command needs: settings, the store, the service over it
// and a logger.
type env struct {
	settings    *store.Settings
	persistence store.Persistence
	svc         *app.Service
	log         *slog.Logger
	close       func() error
}

type openOptions struct {
	// ephemeral keeps records in memory for this run only.
	ephemeral bool
	// interactive means the terminal belongs to the UI, so logs go to the
	// file alone.
	interactive bool
}

func open(cmd *cobra.Command, o openOptions) (*env, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	level := settings.LogLevel
	if lo.Level != "" {
		level = lo.Level
	}
	lopts := logging.Options{Level: level}
	if !o.ephemeral {
		lopts.Dir = settings.Path
	}
	if !o.interactive {
		lopts.Stderr = cmd.ErrOrStderr()
	}
	log, closeLog, err := logging.New(lopts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)

	var (
		p        store.Persistence
		notifier notify.Notifier
	)
	if o.ephemeral {
		p = store.NewMemory()
	} else {
		if p, err = store.Load(settings); err != nil {
			_ = closeLog()
			return nil, err
		}
		notifier = &notify.FileRecorder{Dir: settings.Path}
	}

	return &env{
		settings:    settings,
		persistence: p,
		svc:         app.FromSettings(settings, p, notifier, log),
		log:         log,
		close:       closeLog,
	}, nil
}

func (e *env) Close() {
	if e.close != nil {
		if err := e.close(); err != nil {
			_, _ = os.Stderr.WriteString("ackgate: closing log: " + err.Error() + "\n")
		}
	}
}
