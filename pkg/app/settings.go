package app

import (
	"log/slog"

	"tableflip.dev/ackgate/pkg/notify"
	"tableflip.dev/ackgate/pkg/ritual"
	"tableflip.dev/ackgate/pkg/store"
)

// FromSettings builds a service over p configured by the process settings.
// A nil notifier discards acknowledgement notifications.
func FromSettings(s *store.Settings, p store.Persistence, n notify.Notifier, log *slog.Logger) *Service {
	opts := Options{Notifier: n, Log: log}
	if s != nil {
		opts.Items = ritual.FromConfig(s.Items)
		opts.Policy = s.Policy
		opts.Dwell = s.Dwell
		opts.Epsilon = s.Epsilon
	}
	return New(p, opts)
}
