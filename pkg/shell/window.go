// Package shell holds the host-window contract: teardown, input suppression
// while the gate is up and the login autostart entry.
package shell

import (
	"errors"
	"fmt"
	"log/slog"
)

// Window is the host window. Destroy tears it down unconditionally; Close is
// a polite request that the host may still refuse.
type Window interface {
	Destroy() error
	Close() error
}

// DestroyOrClose tries Destroy and falls back to Close once. Failures are
// logged; the returned error is set only when both failed.
func DestroyOrClose(w Window, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	derr := w.Destroy()
	if derr == nil {
		return nil
	}
	log.Error("shell: failed to destroy window", "err", derr)
	cerr := w.Close()
	if cerr == nil {
		return nil
	}
	log.Error("shell: failed to close window", "err", cerr)
	return fmt.Errorf("shell: teardown failed: %w", errors.Join(derr, cerr))
}
