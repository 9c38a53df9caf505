// Package notify delivers the confirmation side-channel call. Delivery is
// fire-and-forget: failures are logged and never block the caller.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFile is the file FileRecorder appends to inside its directory.
const LogFile = "acknowledgements.log"

// Notifier records that a confirmation happened at the given instant.
type Notifier interface {
	Acknowledged(ctx context.Context, at time.Time) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, at time.Time) error

func (f NotifierFunc) Acknowledged(ctx context.Context, at time.Time) error {
	return f(ctx, at)
}

// Discard is a Notifier that does nothing.
var Discard Notifier = NotifierFunc(func(context.Context, time.Time) error { return nil })

// FileRecorder appends one "acknowledged_at_ms=<ms>" line per confirmation.
type FileRecorder struct {
	Dir string

	mu sync.Mutex
}

func (r *FileRecorder) Path() string {
	return filepath.Join(r.Dir, LogFile)
}

func (r *FileRecorder) Acknowledged(ctx context.Context, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	f, err := os.OpenFile(r.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	if _, err := fmt.Fprintf(f, "acknowledged_at_ms=%d\n", at.UnixMilli()); err != nil {
		f.Close()
		return fmt.Errorf("notify: write: %w", err)
	}
	return f.Close()
}

// Pending is an in-flight notification.
type Pending struct {
	done chan struct{}
	err  error
}

// Wait blocks until the notification finished and returns its error.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// Done is closed when the notification finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Dispatch calls n on its own goroutine and returns immediately. A failure,
// including a panic inside n, is logged and kept for Wait.
func Dispatch(ctx context.Context, n Notifier, at time.Time, log *slog.Logger) *Pending {
	if log == nil {
		log = slog.Default()
	}
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.err = fmt.Errorf("notify: panic: %v", r)
				log.Error("notify: acknowledgement call panicked", "panic", r)
			}
		}()
		if err := n.Acknowledged(ctx, at); err != nil {
			p.err = err
			log.Warn("notify: acknowledgement call failed", "err", err)
			return
		}
		log.Debug("notify: acknowledgement recorded", "at_ms", at.UnixMilli())
	}()
	return p
}
