package app

import (
	"context"
	"fmt"

	"tableflip.dev/ackgate/pkg/gate"
	"tableflip.dev/ackgate/pkg/notify"
	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/ritual"
)

// Session is one gate run. It is discarded after Confirm or Close.
type Session struct {
	*gate.Gate
	svc *Service
}

// NewSession starts a locked gate using timer for the dwell delay.
func (s *Service) NewSession(timer gate.Timer) (*Session, error) {
	policy, err := s.Policy()
	if err != nil {
		return nil, err
	}
	g := gate.New(gate.Options{
		Policy:  policy,
		Timer:   timer,
		Dwell:   s.dwell,
		Epsilon: s.epsilon,
		Clock:   s.clock,
	})
	s.log.Debug("app: gate session started", "policy", policy.Name(), "dwell", g.Dwell())
	return &Session{Gate: g, svc: s}, nil
}

// Confirmation is the result of a successful Confirm.
type Confirmation struct {
	Acknowledgement record.Acknowledgement
	Checklist       record.Checklist
	Progress        ritual.Progress
	// Notified completes when the side-channel call finished. Callers need
	// not wait for it.
	Notified *notify.Pending
}

// Confirm records the day of a ready gate (acknowledgement, history entry,
// a fresh checklist and the side-channel notification) and then closes the
// gate. When a write fails the gate stays open and Ready.
func (ss *Session) Confirm(ctx context.Context) (Confirmation, error) {
	sub, err := ss.Gate.Submit()
	if err != nil {
		return Confirmation{}, err
	}
	conf, err := ss.svc.record(ctx, sub)
	if err != nil {
		return Confirmation{}, err
	}
	ss.Gate.Close()
	return conf, nil
}

func (s *Service) record(ctx context.Context, sub gate.Submission) (Confirmation, error) {
	ack := record.Acknowledgement{
		Date:         s.Today(),
		Action:       sub.Action,
		Acknowledged: true,
		Timestamp:    record.At(sub.At),
	}
	if err := s.Records.SaveAcknowledgement(ack); err != nil {
		return Confirmation{}, fmt.Errorf("app: confirm: %w", err)
	}
	if _, err := s.Ledger.Append(ack.Date, ack.Action); err != nil {
		return Confirmation{}, fmt.Errorf("app: confirm: %w", err)
	}
	c, err := s.Tracker.Reset()
	if err != nil {
		return Confirmation{}, fmt.Errorf("app: confirm: %w", err)
	}
	s.log.Info("app: contract acknowledged", "date", ack.Date, "policy", sub.Policy)
	return Confirmation{
		Acknowledgement: ack,
		Checklist:       c,
		Progress:        s.Tracker.Progress(c),
		Notified:        notify.Dispatch(ctx, s.Notifier, sub.At, s.log),
	}, nil
}
