// Package app wires the gate, ritual tracker, history ledger and close-guard
// over one store so the terminal UI, the CLI and the MCP server share logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tableflip.dev/ackgate/pkg/contract"
	"tableflip.dev/ackgate/pkg/gate"
	"tableflip.dev/ackgate/pkg/guard"
	"tableflip.dev/ackgate/pkg/history"
	"tableflip.dev/ackgate/pkg/notify"
	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/ritual"
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// ErrNotAcknowledged is returned by ritual operations before today's
// contract was confirmed.
var ErrNotAcknowledged = errors.New("app: today's contract is not acknowledged")

// Options configures New. Zero values take defaults.
type Options struct {
	Items    []ritual.Item
	Policy   string
	Dwell    time.Duration
	Epsilon  float64
	Notifier notify.Notifier
	Clock    timeutil.Clock
	Log      *slog.Logger
}

// Service provides the high-level operations. It holds no authoritative
// state; every call re-derives from the store.
type Service struct {
	Records  *store.Records
	Tracker  *ritual.Tracker
	Ledger   *history.Ledger
	Guard    *guard.Guard
	Notifier notify.Notifier

	policy  string
	dwell   time.Duration
	epsilon float64
	clock   timeutil.Clock
	log     *slog.Logger
}

// New builds a service over p.
func New(p store.Persistence, opts Options) *Service {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	clock := timeutil.Or(opts.Clock)
	records := store.NewRecords(p, log)
	n := opts.Notifier
	if n == nil {
		n = notify.Discard
	}
	return &Service{
		Records:  records,
		Tracker:  ritual.New(records, opts.Items, clock, log),
		Ledger:   history.New(records, clock, log),
		Guard:    guard.New(records, clock),
		Notifier: n,
		policy:   opts.Policy,
		dwell:    opts.Dwell,
		epsilon:  opts.Epsilon,
		clock:    clock,
		log:      log,
	}
}

// Today is the current date key.
func (s *Service) Today() string {
	return timeutil.Today(s.clock)
}

// Now is the service clock's current instant.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// AcknowledgedToday returns today's acknowledgement if one exists.
func (s *Service) AcknowledgedToday() (record.Acknowledgement, bool) {
	ack, ok := s.Records.LoadAcknowledgement()
	if !ok || !ack.Covers(s.Today()) {
		return record.Acknowledgement{}, false
	}
	return ack, true
}

// CanClose consults the close-guard.
func (s *Service) CanClose() guard.Decision {
	return s.Guard.Check()
}

// UserConfig returns the editable document settings.
func (s *Service) UserConfig() record.UserConfig {
	cfg, _ := s.Records.LoadUserConfig()
	return cfg
}

// Document returns the contract source with the date placeholder intact.
func (s *Service) Document() string {
	return contract.Compose(s.UserConfig())
}

// Blocks renders the contract for today.
func (s *Service) Blocks() []contract.Block {
	return contract.Render(s.Document(), s.clock.Now())
}

// Policy builds the configured confirmation policy.
func (s *Service) Policy() (gate.Policy, error) {
	return gate.NewPolicy(s.policy, s.UserConfig().Phrase)
}

// Checklist loads today's checklist. It refuses before acknowledgement so the
// read cannot initialize state for an unconfirmed day.
func (s *Service) Checklist() (record.Checklist, ritual.Progress, error) {
	if _, ok := s.AcknowledgedToday(); !ok {
		return record.Checklist{}, ritual.Progress{}, ErrNotAcknowledged
	}
	c, err := s.Tracker.Load()
	if err != nil {
		return c, ritual.Progress{}, err
	}
	return c, s.Tracker.Progress(c), nil
}

// Toggle sets one ritual item for today.
func (s *Service) Toggle(id string, value bool) (ritual.Progress, error) {
	if _, ok := s.AcknowledgedToday(); !ok {
		return ritual.Progress{}, ErrNotAcknowledged
	}
	return s.Tracker.Toggle(id, value)
}

// History returns the n most recent entries.
func (s *Service) History(n int) []record.HistoryEntry {
	return s.Ledger.Recent(n)
}

// Watch subscribes to store changes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.Records.Persistence().Watch(ctx)
}

// ItemState is one ritual item with its checked flag.
type ItemState struct {
	ritual.Item
	Checked bool `json:"checked"`
}

// Status summarizes today.
type Status struct {
	Date         string          `json:"date"`
	Acknowledged bool            `json:"acknowledged"`
	Action       string          `json:"action,omitempty"`
	At           time.Time       `json:"at,omitempty"`
	Progress     ritual.Progress `json:"progress"`
	Level        string          `json:"level"`
	Items        []ItemState     `json:"items"`
}

// Status reports today's acknowledgement and checklist without writing
// anything when today is unconfirmed.
func (s *Service) Status() (Status, error) {
	st := Status{Date: s.Today()}
	ack, ok := s.AcknowledgedToday()
	var c record.Checklist
	if ok {
		st.Acknowledged = true
		st.Action = ack.Action
		st.At = ack.Timestamp.Time
		var err error
		if c, err = s.Tracker.Load(); err != nil {
			return st, fmt.Errorf("app: status: %w", err)
		}
	}
	for _, it := range s.Tracker.Items() {
		st.Items = append(st.Items, ItemState{Item: it, Checked: ritual.Checked(c, it.ID)})
	}
	st.Progress = s.Tracker.Progress(c)
	st.Level = st.Progress.Level().String()
	return st, nil
}
