package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/ackgate/pkg/gate"
	"tableflip.dev/ackgate/pkg/guard"
	"tableflip.dev/ackgate/pkg/notify"
	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
)

var bottom = gate.Position{Offset: 900, ViewportHeight: 100, ContentHeight: 1000}

func newService(t *testing.T, p store.Persistence, opts Options) (*Service, *timeutil.Fixed) {
	t.Helper()
	clock := &timeutil.Fixed{T: time.Date(2026, time.October, 15, 7, 30, 0, 0, time.Local)}
	opts.Clock = clock
	return New(p, opts), clock
}

func unlock(t *testing.T, svc *Service) (*Session, *gate.ManualTimer) {
	t.Helper()
	timer := &gate.ManualTimer{}
	ss, err := svc.NewSession(timer)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	ss.Scroll(bottom)
	if !timer.Fire() {
		t.Fatal("dwell timer was not armed")
	}
	return ss, timer
}

func TestFirstLaunchCheckboxScenario(t *testing.T) {
	mem := store.NewMemory()
	svc, _ := newService(t, mem, Options{})

	if _, ok := svc.AcknowledgedToday(); ok {
		t.Fatal("fresh store reports an acknowledgement")
	}
	if svc.CanClose() != guard.Veto {
		t.Fatal("close allowed before confirmation")
	}

	ss, _ := unlock(t, svc)
	ss.SetInput(gate.Input{Checked: true, Text: "Ship the login page"})
	if !ss.Ready() {
		t.Fatalf("state=%v status=%q", ss.State(), ss.Status())
	}
	conf, err := ss.Confirm(context.Background())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := conf.Notified.Wait(); err != nil {
		t.Fatalf("notify: %v", err)
	}

	ack, ok := svc.AcknowledgedToday()
	if !ok || ack.Date != "2026-10-15" || ack.Action != "Ship the login page" {
		t.Fatalf("ack=%+v ok=%v", ack, ok)
	}
	h := svc.History(7)
	if len(h) != 1 || h[0].Date != "2026-10-15" || h[0].Action != "Ship the login page" {
		t.Fatalf("history=%+v", h)
	}
	c, p, err := svc.Checklist()
	if err != nil {
		t.Fatal(err)
	}
	if c.Date != "2026-10-15" || p.Completed != 0 || p.Total != 8 {
		t.Fatalf("checklist=%+v progress=%+v", c, p)
	}
	if svc.CanClose() != guard.Allow {
		t.Fatal("close vetoed after confirmation")
	}
	if _, err := ss.Confirm(context.Background()); !errors.Is(err, gate.ErrClosed) {
		t.Fatalf("second confirm err=%v", err)
	}
}

func TestTypedPhraseScenario(t *testing.T) {
	svc, _ := newService(t, store.NewMemory(), Options{Policy: gate.PolicyPhrase})
	ss, _ := unlock(t, svc)

	ss.SetInput(gate.Input{Text: "i   ACKNOWLEDGE that i will begin now."})
	conf, err := ss.Confirm(context.Background())
	if err != nil {
		t.Fatalf("confirm: %v (status %q)", err, ss.Status())
	}
	if conf.Acknowledgement.Action != record.Defaults().Phrase {
		t.Fatalf("action=%q", conf.Acknowledgement.Action)
	}
}

func TestReopenSameDaySkipsGate(t *testing.T) {
	mem := store.NewMemory()
	svc, clock := newService(t, mem, Options{})
	ss, _ := unlock(t, svc)
	ss.SetInput(gate.Input{Checked: true, Text: "Write tests"})
	if _, err := ss.Confirm(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle("gym", true); err != nil {
		t.Fatal(err)
	}

	clock.Advance(6 * time.Hour)
	reopened := New(mem, Options{Clock: clock})
	if _, ok := reopened.AcknowledgedToday(); !ok {
		t.Fatal("acknowledgement lost on reopen")
	}
	c, p, err := reopened.Checklist()
	if err != nil {
		t.Fatal(err)
	}
	if !c.Items["gym"] || p.Completed != 1 {
		t.Fatalf("checklist=%+v", c)
	}

	// The next day the gate is back and the ritual is refused.
	clock.Advance(24 * time.Hour)
	if _, ok := reopened.AcknowledgedToday(); ok {
		t.Fatal("yesterday's acknowledgement satisfied today")
	}
	if _, err := reopened.Toggle("gym", true); !errors.Is(err, ErrNotAcknowledged) {
		t.Fatalf("toggle err=%v", err)
	}
}

func TestNotifierFailureDoesNotBlockUnlock(t *testing.T) {
	release := make(chan struct{})
	n := notify.NotifierFunc(func(context.Context, time.Time) error {
		<-release
		return errors.New("side channel down")
	})
	svc, _ := newService(t, store.NewMemory(), Options{Notifier: n})
	ss, _ := unlock(t, svc)
	ss.SetInput(gate.Input{Checked: true, Text: "Call the bank"})

	conf, err := ss.Confirm(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := svc.AcknowledgedToday(); !ok {
		t.Fatal("unlock waited on the notifier")
	}
	close(release)
	if err := conf.Notified.Wait(); err == nil {
		t.Fatal("expected notifier error to be reported")
	}
	if _, ok := svc.AcknowledgedToday(); !ok {
		t.Fatal("notifier failure undid the acknowledgement")
	}
}

func TestStatusBeforeAcknowledgementWritesNothing(t *testing.T) {
	mem := store.NewMemory()
	svc, _ := newService(t, mem, Options{})
	st, err := svc.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Acknowledged || st.Progress.Total != 8 || st.Level != "none" || len(st.Items) != 8 {
		t.Fatalf("status=%+v", st)
	}
	if keys := mem.Keys(context.Background()); len(keys) != 0 {
		t.Fatalf("status wrote %v", keys)
	}
	if _, _, err := svc.Checklist(); !errors.Is(err, ErrNotAcknowledged) {
		t.Fatalf("checklist err=%v", err)
	}
}

func TestBadPolicyRefusesSession(t *testing.T) {
	svc, _ := newService(t, store.NewMemory(), Options{Policy: "retina"})
	if _, err := svc.NewSession(nil); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestReportStreak(t *testing.T) {
	mem := store.NewMemory()
	svc, _ := newService(t, mem, Options{})
	seed := []record.HistoryEntry{
		{Date: "2026-10-14"},
		{Date: "2026-10-13"},
		{Date: "2026-10-11"},
		{Date: "2026-09-01"},
	}
	if err := svc.Records.SaveHistory(seed); err != nil {
		t.Fatal(err)
	}
	r := svc.Report(7 * 24 * time.Hour)
	if r.Streak != 2 || len(r.Entries) != 3 || r.Since != "2026-10-08" || r.Until != "2026-10-15" {
		t.Fatalf("report=%+v", r)
	}
}

// flakyWrites fails every write to one key until healed.
type flakyWrites struct {
	*store.Memory
	key    string
	broken bool
}

func (f *flakyWrites) Write(key string, data []byte) error {
	if f.broken && key == f.key {
		return errors.New("disk full")
	}
	return f.Memory.Write(key, data)
}

func TestConfirmKeepsGateOpenWhenWriteFails(t *testing.T) {
	p := &flakyWrites{Memory: store.NewMemory(), key: store.KeyAcknowledgement, broken: true}
	svc, _ := newService(t, p, Options{})
	ss, _ := unlock(t, svc)
	ss.SetInput(gate.Input{Checked: true, Text: "Ship the login page"})

	if _, err := ss.Confirm(context.Background()); err == nil {
		t.Fatal("expected write error")
	}
	if ss.Closed() || !ss.Ready() {
		t.Fatalf("gate closed=%v state=%v after failed write", ss.Closed(), ss.State())
	}
	if svc.CanClose() != guard.Veto {
		t.Fatal("close allowed without a stored acknowledgement")
	}

	p.broken = false
	if _, err := ss.Confirm(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !ss.Closed() || svc.CanClose() != guard.Allow {
		t.Fatalf("closed=%v decision=%v after retry", ss.Closed(), svc.CanClose())
	}
}

func TestAcknowledgedTodayAcceptsRecordWithoutFlag(t *testing.T) {
	mem := store.NewMemory()
	svc, _ := newService(t, mem, Options{})
	raw := `{"date":"2026-10-15","action":"Ship the login page","timestamp":1760506200000}`
	if err := mem.Write(store.KeyAcknowledgement, []byte(raw)); err != nil {
		t.Fatal(err)
	}
	ack, ok := svc.AcknowledgedToday()
	if !ok || ack.Action != "Ship the login page" {
		t.Fatalf("AcknowledgedToday()=%+v,%v", ack, ok)
	}
	if _, _, err := svc.Checklist(); err != nil {
		t.Fatalf("checklist err=%v", err)
	}
}
