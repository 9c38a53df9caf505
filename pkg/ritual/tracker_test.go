package ritual

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
)

func newTracker(t *testing.T) (*Tracker, *store.Records, *timeutil.Fixed) {
	t.Helper()
	clock := &timeutil.Fixed{T: time.Date(2026, time.March, 3, 9, 0, 0, 0, time.Local)}
	records := store.NewRecords(store.NewMemory(), nil)
	return New(records, nil, clock, nil), records, clock
}

func TestLoadInitializesMissingChecklist(t *testing.T) {
	tr, records, _ := newTracker(t)
	c, err := tr.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Date != "2026-03-03" || len(c.Items) != 8 {
		t.Fatalf("checklist=%+v", c)
	}
	for id, v := range c.Items {
		if v {
			t.Fatalf("item %s checked on a fresh day", id)
		}
	}
	stored, ok := records.LoadChecklist()
	if !ok || stored.Date != "2026-03-03" {
		t.Fatalf("fresh checklist not persisted: %+v ok=%v", stored, ok)
	}
}

func TestNewDayResetsEverything(t *testing.T) {
	tr, records, _ := newTracker(t)
	yesterday := record.Checklist{Date: "2026-03-02", Items: map[string]bool{"gym": true, "read": true, "retired": true}}
	if err := records.SaveChecklist(yesterday); err != nil {
		t.Fatal(err)
	}
	c, err := tr.Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Date != "2026-03-03" || c.Items["gym"] || c.Items["read"] {
		t.Fatalf("stale checklist was merged: %+v", c)
	}
	if _, ok := c.Items["retired"]; ok {
		t.Fatalf("rollover kept an orphaned key")
	}
}

func TestSameDayAdoptsStoredMapVerbatim(t *testing.T) {
	tr, records, _ := newTracker(t)
	today := record.Checklist{Date: "2026-03-03", Items: map[string]bool{"gym": true, "retired": true}}
	if err := records.SaveChecklist(today); err != nil {
		t.Fatal(err)
	}
	c, err := tr.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Items) != 2 || !c.Items["gym"] || !c.Items["retired"] {
		t.Fatalf("stored map not adopted: %+v", c.Items)
	}
	p := tr.Progress(c)
	if p.Completed != 1 || p.Total != 8 {
		t.Fatalf("orphaned key counted: %+v", p)
	}
}

func TestToggle(t *testing.T) {
	tr, records, _ := newTracker(t)
	if _, err := tr.Load(); err != nil {
		t.Fatal(err)
	}

	p, err := tr.Toggle("gym", true)
	if err != nil {
		t.Fatal(err)
	}
	if p.Completed != 1 || p.Total != 8 || p.Level() != LevelPartial {
		t.Fatalf("progress=%+v level=%v", p, p.Level())
	}
	stored, _ := records.LoadChecklist()
	if !stored.Items["gym"] {
		t.Fatalf("toggle not persisted")
	}

	if p, err = tr.Toggle("gym", false); err != nil || p.Completed != 0 || p.Level() != LevelNone {
		t.Fatalf("untoggle progress=%+v err=%v", p, err)
	}

	if _, err := tr.Toggle("skydive", true); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("unknown item err=%v", err)
	}
}

func TestToggleAcrossMidnight(t *testing.T) {
	tr, records, clock := newTracker(t)
	if _, err := tr.Toggle("gym", true); err != nil {
		t.Fatal(err)
	}
	clock.Advance(24 * time.Hour)
	p, err := tr.Toggle("read", true)
	if err != nil {
		t.Fatal(err)
	}
	if p.Completed != 1 {
		t.Fatalf("yesterday's items leaked into today: %+v", p)
	}
	stored, _ := records.LoadChecklist()
	if stored.Date != "2026-03-04" || stored.Items["gym"] {
		t.Fatalf("stored=%+v", stored)
	}
}

func TestCompleteLevel(t *testing.T) {
	tr, _, _ := newTracker(t)
	var p Progress
	var err error
	for _, it := range tr.Items() {
		if p, err = tr.Toggle(it.ID, true); err != nil {
			t.Fatal(err)
		}
	}
	if p.Level() != LevelComplete || p.Ratio() != 1 {
		t.Fatalf("progress=%+v", p)
	}
}

func TestMalformedChecklistFallsBack(t *testing.T) {
	mem := store.NewMemory()
	if err := mem.Write(store.KeyChecklist, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	clock := &timeutil.Fixed{T: time.Date(2026, time.March, 3, 9, 0, 0, 0, time.Local)}
	tr := New(store.NewRecords(mem, nil), nil, clock, nil)
	c, err := tr.Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Date != "2026-03-03" || len(c.Items) != 8 {
		t.Fatalf("checklist=%+v", c)
	}
}

func TestFromConfig(t *testing.T) {
	items := FromConfig([]store.ItemConfig{
		{ID: "walk", Label: "Walk the dog"},
		{ID: " walk "},
		{ID: ""},
		{ID: "water"},
	})
	if len(items) != 2 || items[0].Label != "Walk the dog" || items[1].Label != "water" {
		t.Fatalf("items=%+v", items)
	}
	if got := FromConfig(nil); len(got) != len(DefaultItems()) {
		t.Fatalf("empty config should fall back to defaults, got %d", len(got))
	}
}
