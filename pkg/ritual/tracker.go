// Package ritual tracks the daily checklist: same-day persistence, destructive
// reset on a new day and completion progress.
package ritual

import (
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// ErrUnknownItem is returned by Toggle for an id outside the enumeration.
var ErrUnknownItem = errors.New("ritual: unknown item")

// Tracker owns the checklist for the configured items. It holds no
// authoritative state: every call re-derives from the store.
type Tracker struct {
	records *store.Records
	items   []Item
	clock   timeutil.Clock
	log     *slog.Logger
}

// New returns a tracker over items. Empty items use DefaultItems.
func New(records *store.Records, items []Item, clock timeutil.Clock, log *slog.Logger) *Tracker {
	if len(items) == 0 {
		items = DefaultItems()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Tracker{records: records, items: items, clock: timeutil.Or(clock), log: log}
}

// Items returns the fixed enumeration in display order.
func (t *Tracker) Items() []Item {
	return append([]Item(nil), t.items...)
}

// Item looks up an item by id.
func (t *Tracker) Item(id string) (Item, bool) {
	for _, it := range t.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Load returns today's checklist. A missing, malformed or stale record is
// replaced with an all-false checklist that is persisted immediately. A
// current record is adopted verbatim, orphaned keys included.
func (t *Tracker) Load() (record.Checklist, error) {
	today := timeutil.Today(t.clock)
	c, ok := t.records.LoadChecklist()
	if ok && c.Date == today {
		return c, nil
	}
	if ok {
		t.log.Info("ritual: new day, resetting checklist", "stored", c.Date, "today", today)
	}
	return t.reset(today)
}

// Reset persists an all-false checklist for today.
func (t *Tracker) Reset() (record.Checklist, error) {
	return t.reset(timeutil.Today(t.clock))
}

func (t *Tracker) reset(today string) (record.Checklist, error) {
	c := record.Fresh(today, ids(t.items))
	if err := t.records.SaveChecklist(c); err != nil {
		return c, fmt.Errorf("ritual: reset: %w", err)
	}
	return c, nil
}

// Toggle sets one item, persists the whole checklist and returns the new
// progress.
func (t *Tracker) Toggle(id string, value bool) (Progress, error) {
	if _, ok := t.Item(id); !ok {
		return Progress{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	c, err := t.Load()
	if err != nil {
		return Progress{}, err
	}
	c = c.Clone()
	c.Items[id] = value
	if err := t.records.SaveChecklist(c); err != nil {
		return Progress{}, fmt.Errorf("ritual: toggle %s: %w", id, err)
	}
	t.log.Debug("ritual: toggled", "item", id, "value", value)
	return progressOf(t.items, c.Items), nil
}

// Progress computes progress for a checklist against the enumeration.
func (t *Tracker) Progress(c record.Checklist) Progress {
	return progressOf(t.items, c.Items)
}

// Checked reports whether id is checked in c. Absent ids are unchecked.
func Checked(c record.Checklist, id string) bool {
	return c.Items[id]
}
