// Package history keeps the rolling, newest-first list of confirmed days.
package history

import (
	"fmt"
	"log/slog"
	"time"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
)

const (
	// RetentionDays is how far back Append keeps entries, in calendar days.
	RetentionDays = 30
	// DefaultRecent is the number of entries the history view shows.
	DefaultRecent = 7
)

// Ledger appends to and reads the history record.
type Ledger struct {
	records *store.Records
	clock   timeutil.Clock
	log     *slog.Logger
}

func New(records *store.Records, clock timeutil.Clock, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{records: records, clock: timeutil.Or(clock), log: log}
}

// Cutoff is the newest date key Append drops when run on today. An entry
// dated exactly RetentionDays ago is already outside the window.
func Cutoff(today string) string {
	return timeutil.AddDays(today, -RetentionDays)
}

// Append prunes entries older than the retention window, prepends the new
// entry and persists the result. Pruning only happens here, so stored entries
// may outlive the window until the next append.
func (l *Ledger) Append(date, action string) ([]record.HistoryEntry, error) {
	now := l.clock.Now()
	cutoff := Cutoff(timeutil.DateKey(now))

	existing := l.records.LoadHistory()
	kept := make([]record.HistoryEntry, 0, len(existing)+1)
	kept = append(kept, record.HistoryEntry{Date: date, Action: action, Timestamp: record.At(now)})
	dropped := 0
	for _, e := range existing {
		// Date keys are zero-padded, so string order is calendar order.
		if e.Date > cutoff {
			kept = append(kept, e)
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		l.log.Debug("history: pruned entries", "count", dropped, "cutoff", cutoff)
	}
	if err := l.records.SaveHistory(kept); err != nil {
		return nil, fmt.Errorf("history: append: %w", err)
	}
	return kept, nil
}

// All returns the stored sequence, newest first, without pruning.
func (l *Ledger) All() []record.HistoryEntry {
	return l.records.LoadHistory()
}

// Recent returns at most n entries from the front of the stored sequence.
func (l *Ledger) Recent(n int) []record.HistoryEntry {
	h := l.records.LoadHistory()
	if n < 0 {
		n = 0
	}
	if n < len(h) {
		h = h[:n]
	}
	return h
}

// Within returns the entries dated on or after today minus window.
func (l *Ledger) Within(window time.Duration) []record.HistoryEntry {
	since := timeutil.DateKey(l.clock.Now().Add(-window))
	var out []record.HistoryEntry
	for _, e := range l.records.LoadHistory() {
		if e.Date >= since {
			out = append(out, e)
		}
	}
	return out
}
