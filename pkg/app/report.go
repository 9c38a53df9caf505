package app

import (
	"time"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// Report summarizes confirmed days inside a window.
type Report struct {
	Since   string                `json:"since"`
	Until   string                `json:"until"`
	Entries []record.HistoryEntry `json:"entries"`
	// Streak counts consecutive confirmed days ending today, or yesterday
	// when today is still open.
	Streak int `json:"streak"`
}

// Report returns the history entries dated within window of today.
func (s *Service) Report(window time.Duration) Report {
	now := s.clock.Now()
	r := Report{
		Since:   timeutil.DateKey(now.Add(-window)),
		Until:   timeutil.DateKey(now),
		Entries: s.Ledger.Within(window),
	}
	r.Streak = streak(s.Ledger.All(), r.Until)
	return r
}

func streak(entries []record.HistoryEntry, today string) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Date] = true
	}
	day := today
	if !days[day] {
		day = timeutil.AddDays(day, -1)
	}
	n := 0
	for days[day] {
		n++
		day = timeutil.AddDays(day, -1)
	}
	return n
}
