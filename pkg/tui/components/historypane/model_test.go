package historypane

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/tui/theme"
)

func TestViewListsEntries(t *testing.T) {
	entries := []record.HistoryEntry{
		{Date: "2026-10-15", Action: "Ship the login page"},
		{Date: "2026-10-14"},
	}
	view := View(entries, 2, time.Date(2026, time.October, 15, 9, 0, 0, 0, time.Local), 60, theme.Default().Modal)
	for _, want := range []string{"Su Mo Tu We Th Fr Sa", "Thu 15 Oct", "Ship the login page", "(no action recorded)", "Streak: 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("missing %q in\n%s", want, view)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	if view := View(nil, 0, time.Time{}, 60, theme.Default().Modal); !strings.Contains(view, "No history yet.") {
		t.Fatalf("view=%s", view)
	}
}
