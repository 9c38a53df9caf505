package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := map[string]struct {
		month time.Time
		want  int
	}{
		"october":  {time.Date(2026, time.October, 15, 0, 0, 0, 0, time.Local), 31},
		"february": {time.Date(2026, time.February, 3, 0, 0, 0, 0, time.Local), 28},
		"leap":     {time.Date(2028, time.February, 3, 0, 0, 0, 0, time.Local), 29},
	}
	for name, tc := range tests {
		if got := DaysIn(tc.month); got != tc.want {
			t.Fatalf("%s: got %d want %d", name, got, tc.want)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	// 1 October 2026 is a Thursday.
	out := Render(time.Date(2026, time.October, 15, 9, 0, 0, 0, time.Local), nil, Options{ShowHeader: true})
	lines := strings.Split(out, "\n")
	if lines[0] != Header {
		t.Fatalf("header=%q", lines[0])
	}
	if got, want := lines[1], "             1  2  3"; got != want {
		t.Fatalf("first week %q want %q", got, want)
	}
	if got, want := lines[len(lines)-1], "25 26 27 28 29 30 31"; got != want {
		t.Fatalf("last week %q want %q", got, want)
	}
	if len(lines) != 6 {
		t.Fatalf("rows=%d\n%s", len(lines), out)
	}
}

func TestRenderZero(t *testing.T) {
	if Render(time.Time{}, nil, Options{}) != "" {
		t.Fatal("zero month rendered")
	}
}
