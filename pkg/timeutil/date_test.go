package timeutil

import (
	"testing"
	"time"
)

func TestDateKeyUsesLocalCalendar(t *testing.T) {
	at := time.Date(2026, time.October, 15, 23, 59, 0, 0, time.Local)
	if got := DateKey(at); got != "2026-10-15" {
		t.Fatalf("DateKey=%q", got)
	}
	clock := &Fixed{T: at}
	clock.Advance(2 * time.Minute)
	if got := Today(clock); got != "2026-10-16" {
		t.Fatalf("Today after midnight=%q", got)
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"2026-10-15", -30, "2026-09-15"},
		{"2026-03-01", -1, "2026-02-28"},
		{"2024-03-01", -1, "2024-02-29"},
		{"not-a-date", 3, "not-a-date"},
	}
	for _, tc := range cases {
		if got := AddDays(tc.in, tc.n); got != tc.want {
			t.Fatalf("AddDays(%q, %d)=%q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestFormats(t *testing.T) {
	at := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.Local)
	if got := FormatLong(at); got != "Thursday, 15 October 2026" {
		t.Fatalf("FormatLong=%q", got)
	}
	if got := FormatShort("2026-10-15"); got != "Thu 15 Oct" {
		t.Fatalf("FormatShort=%q", got)
	}
	if got := FormatShort("garbage"); got != "garbage" {
		t.Fatalf("FormatShort passthrough=%q", got)
	}
}
