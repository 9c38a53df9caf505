// Package timeutil holds the calendar helpers shared by the gate, the ritual
// tracker and the history ledger.
package timeutil

import (
	"time"
)

const (
	// LayoutDate is the canonical date key layout used in every stored record.
	LayoutDate = "2006-01-02"

	layoutLong  = "Monday, 2 January 2006"
	layoutShort = "Mon 2 Jan"
)

// Clock reports the current instant. Components take a Clock so tests can pin
// "today" without touching the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in local time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Fixed is a Clock frozen at T. Advance moves it forward.
type Fixed struct {
	T time.Time
}

// Now implements Clock.
func (f *Fixed) Now() time.Time { return f.T }

// Advance moves the clock by d.
func (f *Fixed) Advance(d time.Duration) { f.T = f.T.Add(d) }

// Or returns c, or the system clock when c is nil.
func Or(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}

// DateKey returns the local calendar date of t as "2006-01-02".
func DateKey(t time.Time) string {
	return t.Local().Format(LayoutDate)
}

// Today returns the date key for the clock's current instant.
func Today(c Clock) string {
	return DateKey(Or(c).Now())
}

// ParseDate parses a date key into local midnight.
func ParseDate(key string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, key, time.Local)
}

// AddDays shifts a date key by n calendar days. Invalid keys are returned
// unchanged.
func AddDays(key string, n int) string {
	t, err := ParseDate(key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, n).Format(LayoutDate)
}

// FormatLong renders t as "Thursday, 15 October 2026".
func FormatLong(t time.Time) string {
	return t.Local().Format(layoutLong)
}

// FormatShort renders a date key as "Thu 15 Oct". Keys that do not parse are
// returned as-is.
func FormatShort(key string) string {
	t, err := ParseDate(key)
	if err != nil {
		return key
	}
	return t.Format(layoutShort)
}
