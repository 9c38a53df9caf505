package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow matches the history retention window.
	DefaultWindow = "30d"

	day  = 24 * time.Hour
	week = 7 * day
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units          = map[string]time.Duration{
		"s": time.Second, "sec": time.Second, "secs": time.Second, "second": time.Second, "seconds": time.Second,
		"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
		"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": week, "wk": week, "wks": week, "week": week, "weeks": week,
	}
)

// ParseWindow parses compact spans like "1w", "3d" or "1w2d6h" and returns the
// duration together with its canonical label. Empty input yields DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for rest != "" {
		m := segmentPattern.FindStringSubmatch(rest)
		if len(m) != 3 {
			return 0, "", fmt.Errorf("invalid duration segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid duration value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported duration unit %q", m[2])
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("duration must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with w/d/h/m/s tokens, largest first.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	var b strings.Builder
	for _, u := range []struct {
		label string
		size  time.Duration
	}{{"w", week}, {"d", day}, {"h", time.Hour}, {"m", time.Minute}, {"s", time.Second}} {
		if d < u.size {
			continue
		}
		fmt.Fprintf(&b, "%d%s", d/u.size, u.label)
		d %= u.size
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
