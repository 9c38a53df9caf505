// Package calendar renders a month grid with confirmed days highlighted.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Header is the weekday row, Sunday first.
const Header = "Su Mo Tu We Th Fr Sa"

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle    lipgloss.Style
	EmptyStyle     lipgloss.Style
	ConfirmedStyle lipgloss.Style
	TodayStyle     lipgloss.Style
	ShowHeader     bool
}

// Render produces a multi-line calendar for the month holding today. Days
// whose date key is in confirmed use ConfirmedStyle.
func Render(today time.Time, confirmed map[string]bool, opts Options) string {
	if today.IsZero() {
		return ""
	}
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	days := DaysIn(first)

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(Header))
	}

	offset := int(first.Weekday()) // Sunday == 0
	rows := (offset + days + 6) / 7
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > days {
				cells = append(cells, "  ")
				continue
			}
			style := opts.EmptyStyle
			if confirmed[first.AddDate(0, 0, day-1).Format("2006-01-02")] {
				style = opts.ConfirmedStyle
			}
			if day == today.Day() {
				style = style.Inherit(opts.TodayStyle)
			}
			cells = append(cells, style.Render(fmt.Sprintf("%2d", day)))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

// DaysIn returns the number of days in the month of t.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}
