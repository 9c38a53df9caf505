// Package historypane renders the recent-history overlay.
package historypane

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/timeutil"
	"tableflip.dev/ackgate/pkg/tui/components/calendar"
	"tableflip.dev/ackgate/pkg/tui/theme"
)

// View renders this month's grid and the entries newest first inside a
// framed box of the given width.
func View(entries []record.HistoryEntry, streak int, today time.Time, width int, th theme.ModalTheme) string {
	inner := width - th.Frame.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}
	lines := []string{th.Title.Render("Recent acknowledgements")}
	if streak > 0 {
		lines = append(lines, th.Muted.Render(fmt.Sprintf("Streak: %d day(s)", streak)))
	}
	lines = append(lines, "")
	if !today.IsZero() {
		confirmed := make(map[string]bool, len(entries))
		for _, e := range entries {
			confirmed[e.Date] = true
		}
		lines = append(lines, calendar.Render(today, confirmed, calendar.Options{
			HeaderStyle:    th.Muted,
			EmptyStyle:     th.Muted,
			ConfirmedStyle: th.Confirmed,
			TodayStyle:     th.Today,
			ShowHeader:     true,
		}), "")
	}
	if len(entries) == 0 {
		lines = append(lines, th.Muted.Render("No history yet."))
	}
	for _, e := range entries {
		date := timeutil.FormatShort(e.Date)
		action := e.Action
		if action == "" {
			action = "(no action recorded)"
		}
		row := fmt.Sprintf("%-10s  %s", date, action)
		lines = append(lines, th.Body.Render(truncate.StringWithTail(row, uint(inner), "…")))
	}
	lines = append(lines, "", th.Muted.Render("h or esc to close"))
	return th.Frame.Width(width).Render(strings.Join(lines, "\n"))
}

// Center places box in the middle of a width x height area.
func Center(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
