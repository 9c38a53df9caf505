package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month holding today with confirmed days in bold.
func (pp *PrettyPrint) Month(today time.Time, entries []record.HistoryEntry) {
	confirmed := make(map[string]bool, len(entries))
	for _, e := range entries {
		confirmed[e.Date] = true
	}

	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	tf := color.New(color.FgWhite, color.Italic)

	m := first.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgGreen)

	// Pad out the start of the month.
	d := first.Weekday()
	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	days := first.AddDate(0, 1, -1).Day()
	for i := 1; i <= days; i++ {
		c := l1
		if confirmed[first.AddDate(0, 0, i-1).Format(timeutil.LayoutDate)] {
			c = l2
		}
		_, _ = c.Fprintf(pp.out(), "%2d ", i)
		d++
		if d > time.Saturday {
			_, _ = fmt.Fprintln(pp.out())
			d = time.Sunday
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprintln(pp.out())
	}
	pp.NewLine()
}
