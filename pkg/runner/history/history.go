package history

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/ackgate/pkg/app"
	ledger "tableflip.dev/ackgate/pkg/history"
	"tableflip.dev/ackgate/pkg/printers"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// History lists confirmed days. Within, when set, wins over Limit.
type History struct {
	Service *app.Service
	Limit   int
	Within  string
	// Calendar adds this month's grid above the list.
	Calendar bool
	JSON     bool
	Out      io.Writer
}

func (h *History) Do(ctx context.Context) error {
	if h.Service == nil {
		return errors.New("can not list history, no service")
	}
	report := h.Service.Report(ledger.RetentionDays * 24 * time.Hour)
	if h.Within != "" {
		d, _, err := timeutil.ParseWindow(h.Within)
		if err != nil {
			return err
		}
		report = h.Service.Report(d)
	} else {
		limit := h.Limit
		if limit <= 0 {
			limit = ledger.DefaultRecent
		}
		report.Entries = h.Service.History(limit)
	}

	if h.JSON {
		return printers.JSON(h.Out, report)
	}
	pp := printers.PrettyPrint{Out: h.Out}
	if h.Calendar {
		pp.Month(h.Service.Now(), h.Service.Ledger.All())
	}
	pp.History(report.Entries, report.Streak)
	return nil
}
