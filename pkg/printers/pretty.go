package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/contract"
	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/ritual"
	"tableflip.dev/ackgate/pkg/timeutil"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func levelColor(l ritual.Level) *color.Color {
	switch l {
	case ritual.LevelComplete:
		return color.New(color.FgGreen, color.Bold)
	case ritual.LevelPartial:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// Status prints today's acknowledgement and checklist.
func (pp *PrettyPrint) Status(st app.Status) {
	pp.Title(timeutil.FormatShort(st.Date))
	if !st.Acknowledged {
		_, _ = color.New(color.FgRed).Fprintln(pp.out(), "Not acknowledged yet. Run `ackgate ui` to read today's contract.")
		pp.NewLine()
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "Acknowledged at %s", st.At.Local().Format("15:04"))
	if st.Action != "" {
		_, _ = f.Fprintf(pp.out(), ": %s", st.Action)
	}
	_, _ = fmt.Fprintln(pp.out())

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range st.Items {
		mark := "[ ]"
		if it.Checked {
			mark = color.GreenString("[x]")
		}
		tbl.AddRow(mark, it.ID, it.Label)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = levelColor(levelOf(st.Level)).Fprintf(pp.out(), "%d/%d %s\n", st.Progress.Completed, st.Progress.Total, st.Level)
	pp.NewLine()
}

func levelOf(s string) ritual.Level {
	switch s {
	case ritual.LevelComplete.String():
		return ritual.LevelComplete
	case ritual.LevelPartial.String():
		return ritual.LevelPartial
	}
	return ritual.LevelNone
}

// History prints entries newest first.
func (pp *PrettyPrint) History(entries []record.HistoryEntry, streak int) {
	pp.TitleWithCount("History", len(entries))
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 72
	tbl.Wrap = true
	for _, e := range entries {
		tbl.AddRow(color.New(color.FgHiYellow, color.Faint).Sprint(e.Date), e.Action)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	if streak > 0 {
		_, _ = color.New(color.Faint).Fprintf(pp.out(), "streak: %d day(s)\n", streak)
	}
	pp.NewLine()
}

// Contract prints rendered contract blocks.
func (pp *PrettyPrint) Contract(blocks []contract.Block) {
	for i, b := range blocks {
		if i > 0 {
			pp.NewLine()
		}
		switch b.Kind {
		case contract.Rule:
			_, _ = color.New(color.Faint).Fprintln(pp.out(), strings.Repeat("-", 40))
			continue
		case contract.Heading1, contract.Heading2:
			_, _ = color.New(color.Bold, color.Underline).Fprintln(pp.out(), b.Text())
			continue
		case contract.Heading3:
			_, _ = color.New(color.Bold, color.Italic).Fprintln(pp.out(), b.Text())
			continue
		case contract.Checkbox:
			if b.Checked {
				_, _ = fmt.Fprint(pp.out(), "[x] ")
			} else {
				_, _ = fmt.Fprint(pp.out(), "[ ] ")
			}
		case contract.Numbered:
			_, _ = fmt.Fprintf(pp.out(), "%s. ", b.Number)
		case contract.Bullet:
			_, _ = fmt.Fprint(pp.out(), "• ")
		}
		pp.spans(b.Spans)
		_, _ = fmt.Fprintln(pp.out())
	}
}

func (pp *PrettyPrint) spans(ss []contract.Span) {
	for _, s := range ss {
		var attrs []color.Attribute
		if s.Bold {
			attrs = append(attrs, color.Bold)
		}
		if s.Italic {
			attrs = append(attrs, color.Italic)
		}
		_, _ = color.New(attrs...).Fprint(pp.out(), s.Text)
	}
}

// Config prints the editable document fields.
func (pp *PrettyPrint) Config(cfg record.UserConfig) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(color.New(color.Bold).Sprint("Field"), color.New(color.Bold).Sprint("Value"))
	for _, f := range record.ConfigFields() {
		v, _ := cfg.Get(f)
		if f == "body" {
			v = fmt.Sprintf("(%d lines)", strings.Count(strings.TrimSpace(v), "\n")+1)
		}
		tbl.AddRow(f, v)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
