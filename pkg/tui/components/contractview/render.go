// Package contractview renders contract blocks into terminal lines and keeps
// the scroll offset used by the gate.
package contractview

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/ackgate/pkg/contract"
	"tableflip.dev/ackgate/pkg/tui/theme"
)

// Lines renders blocks wrapped to width, one blank line between blocks.
func Lines(blocks []contract.Block, width int, th theme.ContractTheme) []string {
	if width < 10 {
		width = 10
	}
	var out []string
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, blockLines(b, width, th)...)
	}
	return out
}

func blockLines(b contract.Block, width int, th theme.ContractTheme) []string {
	switch b.Kind {
	case contract.Rule:
		return []string{th.Rule.Render(strings.Repeat("─", width))}
	case contract.Heading1:
		return wrap(spans(b.Spans, th, th.H1), "", width)
	case contract.Heading2:
		return wrap(spans(b.Spans, th, th.H2), "", width)
	case contract.Heading3:
		return wrap(spans(b.Spans, th, th.H3), "", width)
	case contract.Checkbox:
		marker := "☐ "
		if b.Checked {
			marker = th.Checked.Render("☑") + " "
		}
		return wrap(spans(b.Spans, th, th.Paragraph), marker, width)
	case contract.Numbered:
		return wrap(spans(b.Spans, th, th.Paragraph), th.Marker.Render(b.Number+".")+" ", width)
	case contract.Bullet:
		return wrap(spans(b.Spans, th, th.Paragraph), th.Marker.Render("•")+" ", width)
	default:
		return wrap(spans(b.Spans, th, th.Paragraph), "", width)
	}
}

func spans(ss []contract.Span, th theme.ContractTheme, base lipgloss.Style) string {
	var sb strings.Builder
	for _, s := range ss {
		style := base
		switch {
		case s.Bold && s.Italic:
			style = th.BoldItal
		case s.Bold:
			style = th.Bold
		case s.Italic:
			style = th.Italic
		}
		sb.WriteString(style.Render(s.Text))
	}
	return sb.String()
}

// wrap word-wraps text after marker and hangs continuation lines under the
// first character of text.
func wrap(text, marker string, width int) []string {
	indent := lipgloss.Width(marker)
	inner := width - indent
	if inner < 1 {
		inner = 1
	}
	lines := strings.Split(wordwrap.String(text, inner), "\n")
	pad := strings.Repeat(" ", indent)
	for i := range lines {
		if i == 0 {
			lines[i] = marker + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return lines
}
