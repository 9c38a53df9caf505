// Package contract turns the contract document into display blocks.
package contract

import (
	"strings"
	"time"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// DatePlaceholder is replaced with the long formatted date by Render.
const DatePlaceholder = "{{DATE}}"

// Render substitutes the first date placeholder and transforms the result.
func Render(src string, now time.Time) []Block {
	return Transform(strings.Replace(src, DatePlaceholder, timeutil.FormatLong(now), 1))
}

// Transform rewrites src line by line into blocks. Structural lines are
// anchored at column 0; any other non-blank line is trimmed and joined with
// its neighbours into one paragraph.
func Transform(src string) []Block {
	var (
		blocks []Block
		para   []Span
	)
	flush := func() {
		if len(para) > 0 {
			blocks = append(blocks, Block{Kind: Paragraph, Spans: para})
			para = nil
		}
	}
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if b, ok := structural(line); ok {
			flush()
			blocks = append(blocks, b)
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if len(para) > 0 {
			para = appendSpan(para, Span{Text: " "})
		}
		for _, s := range parseInline(trimmed) {
			para = appendSpan(para, s)
		}
	}
	flush()
	return blocks
}

func structural(line string) (Block, bool) {
	switch {
	case strings.HasPrefix(line, "### ") && len(line) > 4:
		return Block{Kind: Heading3, Spans: parseInline(line[4:])}, true
	case strings.HasPrefix(line, "## ") && len(line) > 3:
		return Block{Kind: Heading2, Spans: parseInline(line[3:])}, true
	case strings.HasPrefix(line, "# ") && len(line) > 2:
		return Block{Kind: Heading1, Spans: parseInline(line[2:])}, true
	case line == "---":
		return Block{Kind: Rule}, true
	}
	if text, checked, ok := checkbox(line); ok {
		return Block{Kind: Checkbox, Checked: checked, Spans: parseInline(text)}, true
	}
	if num, text, ok := numbered(line); ok {
		return Block{Kind: Numbered, Number: num, Spans: parseInline(text)}, true
	}
	if text, ok := strings.CutPrefix(line, "- "); ok && text != "" && !strings.HasPrefix(text, "[") {
		return Block{Kind: Bullet, Spans: parseInline(text)}, true
	}
	return Block{}, false
}

func checkbox(line string) (text string, checked, ok bool) {
	if len(line) <= 6 || !strings.HasPrefix(line, "- [") || line[4] != ']' || line[5] != ' ' {
		return "", false, false
	}
	switch line[3] {
	case ' ':
		return line[6:], false, true
	case 'x', 'X':
		return line[6:], true, true
	}
	return "", false, false
}

func numbered(line string) (num, text string, ok bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(line[i:], ". ") || len(line) <= i+2 {
		return "", "", false
	}
	return line[:i], line[i+2:], true
}

// Compose builds the contract document for cfg. The date line keeps the
// placeholder for Render.
func Compose(cfg record.UserConfig) string {
	cfg = cfg.WithDefaults()
	var sb strings.Builder
	sb.WriteString("# " + cfg.Title + "\n\n")
	sb.WriteString("**Date:** " + DatePlaceholder + "\n")
	sb.WriteString("**For:** " + cfg.Name + "\n\n")
	sb.WriteString("---\n\n")
	sb.WriteString(strings.TrimSpace(cfg.Body) + "\n\n")
	sb.WriteString("---\n\n")
	sb.WriteString("**" + cfg.Closing + "**")
	return sb.String()
}
