package contract

import (
	"fmt"
	"strings"
)

// Kind is the type of a display block.
type Kind int

const (
	Paragraph Kind = iota
	Heading1
	Heading2
	Heading3
	Rule
	Checkbox
	Numbered
	Bullet
)

var kindNames = map[Kind]string{
	Paragraph: "p",
	Heading1:  "h1",
	Heading2:  "h2",
	Heading3:  "h3",
	Rule:      "hr",
	Checkbox:  "checkbox",
	Numbered:  "ol",
	Bullet:    "ul",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Span is a run of inline text with uniform emphasis.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Block is one line-level element of the document.
type Block struct {
	Kind Kind
	// Checked is set for checked Checkbox blocks. They are display only.
	Checked bool
	// Number is the literal digits of a Numbered block.
	Number string
	Spans  []Span
}

// Text returns the block's text without emphasis.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// String renders the block on one line with markdown-style emphasis markers,
// for logs and golden files.
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString(b.Kind.String())
	switch b.Kind {
	case Checkbox:
		if b.Checked {
			sb.WriteString("[x]")
		} else {
			sb.WriteString("[ ]")
		}
	case Numbered:
		sb.WriteString(b.Number)
		sb.WriteString(".")
	}
	if b.Kind == Rule {
		return sb.String()
	}
	sb.WriteString(" | ")
	for _, s := range b.Spans {
		switch {
		case s.Bold && s.Italic:
			sb.WriteString("***" + s.Text + "***")
		case s.Bold:
			sb.WriteString("**" + s.Text + "**")
		case s.Italic:
			sb.WriteString("_" + s.Text + "_")
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// Dump renders blocks one per line.
func Dump(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
