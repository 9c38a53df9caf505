package contract

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"tableflip.dev/ackgate/pkg/record"
)

var fixedDay = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.Local)

func TestRenderGolden(t *testing.T) {
	src, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatal(err)
	}
	blocks := Render(string(src), fixedDay)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sample", []byte(Dump(blocks)))
}

func TestTransformIsDeterministic(t *testing.T) {
	src := Compose(record.Defaults())
	a := Render(src, fixedDay)
	b := Render(src, fixedDay)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two renders of the same source differ")
	}
}

func TestInlineSpans(t *testing.T) {
	tests := map[string][]Span{
		"plain": {{Text: "plain"}},
		"**bold** then *it*": {
			{Text: "bold", Bold: true},
			{Text: " then "},
			{Text: "it", Italic: true},
		},
		"a * b * c":     {{Text: "a * b * c"}},
		"[*not*]":       {{Text: "[*not*]"}},
		"*open only":    {{Text: "*open only"}},
		"**unclosed":    {{Text: "**unclosed"}},
		"***":           {{Text: "*", Italic: true}},
		"x *y * z* end": {{Text: "x "}, {Text: "y * z", Italic: true}, {Text: " end"}},
		"**a *b* c**": {
			{Text: "a ", Bold: true},
			{Text: "b", Bold: true, Italic: true},
			{Text: " c", Bold: true},
		},
	}
	for in, want := range tests {
		if got := parseInline(in); !reflect.DeepEqual(got, want) {
			t.Fatalf("parseInline(%q)=%+v, want %+v", in, got, want)
		}
	}
}

func TestStructuralLines(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		ok   bool
	}{
		{"# Title", Heading1, true},
		{"## Title", Heading2, true},
		{"### Title", Heading3, true},
		{"#### Title", Paragraph, false},
		{"# ", Paragraph, false},
		{" # Title", Paragraph, false},
		{"---", Rule, true},
		{"----", Paragraph, false},
		{"- [ ] todo", Checkbox, true},
		{"- [x] done", Checkbox, true},
		{"- [X] done", Checkbox, true},
		{"- [y] maybe", Paragraph, false},
		{"- [ ] ", Paragraph, false},
		{"3. three", Numbered, true},
		{"3.three", Paragraph, false},
		{". none", Paragraph, false},
		{"- item", Bullet, true},
		{"- [link]", Paragraph, false},
		{"-item", Paragraph, false},
	}
	for _, tc := range tests {
		b, ok := structural(tc.line)
		if ok != tc.ok || (ok && b.Kind != tc.kind) {
			t.Fatalf("structural(%q)=%v,%v want %v,%v", tc.line, b.Kind, ok, tc.kind, tc.ok)
		}
	}
}

func TestRenderReplacesFirstPlaceholderOnly(t *testing.T) {
	blocks := Render("{{DATE}}\n\n{{DATE}}", fixedDay)
	if len(blocks) != 2 {
		t.Fatalf("blocks=%v", blocks)
	}
	if blocks[0].Text() != "Thursday, 15 October 2026" || blocks[1].Text() != DatePlaceholder {
		t.Fatalf("got %q and %q", blocks[0].Text(), blocks[1].Text())
	}
}

func TestComposeDefaults(t *testing.T) {
	cfg := record.Defaults()
	blocks := Render(Compose(cfg), fixedDay)
	if len(blocks) < 5 {
		t.Fatalf("too few blocks: %d", len(blocks))
	}
	if blocks[0].Kind != Heading1 || blocks[0].Text() != cfg.Title {
		t.Fatalf("first block=%v", blocks[0])
	}
	want := "Date: Thursday, 15 October 2026 For: " + cfg.Name
	if blocks[1].Kind != Paragraph || blocks[1].Text() != want {
		t.Fatalf("date block=%q", blocks[1].Text())
	}
	last := blocks[len(blocks)-1]
	if last.Kind != Paragraph || last.Text() != cfg.Closing || !last.Spans[0].Bold {
		t.Fatalf("closing block=%v", last)
	}

	var boxes int
	for _, b := range blocks {
		if b.Kind == Checkbox {
			boxes++
			if b.Checked {
				t.Fatalf("default contract has a checked box: %v", b)
			}
		}
	}
	if boxes != 8 {
		t.Fatalf("checkbox count=%d", boxes)
	}
}

func TestComposeCustomBody(t *testing.T) {
	cfg := record.UserConfig{Name: "Ada", Body: "\n\nJust *ship*.\n\n"}
	src := Compose(cfg)
	if !strings.Contains(src, "**For:** Ada\n") || !strings.Contains(src, "---\n\nJust *ship*.\n\n---") {
		t.Fatalf("compose=%q", src)
	}
}
