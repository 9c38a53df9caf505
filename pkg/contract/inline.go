package contract

import "unicode"

// parseInline splits a line into emphasis spans. Bold (**x**) is matched
// first; italic (*x*) is then matched inside each run. An italic opener may
// not follow '[' or precede whitespace, and a closer may not follow whitespace
// or precede ']', which keeps checkbox brackets intact.
func parseInline(line string) []Span {
	var spans []Span
	for _, seg := range splitBold([]rune(line)) {
		for _, it := range splitItalic(seg.text) {
			spans = appendSpan(spans, Span{Text: string(it.text), Bold: seg.on, Italic: it.on})
		}
	}
	return spans
}

type run struct {
	text []rune
	on   bool
}

func splitBold(r []rune) []run {
	var out []run
	start := 0
	for i := 0; i+1 < len(r); i++ {
		if r[i] != '*' || r[i+1] != '*' {
			continue
		}
		// Lazy match: the first closing "**" leaving at least one rune inside.
		end := -1
		for j := i + 3; j+1 < len(r); j++ {
			if r[j] == '*' && r[j+1] == '*' {
				end = j
				break
			}
		}
		if end < 0 {
			break
		}
		if i > start {
			out = append(out, run{text: r[start:i]})
		}
		out = append(out, run{text: r[i+2 : end], on: true})
		start = end + 2
		i = end + 1
	}
	if start < len(r) {
		out = append(out, run{text: r[start:]})
	}
	return out
}

func splitItalic(r []rune) []run {
	var out []run
	start := 0
	for i := 0; i < len(r); i++ {
		if r[i] != '*' || !italicOpener(r, i) {
			continue
		}
		end := -1
		for j := i + 2; j < len(r); j++ {
			if r[j] == '*' && italicCloser(r, j) {
				end = j
				break
			}
		}
		if end < 0 {
			continue
		}
		if i > start {
			out = append(out, run{text: r[start:i]})
		}
		out = append(out, run{text: r[i+1 : end], on: true})
		start = end + 1
		i = end
	}
	if start < len(r) {
		out = append(out, run{text: r[start:]})
	}
	return out
}

func italicOpener(r []rune, i int) bool {
	if i > 0 && r[i-1] == '[' {
		return false
	}
	return i+1 < len(r) && !unicode.IsSpace(r[i+1])
}

func italicCloser(r []rune, j int) bool {
	if unicode.IsSpace(r[j-1]) {
		return false
	}
	return j+1 >= len(r) || r[j+1] != ']'
}

// appendSpan merges s into the previous span when the emphasis matches.
func appendSpan(spans []Span, s Span) []Span {
	if s.Text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Bold == s.Bold && spans[n-1].Italic == s.Italic {
		spans[n-1].Text += s.Text
		return spans
	}
	return append(spans, s)
}
