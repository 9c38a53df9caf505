package help

import (
	"strings"
	"testing"

	"tableflip.dev/ackgate/pkg/tui/theme"
)

func TestHelpRendersKeys(t *testing.T) {
	m := New(80, 40, theme.Default().Modal)
	if m.err != nil {
		t.Fatalf("render error: %v", m.err)
	}
	view := m.View()
	for _, want := range []string{"Contract", "Confirm once ready", "esc closes"} {
		if !strings.Contains(view, want) {
			t.Fatalf("help view missing %q:\n%s", want, view)
		}
	}
}

func TestSetSize(t *testing.T) {
	mt := theme.Default().Modal
	m := New(5, 2, mt)
	if m.width != minWidth || m.height != minHeight {
		t.Fatalf("size=%dx%d", m.width, m.height)
	}

	m.SetSize(80, 40)
	wrap := m.wrap
	if want := 80 - mt.Frame.GetHorizontalFrameSize(); wrap != want {
		t.Fatalf("wrap=%d, want %d", wrap, want)
	}
	m.SetSize(80, 20)
	if m.wrap != wrap || m.height != 20 {
		t.Fatalf("height change altered wrap: wrap=%d height=%d", m.wrap, m.height)
	}
}
