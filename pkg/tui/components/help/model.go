// Package help is the key reference overlay of the gate UI.
package help

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ackgate/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// Model shows help.md in a scrollable modal frame.
type Model struct {
	vp     viewport.Model
	theme  theme.ModalTheme
	width  int
	height int
	wrap   int
	err    error
}

func New(width, height int, mt theme.ModalTheme) *Model {
	m := &Model{
		vp:    viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		theme: mt,
	}
	m.vp.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

func (m *Model) View() string {
	footer := m.theme.Muted.Render(fmt.Sprintf("esc closes  %3.f%%", m.vp.ScrollPercent()*100))
	box := lipgloss.JoinVertical(lipgloss.Left, m.vp.View(), footer)
	return m.theme.Frame.Width(m.width).Render(box)
}

// SetSize fits the overlay into width x height. The markdown is rendered
// again only when the wrap width changes.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(width, minWidth), max(height, minHeight)
	inner := max(m.width-m.theme.Frame.GetHorizontalFrameSize(), 1)
	// One row is kept for the footer.
	m.vp.SetWidth(inner)
	m.vp.SetHeight(max(m.height-m.theme.Frame.GetVerticalFrameSize()-1, 1))
	if inner == m.wrap {
		return
	}
	m.wrap = inner
	m.vp.SetContent(m.render(inner))
	m.vp.GotoTop()
}

// render uses the notty style so the frame's colours are the only ones.
func (m *Model) render(wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	var out string
	if err == nil {
		out, err = r.Render(strings.TrimSpace(helpMarkdown))
	}
	m.err = err
	if err != nil {
		return "help unavailable: " + err.Error()
	}
	return strings.TrimRight(out, "\n")
}
