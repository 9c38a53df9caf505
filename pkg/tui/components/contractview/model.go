package contractview

import (
	"strings"

	"tableflip.dev/ackgate/pkg/contract"
	"tableflip.dev/ackgate/pkg/gate"
	"tableflip.dev/ackgate/pkg/tui/theme"
)

// RowUnits is the size of one terminal row in gate position units, so the
// gate's bottom slack stays below a single row.
const RowUnits = 16

// Model is a scrollable contract.
type Model struct {
	blocks []contract.Block
	th     theme.ContractTheme
	lines  []string
	offset int
	width  int
	height int
}

func New(blocks []contract.Block, th theme.ContractTheme) *Model {
	return &Model{blocks: blocks, th: th, height: 1}
}

// SetSize re-wraps the contract. The offset is kept within bounds.
func (m *Model) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	m.width, m.height = width, height
	m.lines = Lines(m.blocks, width, m.th)
	m.ScrollTo(m.offset)
}

// ScrollTo moves the first visible row, clamped to the content.
func (m *Model) ScrollTo(offset int) {
	if limit := m.maxOffset(); offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	m.offset = offset
}

// ScrollBy moves by delta rows.
func (m *Model) ScrollBy(delta int) { m.ScrollTo(m.offset + delta) }

// PageDown scrolls by one viewport.
func (m *Model) PageDown() { m.ScrollBy(m.height) }

// PageUp scrolls back by one viewport.
func (m *Model) PageUp() { m.ScrollBy(-m.height) }

// Top jumps to the start.
func (m *Model) Top() { m.ScrollTo(0) }

// Bottom jumps to the end.
func (m *Model) Bottom() { m.ScrollTo(m.maxOffset()) }

func (m *Model) maxOffset() int {
	if n := len(m.lines) - m.height; n > 0 {
		return n
	}
	return 0
}

func (m *Model) Offset() int { return m.offset }

func (m *Model) LineCount() int { return len(m.lines) }

// Position reports the scroll position in gate units.
func (m *Model) Position() gate.Position {
	return gate.Position{
		Offset:         float64(m.offset * RowUnits),
		ViewportHeight: float64(m.height * RowUnits),
		ContentHeight:  float64(len(m.lines) * RowUnits),
	}
}

// View renders the visible rows, padded to the viewport height.
func (m *Model) View() string {
	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	visible := make([]string, 0, m.height)
	if m.offset < end {
		visible = append(visible, m.lines[m.offset:end]...)
	}
	for len(visible) < m.height {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}
