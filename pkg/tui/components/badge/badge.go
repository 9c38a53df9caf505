// Package badge renders the ritual progress badge.
package badge

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/ackgate/pkg/ritual"
)

var (
	start, _ = colorful.Hex("#e06c75")
	end, _   = colorful.Hex("#98c379")
)

// Color blends from red to green as progress completes.
func Color(p ritual.Progress) string {
	switch r := p.Ratio(); {
	case r <= 0:
		return start.Hex()
	case r >= 1:
		return end.Hex()
	default:
		return start.BlendLab(end, r).Clamped().Hex()
	}
}

// Bar draws a width-cell progress bar.
func Bar(p ritual.Progress, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(p.Ratio()*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Render returns "done/total level" followed by a bar, coloured by progress.
func Render(p ritual.Progress, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(Color(p))).Bold(p.Level() == ritual.LevelComplete)
	return style.Render(fmt.Sprintf("%d/%d %s %s", p.Completed, p.Total, Bar(p, width), p.Level()))
}
