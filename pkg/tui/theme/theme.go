package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Contract ContractTheme
	Gate     GateTheme
	Ritual   RitualTheme
	Footer   FooterTheme
	Modal    ModalTheme
}

// HeaderTheme styles the top title bar.
type HeaderTheme struct {
	Title lipgloss.Style
	Date  lipgloss.Style
}

// ContractTheme styles the rendered contract blocks.
type ContractTheme struct {
	H1        lipgloss.Style
	H2        lipgloss.Style
	H3        lipgloss.Style
	Rule      lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	BoldItal  lipgloss.Style
	Marker    lipgloss.Style
	Checked   lipgloss.Style
	Paragraph lipgloss.Style
}

// GateTheme styles the confirmation controls under the contract.
type GateTheme struct {
	Focused lipgloss.Style
	Blurred lipgloss.Style
	Phrase  lipgloss.Style
	Ready   lipgloss.Style
	Pending lipgloss.Style
}

// RitualTheme styles the checklist view.
type RitualTheme struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Action   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Notice lipgloss.Style
}

// ModalTheme styles centered overlays (history).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	// Confirmed marks acknowledged days in the month grid.
	Confirmed lipgloss.Style
	Today     lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	bold := lipgloss.NewStyle().Bold(true)
	italic := lipgloss.NewStyle().Italic(true)

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Date:  lipgloss.NewStyle().Foreground(muted),
		},
		Contract: ContractTheme{
			H1:        lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
			H2:        bold.Foreground(lipgloss.Color("219")),
			H3:        bold.Italic(true),
			Rule:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Bold:      bold,
			Italic:    italic,
			BoldItal:  bold.Italic(true),
			Marker:    lipgloss.NewStyle().Foreground(muted),
			Checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			Paragraph: lipgloss.NewStyle(),
		},
		Gate: GateTheme{
			Focused: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Blurred: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Phrase:  italic.Foreground(lipgloss.Color("223")),
			Ready:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
		Ritual: RitualTheme{
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			Action:   italic.Foreground(muted),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: bold,
			Body:  lipgloss.NewStyle(),
			Muted: lipgloss.NewStyle().Foreground(muted),
			Confirmed: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#98c379")).
				Bold(true),
			Today: lipgloss.NewStyle().Underline(true),
		},
	}
}
