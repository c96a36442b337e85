package bottomsheet

import "github.com/charmbracelet/lipgloss"

// Default palette, shared with the rest of the terminal UI.
var (
	salmonPink  = lipgloss.Color("#FFB3BA")
	mutedGray   = lipgloss.Color("#6B7280")
	brightWhite = lipgloss.Color("#F9FAFB")
)

const (
	handleGlyph = "━"
	cursorGlyph = "› "
)

// styles holds the rendered look of one sheet. Colors come from Options so a
// host can theme each sheet.
type styles struct {
	backdrop lipgloss.Style
	panel    lipgloss.Style
	handle   lipgloss.Style
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
}

func newStyles(backdrop, accent lipgloss.Color) styles {
	return styles{
		backdrop: lipgloss.NewStyle().
			Foreground(backdrop).
			Faint(true),

		// Top edge and sides only; the panel is anchored to the bottom of the
		// screen.
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(accent).
			Padding(0, 1),

		handle: lipgloss.NewStyle().
			Foreground(mutedGray),

		title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		item: lipgloss.NewStyle().
			Foreground(brightWhite),

		selected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
	}
}
