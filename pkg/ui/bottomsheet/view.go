package bottomsheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// rows above the first child: top border, handle, spacer
const childrenOffset = 3

// panelLayout records where each child landed inside the rendered panel.
type panelLayout struct {
	// spans[i] holds the first and one-past-last panel row of child i.
	spans [][2]int
}

// childAt returns the child covering panel row, or -1.
func (l panelLayout) childAt(row int) int {
	for i, span := range l.spans {
		if row >= span[0] && row < span[1] {
			return i
		}
	}
	return -1
}

// View draws the sheet over base. base is dimmed and stripped of its own
// styling; the panel replaces the rows it covers.
func (m *Model) View(base string) string {
	if m.width <= 0 || m.height <= 0 {
		return base
	}

	panel, layout := m.renderPanel()
	m.layout = layout
	panelLines := strings.Split(panel, "\n")
	baseLines := strings.Split(base, "\n")
	top := m.panelTopRow()

	rows := make([]string, m.height)
	for y := range rows {
		if idx := y - top; idx >= 0 {
			if idx < len(panelLines) {
				rows[y] = panelLines[idx]
			}
			continue
		}
		var line string
		if y < len(baseLines) {
			line = ansi.Truncate(ansi.Strip(baseLines[y]), m.width, "")
		}
		rows[y] = m.styles.backdrop.Render(padRight(line, m.width))
	}
	return strings.Join(rows, "\n")
}

// renderPanel renders the full panel at its natural height.
func (m *Model) renderPanel() (string, panelLayout) {
	// border plus horizontal padding
	inner := m.width - m.styles.panel.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	handle := m.styles.handle.Render(strings.Repeat(handleGlyph, min(m.handleWidth, inner)))
	sections := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, handle),
		"",
	}

	layout := panelLayout{spans: make([][2]int, len(m.children))}
	row := childrenOffset
	for i, child := range m.children {
		view := m.renderChild(i, child, inner)
		h := lipgloss.Height(view)
		layout.spans[i] = [2]int{row, row + h}
		row += h
		sections = append(sections, view)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.styles.panel.Width(m.width - m.styles.panel.GetHorizontalBorderSize()).Render(content), layout
}

func (m *Model) renderChild(i int, child Child, width int) string {
	if title, ok := child.(Title); ok {
		return m.styles.title.Render(ansi.Truncate(string(title), width, "…"))
	}
	if !m.selectable {
		return child.View()
	}
	text := ansi.Truncate(child.View(), width-lipgloss.Width(cursorGlyph), "…")
	if i == m.cursor {
		return m.styles.selected.Render(cursorGlyph + text)
	}
	return m.styles.item.Render(strings.Repeat(" ", lipgloss.Width(cursorGlyph)) + text)
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
