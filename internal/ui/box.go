package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledBox draws a bordered box of the given outer size with title
// embedded in the top border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	inner := max(width-2, 0)
	title = truncate(title, max(inner-4, 0))
	titleWidth := lipgloss.Width(title) + 2
	left := max((inner-titleWidth)/2, 0)
	right := max(inner-titleWidth-left, 0)

	top := bg.Render("┌"+strings.Repeat("─", left), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", right)+"┐", borderStyle)
	bottom := bg.Render("└"+strings.Repeat("─", inner)+"┘", borderStyle)

	side := bg.Render("│", borderStyle)
	lines := strings.Split(content, "\n")
	body := make([]string, 0, max(height-2, 0))
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		body = append(body, side+bg.FillLine(line, inner)+side)
	}
	return strings.Join(append(append([]string{top}, body...), bottom), "\n")
}
