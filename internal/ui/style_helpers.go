package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders segments on a fixed background. Lipgloss resets styling
// between segments, which leaves unstyled gaps at spaces and joins; every
// helper here paints those gaps too.
type BgStyle struct {
	bg   lipgloss.Color
	fill lipgloss.Style
}

// NewBgStyle returns a helper for the given background color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{bg: bg, fill: lipgloss.NewStyle().Background(bg)}
}

// Render applies style plus the background to every word and space of text.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.Space())
}

// Space returns one painted space.
func (b BgStyle) Space() string {
	return b.fill.Render(" ")
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Join joins parts with a painted separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.fill.Render(sep))
}

// FillLine pads or cuts a single line of content to exactly width cells.
func (b BgStyle) FillLine(content string, width int) string {
	return b.fill.Inline(true).Width(width).MaxWidth(width).Render(content)
}
