package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Books",
		items: []helpItem{
			{"j/k", "Move selection"},
			{"enter", "View reviews"},
			{"a", "Add new book / cancel"},
		},
	},
	{
		title: "Book details",
		items: []helpItem{
			{"j/k", "Scroll"},
			{"ctrl+d/u", "Half page down/up"},
			{"g/G", "Top/bottom"},
			{"a", "Add review / cancel"},
			{"esc", "Back to books"},
		},
	},
	{
		title: "Forms",
		items: []helpItem{
			{"tab/shift+tab", "Next/previous field"},
			{"←/→", "Change genre or rating"},
			{"enter", "Submit"},
			{"esc", "Close form"},
		},
	},
	{
		title: "General",
		items: []helpItem{
			{"T", "Cycle theme"},
			{"h/?", "Toggle help"},
			{"q/ctrl+c", "Quit"},
		},
	},
}

// renderHelp renders the help overlay centered on the screen.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(15)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range helpSections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(helpSections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
