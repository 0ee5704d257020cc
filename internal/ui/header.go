package ui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/state"
)

// renderHeader renders the top bar: logo, API host, route and a short status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("shelf", styles.Logo),
		bg.Render(apiHost(m.apiURL), styles.MutedText),
		bg.Render(m.route.String(), styles.AccentText),
	}
	if status := m.headerStatus(); status != "" {
		parts = append(parts, bg.Render(status, styles.FaintText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

func (m Model) headerStatus() string {
	if m.route.IsList() {
		if m.books.list.Phase() == state.Ready {
			return pluralize(m.books.list.Len(), "book")
		}
		return ""
	}
	if m.detail.reviews.Phase() == state.Ready {
		return truncate(m.detail.book.Title, 40)
	}
	return ""
}

// renderCommandBar renders key hints for the current route and focus.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.formOpen():
		commands = []cmd{
			{"tab", "Next field"},
			{"←/→", "Change option"},
			{"enter", "Submit"},
			{"esc", "Cancel"},
		}
	case m.route.IsList():
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "View Reviews"},
			{"a", "Add New Book"},
			{"q", "Quit"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"a", "Add Review"},
			{"esc", "Back"},
			{"q", "Quit"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}

// apiHost returns the host:port of the API address for display.
func apiHost(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
