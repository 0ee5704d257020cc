package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formAction is what a key press asks of the view that owns a form.
type formAction int

const (
	formNone formAction = iota
	formSubmit
	formClose
)

// Form messages shown to the operator.
const (
	msgTitleAuthorRequired = "Title and author are required"
	msgReviewerRequired    = "Reviewer name is required"
	msgAddBookFailed       = "Failed to add book. Please try again."
	msgAddReviewFailed     = "Failed to add review. Please try again."
)

const (
	formInputWidth = 40
	formLabelWidth = 18
)

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = formInputWidth
	ti.Prompt = ""
	// A static cursor keeps the update loop free of blink ticks.
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// selector is a closed list of labelled options cycled with left/right.
type selector struct {
	labels []string
	index  int
}

func (s *selector) next() { s.index = (s.index + 1) % len(s.labels) }
func (s *selector) prev() { s.index = (s.index - 1 + len(s.labels)) % len(s.labels) }

func (s selector) label() string {
	if len(s.labels) == 0 {
		return ""
	}
	return s.labels[s.index]
}

// cycleFocus moves i by delta within [0, n).
func cycleFocus(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}

// routeFormKey maps navigation and submit keys shared by both forms. It
// reports handled=false for keys the focused field should consume.
func routeFormKey(msg tea.KeyMsg, keys keyMap, focus, fields int, onSelector bool, sel *selector) (newFocus int, action formAction, handled bool) {
	switch {
	case key.Matches(msg, keys.Cancel):
		return focus, formClose, true
	case key.Matches(msg, keys.Submit):
		return focus, formSubmit, true
	case key.Matches(msg, keys.NextField):
		return cycleFocus(focus, 1, fields), formNone, true
	case key.Matches(msg, keys.PrevField):
		return cycleFocus(focus, -1, fields), formNone, true
	}
	if onSelector && sel != nil {
		switch {
		case key.Matches(msg, keys.NextValue):
			sel.next()
			return focus, formNone, true
		case key.Matches(msg, keys.PrevValue):
			sel.prev()
			return focus, formNone, true
		}
		// Selectors take no text.
		return focus, formNone, true
	}
	return focus, formNone, false
}

// formField renders one labelled row.
func formField(styles Styles, label string, required, focused bool, body string) string {
	text := label
	if required {
		text += " *"
	}
	labelStyle := styles.MutedText
	marker := "  "
	if focused {
		labelStyle = styles.AccentText.Bold(true)
		marker = "› "
	}
	return styles.AccentText.Render(marker) +
		labelStyle.Width(formLabelWidth).Render(text) +
		body
}

func selectorBody(styles Styles, s selector, focused bool) string {
	if focused {
		return styles.AccentText.Render("‹ ") + styles.Text.Render(s.label()) + styles.AccentText.Render(" ›")
	}
	return styles.Text.Render("  " + s.label())
}

// formButton renders the submit button, disabled while a request is in flight.
func formButton(styles Styles, idle, busy string, submitting bool) string {
	if submitting {
		return lipgloss.NewStyle().
			Foreground(styles.FaintText.GetForeground()).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.FaintText.GetForeground()).
			Padding(0, 2).
			Render(busy)
	}
	return lipgloss.NewStyle().
		Foreground(styles.AccentText.GetForeground()).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.AccentText.GetForeground()).
		Padding(0, 2).
		Render(idle)
}

func joinRows(rows []string) string {
	return strings.Join(rows, "\n")
}
