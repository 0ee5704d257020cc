package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/bookshelf"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// clampLines word-wraps text to width and keeps at most maxLines lines. The
// last kept line ends in an ellipsis when text was cut.
func clampLines(text string, width, maxLines int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" || width <= 0 || maxLines <= 0 {
		return nil
	}
	wrapped := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i := range wrapped {
		wrapped[i] = strings.TrimRight(wrapped[i], " ")
	}
	if len(wrapped) <= maxLines {
		return wrapped
	}
	out := wrapped[:maxLines]
	last := out[maxLines-1]
	if len([]rune(last))+3 > width {
		last = string([]rune(last)[:max(width-3, 0)])
	}
	out[maxLines-1] = strings.TrimRight(last, " ") + "..."
	return out
}

// pluralize returns "1 review" or "N reviews".
func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// stars renders filled glyphs for n and hollow ones for the rest of the
// five-point scale.
func stars(n int) string {
	n = min(max(n, 0), bookshelf.MaxRating)
	return strings.Repeat("★", n) + strings.Repeat("☆", bookshelf.MaxRating-n)
}

// formatDate renders an API timestamp as "Jan 2, 2006" in the timestamp's own
// offset. Unparseable values render as "".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
