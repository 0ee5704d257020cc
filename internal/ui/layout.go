package ui

// Terminal width thresholds for the book grid.
const (
	// LayoutTwoColumnWidth is the minimum width for two card columns.
	LayoutTwoColumnWidth = 80

	// LayoutThreeColumnWidth is the minimum width for three card columns.
	LayoutThreeColumnWidth = 120
)

// Card geometry.
const (
	// CardHeight is the rendered height of a book card including borders.
	CardHeight = 11

	// CardDescriptionLines caps the description shown on a card.
	CardDescriptionLines = 3
)

// chromeHeight is the header plus the command bar.
const chromeHeight = 2

// gridColumns returns the number of card columns for a terminal width.
func gridColumns(width int) int {
	switch {
	case width >= LayoutThreeColumnWidth:
		return 3
	case width >= LayoutTwoColumnWidth:
		return 2
	default:
		return 1
	}
}
