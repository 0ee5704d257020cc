package ui

import (
	"fmt"
	"strings"

	"github.com/five82/shelf/internal/bookshelf"
)

// renderReviewList renders reviews in the order given. It holds no state.
func renderReviewList(styles Styles, reviews []bookshelf.Review, width int) string {
	if len(reviews) == 0 {
		return strings.Join([]string{
			styles.MutedText.Render("No reviews yet"),
			styles.FaintText.Render("Be the first to review this book!"),
		}, "\n")
	}

	blocks := make([]string, 0, len(reviews))
	for _, r := range reviews {
		blocks = append(blocks, renderReview(styles, r, width))
	}
	return strings.Join(blocks, "\n\n")
}

func renderReview(styles Styles, r bookshelf.Review, width int) string {
	head := styles.Text.Bold(true).Render(truncate(r.ReviewerName, max(width-20, 8))) + "  " +
		styles.StarText.Render(stars(r.Rating)) + " " +
		styles.MutedText.Render(fmt.Sprintf("(%d/%d)", r.Rating, bookshelf.MaxRating))

	lines := []string{head}
	if date := formatDate(r.ParsedCreatedAt()); date != "" {
		lines = append(lines, styles.FaintText.Render(date))
	}
	if comment, ok := r.Comment.Get(); ok {
		for _, line := range clampLines(comment, max(width, 20), 1<<16) {
			lines = append(lines, styles.Text.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
