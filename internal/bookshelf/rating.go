package bookshelf

import (
	"fmt"
	"math"
)

// MaxRating is the number of glyphs in a star row.
const MaxRating = 5

// AverageRating returns the arithmetic mean of the review ratings, or 0 when
// there are no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// StarCount rounds avg half-up to the nearest integer and clamps it to
// [0, MaxRating].
func StarCount(avg float64) int {
	n := int(math.Floor(avg + 0.5))
	return min(max(n, 0), MaxRating)
}

// FormatAverage renders avg with one decimal place, rounding halves up.
func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.1f", math.Floor(avg*10+0.5)/10)
}
