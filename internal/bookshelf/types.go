package bookshelf

import (
	"time"
)

const naiveTimestampLayout = "2006-01-02T15:04:05.999999"

// Book mirrors the payload returned by /books and /books/{id}.
type Book struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Author          string      `json:"author"`
	Description     Opt[string] `json:"description,omitzero"`
	PublicationDate Opt[string] `json:"publication_date,omitzero"`
	Genre           Opt[string] `json:"genre,omitzero"`
	ImageURL        Opt[string] `json:"image_url,omitzero"`
	CreatedAt       string      `json:"created_at"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (b Book) ParsedCreatedAt() time.Time {
	return parseTime(b.CreatedAt)
}

// BookCreate is the request body for POST /books. The server assigns the id
// and creation timestamp.
type BookCreate struct {
	Title           string      `json:"title" validate:"notblank"`
	Author          string      `json:"author" validate:"notblank"`
	Description     Opt[string] `json:"description,omitzero"`
	PublicationDate Opt[string] `json:"publication_date,omitzero"`
	Genre           Opt[string] `json:"genre,omitzero"`
	ImageURL        Opt[string] `json:"image_url,omitzero"`
}

// Review mirrors the payload returned by /books/{id}/reviews.
type Review struct {
	ID           int64       `json:"id"`
	BookID       int64       `json:"book_id"`
	ReviewerName string      `json:"reviewer_name"`
	Rating       int         `json:"rating"`
	Comment      Opt[string] `json:"comment,omitzero"`
	CreatedAt    string      `json:"created_at"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (r Review) ParsedCreatedAt() time.Time {
	return parseTime(r.CreatedAt)
}

// ReviewCreate is the request body for POST /books/{id}/reviews. The owning
// book comes from the path.
type ReviewCreate struct {
	ReviewerName string      `json:"reviewer_name" validate:"notblank"`
	Rating       int         `json:"rating" validate:"min=1,max=5"`
	Comment      Opt[string] `json:"comment,omitzero"`
}

// GenreOption is one entry of the suggested genre list.
type GenreOption struct {
	Label string
	Value string
}

// Genres lists the suggested genres in display order. The backend accepts any
// string. Both "Tech" and "Other" submit the value "Other".
var Genres = []GenreOption{
	{Label: "Select a genre", Value: ""},
	{Label: "Fiction", Value: "Fiction"},
	{Label: "Non-Fiction", Value: "Non-Fiction"},
	{Label: "Mystery", Value: "Mystery"},
	{Label: "Romance", Value: "Romance"},
	{Label: "Science Fiction", Value: "Sci-Fi"},
	{Label: "Fantasy", Value: "Fantasy"},
	{Label: "Biography", Value: "Biography"},
	{Label: "History", Value: "History"},
	{Label: "Self-Help", Value: "Self-Help"},
	{Label: "Tech", Value: "Other"},
	{Label: "Other", Value: "Other"},
}

// RatingOption is one of the five selectable ratings.
type RatingOption struct {
	Value int
	Label string
}

// Ratings lists the selectable ratings, best first.
var Ratings = []RatingOption{
	{Value: 5, Label: "Excellent"},
	{Value: 4, Label: "Good"},
	{Value: 3, Label: "Average"},
	{Value: 2, Label: "Poor"},
	{Value: 1, Label: "Terrible"},
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.Parse(naiveTimestampLayout, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.DateTime, value); err == nil {
		return t
	}
	return time.Time{}
}
