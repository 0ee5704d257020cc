package bookshelf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsedCreatedAt_Layouts(t *testing.T) {
	want := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	assert.True(t, Book{CreatedAt: "2024-01-01T12:30:00Z"}.ParsedCreatedAt().Equal(want))
	assert.True(t, Review{CreatedAt: "2024-01-01T12:30:00"}.ParsedCreatedAt().Equal(want))
	assert.True(t, Review{CreatedAt: "2024-01-01T12:30:00.000123"}.ParsedCreatedAt().Equal(want.Add(123*time.Microsecond)))
	assert.True(t, Review{CreatedAt: "2024-01-01 12:30:00"}.ParsedCreatedAt().Equal(want))
	assert.True(t, Review{CreatedAt: ""}.ParsedCreatedAt().IsZero())
	assert.True(t, Review{CreatedAt: "yesterday"}.ParsedCreatedAt().IsZero())
}

func TestParsedCreatedAt_KeepsOffset(t *testing.T) {
	ts := Review{CreatedAt: "2024-01-01T23:30:00-05:00"}.ParsedCreatedAt()
	assert.Equal(t, "Jan 1, 2024", ts.Format("Jan 2, 2006"))
}

func TestGenres_TechSubmitsOther(t *testing.T) {
	assert.Equal(t, "", Genres[0].Value)
	values := map[string]string{}
	for _, g := range Genres {
		values[g.Label] = g.Value
	}
	assert.Equal(t, "Other", values["Tech"])
	assert.Equal(t, "Other", values["Other"])
	assert.Equal(t, "Sci-Fi", values["Science Fiction"])
}
