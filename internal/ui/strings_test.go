package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/shelf/internal/bookshelf"
)

func TestStars(t *testing.T) {
	cases := map[int]string{
		-1: "☆☆☆☆☆",
		0:  "☆☆☆☆☆",
		3:  "★★★☆☆",
		5:  "★★★★★",
		9:  "★★★★★",
	}
	for n, want := range cases {
		if got := stars(n); got != want {
			t.Fatalf("stars(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "review"); got != "1 review" {
		t.Fatalf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "review"); got != "0 reviews" {
		t.Fatalf("pluralize(0) = %q", got)
	}
	if got := pluralize(3, "book"); got != "3 books" {
		t.Fatalf("pluralize(3) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(time.Time{}); got != "" {
		t.Fatalf("formatDate(zero) = %q, want empty", got)
	}
	// Late on the 14th in UTC-8 stays on the 14th.
	ts := time.Date(2024, 3, 14, 23, 30, 0, 0, time.FixedZone("PST", -8*3600))
	if got := formatDate(ts); got != "Mar 14, 2024" {
		t.Fatalf("formatDate = %q, want Mar 14, 2024", got)
	}
	r := bookshelf.Review{CreatedAt: "2024-01-15T10:30:00"}
	if got := formatDate(r.ParsedCreatedAt()); got != "Jan 15, 2024" {
		t.Fatalf("formatDate(naive) = %q, want Jan 15, 2024", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  short  ", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a long title here", 10); got != "a long ..." {
		t.Fatalf("truncate = %q", got)
	}
}

func TestClampLines(t *testing.T) {
	if got := clampLines("   ", 20, 3); got != nil {
		t.Fatalf("clampLines(blank) = %v, want nil", got)
	}

	short := clampLines("one two three", 20, 3)
	if len(short) != 1 || short[0] != "one two three" {
		t.Fatalf("clampLines(short) = %q", short)
	}

	long := strings.Repeat("word ", 40)
	lines := clampLines(long, 20, 3)
	if len(lines) != 3 {
		t.Fatalf("clampLines(long) returned %d lines, want 3", len(lines))
	}
	if !strings.HasSuffix(lines[2], "...") {
		t.Fatalf("last line %q should end with ellipsis", lines[2])
	}
	for _, l := range lines {
		if len([]rune(l)) > 20 {
			t.Fatalf("line %q wider than 20", l)
		}
	}
}

func TestRenderReviewList_EmptyAndOrder(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	empty := renderReviewList(styles, nil, 60)
	if !strings.Contains(empty, "No reviews yet") || !strings.Contains(empty, "Be the first to review this book!") {
		t.Fatalf("empty list = %q", empty)
	}

	out := renderReviewList(styles, []bookshelf.Review{
		{ReviewerName: "Zoe", Rating: 2},
		{ReviewerName: "Amy", Rating: 4, Comment: bookshelf.Some("Solid")},
	}, 60)
	if strings.Index(out, "Zoe") > strings.Index(out, "Amy") {
		t.Fatalf("reviews reordered:\n%s", out)
	}
	if !strings.Contains(out, "(2/5)") || !strings.Contains(out, "Solid") {
		t.Fatalf("review rows incomplete:\n%s", out)
	}
}

func TestApiHost(t *testing.T) {
	if got := apiHost("http://localhost:8001"); got != "localhost:8001" {
		t.Fatalf("apiHost = %q", got)
	}
	if got := apiHost("not a url"); got != "not a url" {
		t.Fatalf("apiHost = %q", got)
	}
}
