package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Route identifies a screen. The zero Route is the book list; a non-zero
// BookID is that book's detail view.
type Route struct {
	BookID int64
}

// ListRoute is the book list at "/".
var ListRoute = Route{}

// DetailRoute returns the route for the detail view of book id.
func DetailRoute(id int64) Route {
	return Route{BookID: id}
}

// IsList reports whether r is the book list.
func (r Route) IsList() bool {
	return r.BookID == 0
}

func (r Route) String() string {
	if r.IsList() {
		return "/"
	}
	return "/books/" + strconv.FormatInt(r.BookID, 10)
}

// ParseRoute accepts "/" (or empty) and "/books/{id}" with a positive integer id.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "/" {
		return ListRoute, nil
	}
	rest, ok := strings.CutPrefix(strings.TrimSuffix(trimmed, "/"), "/books/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return Route{}, fmt.Errorf("invalid book id %q in route %q", rest, path)
	}
	return DetailRoute(id), nil
}
