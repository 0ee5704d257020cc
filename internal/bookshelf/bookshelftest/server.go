// Package bookshelftest provides an in-memory book review API for tests.
package bookshelftest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/five82/shelf/internal/bookshelf"
)

// Route names accepted by Fail.
const (
	RouteListBooks    = "list-books"
	RouteCreateBook   = "create-book"
	RouteGetBook      = "get-book"
	RouteListReviews  = "list-reviews"
	RouteCreateReview = "create-review"
)

// Request is one journal entry.
type Request struct {
	Method string
	Path   string
	Route  string
	Header http.Header
	Body   []byte
}

// Server serves the five book review endpoints from memory.
type Server struct {
	srv *httptest.Server

	mu           sync.Mutex
	books        []bookshelf.Book
	reviews      map[int64][]bookshelf.Review
	nextBookID   int64
	nextReviewID int64
	failures     map[string]int
	journal      []Request
	now          func() time.Time
}

// NewServer starts a Server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		reviews:      make(map[int64][]bookshelf.Review),
		nextBookID:   1,
		nextReviewID: 1,
		failures:     make(map[string]int),
		now:          func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	}

	r := mux.NewRouter()
	r.Use(s.record, s.inject)
	r.HandleFunc("/books", s.listBooks).Methods(http.MethodGet).Name(RouteListBooks)
	r.HandleFunc("/books", s.createBook).Methods(http.MethodPost).Name(RouteCreateBook)
	r.HandleFunc("/books/{id:[0-9]+}", s.getBook).Methods(http.MethodGet).Name(RouteGetBook)
	r.HandleFunc("/books/{id:[0-9]+}/reviews", s.listReviews).Methods(http.MethodGet).Name(RouteListReviews)
	r.HandleFunc("/books/{id:[0-9]+}/reviews", s.createReview).Methods(http.MethodPost).Name(RouteCreateReview)

	s.srv = httptest.NewServer(r)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the server base URL.
func (s *Server) URL() string {
	return s.srv.URL
}

// SetClock overrides the timestamp assigned to created entities.
func (s *Server) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddBook stores b, assigning an id and timestamp when unset.
func (s *Server) AddBook(b bookshelf.Book) bookshelf.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeBookLocked(b)
}

// AddReview stores r under bookID, assigning an id and timestamp when unset.
func (s *Server) AddReview(bookID int64, r bookshelf.Review) bookshelf.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.BookID = bookID
	return s.storeReviewLocked(r)
}

// Fail makes every request to route answer with status until Recover.
func (s *Server) Fail(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = status
}

// Recover clears all injected failures.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.failures)
}

// Requests returns a copy of the request journal.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.journal))
	copy(out, s.journal)
	return out
}

// Count returns how many requests hit route.
func (s *Server) Count(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, req := range s.journal {
		if req.Route == route {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		name := ""
		if route := mux.CurrentRoute(r); route != nil {
			name = route.GetName()
		}
		s.mu.Lock()
		s.journal = append(s.journal, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Route:  name,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			s.mu.Lock()
			status, failing := s.failures[route.GetName()]
			s.mu.Unlock()
			if failing {
				writeError(w, status, "injected failure")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listBooks(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	books := make([]bookshelf.Book, len(s.books))
	copy(books, s.books)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	var in bookshelf.BookCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if in.Title == "" || in.Author == "" {
		writeError(w, http.StatusUnprocessableEntity, "title and author are required")
		return
	}
	s.mu.Lock()
	book := s.storeBookLocked(bookshelf.Book{
		Title:           in.Title,
		Author:          in.Author,
		Description:     in.Description,
		PublicationDate: in.PublicationDate,
		Genre:           in.Genre,
		ImageURL:        in.ImageURL,
	})
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	book, ok := s.findBookLocked(id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	_, ok := s.findBookLocked(id)
	reviews := make([]bookshelf.Review, len(s.reviews[id]))
	copy(reviews, s.reviews[id])
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var in bookshelf.ReviewCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if in.Rating < 1 || in.Rating > bookshelf.MaxRating {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findBookLocked(id); !ok {
		writeError(w, http.StatusNotFound, "Book not found")
		return
	}
	review := s.storeReviewLocked(bookshelf.Review{
		BookID:       id,
		ReviewerName: in.ReviewerName,
		Rating:       in.Rating,
		Comment:      in.Comment,
	})
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) storeBookLocked(b bookshelf.Book) bookshelf.Book {
	if b.ID == 0 {
		b.ID = s.nextBookID
	}
	if b.ID >= s.nextBookID {
		s.nextBookID = b.ID + 1
	}
	if b.CreatedAt == "" {
		b.CreatedAt = s.now().Format(time.RFC3339)
	}
	s.books = append(s.books, b)
	return b
}

func (s *Server) storeReviewLocked(r bookshelf.Review) bookshelf.Review {
	if r.ID == 0 {
		r.ID = s.nextReviewID
	}
	if r.ID >= s.nextReviewID {
		s.nextReviewID = r.ID + 1
	}
	if r.CreatedAt == "" {
		r.CreatedAt = s.now().Format(time.RFC3339)
	}
	s.reviews[r.BookID] = append(s.reviews[r.BookID], r)
	return r
}

func (s *Server) findBookLocked(id int64) (bookshelf.Book, bool) {
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return bookshelf.Book{}, false
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
