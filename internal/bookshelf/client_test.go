package bookshelf_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/five82/shelf/internal/bookshelf"
	"github.com/five82/shelf/internal/bookshelf/bookshelftest"
)

type ClientSuite struct {
	suite.Suite
	server *bookshelftest.Server
	client *bookshelf.Client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.server = bookshelftest.NewServer(s.T())
	client, err := bookshelf.NewClient(s.server.URL(), zerolog.Nop())
	s.Require().NoError(err)
	s.client = client
	s.ctx = context.Background()
}

func (s *ClientSuite) TestListBooks_Empty() {
	books, err := s.client.ListBooks(s.ctx)
	s.Require().NoError(err)
	s.Empty(books)
	s.Equal(1, s.server.Count(bookshelftest.RouteListBooks))
}

func (s *ClientSuite) TestListBooks_PreservesServerOrder() {
	s.server.AddBook(bookshelf.Book{Title: "Dune", Author: "Herbert"})
	s.server.AddBook(bookshelf.Book{Title: "Emma", Author: "Austen", Genre: bookshelf.Some("Romance")})

	books, err := s.client.ListBooks(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(books, 2)
	s.Equal("Dune", books[0].Title)
	s.Equal("Emma", books[1].Title)
	s.False(books[0].Genre.Present())
	s.Equal("Romance", books[1].Genre.Or(""))
}

func (s *ClientSuite) TestCreateBook_SendsJSONAndOmitsAbsentFields() {
	book, err := s.client.CreateBook(s.ctx, bookshelf.BookCreate{
		Title:  "Dune",
		Author: "Frank Herbert",
		Genre:  bookshelf.Some("Sci-Fi"),
	})
	s.Require().NoError(err)
	s.Equal(int64(1), book.ID)
	s.Equal("Sci-Fi", book.Genre.Or(""))
	s.NotEmpty(book.CreatedAt)

	reqs := s.server.Requests()
	s.Require().Len(reqs, 1)
	s.Equal(http.MethodPost, reqs[0].Method)
	s.Equal("/books", reqs[0].Path)
	s.Contains(reqs[0].Header.Get("Content-Type"), "application/json")
	s.Equal("application/json", reqs[0].Header.Get("Accept"))
	s.NotEmpty(reqs[0].Header.Get("X-Request-ID"))

	var body map[string]any
	s.Require().NoError(json.Unmarshal(reqs[0].Body, &body))
	s.Equal(map[string]any{"title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi"}, body)
}

func (s *ClientSuite) TestGetBook_NotFound() {
	_, err := s.client.GetBook(s.ctx, 999)
	s.Require().Error(err)
	s.True(errors.Is(err, bookshelf.ErrNotFound))

	var statusErr *bookshelf.StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusNotFound, statusErr.Status)
	s.Equal("/books/999", statusErr.Path)
}

func (s *ClientSuite) TestGetBookAndReviews() {
	book := s.server.AddBook(bookshelf.Book{Title: "Dune", Author: "Herbert"})
	s.server.AddReview(book.ID, bookshelf.Review{ReviewerName: "Ann", Rating: 4})
	s.server.AddReview(book.ID, bookshelf.Review{ReviewerName: "Bob", Rating: 5, Comment: bookshelf.Some("great")})

	got, err := s.client.GetBook(s.ctx, book.ID)
	s.Require().NoError(err)
	s.Equal(book.ID, got.ID)

	reviews, err := s.client.ListReviews(s.ctx, book.ID)
	s.Require().NoError(err)
	s.Require().Len(reviews, 2)
	s.Equal("Ann", reviews[0].ReviewerName)
	s.False(reviews[0].Comment.Present())
	s.Equal("great", reviews[1].Comment.Or(""))
}

func (s *ClientSuite) TestListReviews_UnknownBook() {
	_, err := s.client.ListReviews(s.ctx, 42)
	s.True(errors.Is(err, bookshelf.ErrNotFound))
}

func (s *ClientSuite) TestCreateReview() {
	book := s.server.AddBook(bookshelf.Book{Title: "Dune", Author: "Herbert"})

	review, err := s.client.CreateReview(s.ctx, book.ID, bookshelf.ReviewCreate{ReviewerName: "Ann", Rating: 5})
	s.Require().NoError(err)
	s.Equal(book.ID, review.BookID)
	s.Equal(5, review.Rating)

	reqs := s.server.Requests()
	s.Require().Len(reqs, 1)
	s.Equal("/books/1/reviews", reqs[0].Path)
	s.JSONEq(`{"reviewer_name":"Ann","rating":5}`, string(reqs[0].Body))
}

func (s *ClientSuite) TestCreateReview_RejectedRating() {
	book := s.server.AddBook(bookshelf.Book{Title: "Dune", Author: "Herbert"})

	_, err := s.client.CreateReview(s.ctx, book.ID, bookshelf.ReviewCreate{ReviewerName: "Ann", Rating: 9})
	var statusErr *bookshelf.StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusBadRequest, statusErr.Status)
	s.False(errors.Is(err, bookshelf.ErrNotFound))
}

func (s *ClientSuite) TestInjectedFailureIsNotRetried() {
	s.server.Fail(bookshelftest.RouteListBooks, http.StatusInternalServerError)

	_, err := s.client.ListBooks(s.ctx)
	s.Require().Error(err)
	s.Equal(1, s.server.Count(bookshelftest.RouteListBooks))
}

func (s *ClientSuite) TestEachRequestGetsItsOwnID() {
	_, _ = s.client.ListBooks(s.ctx)
	_, _ = s.client.ListBooks(s.ctx)

	reqs := s.server.Requests()
	s.Require().Len(reqs, 2)
	s.NotEqual(reqs[0].Header.Get("X-Request-ID"), reqs[1].Header.Get("X-Request-ID"))
}

func (s *ClientSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.ListBooks(ctx)
	s.Require().Error(err)
	s.True(errors.Is(err, context.Canceled))
}
