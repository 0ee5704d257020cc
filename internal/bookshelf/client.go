package bookshelf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Catalog defines the five book/review operations the UI depends on.
// This interface is implemented by *Client and can be used for testing.
type Catalog interface {
	ListBooks(ctx context.Context) ([]Book, error)
	CreateBook(ctx context.Context, in BookCreate) (Book, error)
	GetBook(ctx context.Context, id int64) (Book, error)
	ListReviews(ctx context.Context, bookID int64) ([]Review, error)
	CreateReview(ctx context.Context, bookID int64, in ReviewCreate) (Review, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// ErrNotFound matches a 404 from the API.
var ErrNotFound = errors.New("not found")

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Status)
}

// Is lets errors.Is(err, ErrNotFound) match a 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Client talks to the book review HTTP API.
type Client struct {
	baseURL *url.URL
	http    *resty.Client
	log     zerolog.Logger
}

const (
	DefaultBaseURL   = "http://localhost:8001"
	defaultUserAgent = "shelf/0.1"
	requestIDHeader  = "X-Request-ID"
)

// NewClient builds a Client for the API at baseURL. Requests carry no
// timeout and are never retried.
func NewClient(baseURL string, logger zerolog.Logger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	rc := resty.New().
		SetBaseURL(base.String()).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent)
	return &Client{baseURL: base, http: rc, log: logger}, nil
}

// BaseURL returns the normalized API address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// ListBooks retrieves every book.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook submits a new book and returns the stored entity.
func (c *Client) CreateBook(ctx context.Context, in BookCreate) (Book, error) {
	var book Book
	if err := c.do(ctx, http.MethodPost, "/books", in, &book); err != nil {
		return Book{}, err
	}
	return book, nil
}

// GetBook retrieves one book. Unknown ids fail with an error matching
// ErrNotFound.
func (c *Client) GetBook(ctx context.Context, id int64) (Book, error) {
	var book Book
	if err := c.do(ctx, http.MethodGet, bookPath(id), nil, &book); err != nil {
		return Book{}, err
	}
	return book, nil
}

// ListReviews retrieves the reviews attached to a book.
func (c *Client) ListReviews(ctx context.Context, bookID int64) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, bookPath(bookID)+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a review for bookID and returns the stored entity.
func (c *Client) CreateReview(ctx context.Context, bookID int64, in ReviewCreate) (Review, error) {
	var review Review
	if err := c.do(ctx, http.MethodPost, bookPath(bookID)+"/reviews", in, &review); err != nil {
		return Review{}, err
	}
	return review, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	requestID := uuid.NewString()
	req := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	logEvt := c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Dur("elapsed", time.Since(start))
	if err != nil {
		logEvt.Err(err).Msg("api request failed")
		return fmt.Errorf("execute request: %w", err)
	}
	logEvt.Int("status", resp.StatusCode()).Msg("api request")

	if !resp.IsSuccess() {
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode()}
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func bookPath(id int64) string {
	return "/books/" + strconv.FormatInt(id, 10)
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
