// Package bookshelf contains the data model and HTTP client for the book
// review API.
//
// The API exposes two resources: books, and reviews nested under a book.
// Client issues exactly one request per call with no retry, cache or timeout;
// callers cancel through the context. Non-2xx responses surface as
// *StatusError, and a 404 also matches ErrNotFound.
//
// Optional fields use Opt so that null, a missing key and the empty string
// all read as "not set".
package bookshelf
