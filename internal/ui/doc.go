// Package ui provides the Bubble Tea terminal interface for shelf.
//
// # Routes
//
// Two routes exist, mirroring the API's resources:
//
//   - "/": the book list, a grid of cards with an Add New Book form
//   - "/books/{id}": one book with its rating summary, reviews and an
//     Add Review form
//
// Entering a route (including returning to the list) resets that route's
// state and issues a fresh fetch. There is no polling and no cache across
// navigations.
//
// # Message Flow
//
// All state lives in Model and changes only in Update. Requests run inside
// tea.Cmd closures and report back as typed messages:
//
//	enter route ──→ loadBooksCmd / loadDetailCmd ──→ booksLoadedMsg / detailLoadedMsg
//	form submit ──→ CreateBook / CreateReview ──→ bookSubmittedMsg / reviewSubmittedMsg
//	                                                   │ success
//	                                                   ↓
//	                                      bookCreatedMsg / reviewCreatedMsg
//	                                      (owning view appends to its list)
//
// The detail load runs GetBook and ListReviews in parallel under an errgroup
// and fails as a whole if either fails.
//
// # Stale Responses
//
// Each route entry gets a generation number and a cancellable context.
// Leaving a route cancels its requests, and any message carrying an older
// generation is dropped, so a slow response can never overwrite the view the
// operator moved on to.
//
// # Focus
//
// While a create form is open it receives every key except ctrl+c. Global
// keys (quit, help, theme) resume when the form closes.
//
// # Errors
//
// Fetch failures replace the page with a fixed message; submit failures show
// an inline message and keep the form's values. Underlying errors are logged
// and never rendered.
package ui
