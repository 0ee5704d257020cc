package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/bookshelf"
)

const (
	bookFieldTitle = iota
	bookFieldAuthor
	bookFieldGenre
	bookFieldPublished
	bookFieldCover
	bookFieldDescription
	bookFieldCount
)

// bookSubmittedMsg carries the result of a CreateBook request.
type bookSubmittedMsg struct {
	gen  uint64
	book bookshelf.Book
	err  error
}

// bookCreatedMsg is emitted by the form once the server accepted a book. The
// book list owns the collection and appends it.
type bookCreatedMsg struct {
	gen  uint64
	book bookshelf.Book
}

// bookForm collects a new book. Every field starts empty.
type bookForm struct {
	inputs     [bookFieldCount]textinput.Model
	genre      selector
	focus      int
	submitting bool
	errMsg     string
}

func newBookForm() bookForm {
	var f bookForm
	f.inputs[bookFieldTitle] = newInput("Enter book title", 200)
	f.inputs[bookFieldAuthor] = newInput("Enter author name", 200)
	f.inputs[bookFieldPublished] = newInput("YYYY-MM-DD", 32)
	f.inputs[bookFieldCover] = newInput("https://example.com/book-cover.jpg", 500)
	f.inputs[bookFieldDescription] = newInput("Brief description of the book...", 2000)

	labels := make([]string, len(bookshelf.Genres))
	for i, g := range bookshelf.Genres {
		labels[i] = g.Label
	}
	f.genre = selector{labels: labels}
	f.setFocus(bookFieldTitle)
	return f
}

func (f *bookForm) setFocus(i int) {
	f.focus = i
	for idx := range f.inputs {
		if idx == bookFieldGenre {
			continue
		}
		if idx == i {
			f.inputs[idx].Focus()
		} else {
			f.inputs[idx].Blur()
		}
	}
}

// Update handles a key while the form has focus.
func (f bookForm) Update(msg tea.KeyMsg, keys keyMap) (bookForm, formAction, tea.Cmd) {
	focus, action, handled := routeFormKey(msg, keys, f.focus, bookFieldCount, f.focus == bookFieldGenre, &f.genre)
	if handled {
		if focus != f.focus {
			f.setFocus(focus)
		}
		return f, action, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, formNone, cmd
}

// value builds the request body. Empty optional fields are absent.
func (f bookForm) value() bookshelf.BookCreate {
	return bookshelf.BookCreate{
		Title:           f.inputs[bookFieldTitle].Value(),
		Author:          f.inputs[bookFieldAuthor].Value(),
		Genre:           bookshelf.Some(bookshelf.Genres[f.genre.index].Value),
		PublicationDate: bookshelf.Some(f.inputs[bookFieldPublished].Value()),
		ImageURL:        bookshelf.Some(f.inputs[bookFieldCover].Value()),
		Description:     bookshelf.Some(f.inputs[bookFieldDescription].Value()),
	}
}

// submit validates locally and, when valid, returns the request command.
// Submits while a request is in flight are ignored.
func (f bookForm) submit(ctx context.Context, catalog bookshelf.Catalog, gen uint64) (bookForm, tea.Cmd) {
	if f.submitting {
		return f, nil
	}
	in := f.value()
	if err := in.Validate(); err != nil {
		f.errMsg = msgTitleAuthorRequired
		return f, nil
	}
	f.errMsg = ""
	f.submitting = true
	return f, func() tea.Msg {
		book, err := catalog.CreateBook(ctx, in)
		if err != nil {
			err = fmt.Errorf("create book: %w", err)
		}
		return bookSubmittedMsg{gen: gen, book: book, err: err}
	}
}

// resolve applies a submit result. Success clears the form and emits
// bookCreatedMsg; failure keeps every field.
func (f bookForm) resolve(msg bookSubmittedMsg) (bookForm, tea.Cmd) {
	if msg.err != nil {
		f.submitting = false
		f.errMsg = msgAddBookFailed
		return f, nil
	}
	f = newBookForm()
	created := bookCreatedMsg{gen: msg.gen, book: msg.book}
	return f, func() tea.Msg { return created }
}

// View renders the form body.
func (f bookForm) View(theme Theme, width int) string {
	styles := theme.Styles()
	input := func(idx int) string { return f.inputs[idx].View() }

	rows := []string{
		formField(styles, "Title", true, f.focus == bookFieldTitle, input(bookFieldTitle)),
		formField(styles, "Author", true, f.focus == bookFieldAuthor, input(bookFieldAuthor)),
		formField(styles, "Genre", false, f.focus == bookFieldGenre, selectorBody(styles, f.genre, f.focus == bookFieldGenre)),
		formField(styles, "Publication Date", false, f.focus == bookFieldPublished, input(bookFieldPublished)),
		formField(styles, "Cover Image URL", false, f.focus == bookFieldCover, input(bookFieldCover)),
		formField(styles, "Description", false, f.focus == bookFieldDescription, input(bookFieldDescription)),
	}
	if f.errMsg != "" {
		rows = append(rows, "", styles.DangerText.Render(truncate(f.errMsg, width)))
	}
	rows = append(rows, "", formButton(styles, "Add Book", "Adding...", f.submitting))
	return joinRows(rows)
}
