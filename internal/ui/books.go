package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/bookshelf"
	"github.com/five82/shelf/internal/state"
)

type booksLoadedMsg struct {
	gen   uint64
	books []bookshelf.Book
	err   error
}

// bookListView is the state of the "/" route. It is rebuilt on every entry.
type bookListView struct {
	list     state.List[bookshelf.Book]
	selected int
	// focusID reselects a book after the list reloads.
	focusID  int64
	showForm bool
	form     bookForm
}

func newBookListView(focusID int64) bookListView {
	return bookListView{focusID: focusID, form: newBookForm()}
}

func loadBooksCmd(ctx context.Context, catalog bookshelf.Catalog, gen uint64) tea.Cmd {
	return func() tea.Msg {
		books, err := catalog.ListBooks(ctx)
		if err != nil {
			err = fmt.Errorf("list books: %w", err)
		}
		return booksLoadedMsg{gen: gen, books: books, err: err}
	}
}

func (v *bookListView) resolve(msg booksLoadedMsg) {
	if msg.err != nil {
		v.list.Fail(msg.err)
		return
	}
	v.list.Resolve(msg.books)
	v.selected = 0
	for i, b := range msg.books {
		if b.ID == v.focusID {
			v.selected = i
			break
		}
	}
}

func (v *bookListView) append(book bookshelf.Book) error {
	if err := v.list.Append(book); err != nil {
		return err
	}
	v.showForm = false
	return nil
}

func (v *bookListView) move(delta int) {
	n := v.list.Len()
	if n == 0 {
		return
	}
	v.selected = min(max(v.selected+delta, 0), n-1)
}

func (v bookListView) selectedBook() (bookshelf.Book, bool) {
	return v.list.At(v.selected)
}

// renderBooks renders the list route below the header and command bar.
func (m Model) renderBooks() string {
	styles := m.theme.Styles()
	height := max(m.height-chromeHeight, 1)
	v := m.books

	switch v.list.Phase() {
	case state.Loading:
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("Loading books..."))
	case state.Error:
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.DangerText.Render("Failed to fetch books"))
	}

	var sections []string
	used := 0
	if v.showForm {
		form := m.renderTitledBox("Add New Book", v.form.View(m.theme, m.width-6), m.width, bookFieldCount+8, true)
		sections = append(sections, form)
		used = lipgloss.Height(form)
	}
	remaining := max(height-used, 0)

	if v.list.Len() == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			styles.Text.Bold(true).Render("No books found"),
			styles.MutedText.Render("Add your first book to get started!"))
		sections = append(sections, lipgloss.Place(m.width, max(remaining, 2), lipgloss.Center, lipgloss.Center, empty))
	} else {
		sections = append(sections, m.renderBookGrid(remaining))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBookGrid lays cards out in rows and windows the rows around the
// selection.
func (m Model) renderBookGrid(height int) string {
	books := m.books.list.Items()
	cols := gridColumns(m.width)
	cardWidth := max(m.width/cols, 20)
	visibleRows := max(height/CardHeight, 1)

	totalRows := (len(books) + cols - 1) / cols
	selRow := m.books.selected / cols
	first := max(selRow-visibleRows+1, 0)
	last := min(first+visibleRows, totalRows)

	rows := make([]string, 0, last-first)
	for r := first; r < last; r++ {
		cards := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(books) {
				break
			}
			cards = append(cards, m.renderBookCard(books[i], cardWidth, i == m.books.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderBookCard(book bookshelf.Book, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := max(width-4, 8)

	lines := []string{
		styles.Text.Bold(true).Render(truncate(book.Title, inner)),
		styles.MutedText.Render(truncate("by "+book.Author, inner)),
	}
	if genre, ok := book.Genre.Get(); ok {
		lines = append(lines, styles.GenreBadge(genre).Render(truncate(genre, inner-2)))
	}
	if cover, ok := book.ImageURL.Get(); ok {
		lines = append(lines, styles.FaintText.Render(truncate("Cover: "+cover, inner)))
	}
	if desc, ok := book.Description.Get(); ok {
		for _, line := range clampLines(desc, inner, CardDescriptionLines) {
			lines = append(lines, styles.Text.Render(line))
		}
	}
	if published, ok := book.PublicationDate.Get(); ok {
		lines = append(lines, styles.FaintText.Render(truncate("Published: "+published, inner)))
	}
	if selected {
		lines = append(lines, styles.AccentText.Render("enter: View Reviews"))
	}

	border := m.theme.Border
	if selected {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width - 2).
		Height(CardHeight - 2).
		MaxHeight(CardHeight).
		Render(strings.Join(lines, "\n"))
}
