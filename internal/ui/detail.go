package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/five82/shelf/internal/bookshelf"
	"github.com/five82/shelf/internal/state"
)

type detailLoadedMsg struct {
	gen     uint64
	book    bookshelf.Book
	reviews []bookshelf.Review
	err     error
}

// detailView is the state of a "/books/{id}" route. The book and its reviews
// arrive together; the review list's phase is the view's phase.
type detailView struct {
	bookID   int64
	book     bookshelf.Book
	reviews  state.List[bookshelf.Review]
	showForm bool
	form     reviewForm
	viewport viewport.Model
}

func newDetailView(bookID int64, width, height int) detailView {
	vp := viewport.New(max(width, 1), max(height-chromeHeight, 1))
	vp.Style = lipgloss.NewStyle()
	return detailView{
		bookID:   bookID,
		form:     newReviewForm(bookID),
		viewport: vp,
	}
}

// loadDetailCmd fetches the book and its reviews concurrently. Either failure
// fails the whole load.
func loadDetailCmd(ctx context.Context, catalog bookshelf.Catalog, bookID int64, gen uint64) tea.Cmd {
	return func() tea.Msg {
		var (
			book    bookshelf.Book
			reviews []bookshelf.Review
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			b, err := catalog.GetBook(gctx, bookID)
			if err != nil {
				return fmt.Errorf("fetch book %d: %w", bookID, err)
			}
			book = b
			return nil
		})
		g.Go(func() error {
			rs, err := catalog.ListReviews(gctx, bookID)
			if err != nil {
				return fmt.Errorf("fetch reviews for book %d: %w", bookID, err)
			}
			reviews = rs
			return nil
		})
		if err := g.Wait(); err != nil {
			return detailLoadedMsg{gen: gen, err: err}
		}
		return detailLoadedMsg{gen: gen, book: book, reviews: reviews}
	}
}

func (v *detailView) resolve(msg detailLoadedMsg) {
	if msg.err != nil {
		v.book = bookshelf.Book{}
		v.reviews.Fail(msg.err)
		return
	}
	v.book = msg.book
	v.reviews.Resolve(msg.reviews)
}

func (v *detailView) append(review bookshelf.Review) error {
	if err := v.reviews.Append(review); err != nil {
		return err
	}
	v.showForm = false
	return nil
}

func (v *detailView) scroll(msg tea.KeyMsg, keys keyMap) {
	switch {
	case key.Matches(msg, keys.Down):
		v.viewport.ScrollDown(1)
	case key.Matches(msg, keys.Up):
		v.viewport.ScrollUp(1)
	case key.Matches(msg, keys.HalfPageDown):
		v.viewport.HalfPageDown()
	case key.Matches(msg, keys.HalfPageUp):
		v.viewport.HalfPageUp()
	case key.Matches(msg, keys.Top):
		v.viewport.GotoTop()
	case key.Matches(msg, keys.Bottom):
		v.viewport.GotoBottom()
	}
}

// syncDetailViewport resizes the viewport and refreshes its content.
func (m *Model) syncDetailViewport() {
	if m.route.IsList() || m.detail.reviews.Phase() != state.Ready {
		return
	}
	m.detail.viewport.Width = max(m.width, 1)
	m.detail.viewport.Height = max(m.height-chromeHeight, 1)
	m.detail.viewport.SetContent(m.renderDetailContent(max(m.width-2, 20)))
}

func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	height := max(m.height-chromeHeight, 1)

	switch m.detail.reviews.Phase() {
	case state.Loading:
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("Loading book details..."))
	case state.Error:
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.DangerText.Render("Failed to fetch book details"))
	}
	return m.detail.viewport.View()
}

// renderDetailContent renders the scrollable body of a loaded detail view.
func (m Model) renderDetailContent(width int) string {
	styles := m.theme.Styles()
	book := m.detail.book
	reviews := m.detail.reviews.Items()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(book.Title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("by " + book.Author))
	b.WriteString("\n")

	var meta []string
	if genre, ok := book.Genre.Get(); ok {
		meta = append(meta, styles.GenreBadge(genre).Render(genre))
	}
	if published, ok := book.PublicationDate.Get(); ok {
		meta = append(meta, styles.FaintText.Render("Published: "+published))
	}
	if len(meta) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(meta, "  "))
		b.WriteString("\n")
	}
	if cover, ok := book.ImageURL.Get(); ok {
		b.WriteString(styles.FaintText.Render(truncate("Cover: "+cover, width)))
		b.WriteString("\n")
	}
	if desc, ok := book.Description.Get(); ok {
		b.WriteString("\n")
		b.WriteString(styles.Text.Width(width).Render(desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderRatingPanel(reviews))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Reviews"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, 60))))
	b.WriteString("\n")
	if m.detail.showForm {
		b.WriteString(m.renderTitledBox("Add Review", m.detail.form.View(m.theme, width-4), min(width, 80), reviewFieldCount+8, true))
		b.WriteString("\n\n")
	}
	b.WriteString(renderReviewList(styles, reviews, width))
	return b.String()
}

// renderRatingPanel shows the mean rating, its star row and the review count.
func (m Model) renderRatingPanel(reviews []bookshelf.Review) string {
	styles := m.theme.Styles()
	avg := bookshelf.AverageRating(reviews)
	return styles.Text.Bold(true).Render(bookshelf.FormatAverage(avg)) + "  " +
		styles.StarText.Render(stars(bookshelf.StarCount(avg))) + "  " +
		styles.MutedText.Render(pluralize(len(reviews), "review"))
}
