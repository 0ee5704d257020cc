package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/bookshelf"
)

const (
	reviewFieldName = iota
	reviewFieldRating
	reviewFieldComment
	reviewFieldCount
)

type reviewSubmittedMsg struct {
	gen    uint64
	review bookshelf.Review
	err    error
}

// reviewCreatedMsg is emitted by the form once the server accepted a review.
// The detail view owns the review list and appends it.
type reviewCreatedMsg struct {
	gen    uint64
	review bookshelf.Review
}

// reviewForm collects a review for one book. The rating selector offers only
// the five valid values and starts at 5.
type reviewForm struct {
	bookID     int64
	name       textinput.Model
	comment    textinput.Model
	rating     selector
	focus      int
	submitting bool
	errMsg     string
}

func newReviewForm(bookID int64) reviewForm {
	labels := make([]string, len(bookshelf.Ratings))
	for i, r := range bookshelf.Ratings {
		labels[i] = fmt.Sprintf("%d - %s %s", r.Value, r.Label, stars(r.Value))
	}
	f := reviewForm{
		bookID:  bookID,
		name:    newInput("Enter your name", 100),
		comment: newInput("Share your thoughts about this book...", 2000),
		rating:  selector{labels: labels},
	}
	f.setFocus(reviewFieldName)
	return f
}

func (f *reviewForm) setFocus(i int) {
	f.focus = i
	f.name.Blur()
	f.comment.Blur()
	switch i {
	case reviewFieldName:
		f.name.Focus()
	case reviewFieldComment:
		f.comment.Focus()
	}
}

func (f reviewForm) Update(msg tea.KeyMsg, keys keyMap) (reviewForm, formAction, tea.Cmd) {
	focus, action, handled := routeFormKey(msg, keys, f.focus, reviewFieldCount, f.focus == reviewFieldRating, &f.rating)
	if handled {
		if focus != f.focus {
			f.setFocus(focus)
		}
		return f, action, nil
	}
	var cmd tea.Cmd
	switch f.focus {
	case reviewFieldName:
		f.name, cmd = f.name.Update(msg)
	case reviewFieldComment:
		f.comment, cmd = f.comment.Update(msg)
	}
	return f, formNone, cmd
}

func (f reviewForm) value() bookshelf.ReviewCreate {
	return bookshelf.ReviewCreate{
		ReviewerName: f.name.Value(),
		Rating:       bookshelf.Ratings[f.rating.index].Value,
		Comment:      bookshelf.Some(f.comment.Value()),
	}
}

func (f reviewForm) submit(ctx context.Context, catalog bookshelf.Catalog, gen uint64) (reviewForm, tea.Cmd) {
	if f.submitting {
		return f, nil
	}
	in := f.value()
	if err := in.Validate(); err != nil {
		if errors.Is(err, bookshelf.ErrReviewerRequired) {
			f.errMsg = msgReviewerRequired
		} else {
			f.errMsg = msgAddReviewFailed
		}
		return f, nil
	}
	f.errMsg = ""
	f.submitting = true
	bookID := f.bookID
	return f, func() tea.Msg {
		review, err := catalog.CreateReview(ctx, bookID, in)
		if err != nil {
			err = fmt.Errorf("create review for book %d: %w", bookID, err)
		}
		return reviewSubmittedMsg{gen: gen, review: review, err: err}
	}
}

func (f reviewForm) resolve(msg reviewSubmittedMsg) (reviewForm, tea.Cmd) {
	if msg.err != nil {
		f.submitting = false
		f.errMsg = msgAddReviewFailed
		return f, nil
	}
	f = newReviewForm(f.bookID)
	created := reviewCreatedMsg{gen: msg.gen, review: msg.review}
	return f, func() tea.Msg { return created }
}

func (f reviewForm) View(theme Theme, width int) string {
	styles := theme.Styles()
	rows := []string{
		formField(styles, "Your Name", true, f.focus == reviewFieldName, f.name.View()),
		formField(styles, "Rating", true, f.focus == reviewFieldRating, selectorBody(styles, f.rating, f.focus == reviewFieldRating)),
		formField(styles, "Your Review", false, f.focus == reviewFieldComment, f.comment.View()),
	}
	if f.errMsg != "" {
		rows = append(rows, "", styles.DangerText.Render(truncate(f.errMsg, width)))
	}
	rows = append(rows, "", formButton(styles, "Add Review", "Adding...", f.submitting))
	return joinRows(rows)
}
