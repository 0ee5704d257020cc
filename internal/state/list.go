package state

import (
	"errors"
	"fmt"
)

// Phase is the load state of a fetched collection.
type Phase int

const (
	// Loading is the initial phase, entered on every view entry.
	Loading Phase = iota
	// Ready means the collection was fetched and may be displayed.
	Ready
	// Error means the fetch failed. The collection is empty.
	Error
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrNotReady is returned by Append before the collection has loaded.
var ErrNotReady = errors.New("collection not loaded")

// List is a fetched collection with exactly one owner. The zero value is
// Loading and empty.
//
// Every mutation replaces the backing slice, so copies of a List taken by
// value (as Bubble Tea does with models) never observe each other's appends.
type List[T any] struct {
	items []T
	phase Phase
	err   error
}

// Resolve moves to Ready with a copy of items.
func (l *List[T]) Resolve(items []T) {
	l.items = cloneItems(items)
	l.phase = Ready
	l.err = nil
}

// Fail moves to Error and drops any items.
func (l *List[T]) Fail(err error) {
	l.items = nil
	l.phase = Error
	l.err = err
}

// Reset returns to Loading with no items.
func (l *List[T]) Reset() {
	*l = List[T]{}
}

// Append adds item after the existing items. It is only legal in Ready.
func (l *List[T]) Append(item T) error {
	if l.phase != Ready {
		return fmt.Errorf("append while %s: %w", l.phase, ErrNotReady)
	}
	next := make([]T, len(l.items), len(l.items)+1)
	copy(next, l.items)
	l.items = append(next, item)
	return nil
}

// Items returns a copy of the collection.
func (l List[T]) Items() []T {
	return cloneItems(l.items)
}

// At returns the item at i.
func (l List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

func (l List[T]) Len() int     { return len(l.items) }
func (l List[T]) Phase() Phase { return l.phase }
func (l List[T]) Err() error   { return l.err }

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
