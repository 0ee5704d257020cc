package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/shelf/internal/bookshelf"
	"github.com/five82/shelf/internal/bookshelf/bookshelftest"
)

const (
	testWidth  = 120
	testHeight = 60
)

// newTestModel returns a sized model on start backed by an in-memory API.
// The initial fetch has not run yet.
func newTestModel(t *testing.T, start Route) (Model, *bookshelftest.Server) {
	t.Helper()
	srv := bookshelftest.NewServer(t)
	return modelFor(t, srv, start), srv
}

func modelFor(t *testing.T, srv *bookshelftest.Server, start Route) Model {
	t.Helper()
	client, err := bookshelf.NewClient(srv.URL(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	m := New(Options{Catalog: client, APIURL: srv.URL(), Start: start})
	m, _ = send(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

// started runs Init to completion.
func started(t *testing.T, m Model) Model {
	t.Helper()
	return drain(m, m.Init())
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// drain runs cmd and every command that follows from it, feeding each
// message back into the model.
func drain(m Model, cmd tea.Cmd) Model {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			var next tea.Cmd
			m, next = send(m, msg)
			queue = append(queue, next)
		}
	}
	return m
}

// press sends a key and drains whatever it triggers.
func press(m Model, k tea.KeyMsg) Model {
	m, cmd := send(m, k)
	return drain(m, cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText types s one rune at a time into the focused field.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, runes(string(r)))
	}
	return m
}
