package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/shelf/internal/bookshelf"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   bookshelf.Catalog
	Logger    zerolog.Logger
	APIURL    string
	Start     Route
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	catalog   bookshelf.Catalog
	log       zerolog.Logger
	keys      keyMap
	apiURL    string
	prefsPath string

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Navigation. Each route entry bumps gen and gets its own context;
	// messages from an older entry are dropped.
	route   Route
	gen     uint64
	viewCtx context.Context
	cancel  context.CancelFunc

	books  bookListView
	detail detailView
}

// New creates the root model positioned on opts.Start. The first fetch is
// issued by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	m := Model{
		ctx:       ctx,
		catalog:   opts.Catalog,
		log:       opts.Logger,
		keys:      DefaultKeyMap(),
		apiURL:    opts.APIURL,
		prefsPath: opts.PrefsPath,
		theme:     GetTheme(themeName),
	}
	m.enter(opts.Start)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncDetailViewport()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case booksLoadedMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("route", m.route.String()).Msg("fetch books failed")
		}
		m.books.resolve(msg)
		return m, nil

	case detailLoadedMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("route", m.route.String()).Msg("fetch book details failed")
		}
		m.detail.resolve(msg)
		return m, nil

	case bookSubmittedMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("add book failed")
		}
		var cmd tea.Cmd
		m.books.form, cmd = m.books.form.resolve(msg)
		return m, cmd

	case bookCreatedMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		if err := m.books.append(msg.book); err != nil {
			m.log.Warn().Err(err).Int64("book_id", msg.book.ID).Msg("created book not appended")
		}
		return m, nil

	case reviewSubmittedMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Error().Err(msg.err).Int64("book_id", m.detail.bookID).Msg("add review failed")
		}
		var cmd tea.Cmd
		m.detail.form, cmd = m.detail.form.resolve(msg)
		return m, cmd

	case reviewCreatedMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		if err := m.detail.append(msg.review); err != nil {
			m.log.Warn().Err(err).Int64("review_id", msg.review.ID).Msg("created review not appended")
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	if m.route.IsList() {
		b.WriteString(m.renderBooks())
	} else {
		b.WriteString(m.renderDetail())
	}
	return b.String()
}

// current reports whether a message belongs to the active route entry.
func (m Model) current(gen uint64) bool {
	return gen == m.gen
}

// enter makes r the active route with fresh view state. Requests of the
// previous entry are cancelled.
func (m *Model) enter(r Route) {
	if m.cancel != nil {
		m.cancel()
	}
	m.gen++
	m.viewCtx, m.cancel = context.WithCancel(m.ctx)

	prev := m.route
	m.route = r
	if r.IsList() {
		m.books = newBookListView(prev.BookID)
	} else {
		m.detail = newDetailView(r.BookID, m.width, m.height)
	}
	m.log.Debug().Str("route", r.String()).Uint64("gen", m.gen).Msg("enter route")
}

// navigate enters r and returns its initial fetch.
func (m *Model) navigate(r Route) tea.Cmd {
	m.enter(r)
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	if m.route.IsList() {
		return loadBooksCmd(m.viewCtx, m.catalog, m.gen)
	}
	return loadDetailCmd(m.viewCtx, m.catalog, m.route.BookID, m.gen)
}

func (m Model) formOpen() bool {
	if m.route.IsList() {
		return m.books.showForm
	}
	return m.detail.showForm
}

func (m Model) quit() (Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// handleKey routes a key press. Open forms take every key except ctrl+c.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.formOpen() {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.log.Warn().Err(err).Msg("save prefs failed")
			}
		}
		return m, nil
	}

	if m.route.IsList() {
		return m.handleListKey(msg)
	}
	return m.handleDetailKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.books.move(1)
	case key.Matches(msg, m.keys.Up):
		m.books.move(-1)
	case key.Matches(msg, m.keys.Open):
		if book, ok := m.books.selectedBook(); ok {
			return m, m.navigate(DetailRoute(book.ID))
		}
	case key.Matches(msg, m.keys.Add):
		if m.books.list.Phase() == state.Ready {
			m.books.showForm = !m.books.showForm
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, m.navigate(ListRoute)
	case key.Matches(msg, m.keys.Add):
		if m.detail.reviews.Phase() == state.Ready {
			m.detail.showForm = !m.detail.showForm
		}
		return m, nil
	}
	m.detail.scroll(msg, m.keys)
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.route.IsList() {
		form, action, cmd := m.books.form.Update(msg, m.keys)
		m.books.form = form
		switch action {
		case formClose:
			m.books.showForm = false
		case formSubmit:
			m.books.form, cmd = m.books.form.submit(m.viewCtx, m.catalog, m.gen)
		}
		return m, cmd
	}

	form, action, cmd := m.detail.form.Update(msg, m.keys)
	m.detail.form = form
	switch action {
	case formClose:
		m.detail.showForm = false
	case formSubmit:
		m.detail.form, cmd = m.detail.form.submit(m.viewCtx, m.catalog, m.gen)
	}
	return m, cmd
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Cancelled from outside, e.g. SIGTERM.
		return nil
	}
	return err
}
