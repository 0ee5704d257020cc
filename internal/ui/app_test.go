package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/prefs"
)

func TestViewWaitsForWindowSize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() before size = %q", got)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, ListRoute)
	m = started(t, m)

	m = press(m, runes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Cycle theme") {
		t.Fatalf("help not shown:\n%s", m.View())
	}
	m = press(m, runes("j"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, ListRoute)
	ctx := m.viewCtx

	_, cmd := send(m, runes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
	if ctx.Err() == nil {
		t.Fatalf("quit left the route context running")
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{PrefsPath: path})
	m, _ = send(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	m, _ = send(m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(path).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
	if !strings.Contains(m.View(), "Kanagawa") {
		t.Fatalf("command bar does not name the theme")
	}
}

func TestHeaderShowsRouteAndHost(t *testing.T) {
	m, srv := newTestModel(t, ListRoute)
	m = started(t, m)

	header := m.renderHeader()
	if !strings.Contains(header, apiHost(srv.URL())) {
		t.Fatalf("header missing API host:\n%s", header)
	}
	if !strings.Contains(header, "0 books") {
		t.Fatalf("header missing status:\n%s", header)
	}
}
