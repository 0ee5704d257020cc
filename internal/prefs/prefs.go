// Package prefs persists UI preferences in ~/.config/shelf/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/shelf/internal/config"
)

// Prefs holds choices the operator makes inside the UI.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPath  = "~/.config/shelf/prefs.toml"
	DefaultTheme = "Nightfox"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: DefaultTheme}
}

// Load reads preferences from path (or the default location). Any problem
// reading or parsing the file yields Defaults; preferences never block startup.
func Load(path string) Prefs {
	resolved, err := resolve(path)
	if err != nil {
		return Defaults()
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults()
	}
	p := Defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults()
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = DefaultTheme
	}
	return p
}

// Save writes p to path (or the default location), creating parent
// directories.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Path returns the absolute file Load and Save use for path.
func Path(path string) (string, error) {
	return resolve(path)
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPath
	}
	return config.ExpandPath(path)
}
