// Package theme provides the color themes the calendar is painted with.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is used for empty or unknown theme names.
const DefaultName = "mocha"

// names lists the embedded themes, dark ones first.
var names = []string{"mocha", "macchiato", "frappe", "latte", "light"}

// Theme holds all colors for a TUI theme as hex strings.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // panels, modal
	BgSelection string `toml:"bg_selection"` // focused fields, preset cursor
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // off-month days, borders
	Accent      string `toml:"accent"`   // title, cursor, focused border
	Range       string `toml:"range"`    // days between start and end
	Endpoint    string `toml:"endpoint"` // start and end days
	Today       string `toml:"today"`
	Weekend     string `toml:"weekend"`
	Tag         string `toml:"tag"`
	Warning     string `toml:"warning"` // errors
}

// Load reads an embedded theme. Unknown names fall back to DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.BgHighlight = coalesce(t.BgHighlight, t.Bg)
	t.BgSelection = coalesce(t.BgSelection, t.BgHighlight)
	t.FgMuted = coalesce(t.FgMuted, t.Fg)
	t.Range = coalesce(t.Range, t.Accent)
	t.Endpoint = coalesce(t.Endpoint, t.Range)
	t.Today = coalesce(t.Today, t.Accent)
	t.Weekend = coalesce(t.Weekend, t.Fg)
	t.Tag = coalesce(t.Tag, t.Accent)
	t.Warning = coalesce(t.Warning, t.Accent)
}

// validate checks the colors every theme must define after defaults.
func (t *Theme) validate() error {
	for field, hex := range map[string]string{"bg": t.Bg, "fg": t.Fg, "accent": t.Accent} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%s: invalid color %q", field, hex)
		}
	}
	return nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names.
func Available() []string {
	return slices.Clone(names)
}

// IsAvailable reports whether name is an embedded theme, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(names, strings.ToLower(name))
}
