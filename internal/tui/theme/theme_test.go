package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "mocha", themeName: "mocha", wantName: "mocha"},
		{name: "macchiato", themeName: "macchiato", wantName: "macchiato"},
		{name: "frappe", themeName: "frappe", wantName: "frappe"},
		{name: "latte", themeName: "latte", wantName: "latte"},
		{name: "light", themeName: "light", wantName: "light"},
		{name: "mixed_case", themeName: " Latte ", wantName: "latte"},
		{name: "empty_defaults", themeName: "", wantName: DefaultName},
		{name: "unknown_falls_back", themeName: "nonexistent", wantName: DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	theme, err := Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha) unexpected error: %v", err)
	}

	// Verify all required colors are present and valid hex format
	colors := map[string]string{
		"Bg":          theme.Bg,
		"BgHighlight": theme.BgHighlight,
		"BgSelection": theme.BgSelection,
		"Fg":          theme.Fg,
		"FgMuted":     theme.FgMuted,
		"Accent":      theme.Accent,
		"Range":       theme.Range,
		"Endpoint":    theme.Endpoint,
		"Today":       theme.Today,
		"Weekend":     theme.Weekend,
		"Tag":         theme.Tag,
		"Warning":     theme.Warning,
	}

	for name, hex := range colors {
		if len(hex) != 7 {
			t.Errorf("theme.%s = %q, want 7-char hex string", name, hex)
			continue
		}
		if hex[0] != '#' {
			t.Errorf("theme.%s = %q, want hex string starting with #", name, hex)
		}
	}
}

func TestLoad_AllAvailableThemesParse(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) unexpected error: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
		if th.Endpoint == "" || th.Range == "" {
			t.Errorf("theme %q is missing range colors", name)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	th := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "#ff0000"}
	th.applyDefaults()

	if th.Range != th.Accent || th.Endpoint != th.Accent {
		t.Errorf("range colors should fall back to accent, got %q/%q", th.Range, th.Endpoint)
	}
	if th.BgSelection != th.Bg {
		t.Errorf("BgSelection = %q, want %q", th.BgSelection, th.Bg)
	}
	if th.FgMuted != th.Fg {
		t.Errorf("FgMuted = %q, want %q", th.FgMuted, th.Fg)
	}
}

func TestAvailable(t *testing.T) {
	available := Available()

	expected := []string{"mocha", "macchiato", "frappe", "latte", "light"}
	if len(available) != len(expected) {
		t.Errorf("Available() returned %d themes, want %d", len(available), len(expected))
	}

	for i, want := range expected {
		if i >= len(available) {
			break
		}
		if available[i] != want {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], want)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "mocha", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	th := &Theme{Bg: "#000000", Fg: "not-a-color", Accent: "#ff0000"}
	if err := th.validate(); err == nil {
		t.Fatal("expected invalid fg to fail validation")
	}
	th.Fg = "#ffffff"
	if err := th.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestAvailableReturnsCopy(t *testing.T) {
	list := Available()
	list[0] = "changed"
	if Available()[0] != "mocha" {
		t.Fatal("Available should not expose the internal list")
	}
}
