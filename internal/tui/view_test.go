package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func TestBuildLayoutCache(t *testing.T) {
	m := newTestModel(t, testOptions())
	presetsW := m.presetsBoxWidth()
	if presetsW == 0 {
		t.Fatalf("presets should have a width")
	}
	sideBySide := 2*monthBoxWidth + columnGap

	tests := []struct {
		name        string
		width       int
		height      int
		single      bool
		wantStacked bool
		wantPresets bool
		wantFull    bool
	}{
		{name: "wide", width: sideBySide + columnGap + presetsW + 2, height: 40, wantPresets: true, wantFull: true},
		{name: "no_room_for_presets", width: sideBySide + 2, height: 40, wantFull: true},
		{name: "stacked", width: monthBoxWidth + 2, height: 40, wantStacked: true, wantFull: true},
		{name: "single_never_stacks", width: monthBoxWidth + 2, height: 40, single: true, wantFull: true},
		{name: "short", width: 120, height: footerFullMinHeight - 1, wantPresets: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Single = tt.single
			m := newTestModel(t, opts)
			layout := m.buildLayoutCache(tt.width, tt.height)

			if layout.InnerW != tt.width-2 {
				t.Fatalf("InnerW = %d, want %d", layout.InnerW, tt.width-2)
			}
			if layout.Stacked != tt.wantStacked {
				t.Fatalf("Stacked = %v, want %v", layout.Stacked, tt.wantStacked)
			}
			if layout.ShowPresets != tt.wantPresets {
				t.Fatalf("ShowPresets = %v, want %v", layout.ShowPresets, tt.wantPresets)
			}
			if full := layout.FooterH >= footerMinHeight; full != tt.wantFull {
				t.Fatalf("FooterH = %d, full = %v, want %v", layout.FooterH, full, tt.wantFull)
			}
			if layout.BodyH+layout.FooterH+headerLines != layout.InnerH {
				t.Fatalf("heights do not add up: %+v", layout)
			}
		})
	}
}

func TestViewBeforeResize(t *testing.T) {
	m := newTestModel(t, testOptions())
	if got := m.View(); got != "Loading..." {
		t.Fatalf("view = %q", got)
	}
}

func TestViewRendersPicker(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	m := sized(t, newTestModel(t, testOptions()), 120, 40)
	out := ansi.Strip(m.View())

	for _, want := range []string{"rangepick", "March 2024", "April 2024", "Last 7 Days", "Apply", "Cancel", "03/04/2024 - 03/06/2024"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Fatalf("lines = %d, want 40", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 120 {
			t.Fatalf("line %d width = %d", i, w)
		}
	}
}

func TestViewSingleHidesRightCalendar(t *testing.T) {
	opts := testOptions()
	opts.Single = true
	m := sized(t, newTestModel(t, opts), 120, 40)
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "March 2024") || strings.Contains(out, "April 2024") {
		t.Fatalf("single view should show one month:\n%s", out)
	}
}

func TestViewTimeRow(t *testing.T) {
	opts := testOptions()
	opts.Time.Enabled = true
	m := sized(t, newTestModel(t, opts), 120, 40)
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "from 00:00") || !strings.Contains(out, "to 23:") {
		t.Fatalf("time row missing:\n%s", out)
	}
}

func TestViewPromptSuggestions(t *testing.T) {
	m := sized(t, newTestModel(t, testOptions()), 120, 40)
	m, _ = press(t, m, "/")
	m.prompt.SetValue("to")
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Today  03/15/2024 - 03/15/2024") {
		t.Fatalf("suggestions missing:\n%s", out)
	}
	if !strings.Contains(m.renderHelp(), "Tab: complete") {
		t.Fatalf("help should describe prompt keys")
	}
}

func TestStatusMessageRendered(t *testing.T) {
	m := sized(t, newTestModel(t, testOptions()), 120, 40)
	m, _ = press(t, m, "enter", "a")
	if !strings.Contains(ansi.Strip(m.View()), "Pick an end date first") {
		t.Fatalf("status not rendered")
	}
}
