package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PresetStyles groups the styles of the preset list.
type PresetStyles struct {
	Box    lipgloss.Style
	Item   lipgloss.Style
	Active lipgloss.Style
	Cursor lipgloss.Style
}

// PresetsViewState describes the preset range list.
type PresetsViewState struct {
	Labels  []string
	Active  string // label matching the current selection
	Cursor  int
	Focused bool
	Height  int
	Styles  PresetStyles
}

// PresetsWidth returns the content width needed for labels.
func PresetsWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	return w + 2
}

// RenderPresets draws the preset list, one label per line.
func RenderPresets(s PresetsViewState) string {
	if len(s.Labels) == 0 {
		return ""
	}
	width := PresetsWidth(s.Labels)
	lines := make([]string, 0, len(s.Labels))
	for i, label := range s.Labels {
		style := s.Styles.Item
		if label == s.Active {
			style = s.Styles.Active
		}
		if s.Focused && i == s.Cursor {
			style = s.Styles.Cursor
		}
		lines = append(lines, style.Width(width).Render(" "+label))
	}
	box := s.Styles.Box
	if s.Height > 0 {
		box = box.Height(s.Height)
	}
	return box.Render(strings.Join(lines, "\n"))
}
