package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderViewState describes the top bar: app name, matched label and range text.
type HeaderViewState struct {
	InnerW     int
	Title      string
	Label      string
	Text       string
	TitleStyle lipgloss.Style
	LabelStyle lipgloss.Style
	TextStyle  lipgloss.Style
	Bg         lipgloss.Color
}

// RenderHeader renders the one-line header, truncating the range text first.
func RenderHeader(s HeaderViewState) string {
	left := s.TitleStyle.Render(s.Title)
	if s.Label != "" {
		left += s.LabelStyle.Render(" " + s.Label)
	}
	room := s.InnerW - lipgloss.Width(left) - 1
	text := ""
	if room > 0 && s.Text != "" {
		text = s.TextStyle.Render(ansi.Truncate(s.Text, room, "…"))
	}
	gap := s.InnerW - lipgloss.Width(left) - lipgloss.Width(text)
	if gap < 1 {
		return PlaceBox(s.InnerW, 1, lipgloss.Top, left, s.Bg)
	}
	fill := lipgloss.NewStyle().Background(s.Bg).Render(strings.Repeat(" ", gap))
	return left + fill + text
}
