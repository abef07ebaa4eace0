package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Backdrop margin around the key reference, in cells.
const (
	overlayPadX = 2
	overlayPadY = 1
)

// OverlayModel floats the key reference over the picker.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel returns a hidden overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Toggle shows or hides the overlay.
func (o *OverlayModel) Toggle() {
	o.active = !o.active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground sets the backdrop color drawn behind the overlay content.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render centers content on a backdrop over base. The backdrop hugs the
// content plus a margin and never exceeds the screen.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}
	body := trimTrailingEmpty(strings.Split(content, "\n"))
	boxW, boxH := o.boxSize(width, height, body)
	top := (height - boxH) / 2
	left := (width - boxW) / 2

	screen := fitScreen(base, width, height)
	backdrop := o.backdrop(body, boxW, boxH)
	for i, line := range backdrop {
		row := top + i
		screen[row] = ansi.Cut(screen[row], 0, left) + line + ansi.Cut(screen[row], left+boxW, width)
	}
	return strings.Join(screen, "\n")
}

// boxSize is the backdrop size for body, clamped to the screen.
func (o OverlayModel) boxSize(width, height int, body []string) (int, int) {
	w := 0
	for _, l := range body {
		w = max(w, lipgloss.Width(l))
	}
	return min(w+2*overlayPadX, width), min(len(body)+2*overlayPadY, height)
}

func (o OverlayModel) backdrop(body []string, w, h int) []string {
	bg := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	blank := bg + strings.Repeat(" ", w) + ansi.ResetStyle

	innerW := max(w-2*overlayPadX, 0)
	padX := min(overlayPadX, w)
	lines := make([]string, h)
	for i := range lines {
		idx := i - overlayPadY
		if idx < 0 || idx >= len(body) {
			lines[i] = blank
			continue
		}
		text := ansi.Truncate(body[idx], innerW, "")
		text += strings.Repeat(" ", innerW-lipgloss.Width(text))
		// Inner resets would otherwise punch holes in the backdrop.
		text = strings.ReplaceAll(text, ansi.ResetStyle, ansi.ResetStyle+bg)
		text = strings.ReplaceAll(text, "\x1b[0m", "\x1b[0m"+bg)
		rightPad := max(w-padX-innerW, 0)
		lines[i] = bg + strings.Repeat(" ", padX) + text + bg + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}
	return lines
}

// fitScreen pads or cuts base to exactly height lines of width cells.
func fitScreen(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w > width {
			line = ansi.Cut(line, 0, width)
		} else {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return out
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
