package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	inputPrefix  = "> "
	indentPrefix = "  "
)

// Suggestion is a preset completion shown under the range input.
type Suggestion struct {
	Label  string
	Detail string // the range the preset resolves to
}

// PromptState is the range input as the footer shows it.
type PromptState struct {
	Value      string
	Cursor     string
	ModePrompt bool
}

// PromptLines lays out the input line and, while typing, the matching
// suggestions with their details aligned in a column.
func PromptLines(state PromptState, contentWidth int, suggestions []Suggestion) []string {
	lines := indent(WrapTextToWidths(state.Value+state.Cursor,
		contentWidth-len(inputPrefix), contentWidth-len(indentPrefix)), inputPrefix)
	if !state.ModePrompt {
		return lines
	}

	labelW := 0
	for _, sg := range suggestions {
		labelW = max(labelW, runewidth.StringWidth(sg.Label))
	}
	for _, sg := range suggestions {
		text := sg.Label
		if sg.Detail != "" {
			text = runewidth.FillRight(sg.Label, labelW) + "  " + sg.Detail
		}
		w := contentWidth - len(indentPrefix)
		lines = append(lines, indent(WrapTextToWidths(text, w, w), indentPrefix)...)
	}
	return lines
}

// ClampPromptLines keeps at most maxLines, marking the cut with an ellipsis.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	last := out[maxLines-1]
	if runewidth.StringWidth(last)+3 <= width {
		out[maxLines-1] = last + "..."
	} else {
		out[maxLines-1] = runewidth.Truncate(last, max(width, 0), "...")
	}
	return out
}

// WrapTextToWidths breaks s at spaces so the first line fits firstWidth
// cells and the rest fit otherWidth. Words longer than a line are split.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 || s == "" {
		return []string{""}
	}

	var lines []string
	limit := firstWidth
	rest := []rune(s)
	for runewidth.StringWidth(string(rest)) > limit {
		cut, used := 0, 0
		for cut < len(rest) && used+runewidth.RuneWidth(rest[cut]) <= limit {
			used += runewidth.RuneWidth(rest[cut])
			cut++
		}
		cut = max(cut, 1)
		if sp := lastSpace(rest[:min(cut+1, len(rest))]); sp > 0 {
			lines = append(lines, string(rest[:sp]))
			rest = rest[sp+1:]
		} else {
			lines = append(lines, string(rest[:cut]))
			rest = rest[cut:]
		}
		limit = otherWidth
	}
	return append(lines, string(rest))
}

// RenderPrompt draws the input box around lines. With no lines it keeps an
// empty box of minLines rows so the footer height stays stable.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	return renderInputBox(width, style, lines, 1)
}

// RenderPromptPlaceholder draws an empty input box of maxContentLines rows.
func RenderPromptPlaceholder(width int, style lipgloss.Style, maxContentLines int) string {
	return renderInputBox(width, style, nil, maxContentLines)
}

func renderInputBox(width int, style lipgloss.Style, lines []string, minLines int) string {
	frameW, _ := style.GetFrameSize()
	style = style.Width(max(width-frameW, 0))
	for len(lines) < max(minLines, 1) {
		lines = append(lines, "")
	}
	return style.Render(strings.Join(lines, "\n"))
}

func indent(lines []string, first string) []string {
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = indentPrefix + lines[i]
		}
	}
	return lines
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == ' ' {
			return i
		}
	}
	return -1
}
