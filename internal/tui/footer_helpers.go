package tui

import (
	"strings"

	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	if strings.HasPrefix(m.statusMsg, "Error") || strings.HasPrefix(m.statusMsg, "Could not") {
		return m.styles.ErrorStyle.Render(m.statusMsg)
	}
	return m.statusMsg
}

// promptCursor returns the cursor character if in prompt mode.
func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModeTime:
		help = "h/l: field | j/k: change | Tab: other side | Esc: done"
	case ModePresets:
		help = "j/k: move | Enter: pick | Esc: back"
	case ModePrompt:
		help = "Enter: submit | Tab: complete | Esc: cancel"
	case ModeModal:
		help = "Any key: close"
	default:
		help = "h/j/k/l: move | Enter: pick | a: apply | p: presets | /: type | ?: keys | q: cancel"
	}
	return m.styles.HelpStyle.Render(help)
}

// keyReference lists the bindings shown in the help overlay.
func (m Model) keyReference() []view.KeyHelp {
	rows := []view.KeyHelp{
		{Keys: "h j k l", Desc: "move by day / week"},
		{Keys: "[ ]", Desc: "previous / next month"},
		{Keys: "{ }", Desc: "previous / next year"},
		{Keys: ".", Desc: "jump to today"},
		{Keys: "Tab", Desc: "switch calendar"},
		{Keys: "Enter", Desc: "pick day"},
		{Keys: "a", Desc: m.engine.Locale().ApplyLabel},
		{Keys: "q Esc", Desc: m.engine.Locale().CancelLabel},
		{Keys: "p", Desc: "preset ranges"},
		{Keys: "/", Desc: "type a range"},
		{Keys: "y", Desc: "copy range text"},
	}
	if m.engine.Options().Time.Enabled {
		rows = append(rows, view.KeyHelp{Keys: "t", Desc: "edit time"})
	}
	return rows
}
