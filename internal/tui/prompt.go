package tui

import (
	"github.com/javiermolinar/rangepick/internal/picker"
	"github.com/javiermolinar/rangepick/internal/tui/input"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

func (m Model) fullFooterHeight(innerH, promptWidth int) int {
	promptLines := max(promptMinContentLines, m.promptContentLineCount(promptWidth))
	promptHeight := promptLines + promptBorderLines
	desired := footerBaseLines + promptHeight

	maxFooter := innerH - headerLines - 2
	if maxFooter < footerMinHeight {
		return footerCompact
	}
	if desired > maxFooter {
		desired = maxFooter
	}
	if desired < footerMinHeight {
		desired = footerMinHeight
	}
	return desired
}

func (m Model) promptContentLineCount(contentWidth int) int {
	return len(m.promptLines(contentWidth))
}

func (m Model) promptMaxContentLines() int {
	maxLines := m.layoutCache.FooterH - footerBaseLines - promptBorderLines
	if maxLines < promptMinContentLines {
		return promptMinContentLines
	}
	return maxLines
}

// promptLines shows the typed text while editing and the current range text otherwise.
func (m Model) promptLines(contentWidth int) []string {
	if m.engine == nil {
		return nil
	}
	state := view.PromptState{
		Value:      m.engine.Snapshot().Text,
		ModePrompt: m.mode == ModePrompt,
	}
	if m.mode == ModePrompt {
		state.Value = m.prompt.Value()
		state.Cursor = m.promptCursor()
	}
	return view.PromptLines(state, contentWidth, m.promptSuggestions(state.Value))
}

// promptSuggestions lists presets matching the typed text with their resolved ranges.
func (m Model) promptSuggestions(value string) []view.Suggestion {
	if m.mode != ModePrompt {
		return nil
	}
	opts := m.engine.Options()
	byLabel := make(map[string]picker.Preset, len(m.engine.Presets()))
	for _, p := range m.engine.Presets() {
		byLabel[p.Label] = p
	}

	matches := input.MatchingPresets(value, m.presetLabels())
	out := make([]view.Suggestion, 0, len(matches))
	for _, label := range matches {
		sg := view.Suggestion{Label: label}
		if p, ok := byLabel[label]; ok {
			sg.Detail = picker.FormatRange(p.Start, p.End, opts.Locale, opts.Single)
		}
		out = append(out, sg)
	}
	return out
}
