package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int
	BodyH   int

	Stacked     bool // months one above the other
	ShowPresets bool

	StatusAuxStyle lipgloss.Style
	HelpAuxStyle   lipgloss.Style

	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	promptFrameW, _ := styles.PromptStyle.GetFrameSize()
	promptWidth := innerW - promptFrameW
	if promptWidth < 0 {
		promptWidth = 0
	}
	if promptWidth < 20 && innerW >= promptFrameW+20 {
		promptWidth = 20
	}
	return promptWidth
}

// presetsBoxWidth is the preset panel width including its border.
func (m Model) presetsBoxWidth() int {
	labels := m.presetLabels()
	if len(labels) == 0 {
		return 0
	}
	return view.PresetsWidth(labels) + 2
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := width - appH
	innerH := height - appV

	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		promptWidth := promptContentWidth(styles, innerW)
		footerH = m.fullFooterHeight(innerH, promptWidth)
	}

	bodyH := innerH - footerH - headerLines
	if bodyH < 0 {
		bodyH = 0
	}

	months := 2
	if m.engine != nil && m.engine.Options().Single {
		months = 1
	}
	calendarsW := months*monthBoxWidth + (months-1)*columnGap
	presetsW := 0
	if m.engine != nil {
		presetsW = m.presetsBoxWidth()
	}

	stacked := months == 2 && innerW < calendarsW
	if stacked {
		calendarsW = monthBoxWidth
	}
	showPresets := presetsW > 0 && innerW >= calendarsW+columnGap+presetsW

	statusAuxStyle := styles.StatusStyle.Inherit(lipgloss.NewStyle().
		Width(max(0, innerW)).
		Background(styles.colorBg))
	helpAuxStyle := styles.HelpStyle.Inherit(lipgloss.NewStyle().
		Padding(0, 1).
		Width(max(0, innerW-2)).
		Background(styles.colorBg))

	promptWidth := promptContentWidth(styles, innerW)
	promptStyle := styles.PromptStyle.Width(promptWidth)
	promptFocusedStyle := styles.PromptFocusedStyle.Width(promptWidth)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		FooterH:            footerH,
		BodyH:              bodyH,
		Stacked:            stacked,
		ShowPresets:        showPresets,
		StatusAuxStyle:     statusAuxStyle,
		HelpAuxStyle:       helpAuxStyle,
		PromptStyle:        promptStyle,
		PromptFocusedStyle: promptFocusedStyle,
		PromptContentWidth: promptWidth,
	}
}
