package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/picker"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

const appTitle = "rangepick"

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.mode == ModeModal && m.overlay.Active()
	modal := ""
	if showModal {
		modal = m.renderKeyModal()
		m.overlay.SetBackground(m.styles.ModalBackdropColor)
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}
	snap := m.engine.Snapshot()

	header := view.RenderHeader(view.HeaderViewState{
		InnerW:     layout.InnerW,
		Title:      appTitle,
		Label:      snap.Label,
		Text:       snap.Text,
		TitleStyle: m.styles.TitleStyle,
		LabelStyle: m.styles.LabelStyle,
		TextStyle:  m.styles.TextStyle,
		Bg:         m.styles.colorBg,
	})

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCalendars(snap, layout),
		m.renderTimeRow(snap),
		m.renderButtons(snap),
	)
	bodyBox := m.placeBox(layout.InnerW, layout.BodyH, lipgloss.Top, body)
	footerBox := view.RenderFooterModel(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, header, bodyBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}

func (m Model) renderCalendars(snap picker.Snapshot, layout LayoutCache) string {
	months := []string{m.renderMonth(snap.Left)}
	if !snap.Single {
		months = append(months, m.renderMonth(snap.Right))
	}

	var calendars string
	if layout.Stacked {
		calendars = lipgloss.JoinVertical(lipgloss.Left, months...)
	} else {
		calendars = joinWithGap(months...)
	}
	if !layout.ShowPresets {
		return calendars
	}
	return joinWithGap(m.renderPresets(snap), calendars)
}

func joinWithGap(blocks ...string) string {
	parts := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Width(columnGap).Render(""))
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderMonth(month picker.Month) string {
	return view.RenderMonth(view.MonthViewState{
		Month:      month,
		Header:     m.engine.Locale().WeekHeader(),
		Cursor:     m.cursor,
		ShowCursor: m.mode == ModeNormal,
		Focused:    m.mode == ModeNormal && m.focus == month.Side,
		Styles:     m.styles.Calendar(),
	})
}

func (m Model) renderPresets(snap picker.Snapshot) string {
	return view.RenderPresets(view.PresetsViewState{
		Labels:  m.presetLabels(),
		Active:  snap.Label,
		Cursor:  m.presetCursor,
		Focused: m.mode == ModePresets,
		Height:  calendar.Rows + 2, // title and weekday header
		Styles:  m.styles.Presets(),
	})
}

func (m Model) renderTimeRow(snap picker.Snapshot) string {
	if snap.LeftTime == nil {
		return ""
	}
	st := m.styles.Time()
	label := "from"
	if snap.Single {
		label = "at"
	}
	parts := []string{view.RenderTime(view.TimeViewState{
		Label:   label,
		Options: snap.LeftTime,
		Focused: m.mode == ModeTime && m.timeSide == calendar.Left,
		Field:   m.timeField,
		Styles:  st,
	})}
	if !snap.Single && snap.RightTime != nil {
		parts = append(parts, view.RenderTime(view.TimeViewState{
			Label:   "to",
			Options: snap.RightTime,
			Locked:  snap.RightTimeLocked,
			Focused: m.mode == ModeTime && m.timeSide == calendar.Right,
			Field:   m.timeField,
			Styles:  st,
		}))
	}
	return " " + joinWithGap(parts...)
}

func (m Model) renderButtons(snap picker.Snapshot) string {
	loc := m.engine.Locale()
	return " " + view.RenderButtons(m.styles.Modal(),
		view.Button{Label: "a " + loc.ApplyLabel, Primary: true, Disabled: !snap.ApplyEnabled},
		view.Button{Label: "esc " + loc.CancelLabel},
	)
}

func (m Model) renderKeyModal() string {
	st := m.styles.Modal()
	return view.RenderModalFrame("Keys", view.RenderKeyHelp(st, m.keyReference()), "any key to close", st)
}

func (m Model) footerViewState(layout LayoutCache) view.FooterModel {
	contentWidth := layout.PromptContentWidth
	lines := m.promptLines(contentWidth)
	lines = view.ClampPromptLines(lines, m.promptMaxContentLines(), contentWidth)

	return view.FooterModel{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		FullFooter:       layout.FooterH >= footerMinHeight,
		StatusText:       m.statusMsgOrDefault(),
		HelpText:         m.renderHelp(),
		PromptLines:      lines,
		PromptMax:        m.promptMaxContentLines(),
		PromptFocus:      m.mode == ModePrompt,
		StatusStyle:      layout.StatusAuxStyle,
		HelpStyle:        layout.HelpAuxStyle,
		PromptStyle:      layout.PromptStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		VAlign:           lipgloss.Bottom,
		Bg:               m.styles.colorBg,
	}
}
