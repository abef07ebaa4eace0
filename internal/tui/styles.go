package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/tui/theme"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorEndpoint    lipgloss.Color
	colorToday       lipgloss.Color
	colorWeekend     lipgloss.Color
	colorTag         lipgloss.Color
	colorWarning     lipgloss.Color
	colorRangeBg     lipgloss.Color
	colorPreviewBg   lipgloss.Color
	colorDisabledFg  lipgloss.Color

	colorTextOnAccent   lipgloss.Color
	colorTextOnEndpoint lipgloss.Color
	colorTextOnRange    lipgloss.Color

	// Header
	TitleStyle lipgloss.Style
	LabelStyle lipgloss.Style
	TextStyle  lipgloss.Style

	// Calendar boxes
	CalendarBoxStyle        lipgloss.Style
	CalendarBoxFocusedStyle lipgloss.Style
	MonthTitleStyle         lipgloss.Style
	ArrowStyle              lipgloss.Style
	ArrowDisabledStyle      lipgloss.Style
	WeekHeaderStyle         lipgloss.Style

	// Day cells
	DayStyle      lipgloss.Style
	OffMonthStyle lipgloss.Style
	WeekendStyle  lipgloss.Style
	TodayStyle    lipgloss.Style
	TaggedStyle   lipgloss.Style
	DisabledStyle lipgloss.Style
	InRangeStyle  lipgloss.Style
	PreviewStyle  lipgloss.Style
	EndpointStyle lipgloss.Style
	CursorStyle   lipgloss.Style

	// Time row
	TimeLabelStyle        lipgloss.Style
	TimeFieldStyle        lipgloss.Style
	TimeFieldFocusedStyle lipgloss.Style
	TimeLockedStyle       lipgloss.Style

	// Preset list
	PresetBoxStyle    lipgloss.Style
	PresetItemStyle   lipgloss.Style
	PresetActiveStyle lipgloss.Style
	PresetCursorStyle lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle               lipgloss.Style
	ModalBgColor             lipgloss.Color
	ModalBackdropColor       lipgloss.Color
	ModalHeaderStyle         lipgloss.Style
	ModalFooterStyle         lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalBodyStyle           lipgloss.Style
	ModalKeyStyle            lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonActiveStyle   lipgloss.Style
	ModalButtonDisabledStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorEndpoint = palette.Endpoint
	s.colorToday = palette.Today
	s.colorWeekend = palette.Weekend
	s.colorTag = palette.Tag
	s.colorWarning = palette.Warning
	s.colorRangeBg = palette.RangeBg
	s.colorPreviewBg = palette.PreviewBg
	s.colorDisabledFg = palette.DisabledFg

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnEndpoint = palette.TextOnEndpoint
	s.colorTextOnRange = palette.TextOnRange

	base := lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.TitleStyle = base.
		Bold(true).
		Foreground(s.colorAccent)
	s.LabelStyle = base.
		Foreground(s.colorEndpoint).
		Italic(true)
	s.TextStyle = base

	s.CalendarBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBg)
	s.CalendarBoxFocusedStyle = s.CalendarBoxStyle.
		BorderForeground(s.colorAccent)

	s.MonthTitleStyle = base.Bold(true)
	s.ArrowStyle = base.Foreground(s.colorAccent).Bold(true)
	s.ArrowDisabledStyle = base
	s.WeekHeaderStyle = base.Foreground(s.colorFgMuted)

	s.DayStyle = base
	s.OffMonthStyle = base.Foreground(s.colorFgMuted).Faint(true)
	s.WeekendStyle = base.Foreground(s.colorWeekend)
	s.TodayStyle = base.Foreground(s.colorToday).Bold(true).Underline(true)
	s.TaggedStyle = base.Foreground(s.colorTag)
	s.DisabledStyle = base.Foreground(s.colorDisabledFg).Strikethrough(true)

	s.InRangeStyle = lipgloss.NewStyle().
		Background(s.colorRangeBg).
		Foreground(s.colorTextOnRange)
	s.PreviewStyle = lipgloss.NewStyle().
		Background(s.colorPreviewBg).
		Foreground(s.colorFg)
	s.EndpointStyle = lipgloss.NewStyle().
		Background(s.colorEndpoint).
		Foreground(s.colorTextOnEndpoint).
		Bold(true)
	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(s.colorTextOnAccent).
		Bold(true)

	s.TimeLabelStyle = base.Foreground(s.colorFgMuted)
	s.TimeFieldStyle = base
	s.TimeFieldFocusedStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)
	s.TimeLockedStyle = base.Foreground(s.colorDisabledFg)

	s.PresetBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBg)
	s.PresetItemStyle = base
	s.PresetActiveStyle = base.Foreground(s.colorEndpoint).Bold(true)
	s.PresetCursorStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	// Prompt box
	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = base.Foreground(s.colorAccent)
	s.ErrorStyle = base.Foreground(s.colorWarning).Bold(true)
	s.HelpStyle = base.Foreground(s.colorFgMuted)

	// Modal uses the highlight background so it reads as a separate layer
	s.ModalBgColor = s.colorBgHighlight
	s.ModalBackdropColor = s.colorBgHighlight
	modalBase := lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.ModalBgColor)
	s.ModalStyle = modalBase.Padding(1, 2)
	s.ModalHeaderStyle = modalBase
	s.ModalTitleStyle = modalBase.Bold(true).Foreground(s.colorAccent)
	s.ModalFooterStyle = modalBase.Foreground(s.colorFgMuted)
	s.ModalBodyStyle = modalBase
	s.ModalKeyStyle = modalBase.Foreground(s.colorEndpoint).Bold(true)
	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Padding(0, 1)
	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)
	s.ModalButtonDisabledStyle = lipgloss.NewStyle().
		Foreground(s.colorDisabledFg).
		Background(s.colorBgSelection).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	return s
}

// Calendar returns the styles for month rendering.
func (s *Styles) Calendar() view.CalendarStyles {
	return view.CalendarStyles{
		Box:           s.CalendarBoxStyle,
		BoxFocused:    s.CalendarBoxFocusedStyle,
		Title:         s.MonthTitleStyle,
		Arrow:         s.ArrowStyle,
		ArrowDisabled: s.ArrowDisabledStyle,
		WeekHeader:    s.WeekHeaderStyle,
		Day:           s.DayStyle,
		OffMonth:      s.OffMonthStyle,
		Weekend:       s.WeekendStyle,
		Today:         s.TodayStyle,
		Tagged:        s.TaggedStyle,
		Disabled:      s.DisabledStyle,
		InRange:       s.InRangeStyle,
		Preview:       s.PreviewStyle,
		Endpoint:      s.EndpointStyle,
		Cursor:        s.CursorStyle,
	}
}

// Time returns the styles for the time row.
func (s *Styles) Time() view.TimeStyles {
	return view.TimeStyles{
		Label:        s.TimeLabelStyle,
		Field:        s.TimeFieldStyle,
		FieldFocused: s.TimeFieldFocusedStyle,
		Locked:       s.TimeLockedStyle,
	}
}

// Presets returns the styles for the preset list.
func (s *Styles) Presets() view.PresetStyles {
	return view.PresetStyles{
		Box:    s.PresetBoxStyle,
		Item:   s.PresetItemStyle,
		Active: s.PresetActiveStyle,
		Cursor: s.PresetCursorStyle,
	}
}

// Modal returns the styles for modal frames and buttons.
func (s *Styles) Modal() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:         s.ModalHeaderStyle,
		ModalTitleStyle:          s.ModalTitleStyle,
		ModalFooterStyle:         s.ModalFooterStyle,
		ModalStyle:               s.ModalStyle,
		ModalButtonStyle:         s.ModalButtonStyle,
		ModalButtonActiveStyle:   s.ModalButtonActiveStyle,
		ModalButtonDisabledStyle: s.ModalButtonDisabledStyle,
		ModalBodyStyle:           s.ModalBodyStyle,
		ModalKeyStyle:            s.ModalKeyStyle,
	}
}
