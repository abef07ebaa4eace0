package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/picker"
)

// Time fields in focus order.
const (
	FieldHour = iota
	FieldMinute
	FieldSecond
	FieldMeridiem
)

// TimeStyles groups the styles of the time row.
type TimeStyles struct {
	Label        lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	Locked       lipgloss.Style
}

// TimeViewState describes one side's time fields.
type TimeViewState struct {
	Label   string
	Options *picker.TimeOptions
	Locked  bool
	Focused bool
	Field   int
	Styles  TimeStyles
}

// TimeFields lists the fields shown for opts, in focus order.
func TimeFields(opts *picker.TimeOptions) []int {
	if opts == nil {
		return nil
	}
	fields := []int{FieldHour, FieldMinute}
	if len(opts.Seconds) > 0 {
		fields = append(fields, FieldSecond)
	}
	if opts.Hour12 {
		fields = append(fields, FieldMeridiem)
	}
	return fields
}

// RenderTime draws "label hh : mm [: ss] [AM]" for one side.
func RenderTime(s TimeViewState) string {
	if s.Options == nil {
		return ""
	}
	label := s.Styles.Label.Render(s.Label)
	if s.Locked {
		return label + s.Styles.Locked.Render(" --:--")
	}

	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" ")
	for i, f := range TimeFields(s.Options) {
		switch {
		case f == FieldMeridiem:
			b.WriteString(s.Styles.Label.Render(" "))
		case i > 0:
			b.WriteString(s.Styles.Label.Render(":"))
		}
		style := s.Styles.Field
		if s.Focused && f == s.Field {
			style = s.Styles.FieldFocused
		}
		b.WriteString(style.Render(fieldText(s.Options, f)))
	}
	return b.String()
}

func fieldText(opts *picker.TimeOptions, field int) string {
	switch field {
	case FieldHour:
		if h, ok := opts.SelectedHour(); ok {
			return fmt.Sprintf("%2s", h.Label)
		}
	case FieldMinute:
		if m, ok := opts.SelectedMinute(); ok {
			return m.Label
		}
	case FieldSecond:
		for _, s := range opts.Seconds {
			if s.Selected {
				return s.Label
			}
		}
	case FieldMeridiem:
		if opts.PM {
			return "PM"
		}
		return "AM"
	}
	return "--"
}
