package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/picker"
)

// CellWidth is the rendered width of one day cell.
const CellWidth = 4

// MonthWidth is the content width of a rendered month.
const MonthWidth = CellWidth * 7

// CalendarStyles groups the styles used to draw a month.
type CalendarStyles struct {
	Box           lipgloss.Style
	BoxFocused    lipgloss.Style
	Title         lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	WeekHeader    lipgloss.Style

	Day      lipgloss.Style
	OffMonth lipgloss.Style
	Weekend  lipgloss.Style
	Today    lipgloss.Style
	Tagged   lipgloss.Style
	Disabled lipgloss.Style
	InRange  lipgloss.Style
	Preview  lipgloss.Style
	Endpoint lipgloss.Style
	Cursor   lipgloss.Style
}

// MonthViewState is everything needed to draw one calendar.
type MonthViewState struct {
	Month      picker.Month
	Header     [7]string
	Cursor     time.Time
	ShowCursor bool
	Focused    bool
	Styles     CalendarStyles
}

// RenderMonth draws a titled 6x7 month inside a rounded box.
func RenderMonth(s MonthViewState) string {
	var b strings.Builder
	b.WriteString(monthTitle(s))
	b.WriteString("\n")

	header := make([]string, 0, len(s.Header))
	for _, name := range s.Header {
		header = append(header, s.Styles.WeekHeader.Render(centerCell(name)))
	}
	b.WriteString(strings.Join(header, ""))

	for r := range s.Month.Cells {
		b.WriteString("\n")
		for c := range s.Month.Cells[r] {
			cell := s.Month.Cells[r][c]
			style := DayStyle(cell, s.Styles, s.ShowCursor && dateutil.SameDay(cell.Date, s.Cursor))
			b.WriteString(style.Render(DayLabel(cell)))
		}
	}

	box := s.Styles.Box
	if s.Focused {
		box = s.Styles.BoxFocused
	}
	return box.Render(b.String())
}

// DayLabel renders the day number padded to the cell width. Tagged days carry a marker.
func DayLabel(cell picker.Cell) string {
	marker := " "
	if len(cell.Tags) > 0 {
		marker = "·"
	}
	return fmt.Sprintf(" %2d%s", cell.Date.Day(), marker)
}

// DayStyle resolves the style of a cell. Later flags win: selection over
// decoration, disabled over selection, cursor over everything.
func DayStyle(cell picker.Cell, st CalendarStyles, cursor bool) lipgloss.Style {
	style := st.Day
	switch {
	case cell.OffMonth:
		style = st.OffMonth
	case cell.Today:
		style = st.Today
	case len(cell.Tags) > 0:
		style = st.Tagged
	case cell.Weekend:
		style = st.Weekend
	}
	if cell.InRange {
		style = st.InRange
	}
	if cell.Preview && !cell.InRange {
		style = st.Preview
	}
	if cell.Start || cell.End {
		style = st.Endpoint
	}
	if cell.Disabled {
		style = st.Disabled
	}
	if cursor {
		style = st.Cursor
	}
	return style
}

func monthTitle(s MonthViewState) string {
	prev := s.Styles.ArrowDisabled.Render(" ")
	if s.Month.CanPrev {
		prev = s.Styles.Arrow.Render("‹")
	}
	next := s.Styles.ArrowDisabled.Render(" ")
	if s.Month.CanNext {
		next = s.Styles.Arrow.Render("›")
	}
	title := s.Styles.Title.Width(MonthWidth - 2).Align(lipgloss.Center).Render(s.Month.Title)
	return prev + title + next
}

func centerCell(s string) string {
	return lipgloss.PlaceHorizontal(CellWidth, lipgloss.Center, s)
}
