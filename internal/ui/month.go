package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/locale"
	"github.com/javiermolinar/rangepick/internal/picker"
)

const (
	cellWidth  = 3
	monthWidth = calendar.Cols * cellWidth
	monthGap   = 4
)

func (a *App) monthCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print the calendars with the current range",
		Long: `Print the picker's calendars without the interactive UI.

Days are colored by state: the range endpoints, days inside the range,
today, weekends, tagged and disabled days. Without an argument the
calendars open on the configured start date.

Example:
  rangepick month 2024-03 --start 2024-03-04 --end 2024-03-08`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, opts, err := a.newEngine()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				t, err := time.ParseInLocation("2006-01", args[0], opts.Locale.Zone())
				if err != nil {
					return fmt.Errorf("parsing month %q: want YYYY-MM", args[0])
				}
				if err := engine.JumpMonth(calendar.Left, t.Month(), t.Year()); err != nil {
					return fmt.Errorf("showing month: %w", err)
				}
			}
			if err := engine.Err(); err != nil {
				return err
			}
			if width <= 0 {
				width = termWidth()
			}
			printMonths(cmd.OutOrStdout(), engine.Snapshot(), opts.Locale, width)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Layout width (default: terminal width)")
	return cmd
}

// printMonths prints the visible months side by side when they fit, stacked otherwise.
func printMonths(w io.Writer, snap picker.Snapshot, loc locale.Locale, width int) {
	blocks := [][]string{monthLines(snap.Left, loc)}
	if !snap.Single {
		blocks = append(blocks, monthLines(snap.Right, loc))
	}

	gap := strings.Repeat(" ", monthGap)
	if len(blocks) == 2 && width >= 2*monthWidth+monthGap {
		for i := range blocks[0] {
			fmt.Fprintf(w, "%s%s%s\n", blocks[0][i], gap, blocks[1][i])
		}
	} else {
		for i, block := range blocks {
			if i > 0 {
				fmt.Fprintln(w)
			}
			for _, line := range block {
				fmt.Fprintln(w, line)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, legend())
	line := snap.Text
	if snap.HasLabel {
		line += "  " + formatMuted("("+snap.Label+")")
	}
	fmt.Fprintln(w, line)
}

// monthLines renders one month: title, weekday header, then six weeks.
func monthLines(m picker.Month, loc locale.Locale) []string {
	lines := make([]string, 0, calendar.Rows+2)
	lines = append(lines, formatHeader(center(m.Title, monthWidth)))

	var header strings.Builder
	for _, name := range loc.WeekHeader() {
		header.WriteString(fmt.Sprintf("%*s", cellWidth, name))
	}
	lines = append(lines, formatMuted(header.String()))

	for r := range m.Cells {
		var row strings.Builder
		for c := range m.Cells[r] {
			cell := m.Cells[r][c]
			label := fmt.Sprintf("%*d", cellWidth, cell.Date.Day())
			if clr := cellColor(cell); clr != nil {
				label = clr.Sprint(label)
			}
			row.WriteString(label)
		}
		lines = append(lines, row.String())
	}
	return lines
}

// cellColor picks the color for a day. Disabled wins over everything,
// then the range, then the calendar markers.
func cellColor(cell picker.Cell) *color.Color {
	switch {
	case cell.Disabled:
		return colorDisabled
	case cell.Start || cell.End:
		return colorEndpoint
	case cell.InRange:
		return colorRange
	case cell.OffMonth:
		return colorMuted
	case cell.Today:
		return colorToday
	case len(cell.Tags) > 0:
		return colorTag
	case cell.Weekend:
		return colorWeekend
	}
	return nil
}

func legend() string {
	items := []struct {
		clr  *color.Color
		desc string
	}{
		{colorEndpoint, "start/end"},
		{colorRange, "in range"},
		{colorToday, "today"},
		{colorTag, "tagged"},
		{colorDisabled, "disabled"},
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.clr.Sprint("##")+" "+it.desc)
	}
	return strings.Join(parts, "  ")
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
