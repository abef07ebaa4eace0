package ui

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Output formats for an applied range.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatICS  = "ics"
)

// Range is an applied range as printed by the CLI.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label,omitempty"`
	Text  string    `json:"text"`
}

// Days returns the number of calendar days the range touches.
func (r Range) Days() int {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

func validateOutput(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatICS:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or ics)", format)
	}
}

// writeRange prints r in the given format. Date-only ranges become all-day events.
func writeRange(w io.Writer, format string, r Range, allDay bool) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding range: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case FormatICS:
		_, err := io.WriteString(w, rangeCalendar(r, allDay, time.Now()))
		return err
	default:
		line := r.Text
		if r.Label != "" {
			line = fmt.Sprintf("%s  %s", r.Text, formatMuted("("+r.Label+")"))
		}
		_, err := fmt.Fprintln(w, line)
		return err
	}
}

// rangeCalendar renders r as a calendar with one event.
func rangeCalendar(r Range, allDay bool, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//rangepick//EN")

	event := cal.AddEvent(rangeUID(r))
	event.SetDtStampTime(stamp.UTC())
	summary := r.Label
	if summary == "" {
		summary = r.Text
	}
	event.SetSummary(summary)
	event.SetDescription(r.Text)

	if allDay {
		event.SetAllDayStartAt(r.Start)
		// DTEND is exclusive for all-day events.
		event.SetAllDayEndAt(r.End.AddDate(0, 0, 1))
	} else {
		event.SetStartAt(r.Start)
		event.SetEndAt(r.End)
	}
	return cal.Serialize()
}

// rangeUID derives a stable event UID from the range, so exporting the same
// range twice updates one calendar entry.
func rangeUID(r Range) string {
	name := r.Start.Format(time.RFC3339Nano) + "/" + r.End.Format(time.RFC3339Nano)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("rangepick:"+name)).String() + "@rangepick"
}
