// Package locale holds the immutable display conventions threaded through the picker.
package locale

import (
	"fmt"
	"time"
)

// Default layouts used when no format is configured.
const (
	DefaultDateFormat     = "01/02/2006"
	DefaultTimeFormat     = "01/02/2006 3:04 PM"
	DefaultSecondsFormat  = "01/02/2006 3:04:05 PM"
	Default24TimeFormat   = "01/02/2006 15:04"
	Default24SecondFormat = "01/02/2006 15:04:05"
	DefaultSeparator      = " - "
	DefaultCustomLabel    = "Custom Range"
)

// Locale is a read-only bundle of names, layouts and week conventions.
// Values are passed explicitly; there is no process-wide default.
type Locale struct {
	Format      string // Go time layout for a single endpoint
	Separator   string // between start and end in range text
	FirstDay    time.Weekday
	Weekend     []time.Weekday
	MonthNames  [12]string
	DayNames    [7]string // indexed by time.Weekday (0 = Sunday)
	ApplyLabel  string
	CancelLabel string
	CustomLabel string
	Location    *time.Location
}

// English returns the built-in English locale with a Monday-first week.
func English() Locale {
	return Locale{
		Format:    DefaultDateFormat,
		Separator: DefaultSeparator,
		FirstDay:  time.Monday,
		Weekend:   []time.Weekday{time.Saturday, time.Sunday},
		MonthNames: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		DayNames:    [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		ApplyLabel:  "Apply",
		CancelLabel: "Cancel",
		CustomLabel: DefaultCustomLabel,
		Location:    time.Local,
	}
}

// WeekdayFromIndex converts an external 0..6 (0 = Sunday) index to time.Weekday.
func WeekdayFromIndex(i int) (time.Weekday, error) {
	if i < 0 || i > 6 {
		return 0, fmt.Errorf("first day of week must be 0..6, got %d", i)
	}
	return time.Weekday(i), nil
}

// MonthName returns the configured name of m.
func (l Locale) MonthName(m time.Month) string {
	return l.MonthNames[m-1]
}

// MonthTitle renders "March 2024" style calendar captions.
func (l Locale) MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", l.MonthName(t.Month()), t.Year())
}

// WeekHeader returns the seven day names starting at FirstDay.
func (l Locale) WeekHeader() [7]string {
	var out [7]string
	for i := 0; i < 7; i++ {
		out[i] = l.DayNames[(int(l.FirstDay)+i)%7]
	}
	return out
}

// IsWeekend reports whether wd is one of the locale's weekend days.
func (l Locale) IsWeekend(wd time.Weekday) bool {
	for _, w := range l.Weekend {
		if w == wd {
			return true
		}
	}
	return false
}

// Zone returns the configured location, defaulting to time.Local.
func (l Locale) Zone() *time.Location {
	if l.Location == nil {
		return time.Local
	}
	return l.Location
}

// WithFormat returns a copy with a different endpoint layout.
func (l Locale) WithFormat(format string) Locale {
	l.Format = format
	return l
}
