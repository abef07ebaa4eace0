package picker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// ErrInvalidSpan is returned when a span expression cannot be parsed.
var ErrInvalidSpan = errors.New("span must look like 7d, 2w, 1m or 1y")

// Span is a calendar-aware maximum distance between start and end.
type Span struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether the span is unset.
func (s Span) IsZero() bool {
	return s.Years == 0 && s.Months == 0 && s.Days == 0
}

// AddTo returns t moved forward by the span.
func (s Span) AddTo(t time.Time) time.Time {
	return t.AddDate(s.Years, s.Months, s.Days)
}

func (s Span) String() string {
	var b strings.Builder
	if s.Years != 0 {
		fmt.Fprintf(&b, "%dy", s.Years)
	}
	if s.Months != 0 {
		fmt.Fprintf(&b, "%dm", s.Months)
	}
	if s.Days != 0 {
		fmt.Fprintf(&b, "%dd", s.Days)
	}
	return b.String()
}

// ParseSpan parses expressions such as "7d", "2w", "1m15d" or "1y".
// An empty string yields the zero span.
func ParseSpan(s string) (Span, error) {
	var span Span
	input := strings.ToLower(strings.TrimSpace(s))
	for input != "" {
		i := 0
		for i < len(input) && input[i] >= '0' && input[i] <= '9' {
			i++
		}
		if i == 0 || i == len(input) {
			return Span{}, ErrInvalidSpan
		}
		n, err := strconv.Atoi(input[:i])
		if err != nil {
			return Span{}, ErrInvalidSpan
		}
		switch input[i] {
		case 'd':
			span.Days += n
		case 'w':
			span.Days += 7 * n
		case 'm':
			span.Months += n
		case 'y':
			span.Years += n
		default:
			return Span{}, ErrInvalidSpan
		}
		input = input[i+1:]
	}
	return span, nil
}

// InvalidDater decides whether a date may not be picked.
type InvalidDater interface {
	IsInvalidDate(t time.Time) (bool, error)
}

// CustomDater attaches presentation tags to a date.
type CustomDater interface {
	CustomTags(t time.Time) ([]string, error)
}

// InvalidDateFunc adapts a function to InvalidDater.
type InvalidDateFunc func(t time.Time) (bool, error)

// IsInvalidDate calls f(t).
func (f InvalidDateFunc) IsInvalidDate(t time.Time) (bool, error) { return f(t) }

// CustomDateFunc adapts a function to CustomDater.
type CustomDateFunc func(t time.Time) ([]string, error)

// CustomTags calls f(t).
func (f CustomDateFunc) CustomTags(t time.Time) ([]string, error) { return f(t) }

// NoInvalidDates accepts every date.
type NoInvalidDates struct{}

// IsInvalidDate always returns false.
func (NoInvalidDates) IsInvalidDate(time.Time) (bool, error) { return false, nil }

// NoCustomTags tags nothing.
type NoCustomTags struct{}

// CustomTags always returns nil.
func (NoCustomTags) CustomTags(time.Time) ([]string, error) { return nil, nil }

// WeekdayFilter rejects the listed weekdays.
type WeekdayFilter []time.Weekday

// IsInvalidDate reports whether t falls on a filtered weekday.
func (f WeekdayFilter) IsInvalidDate(t time.Time) (bool, error) {
	for _, wd := range f {
		if t.Weekday() == wd {
			return true, nil
		}
	}
	return false, nil
}

// DateSet rejects individual days, keyed by YYYY-MM-DD.
type DateSet map[string]bool

// IsInvalidDate reports whether t's day is in the set.
func (s DateSet) IsInvalidDate(t time.Time) (bool, error) {
	return s[t.Format("2006-01-02")], nil
}

// AnyInvalid combines filters; a date is invalid if any filter says so.
type AnyInvalid []InvalidDater

// IsInvalidDate evaluates each filter in order and stops at the first hit or error.
func (a AnyInvalid) IsInvalidDate(t time.Time) (bool, error) {
	for _, f := range a {
		bad, err := f.IsInvalidDate(t)
		if err != nil || bad {
			return bad, err
		}
	}
	return false, nil
}

// TagCalendar maps YYYY-MM-DD days to tags.
type TagCalendar map[string][]string

// CustomTags returns the tags recorded for t's day.
func (c TagCalendar) CustomTags(t time.Time) ([]string, error) {
	return c[t.Format("2006-01-02")], nil
}

// Constraints bound what can be picked. Zero times and spans mean unbounded.
type Constraints struct {
	MinDate time.Time
	MaxDate time.Time
	MaxSpan Span
	MinYear int
	MaxYear int
	Invalid InvalidDater
	Custom  CustomDater
}

func (c Constraints) invalid() InvalidDater {
	if c.Invalid == nil {
		return NoInvalidDates{}
	}
	return c.Invalid
}

func (c Constraints) custom() CustomDater {
	if c.Custom == nil {
		return NoCustomTags{}
	}
	return c.Custom
}

// Floor is the earliest instant selectable on side. The secondary calendar
// can never go before the selection start.
func (c Constraints) Floor(side calendar.Side, sel Selection) time.Time {
	if side == calendar.Right {
		return sel.Start
	}
	return c.MinDate
}

// Ceiling is the latest selectable instant. While the end is still open
// and a span is set, the span caps MaxDate.
func (c Constraints) Ceiling(sel Selection) time.Time {
	ceiling := c.MaxDate
	if sel.IsOpen() && !c.MaxSpan.IsZero() {
		limit := c.MaxSpan.AddTo(sel.Start)
		if ceiling.IsZero() || limit.Before(ceiling) {
			ceiling = limit
		}
	}
	return ceiling
}

// dayFloor is Floor at day granularity.
func (c Constraints) dayFloor(side calendar.Side, sel Selection) time.Time {
	f := c.Floor(side, sel)
	if f.IsZero() {
		return f
	}
	return dateutil.StartOfDay(f)
}
