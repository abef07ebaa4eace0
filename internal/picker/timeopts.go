package picker

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// TimeConfig controls the hour/minute/second pickers.
type TimeConfig struct {
	Enabled   bool
	Increment int // minutes, >= 1
	Seconds   bool
	Hour12    bool
}

func (tc TimeConfig) increment() int {
	if tc.Increment < 1 {
		return 1
	}
	return tc.Increment
}

// TimeValue is what a user entered in one side's time fields.
// Hour is 1..12 when the picker runs in 12-hour mode, 0..23 otherwise.
type TimeValue struct {
	Hour   int
	Minute int
	Second int
	PM     bool
}

// TimeOption is one entry of an hour, minute or second list.
type TimeOption struct {
	Value    int // hour in 0..23, minute or second
	Label    string
	Disabled bool
	Selected bool
}

// TimeOptions is the enabled/selected state of one side's time pickers.
type TimeOptions struct {
	Hours      []TimeOption
	Minutes    []TimeOption
	Seconds    []TimeOption // empty unless seconds are enabled
	Hour12     bool
	PM         bool
	AMDisabled bool
	PMDisabled bool
}

// SelectedHour returns the selected option of the hour list.
func (o TimeOptions) SelectedHour() (TimeOption, bool) {
	return selected(o.Hours)
}

// SelectedMinute returns the selected option of the minute list.
func (o TimeOptions) SelectedMinute() (TimeOption, bool) {
	return selected(o.Minutes)
}

func selected(opts []TimeOption) (TimeOption, bool) {
	for _, o := range opts {
		if o.Selected {
			return o, true
		}
	}
	return TimeOption{}, false
}

// FloorMinute snaps minute down to the increment grid.
func FloorMinute(minute, increment int) int {
	if increment < 1 {
		return minute
	}
	return minute - minute%increment
}

// To24 converts a 12-hour clock hour to 0..23.
func To24(hour int, pm bool) int {
	switch {
	case !pm && hour == 12:
		return 0
	case pm && hour != 12:
		return hour + 12
	default:
		return hour
	}
}

// To12 converts 0..23 to a 12-hour clock hour and meridiem.
func To12(hour int) (int, bool) {
	pm := hour >= 12
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return h, pm
}

// TimeOptionsFor computes the time pickers of side while subject is shown.
func TimeOptionsFor(side calendar.Side, subject time.Time, sel Selection, c Constraints, tc TimeConfig) TimeOptions {
	floor := c.Floor(side, sel)
	ceiling := c.Ceiling(sel)
	blocked := func(latest, earliest time.Time) bool {
		return (!floor.IsZero() && latest.Before(floor)) || (!ceiling.IsZero() && earliest.After(ceiling))
	}

	hour, minute, second := subject.Clock()
	_, pm := To12(hour)
	opts := TimeOptions{Hour12: tc.Hour12, PM: pm}

	first, last := 0, 23
	if tc.Hour12 {
		first, last = 1, 12
	}
	for i := first; i <= last; i++ {
		h24 := i
		label := fmt.Sprintf("%02d", i)
		if tc.Hour12 {
			h24 = To24(i, pm)
			label = fmt.Sprintf("%d", i)
		}
		opts.Hours = append(opts.Hours, TimeOption{
			Value:    h24,
			Label:    label,
			Disabled: blocked(dateutil.SetClock(subject, h24, 59, 59), dateutil.SetClock(subject, h24, 0, 0)),
			Selected: h24 == hour,
		})
	}

	inc := tc.increment()
	for i := 0; i < 60; i += inc {
		opts.Minutes = append(opts.Minutes, TimeOption{
			Value:    i,
			Label:    fmt.Sprintf("%02d", i),
			Disabled: blocked(dateutil.SetClock(subject, hour, i, 59), dateutil.SetClock(subject, hour, i, 0)),
			Selected: minute >= i && minute < i+inc,
		})
	}

	if tc.Seconds {
		for i := 0; i < 60; i++ {
			at := dateutil.SetClock(subject, hour, minute, i)
			opts.Seconds = append(opts.Seconds, TimeOption{
				Value:    i,
				Label:    fmt.Sprintf("%02d", i),
				Disabled: blocked(at, at),
				Selected: i == second,
			})
		}
	}

	if tc.Hour12 {
		opts.AMDisabled = !floor.IsZero() && dateutil.SetClock(subject, 12, 0, 0).Before(floor)
		opts.PMDisabled = !ceiling.IsZero() && dateutil.SetClock(subject, 0, 0, 0).After(ceiling)
	}

	return opts
}
