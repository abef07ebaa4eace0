package config

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/locale"
	"github.com/javiermolinar/rangepick/internal/picker"
)

// Zone resolves the configured time zone. Empty means local time.
func (c *Config) Zone() (*time.Location, error) {
	if c.Locale.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone: %w", err)
	}
	return loc, nil
}

// DisplayLocale builds the display locale from the [locale] section.
func (c *Config) DisplayLocale() (locale.Locale, error) {
	l := locale.English()

	zone, err := c.Zone()
	if err != nil {
		return locale.Locale{}, err
	}
	l.Location = zone

	first, err := locale.WeekdayFromIndex(c.Locale.FirstDay)
	if err != nil {
		return locale.Locale{}, err
	}
	l.FirstDay = first

	l.Format = c.Locale.Format
	if l.Format == "" {
		l.Format = c.defaultFormat()
	}
	if c.Locale.Separator != "" {
		l.Separator = c.Locale.Separator
	}
	if len(c.Locale.MonthNames) == 12 {
		copy(l.MonthNames[:], c.Locale.MonthNames)
	}
	if len(c.Locale.DayNames) == 7 {
		copy(l.DayNames[:], c.Locale.DayNames)
	}
	if c.Locale.Weekend != nil {
		l.Weekend = nil
		for _, name := range c.Locale.Weekend {
			if wd, ok := dateutil.ParseWeekday(name); ok {
				l.Weekend = append(l.Weekend, wd)
			}
		}
	}
	if c.Locale.ApplyLabel != "" {
		l.ApplyLabel = c.Locale.ApplyLabel
	}
	if c.Locale.CancelLabel != "" {
		l.CancelLabel = c.Locale.CancelLabel
	}
	if c.Locale.CustomRangeLabel != "" {
		l.CustomLabel = c.Locale.CustomRangeLabel
	}
	return l, nil
}

func (c *Config) defaultFormat() string {
	tp := c.TimePicker
	switch {
	case !tp.Enabled:
		return locale.DefaultDateFormat
	case tp.HourMode == 24 && tp.Seconds:
		return locale.Default24SecondFormat
	case tp.HourMode == 24:
		return locale.Default24TimeFormat
	case tp.Seconds:
		return locale.DefaultSecondsFormat
	default:
		return locale.DefaultTimeFormat
	}
}

// PickerOptions resolves the configuration against now into engine options.
func (c *Config) PickerOptions(now time.Time) (picker.Options, error) {
	loc, err := c.DisplayLocale()
	if err != nil {
		return picker.Options{}, err
	}
	now = now.In(loc.Zone())

	opts := picker.Options{
		Locale:          loc,
		Single:          c.Picker.SingleDate,
		Linked:          c.Picker.LinkedCalendars,
		AutoApply:       c.Picker.AutoApply,
		ShowCustomRange: c.Picker.ShowCustomRange,
		Time: picker.TimeConfig{
			Enabled:   c.TimePicker.Enabled,
			Increment: c.TimePicker.Increment,
			Seconds:   c.TimePicker.Seconds,
			Hour12:    c.TimePicker.HourMode != 24,
		},
		Now: func() time.Time { return time.Now().In(loc.Zone()) },
	}

	if opts.Start, err = c.boundary("start_date", c.Picker.StartDate, now, false); err != nil {
		return picker.Options{}, err
	}
	if opts.End, err = c.boundary("end_date", c.Picker.EndDate, now, true); err != nil {
		return picker.Options{}, err
	}

	cons := picker.Constraints{
		MinYear: c.Picker.MinYear,
		MaxYear: c.Picker.MaxYear,
	}
	if cons.MinYear == 0 {
		cons.MinYear = now.Year() - 100
	}
	if cons.MaxYear == 0 {
		cons.MaxYear = now.Year() + 100
	}
	if cons.MinDate, err = c.boundary("min_date", c.Picker.MinDate, now, false); err != nil {
		return picker.Options{}, err
	}
	if cons.MaxDate, err = c.boundary("max_date", c.Picker.MaxDate, now, true); err != nil {
		return picker.Options{}, err
	}
	if cons.MaxSpan, err = picker.ParseSpan(c.Picker.MaxSpan); err != nil {
		return picker.Options{}, fmt.Errorf("max_span: %w", err)
	}

	var filters picker.AnyInvalid
	if len(c.Picker.DisabledWeekdays) > 0 {
		var days picker.WeekdayFilter
		for _, name := range c.Picker.DisabledWeekdays {
			if wd, ok := dateutil.ParseWeekday(name); ok {
				days = append(days, wd)
			}
		}
		filters = append(filters, days)
	}
	if len(c.Picker.DisabledDates) > 0 {
		set := make(picker.DateSet, len(c.Picker.DisabledDates))
		for _, d := range c.Picker.DisabledDates {
			set[d] = true
		}
		filters = append(filters, set)
	}
	if len(filters) > 0 {
		cons.Invalid = filters
	}

	if len(c.CustomDates) > 0 {
		tags := make(picker.TagCalendar, len(c.CustomDates))
		for _, cd := range c.CustomDates {
			tags[cd.Date] = append(tags[cd.Date], cd.Tags...)
		}
		cons.Custom = tags
	}
	opts.Constraints = cons

	for _, r := range c.Ranges {
		start, err := c.boundary("ranges.start", r.Start, now, false)
		if err != nil {
			return picker.Options{}, err
		}
		end, err := c.boundary("ranges.end", r.End, now, true)
		if err != nil {
			return picker.Options{}, err
		}
		opts.Presets = append(opts.Presets, picker.Preset{Label: r.Label, Start: start, End: end})
	}

	return opts, nil
}

// boundary resolves a date expression. Date-only upper bounds cover the whole day.
// An empty expression yields the zero time.
func (c *Config) boundary(field, expr string, now time.Time, upper bool) (time.Time, error) {
	if expr == "" {
		return time.Time{}, nil
	}
	t, err := parseDateExpr(expr, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	if upper && !hasClock(expr) {
		t = dateutil.EndOfDay(t)
	}
	return t, nil
}
