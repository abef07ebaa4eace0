// Package dateutil provides date parsing and day-granularity arithmetic.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a case-insensitive weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayMap[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfDay is an alias of TruncateToDay kept for symmetry with EndOfDay.
func StartOfDay(t time.Time) time.Time {
	return TruncateToDay(t)
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// AddDays adds n calendar days, keeping the wall clock across DST changes.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// WithClock returns t's date carrying clock's hour, minute and second.
func WithClock(t, clock time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, t.Location())
}

// SetClock returns t's date at the given wall clock time.
func SetClock(t time.Time, hour, minute, second int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, second, 0, t.Location())
}

// dayKey orders dates by calendar day, ignoring the time of day.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return dayKey(a) == dayKey(b)
}

// BeforeDay reports whether a's day is strictly before b's day.
func BeforeDay(a, b time.Time) bool {
	return dayKey(a) < dayKey(b)
}

// AfterDay reports whether a's day is strictly after b's day.
func AfterDay(a, b time.Time) bool {
	return dayKey(a) > dayKey(b)
}

// SameMonth reports whether a and b share year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthIndex returns a monotonic month counter, useful for month distances.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo date
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "yesterday", "tomorrow"
//   - Month/week anchors: "start-of-month", "end-of-month", "start-of-week",
//     "start-of-prev-month", "end-of-prev-month"
//   - Offsets: "today-7d", "today+2w", "start-of-month-1m"
//
// All inputs are case-insensitive and resolved at midnight in relativeTo's location.
// Returns ErrInvalidDateFormat for unrecognized input.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	if result, err := time.ParseInLocation("2006-01-02", input, relativeTo.Location()); err == nil {
		return result, nil
	}

	base, rest := splitOffset(input)
	var anchor time.Time
	switch base {
	case "", "today":
		anchor = today
	case "yesterday":
		anchor = today.AddDate(0, 0, -1)
	case "tomorrow":
		anchor = today.AddDate(0, 0, 1)
	case "start-of-month":
		anchor = today.AddDate(0, 0, 1-today.Day())
	case "end-of-month":
		anchor = today.AddDate(0, 1, -today.Day())
	case "start-of-prev-month":
		anchor = today.AddDate(0, -1, 1-today.Day())
	case "end-of-prev-month":
		anchor = today.AddDate(0, 0, -today.Day())
	case "start-of-week":
		anchor, _ = WeekRange(today)
	default:
		return time.Time{}, ErrInvalidDateFormat
	}

	if rest == "" {
		return anchor, nil
	}
	return applyOffset(anchor, rest)
}

// splitOffset separates "today-7d" into ("today", "-7d").
func splitOffset(input string) (base, offset string) {
	for i := len(input) - 1; i > 0; i-- {
		c := input[i]
		if c == '+' || c == '-' {
			if _, err := strconv.Atoi(strings.TrimRight(input[i+1:], "dwmy")); err == nil && len(input[i+1:]) > 1 {
				return input[:i], input[i:]
			}
			break
		}
	}
	return input, ""
}

// applyOffset applies "+3d", "-1w", "-2m" or "+1y" to t.
func applyOffset(t time.Time, offset string) (time.Time, error) {
	unit := offset[len(offset)-1]
	n, err := strconv.Atoi(offset[:len(offset)-1])
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	switch unit {
	case 'd':
		return t.AddDate(0, 0, n), nil
	case 'w':
		return t.AddDate(0, 0, 7*n), nil
	case 'm':
		return t.AddDate(0, n, 0), nil
	case 'y':
		return t.AddDate(n, 0, 0), nil
	}
	return time.Time{}, ErrInvalidDateFormat
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}
