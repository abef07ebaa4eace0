package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseRelativeDate(t *testing.T) {
	// Wednesday
	ref := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Today", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)},
		{"today-7d", time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)},
		{"today+2w", time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)},
		{"start-of-month", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"end-of-month", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"start-of-prev-month", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"end-of-prev-month", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"start-of-month-1m", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"start-of-week", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"today+1y", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseRelativeDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRelativeDate_Invalid(t *testing.T) {
	ref := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"someday", "today-d", "today+7", "next-lunch", "2025-13-01"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseRelativeDate(input, ref); !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
			}
		})
	}
}

func TestDayComparisons(t *testing.T) {
	morning := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, evening) {
		t.Error("expected same day")
	}
	if BeforeDay(morning, evening) || AfterDay(evening, morning) {
		t.Error("same-day instants must not order by day")
	}
	if !BeforeDay(evening, nextDay) {
		t.Error("expected evening before next day")
	}
	if !AfterDay(nextDay, morning) {
		t.Error("expected next day after morning")
	}
}

func TestStartEndOfDay(t *testing.T) {
	ts := time.Date(2024, 2, 29, 13, 45, 12, 500, time.UTC)
	if got := StartOfDay(ts); !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
	end := EndOfDay(ts)
	if end.Day() != 29 || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v", end)
	}
	if !end.Add(time.Nanosecond).Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndOfDay + 1ns = %v, want March 1", end.Add(time.Nanosecond))
	}
}

func TestWithClock(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := time.Date(1999, 12, 31, 17, 30, 45, 0, time.UTC)
	got := WithClock(day, clock)
	want := time.Date(2024, 3, 1, 17, 30, 45, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("WithClock = %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.December, 31},
		{2024, time.April, 30},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		input      time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "Monday input returns same Monday",
			input:      time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Sunday returns previous Monday",
			input:      time.Date(2025, 1, 12, 23, 59, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.input)
			if !monday.Equal(tt.wantMonday) {
				t.Errorf("monday = %v, want %v", monday, tt.wantMonday)
			}
			if !sunday.Equal(tt.wantSunday) {
				t.Errorf("sunday = %v, want %v", sunday, tt.wantSunday)
			}
		})
	}
}
