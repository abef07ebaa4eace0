package picker

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/locale"
)

func TestFormatParseRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		loc    locale.Locale
		start  time.Time
		end    time.Time
		single bool
	}{
		{name: "dates", loc: utcLocale(), start: day(2024, 3, 10), end: day(2024, 3, 14)},
		{name: "single", loc: utcLocale(), start: day(2024, 3, 10), end: day(2024, 3, 10), single: true},
		{name: "times", loc: utcLocale().WithFormat(locale.DefaultTimeFormat), start: at(2024, 3, 10, 9, 30), end: at(2024, 3, 14, 17, 45)},
		{name: "iso", loc: utcLocale().WithFormat("2006-01-02"), start: day(2023, 12, 30), end: day(2024, 1, 2)},
		{name: "separator_inside_date", loc: withSeparator(utcLocale().WithFormat("2006-01-02"), "-"), start: day(2024, 3, 10), end: day(2024, 3, 14)},
		{name: "space_separator_with_clock", loc: withSeparator(utcLocale().WithFormat("01/02/2006 15:04"), " "), start: at(2024, 3, 10, 9, 30), end: at(2024, 3, 14, 17, 45)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := FormatRange(tt.start, tt.end, tt.loc, tt.single)
			start, end, err := ParseRange(text, tt.loc, tt.single)
			if err != nil {
				t.Fatalf("ParseRange(%q) unexpected error: %v", text, err)
			}
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("round trip of %q = %v, %v", text, start, end)
			}
		})
	}
}

func withSeparator(loc locale.Locale, sep string) locale.Locale {
	loc.Separator = sep
	return loc
}

func TestParseRange_SeparatorInsideDate(t *testing.T) {
	loc := withSeparator(utcLocale().WithFormat("2006-01-02"), "-")
	if got := FormatRange(day(2024, 3, 10), day(2024, 3, 14), loc, false); got != "2024-03-10-2024-03-14" {
		t.Fatalf("FormatRange() = %q", got)
	}
	for _, in := range []string{"2024-03-10-2024-03", "2024-03-10", "2024-03-10-2024-03-14-2024"} {
		if _, _, err := ParseRange(in, loc, false); !errors.Is(err, ErrTextMismatch) {
			t.Errorf("ParseRange(%q) error = %v, want ErrTextMismatch", in, err)
		}
	}
}

func TestFormatRange(t *testing.T) {
	got := FormatRange(day(2024, 3, 10), dateutil.EndOfDay(day(2024, 3, 14)), utcLocale(), false)
	if want := "03/10/2024 - 03/14/2024"; got != want {
		t.Errorf("FormatRange() = %q, want %q", got, want)
	}
}

func TestParseRange_Mismatch(t *testing.T) {
	inputs := []string{
		"",
		"03/10/2024",
		"03/10/2024 - ",
		"garbage - 03/14/2024",
		"03/10/2024 - 03/14/2024 - 03/15/2024",
		"2024-03-10 - 2024-03-14",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, _, err := ParseRange(in, utcLocale(), false); !errors.Is(err, ErrTextMismatch) {
				t.Errorf("ParseRange(%q) error = %v, want ErrTextMismatch", in, err)
			}
		})
	}
}
