package picker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/rangepick/internal/locale"
)

// ErrTextMismatch is returned when range text does not match the locale layout.
var ErrTextMismatch = errors.New("text does not match the expected date format")

// FormatRange renders start and end with the locale layout and separator.
func FormatRange(start, end time.Time, loc locale.Locale, single bool) string {
	if single {
		return start.Format(loc.Format)
	}
	return start.Format(loc.Format) + loc.Separator + end.Format(loc.Format)
}

// ParseRange parses text produced by FormatRange. Partial or malformed input
// yields ErrTextMismatch. In single mode end equals start.
func ParseRange(raw string, loc locale.Locale, single bool) (start, end time.Time, err error) {
	if single {
		start, err = parseEndpoint(raw, loc)
		return start, start, err
	}

	mismatch := fmt.Errorf("%w: want %q%s%q", ErrTextMismatch, loc.Format, loc.Separator, loc.Format)
	if loc.Separator == "" {
		return time.Time{}, time.Time{}, mismatch
	}
	// The separator may also occur inside a formatted date, so try every split.
	for off := 0; ; {
		i := strings.Index(raw[off:], loc.Separator)
		if i < 0 {
			return time.Time{}, time.Time{}, mismatch
		}
		cut := off + i
		start, errS := parseEndpoint(raw[:cut], loc)
		end, errE := parseEndpoint(raw[cut+len(loc.Separator):], loc)
		if errS == nil && errE == nil {
			return start, end, nil
		}
		off = cut + 1
	}
}

func parseEndpoint(s string, loc locale.Locale) (time.Time, error) {
	t, err := time.ParseInLocation(loc.Format, s, loc.Zone())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTextMismatch, s)
	}
	return t, nil
}
