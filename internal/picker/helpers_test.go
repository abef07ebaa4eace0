package picker

import (
	"time"

	"github.com/javiermolinar/rangepick/internal/locale"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func utcLocale() locale.Locale {
	l := locale.English()
	l.Location = time.UTC
	return l
}
