package picker

import (
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// Month is one rendered calendar.
type Month struct {
	Side    calendar.Side
	Anchor  time.Time
	Title   string
	Cells   [calendar.Rows][calendar.Cols]Cell
	CanPrev bool
	CanNext bool
}

// Cell returns the classified cell on date's day, if the grid shows it.
func (m Month) Cell(date time.Time) (Cell, bool) {
	for r := range m.Cells {
		for c := range m.Cells[r] {
			if dateutil.SameDay(m.Cells[r][c].Date, date) {
				return m.Cells[r][c], true
			}
		}
	}
	return Cell{}, false
}

// Snapshot is everything the presentation layer needs to draw the picker.
type Snapshot struct {
	Left            Month
	Right           Month
	LeftTime        *TimeOptions // nil without a time picker
	RightTime       *TimeOptions
	RightTimeLocked bool // end not chosen yet
	Selection       Selection
	Label           string
	HasLabel        bool
	ApplyEnabled    bool
	Text            string
	Single          bool
	Open            bool
}
