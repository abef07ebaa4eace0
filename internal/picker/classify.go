package picker

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/locale"
)

// Cell is one classified grid date.
type Cell struct {
	Date      time.Time
	Today     bool
	Weekend   bool
	OffMonth  bool
	Disabled  bool
	Available bool
	Start     bool
	End       bool
	InRange   bool
	Preview   bool // prospective in-range while hovering an end candidate
	Tags      []string
}

// Classifier evaluates grid cells against a selection and constraints.
type Classifier struct {
	Constraints Constraints
	Locale      locale.Locale
	Now         func() time.Time
}

func (c Classifier) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Classify computes the flags of cell as displayed on side for anchor's month.
// Predicate errors are returned, never swallowed.
func (c Classifier) Classify(cell, anchor time.Time, sel Selection, side calendar.Side) (Cell, error) {
	out := Cell{
		Date:     cell,
		Today:    dateutil.SameDay(cell, c.now().In(cell.Location())),
		Weekend:  c.Locale.IsWeekend(cell.Weekday()),
		OffMonth: !dateutil.SameMonth(cell, anchor),
		Start:    dateutil.SameDay(cell, sel.Start),
	}

	if floor := c.Constraints.dayFloor(side, sel); !floor.IsZero() && dateutil.BeforeDay(cell, floor) {
		out.Disabled = true
	}
	if ceiling := c.Constraints.Ceiling(sel); !ceiling.IsZero() && dateutil.AfterDay(cell, ceiling) {
		out.Disabled = true
	}
	invalid, err := c.Constraints.invalid().IsInvalidDate(cell)
	if err != nil {
		return Cell{}, fmt.Errorf("checking %s: %w", cell.Format("2006-01-02"), err)
	}
	if invalid {
		out.Disabled = true
	}
	out.Available = !out.Disabled

	if end, ok := sel.End(); ok {
		out.End = dateutil.SameDay(cell, end)
		out.InRange = InRange(cell, sel.Start, end)
	}

	tags, err := c.Constraints.custom().CustomTags(cell)
	if err != nil {
		return Cell{}, fmt.Errorf("tagging %s: %w", cell.Format("2006-01-02"), err)
	}
	if tags == nil {
		tags = []string{}
	}
	out.Tags = tags

	return out, nil
}

// InRange reports whether cell lies strictly between the days of start and end.
// Boundary days are flagged as start/end instead.
func InRange(cell, start, end time.Time) bool {
	return cell.After(dateutil.EndOfDay(start)) && cell.Before(dateutil.StartOfDay(end))
}
