package picker

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
)

func TestClassify_RangeFlags(t *testing.T) {
	c := Classifier{Locale: utcLocale(), Now: fixedNow(at(2024, 3, 12, 15, 0))}
	sel := Complete(day(2024, 3, 10), dateutil.EndOfDay(day(2024, 3, 14)))
	anchor := calendar.Anchor(day(2024, 3, 1))

	tests := []struct {
		name    string
		date    time.Time
		start   bool
		end     bool
		inRange bool
	}{
		{name: "before", date: day(2024, 3, 9)},
		{name: "start", date: day(2024, 3, 10), start: true},
		{name: "inside", date: day(2024, 3, 12), inRange: true},
		{name: "end", date: day(2024, 3, 14), end: true},
		{name: "after", date: day(2024, 3, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, err := c.Classify(tt.date, anchor, sel, calendar.Left)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cell.Start != tt.start || cell.End != tt.end || cell.InRange != tt.inRange {
				t.Errorf("flags start=%v end=%v inRange=%v, want %v %v %v",
					cell.Start, cell.End, cell.InRange, tt.start, tt.end, tt.inRange)
			}
			if cell.InRange && (cell.Start || cell.End) {
				t.Error("endpoint cells must not be flagged in-range")
			}
		})
	}
}

func TestClassify_CalendarFlags(t *testing.T) {
	c := Classifier{Locale: utcLocale(), Now: fixedNow(at(2024, 3, 12, 15, 0))}
	anchor := calendar.Anchor(day(2024, 3, 1))
	sel := Complete(day(2024, 3, 12), dateutil.EndOfDay(day(2024, 3, 12)))

	today, err := c.Classify(day(2024, 3, 12), anchor, sel, calendar.Left)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !today.Today || today.Weekend || today.OffMonth {
		t.Errorf("2024-03-12 flags = %+v", today)
	}

	sat, _ := c.Classify(day(2024, 3, 9), anchor, sel, calendar.Left)
	if !sat.Weekend {
		t.Error("2024-03-09 should be weekend")
	}

	off, _ := c.Classify(day(2024, 2, 26), anchor, sel, calendar.Left)
	if !off.OffMonth {
		t.Error("2024-02-26 should be off-month in March")
	}
	if off.Tags == nil {
		t.Error("tags should be an empty list, not nil")
	}
}

func TestClassify_MinDate(t *testing.T) {
	c := Classifier{
		Constraints: Constraints{MinDate: day(2024, 1, 10)},
		Locale:      utcLocale(),
		Now:         fixedNow(day(2024, 1, 1)),
	}
	anchor := calendar.Anchor(day(2024, 1, 1))
	sel := Complete(day(2024, 1, 10), dateutil.EndOfDay(day(2024, 1, 10)))

	before, _ := c.Classify(day(2024, 1, 9), anchor, sel, calendar.Left)
	if !before.Disabled || before.Available {
		t.Errorf("2024-01-09 should be disabled, got %+v", before)
	}
	on, _ := c.Classify(day(2024, 1, 10), anchor, sel, calendar.Left)
	if on.Disabled || !on.Available {
		t.Errorf("2024-01-10 should be available, got %+v", on)
	}
}

func TestClassify_MaxSpan(t *testing.T) {
	c := Classifier{
		Constraints: Constraints{MaxSpan: Span{Days: 7}},
		Locale:      utcLocale(),
		Now:         fixedNow(day(2024, 3, 1)),
	}
	anchor := calendar.Anchor(day(2024, 3, 1))
	sel := Picking(day(2024, 3, 10))

	last, _ := c.Classify(day(2024, 3, 17), anchor, sel, calendar.Right)
	if last.Disabled {
		t.Error("start + span should still be selectable")
	}
	over, _ := c.Classify(day(2024, 3, 18), anchor, sel, calendar.Right)
	if !over.Disabled {
		t.Error("one day past the span should be disabled")
	}

	done := Complete(day(2024, 3, 10), dateutil.EndOfDay(day(2024, 3, 12)))
	free, _ := c.Classify(day(2024, 3, 25), anchor, done, calendar.Left)
	if free.Disabled {
		t.Error("span only applies while the end is being picked")
	}
}

func TestClassify_RightSideFloor(t *testing.T) {
	c := Classifier{Locale: utcLocale(), Now: fixedNow(day(2024, 3, 1))}
	anchor := calendar.Anchor(day(2024, 3, 1))
	sel := Complete(at(2024, 3, 10, 14, 0), dateutil.EndOfDay(day(2024, 3, 14)))

	prev, _ := c.Classify(day(2024, 3, 9), anchor, sel, calendar.Right)
	if !prev.Disabled {
		t.Error("right calendar should disable days before the start")
	}
	same, _ := c.Classify(day(2024, 3, 10), anchor, sel, calendar.Right)
	if same.Disabled {
		t.Error("the start day itself stays selectable on the right")
	}
	left, _ := c.Classify(day(2024, 3, 9), anchor, sel, calendar.Left)
	if left.Disabled {
		t.Error("left calendar has no start floor")
	}
}

func TestClassify_Predicates(t *testing.T) {
	boom := errors.New("boom")
	c := Classifier{
		Constraints: Constraints{
			Invalid: InvalidDateFunc(func(d time.Time) (bool, error) {
				if d.Day() == 13 {
					return false, boom
				}
				return d.Day() == 11, nil
			}),
			Custom: TagCalendar{"2024-03-12": {"holiday", "payday"}},
		},
		Locale: utcLocale(),
		Now:    fixedNow(day(2024, 3, 1)),
	}
	anchor := calendar.Anchor(day(2024, 3, 1))
	sel := Complete(day(2024, 3, 1), dateutil.EndOfDay(day(2024, 3, 1)))

	invalid, err := c.Classify(day(2024, 3, 11), anchor, sel, calendar.Left)
	if err != nil || !invalid.Disabled {
		t.Errorf("predicate should disable 2024-03-11, got %+v, %v", invalid, err)
	}

	tagged, err := c.Classify(day(2024, 3, 12), anchor, sel, calendar.Left)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tagged.Tags) != 2 || tagged.Tags[0] != "holiday" {
		t.Errorf("tags = %v", tagged.Tags)
	}

	if _, err := c.Classify(day(2024, 3, 13), anchor, sel, calendar.Left); !errors.Is(err, boom) {
		t.Errorf("predicate error should propagate, got %v", err)
	}
}
