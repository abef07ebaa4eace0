package calendar

import (
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// Side identifies one of the two calendars.
type Side int

const (
	Left  Side = iota // primary, shows the start
	Right             // secondary, shows the end
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

// WindowConfig controls how the two months move together.
type WindowConfig struct {
	Linked  bool
	Single  bool
	MinDate time.Time // zero means unbounded
	MaxDate time.Time // zero means unbounded
	MinYear int       // zero means unbounded
	MaxYear int       // zero means unbounded
}

// MonthWindow owns the left and right month anchors.
// In linked mode right is always exactly one month after left.
type MonthWindow struct {
	anchors [2]time.Time // [0]=left, [1]=right
	cfg     WindowConfig
}

// NewMonthWindow creates a window showing the month of start and the next one.
func NewMonthWindow(cfg WindowConfig, start time.Time) *MonthWindow {
	w := &MonthWindow{cfg: cfg}
	w.reset(start)
	return w
}

// Config returns the window settings.
func (w *MonthWindow) Config() WindowConfig {
	return w.cfg
}

// Left returns the primary anchor.
func (w *MonthWindow) Left() time.Time {
	return w.anchors[Left]
}

// Right returns the secondary anchor.
func (w *MonthWindow) Right() time.Time {
	return w.anchors[Right]
}

// Anchor returns the anchor of side.
func (w *MonthWindow) Anchor(side Side) time.Time {
	return w.anchors[side]
}

// Visible reports whether t's month is shown on either side.
func (w *MonthWindow) Visible(t time.Time) bool {
	return dateutil.SameMonth(t, w.anchors[Left]) || dateutil.SameMonth(t, w.anchors[Right])
}

// Follow repositions the window after the selection changed.
// Months already in view are left alone so a click never makes the grid jump.
func (w *MonthWindow) Follow(start, end time.Time, complete bool) {
	if complete {
		if !w.cfg.Single && w.Visible(start) && w.Visible(end) {
			return
		}
		w.anchors[Left] = Anchor(start)
		if !w.cfg.Linked && !dateutil.SameMonth(start, end) {
			w.anchors[Right] = Anchor(end)
		} else {
			w.anchors[Right] = AddMonths(w.anchors[Left], 1)
		}
	} else if !w.Visible(start) {
		w.reset(start)
		return
	}
	w.clampToMax()
}

// Prev moves side one month back.
func (w *MonthWindow) Prev(side Side) {
	w.shift(side, -1)
}

// Next moves side one month forward.
func (w *MonthWindow) Next(side Side) {
	w.shift(side, 1)
}

func (w *MonthWindow) shift(side Side, delta int) {
	w.anchors[side] = AddMonths(w.anchors[side], delta)
	if w.cfg.Linked {
		other := side.Other()
		w.anchors[other] = AddMonths(w.anchors[other], delta)
	}
	w.clampToMax()
}

// Jump points side at (month, year) as chosen from a dropdown.
// The target is clamped to the year bounds, the min/max months and, on the
// right side, to floor's month (the current selection start).
func (w *MonthWindow) Jump(side Side, month time.Month, year int, floor time.Time) {
	if month < time.January {
		month = time.January
	}
	if month > time.December {
		month = time.December
	}
	if w.cfg.MinYear != 0 && year < w.cfg.MinYear {
		year = w.cfg.MinYear
	}
	if w.cfg.MaxYear != 0 && year > w.cfg.MaxYear {
		year = w.cfg.MaxYear
	}

	idx := year*12 + int(month) - 1
	if side == Right && !floor.IsZero() && idx < dateutil.MonthIndex(floor) {
		idx = dateutil.MonthIndex(floor)
	}
	if !w.cfg.MinDate.IsZero() && idx < dateutil.MonthIndex(w.cfg.MinDate) {
		idx = dateutil.MonthIndex(w.cfg.MinDate)
	}
	if !w.cfg.MaxDate.IsZero() && idx > dateutil.MonthIndex(w.cfg.MaxDate) {
		idx = dateutil.MonthIndex(w.cfg.MaxDate)
	}

	cur := w.anchors[side]
	hour, minute, second := cur.Clock()
	w.anchors[side] = time.Date(idx/12, time.Month(idx%12+1), 2, hour, minute, second, 0, cur.Location())

	if w.cfg.Linked {
		if side == Left {
			w.anchors[Right] = AddMonths(w.anchors[Left], 1)
		} else {
			w.anchors[Left] = AddMonths(w.anchors[Right], -1)
		}
	} else if side == Left && !w.cfg.Single &&
		dateutil.MonthIndex(w.anchors[Left]) >= dateutil.MonthIndex(w.anchors[Right]) {
		// Unlinked calendars may drift apart but never cross.
		w.anchors[Right] = AddMonths(w.anchors[Left], 1)
	}
	w.clampToMax()
}

// CanPrev reports whether the back arrow should be offered on side.
func (w *MonthWindow) CanPrev(side Side) bool {
	if w.cfg.Linked && side == Right {
		return false
	}
	if !w.cfg.MinDate.IsZero() && dateutil.MonthIndex(w.anchors[side]) <= dateutil.MonthIndex(w.cfg.MinDate) {
		return false
	}
	return true
}

// CanNext reports whether the forward arrow should be offered on side.
func (w *MonthWindow) CanNext(side Side) bool {
	if w.cfg.Linked && side == Left && !w.cfg.Single {
		return false
	}
	if !w.cfg.MaxDate.IsZero() && dateutil.MonthIndex(w.anchors[side]) >= dateutil.MonthIndex(w.cfg.MaxDate) {
		return false
	}
	return true
}

// Distance returns the month distance from left to right.
func (w *MonthWindow) Distance() int {
	return dateutil.MonthIndex(w.anchors[Right]) - dateutil.MonthIndex(w.anchors[Left])
}

func (w *MonthWindow) reset(start time.Time) {
	w.anchors[Left] = Anchor(start)
	w.anchors[Right] = AddMonths(w.anchors[Left], 1)
	w.clampToMax()
}

// clampToMax keeps the right month from running past MaxDate.
func (w *MonthWindow) clampToMax() {
	if !w.cfg.Linked || w.cfg.Single || w.cfg.MaxDate.IsZero() {
		return
	}
	if dateutil.MonthIndex(w.anchors[Right]) > dateutil.MonthIndex(w.cfg.MaxDate) {
		w.anchors[Right] = Anchor(w.cfg.MaxDate)
		w.anchors[Left] = AddMonths(w.anchors[Right], -1)
	}
}
