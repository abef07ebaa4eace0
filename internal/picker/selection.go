// Package picker implements the date range selection engine: constraint
// evaluation, time option computation, preset matching and the state machine
// that ties them to a pair of month calendars.
package picker

import "time"

// Phase is the state of a selection.
type Phase int

const (
	// PhaseComplete has both endpoints; the next click starts a new range.
	PhaseComplete Phase = iota
	// PhasePickingEnd has a start and waits for the end.
	PhasePickingEnd
)

func (p Phase) String() string {
	if p == PhasePickingEnd {
		return "picking-end"
	}
	return "complete"
}

// Selection is either a complete range or an open one waiting for its end.
type Selection struct {
	Start time.Time
	end   time.Time
	phase Phase
}

// Complete returns a finished range. An inverted pair is swapped.
func Complete(start, end time.Time) Selection {
	if end.Before(start) {
		start, end = end, start
	}
	return Selection{Start: start, end: end, phase: PhaseComplete}
}

// Picking returns an open selection anchored at start.
func Picking(start time.Time) Selection {
	return Selection{Start: start, phase: PhasePickingEnd}
}

// Phase returns the selection state.
func (s Selection) Phase() Phase {
	return s.phase
}

// IsOpen reports whether the end has not been chosen yet.
func (s Selection) IsOpen() bool {
	return s.phase == PhasePickingEnd
}

// End returns the end and true for a complete selection.
func (s Selection) End() (time.Time, bool) {
	if s.phase != PhaseComplete {
		return time.Time{}, false
	}
	return s.end, true
}

// Committable reports whether the selection can be applied.
func (s Selection) Committable() bool {
	end, ok := s.End()
	return ok && !s.Start.After(end)
}
