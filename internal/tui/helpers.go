package tui

import (
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/picker"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// Layout constants
const (
	footerCompact = 2

	footerBaseLines       = 2 // Status(1) + Help(1)
	promptBorderLines     = 2
	promptMinContentLines = 1

	footerMinHeight     = footerBaseLines + promptBorderLines + promptMinContentLines
	footerFullMinHeight = 20

	headerLines   = 1
	monthBoxWidth = view.MonthWidth + 2 // plus the box border
	columnGap     = 1

	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// monthOf returns the snapshot month on side.
func monthOf(snap picker.Snapshot, side calendar.Side) picker.Month {
	if side == calendar.Right {
		return snap.Right
	}
	return snap.Left
}

// visibleSide reports which calendar shows t's month. Single mode only shows the left one.
func (m Model) visibleSide(t time.Time) (calendar.Side, bool) {
	snap := m.engine.Snapshot()
	if dateutil.SameMonth(t, snap.Left.Anchor) {
		return calendar.Left, true
	}
	if !snap.Single && dateutil.SameMonth(t, snap.Right.Anchor) {
		return calendar.Right, true
	}
	return calendar.Left, false
}

// dayInMonth returns day of anchor's month, clamped to the month length.
func dayInMonth(anchor time.Time, day int) time.Time {
	last := dateutil.DaysInMonth(anchor.Year(), anchor.Month())
	return time.Date(anchor.Year(), anchor.Month(), min(day, last), 0, 0, 0, 0, anchor.Location())
}

// presetLabels lists the preset labels followed by the custom label when shown.
func (m Model) presetLabels() []string {
	presets := m.engine.Presets()
	labels := make([]string, 0, len(presets)+1)
	for _, p := range presets {
		labels = append(labels, p.Label)
	}
	if m.engine.Options().ShowCustomRange {
		labels = append(labels, m.engine.Locale().CustomLabel)
	}
	return labels
}

// navSide picks the calendar whose arrow moves the view in the given direction.
// Linked calendars only offer the back arrow on the left and forward on the right.
func (m Model) navSide(forward bool) calendar.Side {
	opts := m.engine.Options()
	if opts.Single {
		return calendar.Left
	}
	if opts.Linked {
		if forward {
			return calendar.Right
		}
		return calendar.Left
	}
	return m.focus
}
