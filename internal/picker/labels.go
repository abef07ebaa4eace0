package picker

import (
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// Preset is a named range shortcut.
type Preset struct {
	Label string
	Start time.Time
	End   time.Time
}

// MatchLabel returns the label of the first preset whose days equal the
// selection's. Without a match it falls back to customLabel when showCustom
// is set. The custom label itself never matches as a preset.
func MatchLabel(sel Selection, presets []Preset, customLabel string, showCustom bool) (string, bool) {
	if end, ok := sel.End(); ok {
		for _, p := range presets {
			if p.Label == customLabel {
				continue
			}
			if dateutil.SameDay(p.Start, sel.Start) && dateutil.SameDay(p.End, end) {
				return p.Label, true
			}
		}
	}
	if showCustom {
		return customLabel, true
	}
	return "", false
}

// NormalizePresets clamps presets into the min/max window and drops the
// ones left with nothing selectable. Without a time picker the endpoints
// are widened to whole days.
func NormalizePresets(presets []Preset, c Constraints, timeEnabled bool) []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		if p.Label == "" {
			continue
		}
		start, end := p.Start, p.End
		if end.Before(start) {
			start, end = end, start
		}
		if !timeEnabled {
			start, end = dateutil.StartOfDay(start), dateutil.EndOfDay(end)
		}
		if !c.MinDate.IsZero() && start.Before(c.MinDate) {
			start = c.MinDate
		}
		if !c.MaxDate.IsZero() && end.After(c.MaxDate) {
			end = c.MaxDate
		}
		if !c.MinDate.IsZero() && dateutil.BeforeDay(end, c.MinDate) {
			continue
		}
		if !c.MaxDate.IsZero() && dateutil.AfterDay(start, c.MaxDate) {
			continue
		}
		out = append(out, Preset{Label: p.Label, Start: start, End: end})
	}
	return out
}
