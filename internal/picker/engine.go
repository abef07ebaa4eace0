package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/locale"
)

// ErrUnknownPreset is returned when a preset label is not configured.
var ErrUnknownPreset = errors.New("unknown preset range")

// Options configures an Engine.
type Options struct {
	Start           time.Time // initial committed start, zero means today
	End             time.Time // initial committed end, zero means end of start's day
	Constraints     Constraints
	Time            TimeConfig
	Locale          locale.Locale
	Single          bool
	Linked          bool
	AutoApply       bool
	ShowCustomRange bool
	Presets         []Preset
	Now             func() time.Time
}

// Engine is the range selection state machine. It owns the selection and
// the visible months; everything else it calls is pure.
// Commands run to completion one at a time and are not safe for concurrent use.
type Engine struct {
	opts     Options
	classify Classifier
	presets  []Preset
	window   *calendar.MonthWindow
	listener Listener

	sel            Selection
	committedStart time.Time
	committedEnd   time.Time
	rightClock     time.Time // last end, keeps the right time fields stable while picking
	hover          time.Time
	hovering       bool
	open           bool

	snapshot Snapshot
	err      error // first predicate failure
}

// New creates an engine with the committed range from opts.
// Predicate errors from the first classification pass are returned.
func New(opts Options, l Listener) (*Engine, error) {
	if l == nil {
		l = discard{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	e := &Engine{
		opts:     opts,
		classify: Classifier{Constraints: opts.Constraints, Locale: opts.Locale, Now: opts.Now},
		presets:  NormalizePresets(opts.Presets, opts.Constraints, opts.Time.Enabled),
		listener: l,
	}

	start, end := opts.Start, opts.End
	if start.IsZero() {
		start = dateutil.StartOfDay(opts.Now().In(opts.Locale.Zone()))
	}
	if end.IsZero() {
		end = dateutil.EndOfDay(start)
	}
	e.sel = e.rangeOf(start, end)
	e.commitSelection()

	e.window = calendar.NewMonthWindow(calendar.WindowConfig{
		Linked:  opts.Linked,
		Single:  opts.Single,
		MinDate: opts.Constraints.MinDate,
		MaxDate: opts.Constraints.MaxDate,
		MinYear: opts.Constraints.MinYear,
		MaxYear: opts.Constraints.MaxYear,
	}, e.sel.Start)

	snap, err := e.buildSnapshot()
	if err != nil {
		return nil, err
	}
	e.snapshot = snap
	return e, nil
}

// Selection returns the in-progress selection.
func (e *Engine) Selection() Selection {
	return e.sel
}

// Committed returns the last applied range.
func (e *Engine) Committed() (start, end time.Time) {
	return e.committedStart, e.committedEnd
}

// IsOpen reports whether the picker is shown.
func (e *Engine) IsOpen() bool {
	return e.open
}

// Snapshot returns the latest render snapshot.
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot
}

// Presets returns the normalized preset list.
func (e *Engine) Presets() []Preset {
	return e.presets
}

// Locale returns the locale the engine renders with.
func (e *Engine) Locale() locale.Locale {
	return e.opts.Locale
}

// Options returns the engine configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// Err returns the first predicate error seen while rendering, if any.
func (e *Engine) Err() error {
	return e.err
}

// Open shows the picker starting from the committed range.
func (e *Engine) Open() error {
	if e.open {
		return nil
	}
	e.open = true
	e.restoreCommitted()
	e.listener.Notify(OpenedEvent{})
	return e.refresh()
}

// Close hides the picker without applying; edits are discarded.
func (e *Engine) Close() error {
	if !e.open {
		return nil
	}
	e.open = false
	e.restoreCommitted()
	if err := e.refresh(); err != nil {
		return err
	}
	e.listener.Notify(ClosedEvent{})
	return nil
}

// Toggle opens a closed picker and closes an open one.
func (e *Engine) Toggle() error {
	if e.open {
		return e.Close()
	}
	return e.Open()
}

// Choose handles a click on a date cell of the left calendar.
func (e *Engine) Choose(date time.Time) error {
	return e.ChooseOn(calendar.Left, date)
}

// ChooseOn handles a click on a date cell of the given calendar. A cell the
// snapshot shows as disabled on that side is ignored.
func (e *Engine) ChooseOn(side calendar.Side, date time.Time) error {
	if e.opts.Single {
		target := e.mergeClock(date, calendar.Left)
		if blocked, err := e.blocked(target, calendar.Left); err != nil || blocked {
			return err
		}
		start := e.normalizeStart(target)
		e.sel = Complete(start, e.singleEnd(start))
		e.rightClock, _ = e.sel.End()
		e.window.Follow(start, start, true)
		if err := e.refresh(); err != nil {
			return err
		}
		if e.opts.AutoApply && !e.opts.Time.Enabled {
			return e.Apply()
		}
		return nil
	}

	if !e.sel.IsOpen() || dateutil.BeforeDay(date, e.sel.Start) {
		target := e.mergeClock(date, calendar.Left)
		if side == calendar.Right {
			if blocked, err := e.blocked(target, calendar.Right); err != nil || blocked {
				return err
			}
		}
		if blocked, err := e.blocked(target, calendar.Left); err != nil || blocked {
			return err
		}
		e.sel = Picking(e.normalizeStart(target))
		e.window.Follow(e.sel.Start, time.Time{}, false)
		return e.refresh()
	}

	target := e.mergeClock(date, calendar.Right)
	if blocked, err := e.blocked(target, calendar.Right); err != nil || blocked {
		return err
	}
	if target.Before(e.sel.Start) {
		// Same day, earlier clock than the start.
		target = e.sel.Start
	}
	end := e.normalizeEnd(e.sel.Start, target)
	e.sel = Complete(e.sel.Start, end)
	e.rightClock = end
	e.hovering = false
	e.window.Follow(e.sel.Start, end, true)
	if err := e.refresh(); err != nil {
		return err
	}
	if e.opts.AutoApply {
		return e.Apply()
	}
	return nil
}

// Hover previews the range that choosing date would produce.
// It only has an effect while the end is being picked.
func (e *Engine) Hover(date time.Time) error {
	if !e.sel.IsOpen() {
		return nil
	}
	e.hover = date
	e.hovering = true
	return e.refresh()
}

// ClearHover removes the hover preview.
func (e *Engine) ClearHover() error {
	if !e.hovering {
		return nil
	}
	e.hovering = false
	return e.refresh()
}

// Prev shows the previous month on side.
func (e *Engine) Prev(side calendar.Side) error {
	e.window.Prev(side)
	return e.refresh()
}

// Next shows the next month on side.
func (e *Engine) Next(side calendar.Side) error {
	e.window.Next(side)
	return e.refresh()
}

// JumpMonth handles the month/year dropdowns of side.
func (e *Engine) JumpMonth(side calendar.Side, month time.Month, year int) error {
	var floor time.Time
	if side == calendar.Right {
		floor = e.sel.Start
	}
	e.window.Jump(side, month, year, floor)
	return e.refresh()
}

// SetTime applies the time fields of side. The left side edits the start,
// the right side edits the end once it exists.
func (e *Engine) SetTime(side calendar.Side, tv TimeValue) error {
	if !e.opts.Time.Enabled {
		return nil
	}
	hour := tv.Hour
	if e.opts.Time.Hour12 {
		hour = To24(clamp(tv.Hour, 1, 12), tv.PM)
	}
	hour = clamp(hour, 0, 23)
	minute := FloorMinute(clamp(tv.Minute, 0, 59), e.opts.Time.increment())
	second := 0
	if e.opts.Time.Seconds {
		second = clamp(tv.Second, 0, 59)
	}

	end, complete := e.sel.End()
	if side == calendar.Left {
		start := e.normalizeStart(dateutil.SetClock(e.sel.Start, hour, minute, second))
		switch {
		case e.opts.Single:
			e.sel = Complete(start, e.singleEnd(start))
		case !complete:
			e.sel = Picking(start)
		default:
			if dateutil.SameDay(end, start) && end.Before(start) {
				end = start
			}
			e.sel = Complete(start, end)
		}
		return e.refresh()
	}

	if !complete || e.opts.Single {
		return nil
	}
	end = e.normalizeEnd(e.sel.Start, dateutil.SetClock(end, hour, minute, second))
	if end.Before(e.sel.Start) {
		end = e.sel.Start
	}
	e.sel = Complete(e.sel.Start, end)
	e.rightClock = end
	return e.refresh()
}

// ChoosePreset selects and applies a preset. The custom label only
// refreshes the view so the calendars can be used.
func (e *Engine) ChoosePreset(label string) error {
	if label == e.opts.Locale.CustomLabel {
		return e.refresh()
	}
	for _, p := range e.presets {
		if p.Label != label {
			continue
		}
		e.sel = e.rangeOf(p.Start, p.End)
		end, _ := e.sel.End()
		e.rightClock = end
		e.hovering = false
		e.window.Follow(e.sel.Start, end, true)
		if err := e.refresh(); err != nil {
			return err
		}
		return e.Apply()
	}
	return fmt.Errorf("%w: %q", ErrUnknownPreset, label)
}

// Apply commits the selection and hides the picker.
// It does nothing while the selection is not committable.
func (e *Engine) Apply() error {
	if !e.sel.Committable() {
		return nil
	}
	e.commitSelection()
	label, _ := MatchLabel(e.sel, e.presets, e.opts.Locale.CustomLabel, e.opts.ShowCustomRange)
	wasOpen := e.open
	e.open = false
	e.hovering = false
	if err := e.refresh(); err != nil {
		return err
	}
	e.listener.Notify(AppliedEvent{Start: e.committedStart, End: e.committedEnd, Label: label})
	if wasOpen {
		e.listener.Notify(ClosedEvent{})
	}
	return nil
}

// Cancel discards edits and hides the picker.
func (e *Engine) Cancel() error {
	wasOpen := e.open
	e.open = false
	e.restoreCommitted()
	if err := e.refresh(); err != nil {
		return err
	}
	e.listener.Notify(CancelledEvent{})
	if wasOpen {
		e.listener.Notify(ClosedEvent{})
	}
	return nil
}

// SetText parses externally typed range text. On a mismatch nothing changes.
// While the picker is closed the parsed range is committed directly.
func (e *Engine) SetText(raw string) error {
	start, end, err := ParseRange(raw, e.opts.Locale, e.opts.Single)
	if err != nil {
		return err
	}
	e.sel = e.rangeOf(start, end)
	e.rightClock, _ = e.sel.End()
	if !e.open {
		e.commitSelection()
	}
	e.window.Follow(e.sel.Start, e.rightClock, true)
	return e.refresh()
}

// SetRange assigns both endpoints, clamping to the constraints and
// swapping an inverted pair.
func (e *Engine) SetRange(start, end time.Time) error {
	e.sel = e.rangeOf(start, end)
	e.rightClock, _ = e.sel.End()
	e.hovering = false
	e.window.Follow(e.sel.Start, e.rightClock, true)
	return e.refresh()
}

// SetStart assigns the start, keeping the current end when there is one.
func (e *Engine) SetStart(start time.Time) error {
	if end, ok := e.sel.End(); ok {
		return e.SetRange(start, end)
	}
	e.sel = Picking(e.normalizeStart(start))
	e.window.Follow(e.sel.Start, time.Time{}, false)
	return e.refresh()
}

// SetEnd assigns the end, completing an open selection.
func (e *Engine) SetEnd(end time.Time) error {
	return e.SetRange(e.sel.Start, end)
}

func (e *Engine) commitSelection() {
	end, _ := e.sel.End()
	e.committedStart, e.committedEnd = e.sel.Start, end
	e.rightClock = end
}

func (e *Engine) restoreCommitted() {
	e.sel = Complete(e.committedStart, e.committedEnd)
	e.rightClock = e.committedEnd
	e.hovering = false
	e.window.Follow(e.committedStart, e.committedEnd, true)
}

// rangeOf builds a normalized complete selection from raw endpoints.
func (e *Engine) rangeOf(start, end time.Time) Selection {
	if end.Before(start) {
		start, end = end, start
	}
	start = e.normalizeStart(start)
	if e.opts.Single {
		return Complete(start, e.singleEnd(start))
	}
	end = e.normalizeEnd(start, end)
	if end.Before(start) {
		end = e.singleEnd(start)
	}
	return Complete(start, end)
}

func (e *Engine) singleEnd(start time.Time) time.Time {
	if e.opts.Time.Enabled {
		return start
	}
	return dateutil.EndOfDay(start)
}

func (e *Engine) normalizeStart(t time.Time) time.Time {
	c := e.opts.Constraints
	if e.opts.Time.Enabled {
		t = e.floorToGrid(t)
	} else {
		t = dateutil.StartOfDay(t)
	}
	if !c.MinDate.IsZero() && t.Before(c.MinDate) {
		t = e.ceilToGrid(c.MinDate)
		if !e.opts.Time.Enabled {
			t = dateutil.StartOfDay(t)
		}
	}
	if !c.MaxDate.IsZero() && t.After(c.MaxDate) {
		t = e.floorToGrid(c.MaxDate)
		if !e.opts.Time.Enabled {
			t = dateutil.StartOfDay(t)
		}
	}
	return t
}

func (e *Engine) normalizeEnd(start, t time.Time) time.Time {
	c := e.opts.Constraints
	if e.opts.Time.Enabled {
		t = e.floorToGrid(t)
	} else {
		t = dateutil.EndOfDay(t)
	}
	if !c.MaxDate.IsZero() && t.After(c.MaxDate) {
		t = e.floorToGrid(c.MaxDate)
	}
	if !c.MaxSpan.IsZero() {
		limit := c.MaxSpan.AddTo(start)
		if !e.opts.Time.Enabled {
			limit = dateutil.EndOfDay(limit)
		}
		if t.After(limit) {
			t = limit
		}
	}
	return t
}

// floorToGrid snaps t down to the minute increment when the time picker is on.
func (e *Engine) floorToGrid(t time.Time) time.Time {
	if !e.opts.Time.Enabled {
		return t
	}
	second := 0
	if e.opts.Time.Seconds {
		second = t.Second()
	}
	return dateutil.SetClock(t, t.Hour(), FloorMinute(t.Minute(), e.opts.Time.increment()), second)
}

// ceilToGrid is floorToGrid rounded up so a lower bound stays inside the window.
func (e *Engine) ceilToGrid(t time.Time) time.Time {
	f := e.floorToGrid(t)
	if e.opts.Time.Enabled && f.Before(t) {
		f = f.Add(time.Duration(e.opts.Time.increment()) * time.Minute)
	}
	return f
}

func (e *Engine) mergeClock(date time.Time, side calendar.Side) time.Time {
	if !e.opts.Time.Enabled {
		return date
	}
	clock := e.sel.Start
	if side == calendar.Right {
		clock = e.rightClock
	}
	return dateutil.WithClock(date, clock)
}

func (e *Engine) blocked(date time.Time, side calendar.Side) (bool, error) {
	cell, err := e.classify.Classify(date, date, e.sel, side)
	if err != nil {
		return false, err
	}
	return cell.Disabled, nil
}

func (e *Engine) refresh() error {
	snap, err := e.buildSnapshot()
	if err != nil {
		if e.err == nil {
			e.err = err
		}
		return err
	}
	e.snapshot = snap
	e.listener.Notify(ChangedEvent{Snapshot: snap})
	return nil
}

func (e *Engine) buildSnapshot() (Snapshot, error) {
	start := e.sel.Start
	end, complete := e.sel.End()
	rightClock := e.rightClock
	if complete {
		rightClock = end
	}

	left, err := e.month(calendar.Left, dateutil.WithClock(e.window.Left(), start))
	if err != nil {
		return Snapshot{}, err
	}
	right, err := e.month(calendar.Right, dateutil.WithClock(e.window.Right(), rightClock))
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Left:            left,
		Right:           right,
		RightTimeLocked: !complete,
		Selection:       e.sel,
		ApplyEnabled:    e.sel.Committable(),
		Single:          e.opts.Single,
		Open:            e.open,
	}
	snap.Label, snap.HasLabel = MatchLabel(e.sel, e.presets, e.opts.Locale.CustomLabel, e.opts.ShowCustomRange)
	if complete {
		snap.Text = FormatRange(start, end, e.opts.Locale, e.opts.Single)
	}

	if e.opts.Time.Enabled {
		lt := TimeOptionsFor(calendar.Left, start, e.sel, e.opts.Constraints, e.opts.Time)
		snap.LeftTime = &lt

		subject := end
		if !complete {
			subject = dateutil.WithClock(start, rightClock)
			if subject.Before(start) {
				subject = start
			}
		}
		rt := TimeOptionsFor(calendar.Right, subject, e.sel, e.opts.Constraints, e.opts.Time)
		snap.RightTime = &rt
	}
	return snap, nil
}

func (e *Engine) month(side calendar.Side, anchor time.Time) (Month, error) {
	grid := calendar.Build(anchor, e.opts.Locale.FirstDay)
	m := Month{
		Side:    side,
		Anchor:  anchor,
		Title:   e.opts.Locale.MonthTitle(anchor),
		CanPrev: e.window.CanPrev(side),
		CanNext: e.window.CanNext(side),
	}
	preview := e.hovering && e.sel.IsOpen()
	for r := 0; r < calendar.Rows; r++ {
		for c := 0; c < calendar.Cols; c++ {
			cell, err := e.classify.Classify(grid[r][c], anchor, e.sel, side)
			if err != nil {
				return Month{}, fmt.Errorf("classifying %s calendar: %w", side, err)
			}
			if preview {
				cell.Preview = InRange(grid[r][c], e.sel.Start, e.hover)
			}
			m.Cells[r][c] = cell
		}
	}
	return m, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
