package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/picker"
	"github.com/javiermolinar/rangepick/internal/tui/commands"
	"github.com/javiermolinar/rangepick/internal/tui/input"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeTime:
		return m.handleTimeKeys(msg)
	case ModePresets:
		return m.handlePresetKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "esc":
		cmd = m.run("cancel", m.engine.Cancel())

	// Navigation
	case "h", "left":
		cmd = m.moveCursor(-1)
	case "l", "right":
		cmd = m.moveCursor(1)
	case "k", "up":
		cmd = m.moveCursor(-7)
	case "j", "down":
		cmd = m.moveCursor(7)
	case "[":
		cmd = m.shiftMonth(false)
	case "]":
		cmd = m.shiftMonth(true)
	case "{":
		cmd = m.shiftYear(-1)
	case "}":
		cmd = m.shiftYear(1)
	case ".":
		prev := m.cursor
		m.cursor = dateutil.StartOfDay(m.now())
		cmd = m.followCursor(prev)
	case "tab":
		m.switchFocus()
		cmd = m.hoverCursor()

	// Selection
	case "enter", " ":
		cmd = m.run("choose", m.engine.ChooseOn(m.focus, m.cursor))
	case "a":
		if !m.engine.Snapshot().ApplyEnabled {
			cmd = m.setStatus("Pick an end date first", statusDuration)
			break
		}
		cmd = m.run("apply", m.engine.Apply())

	// Modes
	case "t":
		if !m.engine.Options().Time.Enabled {
			cmd = m.setStatus("Time picker is disabled", statusDuration)
			break
		}
		LogModeChange(m.mode, ModeTime, "t")
		m.mode = ModeTime
		m.timeSide = calendar.Left
		m.timeField = view.FieldHour
	case "p":
		labels := m.presetLabels()
		if len(labels) == 0 {
			cmd = m.setStatus("No preset ranges configured", statusDuration)
			break
		}
		LogModeChange(m.mode, ModePresets, "p")
		m.mode = ModePresets
		m.presetCursor = 0
		if snap := m.engine.Snapshot(); snap.HasLabel {
			for i, l := range labels {
				if l == snap.Label {
					m.presetCursor = i
				}
			}
		}
	case "/":
		LogModeChange(m.mode, ModePrompt, "/")
		m.mode = ModePrompt
		m.prompt.SetValue(m.engine.Snapshot().Text)
		m.prompt.CursorEnd()
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		cmd = tea.Batch(m.run("clear_hover", m.engine.ClearHover()), m.prompt.Focus())
	case "y":
		cmd = commands.Yank(m.engine.Snapshot().Text, m.clipboard)
	case "?":
		LogModeChange(m.mode, ModeModal, "?")
		m.mode = ModeModal
		m.overlay.Toggle()
	}
	return m, cmd
}

// handleTimeKeys edits the hour/minute/second/meridiem fields.
func (m Model) handleTimeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	opts := snap.LeftTime
	if m.timeSide == calendar.Right {
		opts = snap.RightTime
	}
	fields := view.TimeFields(opts)

	switch msg.String() {
	case "esc", "t", "enter":
		LogModeChange(m.mode, ModeNormal, msg.String())
		m.mode = ModeNormal
		return m, nil
	case "tab":
		if snap.Single || snap.RightTimeLocked {
			return m, nil
		}
		m.timeSide = m.timeSide.Other()
		m.timeField = view.FieldHour
		return m, nil
	case "h", "left":
		m.timeField = stepField(fields, m.timeField, -1)
		return m, nil
	case "l", "right":
		m.timeField = stepField(fields, m.timeField, 1)
		return m, nil
	case "k", "up":
		cmd := m.adjustTime(opts, 1)
		return m, cmd
	case "j", "down":
		cmd := m.adjustTime(opts, -1)
		return m, cmd
	}
	return m, nil
}

// handlePresetKeys moves through and picks preset ranges.
func (m Model) handlePresetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	labels := m.presetLabels()
	switch msg.String() {
	case "esc", "p":
		LogModeChange(m.mode, ModeNormal, msg.String())
		m.mode = ModeNormal
		return m, nil
	case "k", "up":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
		return m, nil
	case "j", "down":
		if m.presetCursor < len(labels)-1 {
			m.presetCursor++
		}
		return m, nil
	case "enter", " ":
		if m.presetCursor >= len(labels) {
			return m, nil
		}
		m.mode = ModeNormal
		cmd := m.run("preset", m.engine.ChoosePreset(labels[m.presetCursor]))
		m.cursor = dateutil.StartOfDay(m.engine.Selection().Start)
		m.focus = calendar.Left
		return m, cmd
	}
	return m, nil
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		LogModeChange(m.mode, ModeNormal, "prompt_cancelled")
		m.mode = ModeNormal
		m.prompt.Blur()
		m.prompt.SetValue("")
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.mode = ModeNormal
		m.prompt.Blur()
		m.prompt.SetValue("")
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.Autocomplete(m.prompt.Value(), m.presetLabels()); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.layoutCache = m.buildLayoutCache(m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return m, cmd
}

// handlePromptSubmit picks a preset by name or parses typed range text.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if label, ok := input.ExactPreset(value, m.presetLabels()); ok {
		cmd := m.run("preset", m.engine.ChoosePreset(label))
		m.cursor = dateutil.StartOfDay(m.engine.Selection().Start)
		return m, cmd
	}

	err := m.engine.SetText(value)
	if errors.Is(err, picker.ErrTextMismatch) {
		cmd := m.setStatus(fmt.Sprintf("Could not read %q as %s", value, m.engine.Locale().Format), errorDuration)
		return m, cmd
	}
	cmd := m.run("set_text", err)
	if err == nil {
		m.cursor = dateutil.StartOfDay(m.engine.Selection().Start)
		m.focus = calendar.Left
		cmd = tea.Batch(cmd, m.setStatus("Range updated", statusDuration))
	}
	return m, cmd
}

// handleModalKeys closes the key reference on any key.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogModeChange(m.mode, ModeNormal, msg.String())
	m.mode = ModeNormal
	m.overlay.Toggle()
	return m, nil
}

// run turns an engine command result into status updates and program commands.
func (m *Model) run(action string, err error) tea.Cmd {
	var cmds []tea.Cmd
	if err != nil {
		LogError(action, err)
		m.err = err
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Error: %v", err), errorDuration))
	}
	if cmd := m.drainEvents(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// drainEvents records the applied range and quits once the picker closes.
func (m *Model) drainEvents() tea.Cmd {
	closed := false
	for _, e := range m.events.drain() {
		LogEngineEvent(e)
		switch e := e.(type) {
		case picker.AppliedEvent:
			opts := m.engine.Options()
			m.result = Result{
				Start:   e.Start,
				End:     e.End,
				Label:   e.Label,
				Text:    picker.FormatRange(e.Start, e.End, opts.Locale, opts.Single),
				Applied: true,
			}
		case picker.CancelledEvent:
			m.result = Result{}
		case picker.ClosedEvent:
			closed = true
		}
	}
	if closed {
		return tea.Quit
	}
	return nil
}

func (m *Model) setStatus(msg string, d time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(d)
	return commands.ClearStatusAfter(d)
}

func (m Model) now() time.Time {
	if now := m.engine.Options().Now; now != nil {
		return now()
	}
	return time.Now()
}

// moveCursor moves the highlighted day and pages the calendars when it leaves them.
func (m *Model) moveCursor(days int) tea.Cmd {
	prev := m.cursor
	m.cursor = m.cursor.AddDate(0, 0, days)
	return m.followCursor(prev)
}

// followCursor brings the cursor's month into view, reverting to prev when
// the constraints keep it hidden.
func (m *Model) followCursor(prev time.Time) tea.Cmd {
	if side, ok := m.visibleSide(m.cursor); ok {
		m.focus = side
		return m.hoverCursor()
	}

	snap := m.engine.Snapshot()
	idx := dateutil.MonthIndex(m.cursor)
	side := m.focus
	switch {
	case idx < dateutil.MonthIndex(snap.Left.Anchor):
		side = calendar.Left
	case snap.Single:
		side = calendar.Left
	case idx > dateutil.MonthIndex(snap.Right.Anchor):
		side = calendar.Right
	}
	if err := m.engine.JumpMonth(side, m.cursor.Month(), m.cursor.Year()); err != nil {
		m.cursor = prev
		return m.run("jump", err)
	}
	m.drainEvents()

	if s, ok := m.visibleSide(m.cursor); ok {
		m.focus = s
		return m.hoverCursor()
	}
	m.cursor = prev
	if s, ok := m.visibleSide(prev); ok {
		m.focus = s
	} else {
		m.cursor = dayInMonth(monthOf(m.engine.Snapshot(), side).Anchor, prev.Day())
		m.focus = side
	}
	return m.hoverCursor()
}

// shiftMonth pages the calendars one month, keeping the cursor's day.
func (m *Model) shiftMonth(forward bool) tea.Cmd {
	side := m.navSide(forward)
	snap := m.engine.Snapshot()
	month := monthOf(snap, side)
	if (forward && !month.CanNext) || (!forward && !month.CanPrev) {
		return nil
	}
	var err error
	if forward {
		err = m.engine.Next(side)
	} else {
		err = m.engine.Prev(side)
	}
	if err != nil {
		return m.run("shift_month", err)
	}
	m.drainEvents()
	m.keepCursorVisible()
	return m.hoverCursor()
}

// shiftYear jumps the focused calendar by whole years.
func (m *Model) shiftYear(delta int) tea.Cmd {
	anchor := monthOf(m.engine.Snapshot(), m.focus).Anchor
	if err := m.engine.JumpMonth(m.focus, anchor.Month(), anchor.Year()+delta); err != nil {
		return m.run("shift_year", err)
	}
	m.drainEvents()
	m.keepCursorVisible()
	return m.hoverCursor()
}

func (m *Model) keepCursorVisible() {
	if side, ok := m.visibleSide(m.cursor); ok {
		m.focus = side
		return
	}
	m.cursor = dayInMonth(monthOf(m.engine.Snapshot(), m.focus).Anchor, m.cursor.Day())
}

func (m *Model) switchFocus() {
	if m.engine.Snapshot().Single {
		return
	}
	m.focus = m.focus.Other()
	m.cursor = dayInMonth(monthOf(m.engine.Snapshot(), m.focus).Anchor, m.cursor.Day())
}

// hoverCursor previews the range ending at the cursor while the end is open.
func (m *Model) hoverCursor() tea.Cmd {
	if !m.engine.Selection().IsOpen() {
		return nil
	}
	return m.run("hover", m.engine.Hover(m.cursor))
}

// adjustTime steps the focused time field and applies it to the engine.
func (m *Model) adjustTime(opts *picker.TimeOptions, delta int) tea.Cmd {
	if opts == nil {
		return nil
	}
	hour, minute, second := 0, 0, 0
	if h, ok := opts.SelectedHour(); ok {
		hour = h.Value
	}
	if mm, ok := opts.SelectedMinute(); ok {
		minute = mm.Value
	}
	for _, s := range opts.Seconds {
		if s.Selected {
			second = s.Value
		}
	}

	tc := m.engine.Options().Time
	switch m.timeField {
	case view.FieldHour:
		hour = wrap(hour+delta, 24)
	case view.FieldMinute:
		step := max(tc.Increment, 1)
		minute = wrap(minute+delta*step, 60)
	case view.FieldSecond:
		second = wrap(second+delta, 60)
	case view.FieldMeridiem:
		hour = wrap(hour+12, 24)
	}

	tv := picker.TimeValue{Hour: hour, Minute: minute, Second: second}
	if tc.Hour12 {
		tv.Hour, tv.PM = picker.To12(hour)
	}
	return m.run("set_time", m.engine.SetTime(m.timeSide, tv))
}

func stepField(fields []int, current, delta int) int {
	for i, f := range fields {
		if f == current {
			return fields[wrap(i+delta, len(fields))]
		}
	}
	if len(fields) == 0 {
		return current
	}
	return fields[0]
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
