// Package tui provides the terminal user interface for rangepick.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/config"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/picker"
	"github.com/javiermolinar/rangepick/internal/tui/commands"
	"github.com/javiermolinar/rangepick/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeTime         // editing hour/minute fields
	ModePresets      // moving through the preset list
	ModePrompt       // typing range text
	ModeModal        // key reference overlay
)

// Result is what the picker produced when the program exited.
type Result struct {
	Start   time.Time
	End     time.Time
	Label   string
	Text    string
	Applied bool
}

// eventQueue buffers engine notifications until Update drains them.
// Bubbletea copies the model by value, so the queue lives behind a pointer.
type eventQueue struct {
	events []picker.Event
}

func (q *eventQueue) Notify(e picker.Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []picker.Event {
	out := q.events
	q.events = nil
	return out
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	engine *picker.Engine
	events *eventQueue
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	cursor       time.Time // highlighted day
	focus        calendar.Side
	mode         Mode
	timeSide     calendar.Side
	timeField    int
	presetCursor int

	// Overlay state
	overlay OverlayModel

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error

	result    Result
	clipboard commands.ClipboardWriter
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write commands.ClipboardWriter) ModelOption {
	return func(m *Model) {
		m.clipboard = write
	}
}

// New creates a new TUI model around a freshly opened engine.
func New(cfg *config.Config, opts picker.Options, options ...ModelOption) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	queue := &eventQueue{}
	engine, err := picker.New(opts, queue)
	if err != nil {
		return nil, fmt.Errorf("creating picker: %w", err)
	}
	if err := engine.Open(); err != nil {
		return nil, fmt.Errorf("opening picker: %w", err)
	}
	queue.drain()

	ti := textinput.New()
	ti.Placeholder = engine.Locale().Format
	ti.CharLimit = 128

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti.TextStyle = styles.TextStyle
	ti.PlaceholderStyle = styles.HelpStyle

	m := &Model{
		engine:  engine,
		events:  queue,
		config:  cfg,
		theme:   t,
		styles:  styles,
		cursor:  dateutil.StartOfDay(engine.Selection().Start),
		focus:   calendar.Left,
		mode:    ModeNormal,
		prompt:  ti,
		overlay: NewOverlayModel(),
	}
	m.layoutCache = m.buildLayoutCache(0, 0)

	for _, opt := range options {
		opt(m)
	}
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the outcome recorded when the picker closed.
func (m Model) Result() Result {
	return m.result
}

// Err returns the last engine error shown in the status bar.
func (m Model) Err() error {
	return m.err
}

// Run starts the TUI.
func Run(cfg *config.Config, opts picker.Options) (Result, error) {
	return RunWithDebug(cfg, opts, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, opts picker.Options, debug bool) (Result, error) {
	if err := InitDebugLogger(debug); err != nil {
		return Result{}, err
	}
	defer CloseDebugLogger()

	model, err := New(cfg, opts)
	if err != nil {
		return Result{}, err
	}
	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	final, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	if engErr := final.engine.Err(); engErr != nil {
		return final.result, engErr
	}
	return final.result, nil
}
