package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"

	"github.com/javiermolinar/rangepick/internal/picker"
)

// DebugLogPath is where --debug writes its JSON lines.
const DebugLogPath = "rangepick-debug.log"

// traceLog writes one JSON object per line. A nil *traceLog discards everything.
type traceLog struct {
	mu  sync.Mutex
	w   io.WriteCloser
	seq int
}

var trace *traceLog

// InitDebugLogger starts tracing to DebugLogPath when enabled.
func InitDebugLogger(enabled bool) error {
	trace = nil
	if !enabled {
		return nil
	}
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	trace = &traceLog{w: f}
	trace.write("debug_start", "log_file", DebugLogPath, "time", time.Now().Format(time.RFC3339))
	return nil
}

// CloseDebugLogger flushes the end marker and closes the log.
func CloseDebugLogger() {
	if trace == nil {
		return
	}
	trace.write("debug_end", "time", time.Now().Format(time.RFC3339))
	_ = trace.w.Close()
	trace = nil
}

// write records event with alternating key/value pairs.
func (l *traceLog) write(event string, kv ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := make(map[string]any, len(kv)/2+3)
	entry["seq"] = l.seq
	entry["ts"] = time.Now().Format("15:04:05.000")
	entry["event"] = event
	for i := 0; i+1 < len(kv); i += 2 {
		entry[fmt.Sprint(kv[i])] = kv[i+1]
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = l.w.Write(append(b, '\n'))
}

// LogKeyPress records a keystroke.
func LogKeyPress(msg tea.KeyMsg) {
	trace.write("key", "key", msg.String(), "alt", msg.Alt)
}

// LogModeChange records a switch between interaction modes.
func LogModeChange(from, to Mode, reason string) {
	trace.write("mode", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogEngineEvent records a notification drained from the picker.
func LogEngineEvent(e picker.Event) {
	if trace == nil {
		return
	}
	switch e := e.(type) {
	case picker.AppliedEvent:
		trace.write("engine", "kind", e.Kind().String(),
			"start", e.Start.Format(time.RFC3339),
			"end", e.End.Format(time.RFC3339),
			"label", e.Label)
	case picker.ChangedEvent:
		trace.write("engine", "kind", e.Kind().String(),
			"text", e.Snapshot.Text,
			"left", e.Snapshot.Left.Title,
			"right", e.Snapshot.Right.Title)
	default:
		trace.write("engine", "kind", e.Kind().String())
	}
}

// LogError records a failed engine command.
func LogError(action string, err error) {
	trace.write("error", "action", action, "error", err.Error())
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTime:
		return "time"
	case ModePresets:
		return "presets"
	case ModePrompt:
		return "prompt"
	case ModeModal:
		return "modal"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
