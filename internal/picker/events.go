package picker

import "time"

// EventKind names a notification emitted by the engine.
type EventKind int

const (
	EventOpened EventKind = iota
	EventClosed
	EventApplied
	EventCancelled
	EventChanged
)

func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventClosed:
		return "closed"
	case EventApplied:
		return "applied"
	case EventCancelled:
		return "cancelled"
	case EventChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer.
type Event interface {
	Kind() EventKind
}

// OpenedEvent is sent when the picker is shown.
type OpenedEvent struct{}

// ClosedEvent is sent when the picker is hidden.
type ClosedEvent struct{}

// AppliedEvent carries the committed range.
type AppliedEvent struct {
	Start time.Time
	End   time.Time
	Label string
}

// CancelledEvent is sent after edits were discarded.
type CancelledEvent struct{}

// ChangedEvent carries a fresh render snapshot.
type ChangedEvent struct {
	Snapshot Snapshot
}

func (OpenedEvent) Kind() EventKind    { return EventOpened }
func (ClosedEvent) Kind() EventKind    { return EventClosed }
func (AppliedEvent) Kind() EventKind   { return EventApplied }
func (CancelledEvent) Kind() EventKind { return EventCancelled }
func (ChangedEvent) Kind() EventKind   { return EventChanged }

// Listener receives engine notifications.
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// Notify calls f(e).
func (f ListenerFunc) Notify(e Event) { f(e) }

type discard struct{}

func (discard) Notify(Event) {}
