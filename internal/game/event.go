package game

import (
	"context"

	"github.com/vovakirdan/term2048/internal/core"
)

// EventKind classifies input events.
type EventKind int

const (
	EventNone EventKind = iota
	EventMove
	EventQuit
	EventRedraw
)

// Event is one input event delivered to a session.
type Event struct {
	Kind EventKind
	Dir  Direction // Only meaningful for EventMove
}

// MoveEvent returns a move request.
func MoveEvent(d Direction) Event {
	return Event{Kind: EventMove, Dir: d}
}

// EventFor translates a semantic action into a session event.
// Actions the game does not use map to EventNone.
func EventFor(a core.Action) Event {
	switch a {
	case core.ActionLeft:
		return MoveEvent(DirLeft)
	case core.ActionRight:
		return MoveEvent(DirRight)
	case core.ActionUp:
		return MoveEvent(DirUp)
	case core.ActionDown:
		return MoveEvent(DirDown)
	case core.ActionQuit:
		return Event{Kind: EventQuit}
	case core.ActionRedraw:
		return Event{Kind: EventRedraw}
	default:
		return Event{}
	}
}

// InputSource blocks until the next input event is available.
type InputSource interface {
	Next(ctx context.Context) (Event, error)
}

// Display shows a snapshot of the session.
type Display interface {
	Show(snap Snapshot) error
}
