// Package core provides front-end neutral types shared by the game engine and
// the terminal front ends. It has no terminal library dependencies.
package core

// Action represents a semantic input intent, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // A, Left arrow
	ActionRight         // D, Right arrow
	ActionUp            // W, Up arrow
	ActionDown          // S, Down arrow
	ActionQuit          // Q, Ctrl+C
	ActionRedraw        // terminal resized
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	case ActionRedraw:
		return "Redraw"
	default:
		return "Unknown"
	}
}
