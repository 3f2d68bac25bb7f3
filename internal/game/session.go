package game

import (
	"context"
	"fmt"
	"slices"
)

// Outcome classifies the state of a session after a check.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeQuit
)

// String returns the outcome name used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o != OutcomeContinue
}

// Message returns the line reported to the player when a session ends.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return "You win!"
	case OutcomeLoss:
		return "You lose!"
	case OutcomeQuit:
		return "quit"
	default:
		return ""
	}
}

// Session owns the grid of one game and drives its turns.
type Session struct {
	grid    Grid
	spawner *Spawner
	moves   int
	quit    bool
}

// NewSession starts a game on an empty grid seeded with two tiles.
func NewSession(spawner *Spawner) *Session {
	s := &Session{spawner: spawner}
	spawner.Spawn(&s.grid)
	spawner.Spawn(&s.grid)
	return s
}

// NewSessionFromGrid starts a game from an existing grid without spawning.
func NewSessionFromGrid(g Grid, spawner *Spawner) *Session {
	return &Session{grid: g, spawner: spawner}
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() Grid {
	return s.grid
}

// Moves returns the number of accepted moves.
func (s *Session) Moves() int {
	return s.moves
}

// LegalMoves returns the moves that would change the grid.
func (s *Session) LegalMoves() []Direction {
	return s.grid.LegalMoves()
}

// Status classifies the current grid. The win check runs before move
// legality, so a winning grid with no legal move is a win.
func (s *Session) Status() Outcome {
	switch {
	case s.quit:
		return OutcomeQuit
	case s.grid.Won():
		return OutcomeWin
	case len(s.grid.LegalMoves()) == 0:
		return OutcomeLoss
	default:
		return OutcomeContinue
	}
}

// Handle applies one input event and returns the resulting outcome together
// with whether the grid changed. Illegal moves and redraws leave the grid alone.
// Once the session has ended further events are ignored.
func (s *Session) Handle(ev Event) (Outcome, bool) {
	if o := s.Status(); o.Terminal() {
		return o, false
	}

	switch ev.Kind {
	case EventQuit:
		s.quit = true
		return OutcomeQuit, false
	case EventMove:
		if !s.grid.CanMove(ev.Dir) {
			return OutcomeContinue, false
		}
		s.apply(ev.Dir)
		return s.Status(), true
	default:
		return OutcomeContinue, false
	}
}

// apply performs an accepted move followed by the spawn of a new tile.
// A move that changed the grid always freed at least one cell.
func (s *Session) apply(d Direction) {
	s.grid.Move(d)
	s.spawner.Spawn(&s.grid)
	s.moves++
}

// Run drives the session until it ends: show the board, check for a terminal
// outcome, then block on input until a legal move, a quit or a redraw arrives.
func (s *Session) Run(ctx context.Context, in InputSource, out Display) (Outcome, error) {
	for {
		if err := out.Show(s.Snapshot()); err != nil {
			return OutcomeContinue, fmt.Errorf("game: display: %w", err)
		}

		if o := s.Status(); o.Terminal() {
			return o, nil
		}

		legal := s.grid.LegalMoves()
	wait:
		for {
			ev, err := in.Next(ctx)
			if err != nil {
				return OutcomeContinue, fmt.Errorf("game: input: %w", err)
			}

			switch ev.Kind {
			case EventQuit:
				s.quit = true
				return OutcomeQuit, nil
			case EventRedraw:
				break wait
			case EventMove:
				if slices.Contains(legal, ev.Dir) {
					s.apply(ev.Dir)
					break wait
				}
			}
		}
	}
}
