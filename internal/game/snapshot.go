package game

// Snapshot captures what a display needs to draw a session.
type Snapshot struct {
	Grid    Grid
	Legal   []Direction
	Moves   int
	MaxTile int
	Outcome Outcome
}

// Snapshot returns the current renderable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:    s.grid,
		Legal:   s.grid.LegalMoves(),
		Moves:   s.moves,
		MaxTile: s.grid.MaxTile(),
		Outcome: s.Status(),
	}
}
