package game

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every move in presentation order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// slideRow slides and merges a single row toward index 0, in place.
// A cell produced by a merge accepts no further merge during the same slide.
func slideRow(row *[Size]uint8) {
	// Cells left of floor are merge results from this slide. A tile never
	// merges twice per move: [1,1,2,0] becomes [2,2,0,0], not [3,0,0,0].
	floor := 0
	for x := 1; x < Size; x++ {
		if row[x] == 0 {
			continue
		}

		nx := x
		for nx > floor && row[nx-1] == 0 {
			nx--
		}

		switch {
		case nx > floor && row[nx-1] == row[x]:
			row[nx-1]++
			row[x] = 0
			floor = nx
		case nx < x:
			row[nx] = row[x]
			row[x] = 0
		}
	}
}

// slideLeft applies slideRow to every row.
func (g *Grid) slideLeft() {
	for r := range Size {
		slideRow(&g[r])
	}
}

// Move applies a move in place. Every direction is the left slide seen through
// a reflection and/or a transposition of the board.
func (g *Grid) Move(d Direction) {
	switch d {
	case DirLeft:
		g.slideLeft()
	case DirRight:
		g.ReverseRows()
		g.slideLeft()
		g.ReverseRows()
	case DirUp:
		g.Transpose()
		g.slideLeft()
		g.Transpose()
	case DirDown:
		g.Transpose()
		g.ReverseRows()
		g.slideLeft()
		g.ReverseRows()
		g.Transpose()
	}
}

// Moved returns a copy of the grid with the move applied.
func (g Grid) Moved(d Direction) Grid {
	g.Move(d)
	return g
}

// CanMove reports whether the move changes at least one cell.
func (g Grid) CanMove(d Direction) bool {
	return g.Moved(d) != g
}

// LegalMoves returns the moves that change the board, in presentation order.
func (g Grid) LegalMoves() []Direction {
	var legal []Direction
	for _, d := range Directions {
		if g.CanMove(d) {
			legal = append(legal, d)
		}
	}
	return legal
}
