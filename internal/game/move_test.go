package game

import (
	"math/rand"
	"testing"
)

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]uint8
		expected [4]uint8
	}{
		{"simple merge", [4]uint8{1, 1, 0, 0}, [4]uint8{2, 0, 0, 0}},
		{"merge with trailing tile", [4]uint8{1, 1, 1, 0}, [4]uint8{2, 1, 0, 0}},
		{"double merge", [4]uint8{1, 1, 1, 1}, [4]uint8{2, 2, 0, 0}},
		{"gap closed before merge", [4]uint8{1, 0, 1, 1}, [4]uint8{2, 1, 0, 0}},
		{"merged tile does not merge again", [4]uint8{1, 1, 2, 0}, [4]uint8{2, 2, 0, 0}},
		{"merge result blocks later pair", [4]uint8{2, 2, 3, 3}, [4]uint8{3, 4, 0, 0}},
		{"no merge possible", [4]uint8{1, 2, 3, 4}, [4]uint8{1, 2, 3, 4}},
		{"slide with gap", [4]uint8{0, 0, 1, 1}, [4]uint8{2, 0, 0, 0}},
		{"slide with multiple gaps", [4]uint8{1, 0, 0, 1}, [4]uint8{2, 0, 0, 0}},
		{"no change needed", [4]uint8{2, 1, 0, 0}, [4]uint8{2, 1, 0, 0}},
		{"empty row", [4]uint8{0, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		{"single tile", [4]uint8{0, 2, 0, 0}, [4]uint8{2, 0, 0, 0}},
		{"merge into winning tile", [4]uint8{10, 10, 0, 0}, [4]uint8{11, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.input
			slideRow(&row)
			if row != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, row, tt.expected)
			}
		})
	}
}

func TestMoveDirections(t *testing.T) {
	board := Grid{
		{1, 2, 1, 1},
		{1, 0, 1, 0},
		{0, 2, 1, 0},
		{0, 0, 1, 0},
	}

	tests := []struct {
		dir      Direction
		expected Grid
	}{
		{DirLeft, Grid{
			{1, 2, 2, 0},
			{2, 0, 0, 0},
			{2, 1, 0, 0},
			{1, 0, 0, 0},
		}},
		{DirRight, Grid{
			{0, 1, 2, 2},
			{0, 0, 0, 2},
			{0, 0, 2, 1},
			{0, 0, 0, 1},
		}},
		{DirUp, Grid{
			{2, 3, 2, 1},
			{0, 0, 2, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
		{DirDown, Grid{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 2, 0},
			{2, 3, 2, 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := board.Moved(tt.dir)
			if got != tt.expected {
				t.Errorf("Moved(%s):\ngot  %v\nwant %v", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestMoveMutatesInPlace(t *testing.T) {
	g := Grid{{0, 0, 0, 1}}
	g.Move(DirLeft)
	if g.At(0, 0) != 1 || g.At(0, 3) != 0 {
		t.Errorf("Move should mutate the receiver, got %v", g)
	}
}

// referenceLine slides a line toward index 0 with one merge per tile.
func referenceLine(line [Size]uint8) [Size]uint8 {
	var out [Size]uint8
	n := 0
	justMerged := false
	for _, v := range line {
		if v == 0 {
			continue
		}
		if n > 0 && out[n-1] == v && !justMerged {
			out[n-1]++
			justMerged = true
			continue
		}
		out[n] = v
		n++
		justMerged = false
	}
	return out
}

// referenceMove moves by reading each line in the direction of travel.
func referenceMove(g Grid, d Direction) Grid {
	var out Grid
	for i := range Size {
		var line [Size]uint8
		for j := range Size {
			switch d {
			case DirLeft:
				line[j] = g[i][j]
			case DirRight:
				line[j] = g[i][Size-1-j]
			case DirUp:
				line[j] = g[j][i]
			case DirDown:
				line[j] = g[Size-1-j][i]
			}
		}
		line = referenceLine(line)
		for j := range Size {
			switch d {
			case DirLeft:
				out[i][j] = line[j]
			case DirRight:
				out[i][Size-1-j] = line[j]
			case DirUp:
				out[j][i] = line[j]
			case DirDown:
				out[Size-1-j][i] = line[j]
			}
		}
	}
	return out
}

// randomGrid fills a grid with small exponents and plenty of gaps.
func randomGrid(rng *rand.Rand) Grid {
	var g Grid
	for r := range Size {
		for c := range Size {
			if rng.Intn(3) > 0 {
				g[r][c] = uint8(rng.Intn(4) + 1)
			}
		}
	}
	return g
}

func TestComposedMovesMatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))
	for i := range 200 {
		g := randomGrid(rng)
		for _, d := range Directions {
			got := g.Moved(d)
			want := referenceMove(g, d)
			if got != want {
				t.Fatalf("grid #%d %v, move %s:\ngot  %v\nwant %v", i, g, d, got, want)
			}
		}
	}
}

func TestTransposeSelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 50 {
		g := randomGrid(rng)
		h := g
		h.Transpose()
		if g[0][1] != h[1][0] || g[3][2] != h[2][3] {
			t.Fatalf("Transpose did not swap cells: %v -> %v", g, h)
		}
		h.Transpose()
		if h != g {
			t.Fatalf("Transpose twice = %v, want %v", h, g)
		}
	}
}

func TestReverseRowsSelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 50 {
		g := randomGrid(rng)
		h := g
		h.ReverseRows()
		if g[2][0] != h[2][3] || g[1][1] != h[1][2] {
			t.Fatalf("ReverseRows did not mirror cells: %v -> %v", g, h)
		}
		h.ReverseRows()
		if h != g {
			t.Fatalf("ReverseRows twice = %v, want %v", h, g)
		}
	}
}

func TestSecondMoveOnlyMerges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 200 {
		g := randomGrid(rng)
		for _, d := range Directions {
			once := g.Moved(d)
			twice := once.Moved(d)

			// Without a merge on the first pass the board is fully settled.
			if once.EmptyCells() == g.EmptyCells() && twice != once {
				t.Fatalf("move %s on %v not idempotent: %v then %v", d, g, once, twice)
			}
			// Otherwise a second pass can only change the board by merging.
			if twice != once && twice.EmptyCells() <= once.EmptyCells() {
				t.Fatalf("move %s on %v slid tiles on second pass: %v then %v", d, g, once, twice)
			}
		}
	}
}

func TestSecondMoveCanMergeNewNeighbours(t *testing.T) {
	g := Grid{{2, 1, 1, 0}}
	once := g.Moved(DirLeft)
	if once != (Grid{{2, 2, 0, 0}}) {
		t.Fatalf("first move = %v", once)
	}
	if twice := once.Moved(DirLeft); twice != (Grid{{3, 0, 0, 0}}) {
		t.Errorf("second move = %v, want [[3 0 0 0] ...]", twice)
	}
}

func TestCanMoveMatchesChange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for range 200 {
		g := randomGrid(rng)
		for _, d := range Directions {
			if g.CanMove(d) != (g.Moved(d) != g) {
				t.Fatalf("CanMove(%s) disagrees with Moved on %v", d, g)
			}
		}
	}
}

func TestLegalMovesOrder(t *testing.T) {
	g := Grid{
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	legal := g.LegalMoves()
	want := []Direction{DirLeft, DirRight, DirUp, DirDown}
	if len(legal) != len(want) {
		t.Fatalf("LegalMoves() = %v, want %v", legal, want)
	}
	for i := range want {
		if legal[i] != want[i] {
			t.Errorf("LegalMoves()[%d] = %s, want %s", i, legal[i], want[i])
		}
	}

	corner := Grid{{1, 0, 0, 0}}
	legal = corner.LegalMoves()
	if len(legal) != 2 || legal[0] != DirRight || legal[1] != DirDown {
		t.Errorf("corner LegalMoves() = %v, want [right down]", legal)
	}
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{DirLeft: "left", DirRight: "right", DirUp: "up", DirDown: "down", Direction(9): "unknown"}
	for d, want := range names {
		if d.String() != want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(d), d.String(), want)
		}
	}
}
