package core

import (
	"strings"
)

// Screen is a 2D character buffer used to compose a full frame before it is
// written to a terminal.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and clears it.
// Negative dimensions are treated as zero.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
	s.Clear()
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(max(x, 0), y, text)
}

// DrawBlockCentered draws a multi-line block starting at row y, centered as a
// whole on its widest line. Returns the row after the block.
func (s *Screen) DrawBlockCentered(y int, block string) int {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, len([]rune(line)))
	}

	x := max((s.width-widest)/2, 0)
	for i, line := range lines {
		s.DrawText(x, y+i, line)
	}
	return y + len(lines)
}

// Frame joins the rows with sep, dropping trailing spaces on each row.
func (s *Screen) Frame(sep string) string {
	rows := make([]string, s.height)
	for y := range s.height {
		rows[y] = strings.TrimRight(string(s.cells[y]), " ")
	}
	return strings.Join(rows, sep)
}
