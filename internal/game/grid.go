// Package game implements the 2048 engine: the exponent grid, the move transform,
// tile spawning and the turn state machine. It has no terminal dependencies.
package game

import "fmt"

// Size is the board dimension.
const Size = 4

// WinExponent is the exponent of the winning tile (2^11 = 2048).
const WinExponent = 11

// MaxCellExponent is the largest cell value. 2^30 still fits an int on every
// platform; play never gets past 17.
const MaxCellExponent = 30

// Grid is a 4x4 board of exponent cells. A cell value v > 0 shows the tile 2^v,
// 0 is an empty cell. Values stay within [0, MaxCellExponent].
type Grid [Size][Size]uint8

// At returns the exponent stored at (row, col).
func (g *Grid) At(row, col int) uint8 {
	return g[row][col]
}

// Set stores an exponent at (row, col). It panics if v exceeds MaxCellExponent.
func (g *Grid) Set(row, col int, v uint8) {
	if v > MaxCellExponent {
		panic(fmt.Sprintf("game: exponent %d out of range [0, %d]", v, MaxCellExponent))
	}
	g[row][col] = v
}

// Tile returns the displayed value at (row, col), 0 for an empty cell.
func (g *Grid) Tile(row, col int) int {
	v := g[row][col]
	if v == 0 {
		return 0
	}
	return 1 << v
}

// Transpose swaps (r, c) with (c, r) in place.
func (g *Grid) Transpose() {
	for r := range Size {
		for c := range r {
			g[r][c], g[c][r] = g[c][r], g[r][c]
		}
	}
}

// ReverseRows reverses the cells of every row in place.
func (g *Grid) ReverseRows() {
	for r := range Size {
		row := &g[r]
		for i, j := 0, Size-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// EmptyCells returns the number of empty cells.
func (g *Grid) EmptyCells() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// MaxExponent returns the highest exponent on the board.
func (g *Grid) MaxExponent() uint8 {
	var m uint8
	for r := range Size {
		for c := range Size {
			if g[r][c] > m {
				m = g[r][c]
			}
		}
	}
	return m
}

// MaxTile returns the highest displayed tile value, 0 on an empty board.
func (g *Grid) MaxTile() int {
	m := g.MaxExponent()
	if m == 0 {
		return 0
	}
	return 1 << m
}

// Won reports whether any cell holds the winning tile or higher.
func (g *Grid) Won() bool {
	return g.MaxExponent() >= WinExponent
}
