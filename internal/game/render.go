package game

import (
	"strconv"
	"strings"
)

// cellWidth is the inner width of a rendered cell.
const cellWidth = 4

// HintLine is the control summary shown under the board.
const HintLine = "arrow keys or WASD to play, q to quit"

// border is the separator drawn above, between and below rows.
var border = strings.Repeat("+"+strings.Repeat("-", cellWidth), Size) + "+"

// Render formats the grid as a fixed-width text board, one line per border
// and per row, each terminated by "\n".
func Render(g Grid) string {
	var sb strings.Builder
	sb.Grow((Size*2 + 1) * (len(border) + 1))

	for r := range Size {
		sb.WriteString(border)
		sb.WriteByte('\n')
		sb.WriteByte('|')
		for c := range Size {
			sb.WriteString(renderCell(g.Tile(r, c)))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	sb.WriteByte('\n')

	return sb.String()
}

// renderCell centers a tile value in a cell, odd padding going to the right.
// Values wider than the cell are written as is.
func renderCell(tile int) string {
	if tile == 0 {
		return strings.Repeat(" ", cellWidth)
	}

	s := strconv.Itoa(tile)
	pad := cellWidth - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// LegalLine lists the legal moves, e.g. "moves: left up".
func LegalLine(legal []Direction) string {
	if len(legal) == 0 {
		return "moves: none"
	}
	names := make([]string, len(legal))
	for i, d := range legal {
		names[i] = d.String()
	}
	return "moves: " + strings.Join(names, " ")
}
