package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/game"
)

// Board layout constants
const (
	tileWidth  = 7
	tileHeight = 3
)

// tileColors maps an exponent to a background color. Exponents past the
// end of the table reuse the last entry.
var tileColors = []string{
	"236", // empty
	"230", // 2
	"229", // 4
	"215", // 8
	"209", // 16
	"203", // 32
	"196", // 64
	"227", // 128
	"226", // 256
	"220", // 512
	"214", // 1024
	"208", // 2048
	"93",  // 4096 and beyond
}

type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
	board  lipgloss.Style
	tile   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1),
		status: r.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1),
		help: r.NewStyle().
			Foreground(lipgloss.Color("241")),
		board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		tile: r.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Bold(true),
	}
}

// tileStyle returns the style for a tile with the given exponent.
func (s styles) tileStyle(exp uint8) lipgloss.Style {
	idx := min(int(exp), len(tileColors)-1)
	fg := lipgloss.Color("235")
	if exp == 0 || exp > 6 {
		fg = lipgloss.Color("255")
	}
	return s.tile.Background(lipgloss.Color(tileColors[idx])).Foreground(fg)
}

// renderBoard draws the grid as coloured tiles inside a rounded border.
func renderBoard(s styles, g game.Grid) string {
	rows := make([]string, game.Size)
	for r := range game.Size {
		cells := make([]string, game.Size)
		for c := range game.Size {
			label := ""
			if tile := g.Tile(r, c); tile != 0 {
				label = strconv.Itoa(tile)
			}
			cells[c] = s.tileStyle(g.At(r, c)).Render(label)
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return s.board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// statusLine summarises the session below the board. A negative record
// means there is no history to compare against.
func statusLine(snap game.Snapshot, record int) string {
	line := fmt.Sprintf("moves %d  ·  best %d", snap.Moves, snap.MaxTile)
	if record >= 0 {
		line += fmt.Sprintf("  ·  record %d", max(record, snap.MaxTile))
	}
	return line + "  ·  " + game.LegalLine(snap.Legal)
}

// joinLines replaces the "\n" line endings of s with sep.
func joinLines(s, sep string) string {
	if sep == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", sep)
}
