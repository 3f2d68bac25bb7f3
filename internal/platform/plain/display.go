package plain

import (
	"fmt"
	"io"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
)

// ANSI control sequences.
const (
	clearScreen    = "\x1b[H\x1b[2J"
	enterAltScreen = "\x1b[?1049h\x1b[?25l"
	leaveAltScreen = "\x1b[?25h\x1b[?1049l"
)

// SizeFunc reports the current terminal size.
type SizeFunc func() (width, height int, err error)

// Display is a game.Display that redraws the full screen on every snapshot.
type Display struct {
	w      io.Writer
	size   SizeFunc
	screen *core.Screen
}

// NewDisplay creates a display writing to w. size may be nil, in which case
// the screen stays at the default size.
func NewDisplay(w io.Writer, size SizeFunc) *Display {
	cfg := core.DefaultConfig()
	return &Display{
		w:      w,
		size:   size,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
}

// Show draws the board, the legal moves and the key hint, centered.
func (d *Display) Show(snap game.Snapshot) error {
	if d.size != nil {
		if w, h, err := d.size(); err == nil && (w != d.screen.Width() || h != d.screen.Height()) {
			d.screen.Resize(w, h)
		}
	}

	d.screen.Clear()
	y := d.screen.DrawBlockCentered(1, game.Render(snap.Grid))
	d.screen.DrawTextCentered(y+1, game.LegalLine(snap.Legal))
	d.screen.DrawTextCentered(y+2, fmt.Sprintf("moves: %d  best: %d", snap.Moves, snap.MaxTile))
	d.screen.DrawTextCentered(y+4, game.HintLine)

	// Raw mode disables output post-processing, so lines end in CRLF.
	_, err := io.WriteString(d.w, clearScreen+d.screen.Frame("\r\n"))
	return err
}
