package plain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/game"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("plain: input is not a terminal")

// Terminal is a terminal switched to raw mode and the alternate screen.
type Terminal struct {
	out   io.Writer
	fd    int
	state *term.State
}

// OpenTerminal puts in into raw mode and switches out to the alternate screen.
func OpenTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("plain: cannot enter raw mode: %w", err)
	}

	if _, err := io.WriteString(out, enterAltScreen); err != nil {
		term.Restore(fd, state)
		return nil, fmt.Errorf("plain: cannot write to terminal: %w", err)
	}

	return &Terminal{out: out, fd: fd, state: state}, nil
}

// Size returns the current terminal size.
func (t *Terminal) Size() (width, height int, err error) {
	return term.GetSize(t.fd)
}

// Restore leaves the alternate screen and restores the previous mode.
func (t *Terminal) Restore() error {
	_, werr := io.WriteString(t.out, leaveAltScreen)
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("plain: cannot restore terminal: %w", err)
	}
	return werr
}

// Play runs the session on an interactive terminal until it ends. The
// terminal is restored before Play returns.
func Play(ctx context.Context, session *game.Session, in *os.File, out io.Writer) (outcome game.Outcome, err error) {
	t, err := OpenTerminal(in, out)
	if err != nil {
		return game.OutcomeContinue, err
	}
	defer func() {
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	input := NewInput(in)
	defer input.Close()

	return session.Run(ctx, input, NewDisplay(out, t.Size))
}
