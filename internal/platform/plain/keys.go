// Package plain is a minimal raw-terminal front end: it reads key presses
// from a file descriptor in raw mode and redraws the whole board as text.
package plain

import "github.com/vovakirdan/term2048/internal/core"

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// Decoder turns raw terminal bytes into actions. It buffers incomplete
// escape sequences across calls to Feed.
type Decoder struct {
	pending []byte
}

// Feed decodes p and returns the recognised actions in order.
// Unrecognised bytes and escape sequences are dropped.
func (d *Decoder) Feed(p []byte) []core.Action {
	buf := append(d.pending, p...)
	d.pending = nil

	var actions []core.Action
	for i := 0; i < len(buf); {
		b := buf[i]
		if b != keyEsc {
			if a := byteAction(b); a != core.ActionNone {
				actions = append(actions, a)
			}
			i++
			continue
		}

		n, a, complete := decodeEscape(buf[i:])
		if !complete {
			d.pending = append(d.pending, buf[i:]...)
			break
		}
		if a != core.ActionNone {
			actions = append(actions, a)
		}
		i += n
	}
	return actions
}

// Flush drops a buffered partial sequence.
func (d *Decoder) Flush() {
	d.pending = nil
}

// PendingEsc reports whether the only buffered byte is an ESC, which is
// either a lone ESC key press or the start of a sequence still in flight.
func (d *Decoder) PendingEsc() bool {
	return len(d.pending) == 1 && d.pending[0] == keyEsc
}

// byteAction maps a single byte key. Only lowercase letters are bound:
// uppercase A-D are the final bytes of arrow sequences.
func byteAction(b byte) core.Action {
	switch b {
	case 'w':
		return core.ActionUp
	case 'a':
		return core.ActionLeft
	case 's':
		return core.ActionDown
	case 'd':
		return core.ActionRight
	case 'q', keyCtrlC:
		return core.ActionQuit
	}
	return core.ActionNone
}

// decodeEscape decodes the escape sequence at the start of buf. It reports
// the number of bytes consumed and whether the sequence was complete.
func decodeEscape(buf []byte) (n int, a core.Action, complete bool) {
	if len(buf) < 2 {
		return 0, core.ActionNone, false
	}

	switch buf[1] {
	case '[', 'O': // CSI, or SS3 in application cursor mode
	default:
		// ESC followed by something else: treat ESC as its own key.
		return 1, core.ActionNone, true
	}

	// Parameters and intermediates run until a final byte in 0x40..0x7e.
	for i := 2; i < len(buf); i++ {
		c := buf[i]
		if c < 0x40 || c > 0x7e {
			continue
		}
		if i == 2 {
			return i + 1, arrowAction(c), true
		}
		return i + 1, core.ActionNone, true
	}
	return 0, core.ActionNone, false
}

func arrowAction(final byte) core.Action {
	switch final {
	case 'A':
		return core.ActionUp
	case 'B':
		return core.ActionDown
	case 'C':
		return core.ActionRight
	case 'D':
		return core.ActionLeft
	}
	return core.ActionNone
}
