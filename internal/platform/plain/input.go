package plain

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
)

// escDelay is how long a lone ESC waits for the rest of a sequence before it
// is taken as a key press of its own.
const escDelay = 25 * time.Millisecond

// Input is a game.InputSource fed by a reader goroutine and, on platforms
// that have it, terminal resize signals.
type Input struct {
	chunks chan chunk
	resize chan os.Signal
	done   chan struct{}

	// Owned by the goroutine calling Next.
	dec     Decoder
	queue   []core.Action
	readErr error
}

// chunk carries either raw bytes or the error that ended reading, so the
// error is never seen before the bytes read ahead of it.
type chunk struct {
	data []byte
	err  error
}

// NewInput starts reading keys from r. Call Close to stop listening for
// resize signals; the reader goroutine exits when r returns an error.
func NewInput(r io.Reader) *Input {
	in := &Input{
		chunks: make(chan chunk, 16),
		resize: make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
	notifyResize(in.resize)
	go in.readLoop(r)
	return in
}

// readLoop is the single producer of raw input.
func (in *Input) readLoop(r io.Reader) {
	for {
		buf := make([]byte, 64)
		n, err := r.Read(buf)
		if n > 0 {
			if !in.send(chunk{data: buf[:n]}) {
				return
			}
		}
		if err != nil {
			in.send(chunk{err: err})
			return
		}
	}
}

func (in *Input) send(c chunk) bool {
	select {
	case in.chunks <- c:
		return true
	case <-in.done:
		return false
	}
}

// Next blocks until the next event arrives or ctx is cancelled.
func (in *Input) Next(ctx context.Context) (game.Event, error) {
	for {
		if len(in.queue) > 0 {
			a := in.queue[0]
			in.queue = in.queue[1:]
			if ev := game.EventFor(a); ev.Kind != game.EventNone {
				return ev, nil
			}
			continue
		}
		if in.readErr != nil {
			return game.Event{}, in.readErr
		}

		ev, ok, err := in.wait(ctx)
		if err != nil || ok {
			return ev, err
		}
	}
}

// wait blocks for one input source. It returns ok when it produced an
// event directly; decoded keys go to the queue instead.
func (in *Input) wait(ctx context.Context) (ev game.Event, ok bool, err error) {
	var escTimeout <-chan time.Time
	if in.dec.PendingEsc() {
		timer := time.NewTimer(escDelay)
		defer timer.Stop()
		escTimeout = timer.C
	}

	select {
	case <-ctx.Done():
		return game.Event{}, false, ctx.Err()
	case <-in.resize:
		return game.EventFor(core.ActionRedraw), true, nil
	case c := <-in.chunks:
		if len(c.data) > 0 {
			in.queue = append(in.queue, in.dec.Feed(c.data)...)
		}
		in.readErr = c.err
	case <-escTimeout:
		// Nothing followed the ESC: it was a key press of its own.
		in.dec.Flush()
	}
	return game.Event{}, false, nil
}

// Close stops signal delivery and releases the reader goroutine once its
// current read returns.
func (in *Input) Close() {
	signal.Stop(in.resize)
	close(in.done)
}
