package game

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

// stuckGrid is full and has no equal neighbours.
var stuckGrid = Grid{
	{1, 2, 1, 2},
	{2, 1, 2, 1},
	{1, 2, 1, 2},
	{2, 1, 2, 1},
}

func nonZero(g Grid) int {
	return Size*Size - g.EmptyCells()
}

func TestNewSessionSeedsTwoTiles(t *testing.T) {
	s := NewSession(NewSpawner(3, DefaultFourChance))

	if n := nonZero(s.Grid()); n != 2 {
		t.Errorf("new session has %d tiles, want 2", n)
	}
	if s.Status() != OutcomeContinue {
		t.Errorf("new session Status() = %s, want continue", s.Status())
	}
	if s.Moves() != 0 {
		t.Errorf("new session Moves() = %d, want 0", s.Moves())
	}
}

func TestAcceptedMoveSpawnsOneTile(t *testing.T) {
	start := Grid{
		{1, 1, 0, 0},
		{0, 2, 0, 2},
		{0, 0, 0, 0},
		{3, 0, 0, 0},
	}

	for _, d := range start.LegalMoves() {
		t.Run(d.String(), func(t *testing.T) {
			s := NewSessionFromGrid(start, NewSpawner(8, DefaultFourChance))
			afterMove := start.Moved(d)

			outcome, changed := s.Handle(MoveEvent(d))
			if !changed {
				t.Fatal("legal move should change the grid")
			}
			if outcome != OutcomeContinue {
				t.Errorf("outcome = %s, want continue", outcome)
			}
			if got, want := nonZero(s.Grid()), nonZero(afterMove)+1; got != want {
				t.Errorf("tiles after spawn = %d, want %d", got, want)
			}
			if s.Moves() != 1 {
				t.Errorf("Moves() = %d, want 1", s.Moves())
			}
		})
	}
}

func TestIllegalMoveIgnored(t *testing.T) {
	start := Grid{{1, 2, 0, 0}}
	s := NewSessionFromGrid(start, NewSpawner(1, DefaultFourChance))

	outcome, changed := s.Handle(MoveEvent(DirLeft))
	if changed || outcome != OutcomeContinue {
		t.Errorf("Handle(left) = (%s, %v), want (continue, false)", outcome, changed)
	}
	if s.Grid() != start || s.Moves() != 0 {
		t.Error("illegal move must not touch the grid")
	}
}

func TestRedrawDoesNotConsumeTurn(t *testing.T) {
	start := Grid{{1, 0, 0, 0}}
	s := NewSessionFromGrid(start, NewSpawner(1, DefaultFourChance))

	if _, changed := s.Handle(Event{Kind: EventRedraw}); changed {
		t.Error("redraw should not change the grid")
	}
	if s.Grid() != start || s.Moves() != 0 {
		t.Error("redraw must not touch the grid")
	}
}

func TestQuitIsTerminal(t *testing.T) {
	s := NewSessionFromGrid(Grid{{1}}, NewSpawner(1, DefaultFourChance))

	if outcome, _ := s.Handle(EventFor(core.ActionQuit)); outcome != OutcomeQuit {
		t.Fatalf("Handle(quit) = %s, want quit", outcome)
	}
	if outcome, changed := s.Handle(MoveEvent(DirRight)); outcome != OutcomeQuit || changed {
		t.Errorf("move after quit = (%s, %v), want (quit, false)", outcome, changed)
	}
}

func TestStatusWinBeatsLoss(t *testing.T) {
	g := stuckGrid
	g[0][0] = WinExponent

	s := NewSessionFromGrid(g, NewSpawner(1, DefaultFourChance))
	if s.Status() != OutcomeWin {
		t.Errorf("Status() = %s, want win", s.Status())
	}
}

func TestStatusWinWithRoomLeft(t *testing.T) {
	s := NewSessionFromGrid(Grid{{0, 12}}, NewSpawner(1, DefaultFourChance))
	if s.Status() != OutcomeWin {
		t.Errorf("Status() = %s, want win", s.Status())
	}
}

func TestStatusLoss(t *testing.T) {
	s := NewSessionFromGrid(stuckGrid, NewSpawner(1, DefaultFourChance))
	if s.Status() != OutcomeLoss {
		t.Errorf("Status() = %s, want loss", s.Status())
	}

	mergeable := stuckGrid
	mergeable[3][3] = 2 // equal to its left neighbour
	s = NewSessionFromGrid(mergeable, NewSpawner(1, DefaultFourChance))
	if s.Status() != OutcomeContinue {
		t.Errorf("full grid with a merge: Status() = %s, want continue", s.Status())
	}
}

func TestMoveReachingWinIsWin(t *testing.T) {
	s := NewSessionFromGrid(Grid{{10, 10, 0, 0}}, NewSpawner(1, DefaultFourChance))

	outcome, changed := s.Handle(MoveEvent(DirLeft))
	if !changed || outcome != OutcomeWin {
		t.Errorf("Handle(left) = (%s, %v), want (win, true)", outcome, changed)
	}
}

func TestOutcomeMessages(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeWin:      "You win!",
		OutcomeLoss:     "You lose!",
		OutcomeQuit:     "quit",
		OutcomeContinue: "",
	}
	for o, want := range tests {
		if o.Message() != want {
			t.Errorf("%s.Message() = %q, want %q", o, o.Message(), want)
		}
	}
}

// scriptedInput replays a fixed list of events.
type scriptedInput struct {
	events []Event
	err    error
}

func (s *scriptedInput) Next(_ context.Context) (Event, error) {
	if len(s.events) == 0 {
		if s.err != nil {
			return Event{}, s.err
		}
		return Event{}, errors.New("script exhausted")
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

// recordingDisplay keeps every snapshot it was shown.
type recordingDisplay struct {
	shown []Snapshot
}

func (d *recordingDisplay) Show(snap Snapshot) error {
	d.shown = append(d.shown, snap)
	return nil
}

func TestRunLoop(t *testing.T) {
	start := Grid{{1, 0, 0, 0}}
	s := NewSessionFromGrid(start, NewSpawner(4, DefaultFourChance))

	in := &scriptedInput{events: []Event{
		{Kind: EventRedraw},
		MoveEvent(DirLeft), // illegal, ignored
		{Kind: EventNone},
		MoveEvent(DirRight),
		{Kind: EventQuit},
	}}
	out := &recordingDisplay{}

	outcome, err := s.Run(context.Background(), in, out)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if outcome != OutcomeQuit {
		t.Errorf("Run() = %s, want quit", outcome)
	}

	// initial frame, redraw, after the accepted move
	if len(out.shown) != 3 {
		t.Fatalf("display shown %d times, want 3", len(out.shown))
	}
	if out.shown[1].Grid != start {
		t.Error("redraw must show the unchanged grid")
	}
	if out.shown[2].Moves != 1 || out.shown[2].Grid.At(0, 3) != 1 {
		t.Errorf("after move snapshot = %+v", out.shown[2])
	}
	if s.Status() != OutcomeQuit {
		t.Errorf("Status() after quit = %s", s.Status())
	}
}

func TestRunEndsOnWin(t *testing.T) {
	s := NewSessionFromGrid(Grid{{10, 10, 0, 0}}, NewSpawner(4, DefaultFourChance))
	in := &scriptedInput{events: []Event{MoveEvent(DirLeft)}}
	out := &recordingDisplay{}

	outcome, err := s.Run(context.Background(), in, out)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if outcome != OutcomeWin {
		t.Errorf("Run() = %s, want win", outcome)
	}
	last := out.shown[len(out.shown)-1]
	if last.Outcome != OutcomeWin || last.MaxTile != 2048 {
		t.Errorf("final snapshot = %+v", last)
	}
}

func TestRunEndsOnLossWithoutInput(t *testing.T) {
	s := NewSessionFromGrid(stuckGrid, NewSpawner(4, DefaultFourChance))
	in := &scriptedInput{err: errors.New("input must not be read")}

	outcome, err := s.Run(context.Background(), in, &recordingDisplay{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if outcome != OutcomeLoss {
		t.Errorf("Run() = %s, want loss", outcome)
	}
}

func TestRunInputError(t *testing.T) {
	s := NewSessionFromGrid(Grid{{1}}, NewSpawner(4, DefaultFourChance))
	boom := errors.New("boom")

	_, err := s.Run(context.Background(), &scriptedInput{err: boom}, &recordingDisplay{})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped boom", err)
	}
}

func TestEventFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Event
	}{
		{core.ActionLeft, MoveEvent(DirLeft)},
		{core.ActionRight, MoveEvent(DirRight)},
		{core.ActionUp, MoveEvent(DirUp)},
		{core.ActionDown, MoveEvent(DirDown)},
		{core.ActionQuit, Event{Kind: EventQuit}},
		{core.ActionRedraw, Event{Kind: EventRedraw}},
		{core.ActionNone, Event{}},
	}
	for _, tt := range tests {
		if got := EventFor(tt.action); got != tt.want {
			t.Errorf("EventFor(%s) = %+v, want %+v", tt.action, got, tt.want)
		}
	}
}
