package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/storage"
)

// Recorder persists finished games and reports the best tile on record.
// *storage.Store implements it.
type Recorder interface {
	SaveResult(r storage.Result) (storage.Result, error)
	BestTile() (int, error)
}

// Final describes how a game ended. It is filled in once, when the session
// reaches a terminal outcome.
type Final struct {
	Done    bool
	Grid    game.Grid
	Outcome game.Outcome
	Moves   int
	Result  storage.Result // Zero unless the result was saved
	Record  bool           // The game beat the best tile on record
}

// Report returns the final board followed by the outcome message, with
// lines joined by sep.
func (f *Final) Report(sep string) string {
	return joinLines(game.Render(f.Grid)+f.Outcome.Message(), sep) + sep
}

// Options configures a game model.
type Options struct {
	Origin   string             // tui, ssh:<user>
	Recorder Recorder           // nil disables history
	Logger   *log.Logger        // nil discards logs
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Final    *Final             // Shared with the caller; allocated when nil
}

// statusMsg asks the model to check for a terminal outcome.
type statusMsg struct{}

// Model is the Bubble Tea model for one game of 2048.
type Model struct {
	session   *game.Session
	sessionID string
	keys      KeyMap
	help      help.Model
	styles    styles
	opts      Options
	record    int // Best tile from earlier games, -1 without history
	width     int
	height    int
}

// NewModel creates a model driving the given session.
func NewModel(session *game.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Final == nil {
		opts.Final = &Final{}
	}

	record := -1
	if opts.Recorder != nil {
		best, err := opts.Recorder.BestTile()
		if err != nil {
			opts.Logger.Warn("could not load best tile", "error", err)
		} else {
			record = best
		}
	}

	return Model{
		session:   session,
		sessionID: uuid.NewString(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    newStyles(opts.Renderer),
		opts:      opts,
		record:    record,
	}
}

// Init checks whether the starting board is already decided.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return statusMsg{} }
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Resizing only redraws; the board is untouched.
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusMsg:
		if o := m.session.Status(); o.Terminal() {
			return m.finish(o)
		}
	}

	return m, nil
}

// handleKey feeds one key press to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	outcome, changed := m.session.Handle(game.EventFor(action))
	if changed {
		m.opts.Logger.Debug("move", "session", m.sessionID, "action", action, "moves", m.session.Moves())
	}
	if outcome.Terminal() {
		return m.finish(outcome)
	}
	return m, nil
}

// finish records the outcome once and stops the program.
func (m Model) finish(outcome game.Outcome) (tea.Model, tea.Cmd) {
	final := m.opts.Final
	if final.Done {
		return m, tea.Quit
	}

	grid := m.session.Grid()
	final.Done = true
	final.Grid = grid
	final.Outcome = outcome
	final.Moves = m.session.Moves()

	logger := m.opts.Logger.With("session", m.sessionID, "origin", m.opts.Origin)
	logger.Info("game finished",
		"outcome", outcome,
		"max_tile", grid.MaxTile(),
		"moves", final.Moves,
	)
	if m.record >= 0 && grid.MaxTile() > m.record {
		final.Record = true
		logger.Info("new best tile", "previous", m.record, "max_tile", grid.MaxTile())
	}

	if m.opts.Recorder != nil {
		saved, err := m.opts.Recorder.SaveResult(storage.Result{
			SessionID: m.sessionID,
			Outcome:   outcome.String(),
			MaxTile:   grid.MaxTile(),
			Moves:     final.Moves,
			Origin:    m.opts.Origin,
		})
		if err != nil {
			logger.Warn("could not save result", "error", err)
		} else {
			final.Result = saved
		}
	}

	return m, tea.Quit
}

// Final returns the shared end-of-game record.
func (m Model) Final() *Final {
	return m.opts.Final
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.opts.Final.Done {
		return ""
	}

	snap := m.session.Snapshot()
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render("2048"),
		renderBoard(m.styles, snap.Grid),
		m.styles.status.Render(statusLine(snap, m.record)),
		m.styles.help.Render(m.help.View(m.keys)),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for the session and blocks until the
// game ends.
func Run(session *game.Session, opts Options) (*Final, error) {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return model.Final(), err
	}
	return model.Final(), nil
}
