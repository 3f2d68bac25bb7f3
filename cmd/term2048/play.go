package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/plain"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD  - Slide tiles
  Q/Ctrl+C     - Quit

When the game ends the final board and the result are printed.

Examples:
  term2048 play
  term2048 play --plain
  term2048 play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the raw terminal instead of the Bubble Tea UI")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := runtimeConfig()
	session := game.NewSession(game.SpawnerFor(cfg))

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// The screen belongs to the game until it ends; logs are held back and
	// written once the terminal is restored.
	var held bytes.Buffer
	gameLogger := logger.With()
	gameLogger.SetOutput(&held)
	defer func() { cmd.ErrOrStderr().Write(held.Bytes()) }()

	logger.Debug("starting game", "seed", cfg.Seed, "plain", flagPlain, "width", cfg.ScreenW, "height", cfg.ScreenH)

	if flagPlain {
		return playPlain(cmd, session, store, gameLogger)
	}

	final, err := tui.Run(session, tui.Options{
		Origin:   "tui",
		Recorder: recorderFor(store),
		Logger:   gameLogger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if final.Done {
		fmt.Fprint(cmd.OutOrStdout(), final.Report("\n"))
	}
	return nil
}

// runtimeConfig combines the terminal size, the --seed flag and the loaded
// configuration.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.FourChance = appConfig.Game.FourChance
	return cfg
}

// playPlain runs the session on the raw terminal and records the result.
func playPlain(cmd *cobra.Command, session *game.Session, store *storage.Store, l *log.Logger) error {
	outcome, err := plain.Play(cmd.Context(), session, os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	grid := session.Grid()
	l.Info("game finished", "origin", "plain", "outcome", outcome, "max_tile", grid.MaxTile(), "moves", session.Moves())

	if store != nil {
		if _, err := store.SaveResult(storage.Result{
			Outcome: outcome.String(),
			MaxTile: grid.MaxTile(),
			Moves:   session.Moves(),
			Origin:  "plain",
		}); err != nil {
			l.Warn("could not save result", "error", err)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), game.Render(grid)+outcome.Message()+"\n")
	return nil
}
