// term2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	term2048 [play]          - Play a game (Bubble Tea UI)
//	term2048 play --plain    - Play a game on the raw terminal
//	term2048 serve           - Start SSH server for remote play
//	term2048 history         - Show recent results and statistics
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.term2048/config.yaml, ./configs/term2048.yaml)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set results database path
//	--log-level <lvl>   - debug, info, warn or error
//	--no-history        - Do not record results
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagDBPath    string
	flagLogLevel  string
	flagNoHistory bool
)

var (
	appConfig config.Config
	logger    = log.NewWithOptions(os.Stderr, log.Options{Prefix: "term2048"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "Play 2048 in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles with the arrow keys or WASD. Equal tiles that collide
merge into their sum. Reach 2048 to win; run out of moves and you lose.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  history  - View recent results and statistics

Examples:
  term2048
  term2048 play --plain
  term2048 serve --ssh :2222
  term2048 history --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record results")

	// Bare "term2048" plays, so it takes the play flags too.
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the raw terminal instead of the Bubble Tea UI")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads the configuration, applies flag overrides and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoHistory {
		cfg.Storage.Enabled = false
	}
	if err := cfg.ExpandPaths(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger.SetLevel(cfg.LogLevel())
	logger.SetOutput(cmd.ErrOrStderr())
	logger.Debug("configuration loaded", "db", cfg.Storage.DBPath, "history", cfg.Storage.Enabled)
	return nil
}

// openStore opens the results database. Failures are logged and yield a nil
// store: games still run without history.
func openStore() *storage.Store {
	if !appConfig.Storage.Enabled {
		return nil
	}
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}

// recorderFor avoids wrapping a nil store in a non-nil interface.
func recorderFor(store *storage.Store) tui.Recorder {
	if store == nil {
		return nil
	}
	return store
}
