package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent results and statistics",
	Long: `Display the most recent finished games and aggregate statistics.

Examples:
  term2048 history
  term2048 history --limit 50
  term2048 history --browse`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse results in an interactive table")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if flagBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(results, *stats, width, height)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "2048 History")
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'term2048' to record the first game!")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-6s  %-6s  %-6s  %s\n", "Date", "Result", "Best", "Moves", "Origin")
	fmt.Fprintf(out, "  %-16s  %-6s  %-6s  %-6s  %s\n", "----", "------", "----", "-----", "------")
	for _, r := range results {
		fmt.Fprintf(out, "  %-16s  %-6s  %-6d  %-6d  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Outcome, r.MaxTile, r.Moves, r.Origin)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.StatsLine(*stats))
	return nil
}
