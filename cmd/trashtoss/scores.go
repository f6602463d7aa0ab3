package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trash-toss/internal/platform/tui"
	"github.com/vovakirdan/trash-toss/internal/registry"
	"github.com/vovakirdan/trash-toss/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the run history",
	Long: `Display recorded runs, best first. In a terminal this opens a
scrollable table; piped output (or --plain) prints a plain list.

Examples:
  trashtoss scores
  trashtoss scores --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := resolveGame(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	return printScores(os.Stdout, store, gameID, title, flagLimit)
}

// printScores writes the top runs as plain text.
func printScores(w io.Writer, source tui.ScoreSource, gameID, title string, limit int) error {
	scores, err := source.TopScores(gameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'trashtoss play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Binned", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-8d  %s\n", i+1, entry.Score, entry.Binned, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := source.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d   Runs: %d   Items binned: %d\n", stats.HighScore, stats.GamesCount, stats.TotalBinned)
	}
	return nil
}
