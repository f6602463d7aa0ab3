// trashtoss is a physics toss game: drag an item, throw it into the bin,
// and watch out for the cat.
//
// Usage:
//
//	trashtoss list              - List available games
//	trashtoss play              - Play in this terminal
//	trashtoss serve             - Start SSH server for remote play
//	trashtoss web               - Serve the game to browsers
//	trashtoss scores            - Show the run history
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.trashtoss/scores.db)
//	--config <path>    - Load tuning from a YAML file
//	--log-file <path>  - Write logs to a file
//
// Environment (also read from .env): TRASHTOSS_DB, TRASHTOSS_CONFIG,
// TRASHTOSS_LOG_LEVEL.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-toss/internal/games/trashtoss"
	"github.com/vovakirdan/trash-toss/internal/storage"
)

const defaultDBPath = "~/.trashtoss/scores.db"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trashtoss",
	Short: "Trash Toss - throw trash into the bin, mind the cat",
	Long: `Trash Toss is a small physics game. Drag the item with the mouse,
release to throw it, and land it in the bin. Paper floats and scores 1,
a snack is worth 2, the bouncy mouse toy is worth 5 but wakes the cat,
and a confetti ball (3) follows every successful shot.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers
  scores   - View the run history

Examples:
  trashtoss play
  trashtoss play --seed 42 --config ./tuning.yaml
  trashtoss serve --ssh :2222
  trashtoss web --addr :8080
  trashtoss scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env and lets environment variables fill flags the user did
// not set explicitly.
func setup(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // .env is optional
	godotenv.Load()

	flags := cmd.Flags()
	if v := os.Getenv("TRASHTOSS_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("TRASHTOSS_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	trashtoss.SetConfigPath(flagConfig)
	return nil
}

// newLogger builds the logger for a command. Terminal play writes nowhere
// unless --log-file is given, since stderr shares the screen with the game.
func newLogger(stderr bool) (*log.Logger, error) {
	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	case stderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "trashtoss",
	})
	if lvl := os.Getenv("TRASHTOSS_LOG_LEVEL"); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("TRASHTOSS_LOG_LEVEL: %w", err)
		}
		logger.SetLevel(level)
	}

	trashtoss.SetLogger(logger)
	return logger, nil
}

// openStore opens the score database and points the best-score key at it.
// A failure is logged and play continues without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	trashtoss.SetStore(store.Settings())
	return store
}
