package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/platform/tui"
	"github.com/vovakirdan/trash-toss/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start playing in the terminal. Your terminal must report mouse events.

Controls:
  Drag item  - Aim (the dotted line previews the throw)
  Release    - Throw
  P/Esc      - Pause
  R          - Reset round and score
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  trashtoss play
  trashtoss play --seed 42
  trashtoss play --config ./tuning.yaml --log-file trashtoss.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// resolveGame returns the game named in args, or the default game.
func resolveGame(args []string) (string, error) {
	if len(args) == 0 {
		id, ok := registry.Default()
		if !ok {
			return "", fmt.Errorf("no games registered")
		}
		return id, nil
	}
	if !registry.Exists(args[0]) {
		return "", fmt.Errorf("unknown game %q (run 'trashtoss list' to see available games)", args[0])
	}
	return args[0], nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := resolveGame(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(false)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The store must be opened before the game so the best score loads from it
	var saver tui.ScoreSaver
	if store := openStore(logger); store != nil {
		defer store.Close()
		saver = store
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, saver, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
