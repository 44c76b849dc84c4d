package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing right away. The game defaults to invaders.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P                - Pause
  R                - Restart
  Esc/B            - Back (when paused or game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot to ~/.arcade/screenshots

Examples:
  invaders play
  invaders play --seed 42
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	res, err := tui.Run(game, scoreStore(store), runtimeConfig(), sessionOptions())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if res.State.GameOver {
		fmt.Printf("Game over. Score %d, level %d.\n", res.State.Score, res.State.Level)
	}
	return nil
}
