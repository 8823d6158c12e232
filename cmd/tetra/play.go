package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/games/blocks"
	"github.com/vovakirdan/tetra/internal/platform/tui"
	"github.com/vovakirdan/tetra/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: blocks).

Controls:
  Left/Right or A/D  - Move
  Up/W/X             - Rotate clockwise
  Down/S             - Soft drop
  Space              - Hard drop
  P                  - Pause
  R                  - Restart (after game over)
  Esc/B              - Leave (while paused or after game over)
  Ctrl+S             - Screenshot to ~/.tetra/screenshots
  Q/Ctrl+C           - Quit

Variants:
  blocks         - next piece from the configured randomizer (7-bag by default)
  blocks_random  - every piece drawn uniformly at random

Examples:
  tetra play
  tetra play blocks_random
  tetra play --seed 42
  tetra play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := blocks.IDStandard
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetra list' to see available variants.")
		os.Exit(1)
	}

	if err := checkConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
