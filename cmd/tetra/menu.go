package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/platform/tui"
	"github.com/vovakirdan/tetra/internal/registry"
	"github.com/vovakirdan/tetra/internal/storage"
)

var flagInline bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start tetra in interactive menu mode.

Pick a variant to play, or open the history to replay a stored game.
After a game ends you return to the menu; after a replay ends you
return to the history.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab/H        - History
  Q            - Quit

Examples:
  tetra menu
  tetra menu --fps 30
  tetra menu --db ./history.db
  tetra menu --inline`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagInline, "inline", false, "Run menu, games and history in a single program (the SSH flow)")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := checkConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	cfg := runtimeConfig()

	if flagInline {
		if err := tui.RunSession(store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			if !runHistoryLoop(store, cfg) {
				return
			}
			continue
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		back, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}

// runHistoryLoop shows the history browser and any replays picked from it.
// It returns false when the user quit instead of going back to the menu.
func runHistoryLoop(store *storage.Store, cfg core.RuntimeConfig) bool {
	for {
		result, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}

		if result.Replay == nil {
			return result.Back
		}

		back, err := tui.RunReplay(*result.Replay, cfg)
		if err != nil {
			logger.Warn("cannot replay game", "id", result.Replay.ID, "error", err)
			continue
		}
		if !back {
			return false
		}
	}
}
