// tetra is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetra list                  - List game variants
//	tetra play [variant]        - Play a variant (default: blocks)
//	tetra menu                  - Pick variants, browse history and replays
//	tetra serve                 - Start SSH server for remote play
//	tetra history [variant]     - Show recently played games
//	tetra replay <id>           - Replay a stored game
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.tetra/history.db)
//	--config <path>  - Use a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetra/internal/config"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/games/blocks"
	"github.com/vovakirdan/tetra/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

// logger reports non-fatal problems such as a missing database.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tetra",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra - falling blocks in your terminal",
	Long: `Tetra is a falling-block puzzle game for the terminal.

Every game is recorded (seed plus input log) so it can be replayed later.

Available commands:
  list     - Show game variants
  play     - Play a variant directly
  menu     - Interactive menu with history and replays
  serve    - Start SSH server for remote play
  history  - Show recently played games
  replay   - Replay a stored game

Examples:
  tetra play
  tetra play blocks_random --seed 42
  tetra menu
  tetra serve --ssh :2222
  tetra replay 12 --headless`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		blocks.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetra/history.db", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// checkConfig fails early on a broken --config instead of letting the game
// fall back to defaults silently.
func checkConfig() error {
	if _, err := config.LoadBlocks(flagConfig); err != nil {
		return err
	}
	return nil
}

// openStore opens the history database. A failure is only a warning: the
// game works without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database, games will not be saved", "error", err)
		return nil
	}
	return store
}
