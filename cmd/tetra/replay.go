package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/games/blocks"
	"github.com/vovakirdan/tetra/internal/platform/tui"
	"github.com/vovakirdan/tetra/internal/storage"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a stored game",
	Long: `Replay a stored game from its seed and input log.

The game number is shown by 'tetra history' and in the history browser.
With --headless the game is simulated without a terminal UI and the
final board is printed; the command fails if the result does not match
what was recorded.

Controls:
  P      - Pause
  R      - Restart the replay
  Esc/B  - Leave
  Q      - Quit

Examples:
  tetra replay 12
  tetra replay 12 --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Simulate without UI and print the final board")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid game number %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	entry, err := store.GameByID(id)
	store.Close()
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no game #%d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'tetra history' to see stored games.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	if flagHeadless {
		runHeadless(entry)
		return
	}

	if _, err := tui.RunReplay(entry, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(entry storage.GameEntry) {
	snap, err := blocks.Replay(entry.Recording)
	if err != nil && !errors.Is(err, blocks.ErrReplayDiverged) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Game #%d (%s, seed %d)\n", entry.ID, entry.Recording.GameID, entry.Recording.Seed)
	fmt.Println()
	fmt.Println(snap.Engine.Field)
	fmt.Println()
	fmt.Printf("Tick: %d  Lines: %d  Pieces: %d  State: %s\n",
		snap.Tick, snap.Engine.Lines, snap.Engine.Pieces, snap.State)

	if err != nil {
		logger.Error("replay does not match the recording", "error", err)
		os.Exit(1)
	}
}
