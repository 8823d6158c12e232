package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/registry"
	"github.com/vovakirdan/tetra/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recently played games",
	Long: `Display the most recent stored games, newest first, with totals.

Without a variant every variant is listed. Use the game number with
'tetra replay' to watch a game again.

Examples:
  tetra history
  tetra history blocks_random --limit 20
  tetra history blocks --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored games instead of listing them")
}

func runHistory(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'tetra list' to see available variants.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			return
		}
		fmt.Println("History cleared.")
		return
	}

	games, err := store.RecentGames(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		return
	}

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetra play' to record the first one!")
		return
	}

	fmt.Printf("  %-6s  %-14s  %-6s  %-6s  %-7s  %-10s  %s\n", "#", "Variant", "Lines", "Pieces", "Time", "End", "Date")
	fmt.Printf("  %-6s  %-14s  %-6s  %-6s  %-7s  %-10s  %s\n", "-", "-------", "-----", "------", "----", "---", "----")
	for _, e := range games {
		rec := e.Recording
		end := "quit"
		if rec.GameOver {
			end = "topped out"
		}
		fmt.Printf("  %-6d  %-14s  %-6d  %-6d  %-7s  %-10s  %s\n",
			e.ID, rec.GameID, rec.Lines, rec.Pieces, gameTime(rec.Ticks, rec.TickRate), end,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Lines: %d  Pieces: %d\n",
			stats.GamesCount, stats.TotalLines, stats.TotalPieces)
	}
}

// gameTime formats a tick count as played time.
func gameTime(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		return "-"
	}
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return d.Round(time.Second).String()
}
