package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/games/blocks"
	"github.com/vovakirdan/tetra/internal/storage"
)

func TestMenuShowsTotalsPerVariant(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, lines := range []int{2, 7} {
		rec := core.Recording{GameID: blocks.IDStandard, TickRate: 60, Rows: 20, Columns: 10,
			GravityMS: 700, Randomizer: "bag", Ticks: 100, Lines: lines}
		if _, err := store.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	view := m.View()

	if !strings.Contains(view, "(2 played, 9 lines)") {
		t.Errorf("menu should show games played and total lines, got:\n%s", view)
	}
	if strings.Contains(view, "best") {
		t.Errorf("menu should not rank games, got:\n%s", view)
	}
	if !strings.Contains(view, "History & replays") {
		t.Error("menu should offer the history browser when a store is open")
	}
}
