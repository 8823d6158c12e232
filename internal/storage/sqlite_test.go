package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tetra/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecording(gameID string, lines int) core.Recording {
	return core.Recording{
		GameID:     gameID,
		Seed:       1234,
		TickRate:   60,
		Rows:       20,
		Columns:    10,
		GravityMS:  700,
		Randomizer: "bag",
		Ticks:      900,
		Pieces:     31,
		Lines:      lines,
		GameOver:   true,
		Inputs: []core.InputEvent{
			{Tick: 3, Action: core.ActionLeft},
			{Tick: 3, Action: core.ActionRotate},
			{Tick: 80, Action: core.ActionHardDrop},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	want := sampleRecording("blocks", 4)

	id, err := store.SaveGame(want)
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	entry, err := store.GameByID(id)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	got := entry.Recording

	if got.GameID != want.GameID || got.Seed != want.Seed || got.TickRate != want.TickRate {
		t.Errorf("header = %+v, want %+v", got, want)
	}
	if got.Rows != want.Rows || got.Columns != want.Columns || got.GravityMS != want.GravityMS || got.Randomizer != want.Randomizer {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
	if got.Ticks != want.Ticks || got.Pieces != want.Pieces || got.Lines != want.Lines || got.GameOver != want.GameOver {
		t.Errorf("outcome = %+v, want %+v", got, want)
	}
	if len(got.Inputs) != len(want.Inputs) {
		t.Fatalf("loaded %d inputs, want %d", len(got.Inputs), len(want.Inputs))
	}
	for i := range want.Inputs {
		if got.Inputs[i] != want.Inputs[i] {
			t.Errorf("input %d = %+v, want %+v", i, got.Inputs[i], want.Inputs[i])
		}
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreGameByIDNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GameByID(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("GameByID(42) error = %v, want ErrNotFound", err)
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	var ids []int64
	for i := range 5 {
		id, err := store.SaveGame(sampleRecording("blocks", i))
		if err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
		ids = append(ids, id)
	}
	if _, err := store.SaveGame(sampleRecording("blocks_random", 9)); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	tests := []struct {
		name   string
		gameID string
		limit  int
		want   int
	}{
		{"one variant", "blocks", 10, 5},
		{"limited", "blocks", 3, 3},
		{"all variants", "", 10, 6},
		{"other variant", "blocks_random", 10, 1},
		{"unknown", "snake", 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := store.RecentGames(tc.gameID, tc.limit)
			if err != nil {
				t.Fatalf("RecentGames() failed: %v", err)
			}
			if len(entries) != tc.want {
				t.Errorf("got %d entries, want %d", len(entries), tc.want)
			}
		})
	}

	// Newest first
	entries, err := store.RecentGames("blocks", 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if entries[0].ID != ids[len(ids)-1] {
		t.Errorf("first entry ID = %d, want newest %d", entries[0].ID, ids[len(ids)-1])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("blocks")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, lines := range []int{2, 7, 3} {
		if _, err := store.SaveGame(sampleRecording("blocks", lines)); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	stats, err := store.GameStats("blocks")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.TotalLines != 12 {
		t.Errorf("TotalLines = %d, want 12", stats.TotalLines)
	}
	if stats.TotalPieces != 93 {
		t.Errorf("TotalPieces = %d, want 93", stats.TotalPieces)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearGames(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"blocks", "blocks", "blocks_random"} {
		if _, err := store.SaveGame(sampleRecording(id, 1)); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	if err := store.ClearGames("blocks"); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	left, err := store.RecentGames("", 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(left) != 1 || left[0].Recording.GameID != "blocks_random" {
		t.Errorf("after clear: %+v", left)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
