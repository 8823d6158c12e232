package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/games/blocks"
	"github.com/vovakirdan/tetra/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 11}
}

// update applies a message and unwraps the returned model.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{Loop: m.loop})
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, want %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestModelTicksDriveTheGame(t *testing.T) {
	game := blocks.New()
	m := NewModel(game, nil, testConfig())
	m.Init()

	m = tick(t, m)
	m = tick(t, m)
	if got := game.Snapshot().Tick; got != 2 {
		t.Fatalf("tick = %d, want 2", got)
	}

	// A tick from another loop is ignored
	m = update(t, m, TickMsg{Loop: m.loop + 1000})
	if got := game.Snapshot().Tick; got != 2 {
		t.Errorf("stale tick was simulated, tick = %d", got)
	}

	// Keys only take effect on the next tick
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	tick(t, m)
	inputs := game.Recording().Inputs
	if len(inputs) != 1 || inputs[0] != (core.InputEvent{Tick: 3, Action: core.ActionLeft}) {
		t.Errorf("inputs = %+v, want left at tick 3", inputs)
	}
}

func TestModelBackNeedsPause(t *testing.T) {
	m := NewModel(blocks.New(), nil, testConfig())
	m.Init()
	m = tick(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelStoresGameOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := blocks.New()
	m := NewModel(game, store, testConfig())
	m.Init()
	for range 10 {
		m = tick(t, m)
	}

	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	games, err := store.RecentGames("", 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("stored %d games, want 1", len(games))
	}
	if games[0].Recording.Ticks != 10 {
		t.Errorf("stored ticks = %d, want 10", games[0].Recording.Ticks)
	}
}

func TestReplayModelReproducesGame(t *testing.T) {
	game := blocks.New()
	m := NewModel(game, nil, testConfig())
	m.Init()
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyRight}, {Type: tea.KeyDown},
	}
	for i := range 600 {
		if i%7 == 0 {
			m = update(t, m, keys[(i/7)%len(keys)])
		}
		m = tick(t, m)
	}
	want := game.Snapshot()

	replay, err := NewReplayModel(storage.GameEntry{ID: 7, Recording: game.Recording()}, testConfig())
	if err != nil {
		t.Fatalf("NewReplayModel() failed: %v", err)
	}
	replay.Init()

	// Keyboard moves are ignored in a replay
	replay = update(t, replay, tea.KeyMsg{Type: tea.KeyLeft})
	for range 1000 {
		replay = tick(t, replay)
	}

	if !replay.player.Done() {
		t.Fatal("replay should be done")
	}
	got := replay.player.Game().Snapshot()
	if got.Tick != want.Tick || got.Engine != want.Engine {
		t.Errorf("replay ended at\n%+v\nwant\n%+v", got, want)
	}
}
