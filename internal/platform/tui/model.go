package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/games/blocks"
	"github.com/vovakirdan/tetra/internal/registry"
	"github.com/vovakirdan/tetra/internal/storage"
)

// footerHeight is the number of rows below the game reserved for help.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(screenW, screenH int)
}

// Model is the Bubble Tea model that runs one game, either from the
// keyboard or from a recorded input log.
type Model struct {
	game       registry.Game
	player     *blocks.Player // Non-nil in replay mode
	replayID   int64
	loop       int64 // Tick loop this model answers to
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	paused     bool // Replay pause; live games pause inside the game
	saved      bool // Whether the current game has been stored
	savedID    int64
}

// NewModel creates a model that plays the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		loop:       newLoopID(),
	}
}

// NewReplayModel creates a model that replays a stored game.
func NewReplayModel(entry storage.GameEntry, cfg core.RuntimeConfig) (Model, error) {
	player, err := blocks.NewPlayer(entry.Recording, cfg.ScreenW, gameHeight(cfg.ScreenH))
	if err != nil {
		return Model{}, err
	}

	m := NewModel(player.Game(), nil, cfg)
	m.player = player
	m.replayID = entry.ID
	m.gameState = player.Game().State()
	return m, nil
}

func gameHeight(screenH int) int {
	return core.Max(0, screenH-footerHeight)
}

// gameConfig returns the runtime config with the footer row taken out.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Replays are reset when the player is created
	if m.player == nil {
		m.game.Reset(m.gameConfig())
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.saveRecording()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Leaving a live game needs it paused or over first
		if m.player == nil && !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.saveRecording()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.player != nil {
		return m.handleReplayKey(action)
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleReplayKey handles the few keys a replay understands.
func (m Model) handleReplayKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		player, err := blocks.NewPlayer(m.player.Recording(), m.config.ScreenW, gameHeight(m.config.ScreenH))
		if err == nil {
			m.player = player
			m.game = player.Game()
			m.paused = false
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver && m.player == nil {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.player != nil {
		if !m.paused {
			m.player.Step()
		}
		m.gameState = m.game.State()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.saved = false
		m.savedID = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Store the game on game over (once)
	if m.gameState.GameOver {
		m.saveRecording()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRecording stores the current game for later replay, once per game.
// Games that never simulated a tick are not stored.
func (m *Model) saveRecording() {
	if m.saved || m.store == nil || m.player != nil {
		return
	}
	rec, ok := m.game.(registry.Recorder)
	if !ok {
		return
	}

	r := rec.Recording()
	if r.Ticks == 0 {
		return
	}

	// Best-effort save, game continues regardless
	if id, err := m.store.SaveGame(r); err == nil {
		m.savedID = id
	}
	m.saved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetra", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// footer returns the help line shown under the game.
func (m Model) footer() string {
	if m.player != nil {
		status := fmt.Sprintf("replay #%d  tick %d/%d", m.replayID, m.player.Tick(), m.player.Recording().Ticks)
		if m.player.Done() {
			status += "  (end)"
		} else if m.paused {
			status += "  (paused)"
		}
		return footerStyle.Render(status + "  •  p pause • r restart • esc back • q quit")
	}

	if m.gameState.GameOver && m.savedID > 0 {
		return footerStyle.Render(fmt.Sprintf("saved as game #%d  •  r restart • esc menu • q quit", m.savedID))
	}
	return footerStyle.Render(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in its own Bubble Tea program.
// It returns true if the player asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(game, store, cfg)
	model.standalone = true
	return runProgram(model)
}

// RunReplay replays a stored game in its own Bubble Tea program.
func RunReplay(entry storage.GameEntry, cfg core.RuntimeConfig) (back bool, err error) {
	model, err := NewReplayModel(entry, cfg)
	if err != nil {
		return false, err
	}
	model.standalone = true
	return runProgram(model)
}

func runProgram(model Model) (bool, error) {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
