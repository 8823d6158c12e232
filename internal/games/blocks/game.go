// Package blocks runs the falling-block engine as an arcade game: it turns
// platform ticks into gravity, maps actions to engine moves, logs input for
// replay and renders the playfield into a screen buffer.
package blocks

import (
	"time"

	"github.com/vovakirdan/tetra/internal/config"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/registry"
	"github.com/vovakirdan/tetra/internal/tetris"
)

// Mode selects the next-piece policy of a registered variant.
type Mode string

const (
	ModeStandard Mode = "standard" // randomizer from config (bag by default)
	ModeRandom   Mode = "random"   // uniform random regardless of config
)

// Game IDs used by the registry and the history store.
const (
	IDStandard = "blocks"
	IDRandom   = "blocks_random"
)

// actionOrder is the order in which same-tick actions reach the engine.
// Recording and replay both rely on it.
var actionOrder = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionRotate,
	core.ActionSoftDrop,
	core.ActionHardDrop,
}

// Game implements registry.Game around a tetris.Engine.
type Game struct {
	mode   Mode
	cfg    config.BlocksConfig
	engine *tetris.Engine

	seed     int64
	tickRate int
	tick     uint64 // Simulated ticks; paused ticks are not counted

	gravityTicks   int // Ticks between automatic drops
	gravityCounter int

	inputs []core.InputEvent

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets a custom config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game that uses the configured randomizer.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewRandom creates a game that always uses the uniform randomizer.
func NewRandom() *Game {
	return &Game{mode: ModeRandom}
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDRandom, func() registry.Game {
		return NewRandom()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return IDRandom
	}
	return IDStandard
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Blocks (Random)"
	}
	return "Blocks"
}

// Reset loads the config and starts a new game.
// A config that fails to load falls back to the built-in defaults.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadBlocks(configPath)
	if err != nil {
		gameCfg = config.DefaultBlocksConfig()
	}
	if g.mode == ModeRandom {
		gameCfg.Pieces.Randomizer = tetris.PolicyUniform
	}
	g.start(gameCfg, cfg)
}

// ResetFromRecording starts a game with the settings of a recording, so
// replaying its input log reproduces the recorded run.
func (g *Game) ResetFromRecording(rec core.Recording, cfg core.RuntimeConfig) {
	gameCfg := config.DefaultBlocksConfig()
	gameCfg.Playfield.Rows = rec.Rows
	gameCfg.Playfield.Columns = rec.Columns
	gameCfg.Timing.GravityMS = rec.GravityMS
	gameCfg.Pieces.Randomizer = rec.Randomizer

	cfg.Seed = rec.Seed
	cfg.TickRate = rec.TickRate
	g.start(gameCfg, cfg)
}

func (g *Game) start(gameCfg config.BlocksConfig, cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	r, err := tetris.NewRandomizer(gameCfg.Pieces.Randomizer, cfg.Seed)
	if err != nil {
		gameCfg.Pieces.Randomizer = tetris.PolicyBag
		r = tetris.NewBag(cfg.Seed)
	}

	g.cfg = gameCfg
	g.engine = tetris.New(tetris.Config{
		Rows:    gameCfg.Playfield.Rows,
		Columns: gameCfg.Playfield.Columns,
	}, r)

	g.seed = cfg.Seed
	g.tickRate = cfg.TickRate
	g.tick = 0
	g.gravityTicks = core.Max(1, int(gameCfg.Gravity()*time.Duration(cfg.TickRate)/time.Second))
	g.gravityCounter = 0
	g.inputs = g.inputs[:0]
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.checkScreenSize()
}

// Resize adapts to a new screen size without restarting the game.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.checkScreenSize()
}

// Step advances the game by one tick: player actions first, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.engine.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	// A pause toggle consumes the frame so neither edge simulates a tick
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	for _, a := range actionOrder {
		if !in.Has(a) || g.engine.IsGameOver() {
			continue
		}
		g.apply(a)
	}

	// Gravity: the engine owns no timer, so the tick counter drives it
	if !g.engine.IsGameOver() {
		g.gravityCounter++
		if g.gravityCounter >= g.gravityTicks {
			g.gravityCounter = 0
			g.engine.MoveDown()
		}
	}

	return core.StepResult{State: g.State()}
}

// apply logs an action and forwards it to the engine.
// Soft and hard drops restart the gravity countdown.
func (g *Game) apply(a core.Action) {
	g.inputs = append(g.inputs, core.InputEvent{Tick: g.tick, Action: a})

	switch a {
	case core.ActionLeft:
		g.engine.MoveLeft()
	case core.ActionRight:
		g.engine.MoveRight()
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionSoftDrop:
		g.engine.MoveDown()
		g.gravityCounter = 0
	case core.ActionHardDrop:
		g.engine.DropDown()
		g.gravityCounter = 0
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	stats := g.engine.Stats()
	return core.GameState{
		Lines:    stats.Lines,
		Pieces:   stats.Pieces,
		GameOver: g.engine.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine for read-only inspection.
func (g *Game) Engine() *tetris.Engine {
	return g.engine
}

// Recording returns the seed, settings and input log of the current game.
func (g *Game) Recording() core.Recording {
	stats := g.engine.Stats()
	return core.Recording{
		GameID:     g.ID(),
		Seed:       g.seed,
		TickRate:   g.tickRate,
		Rows:       g.engine.Rows(),
		Columns:    g.engine.Columns(),
		GravityMS:  g.cfg.Timing.GravityMS,
		Randomizer: g.cfg.Pieces.Randomizer,
		Ticks:      g.tick,
		Pieces:     stats.Pieces,
		Lines:      stats.Lines,
		GameOver:   g.engine.IsGameOver(),
		Inputs:     append([]core.InputEvent(nil), g.inputs...),
	}
}

var _ registry.Recorder = (*Game)(nil)
