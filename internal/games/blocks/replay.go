package blocks

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tetra/internal/core"
)

// ErrReplayDiverged is returned when a replay ends in a different state than
// the one the recording claims.
var ErrReplayDiverged = errors.New("blocks: replay diverged from recording")

// Player feeds a recording's input log back into a game one tick at a time.
type Player struct {
	rec  core.Recording
	game *Game
	next int // Index of the next unread input event
}

// NewPlayer prepares a game for replaying rec on a screen of the given size.
func NewPlayer(rec core.Recording, screenW, screenH int) (*Player, error) {
	if rec.GameID != IDStandard && rec.GameID != IDRandom {
		return nil, fmt.Errorf("blocks: cannot replay game %q", rec.GameID)
	}

	g := New()
	if rec.GameID == IDRandom {
		g = NewRandom()
	}
	g.ResetFromRecording(rec, core.RuntimeConfig{ScreenW: screenW, ScreenH: screenH})
	return &Player{rec: rec, game: g}, nil
}

// Game returns the game being replayed, for rendering.
func (p *Player) Game() *Game {
	return p.game
}

// Done reports whether every recorded tick has been simulated.
func (p *Player) Done() bool {
	return p.game.tick >= p.rec.Ticks || p.game.engine.IsGameOver()
}

// Step simulates one recorded tick. It is a no-op once Done.
func (p *Player) Step() {
	if p.Done() {
		return
	}
	actions, next := p.rec.InputsAt(p.game.tick+1, p.next)
	p.next = next

	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	p.game.Step(in)
}

// Replay re-simulates a recording headlessly and returns the final snapshot.
// The screen size only has to fit the board; it does not affect the outcome.
func Replay(rec core.Recording) (Snapshot, error) {
	p, err := NewPlayer(rec, 200, 200)
	if err != nil {
		return Snapshot{}, err
	}
	if p.game.tooSmall {
		return Snapshot{}, fmt.Errorf("blocks: playfield %dx%d too large to replay", rec.Rows, rec.Columns)
	}

	for !p.Done() {
		p.Step()
	}

	snap := p.game.Snapshot()
	stats := snap.Engine
	if snap.Tick != rec.Ticks || stats.Lines != rec.Lines || stats.Pieces != rec.Pieces || stats.GameOver != rec.GameOver {
		return snap, fmt.Errorf("%w: tick %d lines %d pieces %d, recorded tick %d lines %d pieces %d",
			ErrReplayDiverged, snap.Tick, stats.Lines, stats.Pieces, rec.Ticks, rec.Lines, rec.Pieces)
	}
	return snap, nil
}

// Tick returns the number of ticks replayed so far.
func (p *Player) Tick() uint64 {
	return p.game.tick
}

// Recording returns the recording being replayed.
func (p *Player) Recording() core.Recording {
	return p.rec
}
