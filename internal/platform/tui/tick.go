// Package tui provides the Bubble Tea front end: the game loop that drives
// gravity with ticks, key bindings, the menu, the history browser, replays
// and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetra/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that sent it, so a model ignores ticks still
// in flight from a game that has already been left.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopSeq atomic.Int64

// newLoopID returns a process-unique tick loop identifier.
func newLoopID() int64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
