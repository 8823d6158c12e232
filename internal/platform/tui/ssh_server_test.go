package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetra/internal/games/blocks"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return out
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig())
	m.Init()

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatalf("view = %v, want game", m.view)
	}
	if got := m.game.game.ID(); got != blocks.IDStandard {
		t.Errorf("started %q, want %q", got, blocks.IDStandard)
	}

	// Pause, let the pause frame land, then leave
	m = updateSession(t, m, runeKey('p'))
	m = updateSession(t, m, TickMsg{Loop: m.game.loop})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || m.game != nil {
		t.Fatalf("view = %v, want menu after back", m.view)
	}
	if m.quitting {
		t.Error("back should not end the session")
	}
}

func TestSessionHistoryAndQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig())
	m.Init()

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewHistory {
		t.Fatalf("view = %v, want history", m.view)
	}
	if m.View() == "" {
		t.Error("history view should render without a store")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v, want menu", m.view)
	}

	m = updateSession(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
}
