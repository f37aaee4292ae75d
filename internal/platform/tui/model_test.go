package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func newTestModel(t *testing.T) (Model, *invaders.Game) {
	t.Helper()
	game := invaders.New(config.DefaultInvadersConfig())
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m, game
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelAppliesInputOnTick(t *testing.T) {
	m, game := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	step(t, m, TickMsg{})

	ship, ok := game.Engine().Store().Ship()
	if !ok {
		t.Fatal("expected a ship")
	}
	if ship.Pos.X != 220 {
		t.Errorf("ship at x=%v, want 220", ship.Pos.X)
	}
	if game.Engine().Tick() != 1 {
		t.Errorf("tick = %d, want 1", game.Engine().Tick())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "fire") {
		t.Error("expected key help in the footer")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	if m.screen.Height() != 24-3 {
		t.Errorf("screen height = %d, want %d", m.screen.Height(), 24-3)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}
