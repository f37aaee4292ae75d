package sim

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	testW = 600
	testH = 650
)

// newTestEngine returns an engine initialized with the default layout.
func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	e := New(config.DefaultInvadersConfig(), seed)
	e.Initialize(testW, testH)
	return e
}

// emptyEngine returns a playing engine with an empty store, for placing
// entities by hand.
func emptyEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(config.DefaultInvadersConfig(), 1)
	e.sceneW = testW
	e.sceneH = testH
	e.store = NewStore()
	e.formation = Formation{Direction: Left}
	e.phase = PhasePlaying
	return e
}

func spawnAt(e *Engine, kind Kind, x, y float64) *Entity {
	cfg := e.cfg
	var size core.Size
	switch kind {
	case KindShip:
		size = core.Size{W: cfg.Ship.Size, H: cfg.Ship.Size}
	case KindAlien:
		size = core.Size{W: cfg.Aliens.Size, H: cfg.Aliens.Size}
	case KindRock:
		size = core.Size{W: cfg.Rocks.Size, H: cfg.Rocks.Size}
	case KindPlayerBullet:
		size = core.Size{W: cfg.Bullets.Player.Width, H: cfg.Bullets.Player.Height}
	case KindEnemyBullet:
		size = core.Size{W: cfg.Bullets.Enemy.Width, H: cfg.Bullets.Enemy.Height}
	}
	return e.store.spawn(kind, core.V(x, y), size)
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
