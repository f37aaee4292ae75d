package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Summary describes a finished headless run.
type Summary struct {
	Seed            int64
	Ticks           uint64
	Seconds         float64
	GameOver        bool
	AliensLeft      int
	RocksLeft       int
	AliensDestroyed int
	RocksDestroyed  int
	Shots           int // Player bullets fired
	Volleys         int // Enemy bullets fired
	Hash            uint64
}

// Simulate runs the autopilot without a display until the ship is destroyed
// or maxTicks ticks have passed. onEvent, if set, sees every event.
func Simulate(cfg config.InvadersConfig, seed int64, maxTicks uint64, onEvent func(core.Event)) Summary {
	g := NewAutopiloted(cfg)
	g.Reset(core.RuntimeConfig{TickRate: cfg.Scene.TickRate, Seed: seed})
	e := g.Engine()

	sum := Summary{Seed: seed}
	for e.Tick() < maxTicks && !e.IsGameOver() {
		before := e.Tick()

		res := g.Step(core.NewInputFrame())
		if e.Tick() == before {
			break
		}

		for _, ev := range res.Events {
			switch ev.Type {
			case sim.EventAlienDestroyed.String():
				sum.AliensDestroyed++
			case sim.EventRockDestroyed.String():
				sum.RocksDestroyed++
			case sim.EventVolley.String():
				sum.Volleys++
			}
			if onEvent != nil {
				onEvent(ev)
			}
		}
	}

	store := e.Store()
	sum.Ticks = e.Tick()
	sum.Seconds = float64(sum.Ticks) * cfg.Scene.TickDelta()
	sum.GameOver = e.IsGameOver()
	sum.AliensLeft = store.Count(sim.KindAlien)
	sum.RocksLeft = store.Count(sim.KindRock)
	sum.Shots = g.Shots()
	sum.Hash = e.Snapshot().Hash()
	return sum
}
