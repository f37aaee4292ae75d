package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Autopilot settings
const (
	DefaultPilotMoveEvery = 6   // Ticks between ship moves
	DefaultPilotDanger    = 220 // Height above the ship where enemy bullets are dodged
)

// Autopilot plays the game by reading the engine state.
// It dodges enemy bullets falling toward the ship, otherwise lines up under
// the lowest alien and fires. It is fully deterministic.
type Autopilot struct {
	moveEvery int
	danger    float64
	cooldown  int
}

// NewAutopilot creates an autopilot with default settings.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		moveEvery: DefaultPilotMoveEvery,
		danger:    DefaultPilotDanger,
	}
}

// Decide returns the input for the next tick.
func (p *Autopilot) Decide(e *sim.Engine) core.InputFrame {
	in := core.NewInputFrame()
	store := e.Store()
	if store == nil || e.IsGameOver() {
		return in
	}
	ship, ok := store.Ship()
	if !ok {
		return in
	}

	if p.cooldown > 0 {
		p.cooldown--
	}

	cfg := e.Config()
	sceneW, _ := e.SceneSize()

	if dir, threatened := p.dodge(ship, store.EnemyBullets(), cfg.Ship.Step, cfg.Ship.Margin, sceneW); threatened {
		if p.cooldown == 0 {
			in.Set(dir)
			p.cooldown = p.moveEvery
		}
		return in
	}

	target, ok := lowestAlien(store.Aliens(), ship.Pos.X)
	if !ok {
		return in
	}

	diff := target.Pos.X - ship.Pos.X
	if math.Abs(diff) > cfg.Ship.Step/2 {
		if p.cooldown == 0 {
			if diff > 0 {
				in.Set(core.ActionRight)
			} else {
				in.Set(core.ActionLeft)
			}
			p.cooldown = p.moveEvery
		}
		return in
	}

	if _, inFlight := store.PlayerBullet(); !inFlight {
		in.Set(core.ActionFire)
	}
	return in
}

// dodge reports whether an enemy bullet threatens the ship and which way to
// step away from it.
func (p *Autopilot) dodge(ship sim.Entity, bullets []sim.Entity, step, margin, sceneW float64) (core.Action, bool) {
	reach := (ship.Size.W+step)/2 + 5
	for _, b := range bullets {
		above := b.Pos.Y - ship.Pos.Y
		if above < 0 || above > p.danger {
			continue
		}
		dx := ship.Pos.X - b.Pos.X
		if math.Abs(dx) > reach {
			continue
		}

		// Step away from the bullet unless that runs into the wall
		if dx >= 0 && ship.Pos.X+step <= sceneW-margin {
			return core.ActionRight, true
		}
		if dx < 0 && ship.Pos.X-step >= margin {
			return core.ActionLeft, true
		}
		if dx >= 0 {
			return core.ActionLeft, true
		}
		return core.ActionRight, true
	}
	return core.ActionNone, false
}

// lowestAlien picks the alien closest to the ship vertically, breaking ties
// by horizontal distance.
func lowestAlien(aliens []sim.Entity, shipX float64) (sim.Entity, bool) {
	var best sim.Entity
	found := false
	for _, a := range aliens {
		if !found ||
			a.Pos.Y < best.Pos.Y ||
			(a.Pos.Y == best.Pos.Y && math.Abs(a.Pos.X-shipX) < math.Abs(best.Pos.X-shipX)) {
			best = a
			found = true
		}
	}
	return best, found
}
