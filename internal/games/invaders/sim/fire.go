package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// HandleFire spawns the player's bullet above the ship.
// Returns false without doing anything when a bullet is already in flight,
// the ship is gone, or the game is over.
func (e *Engine) HandleFire() bool {
	if e.phase == PhaseGameOver || e.store == nil {
		return false
	}
	ship := e.store.ship
	if ship == nil || !ship.Alive {
		return false
	}
	if e.store.playerBullet != nil {
		return false
	}

	cfg := e.cfg.Bullets.Player
	e.store.spawn(KindPlayerBullet,
		core.V(ship.Pos.X, ship.Pos.Y+cfg.SpawnOffset),
		core.Size{W: cfg.Width, H: cfg.Height},
	)
	return true
}

// fireVolley lets up to VolleySize random aliens shoot once the cooldown
// has elapsed. The cooldown timestamp advances whenever the interval has
// passed, even if no alien is left to shoot.
func (e *Engine) fireVolley(now float64) []Event {
	if now-e.fire.LastAlienFire < e.cfg.Fire.Interval {
		return nil
	}
	e.fire.LastAlienFire = now

	live := e.store.liveAliens()
	if len(live) == 0 {
		return nil
	}

	cfg := e.cfg.Bullets.Enemy
	picked := e.rng.Sample(len(live), e.cfg.Fire.VolleySize)
	events := make([]Event, 0, len(picked))
	for _, i := range picked {
		alien := live[i]
		b := e.store.spawn(KindEnemyBullet,
			core.V(alien.Pos.X, alien.Pos.Y-cfg.SpawnOffset),
			core.Size{W: cfg.Width, H: cfg.Height},
		)
		events = append(events, Event{Kind: EventVolley, Entity: b.ID, By: alien.ID, Pos: b.Pos})
	}
	return events
}
