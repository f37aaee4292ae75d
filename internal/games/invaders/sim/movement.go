package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// moveFormation advances the alien oscillation by one step.
//
// The direction flips to Right at offset <= 0 and to Left at offset >=
// OffsetMax, before moving. The new offset is clamped into [0, OffsetMax]
// and every live alien shifts by exactly the applied delta.
func (e *Engine) moveFormation() {
	f := &e.formation
	maxOffset := e.cfg.Formation.OffsetMax

	if f.Offset <= 0 {
		f.Direction = Right
	} else if f.Offset >= maxOffset {
		f.Direction = Left
	}

	next := core.ClampF(f.Offset+f.Direction.Sign()*e.cfg.Formation.Step, 0, maxOffset)
	delta := next - f.Offset
	f.Offset = next

	for _, a := range e.store.aliens {
		if a.Alive {
			a.Pos.X += delta
		}
	}
}

// moveBullets advances the player bullet upward and enemy bullets downward
// by one fixed tick, despawning bullets that leave the scene.
func (e *Engine) moveBullets(dt float64) []Event {
	var events []Event

	if b := e.store.playerBullet; b != nil {
		b.Pos.Y += e.cfg.Bullets.Player.Speed * dt
		if b.Pos.Y > e.sceneH {
			e.store.remove(b)
			events = append(events, Event{Kind: EventBulletExpired, Entity: b.ID, Pos: b.Pos})
		}
	}

	for _, b := range e.store.enemyBullets {
		if !b.Alive {
			continue
		}
		b.Pos.Y -= e.cfg.Bullets.Enemy.Speed * dt
		if b.Pos.Y < 0 {
			e.store.remove(b)
			events = append(events, Event{Kind: EventBulletExpired, Entity: b.ID, Pos: b.Pos})
		}
	}

	return events
}
