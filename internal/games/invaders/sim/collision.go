package sim

// resolveCollisions applies all bullet interactions for one tick.
//
// Order:
//  1. Player bullet vs aliens, newest alien first; first hit destroys both.
//  2. Player bullet (if it survived) vs rocks, newest rock first.
//  3. Each enemy bullet vs rocks, newest rock first; one rock per bullet.
//  4. Enemy bullets vs ship; the first hit destroys both and ends the game.
//
// Scanning newest-first means the most recently added candidate wins when a
// bullet overlaps several targets at once.
func (e *Engine) resolveCollisions() []Event {
	var events []Event
	s := e.store

	if b := s.playerBullet; b != nil {
		box := b.Box()
		for i := len(s.aliens) - 1; i >= 0; i-- {
			alien := s.aliens[i]
			if !alien.Alive || !box.Intersects(alien.Box()) {
				continue
			}
			s.remove(alien)
			s.remove(b)
			events = append(events, Event{Kind: EventAlienDestroyed, Entity: alien.ID, By: b.ID, Pos: alien.Pos})
			break
		}
	}

	if b := s.playerBullet; b != nil {
		if rock := e.firstRockHit(b); rock != nil {
			s.remove(rock)
			s.remove(b)
			events = append(events, Event{Kind: EventRockDestroyed, Entity: rock.ID, By: b.ID, Pos: rock.Pos})
		}
	}

	for _, b := range s.enemyBullets {
		if !b.Alive {
			continue
		}
		if rock := e.firstRockHit(b); rock != nil {
			s.remove(rock)
			s.remove(b)
			events = append(events, Event{Kind: EventRockDestroyed, Entity: rock.ID, By: b.ID, Pos: rock.Pos})
		}
	}

	ship := s.ship
	if ship == nil || !ship.Alive {
		return events
	}
	shipBox := ship.Box()
	for _, b := range s.enemyBullets {
		if !b.Alive || !b.Box().Intersects(shipBox) {
			continue
		}
		s.remove(b)
		s.remove(ship)
		e.phase = PhaseGameOver
		events = append(events, Event{Kind: EventShipDestroyed, Entity: ship.ID, By: b.ID, Pos: ship.Pos})
		break
	}

	return events
}

// firstRockHit returns the newest live rock overlapping the bullet.
func (e *Engine) firstRockHit(bullet *Entity) *Entity {
	box := bullet.Box()
	rocks := e.store.rocks
	for i := len(rocks) - 1; i >= 0; i-- {
		if rocks[i].Alive && box.Intersects(rocks[i].Box()) {
			return rocks[i]
		}
	}
	return nil
}
