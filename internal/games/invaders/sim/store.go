package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// Store owns every entity of one game.
//
// Entities live in typed collections kept in insertion order. Removal only
// clears the Alive flag; dead entries are dropped by compact, which the
// engine runs once at the end of every tick. The player bullet is a single
// nullable slot rather than a collection.
type Store struct {
	nextID EntityID
	byID   map[EntityID]*Entity

	ship         *Entity
	aliens       []*Entity
	rocks        []*Entity
	enemyBullets []*Entity
	playerBullet *Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		byID:   make(map[EntityID]*Entity),
	}
}

// spawn allocates a live entity with the next id.
func (s *Store) spawn(kind Kind, pos core.Vec, size core.Size) *Entity {
	e := &Entity{
		ID:    s.nextID,
		Kind:  kind,
		Pos:   pos,
		Size:  size,
		Alive: true,
	}
	s.nextID++
	s.byID[e.ID] = e

	switch kind {
	case KindShip:
		s.ship = e
	case KindAlien:
		s.aliens = append(s.aliens, e)
	case KindRock:
		s.rocks = append(s.rocks, e)
	case KindEnemyBullet:
		s.enemyBullets = append(s.enemyBullets, e)
	case KindPlayerBullet:
		s.playerBullet = e
	}
	return e
}

// remove marks an entity destroyed. Destroyed entities never come back.
func (s *Store) remove(e *Entity) {
	if e == nil || !e.Alive {
		return
	}
	e.Alive = false
	delete(s.byID, e.ID)
	if s.playerBullet == e {
		s.playerBullet = nil
	}
}

// compact drops dead entries from the typed collections.
func (s *Store) compact() {
	s.aliens = compactLive(s.aliens)
	s.rocks = compactLive(s.rocks)
	s.enemyBullets = compactLive(s.enemyBullets)
}

func compactLive(list []*Entity) []*Entity {
	live := list[:0]
	for _, e := range list {
		if e.Alive {
			live = append(live, e)
		}
	}
	// Clear the tail so dropped entities can be collected.
	for i := len(live); i < len(list); i++ {
		list[i] = nil
	}
	return live
}

// liveAliens returns the live aliens in insertion order.
func (s *Store) liveAliens() []*Entity {
	return filterLive(s.aliens)
}

func filterLive(list []*Entity) []*Entity {
	out := make([]*Entity, 0, len(list))
	for _, e := range list {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// Get returns a copy of a live entity.
func (s *Store) Get(id EntityID) (Entity, bool) {
	e, ok := s.byID[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Ship returns the ship while it is alive.
func (s *Store) Ship() (Entity, bool) {
	if s.ship == nil || !s.ship.Alive {
		return Entity{}, false
	}
	return *s.ship, true
}

// PlayerBullet returns the bullet in the player slot, if any.
func (s *Store) PlayerBullet() (Entity, bool) {
	if s.playerBullet == nil {
		return Entity{}, false
	}
	return *s.playerBullet, true
}

// Aliens returns copies of the live aliens in insertion order.
func (s *Store) Aliens() []Entity {
	return copyLive(s.aliens)
}

// Rocks returns copies of the live rocks in insertion order.
func (s *Store) Rocks() []Entity {
	return copyLive(s.rocks)
}

// EnemyBullets returns copies of the live enemy bullets in insertion order.
func (s *Store) EnemyBullets() []Entity {
	return copyLive(s.enemyBullets)
}

func copyLive(list []*Entity) []Entity {
	out := make([]Entity, 0, len(list))
	for _, e := range list {
		if e.Alive {
			out = append(out, *e)
		}
	}
	return out
}

// Count returns the number of live entities of a kind.
func (s *Store) Count(kind Kind) int {
	switch kind {
	case KindShip:
		if s.ship != nil && s.ship.Alive {
			return 1
		}
		return 0
	case KindPlayerBullet:
		if s.playerBullet != nil {
			return 1
		}
		return 0
	case KindAlien:
		return countLive(s.aliens)
	case KindRock:
		return countLive(s.rocks)
	case KindEnemyBullet:
		return countLive(s.enemyBullets)
	default:
		return 0
	}
}

func countLive(list []*Entity) int {
	n := 0
	for _, e := range list {
		if e.Alive {
			n++
		}
	}
	return n
}

// Len returns the total number of live entities.
func (s *Store) Len() int {
	return len(s.byID)
}

// Live returns a read-only snapshot of all live entities in draw order:
// rocks, aliens, ship, player bullet, enemy bullets.
func (s *Store) Live() []Entity {
	out := make([]Entity, 0, len(s.byID))
	out = append(out, copyLive(s.rocks)...)
	out = append(out, copyLive(s.aliens)...)
	if ship, ok := s.Ship(); ok {
		out = append(out, ship)
	}
	if b, ok := s.PlayerBullet(); ok {
		out = append(out, b)
	}
	out = append(out, copyLive(s.enemyBullets)...)
	return out
}
