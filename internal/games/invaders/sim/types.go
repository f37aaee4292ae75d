// Package sim implements the invaders simulation engine: layout generation,
// per-tick movement, firing, and collision resolution.
// This package is UI-agnostic and deterministic for a given seed.
//
// Coordinates are scene units with the origin at the bottom-left corner and
// y growing upward. Every entity's bounding box is centered on its position.
package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// EntityID identifies an entity for its whole lifetime. IDs are never reused.
type EntityID uint32

// Kind tags what an entity is.
type Kind uint8

const (
	KindShip Kind = iota
	KindAlien
	KindRock
	KindPlayerBullet
	KindEnemyBullet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAlien:
		return "alien"
	case KindRock:
		return "rock"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	default:
		return "unknown"
	}
}

// Entity is a single object in the scene.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Pos   core.Vec
	Size  core.Size
	Alive bool
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.BoxAt(e.Pos, e.Size)
}

// Direction is a horizontal direction, used by the formation and the ship.
type Direction uint8

const (
	Left Direction = iota
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Right {
		return "Right"
	}
	return "Left"
}

// Sign returns -1 for Left and +1 for Right.
func (d Direction) Sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Formation is the horizontal oscillation shared by all aliens.
// Offset stays within [0, OffsetMax].
type Formation struct {
	Offset    float64
	Direction Direction
}

// FireState tracks the enemy volley cooldown.
type FireState struct {
	LastAlienFire float64 // Timestamp of the last volley trigger, in seconds
}

// Phase is the game state machine's state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// EventKind classifies what happened during a tick.
type EventKind uint8

const (
	EventAlienDestroyed EventKind = iota // Player bullet hit an alien
	EventRockDestroyed                   // Any bullet hit a rock
	EventShipDestroyed                   // Enemy bullet hit the ship
	EventVolley                          // An alien fired
	EventBulletExpired                   // A bullet left the scene
)

// String returns a machine-friendly event name.
func (k EventKind) String() string {
	switch k {
	case EventAlienDestroyed:
		return "alien_destroyed"
	case EventRockDestroyed:
		return "rock_destroyed"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventVolley:
		return "volley"
	case EventBulletExpired:
		return "bullet_expired"
	default:
		return "unknown"
	}
}

// Event records one notable thing that happened during a tick.
type Event struct {
	Kind   EventKind
	Entity EntityID // Entity destroyed, spawned, or expired
	By     EntityID // Bullet responsible, or the firing alien for volleys
	Pos    core.Vec
}

// TickResult contains information about what happened during one Update.
type TickResult struct {
	Tick     uint64
	Phase    Phase
	Events   []Event
	Advanced bool // False when the update was skipped (game over)
}
