package sim

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Engine runs one game. It is driven by a single caller: one Update per
// rendered frame, with move/fire commands applied between updates.
// Engine is not safe for concurrent use.
type Engine struct {
	cfg config.InvadersConfig
	rng *SimpleRNG

	store     *Store
	formation Formation
	fire      FireState
	phase     Phase
	tick      uint64

	sceneW, sceneH float64
}

// New creates an engine. Call Initialize before the first Update.
func New(cfg config.InvadersConfig, seed int64) *Engine {
	return &Engine{
		cfg: cfg,
		rng: NewSimpleRNG(seed),
	}
}

// Initialize builds a fresh scene: the alien grid, the rock field and the
// ship centered horizontally. Returns the populated store.
func (e *Engine) Initialize(sceneW, sceneH float64) *Store {
	e.sceneW = sceneW
	e.sceneH = sceneH
	e.store = NewStore()
	e.formation = Formation{Offset: 0, Direction: Left}
	e.fire = FireState{}
	e.phase = PhasePlaying
	e.tick = 0

	shipSize := core.Size{W: e.cfg.Ship.Size, H: e.cfg.Ship.Size}
	e.store.spawn(KindShip, core.V(sceneW/2, e.cfg.Ship.Y), shipSize)

	layout := GenerateLayout(e.cfg, sceneW, sceneH)
	alienSize := core.Size{W: e.cfg.Aliens.Size, H: e.cfg.Aliens.Size}
	for _, pos := range layout.Aliens {
		e.store.spawn(KindAlien, pos, alienSize)
	}
	rockSize := core.Size{W: e.cfg.Rocks.Size, H: e.cfg.Rocks.Size}
	for _, pos := range layout.Rocks {
		e.store.spawn(KindRock, pos, rockSize)
	}

	return e.store
}

// Update advances the simulation by one fixed tick at time now (seconds).
// Order: formation and bullet movement, enemy volley, collisions.
// Once the game is over every call is a no-op.
func (e *Engine) Update(now float64) TickResult {
	if e.phase == PhaseGameOver || e.store == nil {
		return TickResult{Tick: e.tick, Phase: e.phase}
	}

	var events []Event

	e.moveFormation()
	events = append(events, e.moveBullets(e.cfg.Scene.TickDelta())...)
	events = append(events, e.fireVolley(now)...)
	events = append(events, e.resolveCollisions()...)

	e.store.compact()
	e.tick++

	return TickResult{
		Tick:     e.tick,
		Phase:    e.phase,
		Events:   events,
		Advanced: true,
	}
}

// HandleMove moves the ship step units in dir, keeping it within the
// configured margin of both scene edges.
func (e *Engine) HandleMove(dir Direction, step float64) {
	if e.phase == PhaseGameOver || e.store == nil {
		return
	}
	ship := e.store.ship
	if ship == nil || !ship.Alive {
		return
	}
	margin := e.cfg.Ship.Margin
	ship.Pos.X = core.ClampF(ship.Pos.X+dir.Sign()*step, margin, e.sceneW-margin)
}

// IsGameOver reports whether the ship has been destroyed.
func (e *Engine) IsGameOver() bool {
	return e.phase == PhaseGameOver
}

// Phase returns the state machine's current state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// LiveEntities returns a snapshot of all live entities for rendering.
func (e *Engine) LiveEntities() []Entity {
	if e.store == nil {
		return nil
	}
	return e.store.Live()
}

// Store returns the entity store created by Initialize.
func (e *Engine) Store() *Store {
	return e.store
}

// Formation returns the current alien oscillation state.
func (e *Engine) Formation() Formation {
	return e.formation
}

// FireState returns the current volley cooldown state.
func (e *Engine) FireState() FireState {
	return e.fire
}

// Tick returns the number of updates that advanced the simulation.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// SceneSize returns the scene dimensions passed to Initialize.
func (e *Engine) SceneSize() (w, h float64) {
	return e.sceneW, e.sceneH
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.InvadersConfig {
	return e.cfg
}
