// Package invaders adapts the invaders simulation to the registry.Game
// interface used by the terminal frontend.
package invaders

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Visual characters for rendering
const (
	ShipChar         = '▲'
	AlienChar        = 'W'
	RockChar         = '▓'
	PlayerBulletChar = '│'
	EnemyBulletChar  = '┃'
)

// Minimum terminal size for a playable projection
const (
	MinScreenW = 40
	MinScreenH = 16
)

var (
	defaultCfg   = config.DefaultInvadersConfig()
	defaultCfgMu sync.RWMutex
)

// SetDefaultConfig sets the configuration used by games created through the
// registry. Call it before creating games.
func SetDefaultConfig(cfg config.InvadersConfig) {
	defaultCfgMu.Lock()
	defer defaultCfgMu.Unlock()
	defaultCfg = cfg
}

// DefaultConfig returns the configuration used by registry-created games.
func DefaultConfig() config.InvadersConfig {
	defaultCfgMu.RLock()
	defer defaultCfgMu.RUnlock()
	return defaultCfg
}

// Game wraps a sim.Engine with pause, restart and terminal rendering.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	engine  *sim.Engine
	paused  bool
	shots   int
	pilot   *Autopilot // Nil for human play
}

// New creates a player-controlled game.
func New(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg}
}

// NewAutopiloted creates a game that ignores movement and fire input and
// plays itself. Pause, restart and quit still work.
func NewAutopiloted(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, pilot: NewAutopilot()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.pilot != nil {
		return "invaders_autopilot"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.pilot != nil {
		return "Space Invaders (Autopilot)"
	}
	return "Space Invaders"
}

// Reset starts a fresh game with a new engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.shots = 0
	if g.pilot != nil {
		g.pilot = NewAutopilot()
	}

	g.engine = sim.New(g.cfg, runtime.Seed)
	g.engine.Initialize(g.cfg.Scene.Width, g.cfg.Scene.Height)
}

// Engine returns the running engine.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(g.runtime)
	}

	if g.engine.IsGameOver() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.pilot != nil {
		in = g.pilot.Decide(g.engine)
	}
	g.applyInput(in)

	now := float64(g.engine.Tick()+1) * g.cfg.Scene.TickDelta()
	res := g.engine.Update(now)

	return core.StepResult{
		State:  g.State(),
		Events: convertEvents(res.Events),
	}
}

// applyInput forwards movement and fire commands to the engine.
// Every repeat of a move key counts as one step.
func (g *Game) applyInput(in core.InputFrame) {
	for range in.Count(core.ActionLeft) {
		g.engine.HandleMove(sim.Left, g.cfg.Ship.Step)
	}
	for range in.Count(core.ActionRight) {
		g.engine.HandleMove(sim.Right, g.cfg.Ship.Step)
	}
	if in.Has(core.ActionFire) && g.engine.HandleFire() {
		g.shots++
	}
}

// Shots returns the number of player bullets fired since the last reset.
func (g *Game) Shots() int {
	return g.shots
}

func convertEvents(events []sim.Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, core.Event{
			Type:   ev.Kind.String(),
			Entity: uint32(ev.Entity),
			X:      ev.Pos.X,
			Y:      ev.Pos.Y,
		})
	}
	return out
}

// Render draws the current game state to the screen.
// Row 0 holds the title bar; the scene is projected onto the rows below it
// with y flipped so the ship sits near the bottom of the terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}
	if g.engine == nil {
		return
	}

	for _, e := range g.engine.LiveEntities() {
		g.drawEntity(dst, e)
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.engine.IsGameOver() {
		drawCenteredMessage(dst, "GAME OVER", "Press R to restart  |  Q to quit")
	}
}

// drawHUD draws the title and remaining counts on the first row.
func (g *Game) drawHUD(dst *core.Screen) {
	store := g.engine.Store()
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightWhite)

	status := fmt.Sprintf("Aliens: %d  Rocks: %d", store.Count(sim.KindAlien), store.Count(sim.KindRock))
	dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, core.ColorGray)
}

// drawEntity fills every cell the entity's box covers.
func (g *Game) drawEntity(dst *core.Screen, e sim.Entity) {
	ch, color := glyph(e.Kind)
	box := e.Box()

	x0, y0 := g.project(dst, box.MinX(), box.MaxY())
	x1, y1 := g.project(dst, box.MaxX(), box.MinY())
	// Boxes narrower than a cell still get one cell
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := y0; y < y1; y++ {
		if y < 1 {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, ch, color)
		}
	}
}

// project maps scene coordinates to a screen cell below the title row.
func (g *Game) project(dst *core.Screen, x, y float64) (int, int) {
	cols := float64(dst.Width())
	rows := float64(dst.Height() - 1)

	col := int(x / g.cfg.Scene.Width * cols)
	row := 1 + int((g.cfg.Scene.Height-y)/g.cfg.Scene.Height*rows)
	return col, row
}

func glyph(k sim.Kind) (rune, core.Color) {
	switch k {
	case sim.KindShip:
		return ShipChar, core.ColorGreen
	case sim.KindAlien:
		return AlienChar, core.ColorCyan
	case sim.KindRock:
		return RockChar, core.ColorOrange
	case sim.KindPlayerBullet:
		return PlayerBulletChar, core.ColorYellow
	case sim.KindEnemyBullet:
		return EnemyBulletChar, core.ColorRed
	default:
		return '?', core.ColorDefault
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.engine != nil && g.engine.IsGameOver(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "invaders",
		Title:       "Space Invaders",
		Description: "Move with arrows, fire with space",
	}, func() registry.Game {
		return New(DefaultConfig())
	})
	registry.Register(registry.GameInfo{
		ID:          "invaders_autopilot",
		Title:       "Space Invaders (Autopilot)",
		Description: "The ship dodges and fires on its own",
	}, func() registry.Game {
		return NewAutopiloted(DefaultConfig())
	})
}
