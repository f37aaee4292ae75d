// Package window provides a desktop frontend for the invaders games,
// drawing the scene with Ebitengine at its native size.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// WindowTitle is the title of the desktop window.
const WindowTitle = "Space Invaders"

// Options configures the window frontend.
type Options struct {
	Config    config.InvadersConfig
	Seed      int64
	AssetsDir string // Directory with PNG sprites; empty uses colored rectangles
	Autopilot bool
	Logger    *log.Logger
}

// App implements ebiten.Game around an invaders game.
type App struct {
	game    *invaders.Game
	cfg     config.InvadersConfig
	sprites *Sprites
	logger  *log.Logger
	over    bool
}

// New creates the window frontend and starts a game.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var g *invaders.Game
	if opts.Autopilot {
		g = invaders.NewAutopiloted(opts.Config)
	} else {
		g = invaders.New(opts.Config)
	}
	g.Reset(core.RuntimeConfig{
		ScreenW:  int(opts.Config.Scene.Width),
		ScreenH:  int(opts.Config.Scene.Height),
		TickRate: opts.Config.Scene.TickRate,
		Seed:     opts.Seed,
	})

	return &App{
		game:    g,
		cfg:     opts.Config,
		sprites: LoadSprites(opts.AssetsDir, logger),
		logger:  logger,
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	in := readInput()
	if in.Has(core.ActionQuit) {
		a.logger.Info("quit", "game", a.game.ID())
		return ebiten.Termination
	}

	res := a.game.Step(in)
	for _, ev := range res.Events {
		a.logger.Debug(ev.Type, "entity", ev.Entity, "x", ev.X, "y", ev.Y)
	}

	switch {
	case res.State.GameOver && !a.over:
		a.logger.Info("game over", "game", a.game.ID(), "tick", a.game.Engine().Tick())
	case !res.State.GameOver && a.over:
		a.logger.Info("game restarted", "game", a.game.ID())
	}
	a.over = res.State.GameOver

	return nil
}

// Draw renders the scene. Scene y grows upward, screen y grows downward.
func (a *App) Draw(screen *ebiten.Image) {
	w, h := a.cfg.Scene.Width, a.cfg.Scene.Height

	if bg := a.sprites.Get(SpriteBackground); bg != nil {
		drawSprite(screen, bg, 0, 0, w, h)
	} else {
		screen.Fill(colorBackground)
	}

	for _, e := range a.game.Engine().LiveEntities() {
		a.drawEntity(screen, e)
	}

	a.drawTitle(screen)

	state := a.game.State()
	if state.GameOver {
		a.drawOverlay(screen, SpriteGameOver, "GAME OVER", "Press R to restart, Q to quit")
	} else if state.Paused {
		a.drawOverlay(screen, "", "PAUSED", "Press P to resume")
	}
}

func (a *App) drawEntity(screen *ebiten.Image, e sim.Entity) {
	box := e.Box()
	x := box.MinX()
	y := a.cfg.Scene.Height - box.MaxY()

	name, fallback := entityLook(e.Kind)
	if img := a.sprites.Get(name); img != nil {
		drawSprite(screen, img, x, y, e.Size.W, e.Size.H)
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(e.Size.W), float32(e.Size.H), fallback, false)
}

// drawTitle draws the title 50 units below the top edge and the
// remaining counts in the corner.
func (a *App) drawTitle(screen *ebiten.Image) {
	cx := a.cfg.Scene.Width / 2
	if img := a.sprites.Get(SpriteTitle); img != nil {
		b := img.Bounds()
		iw, ih := float64(b.Dx())*0.6, float64(b.Dy())*0.6
		drawSprite(screen, img, cx-iw/2, 50-ih/2, iw, ih)
	} else {
		drawCenteredText(screen, "SPACE INVADERS", cx, 44)
	}
	ebitenutil.DebugPrintAt(screen, statusLine(a.game.Engine().Store()), 8, 8)
}

// statusLine reports the aliens and rocks still standing.
func statusLine(store *sim.Store) string {
	if store == nil {
		return ""
	}
	return fmt.Sprintf("Aliens: %d  Rocks: %d", store.Count(sim.KindAlien), store.Count(sim.KindRock))
}

// drawOverlay dims the scene and shows a message in the middle.
func (a *App) drawOverlay(screen *ebiten.Image, sprite, title, subtitle string) {
	w, h := a.cfg.Scene.Width, a.cfg.Scene.Height
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	cx, cy := w/2, h/2
	if img := a.sprites.Get(sprite); img != nil {
		b := img.Bounds()
		drawSprite(screen, img, cx-float64(b.Dx())/2, cy-float64(b.Dy())/2, float64(b.Dx()), float64(b.Dy()))
	} else {
		drawCenteredText(screen, title, cx, cy-8)
	}
	drawCenteredText(screen, subtitle, cx, cy+24)
}

// Layout keeps the logical screen at the scene size; Ebitengine scales it
// to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return int(a.cfg.Scene.Width), int(a.cfg.Scene.Height)
}

// drawSprite draws img scaled to the given rectangle.
func drawSprite(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// debugGlyphW is the advance of the built-in debug font.
const debugGlyphW = 6

func drawCenteredText(screen *ebiten.Image, text string, cx, y float64) {
	x := cx - float64(len(text)*debugGlyphW)/2
	ebitenutil.DebugPrintAt(screen, text, int(x), int(y))
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := New(opts)

	ebiten.SetWindowSize(int(opts.Config.Scene.Width), int(opts.Config.Scene.Height))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizable(true)
	if opts.Config.Scene.TickRate > 0 {
		ebiten.SetTPS(opts.Config.Scene.TickRate)
	}

	app.logger.Info("window opened", "game", app.game.ID(), "seed", opts.Seed, "sprites", app.sprites.Len())
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
