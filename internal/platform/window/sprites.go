package window

import (
	"errors"
	"image/color"
	_ "image/png" // PNG decoder for sprite files
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Sprite file names looked up in the assets directory, without extension.
const (
	SpriteBackground  = "space"
	SpriteTitle       = "title"
	SpriteShip        = "ship"
	SpriteAlien       = "alien"
	SpriteRock        = "rock"
	SpriteBullet      = "bullet"
	SpriteAlienBullet = "alienBullet"
	SpriteGameOver    = "gameOver"
)

// Fallback colors for entities without a sprite
var (
	colorBackground  = color.RGBA{0, 0, 0, 255}
	colorShip        = color.RGBA{255, 255, 255, 255}
	colorAlien       = color.RGBA{0, 255, 0, 255}
	colorRock        = color.RGBA{255, 0, 0, 255}
	colorBullet      = color.RGBA{255, 255, 0, 255}
	colorAlienBullet = color.RGBA{255, 165, 0, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 178}
)

// Sprites holds the images found in the assets directory.
// Missing images are nil and drawn as colored rectangles instead.
type Sprites struct {
	images map[string]*ebiten.Image
}

// spriteNames lists every sprite the renderer knows about.
var spriteNames = []string{
	SpriteBackground, SpriteTitle, SpriteShip, SpriteAlien,
	SpriteRock, SpriteBullet, SpriteAlienBullet, SpriteGameOver,
}

// LoadSprites loads <name>.png from dir for every known sprite.
// An empty dir loads nothing. Files that exist but fail to decode are
// logged and skipped.
func LoadSprites(dir string, logger *log.Logger) *Sprites {
	s := &Sprites{images: make(map[string]*ebiten.Image)}
	if logger == nil {
		logger = log.Default()
	}
	if dir == "" {
		return s
	}

	for _, name := range spriteNames {
		path := filepath.Join(dir, name+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			logger.Warn("sprite not loaded", "path", path, "err", err)
			continue
		}
		s.images[name] = img
		logger.Debug("sprite loaded", "name", name)
	}
	return s
}

// Get returns the named sprite, or nil if it was not loaded.
func (s *Sprites) Get(name string) *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.images[name]
}

// Len returns the number of loaded sprites.
func (s *Sprites) Len() int {
	if s == nil {
		return 0
	}
	return len(s.images)
}

// entityLook returns the sprite name and fallback color for an entity kind.
func entityLook(k sim.Kind) (string, color.Color) {
	switch k {
	case sim.KindShip:
		return SpriteShip, colorShip
	case sim.KindAlien:
		return SpriteAlien, colorAlien
	case sim.KindRock:
		return SpriteRock, colorRock
	case sim.KindPlayerBullet:
		return SpriteBullet, colorBullet
	case sim.KindEnemyBullet:
		return SpriteAlienBullet, colorAlienBullet
	default:
		return "", colorShip
	}
}
