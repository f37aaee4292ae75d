package window

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

func TestStatusLine(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	e := sim.New(cfg, 1)
	store := e.Initialize(cfg.Scene.Width, cfg.Scene.Height)

	want := "Aliens: 9  Rocks: 111"
	if got := statusLine(store); got != want {
		t.Errorf("statusLine() = %q, expected %q", got, want)
	}
	if got := statusLine(nil); got != "" {
		t.Errorf("statusLine(nil) = %q, expected empty", got)
	}
}
