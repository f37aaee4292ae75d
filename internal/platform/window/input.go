package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Key repeat timing, in ticks
const (
	repeatDelay    = 15
	repeatInterval = 6
)

// keyBindings maps keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
	repeat bool // Held key fires again after repeatDelay
}{
	{ebiten.KeyArrowLeft, core.ActionLeft, true},
	{ebiten.KeyA, core.ActionLeft, true},
	{ebiten.KeyArrowRight, core.ActionRight, true},
	{ebiten.KeyD, core.ActionRight, true},
	{ebiten.KeySpace, core.ActionFire, true},
	{ebiten.KeyArrowUp, core.ActionFire, true},
	{ebiten.KeyP, core.ActionPause, false},
	{ebiten.KeyEscape, core.ActionPause, false},
	{ebiten.KeyR, core.ActionRestart, false},
	{ebiten.KeyQ, core.ActionQuit, false},
}

// readInput collects the actions triggered this tick.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		d := inpututil.KeyPressDuration(b.key)
		if triggered(d, b.repeat) {
			in.Set(b.action)
		}
	}
	return in
}

// triggered reports whether a key held for d ticks fires on this tick.
func triggered(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	if !repeat || d < repeatDelay {
		return false
	}
	return (d-repeatDelay)%repeatInterval == 0
}
