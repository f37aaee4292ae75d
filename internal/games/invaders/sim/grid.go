package sim

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Layout is the initial placement of aliens and rocks, in creation order.
type Layout struct {
	Aliens []core.Vec
	Rocks  []core.Vec
}

// GenerateLayout builds the alien and rock placements for a scene.
// The shape is fully determined by the configuration's row/column rules.
func GenerateLayout(cfg config.InvadersConfig, sceneW, sceneH float64) Layout {
	var layout Layout

	alienRows := AlienRows(cfg.Aliens.Columns, len(cfg.Aliens.RowOffsets), cfg.Aliens.Trim)
	for r, xs := range alienRows {
		y := sceneH - cfg.Aliens.RowOffsets[r]
		for _, x := range xs {
			layout.Aliens = append(layout.Aliens, core.V(x, y))
		}
	}

	rockRows := RockRows(cfg.Rocks.RockXPositions(), len(cfg.Rocks.Levels), cfg.Rocks.TrimRows, cfg.Rocks.Trim, cfg.Rocks.TrimMin)
	for r, xs := range rockRows {
		y := cfg.Rocks.Levels[r]
		for _, x := range xs {
			layout.Rocks = append(layout.Rocks, core.V(x, y))
		}
	}

	return layout
}

// AlienRows returns the x positions of each alien row.
// Row r uses columns with r*trim entries removed from each end; every removal
// is guarded, so once the list is exhausted the remaining rows are empty.
func AlienRows(columns []float64, rows, trim int) [][]float64 {
	xs := slices.Clone(columns)
	result := make([][]float64, rows)

	for r := range rows {
		result[r] = slices.Clone(xs)
		for range trim {
			if len(xs) > 0 {
				xs = xs[1:]
			}
			if len(xs) > 0 {
				xs = xs[:len(xs)-1]
			}
		}
	}
	return result
}

// RockRows returns the x positions of each rock row.
// After placing a row whose 1-indexed number is listed in trimRows, the x
// list loses trim entries from the front and trim from the back, but only if
// it still holds at least trimMin entries. Otherwise the list is unchanged.
func RockRows(xs []float64, rows int, trimRows []int, trim, trimMin int) [][]float64 {
	current := slices.Clone(xs)
	result := make([][]float64, rows)

	for r := range rows {
		result[r] = slices.Clone(current)
		if !slices.Contains(trimRows, r+1) {
			continue
		}
		if len(current) >= max(trimMin, 2*trim) {
			current = current[trim : len(current)-trim]
		}
	}
	return result
}
