package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Scene: SceneConfig{
			Width:    600,
			Height:   650,
			TickRate: 60,
			Dt:       DefaultTickDelta,
		},
		Ship: ShipConfig{
			Size:   40,
			Y:      80,
			Step:   40,
			Margin: 40,
		},
		Aliens: AlienConfig{
			Size:       30,
			Columns:    []float64{80, 180, 280, 380, 480},
			RowOffsets: []float64{200, 280, 360},
			Trim:       1,
		},
		Rocks: RockConfig{
			Size: 15,
			Bands: []RockBand{
				{From: 50, To: 170, Step: 15},
				{From: 235, To: 355, Step: 15},
				{From: 420, To: 540, Step: 15},
			},
			Levels:   []float64{450, 435, 465, 420, 480},
			TrimRows: []int{1, 3, 5},
			Trim:     2,
			TrimMin:  4,
		},
		Formation: FormationConfig{
			Step:      2,
			OffsetMax: 100,
		},
		Bullets: BulletsConfig{
			Player: BulletConfig{Speed: 700, Width: 10, Height: 10, SpawnOffset: 30},
			Enemy:  BulletConfig{Speed: 400, Width: 10, Height: 30, SpawnOffset: 20},
		},
		Fire: FireConfig{
			Interval:   1.0,
			VolleySize: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
