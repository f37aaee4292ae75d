// Package config provides YAML-based configuration loading for the
// invaders simulation: scene geometry, layout rules, speeds and timings.
package config

// InvadersConfig contains all tunables of the simulation.
type InvadersConfig struct {
	Scene     SceneConfig     `yaml:"scene"`
	Ship      ShipConfig      `yaml:"ship"`
	Aliens    AlienConfig     `yaml:"aliens"`
	Rocks     RockConfig      `yaml:"rocks"`
	Formation FormationConfig `yaml:"formation"`
	Bullets   BulletsConfig   `yaml:"bullets"`
	Fire      FireConfig      `yaml:"fire"`
}

// SceneConfig defines the simulated playfield in scene units (y-up).
type SceneConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // Host frame rate; does not change the simulation step
	Dt       float64 `yaml:"dt"`        // Simulation step in seconds
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Size   float64 `yaml:"size"`
	Y      float64 `yaml:"y"`      // Fixed vertical position
	Step   float64 `yaml:"step"`   // Distance moved per move command
	Margin float64 `yaml:"margin"` // Ship x is clamped to [margin, width-margin]
}

// AlienConfig defines the alien grid.
// Row r is placed at scene height minus RowOffsets[r], using Columns
// trimmed by r*Trim entries from each end.
type AlienConfig struct {
	Size       float64   `yaml:"size"`
	Columns    []float64 `yaml:"columns"`
	RowOffsets []float64 `yaml:"row_offsets"`
	Trim       int       `yaml:"trim"`
}

// RockBand is an inclusive stepped range of x positions.
type RockBand struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Step float64 `yaml:"step"`
}

// RockConfig defines the obstacle field.
type RockConfig struct {
	Size     float64    `yaml:"size"`
	Bands    []RockBand `yaml:"bands"`
	Levels   []float64  `yaml:"levels"`    // y of each row, in placement order
	TrimRows []int      `yaml:"trim_rows"` // 1-indexed rows after which the x list contracts
	Trim     int        `yaml:"trim"`      // Entries removed from each end
	TrimMin  int        `yaml:"trim_min"`  // Contraction only happens with at least this many entries
}

// FormationConfig defines the alien oscillation.
type FormationConfig struct {
	Step      float64 `yaml:"step"`
	OffsetMax float64 `yaml:"offset_max"`
}

// BulletConfig defines one bullet kind.
type BulletConfig struct {
	Speed       float64 `yaml:"speed"` // Units per second
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Vertical distance from the shooter
}

// BulletsConfig groups player and enemy bullets.
type BulletsConfig struct {
	Player BulletConfig `yaml:"player"`
	Enemy  BulletConfig `yaml:"enemy"`
}

// FireConfig defines the enemy volley cadence.
type FireConfig struct {
	Interval   float64 `yaml:"interval"`    // Seconds between volleys
	VolleySize int     `yaml:"volley_size"` // Max aliens firing per volley
}

// RockXPositions expands the bands into the concatenated x list.
func (c RockConfig) RockXPositions() []float64 {
	var xs []float64
	for _, b := range c.Bands {
		if b.Step <= 0 {
			continue
		}
		for x := b.From; x <= b.To; x += b.Step {
			xs = append(xs, x)
		}
	}
	return xs
}

// DefaultTickDelta is the simulation step used when none is configured.
const DefaultTickDelta = 1.0 / 60.0

// TickDelta returns the fixed simulation step in seconds.
// It is independent of TickRate so a slower host does not make bullets
// jump over their targets.
func (c SceneConfig) TickDelta() float64 {
	if c.Dt <= 0 {
		return DefaultTickDelta
	}
	return c.Dt
}
