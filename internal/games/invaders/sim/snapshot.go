package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a copy of the engine state used for determinism checks.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Formation     Formation
	LastAlienFire float64
	RNGState      uint64
	Entities      []Entity // Live entities in draw order
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:          e.tick,
		Phase:         e.phase,
		Formation:     e.formation,
		LastAlienFire: e.fire.LastAlienFire,
		RNGState:      e.rng.state,
		Entities:      e.LiveEntities(),
	}
}

// Hash returns an FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash writes never fail
	}
	putF64 := func(v float64) {
		putU64(math.Float64bits(v))
	}

	putU64(s.Tick)
	putU64(uint64(s.Phase))
	putF64(s.Formation.Offset)
	putU64(uint64(s.Formation.Direction))
	putF64(s.LastAlienFire)
	putU64(s.RNGState)
	putU64(uint64(len(s.Entities)))
	for _, e := range s.Entities {
		putU64(uint64(e.ID))
		putU64(uint64(e.Kind))
		putF64(e.Pos.X)
		putF64(e.Pos.Y)
		putF64(e.Size.W)
		putF64(e.Size.H)
	}

	return h.Sum64()
}
