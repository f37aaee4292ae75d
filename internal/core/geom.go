// Package core provides fundamental types and utilities shared by the games
// and the frontends.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point in scene units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Size is a width/height pair in scene units.
type Size struct {
	W, H float64
}

// Box is a scene-space bounding box centered on a position.
// Centered anchoring matches how sprites are placed in the scene.
type Box struct {
	Center Vec
	Size   Size
}

// BoxAt builds a box centered at pos.
func BoxAt(pos Vec, size Size) Box {
	return Box{Center: pos, Size: size}
}

// MinX returns the left edge.
func (b Box) MinX() float64 { return b.Center.X - b.Size.W/2 }

// MaxX returns the right edge.
func (b Box) MaxX() float64 { return b.Center.X + b.Size.W/2 }

// MinY returns the lower edge.
func (b Box) MinY() float64 { return b.Center.Y - b.Size.H/2 }

// MaxY returns the upper edge.
func (b Box) MaxY() float64 { return b.Center.Y + b.Size.H/2 }

// Intersects reports whether two boxes overlap with positive area.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.MinX() >= other.MaxX() || other.MinX() >= b.MaxX() {
		return false
	}
	if b.MinY() >= other.MaxY() || other.MinY() >= b.MaxY() {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
