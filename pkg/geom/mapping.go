// Package geom holds the small amount of 2D geometry shared by the gesture
// tracker and the viewport transform.
package geom

import "math"

// Mapping scales each axis and then translates it: Apply(p) = p·Scale + Offset.
// The viewport never rotates or shears, so this is all it needs.
type Mapping struct {
	Scale  Point
	Offset Point
}

// Apply maps p.
func (m Mapping) Apply(p Point) Point {
	return Point{
		X: p.X*m.Scale.X + m.Offset.X,
		Y: p.Y*m.Scale.Y + m.Offset.Y,
	}
}

// Inverse returns the mapping that undoes m. It reports false when either
// axis collapses to zero.
func (m Mapping) Inverse() (Mapping, bool) {
	sx, sy := m.Scale.X, m.Scale.Y
	if sx == 0 || sy == 0 || math.IsNaN(sx) || math.IsNaN(sy) {
		return Mapping{}, false
	}
	return Mapping{
		Scale:  Point{X: 1 / sx, Y: 1 / sy},
		Offset: Point{X: -m.Offset.X / sx, Y: -m.Offset.Y / sy},
	}, true
}
