package geom

import (
	"image"
	"math"
)

// Point represents a 2D point in floating point pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Length returns the distance from origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// MeanLength returns (w+h)/2 truncated to whole pixels. The gesture tracker
// divides pinch spread by it so sensitivity does not depend on view size.
func MeanLength(size image.Point) int {
	return int((float64(size.X) + float64(size.Y)) / 2)
}
