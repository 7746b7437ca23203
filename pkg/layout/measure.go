// Package layout decides the viewport size for an image and whether the
// image must be resampled before it is drawn.
package layout

import (
	"fmt"
	"image"
	"strings"

	"zoomview/pkg/geom"
)

// WidthPolicy says how the view's width relates to its container.
type WidthPolicy uint8

const (
	// Fixed keeps the image's natural size unless it is wider than the
	// container.
	Fixed WidthPolicy = iota
	// Elastic always fills the container's width.
	Elastic
)

func (p WidthPolicy) String() string {
	if p == Elastic {
		return "elastic"
	}
	return "fixed"
}

// ParseWidthPolicy accepts "fixed" or "elastic" (also "match-parent").
func ParseWidthPolicy(s string) (WidthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed", "wrap":
		return Fixed, nil
	case "elastic", "match-parent", "fill":
		return Elastic, nil
	}
	return Fixed, fmt.Errorf("unknown width policy %q", s)
}

// Result is the outcome of a measurement pass.
type Result struct {
	// Viewport is the size the view occupies.
	Viewport image.Point
	// PreScale is set when the source must be resampled to Viewport once
	// before drawing.
	PreScale bool
}

// ViewLength returns the characteristic length used for pinch sensitivity.
func (r Result) ViewLength() int {
	return geom.MeanLength(r.Viewport)
}

// Measure sizes a view for a src-sized image inside a container that is
// measureWidth pixels wide. Height follows the image's aspect ratio.
func Measure(src image.Point, measureWidth int, policy WidthPolicy) Result {
	if src.X <= 0 || src.Y <= 0 {
		return Result{}
	}
	if policy != Elastic && src.X <= measureWidth {
		return Result{Viewport: src}
	}

	ratio := float64(src.Y) / float64(src.X)
	w := measureWidth
	if w < 0 {
		w = 0
	}
	return Result{
		Viewport: image.Point{X: w, Y: int(float64(w) * ratio)},
		PreScale: src.X > measureWidth,
	}
}
