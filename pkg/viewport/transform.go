package viewport

import (
	"image"

	"zoomview/pkg/geom"
)

// Transform is the persistent view state.
type Transform struct {
	// Offset is the pan translation in whole pixels.
	Offset image.Point
	// Scale is the zoom factor; 1 draws the image at viewport size.
	Scale float64
	// Preset is the preset the next double tap applies.
	Preset Preset
}

// Identity is the state of a freshly created view.
func Identity() Transform {
	return Transform{Scale: 1, Preset: Fit}
}

// Transformer applies pan, pinch and double-tap changes to a Transform.
// It is not safe for concurrent use.
type Transformer struct {
	limits Limits
	t      Transform
}

// NewTransformer creates a transformer with the given limits.
func NewTransformer(l Limits) *Transformer {
	return &Transformer{limits: l, t: Identity()}
}

// Limits returns the scale bounds.
func (tr *Transformer) Limits() Limits {
	return tr.limits
}

// Transform returns a copy of the current state.
func (tr *Transformer) Transform() Transform {
	return tr.t
}

// Reset returns to the state of a fresh transformer.
func (tr *Transformer) Reset() {
	tr.t = Identity()
}

// ApplyPan moves the image. Deltas are truncated to whole pixels and the
// offset is not bounded.
func (tr *Transformer) ApplyPan(dx, dy float64) {
	tr.t.Offset.X += int(dx)
	tr.t.Offset.Y += int(dy)
}

// ApplyScale adds delta to the scale, never going below MinScale.
func (tr *Transformer) ApplyScale(delta float64) {
	tr.t.Scale += delta
	if tr.t.Scale < tr.limits.MinScale {
		tr.t.Scale = tr.limits.MinScale
	}
}

// OnDoubleTap applies the current preset and advances to the next one. It
// returns the preset that was applied.
func (tr *Transformer) OnDoubleTap() Preset {
	applied := tr.t.Preset
	next, eff := Cycle(applied, tr.limits)
	if eff.ResetOffset {
		tr.t.Offset = image.Point{}
	}
	tr.t.Scale = eff.Scale
	tr.t.Preset = next
	return applied
}

// DestinationRect returns where a w×h viewport's image should be drawn. The
// rectangle grows by (scale-1)·size around the viewport centre, then shifts
// by the pan offset. It is returned as computed and may be empty or inverted
// for degenerate sizes.
func (tr *Transformer) DestinationRect(w, h int) image.Rectangle {
	fw, fh := float64(w), float64(h)
	halfW := int((fw*tr.t.Scale - fw) / 2)
	halfH := int((fh*tr.t.Scale - fh) / 2)
	off := tr.t.Offset
	return image.Rectangle{
		Min: image.Point{X: off.X - halfW, Y: off.Y - halfH},
		Max: image.Point{X: w + off.X + halfW, Y: h + off.Y + halfH},
	}
}

// Mapping maps source pixel coordinates to view coordinates for a src-sized
// image drawn into a w×h viewport.
func (tr *Transformer) Mapping(w, h int, src image.Point) geom.Mapping {
	r := tr.DestinationRect(w, h)
	m := geom.Mapping{
		Scale:  geom.Pt(1, 1),
		Offset: geom.Pt(float64(r.Min.X), float64(r.Min.Y)),
	}
	if src.X != 0 && src.Y != 0 {
		m.Scale = geom.Pt(float64(r.Dx())/float64(src.X), float64(r.Dy())/float64(src.Y))
	}
	return m
}

// ViewToImage maps a view-local point back to source pixel coordinates. It
// reports false when the destination rectangle is empty.
func (tr *Transformer) ViewToImage(p geom.Point, w, h int, src image.Point) (geom.Point, bool) {
	inv, ok := tr.Mapping(w, h, src).Inverse()
	if !ok {
		return geom.Point{}, false
	}
	return inv.Apply(p), true
}
