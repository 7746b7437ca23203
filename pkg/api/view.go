// Package api is the entry point for hosts: it wires the gesture tracker,
// the viewport transform and the rasterizer around one decoded image.
package api

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"zoomview/pkg/geom"
	"zoomview/pkg/gesture"
	"zoomview/pkg/layout"
	"zoomview/pkg/raster"
	"zoomview/pkg/viewport"
)

// ErrNoImage is returned when a view has nothing to show.
var ErrNoImage = errors.New("no image set")

// View is a zoomable, pannable image. It is not safe for concurrent use;
// the host delivers touch frames and draws from the same goroutine.
type View struct {
	opts Options
	log  *zap.Logger

	src    image.Image
	scaled image.Image // src resampled to the viewport, when layout asks for it

	size    image.Point
	tracker *gesture.Tracker
	xf      *viewport.Transformer
}

// New creates a view of img. img may be nil and set later with SetImage.
func New(img image.Image, opts ...Option) (*View, error) {
	o := NewOptions(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	v := &View{
		opts:    o,
		log:     o.Logger,
		tracker: gesture.NewTracker(image.Point{}, o.DoubleTapDuration),
		xf:      viewport.NewTransformer(o.Limits()),
	}
	v.SetImage(img)
	return v, nil
}

// Open decodes the image at path and creates a view of it.
func Open(path string, opts ...Option) (*View, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return New(img, opts...)
}

// Options returns the options the view was created with.
func (v *View) Options() Options {
	return v.opts
}

// SetImage replaces the image. Call Measure afterwards to size the view.
func (v *View) SetImage(img image.Image) {
	v.src = img
	v.scaled = img
}

// Image returns the source image, or nil.
func (v *View) Image() image.Image {
	return v.src
}

// ImageSize returns the natural size of the source image.
func (v *View) ImageSize() image.Point {
	if v.src == nil {
		return image.Point{}
	}
	return v.src.Bounds().Size()
}

// Measure sizes the view for a container measureWidth pixels wide and
// returns the viewport size. The image is resampled here when it is wider
// than the container, so drawing never has to.
func (v *View) Measure(measureWidth int) image.Point {
	res := layout.Measure(v.ImageSize(), measureWidth, v.opts.Width)
	v.size = res.Viewport
	v.tracker.SetViewSize(res.Viewport)

	v.scaled = v.src
	if res.PreScale {
		v.scaled = raster.PreScale(v.src, res.Viewport)
	}

	v.log.Info("measured view",
		zap.Int("container", measureWidth),
		zap.Stringer("policy", v.opts.Width),
		zap.Int("width", res.Viewport.X),
		zap.Int("height", res.Viewport.Y),
		zap.Bool("prescaled", res.PreScale),
		zap.Int("viewLength", res.ViewLength()))
	return v.size
}

// SetViewport sets the viewport size directly, for hosts whose layout is
// decided elsewhere. No resampling is done.
func (v *View) SetViewport(size image.Point) {
	v.size = size
	v.tracker.SetViewSize(size)
	v.scaled = v.src
}

// Viewport returns the current viewport size.
func (v *View) Viewport() image.Point {
	return v.size
}

// HandleTouch feeds one frame to the gesture tracker and applies the result
// to the transform. It reports whether the view needs redrawing.
func (v *View) HandleTouch(f gesture.TouchFrame) bool {
	ev := v.tracker.Process(f)
	switch ev.Kind {
	case gesture.Pan:
		v.xf.ApplyPan(ev.DX, ev.DY)
	case gesture.Scale:
		v.xf.ApplyScale(ev.Delta)
	case gesture.DoubleTap:
		v.DoubleTap()
	default:
		return f.Action == gesture.Move
	}
	return true
}

// DoubleTap applies the next zoom preset as if the user had double tapped.
func (v *View) DoubleTap() viewport.Preset {
	p := v.xf.OnDoubleTap()
	t := v.xf.Transform()
	v.log.Debug("applied zoom preset",
		zap.Stringer("preset", p),
		zap.Float64("scale", t.Scale),
		zap.Int("offsetX", t.Offset.X),
		zap.Int("offsetY", t.Offset.Y))
	return p
}

// Zoom changes the scale by delta, clamped below like a pinch.
func (v *View) Zoom(delta float64) {
	v.xf.ApplyScale(delta)
}

// ZoomPixels changes the scale as a pinch whose spread changed by px would.
func (v *View) ZoomPixels(px float64) {
	if l := v.tracker.ViewLength(); l > 0 {
		v.xf.ApplyScale(px / float64(l))
	}
}

// Pan moves the image by dx, dy pixels.
func (v *View) Pan(dx, dy float64) {
	v.xf.ApplyPan(dx, dy)
}

// Reset restores the initial transform and forgets any gesture in flight.
func (v *View) Reset() {
	v.xf.Reset()
	v.tracker.Process(gesture.TouchFrame{Action: gesture.Cancel})
	v.log.Debug("reset view")
}

// Transform returns the current transform.
func (v *View) Transform() viewport.Transform {
	return v.xf.Transform()
}

// DestinationRect returns where the image is drawn within the viewport.
func (v *View) DestinationRect() image.Rectangle {
	return v.xf.DestinationRect(v.size.X, v.size.Y)
}

// ViewToImage maps a view-local point to source image pixels.
func (v *View) ViewToImage(p geom.Point) (geom.Point, bool) {
	if v.src == nil {
		return geom.Point{}, false
	}
	return v.xf.ViewToImage(p, v.size.X, v.size.Y, v.ImageSize())
}

// DrawImage returns the image the renderer should stretch into
// DestinationRect: the pre-scaled copy when measurement made one.
func (v *View) DrawImage() image.Image {
	return v.scaled
}

// Render clears c and draws the image into it. Without an image only the
// background is drawn.
func (v *View) Render(c *raster.Canvas) {
	c.SetBackground(v.opts.Background)
	c.SetInterpolation(v.opts.Interpolation)
	c.Clear()
	if v.scaled == nil {
		return
	}
	c.DrawImage(v.scaled, v.DestinationRect())
}

// RenderImage renders the view into a new viewport-sized canvas.
func (v *View) RenderImage() (*raster.Canvas, error) {
	if v.src == nil {
		return nil, ErrNoImage
	}
	c := raster.NewCanvas(v.size.X, v.size.Y)
	v.Render(c)
	return c, nil
}
