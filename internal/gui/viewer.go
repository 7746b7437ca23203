package gui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"zoomview/pkg/api"
	"zoomview/pkg/geom"
	"zoomview/pkg/gesture"
	"zoomview/pkg/raster"
)

// scrollPixels converts one scroll wheel unit into pinch spread.
const scrollPixels = 0.5

// ZoomView is a widget showing an api.View. Mouse and touch input is turned
// into touch frames so the same gesture rules apply on desktop and mobile.
type ZoomView struct {
	widget.BaseWidget

	view  *api.View
	epoch time.Time

	// OnChanged is called after the transform or image changes.
	OnChanged func()
	// OnHover is called with the image pixel under the mouse.
	OnHover func(p geom.Point, ok bool)

	origin   fyne.Position // top-left of the viewport inside the widget
	measured float32       // container width of the last measurement
	pressed  bool
}

// NewZoomView creates a widget around v.
func NewZoomView(v *api.View) *ZoomView {
	z := &ZoomView{view: v, epoch: time.Now(), measured: -1}
	z.ExtendBaseWidget(z)
	return z
}

// View returns the wrapped view.
func (z *ZoomView) View() *api.View {
	return z.view
}

// SetView replaces the wrapped view, for example after opening a new file.
func (z *ZoomView) SetView(v *api.View) {
	z.view = v
	z.measured = -1
	z.changed()
}

func (z *ZoomView) changed() {
	z.Refresh()
	if z.OnChanged != nil {
		z.OnChanged()
	}
}

// CreateRenderer creates the renderer for this widget.
func (z *ZoomView) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	return &zoomViewRenderer{
		zoom:  z,
		image: img,
	}
}

func (z *ZoomView) now() time.Duration {
	return time.Since(z.epoch)
}

// frame builds a single-pointer touch frame from a Fyne point event.
func (z *ZoomView) frame(a gesture.Action, ev *fyne.PointEvent) gesture.TouchFrame {
	f := gesture.TouchFrame{Action: a, Time: z.now()}
	if ev != nil {
		f.Pointers = []gesture.PointerSample{{
			Local: z.local(ev.Position),
			Raw:   geom.Pt(float64(ev.AbsolutePosition.X), float64(ev.AbsolutePosition.Y)),
		}}
	}
	return f
}

func (z *ZoomView) local(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X-z.origin.X), float64(p.Y-z.origin.Y))
}

func (z *ZoomView) handle(f gesture.TouchFrame) {
	if z.view.HandleTouch(f) {
		z.changed()
	}
}

// MouseDown starts a single-pointer interaction.
func (z *ZoomView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	z.pressed = true
	z.handle(z.frame(gesture.Down, &ev.PointEvent))
}

// MouseUp ends the interaction and may complete a double tap.
func (z *ZoomView) MouseUp(ev *desktop.MouseEvent) {
	if !z.pressed {
		return
	}
	z.pressed = false
	z.handle(z.frame(gesture.Up, &ev.PointEvent))
}

// MouseIn is part of desktop.Hoverable.
func (z *ZoomView) MouseIn(ev *desktop.MouseEvent) {
	z.hover(ev.Position)
}

// MouseMoved reports the image pixel under the pointer.
func (z *ZoomView) MouseMoved(ev *desktop.MouseEvent) {
	z.hover(ev.Position)
}

// MouseOut is part of desktop.Hoverable.
func (z *ZoomView) MouseOut() {
	if z.OnHover != nil {
		z.OnHover(geom.Point{}, false)
	}
}

func (z *ZoomView) hover(p fyne.Position) {
	if z.OnHover == nil {
		return
	}
	z.OnHover(z.view.ViewToImage(z.local(p)))
}

// TouchDown starts a single-pointer interaction on mobile.
func (z *ZoomView) TouchDown(ev *mobile.TouchEvent) {
	z.pressed = true
	z.handle(z.frame(gesture.Down, &ev.PointEvent))
}

// TouchUp ends the interaction on mobile.
func (z *ZoomView) TouchUp(ev *mobile.TouchEvent) {
	z.pressed = false
	z.handle(z.frame(gesture.Up, &ev.PointEvent))
}

// TouchCancel abandons the interaction.
func (z *ZoomView) TouchCancel(*mobile.TouchEvent) {
	z.pressed = false
	z.handle(z.frame(gesture.Cancel, nil))
}

// Dragged pans the image.
func (z *ZoomView) Dragged(ev *fyne.DragEvent) {
	z.handle(z.frame(gesture.Move, &ev.PointEvent))
	z.hover(ev.Position)
}

// DragEnd is part of fyne.Draggable. The release itself arrives as MouseUp
// or TouchUp.
func (z *ZoomView) DragEnd() {}

// Scrolled zooms as a pinch of the same spread would.
func (z *ZoomView) Scrolled(ev *fyne.ScrollEvent) {
	z.view.ZoomPixels(float64(ev.Scrolled.DY) * scrollPixels)
	z.changed()
}

// zoomViewRenderer renders the view's current frame.
type zoomViewRenderer struct {
	zoom   *ZoomView
	image  *canvas.Image
	canvas *raster.Canvas
}

func (r *zoomViewRenderer) Layout(size fyne.Size) {
	z := r.zoom
	if z.view.Image() == nil {
		r.image.Hide()
		return
	}
	if size.Width != z.measured {
		z.view.Measure(int(size.Width))
		z.measured = size.Width
	}
	vp := z.view.Viewport()

	// Center the viewport horizontally, top aligned like a scrolling page.
	z.origin = fyne.NewPos((size.Width-float32(vp.X))/2, 0)
	if z.origin.X < 0 {
		z.origin.X = 0
	}

	// A viewport taller (or wider) than the widget is cut at its edge; the
	// rest is reached by panning.
	visible := image.Pt(min(vp.X, int(size.Width)), min(vp.Y, int(size.Height)))
	r.image.Move(z.origin)
	r.image.Resize(fyne.NewSize(float32(visible.X), float32(visible.Y)))
	r.draw(visible)
}

// draw renders the top-left part of the viewport that fits in size.
func (r *zoomViewRenderer) draw(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		r.image.Hide()
		return
	}
	if r.canvas == nil || r.canvas.Width() != size.X || r.canvas.Height() != size.Y {
		r.canvas = raster.NewCanvas(size.X, size.Y)
	}
	r.zoom.view.Render(r.canvas)
	r.image.Image = r.canvas.Image()
	r.image.Show()
	r.image.Refresh()
}

func (r *zoomViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *zoomViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *zoomViewRenderer) Refresh() {
	r.Layout(r.zoom.Size())
}

func (r *zoomViewRenderer) Destroy() {}
