package gui

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomview/pkg/api"
	"zoomview/pkg/geom"
	"zoomview/pkg/viewport"
)

func newTestView(t *testing.T) *ZoomView {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return newTestViewOf(t, img)
}

func newTestViewOf(t *testing.T, img image.Image) *ZoomView {
	t.Helper()
	v, err := api.New(img)
	require.NoError(t, err)

	z := NewZoomView(v)
	z.Resize(fyne.NewSize(200, 200))
	test.WidgetRenderer(z).Layout(z.Size())
	return z
}

func pointAt(x, y float32) fyne.PointEvent {
	return fyne.PointEvent{Position: fyne.NewPos(x, y), AbsolutePosition: fyne.NewPos(x, y)}
}

func TestZoomViewCentersViewport(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	z := newTestView(t)
	assert.Equal(t, image.Pt(100, 50), z.View().Viewport())
	assert.Equal(t, fyne.NewPos(50, 0), z.origin)

	r := test.WidgetRenderer(z).(*zoomViewRenderer)
	require.NotNil(t, r.canvas)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, r.canvas.Image().RGBAAt(0, 0))
}

func TestZoomViewDragPans(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	z := newTestView(t)
	changes := 0
	z.OnChanged = func() { changes++ }

	z.MouseDown(&desktop.MouseEvent{PointEvent: pointAt(60, 10), Button: desktop.MouseButtonPrimary})
	z.Dragged(&fyne.DragEvent{PointEvent: pointAt(65, 13)})
	z.DragEnd()
	z.MouseUp(&desktop.MouseEvent{PointEvent: pointAt(65, 13), Button: desktop.MouseButtonPrimary})

	assert.Equal(t, image.Pt(5, 3), z.View().Transform().Offset)
	assert.Equal(t, 1, changes)
}

func TestZoomViewDoubleClickAppliesPreset(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	z := newTestView(t)
	click := &desktop.MouseEvent{PointEvent: pointAt(60, 10), Button: desktop.MouseButtonPrimary}
	z.MouseDown(click)
	z.MouseUp(click)
	z.MouseDown(click)
	z.MouseUp(click)

	assert.Equal(t, viewport.Max, z.View().Transform().Preset)
}

func TestZoomViewHoverMapsToImage(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	z := newTestView(t)
	var got geom.Point
	var gotOK bool
	z.OnHover = func(p geom.Point, ok bool) { got, gotOK = p, ok }

	z.MouseMoved(&desktop.MouseEvent{PointEvent: pointAt(60, 10)})
	require.True(t, gotOK)
	assert.InDelta(t, 10, got.X, 1e-6)
	assert.InDelta(t, 10, got.Y, 1e-6)

	z.MouseOut()
	assert.False(t, gotOK)
}

func TestZoomViewClipsTallViewport(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	// White on top, red from row 200 down.
	img := image.NewRGBA(image.Rect(0, 0, 100, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 100; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if y >= 200 {
				c = color.RGBA{255, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	z := newTestViewOf(t, img)
	assert.Equal(t, image.Pt(100, 400), z.View().Viewport())

	r := test.WidgetRenderer(z).(*zoomViewRenderer)
	assert.Equal(t, fyne.NewSize(100, 200), r.image.Size())
	assert.LessOrEqual(t, r.image.Position().Y+r.image.Size().Height, z.Size().Height)
	require.NotNil(t, r.canvas)
	assert.Equal(t, 200, r.canvas.Height())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, r.canvas.Image().RGBAAt(0, 199))

	// Panning up brings the lower half into the visible area.
	z.View().Pan(0, -100)
	r.Refresh()
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, r.canvas.Image().RGBAAt(0, 199))
}
