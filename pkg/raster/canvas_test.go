package raster

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// quad returns a 2×2 image with a different color in each pixel.
func quad() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, green)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, white)
	return img
}

func TestDrawImageStretches(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawImage(quad(), image.Rect(0, 0, 4, 4))

	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, green, img.RGBAAt(3, 0))
	assert.Equal(t, blue, img.RGBAAt(0, 3))
	assert.Equal(t, white, img.RGBAAt(3, 3))
}

func TestDrawImageClipsOversizedRect(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawImage(quad(), image.Rect(-4, -4, 8, 8))

	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(3, 3))
}

func TestDrawImageLeavesBackgroundOutsideRect(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetBackground(white)
	c.Clear()
	c.DrawImage(quad(), image.Rect(1, 1, 3, 3))

	img := c.Image()
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, white, img.RGBAAt(2, 2))
}

func TestDrawImageNoop(t *testing.T) {
	c := NewCanvas(2, 2)
	c.DrawImage(nil, image.Rect(0, 0, 2, 2))
	c.DrawImage(quad(), image.Rect(2, 2, 0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(0, 0))
}

func TestPreScale(t *testing.T) {
	dst := PreScale(quad(), image.Pt(1, 1))
	require.Equal(t, image.Rect(0, 0, 1, 1), dst.Bounds())

	assert.True(t, PreScale(nil, image.Pt(3, 3)).Bounds().Eq(image.Rect(0, 0, 3, 3)))
	assert.True(t, PreScale(quad(), image.Point{}).Bounds().Empty())
}

func TestSavePNG(t *testing.T) {
	c := NewCanvas(3, 2)
	path := filepath.Join(t.TempDir(), "out", "frame.png")
	require.NoError(t, c.SavePNG(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestParseInterpolation(t *testing.T) {
	i, err := ParseInterpolation("Bilinear")
	require.NoError(t, err)
	assert.Equal(t, Bilinear, i)

	_, err = ParseInterpolation("cubic")
	assert.Error(t, err)
}
