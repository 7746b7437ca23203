// Package raster draws a source image into a destination rectangle on an
// RGBA surface.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation selects the resampling filter of a stretch blit.
type Interpolation uint8

const (
	// Nearest copies the closest source pixel, like an unfiltered blit.
	Nearest Interpolation = iota
	// Bilinear blends neighbouring source pixels.
	Bilinear
)

func (i Interpolation) String() string {
	if i == Bilinear {
		return "bilinear"
	}
	return "nearest"
}

// ParseInterpolation accepts "nearest" or "bilinear".
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	}
	return Nearest, fmt.Errorf("unknown interpolation %q", s)
}

func (i Interpolation) scaler() draw.Scaler {
	if i == Bilinear {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}

// Canvas represents a drawing surface the size of a viewport.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	background    color.Color
	interpolation Interpolation
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		background: color.Black,
	}
	c.Clear()
	return c
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SetBackground sets the color Clear fills with.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// SetInterpolation sets the filter used by DrawImage.
func (c *Canvas) SetInterpolation(i Interpolation) {
	c.interpolation = i
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// DrawImage stretches src into dr. Parts of dr outside the canvas are
// clipped; a nil source or an empty rectangle draws nothing.
func (c *Canvas) DrawImage(src image.Image, dr image.Rectangle) {
	if src == nil || dr.Empty() || src.Bounds().Empty() {
		return
	}
	c.interpolation.scaler().Scale(c.img, dr, src, src.Bounds(), draw.Over, nil)
}

// SavePNG writes the canvas to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return f.Close()
}

// PreScale resamples src to size with nearest-neighbour filtering. It is done
// once per measurement pass, not per frame.
func PreScale(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	if src == nil || size.X <= 0 || size.Y <= 0 {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
