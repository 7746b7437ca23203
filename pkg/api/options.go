package api

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"go.uber.org/zap"

	"zoomview/pkg/gesture"
	"zoomview/pkg/layout"
	"zoomview/pkg/raster"
	"zoomview/pkg/viewport"
)

// ErrInvalidOptions is returned when options cannot describe a usable view.
var ErrInvalidOptions = errors.New("invalid view options")

// Options configures a View.
type Options struct {
	// MaxScale is the scale of the Max double-tap preset.
	// Default: 2.0
	MaxScale float64

	// MinScale is the smallest scale a pinch can reach, and the scale of the
	// Min preset.
	// Default: 0.5
	MinScale float64

	// DoubleTapDuration bounds both gaps of a double tap.
	// Default: 300ms
	DoubleTapDuration time.Duration

	// Width decides whether the view fills its container's width.
	// Default: layout.Fixed
	Width layout.WidthPolicy

	// Background fills the viewport around the image.
	// Default: black
	Background color.Color

	// Interpolation is the stretch-blit filter.
	// Default: raster.Nearest
	Interpolation raster.Interpolation

	// Logger receives measurement and preset messages.
	// Default: no-op
	Logger *zap.Logger
}

// DefaultOptions returns view options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxScale:          viewport.DefaultMaxScale,
		MinScale:          viewport.DefaultMinScale,
		DoubleTapDuration: gesture.DefaultDoubleTapDuration,
		Width:             layout.Fixed,
		Background:        color.Black,
		Interpolation:     raster.Nearest,
		Logger:            zap.NewNop(),
	}
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// MaxScale sets the Max preset scale.
func MaxScale(scale float64) Option {
	return func(o *Options) {
		o.MaxScale = scale
	}
}

// MinScale sets the lower scale bound.
func MinScale(scale float64) Option {
	return func(o *Options) {
		o.MinScale = scale
	}
}

// DoubleTapDuration sets the double-tap window.
func DoubleTapDuration(d time.Duration) Option {
	return func(o *Options) {
		o.DoubleTapDuration = d
	}
}

// Width sets the width policy.
func Width(p layout.WidthPolicy) Option {
	return func(o *Options) {
		o.Width = p
	}
}

// Background sets the background color.
func Background(c color.Color) Option {
	return func(o *Options) {
		o.Background = c
	}
}

// Interpolation sets the stretch-blit filter.
func Interpolation(i raster.Interpolation) Option {
	return func(o *Options) {
		o.Interpolation = i
	}
}

// Logger sets the logger. A nil logger disables logging.
func Logger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// NewOptions creates options from functional options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	o.Apply(opts...)
	return o
}

// Apply applies functional options to existing options.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Validate reports whether the options describe a usable view. MaxScale is
// only a preset target and may sit below MinScale.
func (o *Options) Validate() error {
	switch {
	case o.MinScale <= 0:
		return fmt.Errorf("%w: min scale %g must be positive", ErrInvalidOptions, o.MinScale)
	case o.DoubleTapDuration <= 0:
		return fmt.Errorf("%w: double tap duration %v must be positive", ErrInvalidOptions, o.DoubleTapDuration)
	}
	return nil
}

// Limits returns the scale bounds for the viewport transform.
func (o *Options) Limits() viewport.Limits {
	return viewport.Limits{MinScale: o.MinScale, MaxScale: o.MaxScale}
}
