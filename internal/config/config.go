// Package config loads the viewer's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"zoomview/pkg/api"
	"zoomview/pkg/gesture"
	"zoomview/pkg/layout"
	"zoomview/pkg/raster"
	"zoomview/pkg/viewport"
)

// Config represents the application configuration.
type Config struct {
	Zoom   ZoomSettings   `toml:"zoom"`
	Render RenderSettings `toml:"render"`
	Log    LogSettings    `toml:"log"`
}

// ZoomSettings mirror the view's configuration surface.
type ZoomSettings struct {
	MaxScale    float64 `toml:"max_scale"`
	MinScale    float64 `toml:"min_scale"`
	DoubleTapMS int     `toml:"double_tap_ms"`
	Width       string  `toml:"width"`
}

// RenderSettings control how frames are drawn.
type RenderSettings struct {
	Background    string `toml:"background"`
	Interpolation string `toml:"interpolation"`
}

// LogSettings configure the logger.
type LogSettings struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Zoom: ZoomSettings{
			MaxScale:    viewport.DefaultMaxScale,
			MinScale:    viewport.DefaultMinScale,
			DoubleTapMS: int(gesture.DefaultDoubleTapDuration / time.Millisecond),
			Width:       layout.Fixed.String(),
		},
		Render: RenderSettings{
			Background:    "#000000",
			Interpolation: raster.Nearest.String(),
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, overriding only the keys present.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ViewOptions converts the configuration into view options.
func (c *Config) ViewOptions() ([]api.Option, error) {
	width, err := layout.ParseWidthPolicy(c.Zoom.Width)
	if err != nil {
		return nil, fmt.Errorf("zoom.width: %w", err)
	}
	interp, err := raster.ParseInterpolation(c.Render.Interpolation)
	if err != nil {
		return nil, fmt.Errorf("render.interpolation: %w", err)
	}
	bg, err := ParseColor(c.Render.Background)
	if err != nil {
		return nil, fmt.Errorf("render.background: %w", err)
	}

	return []api.Option{
		api.MaxScale(c.Zoom.MaxScale),
		api.MinScale(c.Zoom.MinScale),
		api.DoubleTapDuration(time.Duration(c.Zoom.DoubleTapMS) * time.Millisecond),
		api.Width(width),
		api.Interpolation(interp),
		api.Background(bg),
	}, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
