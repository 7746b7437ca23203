// Package cli implements the commands shared by the zoomview binaries.
package cli

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"zoomview/internal/config"
	"zoomview/internal/script"
	"zoomview/pkg/api"
)

// NewLogger builds a logger from the [log] settings.
func NewLogger(s config.LogSettings) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(s.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if s.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// LoadConfig loads the config file and builds view options and a logger
// from it.
func LoadConfig(path string) ([]api.Option, *zap.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.ViewOptions()
	if err != nil {
		return nil, nil, err
	}
	log, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return append(opts, api.Logger(log)), log, nil
}

// Info prints an image's format and dimensions.
func Info(w io.Writer, path string) error {
	info, err := api.Info(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "File: %s\n", path)
	fmt.Fprintln(w, "────────────────────────────────────────")
	fmt.Fprintf(w, "Format: %s\n", info.Format)
	fmt.Fprintf(w, "Size: %d × %d pixels\n", info.Width, info.Height)
	fmt.Fprintf(w, "File size: %d bytes\n", info.Size)
	return nil
}

// PrintConfig writes the default configuration as TOML.
func PrintConfig(w io.Writer) error {
	data, err := config.Default().Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReplayArgs are the parsed arguments of the replay command.
type ReplayArgs struct {
	Image  string
	Script string
	Output string
	Width  int
	Config string
	Trace  bool
}

// ParseReplayArgs parses "<image> <script> [flags]".
func ParseReplayArgs(args []string) (ReplayArgs, error) {
	var ra ReplayArgs
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&ra.Output, "o", "output.png", "output PNG")
	fs.IntVar(&ra.Width, "w", 0, "container width (default: image width)")
	fs.StringVar(&ra.Config, "config", "", "config file")
	fs.BoolVar(&ra.Trace, "trace", false, "print every frame's event")

	pos, err := parseArgs(fs, args)
	if err != nil {
		return ra, err
	}
	if len(pos) != 2 {
		return ra, fmt.Errorf("replay needs an image and a script, got %d arguments", len(pos))
	}
	ra.Image, ra.Script = pos[0], pos[1]
	return ra, nil
}

// GUIArgs are the parsed arguments of the gui command.
type GUIArgs struct {
	Image  string
	Config string
}

// ParseGUIArgs parses "[image] [-config file]".
func ParseGUIArgs(args []string) (GUIArgs, error) {
	var ga GUIArgs
	fs := flag.NewFlagSet("gui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&ga.Config, "config", "", "config file")

	pos, err := parseArgs(fs, args)
	if err != nil {
		return ga, err
	}
	if len(pos) > 1 {
		return ga, fmt.Errorf("gui takes at most one image, got %d", len(pos))
	}
	if len(pos) == 1 {
		ga.Image = pos[0]
	}
	return ga, nil
}

// parseArgs parses flags that may follow the positional arguments, as in the
// usage text.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		pos = append(pos, args[0])
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return append(pos, fs.Args()...), nil
}

// Replay opens an image, plays a gesture script against it and writes the
// final frame as a PNG.
func Replay(w io.Writer, ra ReplayArgs) error {
	opts, log, err := LoadConfig(ra.Config)
	if err != nil {
		return err
	}
	defer log.Sync()

	v, err := api.Open(ra.Image, opts...)
	if err != nil {
		return err
	}
	width := ra.Width
	if width <= 0 {
		width = v.ImageSize().X
	}
	size := v.Measure(width)

	s, err := script.Load(ra.Script)
	if err != nil {
		return err
	}
	frames, err := s.Frames()
	if err != nil {
		return err
	}

	for i, f := range frames {
		before := v.Transform()
		v.HandleTouch(f)
		if ra.Trace {
			after := v.Transform()
			fmt.Fprintf(w, "%4d %-10s pointers=%d offset=%v scale=%.3f", i, f.Action, len(f.Pointers), after.Offset, after.Scale)
			if after.Preset != before.Preset {
				fmt.Fprintf(w, " preset=%v", before.Preset)
			}
			fmt.Fprintln(w)
		}
	}
	log.Debug("replayed script", zap.String("script", ra.Script), zap.Int("frames", len(frames)))

	c, err := v.RenderImage()
	if err != nil {
		return err
	}
	if err := c.SavePNG(ra.Output); err != nil {
		return err
	}

	t := v.Transform()
	fmt.Fprintf(w, "Viewport: %d × %d\n", size.X, size.Y)
	fmt.Fprintf(w, "Offset: %d,%d  Scale: %.3f  Next preset: %v\n", t.Offset.X, t.Offset.Y, t.Scale, t.Preset)
	fmt.Fprintf(w, "Destination: %v\n", v.DestinationRect())
	fmt.Fprintf(w, "Saved %s\n", ra.Output)
	return nil
}
