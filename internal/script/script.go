// Package script reads gesture scripts: TOML lists of per-finger touch
// events that can be replayed against a view without a display.
//
//	[[touch]]
//	seq = 0
//	type = "begin"
//	x = 120
//	y = 80
//	at_ms = 0
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mobile/event/touch"

	"zoomview/pkg/geom"
	"zoomview/pkg/gesture"
	ztouch "zoomview/pkg/touch"
)

// ErrUnknownType is returned for a touch type other than begin, move, end or
// cancel.
var ErrUnknownType = errors.New("unknown touch type")

// Step is one scripted touch event.
type Step struct {
	Seq  int64   `toml:"seq"`
	Type string  `toml:"type"`
	X    float32 `toml:"x"`
	Y    float32 `toml:"y"`
	AtMS int64   `toml:"at_ms"`
}

// Script is a parsed gesture script.
type Script struct {
	// OriginX and OriginY place the view in the coordinate space of the steps.
	OriginX float64 `toml:"origin_x"`
	OriginY float64 `toml:"origin_y"`

	Touch []Step `toml:"touch"`
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a script and checks every step's type.
func Read(r io.Reader) (*Script, error) {
	var s Script
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, st := range s.Touch {
		if st.Type == "cancel" {
			continue
		}
		if _, err := parseType(st.Type); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

func parseType(s string) (touch.Type, error) {
	switch s {
	case "begin":
		return touch.TypeBegin, nil
	case "move":
		return touch.TypeMove, nil
	case "end":
		return touch.TypeEnd, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownType, s)
}

// Frames assembles the steps into touch frames. Steps for fingers that never
// began are skipped, as a live host would drop them.
func (s *Script) Frames() ([]gesture.TouchFrame, error) {
	asm := &ztouch.Assembler{Origin: geom.Pt(s.OriginX, s.OriginY)}
	frames := make([]gesture.TouchFrame, 0, len(s.Touch))

	for i, st := range s.Touch {
		at := time.Duration(st.AtMS) * time.Millisecond
		if st.Type == "cancel" {
			frames = append(frames, asm.Cancel(at))
			continue
		}
		typ, err := parseType(st.Type)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		e := touch.Event{X: st.X, Y: st.Y, Sequence: touch.Sequence(st.Seq), Type: typ}
		if f, ok := asm.Feed(e, at); ok {
			frames = append(frames, f)
		}
	}
	return frames, nil
}
