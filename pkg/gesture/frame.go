// Package gesture turns a stream of multi-pointer touch frames into pan,
// pinch-scale and double-tap events.
package gesture

import (
	"fmt"
	"time"

	"zoomview/pkg/geom"
)

// Action is the kind of change a TouchFrame reports.
type Action uint8

const (
	// Down is the first pointer touching the view.
	Down Action = iota + 1
	// Move reports new positions for every active pointer. Hosts also send
	// Move when an extra pointer joins an ongoing interaction.
	Move
	// PointerUp is one of several pointers lifting; the others stay down.
	PointerUp
	// Up is the last pointer lifting.
	Up
	// Cancel aborts the interaction.
	Cancel
)

func (a Action) String() string {
	switch a {
	case Down:
		return "down"
	case Move:
		return "move"
	case PointerUp:
		return "pointer-up"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// PointerSample is one pointer's position within a frame.
type PointerSample struct {
	ID int

	// Local is relative to the view's top-left corner.
	Local geom.Point

	// Raw is in screen (or window) coordinates and is unaffected by where the
	// view sits or how it is transformed.
	Raw geom.Point
}

// TouchFrame is every active pointer at one instant plus the action that
// produced the frame. Pointers are ordered by index; the pointer that just
// lifted is still present in a PointerUp or Up frame.
type TouchFrame struct {
	Action   Action
	Pointers []PointerSample

	// Index is the position in Pointers of the pointer a PointerUp refers to.
	Index int

	// Time is the event time on a monotonic clock of the host's choosing.
	Time time.Duration
}

// Primary returns the first pointer, if any.
func (f TouchFrame) Primary() (PointerSample, bool) {
	if len(f.Pointers) == 0 {
		return PointerSample{}, false
	}
	return f.Pointers[0], true
}

// EventKind classifies the result of processing a frame.
type EventKind uint8

const (
	None EventKind = iota
	Pan
	Scale
	DoubleTap
)

func (k EventKind) String() string {
	switch k {
	case None:
		return "none"
	case Pan:
		return "pan"
	case Scale:
		return "scale"
	case DoubleTap:
		return "double-tap"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is what the tracker emits for one frame.
type Event struct {
	Kind EventKind

	// DX and DY are set for Pan, in raw pixels.
	DX, DY float64

	// Delta is set for Scale: the change in pointer separation divided by the
	// view's characteristic length.
	Delta float64
}

// PanEvent returns a Pan event.
func PanEvent(dx, dy float64) Event {
	return Event{Kind: Pan, DX: dx, DY: dy}
}

// ScaleEvent returns a Scale event.
func ScaleEvent(delta float64) Event {
	return Event{Kind: Scale, Delta: delta}
}

func (e Event) String() string {
	switch e.Kind {
	case Pan:
		return fmt.Sprintf("pan(%g,%g)", e.DX, e.DY)
	case Scale:
		return fmt.Sprintf("scale(%g)", e.Delta)
	}
	return e.Kind.String()
}
