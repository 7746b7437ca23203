// Package touch assembles per-pointer touch events, as delivered by
// golang.org/x/mobile, into the multi-pointer frames the gesture tracker
// consumes.
package touch

import (
	"time"

	"golang.org/x/mobile/event/touch"

	"zoomview/pkg/geom"
	"zoomview/pkg/gesture"
)

type pointer struct {
	seq touch.Sequence
	id  int
	raw geom.Point
}

// Assembler tracks the pointers of one view. Pointers keep the index they
// got when they touched down, shifting left as earlier pointers lift.
type Assembler struct {
	// Origin is the view's top-left corner in the coordinate space of the
	// incoming events. Local positions are raw positions minus Origin.
	Origin geom.Point

	active []pointer
	nextID int
}

// Active returns the number of pointers currently down.
func (a *Assembler) Active() int {
	return len(a.active)
}

// Feed records e and returns the frame it produces. Events for sequences the
// assembler has not seen begin are dropped and report false.
func (a *Assembler) Feed(e touch.Event, at time.Duration) (gesture.TouchFrame, bool) {
	raw := geom.Pt(float64(e.X), float64(e.Y))
	i := a.find(e.Sequence)

	switch e.Type {
	case touch.TypeBegin:
		if i >= 0 {
			a.active[i].raw = raw
			return a.frame(gesture.Move, 0, at), true
		}
		a.active = append(a.active, pointer{seq: e.Sequence, id: a.nextID, raw: raw})
		a.nextID++
		if len(a.active) == 1 {
			return a.frame(gesture.Down, 0, at), true
		}
		return a.frame(gesture.Move, 0, at), true

	case touch.TypeMove:
		if i < 0 {
			return gesture.TouchFrame{}, false
		}
		a.active[i].raw = raw
		return a.frame(gesture.Move, 0, at), true

	case touch.TypeEnd:
		if i < 0 {
			return gesture.TouchFrame{}, false
		}
		a.active[i].raw = raw
		action := gesture.PointerUp
		if len(a.active) == 1 {
			action = gesture.Up
		}
		f := a.frame(action, i, at)
		a.active = append(a.active[:i], a.active[i+1:]...)
		if len(a.active) == 0 {
			a.nextID = 0
		}
		return f, true
	}
	return gesture.TouchFrame{}, false
}

// Cancel forgets every pointer and returns a Cancel frame.
func (a *Assembler) Cancel(at time.Duration) gesture.TouchFrame {
	f := a.frame(gesture.Cancel, 0, at)
	a.active = a.active[:0]
	a.nextID = 0
	return f
}

func (a *Assembler) find(seq touch.Sequence) int {
	for i, p := range a.active {
		if p.seq == seq {
			return i
		}
	}
	return -1
}

func (a *Assembler) frame(action gesture.Action, index int, at time.Duration) gesture.TouchFrame {
	ps := make([]gesture.PointerSample, len(a.active))
	for i, p := range a.active {
		ps[i] = gesture.PointerSample{
			ID:    p.id,
			Local: p.raw.Sub(a.Origin),
			Raw:   p.raw,
		}
	}
	return gesture.TouchFrame{Action: action, Pointers: ps, Index: index, Time: at}
}
