package gesture

import (
	"image"
	"time"

	"zoomview/pkg/geom"
)

// DefaultDoubleTapDuration is the widest gap allowed between the two downs of
// a double tap, and between the second down and the final up.
const DefaultDoubleTapDuration = 300 * time.Millisecond

// State is everything the tracker remembers between frames of one
// interaction.
type State struct {
	// Last single-pointer position, raw coordinates.
	last    geom.Point
	hasLast bool

	// Pointer separation seen on the previous two-pointer frame.
	separation    int
	hasSeparation bool

	// Set by PointerUp; the next single-pointer move re-baselines from it
	// instead of producing a pan.
	anchor    geom.Point
	hasAnchor bool

	// Times of the two most recent downs, oldest first.
	downs     [2]time.Duration
	downCount int
}

// Anchor returns the transitional anchor recorded by the last PointerUp.
func (s State) Anchor() (geom.Point, bool) {
	return s.anchor, s.hasAnchor
}

// Pinching reports whether a two-pointer baseline is being tracked.
func (s State) Pinching() bool {
	return s.hasSeparation
}

func (s *State) recordDown(at time.Duration) {
	s.downs[0] = s.downs[1]
	s.downs[1] = at
	if s.downCount < 2 {
		s.downCount++
	}
}

func (s *State) clearInteraction() {
	s.hasLast = false
	s.hasSeparation = false
	s.separation = 0
	s.hasAnchor = false
}

// Tracker classifies touch frames. It is not safe for concurrent use; hosts
// deliver frames from a single goroutine.
type Tracker struct {
	doubleTap  time.Duration
	viewLength int
	state      State
}

// NewTracker creates a tracker for a view of the given size. A non-positive
// double tap duration selects DefaultDoubleTapDuration.
func NewTracker(viewSize image.Point, doubleTap time.Duration) *Tracker {
	if doubleTap <= 0 {
		doubleTap = DefaultDoubleTapDuration
	}
	return &Tracker{
		doubleTap:  doubleTap,
		viewLength: geom.MeanLength(viewSize),
	}
}

// SetViewSize updates the size used to normalise pinch deltas. Call it after
// every measurement pass.
func (t *Tracker) SetViewSize(size image.Point) {
	t.viewLength = geom.MeanLength(size)
}

// ViewLength returns the characteristic view length, (width+height)/2.
func (t *Tracker) ViewLength() int {
	return t.viewLength
}

// State returns a copy of the current gesture state.
func (t *Tracker) State() State {
	return t.state
}

// Process consumes one frame and returns the resulting event.
func (t *Tracker) Process(f TouchFrame) Event {
	switch f.Action {
	case Down:
		return t.down(f)
	case Move:
		return t.move(f)
	case PointerUp:
		return t.pointerUp(f)
	case Up:
		return t.up(f)
	case Cancel:
		t.state = State{}
	}
	return Event{}
}

func (t *Tracker) down(f TouchFrame) Event {
	t.state.recordDown(f.Time)
	t.state.hasAnchor = false
	if p, ok := f.Primary(); ok {
		t.state.last = p.Raw
		t.state.hasLast = true
	}
	return Event{}
}

func (t *Tracker) move(f TouchFrame) Event {
	switch len(f.Pointers) {
	case 1:
		return t.drag(f.Pointers[0])
	case 2:
		return t.pinch(f.Pointers[0], f.Pointers[1])
	}
	t.state.hasSeparation = false
	return Event{}
}

func (t *Tracker) drag(p PointerSample) Event {
	s := &t.state
	s.hasSeparation = false

	if s.hasAnchor {
		s.hasAnchor = false
		s.last = p.Raw
		s.hasLast = true
		return Event{}
	}

	prev, ok := s.last, s.hasLast
	s.last = p.Raw
	s.hasLast = true
	if !ok {
		return PanEvent(0, 0)
	}
	d := p.Raw.Sub(prev)
	return PanEvent(d.X, d.Y)
}

func (t *Tracker) pinch(a, b PointerSample) Event {
	s := &t.state
	sep := int(geom.Distance(a.Local, b.Local))

	if !s.hasSeparation {
		s.separation = sep
		s.hasSeparation = true
	}
	delta := sep - s.separation
	s.separation = sep

	if t.viewLength <= 0 {
		return Event{}
	}
	return ScaleEvent(float64(delta) / float64(t.viewLength))
}

func (t *Tracker) pointerUp(f TouchFrame) Event {
	s := &t.state
	s.hasSeparation = false
	if f.Index >= 0 && f.Index < len(f.Pointers) {
		s.anchor = f.Pointers[f.Index].Raw
		s.hasAnchor = true
	}
	return Event{}
}

func (t *Tracker) up(f TouchFrame) Event {
	s := &t.state
	s.clearInteraction()

	if s.downCount < 2 {
		return Event{}
	}
	first, second := s.downs[0], s.downs[1]
	if second-first < t.doubleTap && f.Time-second < t.doubleTap {
		return Event{Kind: DoubleTap}
	}
	return Event{}
}
