// Package viewport owns the pan offset and zoom scale of an image view and
// turns them into the rectangle the image is stretched into.
package viewport

// Default scale bounds.
const (
	DefaultMinScale = 0.5
	DefaultMaxScale = 2.0
)

// Limits are the scale bounds of a view.
//
// MinScale is enforced whenever a pinch shrinks the image. MaxScale is only
// the target of the Max preset; pinching can zoom past it.
type Limits struct {
	MinScale float64
	MaxScale float64
}

// DefaultLimits returns the default bounds.
func DefaultLimits() Limits {
	return Limits{MinScale: DefaultMinScale, MaxScale: DefaultMaxScale}
}
