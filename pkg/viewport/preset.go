package viewport

import "fmt"

// Preset is a zoom level reached by double tapping.
type Preset uint8

const (
	// Fit shows the image at scale 1 with no pan offset.
	Fit Preset = iota
	// Max zooms to the configured maximum scale.
	Max
	// Min zooms to the configured minimum scale.
	Min

	presetCount
)

func (p Preset) String() string {
	switch p {
	case Fit:
		return "fit"
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return fmt.Sprintf("Preset(%d)", uint8(p))
}

// Effect is the change a preset makes to the transform.
type Effect struct {
	ResetOffset bool
	Scale       float64
}

// Cycle returns the effect of applying p and the preset that follows it.
// The order is Fit, Max, Min and then Fit again.
func Cycle(p Preset, l Limits) (Preset, Effect) {
	var eff Effect
	switch p {
	case Max:
		eff = Effect{Scale: l.MaxScale}
	case Min:
		eff = Effect{Scale: l.MinScale}
	default:
		p = Fit
		eff = Effect{ResetOffset: true, Scale: 1}
	}
	return (p + 1) % presetCount, eff
}
