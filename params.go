package texblend

import (
	"fmt"
	"math"
)

// Width bounds, in percent.
const (
	MinWidth = 0.0
	MaxWidth = 100.0
)

// Params configures a single blend.
type Params struct {
	// Direction is the spatial pattern of the transition.
	Direction Direction

	// Mode shapes the gated progress into the blend factor.
	Mode Mode

	// Width is the transition width in percent. 0 is a hard step at the
	// midpoint, 100 spans the full progress range. Finite values outside
	// [MinWidth, MaxWidth] are clamped.
	Width float64
}

// Validate checks the enums and that Width is finite.
func (p Params) Validate() error {
	if !p.Direction.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, int(p.Direction))
	}
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(p.Mode))
	}
	if math.IsNaN(p.Width) || math.IsInf(p.Width, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, p.Width)
	}
	return nil
}

// ClampedWidth returns Width limited to [MinWidth, MaxWidth].
func (p Params) ClampedWidth() float64 {
	return max(MinWidth, min(MaxWidth, p.Width))
}

// gate is the transition band derived from a width percentage.
// The band is centered on progress 0.5.
type gate struct {
	hard       bool
	start, end float64
}

func newGate(widthPercent float64) gate {
	w := widthPercent / 100
	if w == 0 {
		return gate{hard: true}
	}
	half := w / 2
	return gate{start: 0.5 - half, end: 0.5 + half}
}

// apply maps a raw progress value to [0, 1].
func (g gate) apply(progress float64) float64 {
	switch {
	case g.hard:
		if progress < 0.5 {
			return 0
		}
		return 1
	case progress <= g.start:
		return 0
	case progress >= g.end:
		return 1
	default:
		return (progress - g.start) / (g.end - g.start)
	}
}
