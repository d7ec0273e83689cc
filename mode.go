package texblend

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how the gated progress is shaped into the final blend factor.
type Mode int

const (
	// Gradient eases the gated progress with a smoothstep curve.
	Gradient Mode = iota
	// Stepped thresholds the gated progress at 0.5 after adding a small
	// deterministic per-pixel jitter, giving a ragged edge.
	Stepped
	// Dither thresholds the gated progress against a 4×4 ordered dither
	// matrix.
	Dither

	modeCount
)

var modeNames = [modeCount]string{
	Gradient: "gradient",
	Stepped:  "stepped",
	Dither:   "dither",
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// String returns the mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a mode name, ignoring case and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m := range modeCount {
		if modeNames[m] == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes returns every mode.
func Modes() []Mode {
	return []Mode{Gradient, Stepped, Dither}
}

// ditherMatrix is the 4×4 Bayer matrix, already divided by 16.
// Indexed [y%4][x%4].
var ditherMatrix = [4][4]float64{
	{0.0 / 16, 8.0 / 16, 2.0 / 16, 10.0 / 16},
	{12.0 / 16, 4.0 / 16, 14.0 / 16, 6.0 / 16},
	{3.0 / 16, 11.0 / 16, 1.0 / 16, 9.0 / 16},
	{15.0 / 16, 7.0 / 16, 13.0 / 16, 5.0 / 16},
}

// steppedJitter is the amplitude of the stepped edge perturbation.
const steppedJitter = 0.3

// shape maps a gated progress value in [0, 1] to the blend factor for pixel
// (x, y).
func (m Mode) shape(gated float64, x, y int) float64 {
	switch m {
	case Stepped:
		edge := (hashNoise(x, y) - 0.5) * steppedJitter
		if clamp01(gated+edge) > 0.5 {
			return 1
		}
		return 0
	case Dither:
		if gated > ditherMatrix[y&3][x&3] {
			return 1
		}
		return 0
	default:
		return smoothstep(gated)
	}
}

// smoothstep is the Hermite easing 3t² - 2t³.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// hashNoise is the classic fract-sine hash. It returns a value in [0, 1)
// that depends only on (x, y). Results may drift by an ulp between
// platforms because math.Sin is not correctly rounded everywhere.
func hashNoise(x, y int) float64 {
	v := math.Sin(float64(x)*12.9898+float64(y)*78.233) * 43758.5453
	f := v - math.Floor(v)
	if f >= 1 {
		// v slightly below an integer can round up.
		return 0
	}
	return f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
