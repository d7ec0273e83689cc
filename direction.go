package texblend

import (
	"fmt"
	"strings"
)

// Direction selects the spatial pattern along which texture A turns into
// texture B.
type Direction int

const (
	// LeftToRight blends from A on the left edge to B on the right edge.
	LeftToRight Direction = iota
	// RightToLeft blends from A on the right edge to B on the left edge.
	RightToLeft
	// TopToBottom blends from A at the top to B at the bottom.
	TopToBottom
	// BottomToTop blends from A at the bottom to B at the top.
	BottomToTop

	// CornerTLBR blends from A in the top-left corner to B in the bottom-right.
	CornerTLBR
	// CornerTRBL blends from A in the top-right corner to B in the bottom-left.
	CornerTRBL
	// CornerBLTR blends from A in the bottom-left corner to B in the top-right.
	CornerBLTR
	// CornerBRTL blends from A in the bottom-right corner to B in the top-left.
	CornerBRTL

	// SmallCornerTL places B in the top-left quarter.
	SmallCornerTL
	// SmallCornerTR places B in the top-right quarter.
	SmallCornerTR
	// SmallCornerBL places B in the bottom-left quarter.
	SmallCornerBL
	// SmallCornerBR places B in the bottom-right quarter.
	SmallCornerBR

	// SmallCornerTLInv places A in the top-left quarter.
	SmallCornerTLInv
	// SmallCornerTRInv places A in the top-right quarter.
	SmallCornerTRInv
	// SmallCornerBLInv places A in the bottom-left quarter.
	SmallCornerBLInv
	// SmallCornerBRInv places A in the bottom-right quarter.
	SmallCornerBRInv

	directionCount
)

// directionInfo holds the names and progress function of a direction.
type directionInfo struct {
	name     string // long name, e.g. "small-corner-tl"
	label    string // batch output label, e.g. "small-tl"
	inverse  Direction
	progress func(nx, ny float64) float64
}

var directionTable = [directionCount]directionInfo{
	LeftToRight: {"left-to-right", "left-to-right", RightToLeft,
		func(nx, _ float64) float64 { return nx }},
	RightToLeft: {"right-to-left", "right-to-left", LeftToRight,
		func(nx, _ float64) float64 { return 1 - nx }},
	TopToBottom: {"top-to-bottom", "top-to-bottom", BottomToTop,
		func(_, ny float64) float64 { return ny }},
	BottomToTop: {"bottom-to-top", "bottom-to-top", TopToBottom,
		func(_, ny float64) float64 { return 1 - ny }},

	CornerTLBR: {"corner-tl-br", "corner-tl-br", CornerBRTL,
		func(nx, ny float64) float64 { return (nx + ny) / 2 }},
	CornerTRBL: {"corner-tr-bl", "corner-tr-bl", CornerBLTR,
		func(nx, ny float64) float64 { return ((1 - nx) + ny) / 2 }},
	CornerBLTR: {"corner-bl-tr", "corner-bl-tr", CornerTRBL,
		func(nx, ny float64) float64 { return (nx + (1 - ny)) / 2 }},
	CornerBRTL: {"corner-br-tl", "corner-br-tl", CornerTLBR,
		func(nx, ny float64) float64 { return ((1 - nx) + (1 - ny)) / 2 }},

	SmallCornerTL: {"small-corner-tl", "small-tl", SmallCornerTLInv,
		func(nx, ny float64) float64 { return min(1-nx, 1-ny) }},
	SmallCornerTR: {"small-corner-tr", "small-tr", SmallCornerTRInv,
		func(nx, ny float64) float64 { return min(nx, 1-ny) }},
	SmallCornerBL: {"small-corner-bl", "small-bl", SmallCornerBLInv,
		func(nx, ny float64) float64 { return min(1-nx, ny) }},
	SmallCornerBR: {"small-corner-br", "small-br", SmallCornerBRInv,
		func(nx, ny float64) float64 { return min(nx, ny) }},

	SmallCornerTLInv: {"small-corner-tl-inv", "small-tl-inv", SmallCornerTL,
		func(nx, ny float64) float64 { return max(nx, ny) }},
	SmallCornerTRInv: {"small-corner-tr-inv", "small-tr-inv", SmallCornerTR,
		func(nx, ny float64) float64 { return max(1-nx, ny) }},
	SmallCornerBLInv: {"small-corner-bl-inv", "small-bl-inv", SmallCornerBL,
		func(nx, ny float64) float64 { return max(nx, 1-ny) }},
	SmallCornerBRInv: {"small-corner-br-inv", "small-br-inv", SmallCornerBR,
		func(nx, ny float64) float64 { return max(1-nx, 1-ny) }},
}

// Valid reports whether d is one of the sixteen defined directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < directionCount
}

// String returns the long name of the direction, e.g. "small-corner-tl".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionTable[d].name
}

// Label returns the name fragment used for batch outputs, e.g. "small-tl".
func (d Direction) Label() string {
	if !d.Valid() {
		return fmt.Sprintf("direction-%d", int(d))
	}
	return directionTable[d].label
}

// Inverse returns the direction whose progress at every pixel is one minus
// the progress of d. Blending (B, A) along d.Inverse() mirrors blending
// (A, B) along d.
func (d Direction) Inverse() Direction {
	if !d.Valid() {
		return d
	}
	return directionTable[d].inverse
}

// Progress returns the raw progress in [0, 1] at normalized coordinates
// (nx, ny), before gating and shaping. It returns 0 for invalid directions.
func (d Direction) Progress(nx, ny float64) float64 {
	if !d.Valid() {
		return 0
	}
	return directionTable[d].progress(nx, ny)
}

// ParseDirection parses a long name or a label. Matching ignores case and
// surrounding whitespace.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for d := range directionCount {
		if info := &directionTable[d]; key == info.name || key == info.label {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Catalog is a fixed, ordered set of directions for batch generation.
type Catalog int

const (
	// PrimaryCatalog holds the four edge and four corner directions.
	PrimaryCatalog Catalog = iota
	// FullCatalog holds the primary directions plus the eight small-corner
	// variants.
	FullCatalog
)

// String returns "primary" or "full".
func (c Catalog) String() string {
	switch c {
	case PrimaryCatalog:
		return "primary"
	case FullCatalog:
		return "full"
	default:
		return fmt.Sprintf("Catalog(%d)", int(c))
	}
}

// Directions returns the catalog's directions in output order. The slice is
// freshly allocated.
func (c Catalog) Directions() ([]Direction, error) {
	var n Direction
	switch c {
	case PrimaryCatalog:
		n = SmallCornerTL
	case FullCatalog:
		n = directionCount
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCatalog, int(c))
	}
	dirs := make([]Direction, 0, n)
	for d := range n {
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// AllDirections returns every direction in catalog order.
func AllDirections() []Direction {
	dirs, _ := FullCatalog.Directions()
	return dirs
}
