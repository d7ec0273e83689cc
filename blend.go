package texblend

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/texblend/internal/cache"
)

// Progress tables are memoized only for sizes up to maxTableSize, and the
// cache is bounded both by entry count and by total table bytes. Larger
// blends compute progress inline.
const (
	maxTableSize       = 256
	progressCacheSize  = 64
	progressCacheBytes = 16 << 20
)

type progressKey struct {
	dir  Direction
	size int
}

// progressTables memoizes raw direction progress per (direction, size).
// Tables are never modified after creation.
var progressTables = cache.NewWeighted[progressKey, []float64](progressCacheSize, progressCacheBytes,
	func(t []float64) int64 { return int64(len(t)) * 8 })

// progressTable returns the row-major raw progress grid for d at size n,
// or nil when n is too large to memoize.
func progressTable(d Direction, n int) []float64 {
	if n > maxTableSize {
		return nil
	}
	key := progressKey{dir: d, size: n}
	return progressTables.GetOrCreate(key, func() []float64 {
		Logger().Debug("texblend: building progress table",
			slog.String("direction", d.String()), slog.Int("size", n))
		table := make([]float64, n*n)
		for y := range n {
			ny := normalize(y, n)
			for x := range n {
				table[y*n+x] = d.Progress(normalize(x, n), ny)
			}
		}
		return table
	})
}

// normalize maps a pixel index to [0, 1]. A single-pixel bitmap maps to 0.
func normalize(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Blend composes a and b into a new bitmap of the same size.
//
// For every pixel, the direction yields a raw progress in [0, 1], the
// transition width gates it into a band centered on 0.5, and the mode
// shapes the gated value into a factor f. Each output channel is
// round(A·(1−f) + B·f).
func Blend(a, b *Bitmap, p Params) (*Bitmap, error) {
	if err := validateInputs(a, b, p); err != nil {
		return nil, err
	}
	out := &Bitmap{size: a.size, data: make([]uint8, len(a.data))}
	blend(out, a, b, p)
	return out, nil
}

// BlendInto is like Blend but writes into dst, which must have the same
// size as a and b. dst may alias a or b.
func BlendInto(dst, a, b *Bitmap, p Params) error {
	if err := validateInputs(a, b, p); err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("%w: destination", ErrNilBitmap)
	}
	if dst.size != a.size {
		return fmt.Errorf("%w: destination is %d, inputs are %d", ErrSizeMismatch, dst.size, a.size)
	}
	blend(dst, a, b, p)
	return nil
}

// Factor returns the blend factor in [0, 1] at pixel (x, y) of an n×n
// bitmap: 0 selects A, 1 selects B.
func Factor(x, y, n int, p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrEmptyBitmap, n)
	}
	if x < 0 || x >= n || y < 0 || y >= n {
		return 0, fmt.Errorf("texblend: pixel (%d, %d) outside %dx%d bitmap", x, y, n, n)
	}
	g := newGate(p.ClampedWidth())
	progress := p.Direction.Progress(normalize(x, n), normalize(y, n))
	return p.Mode.shape(g.apply(progress), x, y), nil
}

func validateInputs(a, b *Bitmap, p Params) error {
	switch {
	case a == nil:
		return fmt.Errorf("%w: texture A", ErrNilBitmap)
	case b == nil:
		return fmt.Errorf("%w: texture B", ErrNilBitmap)
	}
	if a.size <= 0 || len(a.data) != a.size*a.size*4 {
		return fmt.Errorf("%w: texture A", ErrEmptyBitmap)
	}
	if b.size <= 0 || len(b.data) != b.size*b.size*4 {
		return fmt.Errorf("%w: texture B", ErrEmptyBitmap)
	}
	if a.size != b.size {
		return fmt.Errorf("%w: texture A is %dx%d, texture B is %dx%d",
			ErrSizeMismatch, a.size, a.size, b.size, b.size)
	}
	return p.Validate()
}

// blend does the per-pixel pass. Inputs are already validated.
func blend(dst, a, b *Bitmap, p Params) {
	n := a.size
	width := p.ClampedWidth()
	Logger().Debug("texblend: blend",
		slog.Int("size", n),
		slog.String("direction", p.Direction.String()),
		slog.String("mode", p.Mode.String()),
		slog.Float64("width", width))

	g := newGate(width)
	table := progressTable(p.Direction, n)

	for y := range n {
		ny := normalize(y, n)
		for x := range n {
			var progress float64
			if table != nil {
				progress = table[y*n+x]
			} else {
				progress = p.Direction.Progress(normalize(x, n), ny)
			}
			f := p.Mode.shape(g.apply(progress), x, y)
			i := (y*n + x) * 4
			for c := range 4 {
				dst.data[i+c] = lerp8(a.data[i+c], b.data[i+c], f)
			}
		}
	}
}

// lerp8 interpolates two channel values and rounds to the nearest byte.
func lerp8(a, b uint8, f float64) uint8 {
	v := math.Round(float64(a)*(1-f) + float64(b)*f)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
