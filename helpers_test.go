package texblend

import (
	"image/color"
	"testing"
)

// Test fixtures shared across texblend tests.

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// solid returns an n×n bitmap filled with c.
func solid(t testing.TB, n int, c color.NRGBA) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(n)
	if err != nil {
		t.Fatalf("NewBitmap(%d): %v", n, err)
	}
	bm.Fill(c)
	return bm
}

// noisy returns an n×n bitmap whose pixels all differ, so that position
// mix-ups show up in comparisons.
func noisy(t testing.TB, n int, seed uint8) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(n)
	if err != nil {
		t.Fatalf("NewBitmap(%d): %v", n, err)
	}
	for i := range bm.Data() {
		bm.Data()[i] = uint8(i*37) + seed
	}
	return bm
}

// factors returns the blend factor grid for p at size n, row-major.
func factors(t testing.TB, n int, p Params) []float64 {
	t.Helper()
	out := make([]float64, 0, n*n)
	for y := range n {
		for x := range n {
			f, err := Factor(x, y, n, p)
			if err != nil {
				t.Fatalf("Factor(%d, %d, %d, %+v): %v", x, y, n, p, err)
			}
			out = append(out, f)
		}
	}
	return out
}

// pixel returns the color of (x, y) as color.NRGBA.
func pixel(bm *Bitmap, x, y int) color.NRGBA {
	r, g, b, a := bm.RGBA(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
