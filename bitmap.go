package texblend

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Bitmap is a square buffer of non-premultiplied RGBA pixels.
//
// Pixels are stored row-major, 4 bytes per pixel, so the byte offset of
// (x, y) is (y*N + x) * 4.
type Bitmap struct {
	size int
	data []uint8
}

// NewBitmap creates a transparent bitmap of side length n.
func NewBitmap(n int) (*Bitmap, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyBitmap, n)
	}
	return &Bitmap{
		size: n,
		data: make([]uint8, n*n*4),
	}, nil
}

// NewBitmapFromData wraps an existing RGBA buffer. The buffer is not
// copied; it must hold exactly n*n*4 bytes.
func NewBitmapFromData(n int, data []uint8) (*Bitmap, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyBitmap, n)
	}
	if len(data) != n*n*4 {
		return nil, fmt.Errorf("%w: size %d needs %d bytes, got %d", ErrDataLength, n, n*n*4, len(data))
	}
	return &Bitmap{size: n, data: data}, nil
}

// BitmapFromImage copies a square image into a new bitmap.
// Use imageio.Fit first for images that are not square.
func BitmapFromImage(img image.Image) (*Bitmap, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, b.Dx(), b.Dy())
	}
	bm, err := NewBitmap(b.Dx())
	if err != nil {
		return nil, err
	}

	// NRGBA with the same origin is a plain row copy.
	if src, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		rowLen := bm.size * 4
		for y := range bm.size {
			copy(bm.data[y*rowLen:(y+1)*rowLen], src.Pix[y*src.Stride:y*src.Stride+rowLen])
		}
		return bm, nil
	}

	dst := bm.nrgbaView()
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return bm, nil
}

// Size returns the side length N.
func (b *Bitmap) Size() int {
	return b.size
}

// Data returns the raw pixel buffer (RGBA, non-premultiplied).
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// RGBA returns the channels of pixel (x, y).
// Out-of-range coordinates return transparent black.
func (b *Bitmap) RGBA(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return 0, 0, 0, 0
	}
	i := (y*b.size + x) * 4
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// SetRGBA sets pixel (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) SetRGBA(x, y int, r, g, bl, a uint8) {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return
	}
	i := (y*b.size + x) * 4
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// Fill sets every pixel to the given color.
func (b *Bitmap) Fill(c color.NRGBA) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Bitmap{size: b.size, data: data}
}

// ToImage copies the bitmap into a new image.NRGBA.
func (b *Bitmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.size, b.size))
	copy(img.Pix, b.data)
	return img
}

// nrgbaView returns an image.NRGBA sharing the bitmap's buffer.
func (b *Bitmap) nrgbaView() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.size * 4,
		Rect:   image.Rect(0, 0, b.size, b.size),
	}
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	r, g, bl, a := b.RGBA(x, y)
	return color.NRGBA{R: r, G: g, B: bl, A: a}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.size, b.size)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}
