// Package imageio loads source textures, fits them onto the square canvas
// the compositor works on, and writes results back to disk.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/texblend"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned for an output extension with no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// DefaultJPEGQuality is used when saving .jpg/.jpeg files.
const DefaultJPEGQuality = 92

// Decode decodes an image from r, auto-detecting the format.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadBitmap loads the image at path and fits it onto an n×n canvas.
func LoadBitmap(path string, n int) (*texblend.Bitmap, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Fit(img, n)
}

// Fit renders img onto a transparent n×n canvas, stretching it to fill.
//
// Sources whose size is an integer multiple or divisor of n on both axes
// are scaled with nearest-neighbor sampling so that block-texture texels
// stay crisp; anything else is resampled with Catmull-Rom.
func Fit(img image.Image, n int) (*texblend.Bitmap, error) {
	bm, err := texblend.NewBitmap(n)
	if err != nil {
		return nil, err
	}
	sb := img.Bounds()
	if sb.Empty() {
		return nil, ErrEmptyImage
	}

	dst := image.NewNRGBA(image.Rect(0, 0, n, n))
	if sb.Dx() == n && sb.Dy() == n {
		draw.Draw(dst, dst.Bounds(), img, sb.Min, draw.Src)
	} else {
		scalerFor(sb.Dx(), sb.Dy(), n).Scale(dst, dst.Bounds(), img, sb, draw.Src, nil)
	}
	copy(bm.Data(), dst.Pix)
	return bm, nil
}

func scalerFor(w, h, n int) draw.Scaler {
	if pixelAligned(w, n) && pixelAligned(h, n) {
		return draw.NearestNeighbor
	}
	return draw.CatmullRom
}

func pixelAligned(src, n int) bool {
	if src >= n {
		return src%n == 0
	}
	return n%src == 0
}

// Encode writes bm to w in the named format: "png", "jpeg", "bmp" or
// "tiff".
func Encode(w io.Writer, bm *texblend.Bitmap, format string) error {
	img := bm.ToImage()
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpeg":
		err = jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: DefaultJPEGQuality})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// FormatForPath maps a file extension to an Encode format name.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save encodes bm to path, choosing the format from the extension.
func Save(path string, bm *texblend.Bitmap) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, bm, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// flatten composites img over opaque black, since JPEG has no alpha.
func flatten(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}
