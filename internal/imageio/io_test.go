package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/texblend"
)

// checker returns an opaque n×n bitmap with a 2-color checkerboard.
func checker(t *testing.T, n int) *texblend.Bitmap {
	t.Helper()
	bm, err := texblend.NewBitmap(n)
	if err != nil {
		t.Fatalf("NewBitmap(%d): %v", n, err)
	}
	for y := range n {
		for x := range n {
			if (x+y)%2 == 0 {
				bm.SetRGBA(x, y, 200, 40, 10, 255)
			} else {
				bm.SetRGBA(x, y, 10, 90, 220, 255)
			}
		}
	}
	return bm
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			src := checker(t, 8)
			path := filepath.Join(t.TempDir(), "tex"+ext)

			if err := Save(path, src); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := LoadBitmap(path, 8)
			if err != nil {
				t.Fatalf("LoadBitmap: %v", err)
			}
			if diff := cmp.Diff(src.Data(), got.Data()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.jpg")
	if err := Save(path, checker(t, 16)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", b)
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.xcf")
	err := Save(path, checker(t, 2))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xcf) = %v, want ErrUnsupportedFormat", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Save created a file for an unsupported format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Decode of garbage succeeded")
	}
}

func TestDecodeDetectsFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatal(err)
	}
	_, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
}

func TestFitNearestNeighborUpscale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 0, blue)
	src.SetNRGBA(0, 1, blue)
	src.SetNRGBA(1, 1, red)

	bm, err := Fit(src, 4)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for y := range 4 {
		for x := range 4 {
			want := red
			if (x/2+y/2)%2 == 1 {
				want = blue
			}
			if got := bm.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFitSameSizeIsExact(t *testing.T) {
	src := checker(t, 5)
	got, err := Fit(src.ToImage(), 5)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if diff := cmp.Diff(src.Data(), got.Data()); diff != "" {
		t.Errorf("Fit changed pixels (-want +got):\n%s", diff)
	}
}

func TestFitNonSquareSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 30, 10))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	bm, err := Fit(src, 16)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if bm.Size() != 16 {
		t.Errorf("Size() = %d, want 16", bm.Size())
	}
	// A uniform white source stays white away from the borders.
	if got := bm.At(8, 8); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("center pixel = %v, want opaque white", got)
	}
}

func TestFitRejectsBadSize(t *testing.T) {
	_, err := Fit(image.NewNRGBA(image.Rect(0, 0, 4, 4)), 0)
	if !errors.Is(err, texblend.ErrEmptyBitmap) {
		t.Errorf("Fit(n=0) = %v, want ErrEmptyBitmap", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.png", "png"},
		{"a.PNG", "png"},
		{"dir/a.jpeg", "jpeg"},
		{"a.jpg", "jpeg"},
		{"a.bmp", "bmp"},
		{"a.tif", "tiff"},
		{"a.tiff", "tiff"},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatForPath(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatForPath("a.webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatForPath(.webp) = %v, want ErrUnsupportedFormat", err)
	}
}
