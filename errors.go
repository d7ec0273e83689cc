package texblend

import "errors"

// Input validation errors. Callers match them with errors.Is; the returned
// errors carry the offending values as context.
var (
	// ErrNilBitmap is returned when a bitmap argument is nil.
	ErrNilBitmap = errors.New("texblend: nil bitmap")

	// ErrEmptyBitmap is returned for a side length of zero or less.
	ErrEmptyBitmap = errors.New("texblend: bitmap size must be positive")

	// ErrSizeMismatch is returned when input and output sizes differ.
	ErrSizeMismatch = errors.New("texblend: bitmap sizes differ")

	// ErrNotSquare is returned when converting a non-square image.
	ErrNotSquare = errors.New("texblend: image is not square")

	// ErrDataLength is returned when a pixel buffer does not hold N*N*4 bytes.
	ErrDataLength = errors.New("texblend: pixel buffer length does not match size")

	// ErrInvalidWidth is returned for a NaN or infinite transition width.
	ErrInvalidWidth = errors.New("texblend: transition width is not finite")

	// ErrUnknownDirection is returned for an out-of-range or unparsable direction.
	ErrUnknownDirection = errors.New("texblend: unknown direction")

	// ErrUnknownMode is returned for an out-of-range or unparsable blend mode.
	ErrUnknownMode = errors.New("texblend: unknown blend mode")

	// ErrUnknownCatalog is returned for a catalog other than Primary or Full.
	ErrUnknownCatalog = errors.New("texblend: unknown direction catalog")

	// ErrEmptyName is returned when batch generation gets an empty base name.
	ErrEmptyName = errors.New("texblend: empty base name")
)
