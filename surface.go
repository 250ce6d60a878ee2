package tiling

import "errors"

// Common errors for surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("tiling: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("tiling: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("tiling: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("tiling: data buffer too small")

	// ErrOutOfBounds is returned when a rectangle lies outside the surface.
	ErrOutOfBounds = errors.New("tiling: rectangle out of bounds")

	// ErrLayoutMismatch is returned when an operation receives surfaces
	// with the wrong linear/tiled layouts or differing formats.
	ErrLayoutMismatch = errors.New("tiling: surface layout mismatch")
)

// Surface pairs a pixel buffer with its dimensions, stride and format,
// in either linear or tiled layout. It is the checked entry point to the
// codec: the raw Store and Load functions trust their caller, so Surface
// enforces the bounds and layout invariants they assume before
// delegating.
//
// Thread safety: Surface is safe for concurrent read access. Transfers
// into the same destination require external synchronization.
type Surface struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
	tiled  bool
}

// NewLinearSurface allocates a linear surface at minimal stride.
func NewLinearSurface(width, height int, format Format) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Surface{
		data:   make([]byte, format.LinearBufferBytes(width, height)),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// NewTiledSurface allocates a tiled surface. The allocation is padded to
// whole 16x16 tiles in both axes, as the tiled layout requires.
func NewTiledSurface(width, height int, format Format) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	return &Surface{
		data:   make([]byte, format.TiledBufferBytes(width, height)),
		width:  width,
		height: height,
		stride: format.TiledRowBytes(width),
		format: format,
		tiled:  true,
	}, nil
}

// LinearFromRaw wraps existing linear pixel data without copying.
// The caller must ensure data remains valid for the lifetime of the
// Surface. Stride must be at least format.RowBytes(width).
func LinearFromRaw(data []byte, width, height int, format Format, stride int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	required := stride * format.HeightBlocks(height)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Surface{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// TiledFromRaw wraps existing tiled pixel data without copying.
// Stride must be at least format.TiledRowBytes(width), and the buffer
// must cover whole tiles in both axes.
func TiledFromRaw(data []byte, width, height int, format Format, stride int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.TiledRowBytes(width) {
		return nil, ErrInvalidStride
	}

	required := stride * alignUp(format.HeightBlocks(height), format.tileSide())
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Surface{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
		tiled:  true,
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes per unit row.
func (s *Surface) Stride() int { return s.stride }

// Format returns the pixel format.
func (s *Surface) Format() Format { return s.format }

// IsTiled returns true if the surface holds tiled data.
func (s *Surface) IsTiled() bool { return s.tiled }

// Data returns the raw pixel data slice.
func (s *Surface) Data() []byte { return s.data }

// checkRect validates a transfer rectangle against the surface bounds.
// For compressed formats x and y are in block units while w and h are in
// pixels, matching the codec's coordinate convention.
func (s *Surface) checkRect(x, y, w, h int) error {
	if w < 0 || h < 0 || x < 0 || y < 0 {
		return ErrOutOfBounds
	}
	if x+s.format.WidthBlocks(w) > s.format.WidthBlocks(s.width) {
		return ErrOutOfBounds
	}
	if y+s.format.HeightBlocks(h) > s.format.HeightBlocks(s.height) {
		return ErrOutOfBounds
	}
	return nil
}

// rectOffset returns the byte offset of the rectangle origin in a
// linear surface.
func (s *Surface) rectOffset(x, y int) int {
	return y*s.stride + x*s.format.BytesPerBlock()
}

// StoreRect copies the rectangle (x, y, w, h) from a linear surface into
// this tiled surface. Both surfaces must share the same format, and the
// rectangle must lie within both. Zero-extent rectangles are no-ops.
func (s *Surface) StoreRect(src *Surface, x, y, w, h int) error {
	if !s.tiled || src.tiled || s.format != src.format {
		return ErrLayoutMismatch
	}
	if err := s.checkRect(x, y, w, h); err != nil {
		return err
	}
	if err := src.checkRect(x, y, w, h); err != nil {
		return err
	}
	if w == 0 || h == 0 {
		return nil
	}

	Logger().Debug("tiling: store rect",
		"x", x, "y", y, "w", w, "h", h, "format", s.format.String())

	Store(s.data, src.data[src.rectOffset(x, y):], x, y, w, h, s.stride, src.stride, s.format)
	return nil
}

// LoadRect copies the rectangle (x, y, w, h) from this tiled surface
// into a linear surface. Both surfaces must share the same format, and
// the rectangle must lie within both. Zero-extent rectangles are no-ops.
func (s *Surface) LoadRect(dst *Surface, x, y, w, h int) error {
	if !s.tiled || dst.tiled || s.format != dst.format {
		return ErrLayoutMismatch
	}
	if err := s.checkRect(x, y, w, h); err != nil {
		return err
	}
	if err := dst.checkRect(x, y, w, h); err != nil {
		return err
	}
	if w == 0 || h == 0 {
		return nil
	}

	Logger().Debug("tiling: load rect",
		"x", x, "y", y, "w", w, "h", h, "format", s.format.String())

	Load(dst.data[dst.rectOffset(x, y):], s.data, x, y, w, h, dst.stride, s.stride, s.format)
	return nil
}
