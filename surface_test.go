package tiling

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewLinearSurface(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid RGBA8", 100, 100, FormatRGBA8, nil},
		{"valid R8", 50, 50, FormatR8, nil},
		{"valid compressed", 64, 64, FormatETC2RGBA8, nil},
		{"1x1 minimum", 1, 1, FormatRGBA8, nil},
		{"zero width", 0, 100, FormatRGBA8, ErrInvalidDimensions},
		{"zero height", 100, 0, FormatRGBA8, ErrInvalidDimensions},
		{"negative width", -1, 100, FormatRGBA8, ErrInvalidDimensions},
		{"invalid format", 100, 100, Format(255), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewLinearSurface(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewLinearSurface() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.Width() != tt.width || s.Height() != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d",
					s.Width(), s.Height(), tt.width, tt.height)
			}
			if s.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", s.Format(), tt.format)
			}
			if s.IsTiled() {
				t.Error("IsTiled() = true for a linear surface")
			}
			if want := tt.format.LinearBufferBytes(tt.width, tt.height); len(s.Data()) != want {
				t.Errorf("len(Data()) = %d, want %d", len(s.Data()), want)
			}
		})
	}
}

func TestNewTiledSurface(t *testing.T) {
	s, err := NewTiledSurface(100, 70, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsTiled() {
		t.Error("IsTiled() = false for a tiled surface")
	}
	// Padded to whole tiles: 112 pixels across, 80 rows.
	if want := 112 * 4 * 80; len(s.Data()) != want {
		t.Errorf("len(Data()) = %d, want %d", len(s.Data()), want)
	}
	if want := 112 * 4; s.Stride() != want {
		t.Errorf("Stride() = %d, want %d", s.Stride(), want)
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 64*64*4)

	tests := []struct {
		name    string
		data    []byte
		stride  int
		wantErr error
	}{
		{"valid", data, 64 * 4, nil},
		{"wide stride", data, 64 * 4, nil},
		{"stride too small", data, 60 * 4, ErrInvalidStride},
		{"data too small", data[:100], 64 * 4, ErrDataTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LinearFromRaw(tt.data, 64, 64, FormatRGBA8, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LinearFromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
			_, err = TiledFromRaw(tt.data, 64, 64, FormatRGBA8, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TiledFromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStoreRectValidation(t *testing.T) {
	linear, err := NewLinearSurface(64, 64, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	tiled, err := NewTiledSurface(64, 64, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	otherFormat, err := NewLinearSurface(64, 64, FormatR8)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		dst        *Surface
		src        *Surface
		x, y, w, h int
		wantErr    error
	}{
		{"valid", tiled, linear, 0, 0, 64, 64, nil},
		{"valid sub-rect", tiled, linear, 5, 5, 20, 20, nil},
		{"zero extent", tiled, linear, 10, 10, 0, 0, nil},
		{"negative origin", tiled, linear, -1, 0, 8, 8, ErrOutOfBounds},
		{"negative extent", tiled, linear, 0, 0, -1, 8, ErrOutOfBounds},
		{"right overflow", tiled, linear, 60, 0, 8, 8, ErrOutOfBounds},
		{"bottom overflow", tiled, linear, 0, 60, 8, 8, ErrOutOfBounds},
		{"store into linear", linear, linear, 0, 0, 8, 8, ErrLayoutMismatch},
		{"store from tiled", tiled, tiled, 0, 0, 8, 8, ErrLayoutMismatch},
		{"format mismatch", tiled, otherFormat, 0, 0, 8, 8, ErrLayoutMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dst.StoreRect(tt.src, tt.x, tt.y, tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("StoreRect() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRectValidation(t *testing.T) {
	linear, err := NewLinearSurface(64, 64, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	tiled, err := NewTiledSurface(64, 64, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}

	if err := linear.LoadRect(linear, 0, 0, 8, 8); !errors.Is(err, ErrLayoutMismatch) {
		t.Errorf("LoadRect() on linear source error = %v, want ErrLayoutMismatch", err)
	}
	if err := tiled.LoadRect(linear, 0, 60, 8, 8); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("LoadRect() out of bounds error = %v, want ErrOutOfBounds", err)
	}
	if err := tiled.LoadRect(linear, 0, 0, 64, 64); err != nil {
		t.Errorf("LoadRect() full surface error = %v", err)
	}
}

// TestZeroExtentRectLeavesDataUntouched verifies the checked no-op path.
func TestZeroExtentRectLeavesDataUntouched(t *testing.T) {
	linear, err := NewLinearSurface(32, 32, FormatR8)
	if err != nil {
		t.Fatal(err)
	}
	fillPattern(linear.Data())

	tiled, err := NewTiledSurface(32, 32, FormatR8)
	if err != nil {
		t.Fatal(err)
	}
	zero := make([]byte, len(tiled.Data()))

	if err := tiled.StoreRect(linear, 3, 3, 0, 5); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tiled.Data(), zero) {
		t.Error("zero-extent StoreRect wrote data")
	}
}
