package tiling

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format     Format
		bits       int
		blockW     int
		blockH     int
		compressed bool
	}{
		{FormatR8, 8, 1, 1, false},
		{FormatRG8, 16, 1, 1, false},
		{FormatRGBA8, 32, 1, 1, false},
		{FormatRGBA16, 64, 1, 1, false},
		{FormatRGBA32F, 128, 1, 1, false},
		{FormatETC2RGB8, 64, 4, 4, true},
		{FormatETC2RGBA8, 128, 4, 4, true},
		{FormatASTC4x4, 128, 4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BitsPerBlock(); got != tt.bits {
				t.Errorf("BitsPerBlock() = %d, want %d", got, tt.bits)
			}
			if got := tt.format.BytesPerBlock(); got != tt.bits/8 {
				t.Errorf("BytesPerBlock() = %d, want %d", got, tt.bits/8)
			}
			if got := tt.format.BlockWidth(); got != tt.blockW {
				t.Errorf("BlockWidth() = %d, want %d", got, tt.blockW)
			}
			if got := tt.format.BlockHeight(); got != tt.blockH {
				t.Errorf("BlockHeight() = %d, want %d", got, tt.blockH)
			}
			if got := tt.format.IsCompressed(); got != tt.compressed {
				t.Errorf("IsCompressed() = %v, want %v", got, tt.compressed)
			}
			if !tt.format.IsValid() {
				t.Error("IsValid() = false for a known format")
			}
		})
	}

	if Format(250).IsValid() {
		t.Error("IsValid() = true for an unknown format")
	}
	if got := Format(250).String(); got != "Unknown" {
		t.Errorf("String() = %q for an unknown format", got)
	}
}

func TestFormatSizes(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		width      int
		height     int
		rowBytes   int
		tiledRow   int
		tiledBytes int
	}{
		// 100 pixels pad to 112 (7 tiles) across, 80 rows pad to 80.
		{"RGBA8 100x70", FormatRGBA8, 100, 70, 400, 448, 448 * 80},
		// 8bpp at an exact tile multiple needs no padding.
		{"R8 64x32", FormatR8, 64, 32, 64, 64, 64 * 32},
		// 33 pixels is 9 blocks, padded to 12 block columns (3 tiles);
		// 10 pixels is 3 block rows, padded to 4.
		{"ETC2RGB8 33x10", FormatETC2RGB8, 33, 10, 9 * 8, 12 * 8, 12 * 8 * 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.RowBytes(tt.width); got != tt.rowBytes {
				t.Errorf("RowBytes(%d) = %d, want %d", tt.width, got, tt.rowBytes)
			}
			if got := tt.format.TiledRowBytes(tt.width); got != tt.tiledRow {
				t.Errorf("TiledRowBytes(%d) = %d, want %d", tt.width, got, tt.tiledRow)
			}
			if got := tt.format.TiledBufferBytes(tt.width, tt.height); got != tt.tiledBytes {
				t.Errorf("TiledBufferBytes(%d, %d) = %d, want %d",
					tt.width, tt.height, got, tt.tiledBytes)
			}
		})
	}
}

func TestFromTexture(t *testing.T) {
	tests := []struct {
		name    string
		texture gputypes.TextureFormat
		want    Format
		ok      bool
	}{
		{"R8Unorm", gputypes.TextureFormatR8Unorm, FormatR8, true},
		{"RGBA8Unorm", gputypes.TextureFormatRGBA8Unorm, FormatRGBA8, true},
		{"BGRA8Unorm", gputypes.TextureFormatBGRA8Unorm, FormatRGBA8, true},
		{"Depth24PlusStencil8", gputypes.TextureFormatDepth24PlusStencil8, FormatRGBA8, true},
		{"Undefined", gputypes.TextureFormatUndefined, formatCount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTexture(tt.texture)
			if ok != tt.ok {
				t.Fatalf("FromTexture() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("FromTexture() = %v, want %v", got, tt.want)
			}
		})
	}
}
