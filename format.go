package tiling

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tiling/internal/interleave"
)

// Format identifies a pixel storage layout the codec can transfer.
//
// The codec never interprets pixel contents; a Format only contributes
// its block geometry (width, height, bits per block). Plain formats have
// 1x1 blocks and transfer at pixel granularity; compressed formats have
// 4x4 blocks and transfer whole blocks.
type Format uint8

const (
	// FormatR8 is a plain 8-bit-per-pixel format.
	FormatR8 Format = iota

	// FormatRG8 is a plain 16-bit-per-pixel format.
	FormatRG8

	// FormatRGBA8 is a plain 32-bit-per-pixel format. This is the layout
	// of the standard RGBA8/BGRA8 render targets.
	FormatRGBA8

	// FormatRGBA16 is a plain 64-bit-per-pixel format.
	FormatRGBA16

	// FormatRGBA32F is a plain 128-bit-per-pixel format.
	FormatRGBA32F

	// FormatETC2RGB8 is a block-compressed format with 4x4-pixel,
	// 64-bit blocks.
	FormatETC2RGB8

	// FormatETC2RGBA8 is a block-compressed format with 4x4-pixel,
	// 128-bit blocks.
	FormatETC2RGBA8

	// FormatASTC4x4 is a block-compressed format with 4x4-pixel,
	// 128-bit blocks.
	FormatASTC4x4

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo describes the block geometry of a format.
type FormatInfo struct {
	// BitsPerBlock is the number of bits in one stored unit
	// (one pixel for plain formats, one block for compressed formats).
	BitsPerBlock int

	// BlockWidth and BlockHeight are the pixel dimensions of one stored
	// unit. Both are 1 for plain formats.
	BlockWidth  int
	BlockHeight int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatR8:        {BitsPerBlock: 8, BlockWidth: 1, BlockHeight: 1},
	FormatRG8:       {BitsPerBlock: 16, BlockWidth: 1, BlockHeight: 1},
	FormatRGBA8:     {BitsPerBlock: 32, BlockWidth: 1, BlockHeight: 1},
	FormatRGBA16:    {BitsPerBlock: 64, BlockWidth: 1, BlockHeight: 1},
	FormatRGBA32F:   {BitsPerBlock: 128, BlockWidth: 1, BlockHeight: 1},
	FormatETC2RGB8:  {BitsPerBlock: 64, BlockWidth: 4, BlockHeight: 4},
	FormatETC2RGBA8: {BitsPerBlock: 128, BlockWidth: 4, BlockHeight: 4},
	FormatASTC4x4:   {BitsPerBlock: 128, BlockWidth: 4, BlockHeight: 4},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BitsPerBlock returns the number of bits in one stored unit.
func (f Format) BitsPerBlock() int {
	return f.Info().BitsPerBlock
}

// BytesPerBlock returns the number of bytes in one stored unit.
func (f Format) BytesPerBlock() int {
	return f.Info().BitsPerBlock / 8
}

// BlockWidth returns the pixel width of one stored unit.
func (f Format) BlockWidth() int {
	return f.Info().BlockWidth
}

// BlockHeight returns the pixel height of one stored unit.
func (f Format) BlockHeight() int {
	return f.Info().BlockHeight
}

// IsCompressed returns true if the format stores 4x4 pixel blocks rather
// than individual pixels.
func (f Format) IsCompressed() bool {
	return f.Info().BlockWidth > 1
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatR8:
		return "R8"
	case FormatRG8:
		return "RG8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBA16:
		return "RGBA16"
	case FormatRGBA32F:
		return "RGBA32F"
	case FormatETC2RGB8:
		return "ETC2RGB8"
	case FormatETC2RGBA8:
		return "ETC2RGBA8"
	case FormatASTC4x4:
		return "ASTC4x4"
	default:
		return "Unknown"
	}
}

// tileShift returns the tile granularity shift for this format:
// 16-unit tile sides for plain formats, 4-unit sides for compressed.
func (f Format) tileShift() uint {
	if f.IsCompressed() {
		return interleave.BlockShift
	}
	return interleave.PixelShift
}

// tileSide returns the tile side length in stored units.
func (f Format) tileSide() int {
	return 1 << f.tileShift()
}

// WidthBlocks returns the number of stored units covering width pixels,
// rounding partial blocks up.
func (f Format) WidthBlocks(width int) int {
	return ceilDiv(width, f.BlockWidth())
}

// HeightBlocks returns the number of stored units covering height
// pixels, rounding partial blocks up.
func (f Format) HeightBlocks(height int) int {
	return ceilDiv(height, f.BlockHeight())
}

// RowBytes returns the minimal linear stride in bytes for an image of
// the given pixel width.
func (f Format) RowBytes(width int) int {
	return f.WidthBlocks(width) * f.BytesPerBlock()
}

// TiledRowBytes returns the tiled-buffer stride in bytes for an image of
// the given pixel width. Tiled surfaces are padded so each row of tiles
// is complete, i.e. the unit width is aligned up to the tile side.
func (f Format) TiledRowBytes(width int) int {
	return alignUp(f.WidthBlocks(width), f.tileSide()) * f.BytesPerBlock()
}

// TiledBufferBytes returns the allocation size in bytes of a tiled
// surface with the given pixel dimensions, padded to whole tiles in both
// axes.
func (f Format) TiledBufferBytes(width, height int) int {
	return f.TiledRowBytes(width) * alignUp(f.HeightBlocks(height), f.tileSide())
}

// LinearBufferBytes returns the allocation size in bytes of a linear
// surface with the given pixel dimensions at minimal stride.
func (f Format) LinearBufferBytes(width, height int) int {
	return f.RowBytes(width) * f.HeightBlocks(height)
}

// FromTexture maps a WebGPU texture format to the codec format
// describing its memory layout. Only the layout matters here: RGBA8 and
// BGRA8 share one descriptor because the codec never looks inside a
// pixel. The second result is false for texture formats the tiled
// layout does not cover.
func FromTexture(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return FormatR8, true
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return FormatRGBA8, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatRGBA8, true
	default:
		return formatCount, false
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func alignUp(v, align int) int {
	return ceilDiv(v, align) * align
}
