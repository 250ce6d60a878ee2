// Package interleave implements the bit-interleaving primitive behind the
// U-interleaved (Utgard-style) tiling layout.
//
// Within each 16x16 tile, the byte offset of the pixel at tile-local
// coordinates (x, y) follows the bit pattern
//
//	| y3 | (x3 ^ y3) | y2 | (y2 ^ x2) | y1 | (y1 ^ x1) | y0 | (y0 ^ x0) |
//
// Splitting the pattern into two lines shows how to compute it cheaply:
//
//	  | y3 | y3 | y2 | y2 | y1 | y1 | y0 | y0 |
//	^ |  0 | x3 |  0 | x2 |  0 | x1 |  0 | x0 |
//
// The top line duplicates each Y bit into two adjacent positions and is a
// function of Y only, so callers can look it up once per row. The bottom
// line spaces the X bits out into every other position. Both lines are
// served by 16-entry lookup tables, so no general bit-interleave
// instruction is needed.
package interleave

// Tile geometry shared by every codec path. Compressed formats tile 4x4
// blocks instead of pixels, so their tiles are 4x4 units for the same
// 16x16 pixel footprint.
const (
	TileWidth     = 16
	TileHeight    = 16
	PixelsPerTile = TileWidth * TileHeight

	// PixelShift is the tile shift for plain formats (16 = 1<<4 units per
	// tile side). BlockShift is the tile shift for 4x4 block-compressed
	// formats (4 = 1<<2 units per tile side).
	PixelShift = 4
	BlockShift = 2
)

// duplication maps a 4-bit value to the value with every bit replicated
// into two adjacent positions: bit i of v lands in bits 2i and 2i+1.
var duplication = [16]uint32{
	0b00000000,
	0b00000011,
	0b00001100,
	0b00001111,
	0b00110000,
	0b00110011,
	0b00111100,
	0b00111111,
	0b11000000,
	0b11000011,
	0b11001100,
	0b11001111,
	0b11110000,
	0b11110011,
	0b11111100,
	0b11111111,
}

// spacing maps a 4-bit value to the value with its bits spaced out into
// every other position: bit i of v lands in bit 2i.
var spacing = [16]uint32{
	0b0000000,
	0b0000001,
	0b0000100,
	0b0000101,
	0b0010000,
	0b0010001,
	0b0010100,
	0b0010101,
	0b1000000,
	0b1000001,
	0b1000100,
	0b1000101,
	0b1010000,
	0b1010001,
	0b1010100,
	0b1010101,
}

// Duplicate returns the low 4 bits of v with each bit replicated into two
// adjacent output positions. This is the Y contribution to the tile-local
// offset; it is constant across a row, so callers hoist it out of their
// inner loops.
func Duplicate(v uint32) uint32 {
	return duplication[v&0xF]
}

// Spread returns the low 4 bits of v spaced out into every other output
// position. This is the X contribution to the tile-local offset.
func Spread(v uint32) uint32 {
	return spacing[v&0xF]
}

// Offset returns the tile-local element index of the unit at tile-local
// coordinates (x, y). Multiply by the element size to get a byte offset.
func Offset(x, y uint32) uint32 {
	return Duplicate(y) ^ Spread(x)
}
