package codec

import (
	"math/bits"

	"github.com/gogpu/tiling/internal/interleave"
)

// StoreAligned transfers a rectangle from a linear buffer into a tiled
// buffer, one T per pixel. It is the fast path for interiors whose width
// covers whole tiles: the inner 16-element loop always runs to
// completion, so the caller must guarantee w is a multiple of the tile
// width and x is tile-aligned (the dispatcher's decomposition does).
//
// The linear side is addressed from the top-left of the rectangle, i.e.
// src[0] is pixel (x, y); the tiled side is addressed in absolute
// coordinates. Per row, the tile-row base falls out of truncating y to
// the tile grid, and the Y contribution to the tile-local offset is
// looked up once and reused for all 16 positions of every tile the row
// crosses. Advancing one tile to the right adds a constant tile-sized
// stride to the destination cursor.
func StoreAligned[T Element](dst, src []byte, x, y, w, h, dstStride, srcStride int) {
	size := sizeOf[T]()
	shift := bits.TrailingZeros(uint(size))
	tileBytes := interleave.PixelsPerTile << shift

	destStart := (x >> interleave.PixelShift) * tileBytes
	for srcY := 0; srcY < h; srcY++ {
		yy := y + srcY
		blockY := yy &^ (interleave.TileHeight - 1)
		dest := destStart + blockY*dstStride
		source := srcY * srcStride
		expandedY := int(interleave.Duplicate(uint32(yy))) << shift

		for col := 0; col < w; dest += tileBytes {
			for i := uint32(0); i < interleave.TileWidth; i++ {
				index := expandedY ^ int(interleave.Spread(i))<<shift
				poke(dst, dest+index, peek[T](src, source+col*size))
				col++
			}
		}
	}
}

// StoreAlignedBits dispatches StoreAligned on the element width in bits.
// Unsupported widths fall through without transferring anything.
func StoreAlignedBits(bpp int, dst, src []byte, x, y, w, h, dstStride, srcStride int) {
	switch bpp {
	case 8:
		StoreAligned[uint8](dst, src, x, y, w, h, dstStride, srcStride)
	case 16:
		StoreAligned[uint16](dst, src, x, y, w, h, dstStride, srcStride)
	case 32:
		StoreAligned[uint32](dst, src, x, y, w, h, dstStride, srcStride)
	case 64:
		StoreAligned[uint64](dst, src, x, y, w, h, dstStride, srcStride)
	case 128:
		StoreAligned[Uint128](dst, src, x, y, w, h, dstStride, srcStride)
	}
}
