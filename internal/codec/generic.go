package codec

import "github.com/gogpu/tiling/internal/interleave"

// access transfers a rectangle between a tiled and a linear buffer one
// element at a time. It is correct for any coordinates, any extents and
// either direction; the price is one offset computation per element with
// no per-row amortization.
//
// tileShift selects the tile granularity: interleave.PixelShift for
// plain formats, interleave.BlockShift when each element is a 4x4
// compressed block. The address arithmetic is identical in both
// directions; store only decides which side is written.
func access[T Element](tiled, linear []byte, x, y, w, h, tiledStride, linearStride int, tileShift uint, store bool) {
	size := sizeOf[T]()
	mask := 1<<tileShift - 1
	unitsPerTile := 1 << (tileShift * 2)

	for srcY := 0; srcY < h; srcY++ {
		yy := y + srcY
		blockY := yy &^ mask
		blockStart := blockY * tiledStride
		lineStart := srcY * linearStride
		expandedY := interleave.Duplicate(uint32(yy & mask))

		for srcX := 0; srcX < w; srcX++ {
			xx := x + srcX
			blockX := (xx >> tileShift) * unitsPerTile
			index := int(expandedY ^ interleave.Spread(uint32(xx&mask)))

			tiledOff := blockStart + (blockX+index)*size
			linearOff := lineStart + srcX*size

			if store {
				poke(tiled, tiledOff, peek[T](linear, linearOff))
			} else {
				poke(linear, linearOff, peek[T](tiled, tiledOff))
			}
		}
	}
}

// AccessBits dispatches access on the element width in bits. Unsupported
// widths fall through without transferring anything.
func AccessBits(bpp int, tiled, linear []byte, x, y, w, h, tiledStride, linearStride int, tileShift uint, store bool) {
	switch bpp {
	case 8:
		access[uint8](tiled, linear, x, y, w, h, tiledStride, linearStride, tileShift, store)
	case 16:
		access[uint16](tiled, linear, x, y, w, h, tiledStride, linearStride, tileShift, store)
	case 32:
		access[uint32](tiled, linear, x, y, w, h, tiledStride, linearStride, tileShift, store)
	case 64:
		access[uint64](tiled, linear, x, y, w, h, tiledStride, linearStride, tileShift, store)
	case 128:
		access[Uint128](tiled, linear, x, y, w, h, tiledStride, linearStride, tileShift, store)
	}
}
