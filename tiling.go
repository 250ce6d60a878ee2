package tiling

import (
	"github.com/gogpu/tiling/internal/codec"
	"github.com/gogpu/tiling/internal/interleave"
)

// accessGeneric routes a transfer through the per-element codec. For
// compressed formats the rectangle's extents are converted from pixels
// to blocks, rounding partial blocks up; x and y are already in block
// units for those formats. The tiled buffer is always the first
// argument regardless of direction.
func accessGeneric(tiled, linear []byte, x, y, w, h, tiledStride, linearStride int, format Format, store bool) {
	info := format.Info()
	if info.BlockWidth > 1 {
		w = ceilDiv(w, info.BlockWidth)
		h = ceilDiv(h, info.BlockHeight)
		codec.AccessBits(info.BitsPerBlock, tiled, linear, x, y, w, h,
			tiledStride, linearStride, interleave.BlockShift, store)
		return
	}
	codec.AccessBits(info.BitsPerBlock, tiled, linear, x, y, w, h,
		tiledStride, linearStride, interleave.PixelShift, store)
}

// Store writes a w-by-h rectangle of pixels from a linear buffer into a
// tiled buffer. x and y position the rectangle in the destination
// surface; for compressed formats they are in block units while w and h
// stay in pixels. dstStride and srcStride are in bytes per unit row.
//
// Store does not validate its inputs: the caller must supply buffers
// that cover (x+w, y+h) and strides consistent with the format, and the
// two regions must not overlap. Zero-extent rectangles are safe no-ops;
// unsupported bit depths transfer nothing. Use Surface.StoreRect for a
// checked entry point.
//
// Compressed formats go through the per-element codec in block units.
// Plain formats are decomposed: partial-tile strips along the top,
// bottom, left and right edges go through the per-element codec, and
// the remaining tile-aligned interior through the bulk codec.
func Store(dst, src []byte, x, y, w, h, dstStride, srcStride int, format Format) {
	if format.IsCompressed() {
		accessGeneric(dst, src, x, y, w, h, dstStride, srcStride, format, true)
		return
	}

	bpp := format.BytesPerBlock()
	firstFullX := alignUp(x, interleave.TileWidth)
	firstFullY := alignUp(y, interleave.TileHeight)
	lastFullX := (x + w) &^ (interleave.TileWidth - 1)
	lastFullY := (y + h) &^ (interleave.TileHeight - 1)

	// Strip sources are addressed relative to the caller's original
	// rectangle origin; the tiled side always uses absolute coordinates.
	origX, origY := x, y
	offset := func(px, py int) []byte {
		return src[(py-origY)*srcStride+(px-origX)*bpp:]
	}

	// Top strip, above the first full tile row.
	if firstFullY != y {
		dist := min(firstFullY-y, h)
		accessGeneric(dst, offset(x, y), x, y, w, dist, dstStride, srcStride, format, true)
		if dist == h {
			return
		}
		y += dist
		h -= dist
	}

	// Bottom strip, below the last full tile row.
	if lastFullY != y+h {
		dist := y + h - lastFullY
		accessGeneric(dst, offset(x, lastFullY), x, lastFullY, w, dist, dstStride, srcStride, format, true)
		h -= dist
	}

	// Left strip, over the already shrunk height.
	if firstFullX != x {
		dist := min(firstFullX-x, w)
		accessGeneric(dst, offset(x, y), x, y, dist, h, dstStride, srcStride, format, true)
		if dist == w {
			return
		}
		x += dist
		w -= dist
	}

	// Right strip.
	if lastFullX != x+w {
		dist := x + w - lastFullX
		accessGeneric(dst, offset(lastFullX, y), lastFullX, y, dist, h, dstStride, srcStride, format, true)
		w -= dist
	}

	// Tile-aligned interior.
	codec.StoreAlignedBits(format.BitsPerBlock(), dst, offset(x, y), x, y, w, h, dstStride, srcStride)
}

// Load writes a w-by-h rectangle of pixels from a tiled buffer into a
// linear buffer. Parameters mirror Store with the buffer roles swapped:
// dstStride is the linear stride, srcStride the tiled stride.
//
// Load runs entirely on the per-element codec; there is no bulk load
// path, so load throughput is bounded by the element loop. The same
// caller contract as Store applies. Use Surface.LoadRect for a checked
// entry point.
func Load(dst, src []byte, x, y, w, h, dstStride, srcStride int, format Format) {
	accessGeneric(src, dst, x, y, w, h, srcStride, dstStride, format, false)
}
