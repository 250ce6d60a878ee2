// Package codec implements the pixel transfer routines for the
// U-interleaved tiling layout: a width-specialized bulk store for
// tile-aligned interiors and a generic per-element path that is correct
// for arbitrary rectangles in both directions.
//
// Every routine in this package trusts its caller: coordinates, extents
// and strides must describe regions inside the supplied buffers. Bounds
// and format validation belong to the callers (the tiling package and
// its Surface layer).
package codec

import "unsafe"

// Uint128 is an inert 128-bit pixel element. The codec only ever copies
// it whole; it is never used arithmetically, so a plain two-word struct
// preserves byte-for-byte semantics without native 128-bit support.
type Uint128 struct {
	Lo, Hi uint64
}

// Element enumerates the fixed-width pixel element types the codec can
// transfer. The tiling layout supports exactly these five widths.
type Element interface {
	uint8 | uint16 | uint32 | uint64 | Uint128
}

// peek reinterprets b[off:] as a T without copying. Unaligned access is
// fine on the architectures this targets, the same way the rest of the
// gogpu stack reads typed values out of byte buffers.
func peek[T Element](b []byte, off int) T {
	return *(*T)(unsafe.Pointer(&b[off]))
}

// poke writes v into b at byte offset off.
func poke[T Element](b []byte, off int, v T) {
	*(*T)(unsafe.Pointer(&b[off])) = v
}

// sizeOf returns the element size in bytes as an int.
func sizeOf[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
