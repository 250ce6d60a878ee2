// Package tiling converts pixel data between linear row-major memory and
// the U-interleaved (Utgard-style) tiled layout used by Mali-class GPUs
// for textures and framebuffers.
//
// # Overview
//
// The tiled layout partitions an image into 16x16-pixel tiles stored
// tile-row-major. Within a tile, pixels are reordered by an
// XOR-interleave of their coordinate bits to improve 2D cache locality.
// Some surfaces (unsupported compression cases, certain texture and
// framebuffer combinations) fall back to this layout, so the CPU must be
// able to produce and consume it exactly.
//
// # Quick Start
//
//	import "github.com/gogpu/tiling"
//
//	f := tiling.FormatRGBA8
//	linear, _ := tiling.NewLinearSurface(256, 256, f)
//	tiled, _ := tiling.NewTiledSurface(256, 256, f)
//
//	// ... fill linear.Data() ...
//
//	// Checked transfer of a sub-rectangle into the tiled surface:
//	if err := tiled.StoreRect(linear, 10, 10, 100, 100); err != nil {
//		log.Fatal(err)
//	}
//
// The package-level Store and Load functions are the raw, unchecked
// entry points: they trust the caller completely, perform no bounds
// validation, and match the semantics of the driver-internal routines
// they model.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Store, Load, Format, Surface, snapshot I/O
//   - internal/interleave: the coordinate bit-interleaving primitive
//   - internal/codec: the width-specialized bulk store and the generic
//     per-element transfer path
//
// Stores on plain formats split the rectangle into partial-tile edge
// strips (handled per element) and a tile-aligned interior (handled by
// the bulk path). Loads and compressed-format stores always run per
// element; there is deliberately no bulk load path.
//
// # Concurrency
//
// All transfers are synchronous, stateless CPU copies. Concurrent calls
// are safe as long as the regions involved do not overlap.
package tiling
