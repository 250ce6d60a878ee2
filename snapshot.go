package tiling

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Snapshot format: a fixed little-endian header followed by the surface
// bytes as one zstd stream. Snapshots exist for dumping and restoring
// surfaces (debugging fallback paths, golden files in tests, the
// tileconv tool); they are not part of the codec itself.

var snapshotMagic = [4]byte{'G', 'G', 'T', 'S'}

const snapshotVersion = 1

// ErrBadSnapshot is returned when snapshot data is malformed or was
// written by an unsupported version.
var ErrBadSnapshot = errors.New("tiling: malformed snapshot")

// snapshotHeader is the on-disk header, serialized little-endian.
type snapshotHeader struct {
	Magic   [4]byte
	Version uint16
	Layout  uint8 // 0 linear, 1 tiled
	Format  uint8
	Width   uint32
	Height  uint32
	Stride  uint32
	Size    uint32 // uncompressed payload size
}

// WriteSnapshot serializes the surface to w: header plus zstd-compressed
// pixel data.
func WriteSnapshot(w io.Writer, s *Surface) error {
	hdr := snapshotHeader{
		Magic:   snapshotMagic,
		Version: snapshotVersion,
		Format:  uint8(s.format),
		Width:   uint32(s.width),
		Height:  uint32(s.height),
		Stride:  uint32(s.stride),
		Size:    uint32(len(s.data)),
	}
	if s.tiled {
		hdr.Layout = 1
	}

	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("tiling: write snapshot header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("tiling: create zstd writer: %w", err)
	}
	if _, err := enc.Write(s.data); err != nil {
		enc.Close()
		return fmt.Errorf("tiling: write snapshot payload: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("tiling: flush snapshot payload: %w", err)
	}
	return nil
}

// ReadSnapshot deserializes a surface written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Surface, error) {
	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("tiling: read snapshot header: %w", err)
	}
	if hdr.Magic != snapshotMagic || hdr.Version != snapshotVersion {
		return nil, ErrBadSnapshot
	}
	format := Format(hdr.Format)
	if !format.IsValid() {
		return nil, ErrBadSnapshot
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("tiling: create zstd reader: %w", err)
	}
	defer dec.Close()

	data := make([]byte, hdr.Size)
	if _, err := io.ReadFull(dec, data); err != nil {
		return nil, fmt.Errorf("tiling: read snapshot payload: %w", err)
	}

	if hdr.Layout == 1 {
		s, err := TiledFromRaw(data, int(hdr.Width), int(hdr.Height), format, int(hdr.Stride))
		if err != nil {
			return nil, fmt.Errorf("tiling: snapshot surface: %w", err)
		}
		return s, nil
	}
	s, err := LinearFromRaw(data, int(hdr.Width), int(hdr.Height), format, int(hdr.Stride))
	if err != nil {
		return nil, fmt.Errorf("tiling: snapshot surface: %w", err)
	}
	return s, nil
}
