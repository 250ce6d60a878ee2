// Command tileconv converts images between linear files and tiled
// surface snapshots.
//
// Tiling an image produces a zstd-compressed snapshot of the surface in
// the U-interleaved layout; untiling reads such a snapshot back into a
// PNG or BMP file.
//
// Usage:
//
//	tileconv -mode tile -in input.png -out surface.ggts
//	tileconv -mode untile -in surface.ggts -out output.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/tiling"
)

func main() {
	var (
		mode   = flag.String("mode", "tile", "conversion mode: tile or untile")
		input  = flag.String("in", "", "input file (PNG/BMP for tile, snapshot for untile)")
		output = flag.String("out", "", "output file (snapshot for tile, PNG/BMP for untile)")
	)
	flag.Parse()

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch *mode {
	case "tile":
		err = tileImage(*input, *output)
	case "untile":
		err = untileImage(*input, *output)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("tileconv: %v", err)
	}
}

// tileImage reads a PNG or BMP file, stores it into a tiled RGBA8
// surface and writes the surface snapshot.
func tileImage(input, output string) error {
	img, err := decodeImage(input)
	if err != nil {
		return err
	}

	b := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	linear, err := tiling.LinearFromRaw(rgba.Pix, b.Dx(), b.Dy(), tiling.FormatRGBA8, rgba.Stride)
	if err != nil {
		return err
	}
	tiled, err := tiling.NewTiledSurface(b.Dx(), b.Dy(), tiling.FormatRGBA8)
	if err != nil {
		return err
	}
	if err := tiled.StoreRect(linear, 0, 0, b.Dx(), b.Dy()); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tiling.WriteSnapshot(f, tiled); err != nil {
		return err
	}
	log.Printf("tiled %s (%dx%d) into %s", input, b.Dx(), b.Dy(), output)
	return nil
}

// untileImage reads a tiled surface snapshot, loads it back into linear
// RGBA8 pixels and encodes them as PNG or BMP.
func untileImage(input, output string) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	tiled, err := tiling.ReadSnapshot(f)
	if err != nil {
		return err
	}
	if !tiled.IsTiled() {
		return fmt.Errorf("%s holds a linear surface, nothing to untile", input)
	}
	if tiled.Format() != tiling.FormatRGBA8 {
		return fmt.Errorf("unsupported snapshot format %s", tiled.Format())
	}

	w, h := tiled.Width(), tiled.Height()
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	linear, err := tiling.LinearFromRaw(rgba.Pix, w, h, tiling.FormatRGBA8, rgba.Stride)
	if err != nil {
		return err
	}
	if err := tiled.LoadRect(linear, 0, 0, w, h); err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := encodeImage(out, output, rgba); err != nil {
		return err
	}
	log.Printf("untiled %s into %s (%dx%d)", input, output, w, h)
	return nil
}

// decodeImage reads a PNG or BMP file based on its extension.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(f)
	case ".bmp":
		return bmp.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}

// encodeImage writes a PNG or BMP file based on the output extension.
func encodeImage(f *os.File, path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		return fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}
