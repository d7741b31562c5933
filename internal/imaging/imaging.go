// Package imaging loads plan and photo images and produces the scaled
// variants the UI needs.
package imaging

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"sitepin/pkg/geometry"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Load decodes an image file. PNG, JPEG, GIF, BMP, and TIFF are
// supported; construction plan exports are commonly TIFF.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// NaturalSize reads an image's dimensions without decoding the pixel
// data. Returns an unknown (zero) size on error so callers can fall
// back to hiding size-dependent overlays.
func NaturalSize(path string) geometry.Size {
	f, err := os.Open(path)
	if err != nil {
		return geometry.Size{}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return geometry.Size{}
	}
	return geometry.NewSize(float64(cfg.Width), float64(cfg.Height))
}

// Thumbnail scales an image down so its longest side is at most maxDim
// pixels, preserving aspect ratio. Images already small enough are
// returned as-is.
func Thumbnail(src image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	var tw, th int
	if w >= h {
		tw = maxDim
		th = h * maxDim / w
	} else {
		th = maxDim
		tw = w * maxDim / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
