// Package ppmio converts a rendered raster.Bitmap into standard image
// formats for the demo commands: WebP stills for scripted/headless
// capture, and PNG for quick local inspection.
package ppmio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/kestrelgfx/rastercore/raster"
)

// ToImage converts a Bitmap into a standard image.RGBA, alpha forced
// to fully opaque since the core always writes alpha=0.
func ToImage(bmp raster.Bitmap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bmp.Width, bmp.Height))
	for i, p := range bmp.Pixels {
		img.Set(i%bmp.Width, i/bmp.Width, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
	}
	return img
}

// WriteWebP encodes bmp as a WebP still to path.
func WriteWebP(path string, bmp raster.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppmio: create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := nativewebp.Encode(w, ToImage(bmp), nil); err != nil {
		return fmt.Errorf("ppmio: encode webp: %w", err)
	}
	return w.Flush()
}

// Thumbnail downsamples bmp to width x height using a Catmull-Rom
// resampling filter, for PNG previews smaller than the rendered
// framebuffer.
func Thumbnail(bmp raster.Bitmap, width, height int) *image.RGBA {
	src := ToImage(bmp)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes bmp as a PNG to path.
func WritePNG(path string, bmp raster.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppmio: create %q: %w", path, err)
	}
	defer f.Close()
	return EncodePNG(f, bmp)
}

// EncodePNG writes bmp as PNG to an arbitrary writer.
func EncodePNG(w io.Writer, bmp raster.Bitmap) error {
	if err := png.Encode(w, ToImage(bmp)); err != nil {
		return fmt.Errorf("ppmio: encode png: %w", err)
	}
	return nil
}
