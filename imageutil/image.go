// Package imageutil provides the pure Go image plumbing for termpix:
// decoding, resampling, and pixel access. Everything in this package is
// deterministic; the same source bytes and target size always produce
// the same pixel grid.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color with 8-bit red, green, and blue channels.
type RGB struct {
	R, G, B uint8
}

// RGBAImage wraps image.RGBA with convenience accessors for the
// flattened RGB values termpix reads. Alpha is carried through decode
// and resize but ignored on read; flattening to RGB is the only
// compositing performed.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates an RGBAImage of the given dimensions with the
// origin at (0, 0).
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage converts any image.Image to an RGBAImage rooted at (0, 0).
// The source is reused without copying when it is already a zero-origin
// *image.RGBA.
func FromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}
	bounds := img.Bounds()
	dst := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.RGBA, dst.RGBA.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width in pixels.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the flattened RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the pixel at (x, y) to an opaque RGB value.
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}
