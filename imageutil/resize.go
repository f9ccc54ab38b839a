package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the resampling kernel for Resize.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the highest-quality kernel
	// here for downscaling. All kernels reproduce flat input exactly:
	// resizing a uniform solid-color image yields that same color in
	// every output pixel.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor sampling.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resamples an image to exactly width x height pixels using the
// given interpolation kernel.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	interp.scaler().Scale(dst.RGBA, image.Rect(0, 0, width, height),
		img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWithin returns the largest dimensions that preserve the source
// aspect ratio and fit inside boxW x boxH without upscaling. A source
// already inside the box is returned unchanged. Both results are at
// least 1.
func FitWithin(srcW, srcH, boxW, boxH int) (int, int) {
	if srcW <= boxW && srcH <= boxH {
		return srcW, srcH
	}
	scaleW := float64(boxW) / float64(srcW)
	scaleH := float64(boxH) / float64(srcH)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	w := int(float64(srcW)*scale + 0.5)
	h := int(float64(srcH)*scale + 0.5)
	if w > boxW {
		w = boxW
	}
	if h > boxH {
		h = boxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
