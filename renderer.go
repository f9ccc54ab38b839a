package termpix

import (
	"errors"
	"fmt"
	"image"

	"github.com/termpix/termpix/imageutil"
)

var (
	// ErrInvalidImage reports a pixel source with a zero dimension.
	ErrInvalidImage = errors.New("invalid image")

	// ErrUnsupportedTarget reports a non-positive requested terminal size.
	ErrUnsupportedTarget = errors.New("unsupported target size")
)

// Renderer converts decoded images into lines of ANSI-colored half-block
// glyphs. Each terminal cell carries two source pixels: the top pixel as
// the cell background and the bottom pixel as the foreground of a lower
// half block (U+2584), doubling the vertical resolution per cell.
//
// The zero configuration renders against the 216-color cube with
// Catmull-Rom resampling. A Renderer is safe for concurrent use.
type Renderer struct {
	matcher   *Matcher
	interp    imageutil.Interpolation
	grayscale bool
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		interp: imageutil.InterpolationArea,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.matcher == nil {
		if r.grayscale {
			r.matcher = NewMatcher(NewPaletteWithGrayscale())
		} else {
			r.matcher = NewMatcher(NewPalette())
		}
	}
	return r
}

// WithGrayscale extends the palette with the 24-entry grayscale ramp
// (indices 232-255). Ignored when WithMatcher supplies a matcher.
func WithGrayscale() RendererOption {
	return func(r *Renderer) {
		r.grayscale = true
	}
}

// WithInterpolation sets the resampling kernel.
func WithInterpolation(interp imageutil.Interpolation) RendererOption {
	return func(r *Renderer) {
		r.interp = interp
	}
}

// WithMatcher shares an existing matcher, and with it a warm color
// cache, across renderers. Colors repeat heavily across related images,
// so reuse pays off when rendering many of them.
func WithMatcher(m *Matcher) RendererOption {
	return func(r *Renderer) {
		r.matcher = m
	}
}

// Matcher returns the matcher the renderer resolves colors through.
func (r *Renderer) Matcher() *Matcher {
	return r.matcher
}

// RenderCells resamples the image to cols x rows*2 pixels and maps each
// vertical pixel pair onto one terminal cell, resolving both pixels
// through the palette matcher. Cells are produced in row-major order,
// rows cells high and cols cells wide.
//
// It fails with ErrUnsupportedTarget when cols or rows is not positive
// and with ErrInvalidImage when the source has a zero dimension. No
// partial result is produced on failure.
func (r *Renderer) RenderCells(img image.Image, cols, rows int) ([][]Cell, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrUnsupportedTarget, cols, rows)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: source is %dx%d pixels",
			ErrInvalidImage, bounds.Dx(), bounds.Dy())
	}

	grid := imageutil.Resize(imageutil.FromImage(img), cols, rows*2, r.interp)

	cells := make([][]Cell, rows)
	for row := 0; row < rows; row++ {
		line := make([]Cell, cols)
		for col := 0; col < cols; col++ {
			top := grid.GetRGB(col, row*2)
			bottom := grid.GetRGB(col, row*2+1)
			line[col] = Cell{
				FG: r.matcher.Resolve(RGB{R: bottom.R, G: bottom.G, B: bottom.B}),
				BG: r.matcher.Resolve(RGB{R: top.R, G: top.G, B: top.B}),
			}
		}
		cells[row] = line
	}
	return cells, nil
}

// Render renders the image at exactly cols x rows terminal cells and
// returns one text line per terminal row, ready to be written verbatim
// to the terminal. The caller chooses cols and rows; aspect ratio is
// not reinterpreted here.
func (r *Renderer) Render(img image.Image, cols, rows int) ([]string, error) {
	cells, err := r.RenderCells(img, cols, rows)
	if err != nil {
		return nil, err
	}
	return RenderToANSI(cells), nil
}

// RenderFitCells shrinks the image to fit within cols x rows terminal
// cells, preserving the source aspect ratio and never upscaling, then
// maps it onto cells. The fit is computed in pixel space, where a cell
// is one pixel wide and two pixels tall.
func (r *Renderer) RenderFitCells(img image.Image, cols, rows int) ([][]Cell, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrUnsupportedTarget, cols, rows)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: source is %dx%d pixels",
			ErrInvalidImage, bounds.Dx(), bounds.Dy())
	}

	w, h := imageutil.FitWithin(bounds.Dx(), bounds.Dy(), cols, rows*2)
	fitRows := h / 2
	if fitRows < 1 {
		fitRows = 1
	}
	return r.RenderCells(img, w, fitRows)
}

// RenderFit is RenderFitCells followed by ANSI line assembly.
func (r *Renderer) RenderFit(img image.Image, cols, rows int) ([]string, error) {
	cells, err := r.RenderFitCells(img, cols, rows)
	if err != nil {
		return nil, err
	}
	return RenderToANSI(cells), nil
}
