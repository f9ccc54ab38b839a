package termpix

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/termpix/termpix/imageutil"
)

// uniformImage builds a solid-color test image.
func uniformImage(w, h int, c RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

func glyphCount(line string) int {
	return strings.Count(line, string(HalfBlock))
}

func TestRenderDimensions(t *testing.T) {
	r := NewRenderer()
	tests := []struct {
		srcW, srcH int
		cols, rows int
	}{
		{100, 100, 10, 5},
		{1, 1, 7, 3},
		{640, 480, 80, 24},
		{3, 9, 1, 1},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%dx%d_to_%dx%d", tt.srcW, tt.srcH, tt.cols, tt.rows)
		t.Run(name, func(t *testing.T) {
			lines, err := r.Render(uniformImage(tt.srcW, tt.srcH, RGB{80, 90, 100}), tt.cols, tt.rows)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if len(lines) != tt.rows {
				t.Fatalf("expected %d lines, got %d", tt.rows, len(lines))
			}
			for i, line := range lines {
				if got := glyphCount(line); got != tt.cols {
					t.Errorf("line %d: expected %d glyphs, got %d", i, tt.cols, got)
				}
				if !strings.HasSuffix(line, ESC+"[0m") {
					t.Errorf("line %d missing trailing reset", i)
				}
			}
		})
	}
}

func TestRenderRedOverBlue(t *testing.T) {
	// 1x2 source: pure red on top, pure blue below. At 1x1 cells the
	// background must resolve to the red-nearest entry and the
	// foreground to the blue-nearest entry.
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})

	r := NewRenderer()
	cells, err := r.RenderCells(img, 1, 1)
	if err != nil {
		t.Fatalf("RenderCells failed: %v", err)
	}
	if len(cells) != 1 || len(cells[0]) != 1 {
		t.Fatalf("expected a single cell, got %dx%d", len(cells), len(cells[0]))
	}

	wantBG := r.Matcher().Resolve(RGB{R: 255})
	wantFG := r.Matcher().Resolve(RGB{B: 255})
	cell := cells[0][0]
	if cell.BG != wantBG {
		t.Errorf("background index %d, want red-nearest %d", cell.BG.Index, wantBG.Index)
	}
	if cell.FG != wantFG {
		t.Errorf("foreground index %d, want blue-nearest %d", cell.FG.Index, wantFG.Index)
	}

	line := RenderToANSI(cells)[0]
	wantPrefix := fmt.Sprintf("%s[48;5;%dm%s[38;5;%dm", ESC, wantBG.Index, ESC, wantFG.Index)
	if !strings.HasPrefix(line, wantPrefix) {
		t.Errorf("line %q does not start with %q", line, wantPrefix)
	}
}

func TestRenderUniformImage(t *testing.T) {
	// Resampling flat input must reproduce the exact color in every
	// cell, for any source size, target size, and kernel.
	c := RGB{100, 150, 200}
	kernels := []struct {
		name string
		opt  RendererOption
	}{
		{"area", nil},
		{"linear", WithInterpolation(imageutil.InterpolationLinear)},
		{"nearest", WithInterpolation(imageutil.InterpolationNearest)},
	}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			var r *Renderer
			if k.opt == nil {
				r = NewRenderer()
			} else {
				r = NewRenderer(k.opt)
			}
			want := r.Matcher().Resolve(c)

			cells, err := r.RenderCells(uniformImage(17, 9, c), 5, 3)
			if err != nil {
				t.Fatalf("RenderCells failed: %v", err)
			}
			for y, row := range cells {
				for x, cell := range row {
					if cell.FG != want || cell.BG != want {
						t.Fatalf("cell (%d,%d) = fg %d / bg %d, want both %d",
							x, y, cell.FG.Index, cell.BG.Index, want.Index)
					}
				}
			}
		})
	}
}

func TestRenderUnsupportedTarget(t *testing.T) {
	r := NewRenderer()
	img := uniformImage(4, 4, RGB{})
	for _, tt := range []struct{ cols, rows int }{
		{0, 5}, {5, 0}, {0, 0}, {-3, 5}, {5, -1},
	} {
		if _, err := r.Render(img, tt.cols, tt.rows); !errors.Is(err, ErrUnsupportedTarget) {
			t.Errorf("Render(%d, %d): expected ErrUnsupportedTarget, got %v",
				tt.cols, tt.rows, err)
		}
	}
}

func TestRenderInvalidImage(t *testing.T) {
	r := NewRenderer()
	for _, tt := range []struct{ w, h int }{{0, 0}, {0, 5}, {5, 0}} {
		img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
		if _, err := r.Render(img, 4, 4); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("Render of %dx%d source: expected ErrInvalidImage, got %v",
				tt.w, tt.h, err)
		}
		if _, err := r.RenderFit(img, 4, 4); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("RenderFit of %dx%d source: expected ErrInvalidImage, got %v",
				tt.w, tt.h, err)
		}
	}
}

func TestRenderFitPreservesAspect(t *testing.T) {
	r := NewRenderer()

	// A wide image constrained by width: 200x100 into an 80x24 cell
	// box (80x48 pixels) fits at 80x40 pixels, i.e. 80 cols, 20 rows.
	lines, err := r.RenderFit(uniformImage(200, 100, RGB{50, 50, 50}), 80, 24)
	if err != nil {
		t.Fatalf("RenderFit failed: %v", err)
	}
	if len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	if got := glyphCount(lines[0]); got != 80 {
		t.Errorf("expected 80 cols, got %d", got)
	}
}

func TestRenderFitNeverUpscales(t *testing.T) {
	r := NewRenderer()
	lines, err := r.RenderFit(uniformImage(10, 8, RGB{50, 50, 50}), 80, 24)
	if err != nil {
		t.Fatalf("RenderFit failed: %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows (8 pixel rows), got %d", len(lines))
	}
	if got := glyphCount(lines[0]); got != 10 {
		t.Errorf("expected 10 cols, got %d", got)
	}
}

func TestRenderGrayscaleOption(t *testing.T) {
	r := NewRenderer(WithGrayscale())
	if got := len(r.Matcher().Palette()); got != 240 {
		t.Fatalf("grayscale renderer palette has %d entries, want 240", got)
	}

	// Mid-gray sits closer to the ramp than to any cube entry.
	entry := r.Matcher().Resolve(RGB{128, 128, 128})
	if entry.Index < 232 {
		t.Errorf("mid-gray resolved to cube index %d, want a ramp index", entry.Index)
	}
}

func TestWithMatcherShared(t *testing.T) {
	m := NewMatcher(NewPalette())
	a := NewRenderer(WithMatcher(m))
	b := NewRenderer(WithMatcher(m))
	if a.Matcher() != m || b.Matcher() != m {
		t.Fatal("renderers do not share the supplied matcher")
	}

	if _, err := a.Render(uniformImage(6, 6, RGB{9, 9, 9}), 3, 3); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, err := b.Render(uniformImage(6, 6, RGB{9, 9, 9}), 3, 3); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	hits, _, _ := m.CacheStats()
	if hits == 0 {
		t.Error("shared matcher recorded no cache hits across renders")
	}
}

func TestRenderToANSICompressesRuns(t *testing.T) {
	entry := PaletteEntry{Index: 42, Color: RGB{}}
	row := []Cell{{FG: entry, BG: entry}, {FG: entry, BG: entry}, {FG: entry, BG: entry}}
	line := RenderToANSI([][]Cell{row})[0]

	if got := strings.Count(line, "[48;5;42m"); got != 1 {
		t.Errorf("background code emitted %d times, want 1", got)
	}
	if got := strings.Count(line, "[38;5;42m"); got != 1 {
		t.Errorf("foreground code emitted %d times, want 1", got)
	}
	if got := glyphCount(line); got != 3 {
		t.Errorf("expected 3 glyphs, got %d", got)
	}
}
