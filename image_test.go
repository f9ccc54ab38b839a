package termpix

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCellsToImage(t *testing.T) {
	red := PaletteEntry{Index: 196, Color: RGB{255, 0, 0}}
	blue := PaletteEntry{Index: 21, Color: RGB{0, 0, 255}}
	cells := [][]Cell{
		{{FG: blue, BG: red}, {FG: red, BG: blue}},
	}

	img := CellsToImage(cells)
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("expected 2x2 image, got %dx%d", img.Width(), img.Height())
	}

	// Background paints the top pixel, foreground the bottom pixel.
	checks := []struct {
		x, y int
		want RGB
	}{
		{0, 0, red.Color},
		{0, 1, blue.Color},
		{1, 0, blue.Color},
		{1, 1, red.Color},
	}
	for _, c := range checks {
		got := img.GetRGB(c.x, c.y)
		if (RGB{got.R, got.G, got.B}) != c.want {
			t.Errorf("pixel (%d,%d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}
}

func TestCellsToImageEmpty(t *testing.T) {
	img := CellsToImage(nil)
	if img.Width() != 0 || img.Height() != 0 {
		t.Fatalf("expected empty image, got %dx%d", img.Width(), img.Height())
	}
}

func TestSavePNG(t *testing.T) {
	entry := PaletteEntry{Index: 46, Color: RGB{0, 255, 0}}
	cells := [][]Cell{{{FG: entry, BG: entry}}}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(cells, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen output: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 2 {
		t.Errorf("expected 1x2 PNG, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestSaveANSI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ans")
	lines := []string{"line-one", "line-two"}
	if err := SaveANSI(lines, path); err != nil {
		t.Fatalf("SaveANSI failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "line-one\nline-two\n" {
		t.Errorf("unexpected file contents: %q", data)
	}
}
