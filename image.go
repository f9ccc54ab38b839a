package termpix

import (
	"fmt"
	"image/png"
	"os"

	"github.com/termpix/termpix/imageutil"
)

// CellsToImage re-rasterizes rendered cells into an image, one pixel
// column per cell and two pixel rows per cell row: the background entry
// on top, the foreground entry below. The result previews what a
// terminal would display, quantized to the palette.
func CellsToImage(cells [][]Cell) *imageutil.RGBAImage {
	if len(cells) == 0 {
		return imageutil.NewRGBAImage(0, 0)
	}
	rows, cols := len(cells), len(cells[0])
	img := imageutil.NewRGBAImage(cols, rows*2)

	for y, row := range cells {
		for x, cell := range row {
			top, bottom := cell.BG.Color, cell.FG.Color
			img.SetRGB(x, y*2, imageutil.RGB{R: top.R, G: top.G, B: top.B})
			img.SetRGB(x, y*2+1, imageutil.RGB{R: bottom.R, G: bottom.G, B: bottom.B})
		}
	}
	return img
}

// SavePNG writes rendered cells to a PNG file at the given path.
func SavePNG(cells [][]Cell, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, CellsToImage(cells))
}

// SaveANSI writes rendered lines to a file at the given path, one
// newline-terminated text row per terminal row.
func SaveANSI(lines []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}
	return nil
}
