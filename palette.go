// Package termpix converts raster images into terminal-displayable grids
// of colored half-block glyphs, approximating true image colors with the
// ANSI extended (256-color indexed) palette.
package termpix

// ANSI extended-color layout. Indices 0-15 are the basic colors, which
// terminals commonly remap via user themes, so this palette deliberately
// starts at the 6x6x6 color cube.
const (
	cubeBase  = 16  // first index of the 6x6x6 color cube
	cubeCount = 216 // 6*6*6
	grayBase  = 232 // first index of the grayscale ramp
	grayCount = 24
)

// cubeLevels holds the six channel intensities used by the color cube.
// The steps are not evenly spaced across 0-255; these are the values
// real terminals render for indices 16-231.
var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// PaletteEntry pairs an ANSI extended-color index with the RGB color a
// terminal renders for it.
type PaletteEntry struct {
	Index uint8
	Color RGB
}

// Palette is the fixed, immutable set of representable output colors,
// ordered by ascending ANSI index. It is generated once and never
// modified afterwards.
type Palette []PaletteEntry

// NewPalette generates the 216-entry 6x6x6 color cube, indices 16-231.
// Generation is pure: the same palette is produced every time, with no
// external input.
func NewPalette() Palette {
	p := make(Palette, 0, cubeCount)
	idx := uint8(cubeBase)
	for _, r := range cubeLevels {
		for _, g := range cubeLevels {
			for _, b := range cubeLevels {
				p = append(p, PaletteEntry{
					Index: idx,
					Color: RGB{R: r, G: g, B: b},
				})
				idx++
			}
		}
	}
	return p
}

// NewPaletteWithGrayscale generates the color cube plus the 24-entry
// grayscale ramp, indices 232-255. Gray levels step evenly from 0x08
// to 0xee.
func NewPaletteWithGrayscale() Palette {
	p := NewPalette()
	for i := 0; i < grayCount; i++ {
		gray := uint8(8 + 10*i)
		p = append(p, PaletteEntry{
			Index: uint8(grayBase + i),
			Color: RGB{R: gray, G: gray, B: gray},
		})
	}
	return p
}
