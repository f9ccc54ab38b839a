package termpix

import (
	"fmt"
	"strings"
)

const (
	// ESC is the escape byte opening every SGR sequence.
	ESC = "\u001b"

	// HalfBlock is the lower half block glyph (U+2584) used for every
	// cell: the background paints the top half, the foreground the
	// bottom half.
	HalfBlock = '▄'

	resetSeq = ESC + "[0m"
)

// Cell is the unit of output: one half-block glyph with the palette
// entries for its foreground (bottom pixel) and background (top pixel).
type Cell struct {
	FG PaletteEntry
	BG PaletteEntry
}

// RenderToANSI assembles cell rows into terminal text lines. Within a
// line the indexed-color SGR codes (48;5;n background, 38;5;n
// foreground) are emitted only when the respective index changes, so
// runs of same-colored cells cost one sequence. Every line ends with a
// formatting reset.
func RenderToANSI(cells [][]Cell) []string {
	lines := make([]string, len(cells))
	for i, row := range cells {
		var sb strings.Builder
		lastFg, lastBg := -1, -1
		for _, cell := range row {
			if bg := int(cell.BG.Index); bg != lastBg {
				fmt.Fprintf(&sb, "%s[48;5;%dm", ESC, bg)
				lastBg = bg
			}
			if fg := int(cell.FG.Index); fg != lastFg {
				fmt.Fprintf(&sb, "%s[38;5;%dm", ESC, fg)
				lastFg = fg
			}
			sb.WriteRune(HalfBlock)
		}
		sb.WriteString(resetSeq)
		lines[i] = sb.String()
	}
	return lines
}
