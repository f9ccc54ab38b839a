package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termpix/termpix"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the generated color palette",
	Long: `Print every palette entry as a colored swatch with its ANSI index,
twelve per row. Useful for checking how the terminal actually renders
the indexed colors.`,
	Run: runPalette,
}

func runPalette(cmd *cobra.Command, args []string) {
	palette := termpix.NewPalette()
	if flagGrayscale {
		palette = termpix.NewPaletteWithGrayscale()
	}

	var sb strings.Builder
	for i, entry := range palette {
		fmt.Fprintf(&sb, "%s[48;5;%dm %3d %s[0m",
			termpix.ESC, entry.Index, entry.Index, termpix.ESC)
		if (i+1)%12 == 0 {
			sb.WriteByte('\n')
		}
	}
	if len(palette)%12 != 0 {
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
