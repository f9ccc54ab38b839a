// termpix renders images in the terminal as ANSI 256-color half-block art.
//
// Usage:
//
//	termpix show <path|->      - Render a single image (or stdin with "-")
//	termpix gallery [dir]      - Render a directory as a thumbnail grid
//	termpix palette            - Print the generated color palette
//
// Global flags:
//
//	--grayscale   - Extend the palette with the 24-step grayscale ramp
//	--verbose     - Enable debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagGrayscale bool
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termpix",
	Short: "Render images in the terminal with ANSI half-block art",
	Long: `termpix converts images into grids of colored half-block glyphs,
approximating true image colors with the ANSI extended 256-color palette.
Each terminal cell carries two image pixels, doubling vertical resolution.

Examples:
  termpix show photo.jpg
  termpix show photo.jpg --cols 80 --rows 24
  curl -s https://example.com/cat.png | termpix show -
  termpix gallery ~/Pictures
  termpix palette --grayscale`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagGrayscale, "grayscale", false,
		"Extend the palette with the grayscale ramp (indices 232-255)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false,
		"Enable debug logging")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(paletteCmd)
}
