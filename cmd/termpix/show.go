package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termpix/termpix"
	"github.com/termpix/termpix/imageutil"
)

var (
	flagCols   int
	flagRows   int
	flagOutput string
)

var showCmd = &cobra.Command{
	Use:   "show <path|->",
	Short: "Render a single image",
	Long: `Render an image at the detected terminal size, preserving its
aspect ratio. Pass "-" to read image bytes from stdin.

Examples:
  termpix show photo.jpg
  termpix show photo.jpg --cols 60
  termpix show photo.jpg --output photo.ans
  termpix show photo.jpg --output preview.png
  cat photo.png | termpix show -`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVarP(&flagCols, "cols", "c", 0,
		"Columns of output (default: terminal width)")
	showCmd.Flags().IntVarP(&flagRows, "rows", "r", 0,
		"Rows of output (default: terminal height minus one)")
	showCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"Write output to a file (.png for an image preview) instead of stdout")
}

func runShow(cmd *cobra.Command, args []string) error {
	var (
		img *imageutil.RGBAImage
		err error
	)
	if args[0] == "-" {
		img, err = imageutil.DecodeImage(os.Stdin)
	} else {
		img, err = imageutil.LoadImage(args[0])
	}
	if err != nil {
		return err
	}

	cols, rows := targetSize()
	renderer := newRenderer()

	start := time.Now()
	cells, err := renderer.RenderFitCells(img, cols, rows)
	if err != nil {
		return err
	}
	lines := termpix.RenderToANSI(cells)
	log.Debug("rendered image",
		"source", fmt.Sprintf("%dx%d", img.Width(), img.Height()),
		"cols", cols, "rows", rows, "elapsed", time.Since(start))
	logCacheStats(renderer)

	switch {
	case strings.HasSuffix(strings.ToLower(flagOutput), ".png"):
		return termpix.SavePNG(cells, flagOutput)
	case flagOutput != "":
		return termpix.SaveANSI(lines, flagOutput)
	default:
		printLines(lines)
		return nil
	}
}

// printLines writes rendered lines to stdout, resetting formatting on
// the way out so a partial write cannot leave the terminal colored.
func printLines(lines []string) {
	defer fmt.Print(termpix.ESC + "[0m")
	for _, line := range lines {
		fmt.Println(line)
	}
}

// targetSize resolves the output size from flags, falling back to the
// detected terminal size with one row reserved for the shell prompt.
func targetSize() (cols, rows int) {
	cols, rows = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h-1
	}
	if rows < 1 {
		rows = 1
	}
	if flagCols > 0 {
		cols = flagCols
	}
	if flagRows > 0 {
		rows = flagRows
	}
	return cols, rows
}

// newRenderer builds a renderer honoring the global palette flags.
func newRenderer() *termpix.Renderer {
	if flagGrayscale {
		return termpix.NewRenderer(termpix.WithGrayscale())
	}
	return termpix.NewRenderer()
}

// logCacheStats reports matcher cache efficiency at debug level.
func logCacheStats(r *termpix.Renderer) {
	hits, misses, rate := r.Matcher().CacheStats()
	log.Debug("color cache", "hits", hits, "misses", misses,
		"hit_rate", fmt.Sprintf("%.1f%%", rate*100))
}
