package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/termpix/termpix"
	"github.com/termpix/termpix/imageutil"
)

var flagThumbWidth int

var galleryCmd = &cobra.Command{
	Use:   "gallery [dir | paths...]",
	Short: "Render a directory of images as a thumbnail grid",
	Long: `Render images side by side as labeled thumbnails, as many per grid
row as fit the terminal width. With no arguments the current directory
is listed; non-image files are skipped.

Examples:
  termpix gallery
  termpix gallery ~/Pictures
  termpix gallery a.png b.jpg c.gif --width 30`,
	RunE: runGallery,
}

func init() {
	galleryCmd.Flags().IntVarP(&flagThumbWidth, "width", "w", 40,
		"Thumbnail width in columns")
	galleryCmd.Flags().IntVarP(&flagRows, "rows", "r", 0,
		"Maximum thumbnail height in rows (default: terminal height)")
}

func runGallery(cmd *cobra.Command, args []string) error {
	paths, err := galleryPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println("No images found.")
		return nil
	}

	cols, rows := targetSize()
	opts := termpix.DefaultGalleryOptions(cols, rows)
	if flagThumbWidth > 0 {
		opts.ThumbWidth = flagThumbWidth
	}
	if flagRows > 0 {
		opts.ThumbRows = flagRows
	}

	renderer := newRenderer()
	lines, err := termpix.RenderGallery(renderer, paths, opts)
	if err != nil {
		return err
	}
	logCacheStats(renderer)

	printLines(lines)
	return nil
}

// galleryPaths resolves the command arguments to image paths: no
// arguments lists the current directory, a single directory argument
// lists that directory, anything else is taken as explicit paths with
// non-images skipped.
func galleryPaths(args []string) ([]string, error) {
	switch len(args) {
	case 0:
		return termpix.ListImages(".")
	case 1:
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return termpix.ListImages(args[0])
		}
	}

	var paths []string
	for _, path := range args {
		if !imageutil.IsImage(path) {
			log.Warn("skipping non-image file", "path", path)
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}
