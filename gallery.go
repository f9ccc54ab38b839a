package termpix

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/termpix/termpix/imageutil"
)

// labelStyle dresses the filename printed above each thumbnail.
var labelStyle = lipgloss.NewStyle().Bold(true)

// GalleryOptions controls the thumbnail grid layout.
type GalleryOptions struct {
	// ThumbWidth is the thumbnail width in terminal cells.
	ThumbWidth int
	// ThumbRows caps the thumbnail height in terminal rows.
	ThumbRows int
	// TermCols is the total terminal width the grid may occupy.
	TermCols int
	// Separator is placed between grid columns.
	Separator string
}

// DefaultGalleryOptions returns the layout used by the CLI: 40-cell
// thumbnails, two-space separators.
func DefaultGalleryOptions(termCols, termRows int) GalleryOptions {
	return GalleryOptions{
		ThumbWidth: 40,
		ThumbRows:  termRows,
		TermCols:   termCols,
		Separator:  "  ",
	}
}

// ListImages returns the sorted paths of the decodable images directly
// inside dir. Subdirectories and non-image files are skipped.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if imageutil.IsImage(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// RenderGallery renders the given images as a grid of labeled
// thumbnails and returns the assembled text lines. Thumbnails within a
// grid row are rendered concurrently against the renderer's shared
// matcher, so colors repeated across images are resolved once.
func RenderGallery(r *Renderer, paths []string, opts GalleryOptions) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	perRow := opts.TermCols / (opts.ThumbWidth + len(opts.Separator))
	if perRow < 1 {
		perRow = 1
	}

	var out []string
	for start := 0; start < len(paths); start += perRow {
		end := start + perRow
		if end > len(paths) {
			end = len(paths)
		}
		lines, err := renderGalleryRow(r, paths[start:end], opts)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
		out = append(out, "")
	}
	return out, nil
}

// renderGalleryRow renders one grid row: a header line of padded
// filenames followed by the thumbnails side by side, shorter thumbnails
// padded with blank cells.
func renderGalleryRow(r *Renderer, paths []string, opts GalleryOptions) ([]string, error) {
	thumbs := make([][]string, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			img, err := imageutil.LoadImage(path)
			if err != nil {
				errs[i] = err
				return
			}
			lines, err := r.RenderFit(img, opts.ThumbWidth, opts.ThumbRows)
			if err != nil {
				errs[i] = err
				return
			}
			// Narrow thumbnails get right-padded so grid columns
			// stay aligned.
			for j, line := range lines {
				if pad := opts.ThumbWidth - strings.Count(line, string(HalfBlock)); pad > 0 {
					lines[j] = line + strings.Repeat(" ", pad)
				}
			}
			thumbs[i] = lines
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	labels := make([]string, len(paths))
	for i, path := range paths {
		name := runewidth.Truncate(filepath.Base(path), opts.ThumbWidth, "…")
		labels[i] = labelStyle.Render(runewidth.FillRight(name, opts.ThumbWidth))
	}

	maxRows := 0
	for _, thumb := range thumbs {
		if len(thumb) > maxRows {
			maxRows = len(thumb)
		}
	}

	blank := strings.Repeat(" ", opts.ThumbWidth)
	lines := make([]string, 0, maxRows+1)
	lines = append(lines, strings.Join(labels, opts.Separator))
	for row := 0; row < maxRows; row++ {
		cols := make([]string, len(thumbs))
		for i, thumb := range thumbs {
			if row < len(thumb) {
				cols[i] = thumb[row]
			} else {
				cols[i] = blank
			}
		}
		lines = append(lines, strings.Join(cols, opts.Separator))
	}
	return lines, nil
}
