package colorscript

import (
	"image"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/term"
)

// FitWidth scales img down to maxCols pixels wide, keeping its aspect ratio.
// Images already narrow enough, or a non-positive maxCols, are returned unchanged.
// One pixel column becomes one terminal column, so maxCols is a column count.
func FitWidth(img image.Image, maxCols int) image.Image {
	if img == nil || maxCols <= 0 {
		return img
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= maxCols || srcH == 0 {
		return img
	}

	width := maxCols
	height := max(srcH*maxCols/srcW, 1)

	// Downscaling a lot: bilinear keeps detail; otherwise nearest neighbor keeps pixel art crisp
	interp := resize.NearestNeighbor
	if srcW*srcH > width*height*4 {
		interp = resize.Bilinear
	}

	return resize.Resize(uint(width), uint(height), img, interp)
}

// FitGrid is FitWidth for grids
func FitGrid(g *Grid, maxCols int) *Grid {
	if g.Empty() || maxCols <= 0 || g.Width <= maxCols {
		return g
	}
	return GridFromImage(FitWidth(g, maxCols))
}

// TerminalWidth returns the width of the terminal attached to stdout
func TerminalWidth() (int, bool) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
