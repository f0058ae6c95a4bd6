package colorscript

import (
	"io"
	"strings"

	"github.com/blacktop/go-colorscript/pkg/sgr"
)

// Glyphs drawn for a pair of rows
const (
	UpperHalfBlock = "\u2580" // ▀
	LowerHalfBlock = "\u2584" // ▄
)

// RenderOptions contains all options for rendering a grid
type RenderOptions struct {
	// AlphaCutoff classifies pixels: A >= AlphaCutoff is drawn, anything lower is blank
	AlphaCutoff uint8
}

// DefaultRenderOptions returns the options used by the CLI unless overridden
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{AlphaCutoff: AlphaCutoff}
}

// Output is the rendered text, one line per pair of pixel rows.
// Lines carry no terminator.
type Output struct {
	Lines []string
}

// String joins the lines, terminating each with a newline
func (o Output) String() string {
	var sb strings.Builder
	for _, line := range o.Lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the rendered lines to w
func (o Output) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, o.String())
	return int64(n), err
}

// Render converts the grid to half-block glyphs.
//
// Rows are walked in pairs (0,1), (2,3), ... and every column becomes one segment:
//
//	top opaque | bottom opaque | segment
//	-----------+---------------+----------------------------------
//	no         | no / absent   | " "
//	no         | yes           | fg(bottom) ▄
//	yes        | no / absent   | fg(top) ▀
//	yes        | yes           | fg(bottom) bg(top) ▄
//
// Each segment is followed by a reset, blanks included. A trailing odd row has no
// bottom pixel. Render does no I/O and never mutates g.
func Render(g *Grid, opts RenderOptions) Output {
	if g.Empty() {
		return Output{}
	}

	lines := make([]string, 0, (g.Height+1)/2)
	var sb strings.Builder
	for y := 0; y < g.Height; y += 2 {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			top := g.PixelAt(x, y)
			hasBottom := y+1 < g.Height
			var bottom Pixel
			if hasBottom {
				bottom = g.PixelAt(x, y+1)
			}
			writeSegment(&sb, top, bottom, hasBottom, opts.AlphaCutoff)
			sb.WriteString(sgr.Reset)
		}
		lines = append(lines, sb.String())
	}

	return Output{Lines: lines}
}

func writeSegment(sb *strings.Builder, top, bottom Pixel, hasBottom bool, cutoff uint8) {
	topOpaque := top.Opaque(cutoff)
	bottomOpaque := hasBottom && bottom.Opaque(cutoff)

	switch {
	case topOpaque && bottomOpaque:
		sb.WriteString(sgr.Foreground(bottom.R, bottom.G, bottom.B))
		sb.WriteString(sgr.Background(top.R, top.G, top.B))
		sb.WriteString(LowerHalfBlock)
	case topOpaque:
		sb.WriteString(sgr.Foreground(top.R, top.G, top.B))
		sb.WriteString(UpperHalfBlock)
	case bottomOpaque:
		sb.WriteString(sgr.Foreground(bottom.R, bottom.G, bottom.B))
		sb.WriteString(LowerHalfBlock)
	default:
		sb.WriteByte(' ')
	}
}

// Print renders g to w followed by a final reset to the terminal's default colors
func Print(w io.Writer, g *Grid, opts RenderOptions) error {
	if _, err := Render(g, opts).WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, sgr.Reset)
	return err
}
