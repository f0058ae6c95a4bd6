package colorscript

import (
	"image"
	"image/color"
)

// AlphaCutoff is the default alpha value at or above which a pixel is drawn
const AlphaCutoff uint8 = 128

// Pixel is a single 8-bit RGBA sample with straight (non-premultiplied) alpha
type Pixel struct {
	R, G, B, A uint8
}

// Opaque reports whether the pixel should be drawn under the given cutoff
func (p Pixel) Opaque(cutoff uint8) bool {
	return p.A >= cutoff
}

// Grid is a row-major arrangement of pixels
type Grid struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewGrid allocates a transparent grid of the given size
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height && y*g.Width+x < len(g.Pix)
}

// PixelAt returns the pixel at (x, y), or the zero Pixel when out of range
func (g *Grid) PixelAt(x, y int) Pixel {
	if !g.inBounds(x, y) {
		return Pixel{}
	}
	return g.Pix[y*g.Width+x]
}

// SetPixel stores p at (x, y); out of range writes are ignored
func (g *Grid) SetPixel(x, y int, p Pixel) {
	if !g.inBounds(x, y) {
		return
	}
	g.Pix[y*g.Width+x] = p
}

// ColorModel implements image.Image
func (g *Grid) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// At implements image.Image
func (g *Grid) At(x, y int) color.Color {
	p := g.PixelAt(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Empty reports whether the grid has no pixels. A grid whose Pix is shorter
// than Width*Height is treated as empty.
func (g *Grid) Empty() bool {
	return g == nil || g.Width <= 0 || g.Height <= 0 || len(g.Pix) < g.Width*g.Height
}

// GridFromImage normalizes img to 8-bit straight-alpha pixels.
// The grid origin is the image's Bounds().Min.
func GridFromImage(img image.Image) *Grid {
	if img == nil {
		return NewGrid(0, 0)
	}

	bounds := img.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*Grid); ok {
		copy(g.Pix, src.Pix)
		return g
	}

	// Fast path for the decoder's native non-premultiplied format
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.Height; y++ {
			off := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < g.Width; x++ {
				s := nrgba.Pix[off+x*4 : off+x*4+4 : off+x*4+4]
				g.Pix[y*g.Width+x] = Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
			}
		}
		return g
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			g.Pix[y*g.Width+x] = Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return g
}
