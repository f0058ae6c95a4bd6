package colorscript

import (
	"fmt"
	"image"
	"io"
)

// Convenience functions for quick rendering

// RenderImage renders any image.Image with the given options
func RenderImage(img image.Image, opts RenderOptions) (Output, error) {
	if img == nil {
		return Output{}, fmt.Errorf("image cannot be nil")
	}
	return Render(GridFromImage(img), opts), nil
}

// RenderFile decodes and renders an image file
func RenderFile(path string, opts RenderOptions) (Output, error) {
	g, err := DecodeFile(path)
	if err != nil {
		return Output{}, err
	}
	return Render(g, opts), nil
}

// PrintFile decodes an image file and prints it to w, followed by the final reset
func PrintFile(w io.Writer, path string, opts RenderOptions) error {
	g, err := DecodeFile(path)
	if err != nil {
		return err
	}
	return Print(w, g, opts)
}
