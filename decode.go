package colorscript

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads a single image from r and normalizes it to a Grid.
// Animated formats contribute their first frame only.
func Decode(r io.Reader) (*Grid, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader cannot be nil", ErrDecodeFailed)
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return GridFromImage(img), nil
}

// DecodeFile opens and decodes the image at path
func DecodeFile(path string) (*Grid, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrDecodeFailed)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrDecodeFailed, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
