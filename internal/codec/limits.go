package codec

import (
	"fmt"
	"image"
)

// Decoded-image sanity limits. Decoders honour container-declared dimensions,
// so a tiny malicious file can claim an enormous canvas; these bounds cap the
// memory a re-encode may allocate.
const (
	MaxImageWidth  = 20000
	MaxImageHeight = 20000
	MaxImagePixels = 250_000_000
)

func checkBounds(bounds image.Rectangle) error {
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d", width, height)
	}
	if width > MaxImageWidth || height > MaxImageHeight {
		return fmt.Errorf("image dimensions %dx%d exceed the maximum %dx%d", width, height, MaxImageWidth, MaxImageHeight)
	}
	if int64(width)*int64(height) > MaxImagePixels {
		return fmt.Errorf("image has too many pixels: %d", int64(width)*int64(height))
	}
	return nil
}
