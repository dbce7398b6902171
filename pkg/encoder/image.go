// pkg/encoder/image.go
package encoder

import (
	"fmt"

	"receipt-encoder/internal/imaging"
)

// Image input, see FromImage, FromDrawer and RGBA
type (
	ImageSource     = imaging.Source
	RGBA            = imaging.RGBA
	Drawer          = imaging.Drawer
	DitherAlgorithm = imaging.Algorithm
)

// Dithering algorithms
const (
	DitherThreshold      = imaging.AlgorithmThreshold
	DitherBayer          = imaging.AlgorithmBayer
	DitherFloydSteinberg = imaging.AlgorithmFloydSteinberg
	DitherAtkinson       = imaging.AlgorithmAtkinson
)

// FromImage uses a decoded image as image input
var FromImage = imaging.FromImage

// FromDrawer uses something that renders itself as image input
var FromDrawer = imaging.FromDrawer

// Image prints a picture scaled to width x height dots. Both must be
// multiples of 8. An empty algorithm selects threshold dithering and a
// zero threshold selects 128.
func (e *Encoder) Image(src ImageSource, width, height int, algorithm DitherAlgorithm, threshold int) *Encoder {
	if e.err != nil || e.embedded("images") {
		return e
	}

	if width <= 0 || width%8 != 0 {
		return e.fail(fmt.Errorf("%w: width must be a positive multiple of 8, got %d", ErrInvalidArgument, width))
	}
	if height <= 0 || height%8 != 0 {
		return e.fail(fmt.Errorf("%w: height must be a positive multiple of 8, got %d", ErrInvalidArgument, height))
	}

	bitmap, err := imaging.Prepare(src, width, height, algorithm, threshold)
	if err != nil {
		return e.fail(fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	e.pageOperation(e.language.Image(bitmap, width, height, e.options.ImageMode))
	return e
}
