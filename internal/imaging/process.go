// internal/imaging/process.go
package imaging

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Prepare loads the source at the given size and turns it into a
// monochrome bitmap where black dots have the gray value 0
func Prepare(src Source, width, height int, algorithm Algorithm, threshold int) (*image.Gray, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no source", ErrInvalidSource)
	}

	img, err := src.load(width, height)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		img = Resize(img, width, height)
	}

	return Dither(Flatten(img), algorithm, threshold)
}

// Resize scales an image with bilinear interpolation
func Resize(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Flatten composites an image onto a white background
func Flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}
