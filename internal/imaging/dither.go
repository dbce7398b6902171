// internal/imaging/dither.go
package imaging

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Algorithm names a dithering algorithm
type Algorithm string

const (
	AlgorithmThreshold      Algorithm = "threshold"
	AlgorithmBayer          Algorithm = "bayer"
	AlgorithmFloydSteinberg Algorithm = "floydsteinberg"
	AlgorithmAtkinson       Algorithm = "atkinson"
)

// DefaultThreshold is the luminance below which a dot is black
const DefaultThreshold = 128

var bayerMatrix = [4][4]int{
	{15, 135, 45, 165},
	{195, 75, 225, 105},
	{60, 180, 30, 150},
	{240, 120, 210, 90},
}

var monochrome = color.Palette{color.Black, color.White}

// Dither reduces an opaque image to black and white dots. An empty
// algorithm selects threshold, a threshold of zero selects the default.
func Dither(img *image.RGBA, algorithm Algorithm, threshold int) (*image.Gray, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	switch algorithm {
	case "", AlgorithmThreshold:
		return mapLuminance(img, func(_, _ int, l int) bool { return l < threshold }), nil

	case AlgorithmBayer:
		return mapLuminance(img, func(x, y int, l int) bool {
			return (l+bayerMatrix[x%4][y%4])/2 < threshold
		}), nil

	case AlgorithmFloydSteinberg:
		paletted := image.NewPaletted(img.Bounds(), monochrome)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), grayscale(img), img.Bounds().Min)
		return mapPaletted(paletted), nil

	case AlgorithmAtkinson:
		return atkinson(img), nil

	default:
		return nil, fmt.Errorf("unknown dithering algorithm %q", algorithm)
	}
}

// luminance returns the perceived brightness of a pixel, 0-255
func luminance(c color.Color) int {
	r, g, b, _ := c.RGBA()
	return int((299*r + 587*g + 114*b) / 1000 >> 8)
}

func grayscale(img *image.RGBA) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.SetGray(x, y, color.Gray{Y: uint8(luminance(img.At(x, y)))})
		}
	}
	return gray
}

func mapLuminance(img *image.RGBA, black func(x, y, l int) bool) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			l := luminance(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			out.SetGray(x, y, dot(black(x, y, l)))
		}
	}
	return out
}

func mapPaletted(img *image.Paletted) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			out.SetGray(x, y, dot(img.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y) == 0))
		}
	}
	return out
}

// atkinson spreads six eighths of the error over the neighbouring pixels
func atkinson(img *image.RGBA) *image.Gray {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	values := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			values[y*width+x] = luminance(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	spread := []image.Point{{1, 0}, {2, 0}, {-1, 1}, {0, 1}, {1, 1}, {0, 2}}
	out := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := values[y*width+x]
			value := 255
			if old < DefaultThreshold {
				value = 0
			}
			out.SetGray(x, y, dot(value == 0))

			diff := (old - value) / 8
			for _, p := range spread {
				nx, ny := x+p.X, y+p.Y
				if nx >= 0 && nx < width && ny < height {
					values[ny*width+nx] += diff
				}
			}
		}
	}
	return out
}

func dot(black bool) color.Gray {
	if black {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 0xFF}
}
