// internal/driver/escpos/escpos_helper.go
package escpos

import (
	"image"
	"math"
	"strings"
	"time"
)

// Helper functions for the ESC/POS language

// symbologies maps barcode names onto GS k symbology numbers. Numbers above
// 0x40 take a length byte, lower numbers a NUL terminator.
var symbologies = map[string]byte{
	"upca":                  0x00,
	"upce":                  0x01,
	"ean13":                 0x02,
	"ean8":                  0x03,
	"code39":                0x04,
	"coda39":                0x04,
	"itf":                   0x05,
	"interleaved-2-of-5":    0x05,
	"nw-7":                  0x06,
	"codabar":               0x06,
	"code93":                0x48,
	"code128":               0x49,
	"gs1-128":               0x48,
	"gs1-databar-omni":      0x4B,
	"gs1-databar-truncated": 0x4C,
	"gs1-databar-limited":   0x4D,
	"gs1-databar-expanded":  0x4E,
	"code128-auto":          0x4F,
}

// gs1Cleaner removes the application identifier brackets of GS1 values
var gs1Cleaner = strings.NewReplacer("(", "", ")", "", "*", "")

// moduleWidth converts the requested bar width into a GS w value
func moduleWidth(symbology string, width int) int {
	switch {
	case symbology == "itf":
		return width * 2
	case symbology == "gs1-128", strings.HasPrefix(symbology, "gs1-databar-"):
		return width
	default:
		return width + 1
	}
}

// normalizeBarcodeValue applies the data conventions of the symbology
func normalizeBarcodeValue(symbology, value string) string {
	switch symbology {
	case "code128":
		if !strings.HasPrefix(value, "{") {
			return "{B" + value
		}
	case "gs1-128":
		return gs1Cleaner.Replace(value)
	}
	return value
}

// pixel returns 1 for a black dot. Anything outside the image is white.
func pixel(img *image.Gray, width, height, x, y int) byte {
	if x >= width || y >= height {
		return 0
	}

	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if px >= bounds.Max.X || py >= bounds.Max.Y {
		return 0
	}

	if img.GrayAt(px, py).Y == 0 {
		return 1
	}
	return 0
}

// columnData packs the image into strips of 24 dots, three bytes per
// column with the most significant bit on top
func columnData(img *image.Gray, width, height int) [][]byte {
	strips := (height + 23) / 24
	data := make([][]byte, 0, strips)

	for s := 0; s < strips; s++ {
		bytes := make([]byte, width*3)
		for x := 0; x < width; x++ {
			for c := 0; c < 3; c++ {
				for b := 0; b < 8; b++ {
					bytes[x*3+c] |= pixel(img, width, height, x, s*24+b+8*c) << (7 - b)
				}
			}
		}
		data = append(data, bytes)
	}

	return data
}

// rasterData packs the image row by row, eight dots per byte
func rasterData(img *image.Gray, width, height int) []byte {
	stride := width >> 3
	bytes := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		for x := 0; x+8 <= stride*8; x += 8 {
			for b := 0; b < 8; b++ {
				bytes[y*stride+(x>>3)] |= pixel(img, width, height, x+b, y) << (7 - b)
			}
		}
	}

	return bytes
}

// pulseUnits converts a duration into 2ms units, capped at 500
func pulseUnits(d, fallback time.Duration) byte {
	if d <= 0 {
		d = fallback
	}
	units := int(math.Round(float64(d) / float64(2*time.Millisecond)))
	return byte(min(500, units) & 0xFF)
}
