// internal/driver/starprnt/starprnt_helper.go
package starprnt

import (
	"image"
	"math"
	"strings"
	"time"
)

var symbologies = map[string]byte{
	"upce":                  0x00,
	"upca":                  0x01,
	"ean8":                  0x02,
	"ean13":                 0x03,
	"code39":                0x04,
	"itf":                   0x05,
	"interleaved-2-of-5":    0x05,
	"code128":               0x06,
	"code93":                0x07,
	"nw-7":                  0x08,
	"codabar":               0x08,
	"gs1-128":               0x09,
	"gs1-databar-omni":      0x0A,
	"gs1-databar-truncated": 0x0B,
	"gs1-databar-limited":   0x0C,
	"gs1-databar-expanded":  0x0D,
}

// normalizeBarcodeValue drops the code set prefix of code128 values, the
// printer selects the code set itself
func normalizeBarcodeValue(symbology, value string) string {
	if symbology == "code128" && strings.HasPrefix(value, "{") {
		if len(value) < 2 {
			return ""
		}
		return value[2:]
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

// stripData packs 24 rows starting at y into three bytes per column
func stripData(img *image.Gray, width, height, y int) []byte {
	bytes := make([]byte, width*3)
	for x := 0; x < width; x++ {
		for c := 0; c < 3; c++ {
			for b := 0; b < 8; b++ {
				bytes[x*3+c] |= pixel(img, width, height, x, y+c*8+b) << (7 - b)
			}
		}
	}
	return bytes
}

// pulseUnits converts a duration into 10ms units, capped at 127
func pulseUnits(d, fallback time.Duration) byte {
	if d <= 0 {
		d = fallback
	}
	units := int(math.Round(float64(d) / float64(10*time.Millisecond)))
	return byte(min(127, units))
}
