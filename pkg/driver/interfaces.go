// pkg/driver/interfaces.go
package driver

import (
	"image"

	"receipt-encoder/pkg/devicetypes"
)

// Language is implemented by every printer command language. Methods are
// stateless and return the literal bytes for one operation.
type Language interface {
	// Identification
	Name() devicetypes.Language

	// Printer setup
	Initialize() []byte
	Font(font devicetypes.FontType) []byte
	Codepage(id int) []byte
	Flush() []byte

	// Text formatting
	Align(value Alignment) []byte
	Bold(value bool) []byte
	Italic(value bool) []byte
	Underline(value bool) []byte
	Invert(value bool) []byte
	Size(width, height int) ([]byte, error)

	// Codes and graphics
	Barcode(value, symbology string, options BarcodeOptions) ([]byte, error)
	QRCode(value string, options QRCodeOptions) ([]byte, error)
	PDF417(value string, options PDF417Options) ([]byte, error)
	Image(img *image.Gray, width, height int, mode ImageMode) []byte

	// Paper handling and peripherals
	Cut(value CutType) []byte
	Pulse(options PulseOptions) []byte
}

// CodepageFragment is one run of text encoded in a single codepage
type CodepageFragment struct {
	Codepage string
	Bytes    []byte
}

// CodepageEncoder converts text into printer codepage bytes
type CodepageEncoder interface {
	Encode(text, codepage string) ([]byte, error)
	Supports(codepage string) bool
	AutoEncode(text string, candidates []string) []CodepageFragment
}
