// internal/driver/escpos/command.go
package escpos

// ESC_POS_COMMANDS contains the ESC/POS command prefixes. Parameter bytes
// are appended by the language methods.
var ESC_POS_COMMANDS = struct {
	// Basic commands
	INITIALIZE   []byte
	CANCEL_KANJI []byte
	SELECT_FONT  []byte // + font number

	// Text formatting
	ALIGN          []byte // + 0 left, 1 center, 2 right
	BOLD           []byte // + flag
	UNDERLINE      []byte // + flag
	ITALIC         []byte // + flag
	INVERT         []byte // + flag
	CHARACTER_SIZE []byte // + (width-1)<<4 | (height-1)

	// Character sets
	SELECT_CODEPAGE []byte // + codepage id

	// Paper handling
	LINE_FEED            []byte
	LINE_SPACING_24      []byte
	LINE_SPACING_DEFAULT []byte

	// Cutting
	CUT []byte // + 0 full, 1 partial

	// Cash drawer
	DRAWER_KICK []byte // + device, on, off

	// Barcodes
	BARCODE_HEIGHT []byte // + dots
	BARCODE_WIDTH  []byte // + module width
	BARCODE_HRI    []byte // + 0 hidden, 2 below
	BARCODE_PRINT  []byte // + symbology, data

	// 2D symbols
	SYMBOL []byte // + pL pH cn fn parameters

	// Graphics
	BIT_IMAGE_24 []byte // + nL nH column data
	RASTER_IMAGE []byte // + xL xH yL yH row data
}{
	// Basic commands
	INITIALIZE:   []byte{0x1B, 0x40}, // ESC @
	CANCEL_KANJI: []byte{0x1C, 0x2E}, // FS .
	SELECT_FONT:  []byte{0x1B, 0x4D}, // ESC M

	// Text formatting
	ALIGN:          []byte{0x1B, 0x61}, // ESC a
	BOLD:           []byte{0x1B, 0x45}, // ESC E
	UNDERLINE:      []byte{0x1B, 0x2D}, // ESC -
	ITALIC:         []byte{0x1B, 0x34}, // ESC 4
	INVERT:         []byte{0x1D, 0x42}, // GS B
	CHARACTER_SIZE: []byte{0x1D, 0x21}, // GS !

	// Character sets
	SELECT_CODEPAGE: []byte{0x1B, 0x74}, // ESC t

	// Paper handling
	LINE_FEED:            []byte{0x0A},             // LF
	LINE_SPACING_24:      []byte{0x1B, 0x33, 0x24}, // ESC 3 36
	LINE_SPACING_DEFAULT: []byte{0x1B, 0x32},       // ESC 2

	// Cutting
	CUT: []byte{0x1D, 0x56}, // GS V

	// Cash drawer
	DRAWER_KICK: []byte{0x1B, 0x70}, // ESC p

	// Barcodes
	BARCODE_HEIGHT: []byte{0x1D, 0x68}, // GS h
	BARCODE_WIDTH:  []byte{0x1D, 0x77}, // GS w
	BARCODE_HRI:    []byte{0x1D, 0x48}, // GS H
	BARCODE_PRINT:  []byte{0x1D, 0x6B}, // GS k

	// 2D symbols
	SYMBOL: []byte{0x1D, 0x28, 0x6B}, // GS ( k

	// Graphics
	BIT_IMAGE_24: []byte{0x1B, 0x2A, 0x21},       // ESC * 33
	RASTER_IMAGE: []byte{0x1D, 0x76, 0x30, 0x00}, // GS v 0 0
}

// command builds a command from a prefix and its parameter bytes
func command(prefix []byte, params ...byte) []byte {
	result := make([]byte, 0, len(prefix)+len(params))
	result = append(result, prefix...)
	return append(result, params...)
}

// symbol builds a GS ( k function with a little-endian parameter length
func symbol(params ...byte) []byte {
	return command(ESC_POS_COMMANDS.SYMBOL, append([]byte{byte(len(params) & 0xFF), byte(len(params) >> 8 & 0xFF)}, params...)...)
}

func flag(value bool) byte {
	if value {
		return 1
	}
	return 0
}
