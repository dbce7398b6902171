// internal/driver/starprnt/command.go
package starprnt

// STAR_PRNT_COMMANDS contains the StarPRNT command prefixes
var STAR_PRNT_COMMANDS = struct {
	// Basic commands
	INITIALIZE  []byte
	SELECT_FONT []byte // + 0 A, 1 B, 2 C

	// Text formatting
	ALIGN          []byte // + 0 left, 1 center, 2 right
	BOLD_ON        []byte
	BOLD_OFF       []byte
	UNDERLINE      []byte // + flag
	INVERT_ON      []byte
	INVERT_OFF     []byte
	CHARACTER_SIZE []byte // + height-1, width-1

	// Character sets
	SELECT_CODEPAGE []byte // + codepage id

	// Page mode buffer
	PRINT_PAGE      []byte
	CLEAR_PAGE      []byte
	LINE_FEED       []byte
	CARRIAGE_RETURN []byte

	// Cutting
	CUT []byte // + 0 full, 1 partial

	// Cash drawer
	DRAWER_PULSE []byte // + on, off, device

	// Barcodes
	BARCODE     []byte // + symbology, mode, width, height, data
	BARCODE_END []byte

	// 2D symbols
	QR_SET       []byte // + function, value
	QR_DATA      []byte // + 0, nL, nH, data
	QR_PRINT     []byte
	PDF417_SET   []byte // + function, values
	PDF417_DATA  []byte // + nL, nH, data
	PDF417_PRINT []byte

	// Graphics
	IMAGE_START []byte
	IMAGE_STRIP []byte // + nL nH column data
	IMAGE_END   []byte
}{
	// Basic commands
	INITIALIZE:  []byte{0x1B, 0x40, 0x18}, // ESC @ CAN
	SELECT_FONT: []byte{0x1B, 0x1E, 0x46}, // ESC RS F

	// Text formatting
	ALIGN:          []byte{0x1B, 0x1D, 0x61}, // ESC GS a
	BOLD_ON:        []byte{0x1B, 0x45},       // ESC E
	BOLD_OFF:       []byte{0x1B, 0x46},       // ESC F
	UNDERLINE:      []byte{0x1B, 0x2D},       // ESC -
	INVERT_ON:      []byte{0x1B, 0x34},       // ESC 4
	INVERT_OFF:     []byte{0x1B, 0x35},       // ESC 5
	CHARACTER_SIZE: []byte{0x1B, 0x69},       // ESC i

	// Character sets
	SELECT_CODEPAGE: []byte{0x1B, 0x1D, 0x74}, // ESC GS t

	// Page mode buffer
	PRINT_PAGE:      []byte{0x1B, 0x1D, 0x50, 0x30}, // ESC GS P 0
	CLEAR_PAGE:      []byte{0x1B, 0x1D, 0x50, 0x31}, // ESC GS P 1
	LINE_FEED:       []byte{0x0A},                   // LF
	CARRIAGE_RETURN: []byte{0x0D},                   // CR

	// Cutting
	CUT: []byte{0x1B, 0x64}, // ESC d

	// Cash drawer
	DRAWER_PULSE: []byte{0x1B, 0x07}, // ESC BEL

	// Barcodes
	BARCODE:     []byte{0x1B, 0x62}, // ESC b
	BARCODE_END: []byte{0x1E},       // RS

	// 2D symbols
	QR_SET:       []byte{0x1B, 0x1D, 0x79, 0x53},       // ESC GS y S
	QR_DATA:      []byte{0x1B, 0x1D, 0x79, 0x44, 0x31}, // ESC GS y D 1
	QR_PRINT:     []byte{0x1B, 0x1D, 0x79, 0x50},       // ESC GS y P
	PDF417_SET:   []byte{0x1B, 0x1D, 0x78, 0x53},       // ESC GS x S
	PDF417_DATA:  []byte{0x1B, 0x1D, 0x78, 0x44},       // ESC GS x D
	PDF417_PRINT: []byte{0x1B, 0x1D, 0x78, 0x50},       // ESC GS x P

	// Graphics
	IMAGE_START: []byte{0x1B, 0x30},       // ESC 0
	IMAGE_STRIP: []byte{0x1B, 0x58},       // ESC X
	IMAGE_END:   []byte{0x1B, 0x7A, 0x01}, // ESC z 1
}

// command builds a command from a prefix and its parameter bytes
func command(prefix []byte, params ...byte) []byte {
	result := make([]byte, 0, len(prefix)+len(params))
	result = append(result, prefix...)
	return append(result, params...)
}

func join(parts ...[]byte) []byte {
	size := 0
	for _, part := range parts {
		size += len(part)
	}

	result := make([]byte, 0, size)
	for _, part := range parts {
		result = append(result, part...)
	}
	return result
}
