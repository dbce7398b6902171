// pkg/devicetypes/types.go
package devicetypes

// Common printer type definitions that can be used across the application

// Language identifies a printer command language
type Language string

const (
	LanguageESCPOS   Language = "esc-pos"
	LanguageStarPRNT Language = "star-prnt"
	LanguageStarLine Language = "star-line"
)

// FontType identifies a printer font by letter
type FontType string

const (
	FontA FontType = "A"
	FontB FontType = "B"
	FontC FontType = "C"
	FontD FontType = "D"
	FontE FontType = "E"
)

// ErrorPolicy defines how capability errors are reported
type ErrorPolicy string

const (
	ErrorsRelaxed ErrorPolicy = "relaxed"
	ErrorsStrict  ErrorPolicy = "strict"
)

// Newline defines the bytes written after every line
type Newline string

const (
	NewlineLFCR Newline = "\n\r"
	NewlineLF   Newline = "\n"
	NewlineNone Newline = "none"
)

// Bytes returns the byte sequence for the newline setting
func (n Newline) Bytes() []byte {
	switch n {
	case NewlineLFCR:
		return []byte{0x0a, 0x0d}
	case NewlineLF:
		return []byte{0x0a}
	default:
		return nil
	}
}

// VerticalAlign defines how short table cells are padded
type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "top"
	VerticalAlignBottom VerticalAlign = "bottom"
)

// BoxStyle defines the border of a box
type BoxStyle string

const (
	BoxStyleSingle BoxStyle = "single"
	BoxStyleDouble BoxStyle = "double"
	BoxStyleNone   BoxStyle = "none"
)

// RuleStyle defines the glyph used for horizontal rules
type RuleStyle string

const (
	RuleStyleSingle RuleStyle = "single"
	RuleStyleDouble RuleStyle = "double"
)

// AllowedColumns lists the paper widths a top level encoder accepts
var AllowedColumns = []int{32, 35, 42, 44, 48}

// DefaultSymbologies lists the barcode symbologies assumed when a printer
// does not declare its own
var DefaultSymbologies = []string{
	"upca", "upce", "ean13", "ean8", "code39", "itf", "codabar", "code93", "code128",
	"gs1-databar-omni", "gs1-databar-truncated", "gs1-databar-limited", "gs1-databar-expanded",
}
