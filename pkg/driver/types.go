// pkg/driver/types.go
package driver

import (
	"errors"
	"time"
)

// Line buffer items

// Alignment defines horizontal text alignment
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid reports whether the alignment is one of the known values
func (a Alignment) Valid() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// StyleProperty names a text style attribute
type StyleProperty string

const (
	StyleBold      StyleProperty = "bold"
	StyleItalic    StyleProperty = "italic"
	StyleUnderline StyleProperty = "underline"
	StyleInvert    StyleProperty = "invert"
	StyleSize      StyleProperty = "size"
)

// ItemKind tags the variant held by an Item
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemSpace
	ItemRaw
	ItemAlign
	ItemStyle
	ItemEmpty
)

func (k ItemKind) String() string {
	switch k {
	case ItemText:
		return "text"
	case ItemSpace:
		return "space"
	case ItemRaw:
		return "raw"
	case ItemAlign:
		return "align"
	case ItemStyle:
		return "style"
	case ItemEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Size holds a character magnification
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Item is one entry of a line buffer. Only the fields belonging to Kind are
// meaningful: Value/Codepage for text, Size for space, Raw for raw bytes,
// Align for align markers and Property with Flag or Dimensions for styles.
type Item struct {
	Kind       ItemKind      `json:"type"`
	Value      string        `json:"value,omitempty"`
	Codepage   string        `json:"codepage,omitempty"` // empty means inherit
	Size       int           `json:"size,omitempty"`
	Raw        []byte        `json:"raw,omitempty"`
	Align      Alignment     `json:"align,omitempty"`
	Property   StyleProperty `json:"property,omitempty"`
	Flag       bool          `json:"flag,omitempty"`
	Dimensions Size          `json:"dimensions,omitempty"`
}

// TextItem creates a text item
func TextItem(value, codepage string) Item {
	return Item{Kind: ItemText, Value: value, Codepage: codepage}
}

// SpaceItem creates a space item
func SpaceItem(size int) Item {
	return Item{Kind: ItemSpace, Size: size}
}

// RawItem creates a raw item
func RawItem(value []byte) Item {
	return Item{Kind: ItemRaw, Raw: value}
}

// AlignItem creates an alignment marker
func AlignItem(value Alignment) Item {
	return Item{Kind: ItemAlign, Align: value}
}

// StyleItem creates a boolean style change
func StyleItem(property StyleProperty, value bool) Item {
	return Item{Kind: ItemStyle, Property: property, Flag: value}
}

// SizeItem creates a size style change
func SizeItem(width, height int) Item {
	return Item{Kind: ItemStyle, Property: StyleSize, Dimensions: Size{Width: width, Height: height}}
}

// EmptyItem creates the placeholder for a blank line
func EmptyItem() Item {
	return Item{Kind: ItemEmpty}
}

// IsSize reports whether the item is a size style change
func (i Item) IsSize() bool {
	return i.Kind == ItemStyle && i.Property == StyleSize
}

// LineCommands is one composed output line
type LineCommands struct {
	Commands []Item `json:"commands"`
	Height   int    `json:"height"`
}

// Printer operation options

// CutType defines paper cutting options
type CutType string

const (
	CutTypeFull    CutType = "full"
	CutTypePartial CutType = "partial"
)

// ImageMode defines how bitmaps are sent to the printer
type ImageMode string

const (
	ImageModeColumn ImageMode = "column"
	ImageModeRaster ImageMode = "raster"
)

// BarcodeOptions configures a barcode
type BarcodeOptions struct {
	Height int  `json:"height"`
	Width  int  `json:"width"` // module width, 1-3
	Text   bool `json:"text"`
}

// DefaultBarcodeOptions returns the options used when none are given
func DefaultBarcodeOptions() BarcodeOptions {
	return BarcodeOptions{Height: 60, Width: 2, Text: false}
}

// QRErrorLevel defines the QR code error correction level
type QRErrorLevel string

const (
	QRErrorLevelL QRErrorLevel = "l"
	QRErrorLevelM QRErrorLevel = "m"
	QRErrorLevelQ QRErrorLevel = "q"
	QRErrorLevelH QRErrorLevel = "h"
)

// QRCodeOptions configures a QR code
type QRCodeOptions struct {
	Model      int          `json:"model"`
	Size       int          `json:"size"`
	ErrorLevel QRErrorLevel `json:"errorlevel"`
}

// DefaultQRCodeOptions returns the options used when none are given
func DefaultQRCodeOptions() QRCodeOptions {
	return QRCodeOptions{Model: 2, Size: 6, ErrorLevel: QRErrorLevelM}
}

// PDF417Options configures a PDF417 code
type PDF417Options struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Columns    int  `json:"columns"`
	Rows       int  `json:"rows"`
	ErrorLevel int  `json:"errorlevel"`
	Truncated  bool `json:"truncated"`
}

// DefaultPDF417Options returns the options used when none are given
func DefaultPDF417Options() PDF417Options {
	return PDF417Options{Width: 3, Height: 3, Columns: 0, Rows: 0, ErrorLevel: 1, Truncated: false}
}

// PulseOptions configures a cash drawer pulse. Zero durations select the
// default of the printer language.
type PulseOptions struct {
	Device int           `json:"device"`
	On     time.Duration `json:"on"`
	Off    time.Duration `json:"off"`
}

// Errors returned by printer languages
var (
	ErrUnknownSymbology = errors.New("symbology not supported by printer")
	ErrOutOfRange       = errors.New("value out of range")
)
