// pkg/encoder/codes.go
package encoder

import (
	"fmt"
	"slices"
	"strconv"

	"receipt-encoder/pkg/driver"
)

// BarcodeOptions configures a barcode. Zero values select the defaults:
// height 60 and module width 2.
type BarcodeOptions = driver.BarcodeOptions

// QRCodeOptions configures a QR code. Zero values select the defaults:
// model 2, size 6 and error level m.
type QRCodeOptions = driver.QRCodeOptions

// PDF417Options configures a PDF417 code. Zero values select width 3,
// height 3 and automatic columns and rows. ErrorLevel is used as given.
type PDF417Options = driver.PDF417Options

// Barcode adds a barcode on a line of its own
func (e *Encoder) Barcode(value, symbology string, options BarcodeOptions) *Encoder {
	if e.err != nil || e.embedded("barcodes") {
		return e
	}

	defaults := driver.DefaultBarcodeOptions()
	if options.Height == 0 {
		options.Height = defaults.Height
	}
	if options.Width == 0 {
		options.Width = defaults.Width
	}

	barcodes := e.capabilities.Barcodes
	if !barcodes.Supported {
		return e.unsupported("barcode", "barcodes are not supported by this printer")
	}
	if !slices.Contains(barcodes.Symbologies, symbology) {
		return e.unsupported("barcode", fmt.Sprintf("symbology %q is not supported by this printer", symbology))
	}

	return e.barcode(value, symbology, options)
}

func (e *Encoder) barcode(value, symbology string, options BarcodeOptions) *Encoder {
	data, err := e.language.Barcode(value, symbology, options)
	if err != nil {
		return e.fail(fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	e.pageOperation(data)
	return e
}

// QRCode adds a QR code on a line of its own
func (e *Encoder) QRCode(value string, options QRCodeOptions) *Encoder {
	if e.err != nil || e.embedded("qr codes") {
		return e
	}

	defaults := driver.DefaultQRCodeOptions()
	if options.Model == 0 {
		options.Model = defaults.Model
	}
	if options.Size == 0 {
		options.Size = defaults.Size
	}
	if options.ErrorLevel == "" {
		options.ErrorLevel = defaults.ErrorLevel
	}

	qrcode := e.capabilities.QRCode
	if !qrcode.Supported {
		return e.unsupported("qrcode", "qr codes are not supported by this printer")
	}
	if !slices.Contains(qrcode.Models, strconv.Itoa(options.Model)) {
		return e.unsupported("qrcode", fmt.Sprintf("qr code model %d is not supported by this printer", options.Model))
	}

	data, err := e.language.QRCode(value, options)
	if err != nil {
		return e.fail(fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	e.pageOperation(data)
	return e
}

// PDF417 adds a PDF417 code on a line of its own. Printers without PDF417
// support that declare a fallback symbology print a barcode instead.
func (e *Encoder) PDF417(value string, options PDF417Options) *Encoder {
	if e.err != nil || e.embedded("pdf417 codes") {
		return e
	}

	defaults := driver.DefaultPDF417Options()
	if options.Width == 0 {
		options.Width = defaults.Width
	}
	if options.Height == 0 {
		options.Height = defaults.Height
	}

	pdf417 := e.capabilities.PDF417
	if !pdf417.Supported {
		if pdf417.Fallback != nil {
			return e.barcode(value, pdf417.Fallback.Symbology, driver.DefaultBarcodeOptions())
		}
		return e.unsupported("pdf417", "pdf417 codes are not supported by this printer")
	}

	data, err := e.language.PDF417(value, options)
	if err != nil {
		return e.fail(fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	e.pageOperation(data)
	return e
}

// pageOperation places printer bytes on a line of their own, honoring the
// current alignment
func (e *Encoder) pageOperation(data []byte) {
	e.composer.Flush(pageFlush)

	align := e.composer.Align()
	if align != driver.AlignLeft {
		e.composer.Raw(0, e.language.Align(align))
	}

	e.composer.Raw(0, data)

	if align != driver.AlignLeft {
		e.composer.Raw(0, e.language.Align(driver.AlignLeft))
	}

	e.composer.Flush(pageFlush)
}
