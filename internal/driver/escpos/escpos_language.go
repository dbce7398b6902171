// internal/driver/escpos/escpos_language.go
package escpos

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"receipt-encoder/internal/codepage"
	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// Pulse defaults for the cash drawer kick
const (
	DefaultPulseOn  = 100 * time.Millisecond
	DefaultPulseOff = 500 * time.Millisecond
)

var qrModels = map[int]byte{1: 0x31, 2: 0x32}

var qrErrorLevels = map[driver.QRErrorLevel]byte{
	driver.QRErrorLevelL: 0x30,
	driver.QRErrorLevelM: 0x31,
	driver.QRErrorLevelQ: 0x32,
	driver.QRErrorLevelH: 0x33,
}

// Language implements driver.Language for ESC/POS printers
type Language struct {
	logger  *zap.Logger
	charset *codepage.Encoder
}

// New creates the ESC/POS language
func New(logger *zap.Logger) driver.Language {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Language{
		logger:  logger.With(zap.String("language", string(devicetypes.LanguageESCPOS))),
		charset: codepage.New(),
	}
}

func (l *Language) Name() devicetypes.Language {
	return devicetypes.LanguageESCPOS
}

// Initialize resets the printer, leaves kanji mode and selects font A
func (l *Language) Initialize() []byte {
	return join(
		ESC_POS_COMMANDS.INITIALIZE,
		ESC_POS_COMMANDS.CANCEL_KANJI,
		command(ESC_POS_COMMANDS.SELECT_FONT, 0),
	)
}

func (l *Language) Font(font devicetypes.FontType) []byte {
	value := byte(0)
	if font != "" {
		value = font[0] - 'A'
	}
	return command(ESC_POS_COMMANDS.SELECT_FONT, value)
}

func (l *Language) Align(value driver.Alignment) []byte {
	var align byte
	switch value {
	case driver.AlignCenter:
		align = 1
	case driver.AlignRight:
		align = 2
	}
	return command(ESC_POS_COMMANDS.ALIGN, align)
}

func (l *Language) Bold(value bool) []byte {
	return command(ESC_POS_COMMANDS.BOLD, flag(value))
}

func (l *Language) Italic(value bool) []byte {
	return command(ESC_POS_COMMANDS.ITALIC, flag(value))
}

func (l *Language) Underline(value bool) []byte {
	return command(ESC_POS_COMMANDS.UNDERLINE, flag(value))
}

func (l *Language) Invert(value bool) []byte {
	return command(ESC_POS_COMMANDS.INVERT, flag(value))
}

// Size selects the character magnification, 1-8 in both directions
func (l *Language) Size(width, height int) ([]byte, error) {
	if width < 1 || width > 8 || height < 1 || height > 8 {
		return nil, fmt.Errorf("%w: size %dx%d must be between 1 and 8", driver.ErrOutOfRange, width, height)
	}
	return command(ESC_POS_COMMANDS.CHARACTER_SIZE, byte((height-1)|(width-1)<<4)), nil
}

func (l *Language) Codepage(id int) []byte {
	return command(ESC_POS_COMMANDS.SELECT_CODEPAGE, byte(id))
}

// Flush is a no-op, ESC/POS printers print every line as it arrives
func (l *Language) Flush() []byte {
	return []byte{}
}

// Barcode sets height, module width and human readable text, then prints
// the value in the requested symbology
func (l *Language) Barcode(value, symbology string, options driver.BarcodeOptions) ([]byte, error) {
	identifier, ok := symbologies[symbology]
	if !ok {
		return nil, fmt.Errorf("%w: %s", driver.ErrUnknownSymbology, symbology)
	}

	if options.Width < 1 || options.Width > 3 {
		return nil, fmt.Errorf("%w: width must be between 1 and 3", driver.ErrOutOfRange)
	}

	hri := byte(0)
	if options.Text {
		hri = 2
	}

	normalized := normalizeBarcodeValue(symbology, value)
	if normalized != value {
		l.logger.Debug("Barcode value normalized",
			zap.String("symbology", symbology),
			zap.String("value", value),
			zap.String("normalized", normalized),
		)
	}

	data, err := l.charset.Encode(normalized, "ascii")
	if err != nil {
		return nil, fmt.Errorf("failed to encode barcode value: %w", err)
	}

	var printCommand []byte
	if identifier > 0x40 {
		printCommand = command(ESC_POS_COMMANDS.BARCODE_PRINT, append([]byte{identifier, byte(len(data))}, data...)...)
	} else {
		printCommand = command(ESC_POS_COMMANDS.BARCODE_PRINT, append(append([]byte{identifier}, data...), 0x00)...)
	}

	return join(
		command(ESC_POS_COMMANDS.BARCODE_HEIGHT, byte(options.Height)),
		command(ESC_POS_COMMANDS.BARCODE_WIDTH, byte(moduleWidth(symbology, options.Width))),
		command(ESC_POS_COMMANDS.BARCODE_HRI, hri),
		printCommand,
	), nil
}

// QRCode selects model, module size and error correction, stores the data
// and prints the symbol
func (l *Language) QRCode(value string, options driver.QRCodeOptions) ([]byte, error) {
	model, ok := qrModels[options.Model]
	if !ok {
		return nil, fmt.Errorf("%w: model must be 1 or 2", driver.ErrOutOfRange)
	}

	if options.Size < 1 || options.Size > 8 {
		return nil, fmt.Errorf("%w: size must be between 1 and 8", driver.ErrOutOfRange)
	}

	errorLevel, ok := qrErrorLevels[options.ErrorLevel]
	if !ok {
		return nil, fmt.Errorf("%w: error level must be l, m, q or h", driver.ErrOutOfRange)
	}

	data, err := l.charset.Encode(value, "iso8859-1")
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code value: %w", err)
	}

	return join(
		symbol(0x31, 0x41, model, 0x00),
		symbol(0x31, 0x43, byte(options.Size)),
		symbol(0x31, 0x45, errorLevel),
		symbol(append([]byte{0x31, 0x50, 0x30}, data...)...),
		symbol(0x31, 0x51, 0x30),
	), nil
}

// PDF417 configures the symbol, stores the data and prints it
func (l *Language) PDF417(value string, options driver.PDF417Options) ([]byte, error) {
	if options.Columns != 0 && (options.Columns < 1 || options.Columns > 30) {
		return nil, fmt.Errorf("%w: columns must be 0, or between 1 and 30", driver.ErrOutOfRange)
	}
	if options.Rows != 0 && (options.Rows < 3 || options.Rows > 90) {
		return nil, fmt.Errorf("%w: rows must be 0, or between 3 and 90", driver.ErrOutOfRange)
	}
	if options.Width < 2 || options.Width > 8 {
		return nil, fmt.Errorf("%w: width must be between 2 and 8", driver.ErrOutOfRange)
	}
	if options.Height < 2 || options.Height > 8 {
		return nil, fmt.Errorf("%w: height must be between 2 and 8", driver.ErrOutOfRange)
	}
	if options.ErrorLevel < 0 || options.ErrorLevel > 8 {
		return nil, fmt.Errorf("%w: error level must be between 0 and 8", driver.ErrOutOfRange)
	}

	data, err := l.charset.Encode(value, "ascii")
	if err != nil {
		return nil, fmt.Errorf("failed to encode pdf417 value: %w", err)
	}

	return join(
		symbol(0x30, 0x41, byte(options.Columns)),
		symbol(0x30, 0x42, byte(options.Rows)),
		symbol(0x30, 0x43, byte(options.Width)),
		symbol(0x30, 0x44, byte(options.Height)),
		symbol(0x30, 0x45, 0x30, byte(options.ErrorLevel+0x30)),
		symbol(0x30, 0x46, flag(options.Truncated)),
		symbol(append([]byte{0x30, 0x50, 0x30}, data...)...),
		symbol(0x30, 0x51, 0x30),
	), nil
}

// Image prints a monochrome bitmap either as 24 dot column strips or as
// one raster block
func (l *Language) Image(img *image.Gray, width, height int, mode driver.ImageMode) []byte {
	if mode == driver.ImageModeRaster {
		stride := width >> 3
		return command(ESC_POS_COMMANDS.RASTER_IMAGE, append([]byte{
			byte(stride & 0xFF), byte(stride >> 8 & 0xFF),
			byte(height & 0xFF), byte(height >> 8 & 0xFF),
		}, rasterData(img, width, height)...)...)
	}

	parts := [][]byte{ESC_POS_COMMANDS.LINE_SPACING_24}
	for _, strip := range columnData(img, width, height) {
		params := append([]byte{byte(width & 0xFF), byte(width >> 8 & 0xFF)}, strip...)
		params = append(params, ESC_POS_COMMANDS.LINE_FEED...)
		parts = append(parts, command(ESC_POS_COMMANDS.BIT_IMAGE_24, params...))
	}
	parts = append(parts, ESC_POS_COMMANDS.LINE_SPACING_DEFAULT)

	return join(parts...)
}

func (l *Language) Cut(value driver.CutType) []byte {
	return command(ESC_POS_COMMANDS.CUT, flag(value == driver.CutTypePartial))
}

// Pulse kicks the cash drawer. On and off times are sent in 2ms units.
func (l *Language) Pulse(options driver.PulseOptions) []byte {
	return command(ESC_POS_COMMANDS.DRAWER_KICK,
		flag(options.Device != 0),
		pulseUnits(options.On, DefaultPulseOn),
		pulseUnits(options.Off, DefaultPulseOff),
	)
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
