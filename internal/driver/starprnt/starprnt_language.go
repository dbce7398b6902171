// internal/driver/starprnt/starprnt_language.go
package starprnt

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"receipt-encoder/internal/codepage"
	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// Pulse defaults for the cash drawer
const (
	DefaultPulseOn  = 200 * time.Millisecond
	DefaultPulseOff = 200 * time.Millisecond
)

var qrErrorLevels = map[driver.QRErrorLevel]byte{
	driver.QRErrorLevelL: 0,
	driver.QRErrorLevelM: 1,
	driver.QRErrorLevelQ: 2,
	driver.QRErrorLevelH: 3,
}

// Language implements driver.Language for Star printers. The same
// commands serve StarPRNT and Star Line mode printers.
type Language struct {
	name    devicetypes.Language
	logger  *zap.Logger
	charset *codepage.Encoder
}

// New creates the StarPRNT language
func New(logger *zap.Logger) driver.Language {
	return newLanguage(devicetypes.LanguageStarPRNT, logger)
}

// NewStarLine creates the language for Star Line mode printers
func NewStarLine(logger *zap.Logger) driver.Language {
	return newLanguage(devicetypes.LanguageStarLine, logger)
}

func newLanguage(name devicetypes.Language, logger *zap.Logger) *Language {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Language{
		name:    name,
		logger:  logger.With(zap.String("language", string(name))),
		charset: codepage.New(),
	}
}

func (l *Language) Name() devicetypes.Language {
	return l.name
}

func (l *Language) Initialize() []byte {
	return command(STAR_PRNT_COMMANDS.INITIALIZE)
}

// Font selects font A, B or C. Other letters fall back to A.
func (l *Language) Font(font devicetypes.FontType) []byte {
	var value byte
	switch font {
	case devicetypes.FontB:
		value = 1
	case devicetypes.FontC:
		value = 2
	}
	return command(STAR_PRNT_COMMANDS.SELECT_FONT, value)
}

func (l *Language) Align(value driver.Alignment) []byte {
	var align byte
	switch value {
	case driver.AlignCenter:
		align = 1
	case driver.AlignRight:
		align = 2
	}
	return command(STAR_PRNT_COMMANDS.ALIGN, align)
}

func (l *Language) Bold(value bool) []byte {
	if value {
		return command(STAR_PRNT_COMMANDS.BOLD_ON)
	}
	return command(STAR_PRNT_COMMANDS.BOLD_OFF)
}

// Italic has no StarPRNT equivalent
func (l *Language) Italic(bool) []byte {
	return []byte{}
}

func (l *Language) Underline(value bool) []byte {
	var data byte
	if value {
		data = 1
	}
	return command(STAR_PRNT_COMMANDS.UNDERLINE, data)
}

func (l *Language) Invert(value bool) []byte {
	if value {
		return command(STAR_PRNT_COMMANDS.INVERT_ON)
	}
	return command(STAR_PRNT_COMMANDS.INVERT_OFF)
}

// Size selects the character magnification, 1-8 in both directions
func (l *Language) Size(width, height int) ([]byte, error) {
	if width < 1 || width > 8 || height < 1 || height > 8 {
		return nil, fmt.Errorf("%w: size %dx%d must be between 1 and 8", driver.ErrOutOfRange, width, height)
	}
	return command(STAR_PRNT_COMMANDS.CHARACTER_SIZE, byte(height-1), byte(width-1)), nil
}

func (l *Language) Codepage(id int) []byte {
	return command(STAR_PRNT_COMMANDS.SELECT_CODEPAGE, byte(id))
}

// Flush prints and clears the page buffer
func (l *Language) Flush() []byte {
	return join(STAR_PRNT_COMMANDS.PRINT_PAGE, STAR_PRNT_COMMANDS.CLEAR_PAGE)
}

// Barcode prints the value in one command terminated by RS
func (l *Language) Barcode(value, symbology string, options driver.BarcodeOptions) ([]byte, error) {
	identifier, ok := symbologies[symbology]
	if !ok {
		return nil, fmt.Errorf("%w: %s", driver.ErrUnknownSymbology, symbology)
	}

	if options.Width < 1 || options.Width > 3 {
		return nil, fmt.Errorf("%w: width must be between 1 and 3", driver.ErrOutOfRange)
	}

	data, err := l.charset.Encode(normalizeBarcodeValue(symbology, value), "ascii")
	if err != nil {
		return nil, fmt.Errorf("failed to encode barcode value: %w", err)
	}

	mode := byte(1)
	if options.Text {
		mode = 2
	}

	params := append([]byte{identifier, mode, byte(options.Width), byte(options.Height)}, data...)
	return join(
		command(STAR_PRNT_COMMANDS.BARCODE, params...),
		STAR_PRNT_COMMANDS.BARCODE_END,
	), nil
}

func (l *Language) QRCode(value string, options driver.QRCodeOptions) ([]byte, error) {
	if options.Model != 1 && options.Model != 2 {
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

	length := len(data)
	return join(
		command(STAR_PRNT_COMMANDS.QR_SET, 0x30, byte(options.Model)),
		command(STAR_PRNT_COMMANDS.QR_SET, 0x32, byte(options.Size)),
		command(STAR_PRNT_COMMANDS.QR_SET, 0x31, errorLevel),
		command(STAR_PRNT_COMMANDS.QR_DATA, append([]byte{0x00, byte(length & 0xFF), byte(length >> 8 & 0xFF)}, data...)...),
		command(STAR_PRNT_COMMANDS.QR_PRINT),
	), nil
}

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

	length := len(data)
	return join(
		command(STAR_PRNT_COMMANDS.PDF417_SET, 0x30, 0x01, byte(options.Rows), byte(options.Columns)),
		command(STAR_PRNT_COMMANDS.PDF417_SET, 0x32, byte(options.Width)),
		command(STAR_PRNT_COMMANDS.PDF417_SET, 0x33, byte(options.Height)),
		command(STAR_PRNT_COMMANDS.PDF417_SET, 0x31, byte(options.ErrorLevel)),
		command(STAR_PRNT_COMMANDS.PDF417_DATA, append([]byte{byte(length & 0xFF), byte(length >> 8 & 0xFF)}, data...)...),
		command(STAR_PRNT_COMMANDS.PDF417_PRINT),
	), nil
}

// Image prints a monochrome bitmap in strips of 24 dots. Star printers
// have no raster mode here, so mode is ignored.
func (l *Language) Image(img *image.Gray, width, height int, _ driver.ImageMode) []byte {
	parts := [][]byte{STAR_PRNT_COMMANDS.IMAGE_START}

	for y := 0; y < height; y += 24 {
		params := append([]byte{byte(width & 0xFF), byte(width >> 8 & 0xFF)}, stripData(img, width, height, y)...)
		params = append(params, STAR_PRNT_COMMANDS.LINE_FEED...)
		params = append(params, STAR_PRNT_COMMANDS.CARRIAGE_RETURN...)
		parts = append(parts, command(STAR_PRNT_COMMANDS.IMAGE_STRIP, params...))
	}

	parts = append(parts, STAR_PRNT_COMMANDS.IMAGE_END)
	return join(parts...)
}

func (l *Language) Cut(value driver.CutType) []byte {
	var data byte
	if value == driver.CutTypePartial {
		data = 1
	}
	return command(STAR_PRNT_COMMANDS.CUT, data)
}

// Pulse fires the drawer. On and off times are sent in 10ms units.
func (l *Language) Pulse(options driver.PulseOptions) []byte {
	device := byte(0x07)
	if options.Device != 0 {
		device = 0x1A
	}

	return command(STAR_PRNT_COMMANDS.DRAWER_PULSE,
		pulseUnits(options.On, DefaultPulseOn),
		pulseUnits(options.Off, DefaultPulseOff),
		device,
	)
}
