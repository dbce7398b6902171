package escpos

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

func newTestLanguage(t *testing.T) driver.Language {
	return New(zaptest.NewLogger(t))
}

// whiteImage returns a white bitmap with the given dots set to black
func whiteImage(width, height int, black ...image.Point) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for _, p := range black {
		img.SetGray(p.X, p.Y, color.Gray{Y: 0})
	}
	return img
}

func TestBasicCommands(t *testing.T) {
	l := newTestLanguage(t)

	assert.Equal(t, devicetypes.LanguageESCPOS, l.Name())
	assert.Equal(t, []byte{0x1b, 0x40, 0x1c, 0x2e, 0x1b, 0x4d, 0x00}, l.Initialize())
	assert.Equal(t, []byte{0x1b, 0x4d, 0x01}, l.Font(devicetypes.FontB))
	assert.Equal(t, []byte{0x1b, 0x61, 0x01}, l.Align(driver.AlignCenter))
	assert.Equal(t, []byte{0x1b, 0x61, 0x02}, l.Align(driver.AlignRight))
	assert.Equal(t, []byte{0x1b, 0x61, 0x00}, l.Align(driver.AlignLeft))
	assert.Equal(t, []byte{0x1b, 0x45, 0x01}, l.Bold(true))
	assert.Equal(t, []byte{0x1b, 0x45, 0x00}, l.Bold(false))
	assert.Equal(t, []byte{0x1b, 0x34, 0x01}, l.Italic(true))
	assert.Equal(t, []byte{0x1b, 0x2d, 0x01}, l.Underline(true))
	assert.Equal(t, []byte{0x1d, 0x42, 0x01}, l.Invert(true))
	assert.Equal(t, []byte{0x1b, 0x74, 0x10}, l.Codepage(16))
	assert.Equal(t, []byte{0x1d, 0x56, 0x00}, l.Cut(driver.CutTypeFull))
	assert.Equal(t, []byte{0x1d, 0x56, 0x01}, l.Cut(driver.CutTypePartial))
	assert.Empty(t, l.Flush())
}

func TestSize(t *testing.T) {
	l := newTestLanguage(t)

	got, err := l.Size(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1d, 0x21, 0x10}, got)

	got, err = l.Size(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1d, 0x21, 0x11}, got)

	_, err = l.Size(9, 1)
	assert.ErrorIs(t, err, driver.ErrOutOfRange)
}

func TestPulse(t *testing.T) {
	l := newTestLanguage(t)

	assert.Equal(t, []byte{0x1b, 0x70, 0x00, 0x32, 0xfa}, l.Pulse(driver.PulseOptions{}))
	assert.Equal(t, []byte{0x1b, 0x70, 0x01, 0x0a, 0x14}, l.Pulse(driver.PulseOptions{
		Device: 1,
		On:     20 * time.Millisecond,
		Off:    40 * time.Millisecond,
	}))
}

func TestBarcode(t *testing.T) {
	l := newTestLanguage(t)
	options := driver.DefaultBarcodeOptions()

	tests := []struct {
		name      string
		value     string
		symbology string
		options   driver.BarcodeOptions
		want      []byte
	}{
		{
			name:      "ean13",
			value:     "3130630574613",
			symbology: "ean13",
			options:   options,
			want: append(append(
				[]byte{0x1d, 0x68, 60, 0x1d, 0x77, 3, 0x1d, 0x48, 0, 0x1d, 0x6b, 2},
				[]byte("3130630574613")...), 0),
		},
		{
			name:      "code128 gets a code set prefix",
			value:     "CODE128",
			symbology: "code128",
			options:   options,
			want: append(
				[]byte{0x1d, 0x68, 60, 0x1d, 0x77, 3, 0x1d, 0x48, 0, 0x1d, 0x6b, 0x49, 9},
				[]byte("{BCODE128")...),
		},
		{
			name:      "code128 keeps an explicit code set",
			value:     "{ACODE",
			symbology: "code128",
			options:   options,
			want: append(
				[]byte{0x1d, 0x68, 60, 0x1d, 0x77, 3, 0x1d, 0x48, 0, 0x1d, 0x6b, 0x49, 6},
				[]byte("{ACODE")...),
		},
		{
			name:      "gs1-128 strips brackets",
			value:     "(01)12345*",
			symbology: "gs1-128",
			options:   driver.BarcodeOptions{Height: 80, Width: 1, Text: true},
			want: append(
				[]byte{0x1d, 0x68, 80, 0x1d, 0x77, 1, 0x1d, 0x48, 2, 0x1d, 0x6b, 0x48, 7},
				[]byte("0112345")...),
		},
		{
			name:      "itf doubles the module width",
			value:     "1234",
			symbology: "itf",
			options:   options,
			want: append(append(
				[]byte{0x1d, 0x68, 60, 0x1d, 0x77, 4, 0x1d, 0x48, 0, 0x1d, 0x6b, 5},
				[]byte("1234")...), 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Barcode(tt.value, tt.symbology, tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBarcodeErrors(t *testing.T) {
	l := newTestLanguage(t)

	_, err := l.Barcode("123", "maxicode", driver.DefaultBarcodeOptions())
	assert.ErrorIs(t, err, driver.ErrUnknownSymbology)

	_, err = l.Barcode("123", "ean13", driver.BarcodeOptions{Height: 60, Width: 4})
	assert.ErrorIs(t, err, driver.ErrOutOfRange)
}

func TestQRCode(t *testing.T) {
	l := newTestLanguage(t)
	url := "https://nielsleenheer.com"

	got, err := l.QRCode(url, driver.DefaultQRCodeOptions())
	require.NoError(t, err)

	want := []byte{
		29, 40, 107, 4, 0, 49, 65, 50, 0,
		29, 40, 107, 3, 0, 49, 67, 6,
		29, 40, 107, 3, 0, 49, 69, 49,
		29, 40, 107, 28, 0, 49, 80, 48,
	}
	want = append(want, []byte(url)...)
	want = append(want, 29, 40, 107, 3, 0, 49, 81, 48)
	assert.Equal(t, want, got)

	got, err = l.QRCode(url, driver.QRCodeOptions{Model: 1, Size: 8, ErrorLevel: driver.QRErrorLevelH})
	require.NoError(t, err)
	assert.Equal(t, []byte{29, 40, 107, 4, 0, 49, 65, 49, 0}, got[:9])
	assert.Equal(t, []byte{29, 40, 107, 3, 0, 49, 67, 8}, got[9:17])
	assert.Equal(t, []byte{29, 40, 107, 3, 0, 49, 69, 51}, got[17:25])
}

func TestQRCodeErrors(t *testing.T) {
	l := newTestLanguage(t)

	_, err := l.QRCode("x", driver.QRCodeOptions{Model: 3, Size: 6, ErrorLevel: driver.QRErrorLevelM})
	assert.ErrorIs(t, err, driver.ErrOutOfRange)

	_, err = l.QRCode("x", driver.QRCodeOptions{Model: 2, Size: 9, ErrorLevel: driver.QRErrorLevelM})
	assert.ErrorIs(t, err, driver.ErrOutOfRange)

	_, err = l.QRCode("x", driver.QRCodeOptions{Model: 2, Size: 6, ErrorLevel: "x"})
	assert.ErrorIs(t, err, driver.ErrOutOfRange)
}

func TestPDF417(t *testing.T) {
	l := newTestLanguage(t)

	got, err := l.PDF417("test", driver.DefaultPDF417Options())
	require.NoError(t, err)

	want := []byte{
		29, 40, 107, 3, 0, 48, 65, 0,
		29, 40, 107, 3, 0, 48, 66, 0,
		29, 40, 107, 3, 0, 48, 67, 3,
		29, 40, 107, 3, 0, 48, 68, 3,
		29, 40, 107, 4, 0, 48, 69, 48, 49,
		29, 40, 107, 3, 0, 48, 70, 0,
		29, 40, 107, 7, 0, 48, 80, 48, 't', 'e', 's', 't',
		29, 40, 107, 3, 0, 48, 81, 48,
	}
	assert.Equal(t, want, got)
}

func TestPDF417Errors(t *testing.T) {
	l := newTestLanguage(t)

	invalid := []driver.PDF417Options{
		{Width: 3, Height: 3, Columns: 31},
		{Width: 3, Height: 3, Rows: 2},
		{Width: 1, Height: 3},
		{Width: 3, Height: 9},
		{Width: 3, Height: 3, ErrorLevel: 9},
	}

	for _, options := range invalid {
		_, err := l.PDF417("test", options)
		assert.ErrorIs(t, err, driver.ErrOutOfRange, "%+v", options)
	}
}

func TestImageRaster(t *testing.T) {
	l := newTestLanguage(t)
	img := whiteImage(8, 8, image.Pt(0, 0))

	got := l.Image(img, 8, 8, driver.ImageModeRaster)
	assert.Equal(t, []byte{29, 118, 48, 0, 1, 0, 8, 0, 128, 0, 0, 0, 0, 0, 0, 0}, got)
}

func TestImageColumn(t *testing.T) {
	l := newTestLanguage(t)
	img := whiteImage(8, 8, image.Pt(0, 0))

	got := l.Image(img, 8, 8, driver.ImageModeColumn)

	want := []byte{27, 51, 36, 27, 42, 33, 8, 0, 128}
	want = append(want, make([]byte, 23)...)
	want = append(want, 10, 27, 50)
	assert.Equal(t, want, got)
}

func TestImageColumnStrips(t *testing.T) {
	l := newTestLanguage(t)
	img := whiteImage(8, 48, image.Pt(1, 24), image.Pt(0, 47))

	got := l.Image(img, 8, 48, driver.ImageModeColumn)

	// two strips of 5 + 24 + 1 bytes between the line spacing commands
	require.Len(t, got, 3+2*(5+24+1)+2)

	second := got[3+30 : 3+60]
	assert.Equal(t, []byte{27, 42, 33, 8, 0}, second[:5])
	assert.Equal(t, byte(0x01), second[5+2]) // x=0, dot 23 of the strip
	assert.Equal(t, byte(0x80), second[5+3]) // x=1, dot 0 of the strip
	assert.Equal(t, byte(10), second[len(second)-1])
}
