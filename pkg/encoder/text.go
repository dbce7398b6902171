// pkg/encoder/text.go
package encoder

import (
	"fmt"
	"regexp"
	"strings"

	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// glyphSize matches font names given as a glyph size such as "9x24"
var glyphSize = regexp.MustCompile(`^[0-9]+x[0-9]+$`)

// Codepage selects the codepage for following text. "auto" picks the best
// candidate codepage per fragment of text.
func (e *Encoder) Codepage(name string) *Encoder {
	if e.err != nil {
		return e
	}

	if name == "auto" {
		e.codepage = name
		return e
	}

	if !e.charset.Supports(name) {
		return e.fail(fmt.Errorf("%w: %s", ErrUnknownCodepage, name))
	}
	if _, ok := e.mapping.ID(name); !ok {
		return e.fail(fmt.Errorf("%w: %s", ErrCodepageNotSupported, name))
	}

	e.codepage = name
	return e
}

// Text adds text, wrapping it over as many lines as needed
func (e *Encoder) Text(value string) *Encoder {
	if e.err != nil {
		return e
	}

	e.composer.Text(value, e.codepage)
	return e
}

// Newline ends the current line. An optional count emits that many
// newlines.
func (e *Encoder) Newline(count ...int) *Encoder {
	if e.err != nil {
		return e
	}

	n := 1
	if len(count) > 0 && count[0] > 0 {
		n = count[0]
	}

	for i := 0; i < n; i++ {
		e.composer.Flush(forceNewline)
	}
	return e
}

// Line adds text followed by a newline
func (e *Encoder) Line(value string) *Encoder {
	return e.Text(value).Newline()
}

// Underline turns underlining on or off. Without an argument it toggles.
func (e *Encoder) Underline(value ...bool) *Encoder {
	if e.err == nil {
		e.composer.Style.SetUnderline(toggle(e.composer.Style.Underline(), value))
	}
	return e
}

// Italic turns italic on or off. Without an argument it toggles.
func (e *Encoder) Italic(value ...bool) *Encoder {
	if e.err == nil {
		e.composer.Style.SetItalic(toggle(e.composer.Style.Italic(), value))
	}
	return e
}

// Bold turns bold on or off. Without an argument it toggles.
func (e *Encoder) Bold(value ...bool) *Encoder {
	if e.err == nil {
		e.composer.Style.SetBold(toggle(e.composer.Style.Bold(), value))
	}
	return e
}

// Invert turns white on black printing on or off. Without an argument it
// toggles.
func (e *Encoder) Invert(value ...bool) *Encoder {
	if e.err == nil {
		e.composer.Style.SetInvert(toggle(e.composer.Style.Invert(), value))
	}
	return e
}

func toggle(current bool, value []bool) bool {
	if len(value) == 0 {
		return !current
	}
	return value[0]
}

// Width sets the character width multiplier, 1-8
func (e *Encoder) Width(width int) *Encoder {
	if e.err != nil {
		return e
	}
	if width < 1 || width > 8 {
		return e.fail(fmt.Errorf("%w: width must be between 1 and 8, got %d", ErrInvalidArgument, width))
	}

	e.composer.Style.SetWidth(width)
	return e
}

// Height sets the character height multiplier, 1-8
func (e *Encoder) Height(height int) *Encoder {
	if e.err != nil {
		return e
	}
	if height < 1 || height > 8 {
		return e.fail(fmt.Errorf("%w: height must be between 1 and 8, got %d", ErrInvalidArgument, height))
	}

	e.composer.Style.SetHeight(height)
	return e
}

// Size sets both character multipliers
func (e *Encoder) Size(width, height int) *Encoder {
	return e.Width(width).Height(height)
}

// SizeName selects font B for "small" and font A for anything else
func (e *Encoder) SizeName(name string) *Encoder {
	if name == "small" {
		return e.Font(string(devicetypes.FontB))
	}
	return e.Font(string(devicetypes.FontA))
}

// Font selects a printer font by letter or by glyph size, for example
// "B" or "9x24". The number of columns follows the width of the font.
func (e *Encoder) Font(name string) *Encoder {
	if e.err != nil || e.embedded("changing fonts") {
		return e
	}
	if e.composer.Cursor() > 0 {
		return e.fail(fmt.Errorf("%w: changing fonts", ErrMidLine))
	}

	var letter devicetypes.FontType
	if glyphSize.MatchString(name) {
		found, ok := e.capabilities.FontBySize(name)
		if !ok {
			return e.unsupported("font", fmt.Sprintf("font size %s is not supported by this printer", name))
		}
		letter = found
	} else {
		letter = devicetypes.FontType(strings.ToUpper(name))
	}

	font, ok := e.capabilities.Fonts[letter]
	if !ok {
		return e.unsupported("font", fmt.Sprintf("font %s is not supported by this printer", name))
	}

	e.composer.Raw(0, e.language.Font(letter))
	e.state.font = letter

	columns := e.options.Columns
	if letter != devicetypes.FontA {
		if base := e.capabilities.Fonts[devicetypes.FontA].Columns; base > 0 {
			columns = e.options.Columns * font.Columns / base
		}
	}
	e.composer.SetColumns(columns)

	return e
}

// Align sets the alignment of the current and following lines
func (e *Encoder) Align(value driver.Alignment) *Encoder {
	if e.err != nil {
		return e
	}
	if !value.Valid() {
		return e.fail(fmt.Errorf("%w: unknown alignment %q", ErrInvalidArgument, value))
	}

	e.composer.SetAlign(value)
	return e
}

// Raw adds printer bytes as they are. They take up no columns.
func (e *Encoder) Raw(data []byte) *Encoder {
	if e.err != nil {
		return e
	}

	e.composer.Raw(0, data)
	return e
}
