// pkg/encoder/serialize.go
package encoder

import (
	"fmt"
	"strings"

	"receipt-encoder/pkg/driver"
)

// Commands drains the document into lines of buffer items and starts a new
// document. When an operation failed, the lines composed before the
// failure are returned together with its error.
func (e *Encoder) Commands() ([]driver.LineCommands, error) {
	err := e.err

	if *e.options.AutoFlush && !e.options.Embedded {
		e.composer.Raw(0, e.language.Flush())
	}

	if remaining := e.composer.Fetch(pageFlush); len(remaining) > 0 {
		e.queue = append(e.queue, remaining)
	}

	result := make([]driver.LineCommands, 0, len(e.queue))
	for _, line := range e.queue {
		height := lineHeight(line)
		if e.options.Debug {
			e.logger.LogLine(lineText(line), height)
		}

		result = append(result, driver.LineCommands{
			Commands: line,
			Height:   height,
		})
	}

	e.reset()

	return result, err
}

// Encode drains the document into printer bytes and starts a new
// document. When an operation failed, the bytes for everything before the
// failure are returned together with its error.
func (e *Encoder) Encode() ([]byte, error) {
	lines, err := e.Commands()

	newline := e.options.Newline.Bytes()

	var result []byte
	for _, line := range lines {
		for _, item := range line.Commands {
			var (
				data      []byte
				encodeErr error
			)

			switch item.Kind {
			case driver.ItemRaw:
				data = item.Raw
			case driver.ItemText:
				data, encodeErr = e.encodeText(item.Value, item.Codepage)
			case driver.ItemStyle:
				data, encodeErr = e.encodeStyle(item)
			}

			if encodeErr != nil && err == nil {
				err = encodeErr
			}
			result = append(result, data...)
		}

		result = append(result, newline...)
	}

	if e.options.Debug {
		e.logger.LogDocument(len(lines), len(result))
	}

	return result, err
}

// encodeText converts text into codepage bytes, adding codepage switches
// where the printer state differs. Text without a codepage is written in
// the active codepage.
func (e *Encoder) encodeText(value, codepage string) ([]byte, error) {
	if codepage == "auto" {
		var result []byte
		for _, fragment := range e.charset.AutoEncode(value, e.mapping.Candidates) {
			if id, ok := e.mapping.ID(fragment.Codepage); ok {
				result = append(result, e.language.Codepage(id)...)
				e.state.codepage = id
			}
			e.state.codepageName = fragment.Codepage
			result = append(result, fragment.Bytes...)
		}
		return result, nil
	}

	if codepage == "" {
		codepage = e.state.codepageName
	}

	data, err := e.charset.Encode(value, codepage)
	if err != nil {
		return nil, err
	}

	var result []byte
	if id, ok := e.mapping.ID(codepage); ok && id != e.state.codepage {
		result = append(result, e.language.Codepage(id)...)
		e.state.codepage = id
	}
	e.state.codepageName = codepage

	return append(result, data...), nil
}

func (e *Encoder) encodeStyle(item driver.Item) ([]byte, error) {
	switch item.Property {
	case driver.StyleBold:
		return e.language.Bold(item.Flag), nil
	case driver.StyleItalic:
		return e.language.Italic(item.Flag), nil
	case driver.StyleUnderline:
		return e.language.Underline(item.Flag), nil
	case driver.StyleInvert:
		return e.language.Invert(item.Flag), nil
	case driver.StyleSize:
		data, err := e.language.Size(item.Dimensions.Width, item.Dimensions.Height)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return data, nil
	}
	return nil, nil
}

// lineHeight is the tallest character height set on the line
func lineHeight(line []driver.Item) int {
	height := 1
	for _, item := range line {
		if item.IsSize() {
			height = max(height, item.Dimensions.Height)
		}
	}
	return height
}

func lineText(line []driver.Item) string {
	var sb strings.Builder
	for _, item := range line {
		if item.Kind == driver.ItemText {
			sb.WriteString(item.Value)
		}
	}
	return sb.String()
}
