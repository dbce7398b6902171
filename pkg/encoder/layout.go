// pkg/encoder/layout.go
package encoder

import (
	"fmt"
	"strings"

	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// boxGlyphs holds the corners, the horizontal and the vertical glyph of a
// box border, in that order: top left, top right, bottom left, bottom
// right, horizontal, vertical
var boxGlyphs = map[devicetypes.BoxStyle][6]string{
	devicetypes.BoxStyleSingle: {"┌", "┐", "└", "┘", "─", "│"},
	devicetypes.BoxStyleDouble: {"╔", "╗", "╚", "╝", "═", "║"},
}

var ruleGlyphs = map[devicetypes.RuleStyle]string{
	devicetypes.RuleStyleSingle: "─",
	devicetypes.RuleStyleDouble: "═",
}

// Borders are drawn in the codepage holding the box drawing glyphs
const borderCodepage = "cp437"

// Cell is the content of a table cell or box: a TextCell or a CellFunc
type Cell interface {
	render(e *Encoder)
}

// TextCell is plain text content
type TextCell string

func (c TextCell) render(e *Encoder) { e.Text(string(c)) }

// CellFunc builds the content on the embedded encoder it receives
type CellFunc func(e *Encoder)

func (f CellFunc) render(e *Encoder) { f(e) }

// TableColumn describes one table column. Margins are added outside the
// declared width.
type TableColumn struct {
	Width         int
	Align         driver.Alignment
	VerticalAlign devicetypes.VerticalAlign
	MarginLeft    int
	MarginRight   int
}

// Table adds rows of cells laid out in columns. Every cell is composed on
// its own embedded encoder and shorter cells are padded to the height of
// the row.
func (e *Encoder) Table(columns []TableColumn, rows [][]Cell) *Encoder {
	if e.err != nil {
		return e
	}

	if len(columns) == 0 {
		return e.fail(fmt.Errorf("%w: a table needs at least one column", ErrInvalidArgument))
	}

	for i, column := range columns {
		if column.Width <= 0 {
			return e.fail(fmt.Errorf("%w: width of column %d must be positive", ErrInvalidArgument, i))
		}
		if column.MarginLeft < 0 || column.MarginRight < 0 {
			return e.fail(fmt.Errorf("%w: margins of column %d must not be negative", ErrInvalidArgument, i))
		}
		switch column.VerticalAlign {
		case "", devicetypes.VerticalAlignTop, devicetypes.VerticalAlignBottom:
		default:
			return e.fail(fmt.Errorf("%w: unknown vertical alignment %q", ErrInvalidArgument, column.VerticalAlign))
		}
	}

	composed := make([][][]driver.LineCommands, 0, len(rows))
	for _, row := range rows {
		cells, err := e.tableRow(columns, row)
		if err != nil {
			return e.fail(err)
		}
		composed = append(composed, cells)
	}

	e.composer.Flush(flushLine)

	for _, cells := range composed {
		for l := 0; l < len(cells[0]); l++ {
			for c, column := range columns {
				e.composer.Space(column.MarginLeft)
				e.composer.Add(cells[c][l].Commands, column.Width)
				e.composer.Space(column.MarginRight)
			}
			e.composer.Flush(flushLine)
		}
	}

	return e
}

// tableRow composes the cells of one row, padded to an equal number of
// lines
func (e *Encoder) tableRow(columns []TableColumn, row []Cell) ([][]driver.LineCommands, error) {
	cells := make([][]driver.LineCommands, len(columns))
	height := 0

	for c, column := range columns {
		var content Cell
		if c < len(row) {
			content = row[c]
		}

		lines, err := e.compose(column.Width, column.Align, content)
		if err != nil {
			return nil, err
		}

		cells[c] = lines
		height = max(height, len(lines))
	}

	for c, column := range columns {
		for len(cells[c]) < height {
			blank := driver.LineCommands{
				Commands: []driver.Item{driver.SpaceItem(column.Width)},
				Height:   1,
			}
			if column.VerticalAlign == devicetypes.VerticalAlignBottom {
				cells[c] = append([]driver.LineCommands{blank}, cells[c]...)
			} else {
				cells[c] = append(cells[c], blank)
			}
		}
	}

	return cells, nil
}

// compose renders content on an embedded encoder of the given width and
// drains it
func (e *Encoder) compose(width int, align driver.Alignment, content Cell) ([]driver.LineCommands, error) {
	child, err := e.nested(width, align)
	if err != nil {
		return nil, err
	}

	if content != nil {
		content.render(child)
	}

	return child.Commands()
}

// RuleOptions configures a horizontal rule. A zero Width spans the paper.
type RuleOptions struct {
	Style devicetypes.RuleStyle
	Width int
}

// Rule adds a horizontal line on a line of its own
func (e *Encoder) Rule(options RuleOptions) *Encoder {
	if e.err != nil {
		return e
	}

	if options.Style == "" {
		options.Style = devicetypes.RuleStyleSingle
	}
	glyph, ok := ruleGlyphs[options.Style]
	if !ok {
		return e.fail(fmt.Errorf("%w: unknown rule style %q", ErrInvalidArgument, options.Style))
	}

	if options.Width == 0 {
		options.Width = e.options.Columns
	}
	if options.Width < 0 {
		return e.fail(fmt.Errorf("%w: rule width must not be negative", ErrInvalidArgument))
	}

	e.composer.Flush(flushLine)
	e.composer.Text(strings.Repeat(glyph, options.Width), borderCodepage)
	e.composer.Flush(flushLine)

	return e
}

// BoxOptions configures a box. Margins are outside the border, padding is
// inside. A zero Width spans the paper.
type BoxOptions struct {
	Style        devicetypes.BoxStyle
	Align        driver.Alignment
	Width        int
	MarginLeft   int
	MarginRight  int
	PaddingLeft  int
	PaddingRight int
}

// Box adds content surrounded by a border
func (e *Encoder) Box(options BoxOptions, content Cell) *Encoder {
	if e.err != nil {
		return e
	}

	if options.Style == "" {
		options.Style = devicetypes.BoxStyleSingle
	}
	if options.Align == "" {
		options.Align = driver.AlignLeft
	}
	if options.Width == 0 {
		options.Width = e.options.Columns
	}

	glyphs, bordered := boxGlyphs[options.Style]
	if !bordered && options.Style != devicetypes.BoxStyleNone {
		return e.fail(fmt.Errorf("%w: unknown box style %q", ErrInvalidArgument, options.Style))
	}
	if options.MarginLeft < 0 || options.MarginRight < 0 || options.PaddingLeft < 0 || options.PaddingRight < 0 {
		return e.fail(fmt.Errorf("%w: box margins and padding must not be negative", ErrInvalidArgument))
	}
	if options.Width+options.MarginLeft+options.MarginRight > e.options.Columns {
		return e.fail(fmt.Errorf("%w: %d columns with margins on %d columns", ErrBoxTooWide, options.Width, e.options.Columns))
	}

	inner := options.Width - options.PaddingLeft - options.PaddingRight
	if bordered {
		inner -= 2
	}

	lines, err := e.compose(inner, options.Align, content)
	if err != nil {
		return e.fail(err)
	}

	e.composer.Flush(flushLine)

	border := func(left, right string) {
		e.composer.Space(options.MarginLeft)
		e.composer.Text(left, borderCodepage)
		e.composer.Text(strings.Repeat(glyphs[4], options.Width-2), borderCodepage)
		e.composer.Text(right, borderCodepage)
		e.composer.Space(options.MarginRight)
		e.composer.Flush(flushLine)
	}

	side := func(height int) {
		e.composer.Style.SetHeight(height)
		e.composer.Text(glyphs[5], borderCodepage)
		e.composer.Style.SetHeight(1)
	}

	if bordered {
		border(glyphs[0], glyphs[1])
	}

	for _, line := range lines {
		e.composer.Space(options.MarginLeft)
		if bordered {
			side(line.Height)
		}
		e.composer.Space(options.PaddingLeft)
		e.composer.Add(line.Commands, inner)
		e.composer.Space(options.PaddingRight)
		if bordered {
			side(line.Height)
		}
		e.composer.Space(options.MarginRight)
		e.composer.Flush(flushLine)
	}

	if bordered {
		border(glyphs[2], glyphs[3])
	}

	return e
}
