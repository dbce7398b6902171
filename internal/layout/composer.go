// internal/layout/composer.go
package layout

import (
	"strings"
	"unicode/utf8"

	"receipt-encoder/pkg/driver"
)

// FlushOptions controls how a pending line is committed
type FlushOptions struct {
	ForceNewline    bool // emit a line even when nothing is buffered
	ForceFlush      bool // commit pending style changes even on an empty line
	IgnoreAlignment bool // no padding when the line holds no visible content
}

// ComposerOptions configures a Composer
type ComposerOptions struct {
	Embedded bool
	Columns  int
	Align    driver.Alignment
	Callback func([]driver.Item)
}

// Composer buffers the items of one output line, wraps text into the
// column budget and applies alignment padding when the line is flushed.
// Completed lines are handed to the callback.
type Composer struct {
	Style *Style

	embedded bool
	columns  int
	align    driver.Alignment
	callback func([]driver.Item)

	cursor int
	stored []driver.Item
	buffer []driver.Item
}

// NewComposer creates a line composer
func NewComposer(options ComposerOptions) *Composer {
	c := &Composer{
		embedded: options.Embedded,
		columns:  options.Columns,
		align:    options.Align,
		callback: options.Callback,
	}

	if c.columns <= 0 {
		c.columns = 42
	}
	if c.align == "" {
		c.align = driver.AlignLeft
	}
	if c.callback == nil {
		c.callback = func([]driver.Item) {}
	}

	c.Style = NewStyle(func(item driver.Item) {
		c.Add([]driver.Item{item}, 0)
	})
	c.stored = c.Style.Store()

	return c
}

// Text adds text to the line, wrapping it onto following lines as needed
func (c *Composer) Text(value, codepage string) {
	lines := Wrap(value, WrapOptions{
		Columns: c.columns,
		Width:   c.Style.Width(),
		Indent:  c.cursor,
	})

	for i, line := range lines {
		if line == "" {
			c.Flush(FlushOptions{ForceNewline: true})
			continue
		}

		c.Add([]driver.Item{driver.TextItem(line, codepage)}, utf8.RuneCountInString(line)*c.Style.Width())

		if i < len(lines)-1 {
			c.Flush(FlushOptions{})
		}
	}
}

// Space adds size cells of blank space
func (c *Composer) Space(size int) {
	c.Add([]driver.Item{driver.SpaceItem(size)}, size)
}

// Raw adds printer bytes, one item per chunk, occupying length cells
func (c *Composer) Raw(length int, chunks ...[]byte) {
	items := make([]driver.Item, 0, len(chunks))
	for _, chunk := range chunks {
		items = append(items, driver.RawItem(chunk))
	}

	c.Add(items, length)
}

// Add appends items occupying length cells, flushing first when they do
// not fit on the current line
func (c *Composer) Add(items []driver.Item, length int) {
	if length+c.cursor > c.columns {
		c.Flush(FlushOptions{})
	}

	c.cursor += length
	c.buffer = append(c.buffer, items...)
}

// End marks the line as full so the next addition starts a new line
func (c *Composer) End() {
	c.cursor = c.columns
}

// Fetch commits the pending line and returns its items. Style changes are
// bracketed so every line starts and ends in the default style.
func (c *Composer) Fetch(options FlushOptions) []driver.Item {
	// Unless forced keep style changes for the next line
	if c.cursor == 0 && !options.ForceNewline && !options.ForceFlush {
		return nil
	}

	current, next := c.align, driver.Alignment("")
	for i := 0; i < len(c.buffer)-1; i++ {
		if c.buffer[i].Kind == driver.ItemAlign {
			current = c.buffer[i].Align
		}
	}
	if n := len(c.buffer); n > 0 && c.buffer[n-1].Kind == driver.ItemAlign {
		next = c.buffer[n-1].Align
	}
	c.align = current

	restore := c.Style.Restore()
	store := c.Style.Store()

	var assembled []driver.Item

	switch {
	case c.cursor == 0 && options.IgnoreAlignment:
		assembled = concatItems(c.stored, c.buffer, store)

	case c.align == driver.AlignRight:
		c.trimTrailingSpace()
		assembled = concatItems(
			[]driver.Item{driver.SpaceItem(c.columns - c.cursor)},
			c.stored, c.buffer, store,
		)

	case c.align == driver.AlignCenter:
		left := (c.columns - c.cursor) >> 1
		right := 0
		if c.embedded {
			right = c.columns - c.cursor - left
		}
		assembled = concatItems(
			[]driver.Item{driver.SpaceItem(left)},
			c.stored, c.buffer, store,
			[]driver.Item{driver.SpaceItem(right)},
		)

	default:
		right := 0
		if c.embedded {
			right = c.columns - c.cursor
		}
		assembled = concatItems(
			c.stored, c.buffer, store,
			[]driver.Item{driver.SpaceItem(right)},
		)
	}

	result := mergeItems(assembled)

	c.stored = restore
	c.buffer = nil
	c.cursor = 0

	if len(result) == 0 && options.ForceNewline {
		result = append(result, driver.EmptyItem())
	}

	if next != "" {
		c.align = next
	}

	return result
}

// Flush commits the pending line and passes it to the callback
func (c *Composer) Flush(options FlushOptions) {
	result := c.Fetch(options)
	if len(result) > 0 {
		c.callback(result)
	}
}

// trimTrailingSpace removes one trailing blank from right aligned lines
func (c *Composer) trimTrailingSpace() {
	last := -1
	for i := len(c.buffer) - 1; i >= 0; i-- {
		if c.buffer[i].Kind == driver.ItemText || c.buffer[i].Kind == driver.ItemSpace {
			last = i
			break
		}
	}
	if last < 0 {
		return
	}

	item := &c.buffer[last]
	width := c.Style.Width()

	if item.Kind == driver.ItemSpace && item.Size > width {
		item.Size -= width
		c.cursor -= width
	}

	if item.Kind == driver.ItemText && strings.HasSuffix(item.Value, " ") {
		item.Value = item.Value[:len(item.Value)-1]
		c.cursor -= width
	}
}

// Align returns the alignment that applies once the buffer is flushed
func (c *Composer) Align() driver.Alignment {
	align := c.align
	for _, item := range c.buffer {
		if item.Kind == driver.ItemAlign {
			align = item.Align
		}
	}
	return align
}

// SetAlign adds an alignment marker to the line
func (c *Composer) SetAlign(value driver.Alignment) {
	c.Add([]driver.Item{driver.AlignItem(value)}, 0)
}

func (c *Composer) Columns() int { return c.columns }

func (c *Composer) SetColumns(value int) { c.columns = value }

func (c *Composer) Cursor() int { return c.cursor }

// mergeItems turns spaces into text, joins neighbouring text runs with
// compatible codepages and collapses consecutive size changes. Align,
// empty and zero width space items are dropped.
func mergeItems(items []driver.Item) []driver.Item {
	result := make([]driver.Item, 0, len(items))

	for _, item := range items {
		if item.Kind == driver.ItemSpace {
			if item.Size <= 0 {
				continue
			}
			item = driver.TextItem(strings.Repeat(" ", item.Size), "")
		}

		n := len(result)

		switch item.Kind {
		case driver.ItemText:
			if n > 0 && result[n-1].Kind == driver.ItemText {
				last := &result[n-1]
				if last.Codepage == item.Codepage || last.Codepage == "" || item.Codepage == "" {
					last.Value += item.Value
					if last.Codepage == "" {
						last.Codepage = item.Codepage
					}
					continue
				}
			}
			result = append(result, item)

		case driver.ItemStyle:
			if n > 0 && item.IsSize() && result[n-1].IsSize() {
				result[n-1] = item
				continue
			}
			result = append(result, item)

		case driver.ItemRaw:
			result = append(result, item)
		}
	}

	return result
}

func concatItems(groups ...[]driver.Item) []driver.Item {
	size := 0
	for _, group := range groups {
		size += len(group)
	}

	result := make([]driver.Item, 0, size)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}
