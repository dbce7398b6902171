// internal/layout/style.go
package layout

import "receipt-encoder/pkg/driver"

// styleState holds the text attributes of one line
type styleState struct {
	bold      bool
	italic    bool
	underline bool
	invert    bool
	width     int
	height    int
}

var defaultStyle = styleState{width: 1, height: 1}

// Style tracks the current text style and reports every change to its
// callback as a style item. Setting a value equal to the current one is
// silent.
type Style struct {
	current  styleState
	callback func(driver.Item)
}

// NewStyle creates a style tracker in the default state
func NewStyle(callback func(driver.Item)) *Style {
	if callback == nil {
		callback = func(driver.Item) {}
	}

	return &Style{
		current:  defaultStyle,
		callback: callback,
	}
}

// Store returns the items that take the current style back to the default
func (s *Style) Store() []driver.Item {
	return diffStyle(s.current, defaultStyle)
}

// Restore returns the items that take the default style to the current one
func (s *Style) Restore() []driver.Item {
	return diffStyle(defaultStyle, s.current)
}

// diffStyle lists the changes needed to go from one state to another.
// Width and height are always reported together as one size item.
func diffStyle(from, to styleState) []driver.Item {
	var items []driver.Item

	if from.bold != to.bold {
		items = append(items, driver.StyleItem(driver.StyleBold, to.bold))
	}
	if from.italic != to.italic {
		items = append(items, driver.StyleItem(driver.StyleItalic, to.italic))
	}
	if from.underline != to.underline {
		items = append(items, driver.StyleItem(driver.StyleUnderline, to.underline))
	}
	if from.invert != to.invert {
		items = append(items, driver.StyleItem(driver.StyleInvert, to.invert))
	}
	if from.width != to.width || from.height != to.height {
		items = append(items, driver.SizeItem(to.width, to.height))
	}

	return items
}

func (s *Style) Bold() bool      { return s.current.bold }
func (s *Style) Italic() bool    { return s.current.italic }
func (s *Style) Underline() bool { return s.current.underline }
func (s *Style) Invert() bool    { return s.current.invert }
func (s *Style) Width() int      { return s.current.width }
func (s *Style) Height() int     { return s.current.height }

func (s *Style) SetBold(value bool) {
	s.setFlag(&s.current.bold, driver.StyleBold, value)
}

func (s *Style) SetItalic(value bool) {
	s.setFlag(&s.current.italic, driver.StyleItalic, value)
}

func (s *Style) SetUnderline(value bool) {
	s.setFlag(&s.current.underline, driver.StyleUnderline, value)
}

func (s *Style) SetInvert(value bool) {
	s.setFlag(&s.current.invert, driver.StyleInvert, value)
}

// SetWidth changes the character width. Range checks are the caller's job.
func (s *Style) SetWidth(value int) {
	if value == s.current.width {
		return
	}
	s.current.width = value
	s.callback(driver.SizeItem(s.current.width, s.current.height))
}

// SetHeight changes the character height. Range checks are the caller's job.
func (s *Style) SetHeight(value int) {
	if value == s.current.height {
		return
	}
	s.current.height = value
	s.callback(driver.SizeItem(s.current.width, s.current.height))
}

func (s *Style) setFlag(field *bool, property driver.StyleProperty, value bool) {
	if *field == value {
		return
	}
	*field = value
	s.callback(driver.StyleItem(property, value))
}
