// internal/codepage/codepage.go
package codepage

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/width"
)

// ErrUnknownCodepage is returned for codepage names without a character table
var ErrUnknownCodepage = errors.New("unknown codepage")

// replacement is written for characters the codepage cannot represent
const replacement = '?'

// table maps a single rune onto a single codepage byte
type table interface {
	encodeRune(r rune) (byte, bool)
}

// charmapTable wraps a single byte charmap from x/text
type charmapTable struct {
	cm *charmap.Charmap
}

func (t charmapTable) encodeRune(r rune) (byte, bool) {
	return t.cm.EncodeRune(r)
}

// asciiTable accepts 7-bit characters only
type asciiTable struct{}

func (asciiTable) encodeRune(r rune) (byte, bool) {
	if r < utf8.RuneSelf {
		return byte(r), true
	}
	return 0, false
}

// katakanaTable is the single byte half of Shift JIS: ASCII plus half-width
// katakana in 0xA1-0xDF. Full-width katakana is narrowed first.
type katakanaTable struct{}

func (katakanaTable) encodeRune(r rune) (byte, bool) {
	if r < utf8.RuneSelf {
		return byte(r), true
	}

	narrow := width.Narrow.String(string(r))
	if utf8.RuneCountInString(narrow) != 1 {
		return 0, false
	}

	encoded, err := japanese.ShiftJIS.NewEncoder().String(narrow)
	if err != nil || len(encoded) != 1 {
		return 0, false
	}
	return encoded[0], true
}

// tables lists every codepage this package can produce
var tables = map[string]table{
	"ascii":         asciiTable{},
	"star/standard": asciiTable{},

	"cp437": charmapTable{charmap.CodePage437},
	"cp850": charmapTable{charmap.CodePage850},
	"cp852": charmapTable{charmap.CodePage852},
	"cp855": charmapTable{charmap.CodePage855},
	"cp858": charmapTable{charmap.CodePage858},
	"cp860": charmapTable{charmap.CodePage860},
	"cp862": charmapTable{charmap.CodePage862},
	"cp863": charmapTable{charmap.CodePage863},
	"cp865": charmapTable{charmap.CodePage865},
	"cp866": charmapTable{charmap.CodePage866},

	"cp874":      charmapTable{charmap.Windows874},
	"star/cp874": charmapTable{charmap.Windows874},

	"iso8859-1":       charmapTable{charmap.ISO8859_1},
	"iso8859-2":       charmapTable{charmap.ISO8859_2},
	"epson/iso8859-2": charmapTable{charmap.ISO8859_2},
	"iso8859-3":       charmapTable{charmap.ISO8859_3},
	"iso8859-4":       charmapTable{charmap.ISO8859_4},
	"iso8859-5":       charmapTable{charmap.ISO8859_5},
	"iso8859-6":       charmapTable{charmap.ISO8859_6},
	"iso8859-7":       charmapTable{charmap.ISO8859_7},
	"iso8859-8":       charmapTable{charmap.ISO8859_8},
	"iso8859-9":       charmapTable{charmap.ISO8859_9},
	"iso8859-10":      charmapTable{charmap.ISO8859_10},
	"iso8859-13":      charmapTable{charmap.ISO8859_13},
	"iso8859-14":      charmapTable{charmap.ISO8859_14},
	"iso8859-15":      charmapTable{charmap.ISO8859_15},
	"iso8859-16":      charmapTable{charmap.ISO8859_16},

	"windows1250": charmapTable{charmap.Windows1250},
	"windows1251": charmapTable{charmap.Windows1251},
	"windows1252": charmapTable{charmap.Windows1252},
	"windows1253": charmapTable{charmap.Windows1253},
	"windows1254": charmapTable{charmap.Windows1254},
	"windows1255": charmapTable{charmap.Windows1255},
	"windows1256": charmapTable{charmap.Windows1256},
	"windows1257": charmapTable{charmap.Windows1257},
	"windows1258": charmapTable{charmap.Windows1258},

	"epson/katakana": katakanaTable{},
	"star/katakana":  katakanaTable{},
}

// Encoder converts text into codepage bytes. The zero value is ready to use.
type Encoder struct{}

// New creates a codepage encoder
func New() *Encoder {
	return &Encoder{}
}

// Supports reports whether the codepage can be encoded
func (e *Encoder) Supports(codepage string) bool {
	_, ok := tables[strings.ToLower(codepage)]
	return ok
}

// Codepages returns the supported codepage names in sorted order
func (e *Encoder) Codepages() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Encode converts text into the named codepage. Characters the codepage
// cannot represent are replaced with '?'.
func (e *Encoder) Encode(text, codepage string) ([]byte, error) {
	t, ok := tables[strings.ToLower(codepage)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodepage, codepage)
	}

	result := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := t.encodeRune(r)
		if !ok {
			b = replacement
		}
		result = append(result, b)
	}
	return result, nil
}
