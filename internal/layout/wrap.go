// internal/layout/wrap.go
package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// spaceClass matches every Unicode space separator, not just ASCII blanks
const spaceClass = `\s\v\p{Z}\x{FEFF}`

var (
	newlinePattern = regexp.MustCompile(`\r\n|\n`)
	chunkPattern   = regexp.MustCompile(`[^` + spaceClass + `-]+?-\b|[^` + spaceClass + `]+|[` + spaceClass + `]+`)
)

// earlyBreak is the number of character cells that must remain on a line
// before an overlong word is split at the end of it instead of starting on
// the next line
const earlyBreak = 8

// WrapOptions configures Wrap
type WrapOptions struct {
	Columns int // line budget in character cells, default 42
	Width   int // cells per character, default 1
	Indent  int // cells already used on the first line
}

// Wrap breaks value into lines that fit the column budget. Source lines
// are never merged; a blank source line yields an empty string. All lines
// but the last are trimmed of trailing whitespace.
func Wrap(value string, options WrapOptions) []string {
	columns := options.Columns
	if columns <= 0 {
		columns = 42
	}
	width := options.Width
	if width <= 0 {
		width = 1
	}

	var (
		chunked [][]string
		line    []string
		length  = options.Indent
	)

	breakLine := func() {
		chunked = append(chunked, line)
		line = nil
		length = 0
	}

	for _, source := range newlinePattern.Split(value, -1) {
		chunks := chunkPattern.FindAllString(source, -1)
		if len(chunks) == 0 {
			breakLine()
			continue
		}

		for _, chunk := range chunks {
			size := utf8.RuneCountInString(chunk)

			if length+size*width > columns {
				if size*width > columns {
					line, length, chunked = splitWord([]rune(chunk), line, length, chunked, columns, width)
					continue
				}

				breakLine()
			}

			// No leading whitespace on a fresh line
			if length == 0 && isWhitespace(chunk) {
				continue
			}

			line = append(line, chunk)
			length += size * width
		}

		if len(line) > 0 {
			breakLine()
		}
	}

	result := make([]string, 0, len(chunked))
	for i, parts := range chunked {
		flattened := strings.Join(parts, "")
		if i < len(chunked)-1 {
			flattened = strings.TrimRightFunc(flattened, isSpace)
		}
		result = append(result, flattened)
	}

	return result
}

// splitWord hard-splits a word that is wider than a whole line
func splitWord(letters []rune, line []string, length int, chunked [][]string, columns, width int) ([]string, int, [][]string) {
	remaining := columns - length

	if remaining > earlyBreak*width {
		n := remaining / width
		line = append(line, string(letters[:n]))
		chunked = append(chunked, line)
		line = nil
		length = 0
		letters = letters[n:]
	}

	perLine := columns / width
	if perLine < 1 {
		perLine = 1
	}

	for len(letters) > 0 {
		n := min(perLine, len(letters))
		piece := string(letters[:n])
		letters = letters[n:]

		if length+n*width > columns && length > 0 {
			chunked = append(chunked, line)
			line = nil
			length = 0
		}

		line = append(line, piece)
		length += n * width
	}

	return line, length, chunked
}

func isWhitespace(chunk string) bool {
	r, _ := utf8.DecodeRuneInString(chunk)
	return isSpace(r)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
