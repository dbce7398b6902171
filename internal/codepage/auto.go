// internal/codepage/auto.go
package codepage

import (
	"strings"

	"receipt-encoder/pkg/driver"
)

// fallbackCodepage is used when none of the candidates can be encoded
const fallbackCodepage = "cp437"

// AutoEncode splits text into fragments, each encoded in one of the
// candidate codepages. The current codepage is kept for as long as it can
// encode the text; at every switch the candidate with the longest run wins
// and ties go to the earliest candidate. Unsupported candidates are
// skipped. Characters no candidate can represent become '?'.
func (e *Encoder) AutoEncode(text string, candidates []string) []driver.CodepageFragment {
	if text == "" {
		return nil
	}

	usable := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if _, ok := tables[strings.ToLower(name)]; ok {
			usable = append(usable, name)
		}
	}

	var (
		runes     = []rune(text)
		fragments []driver.CodepageFragment
		current   string
		buffer    []byte
	)

	commit := func() {
		if current != "" && len(buffer) > 0 {
			fragments = append(fragments, driver.CodepageFragment{Codepage: current, Bytes: buffer})
		}
		buffer = nil
	}

	for i := 0; i < len(runes); {
		if current != "" {
			if b, ok := lookup(current).encodeRune(runes[i]); ok {
				buffer = append(buffer, b)
				i++
				continue
			}
		}

		best, bestRun := "", 0
		for _, name := range usable {
			if n := runLength(lookup(name), runes[i:]); n > bestRun {
				best, bestRun = name, n
			}
		}

		if bestRun == 0 {
			if current == "" {
				current = fallbackCodepage
				if len(usable) > 0 {
					current = usable[0]
				}
			}
			buffer = append(buffer, replacement)
			i++
			continue
		}

		if best != current {
			commit()
			current = best
		}

		t := lookup(current)
		for _, r := range runes[i : i+bestRun] {
			b, _ := t.encodeRune(r)
			buffer = append(buffer, b)
		}
		i += bestRun
	}

	commit()
	return fragments
}

// runLength counts the leading runes the table can encode
func runLength(t table, runes []rune) int {
	for i, r := range runes {
		if _, ok := t.encodeRune(r); !ok {
			return i
		}
	}
	return len(runes)
}

func lookup(name string) table {
	if t, ok := tables[strings.ToLower(name)]; ok {
		return t
	}
	return tables[fallbackCodepage]
}
