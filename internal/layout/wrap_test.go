package layout

import (
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		options WrapOptions
		want    []string
	}{
		{
			name:    "fits on one line",
			value:   "hello",
			options: WrapOptions{Columns: 42},
			want:    []string{"hello"},
		},
		{
			name:    "breaks between words",
			value:   "hello world",
			options: WrapOptions{Columns: 8},
			want:    []string{"hello", "world"},
		},
		{
			name:    "keeps blank source lines",
			value:   "a\n\nb",
			options: WrapOptions{Columns: 10},
			want:    []string{"a", "", "b"},
		},
		{
			name:    "accepts crlf",
			value:   "a\r\nb",
			options: WrapOptions{Columns: 10},
			want:    []string{"a", "b"},
		},
		{
			name:    "splits overlong word with early break",
			value:   "abcdefghijklmnopqrstuvwxyz",
			options: WrapOptions{Columns: 10},
			want:    []string{"abcdefghij", "klmnopqrst", "uvwxyz"},
		},
		{
			name:    "overlong word starts on next line when little room remains",
			value:   "abc abcdefghijkl",
			options: WrapOptions{Columns: 10},
			want:    []string{"abc", "abcdefghij", "kl"},
		},
		{
			name:    "double width characters",
			value:   "hello world",
			options: WrapOptions{Columns: 10, Width: 2},
			want:    []string{"hello", "world"},
		},
		{
			name:    "indent pushes word to next line",
			value:   "world",
			options: WrapOptions{Columns: 10, Indent: 8},
			want:    []string{"", "world"},
		},
		{
			name:    "breaks after hyphen",
			value:   "well-known fact",
			options: WrapOptions{Columns: 7},
			want:    []string{"well-", "known", "fact"},
		},
		{
			name:    "keeps trailing space on last line",
			value:   "hi ",
			options: WrapOptions{Columns: 10},
			want:    []string{"hi "},
		},
		{
			name:    "counts runes not bytes",
			value:   "héllo wörld",
			options: WrapOptions{Columns: 11},
			want:    []string{"héllo wörld"},
		},
		{
			name:    "degenerates to single characters",
			value:   "abc",
			options: WrapOptions{Columns: 1, Width: 2},
			want:    []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.value, tt.options)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q) mismatch (-want +got):\n%s", tt.value, diff)
			}
		})
	}
}

func TestWrapBreaksAtUnicodeSpaces(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "no-break space", value: "aaaa\u00a0bbbb", want: []string{"aaaa", "bbbb"}},
		{name: "ideographic space", value: "aaaa\u3000bbbb", want: []string{"aaaa", "bbbb"}},
		{name: "narrow no-break space", value: "aaaa\u202fbbbb", want: []string{"aaaa", "bbbb"}},
		{name: "byte order mark", value: "aaaa\ufeffbbbb", want: []string{"aaaa", "bbbb"}},
		{name: "fits with no-break space", value: "ab\u00a0cd", want: []string{"ab\u00a0cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.value, WrapOptions{Columns: 6})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q) mismatch (-want +got):\n%s", tt.value, diff)
			}
		})
	}
}

func TestWrapKeepsNonWhitespace(t *testing.T) {
	inputs := []string{
		"The quick brown fox jumps over the lazy dog",
		"supercalifragilisticexpialidocious is a long word indeed",
		"line one\nline two\n\nline four with-some-hyphenated-words",
		"  leading and trailing  ",
	}

	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}

	for _, input := range inputs {
		for _, columns := range []int{5, 10, 32, 42} {
			for _, width := range []int{1, 2, 3} {
				lines := Wrap(input, WrapOptions{Columns: columns, Width: width})
				got := strip(strings.Join(lines, ""))
				if got != strip(input) {
					t.Errorf("Wrap(%q, %d, %d) lost characters: %q", input, columns, width, got)
				}
			}
		}
	}
}
