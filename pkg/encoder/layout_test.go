package encoder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// texts returns the text content of every line
func texts(lines []driver.LineCommands) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, lineText(line.Commands))
	}
	return result
}

func TestTableTwoColumns(t *testing.T) {
	e := newTestEncoder(t, Options{Language: devicetypes.LanguageESCPOS})

	lines, err := e.Table(
		[]TableColumn{{Width: 5}, {Width: 5}},
		[][]Cell{{TextCell("ab"), TextCell("cd")}},
	).Commands()
	require.NoError(t, err)

	want := []driver.LineCommands{{
		Commands: []driver.Item{driver.TextItem("ab   cd   ", "cp437")},
		Height:   1,
	}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}
}

func TestTablePadsShortCells(t *testing.T) {
	e := newTestEncoder(t, Options{})

	lines, err := e.Table(
		[]TableColumn{
			{Width: 4, MarginRight: 1},
			{Width: 4, Align: driver.AlignRight, VerticalAlign: devicetypes.VerticalAlignBottom},
		},
		[][]Cell{
			{TextCell("one two"), TextCell("x")},
			{CellFunc(func(e *Encoder) { e.Line("a").Line("b") }), TextCell("y")},
		},
	).Commands()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"one      ",
		"two     x",
		"a        ",
		"b       y",
	}, texts(lines))
}

func TestTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		columns []TableColumn
		rows    [][]Cell
		want    error
	}{
		{name: "no columns", want: ErrInvalidArgument},
		{name: "zero width", columns: []TableColumn{{Width: 0}}, want: ErrInvalidArgument},
		{name: "negative margin", columns: []TableColumn{{Width: 4, MarginLeft: -1}}, want: ErrInvalidArgument},
		{name: "vertical alignment", columns: []TableColumn{{Width: 4, VerticalAlign: "middle"}}, want: ErrInvalidArgument},
		{name: "alignment", columns: []TableColumn{{Width: 4, Align: "justify"}}, rows: [][]Cell{{TextCell("a")}}, want: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEncoder(t, Options{})

			lines, err := e.Line("before").Table(tt.columns, tt.rows).Line("after").Commands()
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, []string{"before"}, texts(lines))
		})
	}
}

func TestPageOperationsInCells(t *testing.T) {
	operations := map[string]func(e *Encoder){
		"initialize": func(e *Encoder) { e.Initialize() },
		"font":       func(e *Encoder) { e.Font("B") },
		"barcode":    func(e *Encoder) { e.Barcode("123456", "code39", BarcodeOptions{}) },
		"qrcode":     func(e *Encoder) { e.QRCode("test", QRCodeOptions{}) },
		"pdf417":     func(e *Encoder) { e.PDF417("test", PDF417Options{}) },
		"image":      func(e *Encoder) { e.Image(RGBA{Width: 8, Height: 8, Pix: make([]byte, 256)}, 8, 8, "", 0) },
		"cut":        func(e *Encoder) { e.Cut() },
		"pulse":      func(e *Encoder) { e.Pulse(PulseOptions{}) },
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			e := newTestEncoder(t, Options{})

			_, err := e.Table([]TableColumn{{Width: 10}}, [][]Cell{{CellFunc(operation)}}).Commands()
			assert.ErrorIs(t, err, ErrEmbedded)

			_, err = e.Box(BoxOptions{Width: 10}, CellFunc(operation)).Commands()
			assert.ErrorIs(t, err, ErrEmbedded)
		})
	}
}

func TestRule(t *testing.T) {
	e := newTestEncoder(t, Options{Columns: 32})

	got := encode(t, e.Rule(RuleOptions{}))
	want := append(repeat(0xC4, 32), 10, 13)
	assert.Equal(t, want, got)

	got = encode(t, e.Text("a").Rule(RuleOptions{Style: devicetypes.RuleStyleDouble, Width: 10}))
	want = append([]byte{97, 10, 13}, append(repeat(0xCD, 10), 10, 13)...)
	assert.Equal(t, want, got)

	_, err := e.Rule(RuleOptions{Style: "dotted"}).Commands()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func repeat(b byte, n int) []byte {
	result := make([]byte, n)
	for i := range result {
		result[i] = b
	}
	return result
}

func TestBox(t *testing.T) {
	e := newTestEncoder(t, Options{Columns: 32})

	lines, err := e.Box(BoxOptions{Width: 6}, TextCell("ab")).Commands()
	require.NoError(t, err)
	assert.Equal(t, []string{"┌────┐", "│ab  │", "└────┘"}, texts(lines))

	got := encode(t, e.Box(BoxOptions{Width: 4}, TextCell("a")))
	want := []byte{
		0xDA, 0xC4, 0xC4, 0xBF, 10, 13,
		0xB3, 'a', ' ', 0xB3, 10, 13,
		0xC0, 0xC4, 0xC4, 0xD9, 10, 13,
	}
	assert.Equal(t, want, got)
}

func TestBoxStyles(t *testing.T) {
	e := newTestEncoder(t, Options{Columns: 32})

	lines, err := e.Box(BoxOptions{
		Style:        devicetypes.BoxStyleDouble,
		Width:        8,
		MarginLeft:   2,
		PaddingLeft:  1,
		PaddingRight: 1,
		Align:        driver.AlignCenter,
	}, TextCell("ab")).Commands()
	require.NoError(t, err)
	assert.Equal(t, []string{"  ╔══════╗", "  ║  ab  ║", "  ╚══════╝"}, texts(lines))

	lines, err = e.Box(BoxOptions{Style: devicetypes.BoxStyleNone, Width: 4}, TextCell("abcdef")).Commands()
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "ef  "}, texts(lines))
}

func TestBoxFollowsLineHeight(t *testing.T) {
	e := newTestEncoder(t, Options{})

	lines, err := e.Box(BoxOptions{Width: 6}, CellFunc(func(e *Encoder) {
		e.Height(2).Text("ab")
	})).Commands()
	require.NoError(t, err)

	require.Len(t, lines, 3)
	assert.Equal(t, 1, lines[0].Height)
	assert.Equal(t, 2, lines[1].Height)
	assert.Equal(t, 1, lines[2].Height)
}

func TestBoxErrors(t *testing.T) {
	e := newTestEncoder(t, Options{})

	_, err := e.Box(BoxOptions{Width: 40, MarginLeft: 4}, TextCell("x")).Commands()
	assert.ErrorIs(t, err, ErrBoxTooWide)

	_, err = e.Box(BoxOptions{Style: "rounded"}, TextCell("x")).Commands()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.Box(BoxOptions{Width: 4, PaddingLeft: 2}, TextCell("x")).Commands()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
