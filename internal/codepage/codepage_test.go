package codepage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receipt-encoder/pkg/driver"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		codepage string
		want     []byte
	}{
		{"ascii in cp437", "hello", "cp437", []byte("hello")},
		{"accent in cp437", "héllo", "cp437", []byte{104, 130, 108, 108, 111}},
		{"accent in windows1252", "héllo", "windows1252", []byte{104, 233, 108, 108, 111}},
		{"accent in katakana", "héllo", "epson/katakana", []byte{104, 63, 108, 108, 111}},
		{"half-width katakana", "ｱｲｳ", "epson/katakana", []byte{0xb1, 0xb2, 0xb3}},
		{"full-width katakana is narrowed", "ア", "star/katakana", []byte{0xb1}},
		{"star standard is ascii", "héllo", "star/standard", []byte{104, 63, 108, 108, 111}},
		{"thai", "กำลังทดสอบ", "star/cp874", []byte{161, 211, 197, 209, 167, 183, 180, 202, 205, 186}},
		{"box drawing in cp437", "─═", "cp437", []byte{0xc4, 0xcd}},
		{"names are case insensitive", "é", "CP437", []byte{130}},
	}

	enc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Encode(tt.text, tt.codepage)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeUnknownCodepage(t *testing.T) {
	_, err := New().Encode("hello", "cp9999")
	assert.ErrorIs(t, err, ErrUnknownCodepage)
}

func TestSupports(t *testing.T) {
	enc := New()
	assert.True(t, enc.Supports("cp437"))
	assert.True(t, enc.Supports("windows1258"))
	assert.True(t, enc.Supports("epson/iso8859-2"))
	assert.False(t, enc.Supports("cp851"))
	assert.False(t, enc.Supports("thai42"))
	assert.Contains(t, enc.Codepages(), "star/cp874")
}

func TestAutoEncode(t *testing.T) {
	candidates := []string{
		"cp437", "epson/katakana", "cp850", "cp860", "cp863", "cp865",
		"cp851", "cp853", "cp857", "cp737", "iso8859-7", "windows1252",
		"cp866", "cp852",
	}

	got := New().AutoEncode("héψжł", candidates)
	want := []driver.CodepageFragment{
		{Codepage: "cp437", Bytes: []byte{104, 130}},
		{Codepage: "iso8859-7", Bytes: []byte{248}},
		{Codepage: "cp866", Bytes: []byte{166}},
		{Codepage: "cp852", Bytes: []byte{136}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AutoEncode mismatch (-want +got):\n%s", diff)
	}
}

func TestAutoEncodeKeepsCurrentCodepage(t *testing.T) {
	got := New().AutoEncode("hello world", []string{"cp437", "windows1252"})
	require.Len(t, got, 1)
	assert.Equal(t, "cp437", got[0].Codepage)
	assert.Equal(t, []byte("hello world"), got[0].Bytes)
}

func TestAutoEncodeUnencodableCharacters(t *testing.T) {
	got := New().AutoEncode("a☃b", []string{"cp437"})
	require.Len(t, got, 1)
	assert.Equal(t, []byte("a?b"), got[0].Bytes)

	got = New().AutoEncode("☃", []string{"cp851"})
	require.Len(t, got, 1)
	assert.Equal(t, fallbackCodepage, got[0].Codepage)
	assert.Equal(t, []byte("?"), got[0].Bytes)
}

func TestAutoEncodeEmpty(t *testing.T) {
	assert.Empty(t, New().AutoEncode("", []string{"cp437"}))
}
