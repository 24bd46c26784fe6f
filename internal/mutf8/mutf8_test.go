package mutf8

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestEncode_ByteForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"ascii", "abc", []byte("abc")},
		{"nul", "\x00", []byte{0x00}},
		{"two byte", "¢", []byte{0xc2, 0xa2}},
		{"three byte", "€", []byte{0xe2, 0x82, 0xac}},
		{"mixed", "a¢€", []byte{0x61, 0xc2, 0xa2, 0xe2, 0x82, 0xac}},
		{"supplementary as surrogates", "\U0001F600", []byte{0xed, 0xa0, 0xbd, 0xed, 0xb8, 0x80}},
		{"bmp max", "\uffff", []byte{0xef, 0xbf, 0xbf}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.in)
			assert.Equal(t, tt.want, []byte(got))
			assert.Equal(t, len(tt.want), EncodedLen(tt.in))
			assert.Equal(t, tt.want, AppendEncode([]byte{}, tt.in))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"hello",
		"a¢€",
		"Grüße, мир, 世界",
		"emoji \U0001F600 and \U0001F680 inside",
		"tab\tnewline\r\nnul\x00end",
	} {
		assert.Equal(t, s, Decode(Encode(s)), "%q", s)
	}
}

func TestDecode_JavaNulForm(t *testing.T) {
	assert.Equal(t, "a\x00b", Decode([]byte{'a', 0xc0, 0x80, 'b'}))
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"lone high surrogate", []byte{0xed, 0xa0, 0xbd, 'x'}, "�x"},
		{"lone low surrogate", []byte{0xed, 0xb8, 0x80}, "�"},
		{"stray continuation", []byte{0x80, 'a'}, "�a"},
		{"truncated two byte", []byte{'a', 0xc2}, "a�"},
		{"truncated three byte", []byte{0xe2, 0x82}, "�"},
		{"four byte lead", []byte{0xf0, 'a'}, "�a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
			assert.Equal(t, tt.want, decodeSlow(tt.in))
		})
	}
}

func TestTransformers_Streaming(t *testing.T) {
	s := strings.Repeat("a¢€\U0001F600", 500)

	// Feed the encoder one byte at a time to exercise ErrShortSrc handling.
	encR := transform.NewReader(iotest.OneByteReader(strings.NewReader(s)), NewEncoder())
	encoded, err := io.ReadAll(encR)
	require.NoError(t, err)
	require.Equal(t, Encode(s), encoded)

	decR := transform.NewReader(iotest.OneByteReader(bytes.NewReader(encoded)), NewDecoder())
	decoded, err := io.ReadAll(decR)
	require.NoError(t, err)
	require.Equal(t, s, string(decoded))
}

func TestTransformers_SmallDst(t *testing.T) {
	enc := NewEncoder()
	dst := make([]byte, 2)
	nDst, nSrc, err := enc.Transform(dst, []byte("€"), true)
	assert.ErrorIs(t, err, transform.ErrShortDst)
	assert.Equal(t, 0, nDst)
	assert.Equal(t, 0, nSrc)
}
