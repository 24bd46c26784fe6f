// Package mutf8 implements the modified UTF-8 encoding used by NBT for tag
// names and String payloads.
//
// Code points below U+0080 take one byte, below U+0800 two bytes, and
// everything else three bytes. There is no four-byte form: code points
// above the Basic Multilingual Plane are written as their UTF-16 surrogate
// halves, three bytes each. Decoding rejoins a well-formed surrogate pair
// into a single rune; lone surrogates and malformed input decode to
// U+FFFD.
//
// NUL is written as a single 0x00 byte. The two-byte overlong form
// 0xC0 0x80 emitted by Java writers is accepted on decode.
package mutf8

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	oneByteMax = 0x7f
	twoByteMax = 0x7ff

	surrSelf = 0x10000

	contMask  = 0x3f
	contMark  = 0x80
	lead2Mark = 0xc0
	lead3Mark = 0xe0
)

// Encode returns the modified UTF-8 encoding of s.
func Encode(s string) []byte {
	if isASCII(s) {
		return []byte(s)
	}
	out, _, err := transform.Bytes(NewEncoder(), []byte(s))
	if err != nil {
		// encoder never reports errors on complete input
		return AppendEncode(nil, s)
	}
	return out
}

// Decode returns the string encoded by b.
func Decode(b []byte) string {
	if isASCIIBytes(b) {
		return string(b)
	}
	out, _, err := transform.Bytes(NewDecoder(), b)
	if err != nil {
		return decodeSlow(b)
	}
	return string(out)
}

// EncodedLen returns len(Encode(s)) without allocating.
func EncodedLen(s string) int {
	n := 0
	for _, r := range s {
		n += runeLen(r)
	}
	return n
}

// AppendEncode appends the modified UTF-8 encoding of s to dst.
func AppendEncode(dst []byte, s string) []byte {
	for _, r := range s {
		dst = appendRune(dst, r)
	}
	return dst
}

func runeLen(r rune) int {
	switch {
	case r <= oneByteMax:
		return 1
	case r <= twoByteMax:
		return 2
	case r < surrSelf:
		return 3
	default:
		return 6
	}
}

func appendRune(dst []byte, r rune) []byte {
	switch {
	case r <= oneByteMax:
		return append(dst, byte(r))
	case r <= twoByteMax:
		return append(dst, lead2Mark|byte(r>>6), contMark|byte(r)&contMask)
	case r < surrSelf:
		return append3(dst, r)
	default:
		hi, lo := utf16.EncodeRune(r)
		return append3(append3(dst, hi), lo)
	}
}

func append3(dst []byte, r rune) []byte {
	return append(dst,
		lead3Mark|byte(r>>12),
		contMark|byte(r>>6)&contMask,
		contMark|byte(r)&contMask,
	)
}

// decodeUnit decodes one 1-3 byte unit from b. size is 0 when b holds an
// incomplete unit.
func decodeUnit(b []byte) (r rune, size int) {
	c := b[0]
	switch {
	case c <= oneByteMax:
		return rune(c), 1
	case c&0xe0 == lead2Mark:
		if len(b) < 2 {
			return 0, 0
		}
		if b[1]&0xc0 != contMark {
			return utf8.RuneError, 1
		}
		return rune(c&0x1f)<<6 | rune(b[1]&contMask), 2
	case c&0xf0 == lead3Mark:
		if len(b) < 3 {
			return 0, 0
		}
		if b[1]&0xc0 != contMark || b[2]&0xc0 != contMark {
			return utf8.RuneError, 1
		}
		return rune(c&0x0f)<<12 | rune(b[1]&contMask)<<6 | rune(b[2]&contMask), 3
	default:
		return utf8.RuneError, 1
	}
}

// decodeSlow is the non-streaming fallback used when the transformer
// cannot be applied.
func decodeSlow(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		r, n := decodeUnit(b[i:])
		if n == 0 {
			sb.WriteRune(utf8.RuneError)
			break
		}
		i += n
		if utf16.IsSurrogate(r) && r < 0xdc00 && i < len(b) {
			if r2, n2 := decodeUnit(b[i:]); n2 == 3 {
				if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
					r = pair
					i += n2
				}
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > oneByteMax {
			return false
		}
	}
	return true
}

func isASCIIBytes(b []byte) bool {
	for _, c := range b {
		if c > oneByteMax {
			return false
		}
	}
	return true
}
