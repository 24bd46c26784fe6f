package mutf8

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// NewEncoder returns a Transformer converting UTF-8 text to modified UTF-8.
// Invalid UTF-8 input is encoded as U+FFFD.
func NewEncoder() transform.Transformer { return encoder{} }

// NewDecoder returns a Transformer converting modified UTF-8 to UTF-8.
func NewDecoder() transform.Transformer { return decoder{} }

type encoder struct{ transform.NopResetter }

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		n := runeLen(r)
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += len(appendRune(dst[nDst:nDst], r))
		nSrc += size
	}
	return nDst, nSrc, nil
}

type decoder struct{ transform.NopResetter }

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := decodeUnit(src[nSrc:])
		if size == 0 {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.RuneError, len(src)-nSrc
		}

		// A high surrogate may be followed by its low half.
		if size == 3 && r >= 0xd800 && r < 0xdc00 {
			rest := src[nSrc+size:]
			if len(rest) < 3 && !atEOF && (len(rest) == 0 || rest[0]&0xf0 == lead3Mark) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if len(rest) >= 3 {
				if r2, n2 := decodeUnit(rest); n2 == 3 {
					if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
						r = pair
						size += n2
					}
				}
			}
		}

		if nDst+utf8.RuneLen(outRune(r)) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], outRune(r))
		nSrc += size
	}
	return nDst, nSrc, nil
}

// outRune maps lone surrogates, which UTF-8 cannot carry, to U+FFFD.
func outRune(r rune) rune {
	if utf16.IsSurrogate(r) {
		return utf8.RuneError
	}
	return r
}
