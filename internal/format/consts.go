// Package format houses the wire-level constants of the NBT binary format.
// The goal is to keep byte layout knowledge in one place, independent from
// the tag model, so the decoder and encoder agree on every width.
package format

// Layout of a top-level or compound-entry tag:
//
//	0x00  int8    type id
//	0x01  uint16  name length N      (absent for End)
//	0x03  [N]byte modified-UTF-8 name (absent for End)
//	...   payload (type specific)      (absent for End)
//
// List elements carry only the payload. Array and list counts are int32;
// string and name lengths are uint16.
const (
	// IntArrayElemSize is the width of one IntArray element.
	IntArrayElemSize = 4

	// MaxUint16 bounds every uint16-prefixed byte run (names, strings).
	MaxUint16 = 1<<16 - 1
)

// Magic prefixes of the compression containers NBT files are commonly
// wrapped in. Used by the file layer for detection.
var (
	GzipMagic = []byte{0x1f, 0x8b}
	ZstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	LZ4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ZlibCMF is the only zlib compression-method byte seen in practice
// (deflate, 32 KiB window).
const ZlibCMF = 0x78
