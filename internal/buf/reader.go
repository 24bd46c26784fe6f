package buf

import (
	"github.com/joshuapare/nbtkit/internal/format"
)

// Reader is a forward-only big-endian cursor over a byte slice.
//
// Reads never panic: a request for more bytes than remain returns an error
// matching types.ErrTruncated and leaves the cursor where it was.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{data: b}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// Read returns the next n bytes. The returned slice aliases the
// underlying buffer; callers that retain it must copy.
func (r *Reader) Read(n int) ([]byte, error) {
	b, ok := Slice(r.data, r.off, n)
	if !ok {
		if n < 0 {
			return nil, corrupt("negative read length")
		}
		return nil, truncated(r.off, n, r.Remaining())
	}
	r.off += n
	return b, nil
}

// ReadCopy is Read followed by a copy into a freshly allocated slice.
func (r *Reader) ReadCopy(n int) ([]byte, error) {
	b, err := r.Read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadInt8 reads one signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.Read(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadInt16 reads a big-endian int16.
func (r *Reader) ReadInt16() (int16, error) {
	b, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return format.ReadI16(b, 0), nil
}

// ReadUint16 reads a big-endian uint16, the width of name and string
// length prefixes.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return format.ReadU16(b, 0), nil
}

// ReadInt32 reads a big-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.Read(4)
	if err != nil {
		return 0, err
	}
	return format.ReadI32(b, 0), nil
}

// CheckCount validates that count elements of at least elemSize bytes
// fit in what remains, without consuming anything.
func (r *Reader) CheckCount(count, elemSize int) error {
	_, err := CheckListBounds(len(r.data), r.off, count, elemSize)
	return err
}
