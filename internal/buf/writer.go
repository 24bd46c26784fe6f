package buf

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/internal/mutf8"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Writer appends big-endian values to a growable buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with capacity for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the written bytes. The slice aliases the Writer's buffer
// until the next write or Reset.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written.
func (w *Writer) Len() int { return len(w.buf) }

// Reset discards written bytes, keeping the allocation.
func (w *Writer) Reset() { w.buf = w.buf[:0] }

// Write appends p verbatim.
func (w *Writer) Write(p []byte) {
	w.buf = append(w.buf, p...)
}

// WriteInt8 appends one signed byte.
func (w *Writer) WriteInt8(v int8) {
	w.buf = append(w.buf, byte(v))
}

// WriteInt16 appends a big-endian int16.
func (w *Writer) WriteInt16(v int16) {
	w.buf = append(w.buf, 0, 0)
	format.PutI16(w.buf, len(w.buf)-2, v)
}

// WriteUint16 appends a big-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	w.buf = append(w.buf, 0, 0)
	format.PutU16(w.buf, len(w.buf)-2, v)
}

// WriteInt32 appends a big-endian int32.
func (w *Writer) WriteInt32(v int32) {
	w.buf = append(w.buf, 0, 0, 0, 0)
	format.PutI32(w.buf, len(w.buf)-4, v)
}

// WriteInt64 appends a big-endian int64.
func (w *Writer) WriteInt64(v int64) {
	w.buf = append(w.buf, 0, 0, 0, 0, 0, 0, 0, 0)
	format.PutI64(w.buf, len(w.buf)-8, v)
}

// WriteFloat32 appends a big-endian IEEE-754 float32.
func (w *Writer) WriteFloat32(v float32) {
	w.buf = append(w.buf, 0, 0, 0, 0)
	format.PutF32(w.buf, len(w.buf)-4, v)
}

// WriteFloat64 appends a big-endian IEEE-754 float64.
func (w *Writer) WriteFloat64(v float64) {
	w.buf = append(w.buf, 0, 0, 0, 0, 0, 0, 0, 0)
	format.PutF64(w.buf, len(w.buf)-8, v)
}

// WriteUTF8String appends s as a uint16 length header followed by its
// modified UTF-8 bytes. Strings whose encoding exceeds 65535 bytes are
// rejected and nothing is written.
func (w *Writer) WriteUTF8String(s string) error {
	n := mutf8.EncodedLen(s)
	if n > format.MaxUint16 {
		return &types.Error{
			Kind: types.ErrKindSize,
			Msg:  fmt.Sprintf("encoded string is %d bytes, limit %d", n, format.MaxUint16),
			Err:  format.ErrTooLong,
		}
	}
	w.WriteUint16(uint16(n))
	w.buf = mutf8.AppendEncode(w.buf, s)
	return nil
}

// WriteRawString appends an already encoded string payload with its
// uint16 length header.
func (w *Writer) WriteRawString(b []byte) error {
	if len(b) > format.MaxUint16 {
		return &types.Error{
			Kind: types.ErrKindSize,
			Msg:  fmt.Sprintf("string payload is %d bytes, limit %d", len(b), format.MaxUint16),
			Err:  format.ErrTooLong,
		}
	}
	w.WriteUint16(uint16(len(b)))
	w.Write(b)
	return nil
}
