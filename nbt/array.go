package nbt

import (
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/internal/mutf8"
)

// ByteArray holds a sequence of signed bytes.
type ByteArray struct {
	named
	data []byte
}

// NewByteArray returns a ByteArray holding a copy of data.
func NewByteArray(name string, data []byte) *ByteArray {
	return &ByteArray{named: named{name: name}, data: append([]byte(nil), data...)}
}

// Type implements Tag.
func (*ByteArray) Type() Type { return TagByteArray }

// Len returns the number of elements.
func (t *ByteArray) Len() int { return len(t.data) }

// Get returns element i.
func (t *ByteArray) Get(i int) (int8, error) {
	if i < 0 || i >= len(t.data) {
		return 0, indexError(i, len(t.data))
	}
	return int8(t.data[i]), nil
}

// Set replaces element i.
func (t *ByteArray) Set(i int, v int8) error {
	if i < 0 || i >= len(t.data) {
		return indexError(i, len(t.data))
	}
	t.data[i] = byte(v)
	return nil
}

// Values returns a snapshot of the elements.
func (t *ByteArray) Values() []int8 {
	out := make([]int8, len(t.data))
	for i, b := range t.data {
		out[i] = int8(b)
	}
	return out
}

// Bytes returns a copy of the raw payload.
func (t *ByteArray) Bytes() []byte { return append([]byte(nil), t.data...) }

// SetValue replaces the contents. Accepted inputs: nil (empty), a raw
// []byte payload, a numeric slice (each element truncated to 8 bits), or a
// string (stored as its modified UTF-8 bytes).
func (t *ByteArray) SetValue(v any) error {
	switch x := v.(type) {
	case nil:
		t.data = nil
	case []byte:
		t.data = append([]byte(nil), x...)
	case string:
		t.data = mutf8.Encode(x)
	default:
		vals, ok := widen(v)
		if !ok {
			return invalidValue("cannot assign %T to %s", v, TagByteArray)
		}
		data := make([]byte, len(vals))
		for i, n := range vals {
			data[i] = byte(n)
		}
		t.data = data
	}
	return nil
}

func (t *ByteArray) String() string { return describe(TagByteArray, len(t.data)) }

// Clone implements Tag.
func (t *ByteArray) Clone() Tag {
	return &ByteArray{named: t.named, data: append([]byte(nil), t.data...)}
}

// IntArray holds a sequence of 32-bit signed integers, stored as their
// big-endian payload.
type IntArray struct {
	named
	data []byte
}

// NewIntArray returns an IntArray holding values.
func NewIntArray(name string, values []int32) *IntArray {
	t := &IntArray{named: named{name: name}, data: make([]byte, len(values)*format.IntArrayElemSize)}
	for i, v := range values {
		format.PutI32(t.data, i*format.IntArrayElemSize, v)
	}
	return t
}

// Type implements Tag.
func (*IntArray) Type() Type { return TagIntArray }

// Len returns the number of elements.
func (t *IntArray) Len() int { return len(t.data) / format.IntArrayElemSize }

// Get returns element i.
func (t *IntArray) Get(i int) (int32, error) {
	if i < 0 || i >= t.Len() {
		return 0, indexError(i, t.Len())
	}
	return format.ReadI32(t.data, i*format.IntArrayElemSize), nil
}

// Set replaces element i.
func (t *IntArray) Set(i int, v int32) error {
	if i < 0 || i >= t.Len() {
		return indexError(i, t.Len())
	}
	format.PutI32(t.data, i*format.IntArrayElemSize, v)
	return nil
}

// Values returns a snapshot of the elements.
func (t *IntArray) Values() []int32 {
	out := make([]int32, t.Len())
	for i := range out {
		out[i] = format.ReadI32(t.data, i*format.IntArrayElemSize)
	}
	return out
}

// Bytes returns a copy of the raw payload.
func (t *IntArray) Bytes() []byte { return append([]byte(nil), t.data...) }

// SetValue replaces the contents. Accepted inputs: nil (empty), a raw
// []byte payload whose length is a multiple of 4, a numeric slice (each
// element truncated to 32 bits), or a string (one element per modified
// UTF-8 byte).
func (t *IntArray) SetValue(v any) error {
	switch x := v.(type) {
	case nil:
		t.data = nil
	case []byte:
		if len(x)%format.IntArrayElemSize != 0 {
			return &SizeError{
				Type: TagIntArray,
				Got:  len(x),
				Want: len(x) - len(x)%format.IntArrayElemSize,
			}
		}
		t.data = append([]byte(nil), x...)
	case string:
		enc := mutf8.Encode(x)
		data := make([]byte, len(enc)*format.IntArrayElemSize)
		for i, b := range enc {
			format.PutI32(data, i*format.IntArrayElemSize, int32(b))
		}
		t.data = data
	default:
		vals, ok := widen(v)
		if !ok {
			return invalidValue("cannot assign %T to %s", v, TagIntArray)
		}
		data := make([]byte, len(vals)*format.IntArrayElemSize)
		for i, n := range vals {
			format.PutI32(data, i*format.IntArrayElemSize, int32(n))
		}
		t.data = data
	}
	return nil
}

func (t *IntArray) String() string { return describe(TagIntArray, t.Len()) }

// Clone implements Tag.
func (t *IntArray) Clone() Tag {
	return &IntArray{named: t.named, data: append([]byte(nil), t.data...)}
}
