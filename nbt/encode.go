package nbt

import (
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/nbtkit/internal/buf"
)

const encodeSizeHint = 256

// Encode serializes t (type id, name and payload) using its own name.
func Encode(t Tag) ([]byte, error) {
	if isNil(t) {
		return nil, invalidValue("cannot encode nil tag")
	}
	return EncodeNamed(t, t.Name())
}

// EncodeNamed serializes t under name instead of its own name.
func EncodeNamed(t Tag, name string) ([]byte, error) {
	w := buf.NewWriter(encodeSizeHint)
	if err := AppendTag(w, t, name); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeTo writes the serialized form of t to w.
func EncodeTo(w io.Writer, t Tag) error {
	b, err := Encode(t)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// AppendTag appends the full form of t under name to w.
func AppendTag(w *buf.Writer, t Tag, name string) error {
	if isNil(t) {
		return invalidValue("cannot encode nil tag")
	}
	w.WriteInt8(int8(t.Type()))
	if t.Type() == TagEnd {
		return nil
	}
	if err := w.WriteUTF8String(name); err != nil {
		return fmt.Errorf("nbt: name of %s tag: %w", t.Type(), err)
	}
	return appendPayload(w, t)
}

func appendPayload(w *buf.Writer, t Tag) error {
	switch v := t.(type) {
	case *End:
		return nil
	case *Byte:
		w.Write(v.raw[:])
	case *Short:
		w.Write(v.raw[:])
	case *Int:
		w.Write(v.raw[:])
	case *Long:
		w.Write(v.raw[:])
	case *Float:
		w.Write(v.raw[:])
	case *Double:
		w.Write(v.raw[:])
	case *ByteArray:
		if err := writeCount(w, len(v.data), TagByteArray); err != nil {
			return err
		}
		w.Write(v.data)
	case *String:
		if err := w.WriteRawString(v.raw); err != nil {
			return fmt.Errorf("nbt: string %q: %w", v.name, err)
		}
	case *List:
		w.WriteInt8(int8(v.elem))
		if err := writeCount(w, len(v.items), TagList); err != nil {
			return err
		}
		for _, item := range v.items {
			if err := appendPayload(w, item); err != nil {
				return err
			}
		}
	case *Compound:
		for _, k := range v.keys {
			if err := AppendTag(w, v.m[k], k); err != nil {
				return err
			}
		}
		w.WriteInt8(int8(TagEnd))
	case *IntArray:
		if err := writeCount(w, v.Len(), TagIntArray); err != nil {
			return err
		}
		w.Write(v.data)
	default:
		return invalidValue("cannot encode %T", t)
	}
	return nil
}

func writeCount(w *buf.Writer, n int, t Type) error {
	if n > math.MaxInt32 {
		return &SizeError{Type: t, Got: n, Want: math.MaxInt32}
	}
	w.WriteInt32(int32(n))
	return nil
}
