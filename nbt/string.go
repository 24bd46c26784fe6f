package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/internal/mutf8"
)

// String holds text. The payload is kept in its modified UTF-8 wire form
// and decoded on demand.
type String struct {
	named
	raw []byte
}

// NewString returns a String tag.
func NewString(name, v string) *String {
	return &String{named: named{name: name}, raw: mutf8.Encode(v)}
}

// Type implements Tag.
func (*String) Type() Type { return TagString }

// Value returns the decoded text.
func (t *String) Value() string { return mutf8.Decode(t.raw) }

// Set replaces the text. An over-long value is reported when encoding.
func (t *String) Set(v string) { t.raw = mutf8.Encode(v) }

// SetValue replaces the contents from a string, a raw modified UTF-8
// payload, or any fmt.Stringer (including other tags).
// Payloads longer than 65535 bytes fail with a *SizeError.
func (t *String) SetValue(v any) error {
	var raw []byte
	switch x := v.(type) {
	case string:
		raw = mutf8.Encode(x)
	case []byte:
		raw = append([]byte(nil), x...)
	case fmt.Stringer:
		raw = mutf8.Encode(x.String())
	default:
		return invalidValue("cannot assign %T to %s", v, TagString)
	}
	if len(raw) > format.MaxUint16 {
		return &SizeError{Type: TagString, Got: len(raw), Want: format.MaxUint16}
	}
	t.raw = raw
	return nil
}

// Bytes returns a copy of the raw payload.
func (t *String) Bytes() []byte { return append([]byte(nil), t.raw...) }

// Len returns the payload length in bytes.
func (t *String) Len() int { return len(t.raw) }

func (t *String) String() string { return t.Value() }

// Clone implements Tag.
func (t *String) Clone() Tag {
	return &String{named: t.named, raw: append([]byte(nil), t.raw...)}
}
