package nbt

import (
	"math"

	"github.com/joshuapare/nbtkit/internal/format"
)

// Value ranges of the integer kinds. The string forms of the Long bounds
// are provided for callers that pass values as text.
const (
	MinByte  = math.MinInt8
	MaxByte  = math.MaxInt8
	MinShort = math.MinInt16
	MaxShort = math.MaxInt16
	MinInt   = math.MinInt32
	MaxInt   = math.MaxInt32
	MinLong  = math.MinInt64
	MaxLong  = math.MaxInt64

	MinLongString = "-9223372036854775808"
	MaxLongString = "9223372036854775807"
)

// Byte holds an 8-bit signed integer.
//
// Like every scalar kind it stores its value as a fixed-width big-endian
// payload. SetValue accepts Go integers and floats, strings ("0x" hex,
// leading-zero octal, decimal), a raw payload of exactly the tag's width,
// or any Number tag; out-of-range values wrap in two's complement.
type Byte struct {
	named
	raw [1]byte
}

// NewByte returns a Byte tag.
func NewByte(name string, v int8) *Byte {
	t := &Byte{named: named{name: name}}
	t.Set(v)
	return t
}

// Type implements Tag.
func (*Byte) Type() Type { return TagByte }

// Value returns the stored value.
func (t *Byte) Value() int8 { return int8(t.raw[0]) }

// Set stores v.
func (t *Byte) Set(v int8) { t.raw[0] = byte(v) }

// SetValue coerces v into the tag.
func (t *Byte) SetValue(v any) error {
	if b, ok := v.([]byte); ok {
		return rawPayload(t.raw[:], b, TagByte)
	}
	bits, err := intBits(v, TagByte)
	if err != nil {
		return err
	}
	t.Set(int8(bits))
	return nil
}

// SetString parses s with prefix detection, falling back to base.
func (t *Byte) SetString(s string, base int) error {
	bits, err := parseInteger(s, base)
	if err != nil {
		return err
	}
	t.Set(int8(bits))
	return nil
}

// Int64 implements Number.
func (t *Byte) Int64() int64 { return int64(t.Value()) }

// Float64 implements Number.
func (t *Byte) Float64() float64 { return float64(t.Value()) }

// Bytes returns a copy of the raw payload.
func (t *Byte) Bytes() []byte { return append([]byte(nil), t.raw[:]...) }

// Format returns the value in the given base (2..36).
func (t *Byte) Format(base int) string { return formatBase(t.Int64(), base) }

func (t *Byte) String() string { return t.Format(10) }

// Clone implements Tag.
func (t *Byte) Clone() Tag {
	c := *t
	return &c
}

// Short holds a 16-bit signed integer.
type Short struct {
	named
	raw [2]byte
}

// NewShort returns a Short tag.
func NewShort(name string, v int16) *Short {
	t := &Short{named: named{name: name}}
	t.Set(v)
	return t
}

// Type implements Tag.
func (*Short) Type() Type { return TagShort }

// Value returns the stored value.
func (t *Short) Value() int16 { return format.ReadI16(t.raw[:], 0) }

// Set stores v.
func (t *Short) Set(v int16) { format.PutI16(t.raw[:], 0, v) }

// SetValue coerces v into the tag.
func (t *Short) SetValue(v any) error {
	if b, ok := v.([]byte); ok {
		return rawPayload(t.raw[:], b, TagShort)
	}
	bits, err := intBits(v, TagShort)
	if err != nil {
		return err
	}
	t.Set(int16(bits))
	return nil
}

// SetString parses s with prefix detection, falling back to base.
func (t *Short) SetString(s string, base int) error {
	bits, err := parseInteger(s, base)
	if err != nil {
		return err
	}
	t.Set(int16(bits))
	return nil
}

// Int64 implements Number.
func (t *Short) Int64() int64 { return int64(t.Value()) }

// Float64 implements Number.
func (t *Short) Float64() float64 { return float64(t.Value()) }

// Bytes returns a copy of the raw payload.
func (t *Short) Bytes() []byte { return append([]byte(nil), t.raw[:]...) }

// Format returns the value in the given base (2..36).
func (t *Short) Format(base int) string { return formatBase(t.Int64(), base) }

func (t *Short) String() string { return t.Format(10) }

// Clone implements Tag.
func (t *Short) Clone() Tag {
	c := *t
	return &c
}

// Int holds a 32-bit signed integer.
type Int struct {
	named
	raw [4]byte
}

// NewInt returns an Int tag.
func NewInt(name string, v int32) *Int {
	t := &Int{named: named{name: name}}
	t.Set(v)
	return t
}

// Type implements Tag.
func (*Int) Type() Type { return TagInt }

// Value returns the stored value.
func (t *Int) Value() int32 { return format.ReadI32(t.raw[:], 0) }

// Set stores v.
func (t *Int) Set(v int32) { format.PutI32(t.raw[:], 0, v) }

// SetValue coerces v into the tag.
func (t *Int) SetValue(v any) error {
	if b, ok := v.([]byte); ok {
		return rawPayload(t.raw[:], b, TagInt)
	}
	bits, err := intBits(v, TagInt)
	if err != nil {
		return err
	}
	t.Set(int32(bits))
	return nil
}

// SetString parses s with prefix detection, falling back to base.
func (t *Int) SetString(s string, base int) error {
	bits, err := parseInteger(s, base)
	if err != nil {
		return err
	}
	t.Set(int32(bits))
	return nil
}

// Int64 implements Number.
func (t *Int) Int64() int64 { return int64(t.Value()) }

// Float64 implements Number.
func (t *Int) Float64() float64 { return float64(t.Value()) }

// Bytes returns a copy of the raw payload.
func (t *Int) Bytes() []byte { return append([]byte(nil), t.raw[:]...) }

// Format returns the value in the given base (2..36).
func (t *Int) Format(base int) string { return formatBase(t.Int64(), base) }

func (t *Int) String() string { return t.Format(10) }

// Clone implements Tag.
func (t *Int) Clone() Tag {
	c := *t
	return &c
}

// Long holds a 64-bit signed integer. String input covers the full
// 64-bit range exactly; it is never routed through float64.
type Long struct {
	named
	raw [8]byte
}

// NewLong returns a Long tag.
func NewLong(name string, v int64) *Long {
	t := &Long{named: named{name: name}}
	t.Set(v)
	return t
}

// Type implements Tag.
func (*Long) Type() Type { return TagLong }

// Value returns the stored value.
func (t *Long) Value() int64 { return format.ReadI64(t.raw[:], 0) }

// Set stores v.
func (t *Long) Set(v int64) { format.PutI64(t.raw[:], 0, v) }

// High returns the upper 32 bits.
func (t *Long) High() int32 { return format.ReadI32(t.raw[:], 0) }

// Low returns the lower 32 bits.
func (t *Long) Low() int32 { return format.ReadI32(t.raw[:], 4) }

// SetHigh replaces the upper 32 bits.
func (t *Long) SetHigh(v int32) { format.PutI32(t.raw[:], 0, v) }

// SetLow replaces the lower 32 bits.
func (t *Long) SetLow(v int32) { format.PutI32(t.raw[:], 4, v) }

// SetValue coerces v into the tag.
func (t *Long) SetValue(v any) error {
	if b, ok := v.([]byte); ok {
		return rawPayload(t.raw[:], b, TagLong)
	}
	bits, err := intBits(v, TagLong)
	if err != nil {
		return err
	}
	t.Set(int64(bits))
	return nil
}

// SetString parses s with prefix detection, falling back to base.
func (t *Long) SetString(s string, base int) error {
	bits, err := parseInteger(s, base)
	if err != nil {
		return err
	}
	t.Set(int64(bits))
	return nil
}

// Int64 implements Number.
func (t *Long) Int64() int64 { return t.Value() }

// Float64 implements Number. Values beyond 2^53 lose precision.
func (t *Long) Float64() float64 { return float64(t.Value()) }

// Bytes returns a copy of the raw payload.
func (t *Long) Bytes() []byte { return append([]byte(nil), t.raw[:]...) }

// Format returns the value in the given base (2..36).
func (t *Long) Format(base int) string { return formatBase(t.Value(), base) }

func (t *Long) String() string { return t.Format(10) }

// Clone implements Tag.
func (t *Long) Clone() Tag {
	c := *t
	return &c
}

// Float holds an IEEE-754 single-precision value.
type Float struct {
	named
	raw [4]byte
}

// NewFloat returns a Float tag.
func NewFloat(name string, v float32) *Float {
	t := &Float{named: named{name: name}}
	t.Set(v)
	return t
}

// Type implements Tag.
func (*Float) Type() Type { return TagFloat }

// Value returns the stored value.
func (t *Float) Value() float32 { return format.ReadF32(t.raw[:], 0) }

// Set stores v.
func (t *Float) Set(v float32) { format.PutF32(t.raw[:], 0, v) }

// SetValue coerces v into the tag, rounding to single precision.
func (t *Float) SetValue(v any) error {
	if b, ok := v.([]byte); ok {
		return rawPayload(t.raw[:], b, TagFloat)
	}
	f, err := floatValue(v, TagFloat, 32)
	if err != nil {
		return err
	}
	t.Set(float32(f))
	return nil
}

// Int64 implements Number.
func (t *Float) Int64() int64 { return int64(wrapFloat(float64(t.Value()))) }

// Float64 implements Number.
func (t *Float) Float64() float64 { return float64(t.Value()) }

// Bytes returns a copy of the raw payload.
func (t *Float) Bytes() []byte { return append([]byte(nil), t.raw[:]...) }

func (t *Float) String() string { return formatFloat(t.Float64(), 32) }

// Clone implements Tag.
func (t *Float) Clone() Tag {
	c := *t
	return &c
}

// Double holds an IEEE-754 double-precision value.
type Double struct {
	named
	raw [8]byte
}

// NewDouble returns a Double tag.
func NewDouble(name string, v float64) *Double {
	t := &Double{named: named{name: name}}
	t.Set(v)
	return t
}

// Type implements Tag.
func (*Double) Type() Type { return TagDouble }

// Value returns the stored value.
func (t *Double) Value() float64 { return format.ReadF64(t.raw[:], 0) }

// Set stores v.
func (t *Double) Set(v float64) { format.PutF64(t.raw[:], 0, v) }

// SetValue coerces v into the tag.
func (t *Double) SetValue(v any) error {
	if b, ok := v.([]byte); ok {
		return rawPayload(t.raw[:], b, TagDouble)
	}
	f, err := floatValue(v, TagDouble, 64)
	if err != nil {
		return err
	}
	t.Set(f)
	return nil
}

// Int64 implements Number.
func (t *Double) Int64() int64 { return int64(wrapFloat(t.Value())) }

// Float64 implements Number.
func (t *Double) Float64() float64 { return t.Value() }

// Bytes returns a copy of the raw payload.
func (t *Double) Bytes() []byte { return append([]byte(nil), t.raw[:]...) }

func (t *Double) String() string { return formatFloat(t.Value(), 64) }

// Clone implements Tag.
func (t *Double) Clone() Tag {
	c := *t
	return &c
}
