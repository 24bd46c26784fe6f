package nbt

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Type identifies a tag kind. The numeric value is the wire type id.
type Type = types.TagType

// Tag type ids, re-exported for convenience.
const (
	TagEnd       = types.TagEnd
	TagByte      = types.TagByte
	TagShort     = types.TagShort
	TagInt       = types.TagInt
	TagLong      = types.TagLong
	TagFloat     = types.TagFloat
	TagDouble    = types.TagDouble
	TagByteArray = types.TagByteArray
	TagString    = types.TagString
	TagList      = types.TagList
	TagCompound  = types.TagCompound
	TagIntArray  = types.TagIntArray
)

// Tag is one node of an NBT tree.
//
// The interface is sealed: only the twelve concrete kinds defined in this
// package implement it, so a type switch over them is exhaustive.
type Tag interface {
	// Type returns the tag kind.
	Type() Type
	// Name returns the tag's name. End tags and list elements are unnamed.
	Name() string
	// SetName replaces the tag's name. It is a no-op on End.
	SetName(name string)
	// Clone returns a deep, independent copy.
	Clone() Tag
	// String returns the value as text: the number for scalars, the
	// decoded text for String, and a short summary for containers.
	String() string

	sealed()
}

// Number is implemented by the six scalar kinds.
type Number interface {
	Tag
	// Int64 returns the value as an integer (floats truncate toward zero).
	Int64() int64
	// Float64 returns the value as a float.
	Float64() float64
}

// named carries the name shared by every kind except End.
type named struct {
	name string
}

func (n *named) Name() string        { return n.name }
func (n *named) SetName(name string) { n.name = name }
func (*named) sealed()               {}

// New returns an empty tag of type t (zero scalar, empty array, string,
// list or compound). Ids outside 0..11 fail with an UnknownTypeError.
func New(t Type, name string) (Tag, error) {
	n := named{name: name}
	switch t {
	case TagEnd:
		return &End{}, nil
	case TagByte:
		return &Byte{named: n}, nil
	case TagShort:
		return &Short{named: n}, nil
	case TagInt:
		return &Int{named: n}, nil
	case TagLong:
		return &Long{named: n}, nil
	case TagFloat:
		return &Float{named: n}, nil
	case TagDouble:
		return &Double{named: n}, nil
	case TagByteArray:
		return &ByteArray{named: n}, nil
	case TagString:
		return &String{named: n}, nil
	case TagList:
		return &List{named: n}, nil
	case TagCompound:
		return NewCompound(name), nil
	case TagIntArray:
		return &IntArray{named: n}, nil
	default:
		return nil, &UnknownTypeError{ID: int8(t), Offset: -1}
	}
}

// End marks the end of a compound's entries. It has no name and no
// payload.
type End struct{}

// Type implements Tag.
func (*End) Type() Type { return TagEnd }

// Name implements Tag; End is always unnamed.
func (*End) Name() string { return "" }

// SetName implements Tag and does nothing.
func (*End) SetName(string) {}

// Clone implements Tag.
func (*End) Clone() Tag { return &End{} }

func (*End) String() string { return "" }

func (*End) sealed() {}

// TypeName returns the display name of t's type ("byteArray", "compound", ...).
func TypeName(t Tag) string {
	if t == nil {
		return "<nil>"
	}
	return t.Type().String()
}

// isNil reports whether t is nil or a nil pointer wrapped in the interface.
func isNil(t Tag) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func describe(t Type, n int) string {
	return fmt.Sprintf("%s[%d]", t, n)
}
