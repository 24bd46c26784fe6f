package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat       ErrKind = iota // unrecognized tag type id
	ErrKindTruncated                   // buffer ended before a requested read
	ErrKindCorrupt                     // structural corruption (negative counts, runaway nesting)
	ErrKindSize                        // raw payload length does not match the tag width
	ErrKindType                        // list element type conflict
	ErrKindIndex                       // index outside a list or array
	ErrKindValue                       // value cannot be coerced into the tag
	ErrKindNotFound                    // missing compound key or path segment
	ErrKindUnsupported                 // recognized but unsupported feature
)

// String returns a short lowercase label for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindTruncated:
		return "truncated"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindSize:
		return "size"
	case ErrKindType:
		return "type"
	case ErrKindIndex:
		return "index"
	case ErrKindValue:
		return "value"
	case ErrKindNotFound:
		return "not found"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. This lets
// errors.Is(err, types.ErrTruncated) match any truncation error regardless
// of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrUnknownTagType indicates a type id outside 0..11 was read.
	ErrUnknownTagType = &Error{Kind: ErrKindFormat, Msg: "unrecognized tag type"}
	// ErrTruncated indicates the input ended before a requested read.
	ErrTruncated = &Error{Kind: ErrKindTruncated, Msg: "truncated input"}
	// ErrCorrupt indicates structurally invalid input.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt nbt structure"}
	// ErrSizeMismatch indicates a raw payload of the wrong length.
	ErrSizeMismatch = &Error{Kind: ErrKindSize, Msg: "payload size mismatch"}
	// ErrListType indicates a list element of the wrong type.
	ErrListType = &Error{Kind: ErrKindType, Msg: "list element type conflict"}
	// ErrIndex indicates an out-of-range index.
	ErrIndex = &Error{Kind: ErrKindIndex, Msg: "index out of range"}
	// ErrInvalidValue indicates a value that cannot be assigned to a tag.
	ErrInvalidValue = &Error{Kind: ErrKindValue, Msg: "invalid value"}
	// ErrNotFound indicates a missing key or path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrUnsupported indicates a recognized but unsupported feature/variant.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported feature"}
)

// -----------------------------------------------------------------------------
// Tag types
// -----------------------------------------------------------------------------

// TagType enumerates the NBT tag kinds. The numbers are the wire type ids.
type TagType int8

const (
	TagEnd       TagType = 0
	TagByte      TagType = 1
	TagShort     TagType = 2
	TagInt       TagType = 3
	TagLong      TagType = 4
	TagFloat     TagType = 5
	TagDouble    TagType = 6
	TagByteArray TagType = 7
	TagString    TagType = 8
	TagList      TagType = 9
	TagCompound  TagType = 10
	TagIntArray  TagType = 11
)

var tagTypeNames = [...]string{
	TagEnd:       "end",
	TagByte:      "byte",
	TagShort:     "short",
	TagInt:       "int",
	TagLong:      "long",
	TagFloat:     "float",
	TagDouble:    "double",
	TagByteArray: "byteArray",
	TagString:    "string",
	TagList:      "list",
	TagCompound:  "compound",
	TagIntArray:  "intArray",
}

// String implements the Stringer interface for TagType.
func (t TagType) String() string {
	if t.Valid() {
		return tagTypeNames[t]
	}
	return fmt.Sprintf("UNKNOWN_TYPE_%d", int8(t))
}

// Valid reports whether t is one of the twelve known tag types.
func (t TagType) Valid() bool {
	return t >= TagEnd && t <= TagIntArray
}

// Scalar reports whether t is a fixed-width numeric type.
func (t TagType) Scalar() bool {
	return t >= TagByte && t <= TagDouble
}

// FixedWidth returns the payload width in bytes for End and the scalar
// types, and -1 for variable-width types.
func (t TagType) FixedWidth() int {
	switch t {
	case TagEnd:
		return 0
	case TagByte:
		return 1
	case TagShort:
		return 2
	case TagInt, TagFloat:
		return 4
	case TagLong, TagDouble:
		return 8
	default:
		return -1
	}
}

// MinPayload returns the smallest number of bytes a payload of type t can
// occupy on the wire. Decoders use it to reject element counts that
// cannot possibly fit in the remaining input.
func (t TagType) MinPayload() int {
	switch t {
	case TagByteArray, TagList, TagIntArray:
		return 4
	case TagString:
		return 2
	case TagCompound:
		return 1
	default:
		if w := t.FixedWidth(); w > 0 {
			return w
		}
		return 0
	}
}

// ParseTagType resolves a type name (as returned by String) to a TagType.
// Matching is case-insensitive and also accepts the TAG_* spellings
// ("TAG_Byte_Array", "byte_array").
func ParseTagType(name string) (TagType, error) {
	key := normalizeTypeName(name)
	for i, n := range tagTypeNames {
		if normalizeTypeName(n) == key {
			return TagType(i), nil
		}
	}
	return 0, &Error{Kind: ErrKindValue, Msg: fmt.Sprintf("unknown tag type name %q", name)}
}

func normalizeTypeName(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '-' || c == ' ':
			continue
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	if len(out) > 3 && string(out[:3]) == "tag" {
		out = out[3:]
	}
	return string(out)
}
