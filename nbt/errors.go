package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// UnknownTypeError reports a type id outside 0..11.
type UnknownTypeError struct {
	ID     int8
	Offset int // byte offset of the id, or -1 when not decoding
}

func (e *UnknownTypeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("nbt: unrecognized tag type %d", e.ID)
	}
	return fmt.Sprintf("nbt: unrecognized tag type %d at offset %d", e.ID, e.Offset)
}

func (e *UnknownTypeError) Unwrap() error { return types.ErrUnknownTagType }

// SizeError reports a raw payload whose length does not fit the tag.
type SizeError struct {
	Type Type
	Got  int
	Want int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("nbt: %s payload must be %d bytes, got %d", e.Type, e.Want, e.Got)
}

func (e *SizeError) Unwrap() error { return types.ErrSizeMismatch }

// ListTypeError reports an insertion whose type differs from the list's
// element type.
type ListTypeError struct {
	Got  Type
	Want Type
}

func (e *ListTypeError) Error() string {
	return fmt.Sprintf("nbt: tag has wrong type: %s; expected: %s", e.Got, e.Want)
}

func (e *ListTypeError) Unwrap() error { return types.ErrListType }

func indexError(i, n int) error {
	return &types.Error{
		Kind: types.ErrKindIndex,
		Msg:  fmt.Sprintf("nbt: index %d out of range [0,%d)", i, n),
	}
}

func invalidValue(format string, args ...any) error {
	return &types.Error{
		Kind: types.ErrKindValue,
		Msg:  "nbt: " + fmt.Sprintf(format, args...),
	}
}

func corruptError(format string, args ...any) error {
	return &types.Error{
		Kind: types.ErrKindCorrupt,
		Msg:  "nbt: " + fmt.Sprintf(format, args...),
	}
}
