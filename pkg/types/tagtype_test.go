package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagType_String(t *testing.T) {
	tests := []struct {
		tagType  TagType
		expected string
	}{
		{TagEnd, "end"},
		{TagByte, "byte"},
		{TagShort, "short"},
		{TagInt, "int"},
		{TagLong, "long"},
		{TagFloat, "float"},
		{TagDouble, "double"},
		{TagByteArray, "byteArray"},
		{TagString, "string"},
		{TagList, "list"},
		{TagCompound, "compound"},
		{TagIntArray, "intArray"},
		// Unknown types keep their signed id
		{TagType(12), "UNKNOWN_TYPE_12"},
		{TagType(-1), "UNKNOWN_TYPE_-1"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tagType.String())
		})
	}
}

func TestTagType_FixedWidth(t *testing.T) {
	assert.Equal(t, 0, TagEnd.FixedWidth())
	assert.Equal(t, 1, TagByte.FixedWidth())
	assert.Equal(t, 2, TagShort.FixedWidth())
	assert.Equal(t, 4, TagInt.FixedWidth())
	assert.Equal(t, 8, TagLong.FixedWidth())
	assert.Equal(t, 4, TagFloat.FixedWidth())
	assert.Equal(t, 8, TagDouble.FixedWidth())
	for _, v := range []TagType{TagByteArray, TagString, TagList, TagCompound, TagIntArray} {
		assert.Equal(t, -1, v.FixedWidth(), v.String())
	}
}

func TestTagType_Valid(t *testing.T) {
	for i := 0; i <= 11; i++ {
		assert.True(t, TagType(i).Valid())
	}
	assert.False(t, TagType(12).Valid())
	assert.False(t, TagType(99).Valid())
	assert.False(t, TagType(-3).Valid())
}

func TestParseTagType(t *testing.T) {
	for _, in := range []string{"byteArray", "BYTEARRAY", "TAG_Byte_Array", "byte_array"} {
		got, err := ParseTagType(in)
		require.NoError(t, err, in)
		assert.Equal(t, TagByteArray, got, in)
	}

	got, err := ParseTagType("compound")
	require.NoError(t, err)
	assert.Equal(t, TagCompound, got)

	_, err = ParseTagType("quaternion")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestError_IsMatchesKind(t *testing.T) {
	detailed := &Error{Kind: ErrKindTruncated, Msg: "need 10 bytes"}
	wrapped := fmt.Errorf("decode string: %w", detailed)

	assert.True(t, errors.Is(wrapped, ErrTruncated))
	assert.False(t, errors.Is(wrapped, ErrCorrupt))
	assert.Equal(t, "decode string: need 10 bytes", wrapped.Error())

	withCause := &Error{Kind: ErrKindCorrupt, Msg: "list", Err: errors.New("negative count")}
	assert.Equal(t, "list: negative count", withCause.Error())
}

func TestLimits(t *testing.T) {
	def := DefaultLimits()
	strict := StrictLimits()
	relaxed := RelaxedLimits()

	assert.Equal(t, MaxDepthDefault, def.MaxDepth)
	assert.Less(t, strict.MaxDepth, def.MaxDepth)
	assert.Greater(t, relaxed.MaxDepth, def.MaxDepth)
	assert.Less(t, strict.MaxArrayLen, def.MaxArrayLen)
	assert.Equal(t, MaxDecompressedDefault, def.MaxDecompressed)
	assert.Less(t, strict.MaxDecompressed, def.MaxDecompressed)
	assert.Zero(t, relaxed.MaxDecompressed, "relaxed limits do not bound inflation")
}
