package nbt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestByteArray(t *testing.T) {
	a := nbt.NewByteArray("data", []byte{1, 2, 0xff})
	assert.Equal(t, 3, a.Len())

	v, err := a.Get(2)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), v)

	require.NoError(t, a.Set(0, -128))
	assert.Equal(t, []int8{-128, 2, -1}, a.Values())
	assert.Equal(t, []byte{0x80, 2, 0xff}, a.Bytes())

	_, err = a.Get(3)
	require.ErrorIs(t, err, types.ErrIndex)
	require.ErrorIs(t, a.Set(-1, 0), types.ErrIndex)

	require.NoError(t, a.SetValue([]int{256, 257, -1}))
	assert.Equal(t, []int8{0, 1, -1}, a.Values())

	require.NoError(t, a.SetValue("a¢"))
	assert.Equal(t, []byte{0x61, 0xc2, 0xa2}, a.Bytes())

	require.NoError(t, a.SetValue(nil))
	assert.Zero(t, a.Len())

	require.ErrorIs(t, a.SetValue(42), types.ErrInvalidValue)
	assert.Equal(t, "byteArray[0]", a.String())
}

func TestIntArray(t *testing.T) {
	a := nbt.NewIntArray("", []int32{1, -1, nbt.MaxInt})
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []byte{0, 0, 0, 1, 0xff, 0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0xff}, a.Bytes())

	require.NoError(t, a.Set(1, 7))
	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)

	_, err = a.Get(3)
	require.ErrorIs(t, err, types.ErrIndex)

	require.NoError(t, a.SetValue([]int64{1 << 32, -1}))
	assert.Equal(t, []int32{0, -1}, a.Values())

	require.NoError(t, a.SetValue([]byte{0, 0, 0, 9}))
	assert.Equal(t, []int32{9}, a.Values())

	err = a.SetValue([]byte{1, 2, 3})
	require.ErrorIs(t, err, types.ErrSizeMismatch)
	assert.Equal(t, []int32{9}, a.Values())

	// One element per encoded byte.
	require.NoError(t, a.SetValue("a¢"))
	assert.Equal(t, []int32{0x61, 0xc2, 0xa2}, a.Values())

	require.NoError(t, a.SetValue([]float64{1.9, -2.5}))
	assert.Equal(t, []int32{1, -2}, a.Values())
	assert.Equal(t, "intArray[2]", a.String())
}

func TestArrayCloneIndependent(t *testing.T) {
	a := nbt.NewByteArray("a", []byte{1, 2})
	c := a.Clone().(*nbt.ByteArray)
	require.NoError(t, c.Set(0, 9))
	v, _ := a.Get(0)
	assert.Equal(t, int8(1), v)

	src := []byte{5}
	b := nbt.NewByteArray("", src)
	src[0] = 6
	v, _ = b.Get(0)
	assert.Equal(t, int8(5), v, "constructor must copy its input")

	ia := nbt.NewIntArray("", []int32{1})
	ic := ia.Clone().(*nbt.IntArray)
	require.NoError(t, ic.Set(0, 2))
	assert.Equal(t, []int32{1}, ia.Values())
}

func TestString(t *testing.T) {
	s := nbt.NewString("greeting", "a¢€")
	assert.Equal(t, "a¢€", s.Value())
	assert.Equal(t, []byte{0x61, 0xc2, 0xa2, 0xe2, 0x82, 0xac}, s.Bytes())
	assert.Equal(t, 6, s.Len())

	require.NoError(t, s.SetValue(nbt.NewInt("", 12)))
	assert.Equal(t, "12", s.Value())

	require.NoError(t, s.SetValue([]byte{0xc0, 0x80}))
	assert.Equal(t, "\x00", s.Value())

	require.ErrorIs(t, s.SetValue(3), types.ErrInvalidValue)

	err := s.SetValue(string(make([]byte, 1<<16)))
	require.ErrorIs(t, err, types.ErrSizeMismatch)
	assert.Equal(t, "\x00", s.Value())

	c := s.Clone().(*nbt.String)
	c.Set("other")
	assert.Equal(t, "\x00", s.Value())
	assert.Equal(t, "greeting", c.Name())
}

func TestListHomogeneity(t *testing.T) {
	l := nbt.NewList("", nbt.TagEnd)
	assert.Equal(t, nbt.TagEnd, l.ElemType())

	require.NoError(t, l.Add(nbt.NewInt("ignored", 1)))
	assert.Equal(t, nbt.TagInt, l.ElemType())
	assert.Equal(t, 1, l.Len())

	err := l.Add(nbt.NewString("", "x"))
	require.ErrorIs(t, err, types.ErrListType)
	var lte *nbt.ListTypeError
	require.True(t, errors.As(err, &lte))
	assert.Equal(t, nbt.TagString, lte.Got)
	assert.Equal(t, nbt.TagInt, lte.Want)
	assert.Equal(t, "nbt: tag has wrong type: string; expected: int", err.Error())
	assert.Equal(t, 1, l.Len(), "size must be unchanged after a failed add")

	// A batch with one bad element inserts nothing.
	err = l.Add(nbt.NewInt("", 2), nbt.NewShort("", 3))
	require.ErrorIs(t, err, types.ErrListType)
	assert.Equal(t, 1, l.Len())

	require.ErrorIs(t, l.Set(0, nbt.NewLong("", 1)), types.ErrListType)
	require.ErrorIs(t, l.Set(1, nbt.NewInt("", 1)), types.ErrIndex)
	require.ErrorIs(t, l.Add(&nbt.End{}), types.ErrInvalidValue)
	require.ErrorIs(t, l.Add(nil), types.ErrInvalidValue)

	first, err := l.Get(0)
	require.NoError(t, err)
	assert.Empty(t, first.Name(), "list elements are unnamed")
}

func TestListDeclaredType(t *testing.T) {
	l := nbt.NewList("", nbt.TagString)
	require.ErrorIs(t, l.Add(nbt.NewInt("", 1)), types.ErrListType)
	assert.Zero(t, l.Len())

	require.NoError(t, l.Add(nbt.NewString("", "a"), nbt.NewString("", "b"), nbt.NewString("", "c")))
	require.NoError(t, l.Remove(1))
	require.ErrorIs(t, l.Remove(5), types.ErrIndex)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[1].String())
	assert.Equal(t, 2, l.Len(), "Items must not drain the list")

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Equal(t, nbt.TagString, l.ElemType())
	assert.Equal(t, "list[0]", l.String())
}

func TestListOf(t *testing.T) {
	l, err := nbt.ListOf("nums", nbt.NewByte("", 1), nbt.NewByte("", 2))
	require.NoError(t, err)
	assert.Equal(t, nbt.TagByte, l.ElemType())
	assert.Equal(t, "nums", l.Name())

	_, err = nbt.ListOf("", nbt.NewByte("", 1), nbt.NewInt("", 2))
	require.ErrorIs(t, err, types.ErrListType)

	empty, err := nbt.ListOf("")
	require.NoError(t, err)
	assert.Equal(t, nbt.TagEnd, empty.ElemType())
}

func TestListCloneDeep(t *testing.T) {
	l := nbt.NewList("l", nbt.TagInt)
	require.NoError(t, l.Add(nbt.NewInt("", 1)))

	c := l.Clone().(*nbt.List)
	item, err := c.Get(0)
	require.NoError(t, err)
	item.(*nbt.Int).Set(99)

	orig, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), orig.(*nbt.Int).Value())
	assert.Equal(t, "l", c.Name())
}

func TestCompound(t *testing.T) {
	c := nbt.NewCompound("root")
	c.Put("b", nbt.NewInt("ignored", 1))
	c.Put("a", nbt.NewString("", "x"))
	assert.Equal(t, []string{"b", "a"}, c.Keys())
	assert.Equal(t, "b", c.Get("b").Name(), "insertion renames the tag to its key")

	// Replacement keeps the original position.
	c.Put("b", nbt.NewLong("", 2))
	assert.Equal(t, []string{"b", "a"}, c.Keys())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, nbt.TagLong, c.Get("b").Type())

	assert.True(t, c.ContainsKey("a"))
	c.Put("a", nil)
	assert.False(t, c.ContainsKey("a"))
	assert.Nil(t, c.Get("a"))
	assert.Equal(t, 1, c.Len())

	removed := c.Remove("b")
	require.NotNil(t, removed)
	assert.Equal(t, nbt.TagLong, removed.Type())
	assert.Nil(t, c.Remove("b"))

	c.Put("x", nbt.NewByte("", 1))
	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, "compound[0]", c.String())
}

func TestCompoundTypedGetters(t *testing.T) {
	c := nbt.NewCompound("")
	c.Put("id", nbt.NewInt("", 42))
	c.Put("name", nbt.NewString("", "stone"))

	id, ok := c.GetInt("id")
	require.True(t, ok)
	assert.Equal(t, int32(42), id.Value())

	_, ok = c.GetString("id")
	assert.False(t, ok)
	_, ok = c.GetCompound("missing")
	assert.False(t, ok)

	name, ok := nbt.Lookup[*nbt.String](c, "name")
	require.True(t, ok)
	assert.Equal(t, "stone", name.Value())
}

func TestCompoundPutClone(t *testing.T) {
	src := nbt.NewInt("src", 1)
	c := nbt.NewCompound("")
	c.PutClone("copy", src)
	c.Get("copy").(*nbt.Int).Set(2)
	assert.Equal(t, int32(1), src.Value())
	assert.Equal(t, "src", src.Name())

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "copy", entries[0].Key)
}

func TestTypedNilTags(t *testing.T) {
	c := nbt.NewCompound("")
	c.Put("x", nbt.NewInt("", 1))
	require.NotPanics(t, func() { c.Put("x", (*nbt.Int)(nil)) })
	assert.False(t, c.ContainsKey("x"), "a nil pointer removes the key")
	require.NotPanics(t, func() { c.PutClone("y", (*nbt.Compound)(nil)) })
	assert.Zero(t, c.Len())

	l := nbt.NewList("", nbt.TagEnd)
	require.ErrorIs(t, l.Add((*nbt.Int)(nil)), types.ErrInvalidValue)
	assert.Equal(t, nbt.TagEnd, l.ElemType())
	require.NoError(t, l.Add(nbt.NewInt("", 1)))
	require.ErrorIs(t, l.Set(0, (*nbt.Int)(nil)), types.ErrInvalidValue)
	assert.Equal(t, 1, l.Len())

	_, err := nbt.ListOf("", nbt.NewString("", "a"), (*nbt.String)(nil))
	require.ErrorIs(t, err, types.ErrInvalidValue)
}

func TestCompoundCloneKeepsNameAndOrder(t *testing.T) {
	c := nbt.NewCompound("root")
	c.Put("z", nbt.NewInt("", 1))
	c.Put("a", nbt.NewCompound(""))

	cl := c.Clone().(*nbt.Compound)
	assert.Equal(t, "root", cl.Name())
	assert.Equal(t, []string{"z", "a"}, cl.Keys())

	cl.Get("a").(*nbt.Compound).Put("k", nbt.NewByte("", 1))
	assert.Zero(t, c.Get("a").(*nbt.Compound).Len())
}

func TestNew(t *testing.T) {
	for id := nbt.TagEnd; id <= nbt.TagIntArray; id++ {
		tag, err := nbt.New(id, "n")
		require.NoError(t, err)
		assert.Equal(t, id, tag.Type())
		if id != nbt.TagEnd {
			assert.Equal(t, "n", tag.Name())
		}
	}

	_, err := nbt.New(99, "")
	require.ErrorIs(t, err, types.ErrUnknownTagType)
	var ute *nbt.UnknownTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, int8(99), ute.ID)

	c, err := nbt.New(nbt.TagCompound, "")
	require.NoError(t, err)
	c.(*nbt.Compound).Put("k", nbt.NewByte("", 1))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "byteArray", nbt.TypeName(nbt.NewByteArray("", nil)))
	assert.Equal(t, "intArray", nbt.TypeName(nbt.NewIntArray("", nil)))
	assert.Equal(t, "compound", nbt.TypeName(nbt.NewCompound("")))
	assert.Equal(t, "<nil>", nbt.TypeName(nil))
}
