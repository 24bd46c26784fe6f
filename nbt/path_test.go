package nbt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/internal/testutil"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestFind(t *testing.T) {
	root := testutil.Sample()

	tests := []struct {
		path string
		want string
		typ  nbt.Type
	}{
		{"int", "42", nbt.TagInt},
		{"tags[1]", "b", nbt.TagString},
		{"Sections[2].Y", "2", nbt.TagByte},
		{"Sections[1].Blocks[1]", "2", nbt.TagByte},
		{"ints[0]", "-2147483648", nbt.TagInt},
		{"nested[0][0]", "7", nbt.TagInt},
		{`"text"`, "a¢€ \U0001F600", nbt.TagString},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			tag, err := nbt.Find(root, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, tag.Type())
			assert.Equal(t, tt.want, tag.String())
		})
	}

	self, err := nbt.Find(root, "")
	require.NoError(t, err)
	assert.Same(t, root, self)
}

func TestFindQuotedKey(t *testing.T) {
	root := nbt.NewCompound("")
	inner := nbt.NewCompound("")
	inner.Put("x", nbt.NewInt("", 1))
	root.Put("a.b", inner)

	tag, err := nbt.Find(root, `"a.b".x`)
	require.NoError(t, err)
	assert.Equal(t, "1", tag.String())

	_, err = nbt.Find(root, "a.b.x")
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestFindErrors(t *testing.T) {
	root := testutil.Sample()
	tests := []struct {
		path string
		want error
	}{
		{"missing", types.ErrNotFound},
		{"Sections[0].missing", types.ErrNotFound},
		{"tags[5]", types.ErrIndex},
		{"bytes[-1]", types.ErrIndex},
		{"int.x", types.ErrInvalidValue},
		{"int[0]", types.ErrInvalidValue},
		{"tags[x]", types.ErrInvalidValue},
		{"tags[1", types.ErrInvalidValue},
		{".int", types.ErrInvalidValue},
		{"int..x", types.ErrInvalidValue},
		{`"open`, types.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := nbt.Find(root, tt.path)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatPath(t *testing.T) {
	segs, err := nbt.ParsePath(`Level."a.b"[3].c`)
	require.NoError(t, err)
	require.Len(t, segs, 4)
	assert.Equal(t, "Level", segs[0].Key)
	assert.Equal(t, "a.b", segs[1].Key)
	assert.True(t, segs[2].IsIndex)
	assert.Equal(t, 3, segs[2].Index)
	assert.Equal(t, `Level."a.b"[3].c`, nbt.FormatPath(segs))
}

func TestEqual(t *testing.T) {
	a := nbt.NewCompound("root")
	a.Put("x", nbt.NewInt("", 1))
	a.Put("y", nbt.NewString("", "s"))

	b := nbt.NewCompound("root")
	b.Put("y", nbt.NewString("", "s"))
	b.Put("x", nbt.NewInt("", 1))

	assert.True(t, nbt.Equal(a, b), "compound order is irrelevant")

	b.Put("x", nbt.NewInt("", 2))
	assert.False(t, nbt.Equal(a, b))

	b.Put("x", nbt.NewShort("", 1))
	assert.False(t, nbt.Equal(a, b), "types must match")

	assert.False(t, nbt.Equal(nbt.NewInt("a", 1), nbt.NewInt("b", 1)))
	assert.True(t, nbt.EqualValue(nbt.NewInt("a", 1), nbt.NewInt("b", 1)))
	assert.True(t, nbt.Equal(nil, nil))
	assert.False(t, nbt.Equal(nbt.NewInt("", 0), nil))

	l1 := nbt.NewList("", nbt.TagInt)
	l2 := nbt.NewList("", nbt.TagShort)
	assert.False(t, nbt.Equal(l1, l2), "empty lists differ by element type")

	require.NoError(t, l1.Add(nbt.NewInt("", 1), nbt.NewInt("", 2)))
	l3 := nbt.NewList("", nbt.TagInt)
	require.NoError(t, l3.Add(nbt.NewInt("", 2), nbt.NewInt("", 1)))
	assert.False(t, nbt.Equal(l1, l3), "list order matters")

	sample := testutil.Sample()
	assert.True(t, nbt.Equal(sample, sample.Clone()))
}
