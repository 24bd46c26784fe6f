// Package testutil provides sample NBT trees and files shared by package
// tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
)

// HelloWorld returns the classic minimal document: a compound named
// "hello world" holding a single String "name" = "Bananrama".
func HelloWorld() *nbt.Compound {
	root := nbt.NewCompound("hello world")
	root.Put("name", nbt.NewString("", "Bananrama"))
	return root
}

// HelloWorldBytes is the encoded form of HelloWorld.
var HelloWorldBytes = []byte{
	0x0a, 0x00, 0x0b, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
	0x08, 0x00, 0x04, 'n', 'a', 'm', 'e',
	0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
	0x00,
}

// Sample returns a tree that exercises every tag kind, including nested
// lists and compounds, non-ASCII text and boundary values.
func Sample() *nbt.Compound {
	root := nbt.NewCompound("Level")
	root.Put("byte", nbt.NewByte("", nbt.MaxByte))
	root.Put("short", nbt.NewShort("", nbt.MinShort))
	root.Put("int", nbt.NewInt("", 42))
	root.Put("long", nbt.NewLong("", nbt.MaxLong))
	root.Put("float", nbt.NewFloat("", 0.5))
	root.Put("double", nbt.NewDouble("", -1.25))
	root.Put("bytes", nbt.NewByteArray("", []byte{0, 1, 2, 0xff}))
	root.Put("text", nbt.NewString("", "a¢€ \U0001F600"))
	root.Put("ints", nbt.NewIntArray("", []int32{nbt.MinInt, -1, 0, nbt.MaxInt}))

	names := nbt.NewList("", nbt.TagString)
	mustAdd(names, nbt.NewString("", "a"), nbt.NewString("", "b"))
	root.Put("tags", names)

	sections := nbt.NewList("", nbt.TagCompound)
	for i := 0; i < 3; i++ {
		sec := nbt.NewCompound("")
		sec.Put("Y", nbt.NewByte("", int8(i)))
		sec.Put("Blocks", nbt.NewByteArray("", []byte{byte(i), byte(i + 1)}))
		mustAdd(sections, sec)
	}
	root.Put("Sections", sections)

	nested := nbt.NewList("", nbt.TagList)
	inner := nbt.NewList("", nbt.TagInt)
	mustAdd(inner, nbt.NewInt("", 7))
	mustAdd(nested, inner, nbt.NewList("", nbt.TagEnd))
	root.Put("nested", nested)

	root.Put("empty", nbt.NewCompound(""))
	return root
}

// SampleBytes returns the encoded form of Sample.
func SampleBytes(t testing.TB) []byte {
	t.Helper()
	b, err := nbt.Encode(Sample())
	require.NoError(t, err)
	return b
}

// WriteTemp writes data to a file named name inside a fresh temporary
// directory and returns its path.
func WriteTemp(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func mustAdd(l *nbt.List, tags ...nbt.Tag) {
	if err := l.Add(tags...); err != nil {
		panic(err)
	}
}
