// Package nbt implements the NBT (Named Binary Tag) data model and its
// binary codec.
//
// # Overview
//
// NBT is a recursive, self-describing, big-endian binary format. Every
// value is a tag: a one-byte type id, a name, and a payload whose layout
// depends on the type. Containers (List and Compound) nest other tags.
//
// # Key Types
//
//   - Tag: sealed interface implemented by the twelve concrete kinds
//   - Byte, Short, Int, Long, Float, Double: fixed-width scalars
//   - ByteArray, IntArray: length-prefixed numeric arrays
//   - String: modified UTF-8 text, at most 65535 encoded bytes
//   - List: homogeneous sequence of unnamed payloads
//   - Compound: insertion-ordered map of named tags
//   - End: the terminator; also used as "no element type" for lists
//
// # Wire Layout
//
//	[type:1] [nameLen:2] [name:nameLen] [payload]
//
// End has neither name nor payload. List payloads are
//
//	[elemType:1] [count:4] [payload]*count
//
// and Compound payloads are a sequence of full tags closed by an End byte.
//
// # Decoding and Encoding
//
//	root, err := nbt.Decode(data)
//	if err != nil {
//	    return err
//	}
//	level, _ := root.(*nbt.Compound).GetCompound("Level")
//
//	out, err := nbt.Encode(root)
//
// Decode copies every payload out of its input. Limits on nesting depth
// and array lengths are set through DecodeOptions.
//
// # Numeric Coercion
//
// Scalar SetValue accepts any Go number, a string, a raw big-endian
// payload, or another Number tag. Integers wrap with two's-complement
// truncation to the tag's width. Strings may carry a 0x (hex) or leading
// 0 (octal) prefix and are parsed at full 64-bit precision.
//
// # Errors
//
// Failures wrap the sentinels in pkg/types and can be tested with
// errors.Is, for example errors.Is(err, types.ErrTruncated). Detailed
// types (UnknownTypeError, SizeError, ListTypeError) are available with
// errors.As.
//
// # Concurrency
//
// Tags carry no locks. A tree may be read from several goroutines, but
// any mutation requires exclusive access.
package nbt
