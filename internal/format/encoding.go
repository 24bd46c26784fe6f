package format

import (
	"encoding/binary"
	"math"
)

// Binary encoding utilities for big-endian integers and floats.
//
// NBT is big-endian throughout. These helpers write into and read from
// fixed offsets of caller-owned slices; bounds are the caller's concern.

// PutI16 writes an int16 value at off in big-endian format.
func PutI16(b []byte, off int, v int16) {
	binary.BigEndian.PutUint16(b[off:off+2], uint16(v))
}

// PutU16 writes a uint16 value at off in big-endian format.
func PutU16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}

// PutI32 writes an int32 value at off in big-endian format.
func PutI32(b []byte, off int, v int32) {
	binary.BigEndian.PutUint32(b[off:off+4], uint32(v))
}

// PutI64 writes an int64 value at off in big-endian format.
func PutI64(b []byte, off int, v int64) {
	binary.BigEndian.PutUint64(b[off:off+8], uint64(v))
}

// PutF32 writes a float32 value at off in IEEE-754 big-endian format.
func PutF32(b []byte, off int, v float32) {
	binary.BigEndian.PutUint32(b[off:off+4], math.Float32bits(v))
}

// PutF64 writes a float64 value at off in IEEE-754 big-endian format.
func PutF64(b []byte, off int, v float64) {
	binary.BigEndian.PutUint64(b[off:off+8], math.Float64bits(v))
}

// ReadI16 reads an int16 value at off in big-endian format.
func ReadI16(b []byte, off int) int16 {
	return int16(binary.BigEndian.Uint16(b[off : off+2]))
}

// ReadU16 reads a uint16 value at off in big-endian format.
func ReadU16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

// ReadI32 reads an int32 value at off in big-endian format.
func ReadI32(b []byte, off int) int32 {
	return int32(binary.BigEndian.Uint32(b[off : off+4]))
}

// ReadI64 reads an int64 value at off in big-endian format.
func ReadI64(b []byte, off int) int64 {
	return int64(binary.BigEndian.Uint64(b[off : off+8]))
}

// ReadF32 reads an IEEE-754 float32 at off in big-endian format.
func ReadF32(b []byte, off int) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b[off : off+4]))
}

// ReadF64 reads an IEEE-754 float64 at off in big-endian format.
func ReadF64(b []byte, off int) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b[off : off+8]))
}
