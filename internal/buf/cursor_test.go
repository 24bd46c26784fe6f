package buf

import (
	"math"
	"strings"
	"testing"

	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	w := NewWriter(16)
	w.WriteInt8(-1)
	w.WriteInt16(math.MinInt16)
	w.WriteUint16(0xfffe)
	w.WriteInt32(math.MaxInt32)
	w.WriteInt64(math.MinInt64)
	w.WriteFloat32(3.25)
	w.WriteFloat64(-1e300)
	require.NoError(t, w.WriteUTF8String("a¢€"))
	w.Write([]byte{9, 8, 7})

	r := NewReader(w.Bytes())

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i8)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(math.MinInt16), i16)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xfffe), u16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), i32)

	raw, err := r.Read(8)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, raw)

	f32, err := r.Read(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x50, 0, 0}, f32)

	_, err = r.Read(8)
	require.NoError(t, err)

	n, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(6), n)
	name, err := r.ReadCopy(int(n))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61, 0xc2, 0xa2, 0xe2, 0x82, 0xac}, name)

	tail, err := r.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, tail)
	assert.Equal(t, 0, r.Remaining())
	assert.Equal(t, w.Len(), r.Offset())
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader([]byte{0x00, 0x0a, 'a', 'b', 'c'})

	n, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(10), n)

	_, err = r.Read(int(n))
	require.ErrorIs(t, err, types.ErrTruncated)
	assert.Contains(t, err.Error(), "3 remaining")
	// failed reads do not advance
	assert.Equal(t, 2, r.Offset())

	_, err = r.ReadInt32()
	require.ErrorIs(t, err, types.ErrTruncated)

	_, err = NewReader(nil).ReadInt8()
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestReader_NegativeLength(t *testing.T) {
	_, err := NewReader([]byte{1, 2}).Read(-1)
	require.ErrorIs(t, err, types.ErrCorrupt)
}

func TestReader_CheckCount(t *testing.T) {
	r := NewReader(make([]byte, 12))
	require.NoError(t, r.CheckCount(3, 4))
	require.ErrorIs(t, r.CheckCount(4, 4), types.ErrTruncated)
	require.ErrorIs(t, r.CheckCount(-1, 4), types.ErrCorrupt)
	assert.Equal(t, 0, r.Offset())
}

func TestWriter_StringTooLong(t *testing.T) {
	w := NewWriter(0)
	err := w.WriteUTF8String(strings.Repeat("€", 30000))
	require.ErrorIs(t, err, types.ErrSizeMismatch)
	assert.Equal(t, 0, w.Len())

	err = w.WriteRawString(make([]byte, 70000))
	require.ErrorIs(t, err, types.ErrSizeMismatch)

	require.NoError(t, w.WriteRawString([]byte("ok")))
	assert.Equal(t, []byte{0, 2, 'o', 'k'}, w.Bytes())

	w.Reset()
	assert.Equal(t, 0, w.Len())
}
