package nbt_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestIntegerWraparound(t *testing.T) {
	tests := []struct {
		name string
		tag  interface {
			nbt.Number
			SetValue(any) error
		}
		in   any
		want int64
	}{
		{"byte max+1", &nbt.Byte{}, 128, nbt.MinByte},
		{"byte 255", &nbt.Byte{}, 255, -1},
		{"byte min-1", &nbt.Byte{}, -129, nbt.MaxByte},
		{"short max+1", &nbt.Short{}, 32768, nbt.MinShort},
		{"short 65535", &nbt.Short{}, uint16(65535), -1},
		{"int max+1", &nbt.Int{}, int64(2147483648), nbt.MinInt},
		{"int min-1", &nbt.Int{}, int64(-2147483649), nbt.MaxInt},
		{"long from uint64", &nbt.Long{}, uint64(math.MaxUint64), -1},
		{"long max", &nbt.Long{}, int64(nbt.MaxLong), nbt.MaxLong},
		{"byte float truncates", &nbt.Byte{}, 300.7, 44},
		{"int float toward zero", &nbt.Int{}, -1.9, -1},
		{"long float 2^63", &nbt.Long{}, math.Ldexp(1, 63), nbt.MinLong},
		{"int NaN", &nbt.Int{}, math.NaN(), 0},
		{"short +Inf", &nbt.Short{}, math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.tag.SetValue(tt.in))
			assert.Equal(t, tt.want, tt.tag.Int64())
		})
	}
}

func TestIntegerStrings(t *testing.T) {
	tests := []struct {
		name string
		tag  interface {
			nbt.Number
			SetValue(any) error
		}
		in   string
		want int64
	}{
		{"decimal", &nbt.Int{}, "1234", 1234},
		{"negative", &nbt.Int{}, "-1234", -1234},
		{"plus sign", &nbt.Short{}, "+17", 17},
		{"hex", &nbt.Int{}, "0xff", 255},
		{"hex upper", &nbt.Int{}, "0XFF", 255},
		{"negative hex", &nbt.Int{}, "-0x10", -16},
		{"hex wraps byte", &nbt.Byte{}, "0xff", -1},
		{"octal", &nbt.Int{}, "017", 15},
		{"negative octal", &nbt.Int{}, "-017", -15},
		{"not octal", &nbt.Int{}, "019", 19},
		{"blank", &nbt.Int{}, "   ", 0},
		{"long max", &nbt.Long{}, nbt.MaxLongString, nbt.MaxLong},
		{"long min", &nbt.Long{}, nbt.MinLongString, nbt.MinLong},
		{"long overflow wraps to min", &nbt.Long{}, "9223372036854775808", nbt.MinLong},
		{"long underflow wraps to max", &nbt.Long{}, "-9223372036854775809", nbt.MaxLong},
		{"long hex", &nbt.Long{}, "0x7fffffffffffffff", nbt.MaxLong},
		{"long hex all ones", &nbt.Long{}, "0xffffffffffffffff", -1},
		{"int overflow wraps", &nbt.Int{}, "2147483648", nbt.MinInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.tag.SetValue(tt.in))
			assert.Equal(t, tt.want, tt.tag.Int64())
		})
	}
}

func TestSetStringBase(t *testing.T) {
	s := &nbt.Short{}
	require.NoError(t, s.SetString("ff", 16))
	assert.Equal(t, int16(255), s.Value())

	require.NoError(t, s.SetString("101", 2))
	assert.Equal(t, int16(5), s.Value())

	// Prefix detection wins over the requested base.
	require.NoError(t, s.SetString("0x10", 2))
	assert.Equal(t, int16(16), s.Value())

	err := s.SetString("12", 1)
	require.ErrorIs(t, err, types.ErrInvalidValue)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "ff", nbt.NewInt("", 255).Format(16))
	assert.Equal(t, "-1", nbt.NewLong("", -1).Format(2))
	assert.Equal(t, "-80", nbt.NewByte("", -128).Format(16))
	assert.Equal(t, "42", nbt.NewShort("", 42).Format(99))
	assert.Equal(t, "9223372036854775807", nbt.NewLong("", nbt.MaxLong).String())
}

func TestSetValueInvalid(t *testing.T) {
	i := nbt.NewInt("", 7)
	for _, v := range []any{"abc", "0x", "1.5", true, nil, struct{}{}} {
		err := i.SetValue(v)
		require.Error(t, err, "%v", v)
		assert.ErrorIs(t, err, types.ErrInvalidValue)
	}
	assert.Equal(t, int32(7), i.Value(), "failed assignment must not modify the tag")

	d := nbt.NewDouble("", 1)
	require.ErrorIs(t, d.SetValue("nope"), types.ErrInvalidValue)
	require.ErrorIs(t, d.SetValue([]int{1}), types.ErrInvalidValue)
}

func TestRawPayload(t *testing.T) {
	i := &nbt.Int{}
	require.NoError(t, i.SetValue([]byte{0, 0, 1, 0}))
	assert.Equal(t, int32(256), i.Value())

	err := i.SetValue([]byte{1})
	require.ErrorIs(t, err, types.ErrSizeMismatch)
	var se *nbt.SizeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, nbt.TagInt, se.Type)
	assert.Equal(t, 1, se.Got)
	assert.Equal(t, 4, se.Want)
	assert.Equal(t, int32(256), i.Value())

	f := nbt.NewFloat("", 1)
	assert.Equal(t, []byte{0x3f, 0x80, 0, 0}, f.Bytes())
	require.NoError(t, f.SetValue([]byte{0xc0, 0, 0, 0}))
	assert.Equal(t, float32(-2), f.Value())

	l := nbt.NewLong("", 1)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, l.Bytes())
}

func TestFloatCoercion(t *testing.T) {
	f := &nbt.Float{}
	require.NoError(t, f.SetValue("0.1"))
	assert.Equal(t, float32(0.1), f.Value())

	require.NoError(t, f.SetValue("1e40"))
	assert.True(t, math.IsInf(float64(f.Value()), 1))

	require.NoError(t, f.SetValue(nbt.NewInt("", 3)))
	assert.Equal(t, float32(3), f.Value())

	d := &nbt.Double{}
	require.NoError(t, d.SetValue(int64(1)<<53))
	assert.Equal(t, math.Ldexp(1, 53), d.Value())
	require.NoError(t, d.SetValue(""))
	assert.Zero(t, d.Value())

	assert.Equal(t, int64(-2), nbt.NewDouble("", -2.7).Int64())
	assert.Equal(t, int64(3), nbt.NewFloat("", 3.9).Int64())
	assert.Equal(t, "0.1", nbt.NewFloat("", 0.1).String())
}

func TestNumberInterop(t *testing.T) {
	i := &nbt.Int{}
	require.NoError(t, i.SetValue(nbt.NewDouble("", 3.99)))
	assert.Equal(t, int32(3), i.Value())

	require.NoError(t, i.SetValue(nbt.NewLong("", 1<<32+5)))
	assert.Equal(t, int32(5), i.Value())

	l := &nbt.Long{}
	require.NoError(t, l.SetValue(nbt.NewLong("", nbt.MinLong)))
	assert.Equal(t, int64(nbt.MinLong), l.Value())
}

func TestLongHalves(t *testing.T) {
	l := nbt.NewLong("", 1<<32|2)
	assert.Equal(t, int32(1), l.High())
	assert.Equal(t, int32(2), l.Low())

	l.SetHigh(-1)
	assert.Equal(t, int64(-4294967294), l.Value())

	l.SetLow(-1)
	assert.Equal(t, int64(-1), l.Value())
}

func TestScalarClone(t *testing.T) {
	orig := nbt.NewInt("x", 1)
	c, ok := orig.Clone().(*nbt.Int)
	require.True(t, ok)
	c.Set(2)
	c.SetName("y")
	assert.Equal(t, int32(1), orig.Value())
	assert.Equal(t, "x", orig.Name())
	assert.Equal(t, int32(2), c.Value())
}
