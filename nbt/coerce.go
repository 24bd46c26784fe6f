package nbt

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// integer is the set of Go integer types accepted by SetValue.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

var (
	mask64   = new(big.Int).SetUint64(math.MaxUint64)
	twoTo64f = math.Ldexp(1, 64)
)

// intBits converts v into a 64-bit two's-complement pattern. Callers
// truncate it to their own width, which yields wraparound for every
// integer kind.
func intBits(v any, t Type) (uint64, error) {
	switch x := v.(type) {
	case int:
		return uint64(x), nil
	case int8:
		return uint64(x), nil
	case int16:
		return uint64(x), nil
	case int32:
		return uint64(x), nil
	case int64:
		return uint64(x), nil
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case float32:
		return wrapFloat(float64(x)), nil
	case float64:
		return wrapFloat(x), nil
	case string:
		return parseInteger(x, 10)
	case Number:
		if x.Type() == TagFloat || x.Type() == TagDouble {
			return wrapFloat(x.Float64()), nil
		}
		return uint64(x.Int64()), nil
	case nil:
		return 0, invalidValue("cannot assign nil to %s", t)
	default:
		return 0, invalidValue("cannot assign %T to %s", v, t)
	}
}

// floatValue converts v into a float64. bitSize selects the precision used
// for string parsing so Float tags are rounded once, not twice.
func floatValue(v any, t Type, bitSize int) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		return parseFloat(x, bitSize)
	case Number:
		return x.Float64(), nil
	case nil:
		return 0, invalidValue("cannot assign nil to %s", t)
	default:
		return 0, invalidValue("cannot assign %T to %s", v, t)
	}
}

// wrapFloat truncates f toward zero and reduces it modulo 2^64, the same
// conversion a typed-array store performs. NaN and infinities become 0.
func wrapFloat(f float64) uint64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), twoTo64f)
	if m < 0 {
		return -uint64(-m)
	}
	return uint64(m)
}

// parseInteger parses s as an integer and returns its low 64 bits.
//
// Recognized forms, checked in order: "0x"/"-0x" hexadecimal, leading-zero
// octal ("017", "-017"), then base (10 when base is 0). A blank string is
// zero. Values outside 64 bits wrap.
func parseInteger(s string, base int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if base == 0 {
		base = 10
	}
	if base < 2 || base > 36 {
		return 0, invalidValue("invalid base %d", base)
	}

	body, neg := s, false
	switch body[0] {
	case '-':
		body, neg = body[1:], true
	case '+':
		body = body[1:]
	}

	switch {
	case len(body) > 2 && (body[:2] == "0x" || body[:2] == "0X") && allDigits(body[2:], 16):
		body, base = body[2:], 16
	case len(body) > 1 && body[0] == '0' && allDigits(body[1:], 8):
		body, base = body[1:], 8
	}

	if body == "" || !allDigits(body, base) {
		return 0, invalidValue("invalid integer %q", s)
	}
	n, ok := new(big.Int).SetString(body, base)
	if !ok {
		return 0, invalidValue("invalid integer %q", s)
	}
	if neg {
		n.Neg(n)
	}
	return n.And(n, mask64).Uint64(), nil
}

func allDigits(s string, base int) bool {
	for i := 0; i < len(s); i++ {
		if digitVal(s[i]) >= base {
			return false
		}
	}
	return true
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 36
	}
}

// parseFloat parses s; out-of-range input saturates to ±Inf rather than
// failing.
func parseFloat(s string, bitSize int) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, invalidValue("invalid number %q", s)
	}
	return f, nil
}

// rawPayload copies b into dst, failing when the lengths differ.
func rawPayload(dst, b []byte, t Type) error {
	if len(b) != len(dst) {
		return &SizeError{Type: t, Got: len(b), Want: len(dst)}
	}
	copy(dst, b)
	return nil
}

// widen converts a numeric slice into int64 elements, truncating floats.
func widen(v any) ([]int64, bool) {
	switch x := v.(type) {
	case []int8:
		return widenInts(x), true
	case []int16:
		return widenInts(x), true
	case []int32:
		return widenInts(x), true
	case []int64:
		return widenInts(x), true
	case []int:
		return widenInts(x), true
	case []uint16:
		return widenInts(x), true
	case []uint32:
		return widenInts(x), true
	case []uint64:
		return widenInts(x), true
	case []float32:
		out := make([]int64, len(x))
		for i, f := range x {
			out[i] = int64(wrapFloat(float64(f)))
		}
		return out, true
	case []float64:
		out := make([]int64, len(x))
		for i, f := range x {
			out[i] = int64(wrapFloat(f))
		}
		return out, true
	default:
		return nil, false
	}
}

func widenInts[T integer](s []T) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(v)
	}
	return out
}

func formatBase(v int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return strconv.FormatInt(v, base)
}

func formatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
