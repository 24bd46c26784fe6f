package printer

import (
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
)

// SNBT returns the stringified form of t's value, e.g.
//
//	{id:42,tags:["a","b"],pos:[I;1,2,3]}
//
// Scalars carry their type suffix (b, s, L, f, d; none for int). Keys that
// are not plain identifiers are quoted. The root name is not included.
func SNBT(t nbt.Tag) string {
	var sb strings.Builder
	appendSNBT(&sb, t)
	return sb.String()
}

func appendSNBT(sb *strings.Builder, t nbt.Tag) {
	switch v := t.(type) {
	case *nbt.Byte:
		sb.WriteString(strconv.Itoa(int(v.Value())))
		sb.WriteByte('b')
	case *nbt.Short:
		sb.WriteString(strconv.Itoa(int(v.Value())))
		sb.WriteByte('s')
	case *nbt.Int:
		sb.WriteString(strconv.Itoa(int(v.Value())))
	case *nbt.Long:
		sb.WriteString(strconv.FormatInt(v.Value(), 10))
		sb.WriteByte('L')
	case *nbt.Float:
		sb.WriteString(snbtFloat(float64(v.Value()), 32))
		sb.WriteByte('f')
	case *nbt.Double:
		sb.WriteString(snbtFloat(v.Value(), 64))
		sb.WriteByte('d')
	case *nbt.String:
		sb.WriteString(quoteSNBT(v.Value()))
	case *nbt.ByteArray:
		sb.WriteString("[B;")
		for i, b := range v.Values() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(b)))
			sb.WriteByte('b')
		}
		sb.WriteByte(']')
	case *nbt.IntArray:
		sb.WriteString("[I;")
		for i, n := range v.Values() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(n)))
		}
		sb.WriteByte(']')
	case *nbt.List:
		sb.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				sb.WriteByte(',')
			}
			appendSNBT(sb, item)
		}
		sb.WriteByte(']')
	case *nbt.Compound:
		sb.WriteByte('{')
		for i, e := range v.Entries() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if isBareKey(e.Key) {
				sb.WriteString(e.Key)
			} else {
				sb.WriteString(quoteSNBT(e.Key))
			}
			sb.WriteByte(':')
			appendSNBT(sb, e.Value)
		}
		sb.WriteByte('}')
	}
}

func snbtFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

func quoteSNBT(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '-', c == '.', c == '+':
		default:
			return false
		}
	}
	return true
}
