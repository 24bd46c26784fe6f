package nbt

import "bytes"

// Equal reports whether a and b have the same type, name and value.
// Scalars compare by payload bits, so NaN equals an identical NaN.
// Compound entries compare by key regardless of insertion order; list
// elements compare in order.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Type() == b.Type() && a.Name() == b.Name() && equalPayload(a, b)
}

// EqualValue is Equal without the comparison of the two root names.
func EqualValue(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Type() == b.Type() && equalPayload(a, b)
}

func equalPayload(a, b Tag) bool {
	switch x := a.(type) {
	case *End:
		return true
	case *Byte:
		return x.raw == b.(*Byte).raw
	case *Short:
		return x.raw == b.(*Short).raw
	case *Int:
		return x.raw == b.(*Int).raw
	case *Long:
		return x.raw == b.(*Long).raw
	case *Float:
		return x.raw == b.(*Float).raw
	case *Double:
		return x.raw == b.(*Double).raw
	case *ByteArray:
		return bytes.Equal(x.data, b.(*ByteArray).data)
	case *String:
		return bytes.Equal(x.raw, b.(*String).raw)
	case *IntArray:
		return bytes.Equal(x.data, b.(*IntArray).data)
	case *List:
		y := b.(*List)
		if x.elem != y.elem || len(x.items) != len(y.items) {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case *Compound:
		y := b.(*Compound)
		if len(x.keys) != len(y.keys) {
			return false
		}
		for k, v := range x.m {
			w, ok := y.m[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
