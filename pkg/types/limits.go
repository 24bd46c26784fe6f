package types

// ============================================================================
// NBT Limits Constants
// ============================================================================
// The wire format itself bounds names and strings to 65535 bytes and
// counts to int32. Nesting depth is unbounded on the wire; the Java
// reference implementation refuses anything deeper than 512 levels.

const (
	// MaxNameLen is the largest encoded name or string payload in bytes
	// (uint16 length prefix).
	MaxNameLen = 1<<16 - 1

	// MaxDepthDefault matches the nesting limit used by the reference
	// game implementation.
	MaxDepthDefault = 512

	// MaxDepthDeep allows very deep trees for special cases.
	MaxDepthDeep = 4096

	// MaxDepthShallow is a conservative limit for untrusted input.
	MaxDepthShallow = 64

	// MaxArrayLenDefault bounds ByteArray/IntArray/List element counts.
	// The wire format permits up to int32 max.
	MaxArrayLenDefault = 1<<31 - 1

	// MaxArrayLenStrict is a conservative per-array element bound.
	MaxArrayLenStrict = 1 << 20

	// MaxDecompressedDefault bounds the inflated size of a compressed
	// file. Real level.dat and chunk payloads are far below it.
	MaxDecompressedDefault = 1 << 30

	// MaxDecompressedStrict is a conservative inflated-size bound.
	MaxDecompressedStrict = 64 << 20
)

// Limits defines constraints applied while decoding to prevent resource
// exhaustion on hostile input. MaxDepth and MaxArrayLen are enforced by the
// tag decoder; MaxDecompressed is enforced when a file container is
// unwrapped, before any tag is decoded.
type Limits struct {
	// MaxDepth is the maximum nesting of lists and compounds.
	// Zero means unlimited.
	MaxDepth int

	// MaxArrayLen is the maximum element count of a single array or list.
	// Zero means unlimited (bounded only by the remaining input).
	MaxArrayLen int

	// MaxDecompressed is the largest bare stream, in bytes, that a
	// compressed container may inflate to. Zero means unlimited.
	MaxDecompressed int
}

// DefaultLimits returns limits that accept every real-world file.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:        MaxDepthDefault,
		MaxArrayLen:     MaxArrayLenDefault,
		MaxDecompressed: MaxDecompressedDefault,
	}
}

// RelaxedLimits returns more permissive limits for synthetic or
// machine-generated trees. The inflated size is not bounded.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:    MaxDepthDeep,
		MaxArrayLen: MaxArrayLenDefault,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:        MaxDepthShallow,
		MaxArrayLen:     MaxArrayLenStrict,
		MaxDecompressed: MaxDecompressedStrict,
	}
}
