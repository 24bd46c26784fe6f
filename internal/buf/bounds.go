// Package buf contains the forward-only byte cursor used by the NBT decoder
// and encoder, plus overflow-safe bounds helpers.
package buf

import (
	"fmt"
	"math"

	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative values, returning ok = false
// when the result would overflow int or either operand is negative.
// This is essential for count * elementSize calculations on untrusted counts.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckListBounds validates that count elements of at least elementSize
// bytes can fit in a buffer of bufLen bytes starting at offset. It returns
// the end offset if valid.
//
// A negative count is corrupt input; a count that cannot fit is
// truncated input. Both are reported as typed errors:
//
//	end, err := buf.CheckListBounds(len(data), off, int(count), 4)
//	if err != nil {
//	    return fmt.Errorf("int array: %w", err)
//	}
func CheckListBounds(bufLen, offset, count, elementSize int) (int, error) {
	if offset < 0 {
		return 0, corrupt(fmt.Sprintf("negative offset: %d", offset))
	}
	if count < 0 {
		return 0, &types.Error{
			Kind: types.ErrKindCorrupt,
			Msg:  fmt.Sprintf("negative count: %d", count),
			Err:  format.ErrNegativeLength,
		}
	}
	if elementSize < 0 {
		return 0, corrupt(fmt.Sprintf("negative element size: %d", elementSize))
	}

	totalSize, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, corrupt(fmt.Sprintf("overflow: count=%d * elemSize=%d", count, elementSize))
	}

	endOffset, ok := AddOverflowSafe(offset, totalSize)
	if !ok {
		return 0, corrupt(fmt.Sprintf("overflow: offset=%d + size=%d", offset, totalSize))
	}

	if endOffset > bufLen {
		return 0, truncated(offset, totalSize, bufLen-offset)
	}

	return endOffset, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

func corrupt(msg string) error {
	return &types.Error{Kind: types.ErrKindCorrupt, Msg: msg}
}

func truncated(off, need, have int) error {
	if have < 0 {
		have = 0
	}
	return &types.Error{
		Kind: types.ErrKindTruncated,
		Msg:  fmt.Sprintf("read of %d bytes at offset %d (%d remaining)", need, off, have),
		Err:  format.ErrTruncated,
	}
}
