package buf

import (
	"errors"
	"math"
	"testing"

	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(1<<20, 4); !ok || p != 4<<20 {
		t.Fatalf("MulOverflowSafe=%d,%v", p, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow")
	}
	if _, ok := MulOverflowSafe(-1, 4); ok {
		t.Fatalf("negative operands must be rejected")
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("zero count should be fine")
	}
}

func TestCheckListBounds(t *testing.T) {
	end, err := CheckListBounds(20, 4, 4, 4)
	if err != nil || end != 20 {
		t.Fatalf("CheckListBounds=%d,%v want 20,nil", end, err)
	}

	_, err = CheckListBounds(20, 4, 5, 4)
	if !errors.Is(err, types.ErrTruncated) {
		t.Fatalf("expected truncated error, got %v", err)
	}

	_, err = CheckListBounds(20, 0, -1, 4)
	if !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("expected corrupt error for negative count, got %v", err)
	}

	_, err = CheckListBounds(20, 0, math.MaxInt, 8)
	if !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("expected overflow error, got %v", err)
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}
