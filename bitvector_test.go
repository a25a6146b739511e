package blast

import (
	"fmt"
	"math/big"
	"testing"
)

func ExampleFromBigInt_roundTrip() {
	v := FromBigInt(big.NewInt(0xb6), 8)
	got, err := v.ToBigInt()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%08b\n", got)
	// Output:
	// 10110110
}

func TestSliceIsIndependentCopy(t *testing.T) {
	v := NewVariables(4)
	s, err := v.Slice(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AssignBit(0, Const(1)); err != nil {
		t.Fatal(err)
	}
	if v.bits[1] == s.bits[0] {
		t.Fatalf("slice shares storage with the parent vector")
	}
}

func TestAssignIntPlacesLSBAtLastPosition(t *testing.T) {
	v := NewVariables(8)
	if err := v.AssignInt(2, 4, big.NewInt(0b1011)); err != nil {
		t.Fatal(err)
	}
	got, err := v.Slice(2, 6)
	if err != nil {
		t.Fatal(err)
	}
	n, err := got.ToBigInt()
	if err != nil {
		t.Fatal(err)
	}
	if n.Uint64() != 0b1011 {
		t.Fatalf("got %b, want 1011", n)
	}
}

func TestBitOutOfRange(t *testing.T) {
	v := NewVariables(4)
	if _, err := v.Bit(4); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if _, err := v.Bit(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestIsConcrete(t *testing.T) {
	v := NewVariables(4)
	if v.IsConcrete(0, 4) {
		t.Fatal("fresh variables should not be concrete")
	}
	if err := v.AssignInt(0, 4, big.NewInt(5)); err != nil {
		t.Fatal(err)
	}
	if !v.IsConcrete(0, 4) {
		t.Fatal("assigned constants should be concrete")
	}
}
