package blast

import (
	"fmt"
	"math/big"
)

func (v *BitVector) checkSameLength(other *BitVector, op string) error {
	if v.Len() != other.Len() {
		return fmt.Errorf("blast: %s length mismatch: %d vs %d: %w", op, v.Len(), other.Len(), ErrLengthMismatch)
	}
	return nil
}

func elementwiseUnary(v *BitVector, table []uint8) (*BitVector, error) {
	out := make([]*Bit, v.Len())
	for i, b := range v.bits {
		g, err := Gate(table, b)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return &BitVector{bits: out}, nil
}

func elementwiseBinary(a, b *BitVector, table []uint8, op string) (*BitVector, error) {
	if err := a.checkSameLength(b, op); err != nil {
		return nil, err
	}
	out := make([]*Bit, a.Len())
	for i := range a.bits {
		g, err := Gate(table, a.bits[i], b.bits[i])
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return &BitVector{bits: out}, nil
}

// Not returns the bitwise complement of v.
func (v *BitVector) Not() (*BitVector, error) {
	return elementwiseUnary(v, []uint8{1, 0})
}

// Xor returns the elementwise exclusive-or of v and other.
func (v *BitVector) Xor(other *BitVector) (*BitVector, error) {
	return elementwiseBinary(v, other, []uint8{0, 1, 1, 0}, "xor")
}

// And returns the elementwise logical and of v and other.
func (v *BitVector) And(other *BitVector) (*BitVector, error) {
	return elementwiseBinary(v, other, []uint8{0, 0, 0, 1}, "and")
}

// Or returns the elementwise logical or of v and other.
func (v *BitVector) Or(other *BitVector) (*BitVector, error) {
	return elementwiseBinary(v, other, []uint8{0, 1, 1, 1}, "or")
}

// mod returns ((a % n) + n) % n for negative-safe positive modulo.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// RotateLeft returns a vector whose bit at position i is v's bit at
// position (i+amount) mod Len(): the vector as a whole rotates left by
// amount positions. No new Gate nodes are created, since rotation just
// relabels existing wires.
func (v *BitVector) RotateLeft(amount int) *BitVector {
	n := v.Len()
	if n == 0 {
		return &BitVector{}
	}
	out := make([]*Bit, n)
	for i := 0; i < n; i++ {
		out[i] = v.bits[mod(i+amount, n)]
	}
	return &BitVector{bits: out}
}

// RotateRight returns a vector rotated right by amount positions.
// RotateRight(amount) is equivalent to RotateLeft(Len()-amount).
func (v *BitVector) RotateRight(amount int) *BitVector {
	n := v.Len()
	if n == 0 {
		return &BitVector{}
	}
	return v.RotateLeft(n - mod(amount, n))
}

func (v *BitVector) validShift(amount int) error {
	if amount < 0 || amount > v.Len() {
		return fmt.Errorf("blast: shift amount %d out of range [0,%d]: %w", amount, v.Len(), ErrBadShift)
	}
	return nil
}

// ShiftLeft returns v rotated left by amount and then has its last amount
// positions (the ones vacated by the rotation) zero-filled with Const(0).
func (v *BitVector) ShiftLeft(amount int) (*BitVector, error) {
	if err := v.validShift(amount); err != nil {
		return nil, err
	}
	out := v.RotateLeft(amount)
	n := out.Len()
	for i := n - amount; i < n; i++ {
		out.bits[i] = Const(0)
	}
	return out, nil
}

// ShiftRight returns v rotated right by amount and then has its first
// amount positions (the ones vacated by the rotation) zero-filled with
// Const(0).
func (v *BitVector) ShiftRight(amount int) (*BitVector, error) {
	if err := v.validShift(amount); err != nil {
		return nil, err
	}
	out := v.RotateRight(amount)
	for i := 0; i < amount; i++ {
		out.bits[i] = Const(0)
	}
	return out, nil
}

/*
Add returns v + other modulo 2^Len(). When both vectors are already fully
concrete it short-circuits through *big.Int arithmetic; otherwise it builds
a ripple-carry chain of add3 full adders starting at the least significant
position (index Len()-1) and working up to the most significant (index 0),
with the initial carry-in fixed to Const(0).
*/
func (v *BitVector) Add(other *BitVector) (*BitVector, error) {
	if err := v.checkSameLength(other, "add"); err != nil {
		return nil, err
	}
	n := v.Len()
	if n == 0 {
		return &BitVector{}, nil
	}
	if v.IsConcrete(0, n) && other.IsConcrete(0, n) {
		a, err := v.ToBigInt()
		if err != nil {
			return nil, err
		}
		b, err := other.ToBigInt()
		if err != nil {
			return nil, err
		}
		sum := new(big.Int).Add(a, b)
		mask := new(big.Int).Lsh(big.NewInt(1), uint(n))
		sum.Mod(sum, mask)
		return FromBigInt(sum, n), nil
	}
	out := make([]*Bit, n)
	carry := Const(0)
	for i := n - 1; i >= 0; i-- {
		sum, carryOut, err := add3(v.bits[i], other.bits[i], carry)
		if err != nil {
			return nil, err
		}
		out[i] = sum
		carry = carryOut
	}
	return &BitVector{bits: out}, nil
}

/*
Sub returns v - other modulo 2^Len(). Both operands must already be fully
concrete — unlike Add there is no symbolic ripple-borrow path, matching the
restriction in the original bit-vector algebra this package supersedes.
*/
func (v *BitVector) Sub(other *BitVector) (*BitVector, error) {
	if err := v.checkSameLength(other, "sub"); err != nil {
		return nil, err
	}
	n := v.Len()
	if !v.IsConcrete(0, n) || !other.IsConcrete(0, n) {
		return nil, fmt.Errorf("blast: sub requires concrete operands: %w", ErrNonConcrete)
	}
	a, err := v.ToBigInt()
	if err != nil {
		return nil, err
	}
	b, err := other.ToBigInt()
	if err != nil {
		return nil, err
	}
	diff := new(big.Int).Sub(a, b)
	if diff.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(n))
		diff.Add(diff, mod)
	}
	return FromBigInt(diff, n), nil
}
