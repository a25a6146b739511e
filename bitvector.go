package blast

import (
	"fmt"
	"math/big"
)

/*
BitVector is a fixed-length, big-endian sequence of Bit references: index 0
is the most significant bit, index Len()-1 the least significant. It is the
unit the rest of the package's consumers (sha256gate, report) operate on
instead of individual Bit nodes.
*/
type BitVector struct {
	bits []*Bit
}

// Len returns the number of bits in the vector.
func (v *BitVector) Len() int { return len(v.bits) }

// NewVariables returns a fresh bit-vector of n newly allocated, unassigned
// Var nodes.
func NewVariables(n int) *BitVector {
	bits := make([]*Bit, n)
	for i := range bits {
		bits[i] = NewVar()
	}
	return &BitVector{bits: bits}
}

// FromBits wraps an existing sequence of nodes as a bit-vector. The slice
// is copied so later mutation of bits by the caller does not alias the
// vector's own storage.
func FromBits(bits ...*Bit) *BitVector {
	cp := make([]*Bit, len(bits))
	copy(cp, bits)
	return &BitVector{bits: cp}
}

// FromBigInt returns a length-bit vector of Const nodes holding the
// two's-complement-free binary representation of v, truncated or
// zero-extended to length bits.
func FromBigInt(v *big.Int, length int) *BitVector {
	bits := make([]*Bit, length)
	for i := 0; i < length; i++ {
		bitPos := length - 1 - i
		bits[i] = Const(int(v.Bit(bitPos)))
	}
	return &BitVector{bits: bits}
}

// FromUint64 is a convenience wrapper around FromBigInt for word-sized
// constants.
func FromUint64(v uint64, length int) *BitVector {
	return FromBigInt(new(big.Int).SetUint64(v), length)
}

// Bit returns the node at position i.
func (v *BitVector) Bit(i int) (*Bit, error) {
	if i < 0 || i >= len(v.bits) {
		return nil, fmt.Errorf("blast: bit index %d out of range [0,%d): %w", i, len(v.bits), ErrBadSliceType)
	}
	return v.bits[i], nil
}

// Slice returns an independent view of v[start:end). The returned vector
// shares the same underlying Bit nodes but has its own backing slice, so
// later AssignX calls on either vector never alias the other's storage —
// matching how a Python slice of this library's original bitvector type
// returns a genuinely new list rather than a view into the original.
func (v *BitVector) Slice(start, end int) (*BitVector, error) {
	if start < 0 || end > len(v.bits) || start > end {
		return nil, fmt.Errorf("blast: slice [%d:%d) out of range [0,%d]: %w", start, end, len(v.bits), ErrBadSliceType)
	}
	cp := make([]*Bit, end-start)
	copy(cp, v.bits[start:end])
	return &BitVector{bits: cp}, nil
}

// Copy returns an independent copy of v.
func (v *BitVector) Copy() *BitVector {
	cp := make([]*Bit, len(v.bits))
	copy(cp, v.bits)
	return &BitVector{bits: cp}
}

// AssignBit overwrites the node at position pos with b.
func (v *BitVector) AssignBit(pos int, b *Bit) error {
	if pos < 0 || pos >= len(v.bits) {
		return fmt.Errorf("blast: assign position %d out of range [0,%d): %w", pos, len(v.bits), ErrBadSliceType)
	}
	v.bits[pos] = b
	return nil
}

// AssignVector overwrites v[start:start+src.Len()) with src's nodes.
func (v *BitVector) AssignVector(start int, src *BitVector) error {
	end := start + src.Len()
	if start < 0 || end > len(v.bits) {
		return fmt.Errorf("blast: assign range [%d:%d) out of range [0,%d): %w", start, end, len(v.bits), ErrBadSliceType)
	}
	copy(v.bits[start:end], src.bits)
	return nil
}

/*
AssignInt writes the low `length` bits of src into v[start:start+length),
placing the source's least significant bit at position start+length-1 and
its most significant bit (of that window) at position start. Bits of src
above position length-1 are discarded.
*/
func (v *BitVector) AssignInt(start, length int, src *big.Int) error {
	end := start + length
	if start < 0 || length < 0 || end > len(v.bits) {
		return fmt.Errorf("blast: assign range [%d:%d) out of range [0,%d): %w", start, end, len(v.bits), ErrBadSliceType)
	}
	for i := 0; i < length; i++ {
		pos := start + length - 1 - i
		v.bits[pos] = Const(int(src.Bit(i)))
	}
	return nil
}

// IsConcrete reports whether every bit in v[start:start+length) currently
// evaluates to a concrete 0 or 1.
func (v *BitVector) IsConcrete(start, length int) bool {
	end := start + length
	if start < 0 || end > len(v.bits) {
		return false
	}
	for i := start; i < end; i++ {
		if !v.bits[i].IsAssigned() {
			return false
		}
	}
	return true
}

// ToBigInt evaluates every bit in v and accumulates them most-significant
// first into a *big.Int. It returns ErrNonConcrete if any bit is not
// currently concrete.
func (v *BitVector) ToBigInt() (*big.Int, error) {
	value := new(big.Int)
	for i, b := range v.bits {
		bv, err := Eval(b)
		if err != nil {
			return nil, fmt.Errorf("blast: bit %d: %w", i, err)
		}
		value.Lsh(value, 1)
		if bv != 0 {
			value.SetBit(value, 0, 1)
		}
	}
	return value, nil
}

// Concat returns a new vector formed by laying vectors end to end in the
// order given.
func Concat(vectors ...*BitVector) *BitVector {
	n := 0
	for _, v := range vectors {
		n += v.Len()
	}
	out := make([]*Bit, 0, n)
	for _, v := range vectors {
		out = append(out, v.bits...)
	}
	return &BitVector{bits: out}
}

// Bits returns a copy of the vector's underlying node sequence.
func (v *BitVector) Bits() []*Bit {
	out := make([]*Bit, len(v.bits))
	copy(out, v.bits)
	return out
}
