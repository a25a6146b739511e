/*
Package sha256gate is a thin SHA-256 consumer built entirely from the
blast bit-vector algebra: every register, message-schedule word and round
function is an ordinary *blast.BitVector, and the only thing this package
adds is the FIPS 180-4 wiring between them. Nothing here reaches into a
*blast.Bit directly.
*/
package sha256gate

import (
	"fmt"

	blast "github.com/mathrgo/blast"
)

const wordSize = 32

// wordSlice returns the position-th 32-bit word of data, where data is a
// bit-vector laid out as consecutive 32-bit words.
func wordSlice(data *blast.BitVector, position int) (*blast.BitVector, error) {
	start := position * wordSize
	return data.Slice(start, start+wordSize)
}

func addAll(first *blast.BitVector, rest ...*blast.BitVector) (*blast.BitVector, error) {
	acc := first
	for _, r := range rest {
		sum, err := acc.Add(r)
		if err != nil {
			return nil, err
		}
		acc = sum
	}
	return acc, nil
}

func xorAll(first *blast.BitVector, rest ...*blast.BitVector) (*blast.BitVector, error) {
	acc := first
	for _, r := range rest {
		sum, err := acc.Xor(r)
		if err != nil {
			return nil, err
		}
		acc = sum
	}
	return acc, nil
}

// Gamma0 is the SHA-256 message-schedule sigma-0 function:
// rotr(x,7) xor rotr(x,18) xor shr(x,3).
func Gamma0(x *blast.BitVector) (*blast.BitVector, error) {
	shr3, err := x.ShiftRight(3)
	if err != nil {
		return nil, fmt.Errorf("sha256gate: gamma0: %w", err)
	}
	return xorAll(x.RotateRight(7), x.RotateRight(18), shr3)
}

// Gamma1 is the SHA-256 message-schedule sigma-1 function:
// rotr(x,17) xor rotr(x,19) xor shr(x,10).
func Gamma1(x *blast.BitVector) (*blast.BitVector, error) {
	shr10, err := x.ShiftRight(10)
	if err != nil {
		return nil, fmt.Errorf("sha256gate: gamma1: %w", err)
	}
	return xorAll(x.RotateRight(17), x.RotateRight(19), shr10)
}

// Sigma0 is the SHA-256 compression big-sigma-0 function:
// rotr(x,2) xor rotr(x,13) xor rotr(x,22).
func Sigma0(x *blast.BitVector) (*blast.BitVector, error) {
	return xorAll(x.RotateRight(2), x.RotateRight(13), x.RotateRight(22))
}

// Sigma1 is the SHA-256 compression big-sigma-1 function:
// rotr(x,6) xor rotr(x,11) xor rotr(x,25).
func Sigma1(x *blast.BitVector) (*blast.BitVector, error) {
	return xorAll(x.RotateRight(6), x.RotateRight(11), x.RotateRight(25))
}

// Choose is the SHA-256 Ch function: z xor (x and (y xor z)).
func Choose(x, y, z *blast.BitVector) (*blast.BitVector, error) {
	yz, err := y.Xor(z)
	if err != nil {
		return nil, fmt.Errorf("sha256gate: choose: %w", err)
	}
	t, err := x.And(yz)
	if err != nil {
		return nil, fmt.Errorf("sha256gate: choose: %w", err)
	}
	return z.Xor(t)
}

// Majority is the SHA-256 Maj function: ((x or y) and z) or (x and y).
func Majority(x, y, z *blast.BitVector) (*blast.BitVector, error) {
	xy, err := x.Or(y)
	if err != nil {
		return nil, fmt.Errorf("sha256gate: majority: %w", err)
	}
	t, err := xy.And(z)
	if err != nil {
		return nil, fmt.Errorf("sha256gate: majority: %w", err)
	}
	xyAnd, err := x.And(y)
	if err != nil {
		return nil, fmt.Errorf("sha256gate: majority: %w", err)
	}
	return t.Or(xyAnd)
}
