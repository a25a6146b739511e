package sha256gate

import (
	"fmt"
	"math/big"

	blast "github.com/mathrgo/blast"
)

const blockSize = 512

/*
initWords builds the 64-word message schedule for one 512-bit block:
words 0..15 are the block itself, and for i in 16..63,

	w[i] = gamma1(w[i-2]) + w[i-7] + gamma0(w[i-15]) + w[i-16]  (mod 2^32)
*/
func initWords(block *blast.BitVector) ([]*blast.BitVector, error) {
	if block.Len() != blockSize {
		return nil, fmt.Errorf("sha256gate: block must be %d bits, got %d: %w", blockSize, block.Len(), blast.ErrLengthMismatch)
	}
	w := make([]*blast.BitVector, 64)
	for i := 0; i < 16; i++ {
		word, err := wordSlice(block, i)
		if err != nil {
			return nil, err
		}
		w[i] = word
	}
	for i := 16; i < 64; i++ {
		g1, err := Gamma1(w[i-2])
		if err != nil {
			return nil, err
		}
		g0, err := Gamma0(w[i-15])
		if err != nil {
			return nil, err
		}
		word, err := addAll(g1, w[i-7], g0, w[i-16])
		if err != nil {
			return nil, err
		}
		w[i] = word
	}
	return w, nil
}

// compress runs the 64-round SHA-256 compression function over one block,
// updating and returning the running digest h.
func compress(h []*blast.BitVector, block *blast.BitVector) ([]*blast.BitVector, error) {
	w, err := initWords(block)
	if err != nil {
		return nil, err
	}
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		s1, err := Sigma1(e)
		if err != nil {
			return nil, err
		}
		ch, err := Choose(e, f, g)
		if err != nil {
			return nil, err
		}
		t1, err := addAll(hh, s1, ch, kWord(i), w[i])
		if err != nil {
			return nil, err
		}
		s0, err := Sigma0(a)
		if err != nil {
			return nil, err
		}
		maj, err := Majority(a, b, c)
		if err != nil {
			return nil, err
		}
		t2, err := s0.Add(maj)
		if err != nil {
			return nil, err
		}
		newE, err := d.Add(t1)
		if err != nil {
			return nil, err
		}
		newA, err := t1.Add(t2)
		if err != nil {
			return nil, err
		}
		hh, g, f, e, d, c, b, a = g, f, e, newE, c, b, a, newA
	}

	out := make([]*blast.BitVector, 8)
	updated := [8]*blast.BitVector{a, b, c, d, e, f, g, hh}
	for i := range out {
		sum, err := h[i].Add(updated[i])
		if err != nil {
			return nil, err
		}
		out[i] = sum
	}
	return out, nil
}

// pad returns message padded to a whole number of 512-bit blocks: a single
// 1 bit, zero bits until the length is 64 bits short of a multiple of
// 512, and a trailing 64-bit big-endian bit-length of the original
// message.
func pad(message *blast.BitVector) *blast.BitVector {
	msgLen := message.Len()
	total := msgLen + 1 + 64
	padded := ((total + blockSize - 1) / blockSize) * blockSize
	zeroBits := padded - total

	one := blast.FromUint64(1, 1)
	zeros := blast.FromBigInt(big.NewInt(0), zeroBits)
	length := blast.FromBigInt(big.NewInt(int64(msgLen)), 64)
	return blast.Concat(message, one, zeros, length)
}

// Finalize pads message and runs the SHA-256 compression function over
// each resulting 512-bit block, returning the 256-bit digest.
func Finalize(message *blast.BitVector) (*blast.BitVector, error) {
	blocks := pad(message)
	if blocks.Len()%blockSize != 0 {
		return nil, fmt.Errorf("sha256gate: padded message length %d not a multiple of %d: %w", blocks.Len(), blockSize, blast.ErrLengthMismatch)
	}
	h := initialDigest()
	for start := 0; start < blocks.Len(); start += blockSize {
		block, err := blocks.Slice(start, start+blockSize)
		if err != nil {
			return nil, err
		}
		h, err = compress(h, block)
		if err != nil {
			return nil, err
		}
	}
	return blast.Concat(h...), nil
}

// FromASCII is a convenience wrapper turning an ASCII/byte string into the
// big-endian bit-vector Finalize expects.
func FromASCII(s string) *blast.BitVector {
	v := new(big.Int).SetBytes([]byte(s))
	return blast.FromBigInt(v, 8*len(s))
}
