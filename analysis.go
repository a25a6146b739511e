package blast

import (
	"fmt"
	"math/big"
)

/*
Analysis exposes the free-input structure of a bit-vector expression and
lets a caller exhaustively evaluate it. An Analysis is built once over an
output vector; the DAG it walks is whatever was reachable from that vector
at construction time, so building new Gate nodes downstream of it after
the fact does not retroactively change what Inputs/Compute see.
*/
type Analysis struct {
	outputs *BitVector
}

// NewAnalysis returns an Analysis over outputs.
func NewAnalysis(outputs *BitVector) *Analysis {
	return &Analysis{outputs: outputs.Copy()}
}

// Outputs returns the set of distinct top-level bit handles of the analysed
// vector: one entry per position, with duplicates collapsed by identity —
// a vector built by repeating the same node across several positions (as
// a shift's zero fill with the Const(0) singleton, or a deliberate
// broadcast, does) reports that node once.
func (a *Analysis) Outputs() []Reference {
	set := NewRefSet(a.outputs.bits...)
	return set.Sorted()
}

// Inputs returns every free (unassigned) Var reachable from the analysed
// outputs, deduplicated and ordered by identity tag. A Var currently
// holding a concrete value is not free and is excluded — it behaves, for
// the purposes of this Analysis, like a Const. This is the vector-level,
// assignment-filtered counterpart to the package-level Inputs(b), which
// reports every Var in b's fan-in regardless of assignment state.
func (a *Analysis) Inputs() []Reference {
	set := NewRefSet()
	for _, b := range a.outputs.bits {
		for _, r := range Inputs(b) {
			if r.value < 0 {
				set.Add(r)
			}
		}
	}
	return set.Sorted()
}

// InputsLen returns the number of free inputs. It is 0 by convention when
// the analysed outputs have no free Var in their fan-in.
func (a *Analysis) InputsLen() int { return len(a.Inputs()) }

// InputsSize returns 2^InputsLen(), the number of rows in the full
// enumeration of this analysis's inputs. It is returned as a *big.Int
// since InputsLen() can be large enough to overflow a machine int when
// exponentiated. By convention it is 0, not 1, when there are no free
// inputs: the "no inputs" case does not evaluate, it has nothing to sweep.
func (a *Analysis) InputsSize() *big.Int {
	n := a.InputsLen()
	if n == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

// Individualize splits a multi-bit analysis into one single-output
// Analysis per output position, each still sharing the same underlying
// DAG. This is the basis for per-position statistics such as how many of
// the free inputs actually influence a given output bit.
func (a *Analysis) Individualize() []*Analysis {
	out := make([]*Analysis, a.outputs.Len())
	for i := range a.outputs.bits {
		out[i] = NewAnalysis(&BitVector{bits: a.outputs.bits[i : i+1]})
	}
	return out
}

// InputsLenIndividualized returns, for each output position, the number of
// free inputs in that single bit's own fan-in — which is typically much
// smaller than InputsLen() for a wide vector built from independent
// per-word sub-expressions.
func (a *Analysis) InputsLenIndividualized() []int {
	parts := a.Individualize()
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i] = p.InputsLen()
	}
	return out
}

// InputsSizeIndividualized returns the sum, over every output position, of
// 2^k for that position's own free-input count k — skipping positions with
// k == 0 under the same "no inputs, nothing to enumerate" convention
// InputsSize applies at the whole-vector level. It is the total row count a
// caller would visit if it swept every output bit's own Analysis in turn,
// rather than the combined vector all at once.
func (a *Analysis) InputsSizeIndividualized() *big.Int {
	total := new(big.Int)
	for _, p := range a.Individualize() {
		total.Add(total, p.InputsSize())
	}
	return total
}

/*
Compute evaluates the analysed outputs for one row of the free-input
enumeration identified by index: bit i of index is assigned to the i-th
entry of Inputs() (in identity-tag order) for the duration of the call.
Every Var touched this way is restored to unassigned before Compute
returns, whether it returns a result or an error — Compute never leaves
the graph's free Vars in a half-assigned state.
*/
func (a *Analysis) Compute(index *big.Int) (result *BitVector, err error) {
	inputs := a.Inputs()
	defer func() {
		for _, r := range inputs {
			r.Unassign()
		}
	}()
	for i, r := range inputs {
		if e := r.Assign(int(index.Bit(i))); e != nil {
			return nil, e
		}
	}
	out := make([]*Bit, a.outputs.Len())
	memo := make(map[*Bit]int8)
	for i, b := range a.outputs.bits {
		v, e := evalMemo(b, memo)
		if e != nil {
			return nil, fmt.Errorf("blast: compute output %d: %w", i, e)
		}
		out[i] = Const(int(v))
	}
	return &BitVector{bits: out}, nil
}

// ComputeTable exhaustively evaluates a is a single-bit (Len()==1) output
// and returns the full truth table over its inputs: table[idx] is the
// output bit for enumeration index idx, ordered exactly as Compute
// interprets index. It returns ErrLengthMismatch if a has more than one
// output bit — call Individualize first.
func (a *Analysis) ComputeTable() ([]uint8, error) {
	if a.outputs.Len() != 1 {
		return nil, fmt.Errorf("blast: ComputeTable needs a single output bit, got %d: %w", a.outputs.Len(), ErrLengthMismatch)
	}
	if a.InputsLen() == 0 {
		row, err := a.Compute(new(big.Int))
		if err != nil {
			return nil, err
		}
		v, err := row.ToBigInt()
		if err != nil {
			return nil, err
		}
		return []uint8{uint8(v.Int64())}, nil
	}
	size := a.InputsSize()
	table := make([]uint8, size.Int64())
	idx := new(big.Int)
	for i := range table {
		idx.SetInt64(int64(i))
		row, err := a.Compute(idx)
		if err != nil {
			return nil, err
		}
		v, err := row.ToBigInt()
		if err != nil {
			return nil, err
		}
		table[i] = uint8(v.Int64())
	}
	return table, nil
}
