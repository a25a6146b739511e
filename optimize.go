package blast

import "fmt"

/*
Optimize takes an explicit (inputs, table) pair and repeatedly projects out
any "inert" input: one whose value never changes
the table's output for any fixed setting of the remaining inputs. What is
left after every inert input has been removed is the node's essential
input set. If that set is empty the table has collapsed to a constant and
Optimize returns a Const; otherwise it returns a Gate over the essential
inputs, which must number at most 3 (a Gate node's invariant), or
ErrTooManyInputs.

The table is indexed the way a Gate's table is: inputs[0] is the most
significant bit of the row index. Analysis.ComputeTable uses the opposite
order (Inputs()[0] is the least significant bit), so its table lines up
with Optimize's convention only when paired with Inputs() reversed.

This is the general, arbitrary-arity form of the optimizer; OptimizeNode
below is the specialised form that works directly off an existing Gate's
own (already ≤3) dependencies and table without going through Analysis at
all.
*/
func Optimize(inputs []Reference, table []uint8) (*Bit, error) {
	n := len(inputs)
	if len(table) != 1<<uint(n) {
		return nil, fmt.Errorf("blast: optimize table length %d, want %d: %w", len(table), 1<<uint(n), ErrLengthMismatch)
	}
	ins := append([]Reference(nil), inputs...)
	tab := append([]uint8(nil), table...)

	for {
		j := firstInertInput(ins, tab)
		if j < 0 {
			break
		}
		k := len(ins) - 1 - j
		tab = projectOutBit(tab, k)
		ins = append(append([]Reference{}, ins[:j]...), ins[j+1:]...)
	}

	if len(ins) == 0 {
		return Const(int(tab[0])), nil
	}
	if isConstantTable(tab) {
		return Const(int(tab[0])), nil
	}
	if len(ins) > 3 {
		return nil, fmt.Errorf("blast: %d essential inputs remain after elimination: %w", len(ins), ErrTooManyInputs)
	}
	return Gate(tab, ins...)
}

// OptimizeNode simplifies an existing Gate node by running the same
// inert-input elimination directly over its own dependencies and table,
// without building or consulting an Analysis. Const and Var nodes are
// already maximally simple and are returned unchanged.
func OptimizeNode(n *Bit) (*Bit, error) {
	if n.kind != kindGate {
		return n, nil
	}
	return Optimize(n.deps, n.table)
}

// firstInertInput returns the position (in ins/table-dimension order, not
// raw table-index order) of the first input whose value never changes the
// table's result, or -1 if every input is essential.
func firstInertInput(ins []Reference, tab []uint8) int {
	for j := range ins {
		k := len(ins) - 1 - j
		if isInert(tab, k) {
			return j
		}
	}
	return -1
}

// isInert reports whether table bit-position k of the enumeration index
// never changes the table's value: for every index with bit k clear, the
// entry at that index and the entry at the index with bit k set agree.
func isInert(tab []uint8, k int) bool {
	mask := 1 << uint(k)
	for idx := 0; idx < len(tab); idx++ {
		if idx&mask == 0 && tab[idx] != tab[idx|mask] {
			return false
		}
	}
	return true
}

// projectOutBit halves tab by dropping bit position k of the index,
// keeping the k=0 half (equal to the k=1 half by isInert's precondition).
func projectOutBit(tab []uint8, k int) []uint8 {
	newLen := len(tab) / 2
	out := make([]uint8, newLen)
	lowMask := (1 << uint(k)) - 1
	for idxP := 0; idxP < newLen; idxP++ {
		low := idxP & lowMask
		high := idxP >> uint(k)
		idx := (high << uint(k+1)) | low
		out[idxP] = tab[idx]
	}
	return out
}

func isConstantTable(tab []uint8) bool {
	for _, t := range tab[1:] {
		if t != tab[0] {
			return false
		}
	}
	return true
}
