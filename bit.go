package blast

import "fmt"

// kind tags the three node flavours a Bit can be.
type kind uint8

const (
	kindConst kind = iota
	kindVar
	kindGate
)

func (k kind) String() string {
	switch k {
	case kindConst:
		return "const"
	case kindVar:
		return "var"
	case kindGate:
		return "gate"
	default:
		return "unknown"
	}
}

/*
Bit is a node in a symbolic bit DAG. A *Bit is itself the identity handle
the rest of the package calls a Reference (see reference.go): two distinct
*Bit values are always distinct nodes even when they happen to carry the
same kind, value, table and dependencies, because Gate composition
deliberately allows structurally identical sub-expressions to be built more
than once.

There are three kinds:

  - Const: a fixed 0 or 1 baked permanently into the graph.
  - Var: a free input. An unassigned Var evaluates to nothing — attempting
    to Eval one returns ErrNonConcrete. Var is also used as scratch state
    during Analysis.Compute, which assigns a concrete 0/1 to every free Var
    for the duration of one evaluation and then restores it to unassigned.
  - Gate: a node with 1 to 3 dependencies and a truth table of
    2^len(deps) entries, indexed most-significant-dependency-first (see
    gateIndex).
*/
type Bit struct {
	id    uint64
	kind  kind
	value int8 // Const: 0 or 1. Var: -1 unassigned, else the assigned 0/1.
	table []uint8
	deps  []*Bit
}

var nextID uint64

func allocID() uint64 {
	nextID++
	return nextID
}

// zero and one are the two process-wide Const singletons: every Const(0)
// and Const(1) call returns the same node rather than allocating a fresh
// one, so the graph never carries more than two constant leaves no matter
// how many times either value is referenced.
var (
	zero = &Bit{id: allocID(), kind: kindConst, value: 0}
	one  = &Bit{id: allocID(), kind: kindConst, value: 1}
)

// Const returns the canonical node permanently fixed to value, which must
// be 0 or 1.
func Const(value int) *Bit {
	switch value {
	case 0:
		return zero
	case 1:
		return one
	default:
		panic(fmt.Sprintf("blast: Const value out of range: %d", value))
	}
}

// NewVar returns a new free, unassigned input node.
func NewVar() *Bit {
	return &Bit{id: allocID(), kind: kindVar, value: -1}
}

/*
Gate returns a new node computing table over deps. len(deps) must be 1, 2
or 3, and table must have exactly 2^len(deps) entries of 0 or 1. The table
is indexed by

	idx = sum over k of eval(deps[n-1-k]) * 2^k

i.e. deps[0] is the most significant bit of the index and deps[n-1] the
least significant, matching the big-endian convention the rest of the
package uses for bit-vectors.
*/
func Gate(table []uint8, deps ...*Bit) (*Bit, error) {
	n := len(deps)
	if n < 1 || n > 3 {
		return nil, fmt.Errorf("blast: gate arity %d out of range [1,3]: %w", n, ErrLengthMismatch)
	}
	if len(table) != 1<<uint(n) {
		return nil, fmt.Errorf("blast: gate table length %d, want %d: %w", len(table), 1<<uint(n), ErrLengthMismatch)
	}
	for _, t := range table {
		if t != 0 && t != 1 {
			return nil, fmt.Errorf("blast: gate table entry %d out of range: %w", t, ErrBadAssignment)
		}
	}
	tbl := make([]uint8, len(table))
	copy(tbl, table)
	d := make([]*Bit, n)
	copy(d, deps)
	return &Bit{id: allocID(), kind: kindGate, table: tbl, deps: d}, nil
}

// ID returns the node's identity tag. Tags are assigned in allocation
// order starting at 1 and are stable only within a single run.
func (b *Bit) ID() uint64 { return b.id }

// IsConst reports whether b is a Const node.
func (b *Bit) IsConst() bool { return b.kind == kindConst }

// IsVar reports whether b is a Var node.
func (b *Bit) IsVar() bool { return b.kind == kindVar }

// IsGate reports whether b is a Gate node.
func (b *Bit) IsGate() bool { return b.kind == kindGate }

// IsAssigned reports whether b currently evaluates to a concrete value:
// true for Const, for a Var currently holding 0 or 1, and for a Gate whose
// full fan-in is concrete.
func (b *Bit) IsAssigned() bool {
	_, err := Eval(b)
	return err == nil
}

// Assign gives a free Var node a concrete 0 or 1 value. It is an error to
// assign a Const or a Gate.
func (b *Bit) Assign(value int) error {
	if b.kind != kindVar {
		return fmt.Errorf("blast: Assign on a non-Var node: %w", ErrBadAssignment)
	}
	if value != 0 && value != 1 {
		return fmt.Errorf("blast: Assign value %d out of range: %w", value, ErrBadAssignment)
	}
	b.value = int8(value)
	return nil
}

// Unassign resets a Var node to free (⊥). It is a no-op on Const and Gate.
func (b *Bit) Unassign() {
	if b.kind == kindVar {
		b.value = -1
	}
}

// Deps returns the node's dependencies. It is nil for Const and Var.
func (b *Bit) Deps() []*Bit {
	if len(b.deps) == 0 {
		return nil
	}
	out := make([]*Bit, len(b.deps))
	copy(out, b.deps)
	return out
}

// Table returns a copy of the node's truth table. It is nil for Const and
// Var.
func (b *Bit) Table() []uint8 {
	if len(b.table) == 0 {
		return nil
	}
	out := make([]uint8, len(b.table))
	copy(out, b.table)
	return out
}

// gateIndex assembles the truth-table row index for vals, the evaluated
// dependency values in dependency order (vals[0] is the most significant).
func gateIndex(vals []int8) int {
	n := len(vals)
	idx := 0
	for k := 0; k < n; k++ {
		idx |= int(vals[n-1-k]) << uint(k)
	}
	return idx
}

// Eval evaluates b, recursively evaluating its dependencies and memoizing
// shared sub-expressions so a DAG with heavy sharing is visited once per
// node rather than once per path. It returns ErrNonConcrete the first time
// it reaches an unassigned Var, and ErrUnknownNodeKind if it encounters a
// node of a kind it does not recognise (only possible via a corrupted
// deserialization).
func Eval(b *Bit) (int8, error) {
	return evalMemo(b, make(map[*Bit]int8))
}

func evalMemo(b *Bit, memo map[*Bit]int8) (int8, error) {
	if v, ok := memo[b]; ok {
		return v, nil
	}
	var v int8
	switch b.kind {
	case kindConst:
		v = b.value
	case kindVar:
		if b.value < 0 {
			return 0, fmt.Errorf("blast: unassigned var %d: %w", b.id, ErrNonConcrete)
		}
		v = b.value
	case kindGate:
		vals := make([]int8, len(b.deps))
		for i, d := range b.deps {
			dv, err := evalMemo(d, memo)
			if err != nil {
				return 0, err
			}
			vals[i] = dv
		}
		v = int8(b.table[gateIndex(vals)])
	default:
		return 0, fmt.Errorf("blast: node %d: %w", b.id, ErrUnknownNodeKind)
	}
	memo[b] = v
	return v, nil
}

// add3 builds the sum and carry-out Gate nodes of a full adder over a, b
// and carryIn: sum = a xor b xor carryIn, carry = majority(a,b,carryIn).
func add3(a, bb, carryIn *Bit) (sum, carryOut *Bit, err error) {
	sum, err = Gate([]uint8{0, 1, 1, 0, 1, 0, 0, 1}, a, bb, carryIn)
	if err != nil {
		return nil, nil, err
	}
	carryOut, err = Gate([]uint8{0, 0, 0, 1, 0, 1, 1, 1}, a, bb, carryIn)
	if err != nil {
		return nil, nil, err
	}
	return sum, carryOut, nil
}

// The four ordering gates below use the LT/LE/GT/GE truth tables with a as
// the high index bit and b as the low one, so each one's output, read as a
// relation between a and b, is the mirror of its name.

// Lt returns the LT gate over a and b (table 0,0,1,0): it is 1 only for
// a=1, b=0, i.e. it computes a > b.
func Lt(a, b *Bit) (*Bit, error) { return Gate([]uint8{0, 0, 1, 0}, a, b) }

// Le returns the LE gate over a and b (table 1,0,1,1): it is 0 only for
// a=0, b=1, i.e. it computes a >= b.
func Le(a, b *Bit) (*Bit, error) { return Gate([]uint8{1, 0, 1, 1}, a, b) }

// Gt returns the GT gate over a and b (table 0,1,0,0): it is 1 only for
// a=0, b=1, i.e. it computes a < b.
func Gt(a, b *Bit) (*Bit, error) { return Gate([]uint8{0, 1, 0, 0}, a, b) }

// Ge returns the GE gate over a and b (table 1,1,0,1): it is 0 only for
// a=1, b=0, i.e. it computes a <= b.
func Ge(a, b *Bit) (*Bit, error) { return Gate([]uint8{1, 1, 0, 1}, a, b) }

// Eq returns a Gate computing whether a == b, treating both as single bits.
func Eq(a, b *Bit) (*Bit, error) { return Gate([]uint8{1, 0, 0, 1}, a, b) }

// Ne returns a Gate computing whether a != b, treating both as single bits.
// This is the same table as Xor; it is named separately so callers that
// think in comparison terms don't have to reach for a bitwise-op name.
func Ne(a, b *Bit) (*Bit, error) { return Gate([]uint8{0, 1, 1, 0}, a, b) }

/*
Inputs returns every Reference reachable from b's own fan-in, deduplicated
by identity: empty for a Const, {b} for a Var (assigned or not — unlike
Analysis.Inputs, this does not filter by assignment state), and the union
over deps for a Gate. It is the per-handle counterpart to Analysis.Inputs,
which additionally restricts to Vars that are currently unassigned.
*/
func Inputs(b *Bit) []Reference {
	seen := make(map[*Bit]bool)
	var refs []Reference
	var walk func(n *Bit)
	walk = func(n *Bit) {
		if seen[n] {
			return
		}
		seen[n] = true
		switch n.kind {
		case kindVar:
			refs = append(refs, n)
		case kindGate:
			for _, d := range n.deps {
				walk(d)
			}
		}
	}
	walk(b)
	return NewRefSet(refs...).Sorted()
}
