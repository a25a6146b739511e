package blast

import (
	"errors"
	"testing"
)

func evalAssigned(t *testing.T, n *Bit, assignments map[*Bit]int) int8 {
	t.Helper()
	for b, v := range assignments {
		if b.IsVar() {
			if err := b.Assign(v); err != nil {
				t.Fatal(err)
			}
		}
	}
	got, err := Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	for b := range assignments {
		if b.IsVar() {
			b.Unassign()
		}
	}
	return got
}

// TestOptimizeEliminatesInertInputs builds a 4-input truth table that only
// depends on its first two inputs and checks Optimize collapses it down to
// a 2-essential-input node equivalent to AND(a,b).
func TestOptimizeEliminatesInertInputs(t *testing.T) {
	a, b, c, d := NewVar(), NewVar(), NewVar(), NewVar()
	table := make([]uint8, 16)
	for idx := 0; idx < 16; idx++ {
		av := (idx >> 3) & 1
		bv := (idx >> 2) & 1
		table[idx] = uint8(av & bv)
	}
	n, err := Optimize([]Reference{a, b, c, d}, table)
	if err != nil {
		t.Fatal(err)
	}
	if n.IsGate() && len(n.Deps()) > 2 {
		t.Fatalf("optimize left %d deps, want at most 2 essential inputs", len(n.Deps()))
	}
	for av := 0; av < 2; av++ {
		for bv := 0; bv < 2; bv++ {
			got := evalAssigned(t, n, map[*Bit]int{a: av, b: bv, c: 0, d: 1})
			want := int8(av & bv)
			if got != want {
				t.Fatalf("a=%d b=%d: got %d, want %d", av, bv, got, want)
			}
		}
	}
}

func TestOptimizeCollapsesToConstant(t *testing.T) {
	a, b := NewVar(), NewVar()
	table := []uint8{1, 1, 1, 1}
	n, err := Optimize([]Reference{a, b}, table)
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsConst() {
		t.Fatalf("expected a Const, got kind %v", n.kind)
	}
	got, err := Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestOptimizeTooManyEssentialInputs(t *testing.T) {
	ins := []Reference{NewVar(), NewVar(), NewVar(), NewVar()}
	table := make([]uint8, 16)
	for idx := range table {
		// 4-input parity: every input is essential, none is inert.
		p := 0
		for b := idx; b != 0; b >>= 1 {
			p ^= b & 1
		}
		table[idx] = uint8(p)
	}
	if _, err := Optimize(ins, table); !errors.Is(err, ErrTooManyInputs) {
		t.Fatalf("want ErrTooManyInputs, got %v", err)
	}
}

func TestOptimizeNodeOnGate(t *testing.T) {
	a, b, c := NewVar(), NewVar(), NewVar()
	table := make([]uint8, 8)
	for idx := 0; idx < 8; idx++ {
		av := (idx >> 2) & 1
		bv := (idx >> 1) & 1
		table[idx] = uint8(av ^ bv) // ignores c entirely
	}
	g, err := Gate(table, a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	opt, err := OptimizeNode(g)
	if err != nil {
		t.Fatal(err)
	}
	if !opt.IsGate() || len(opt.Deps()) != 2 {
		t.Fatalf("expected a 2-input gate, got kind=%v deps=%d", opt.kind, len(opt.Deps()))
	}
	for av := 0; av < 2; av++ {
		for bv := 0; bv < 2; bv++ {
			got := evalAssigned(t, opt, map[*Bit]int{a: av, b: bv})
			want := int8(av ^ bv)
			if got != want {
				t.Fatalf("a=%d b=%d: got %d, want %d", av, bv, got, want)
			}
		}
	}
}

func TestOptimizeNodeIdempotent(t *testing.T) {
	a, b := NewVar(), NewVar()
	g, err := Gate([]uint8{0, 1, 1, 0}, a, b)
	if err != nil {
		t.Fatal(err)
	}
	once, err := OptimizeNode(g)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := OptimizeNode(once)
	if err != nil {
		t.Fatal(err)
	}
	if once.kind != twice.kind || len(once.Deps()) != len(twice.Deps()) {
		t.Fatalf("optimize is not idempotent: %v/%d vs %v/%d",
			once.kind, len(once.Deps()), twice.kind, len(twice.Deps()))
	}
}

func TestOptimizeNodeOnConstAndVarIsNoop(t *testing.T) {
	c := Const(1)
	if n, err := OptimizeNode(c); err != nil || n != c {
		t.Fatalf("OptimizeNode on Const should return it unchanged, got %v, %v", n, err)
	}
	v := NewVar()
	if n, err := OptimizeNode(v); err != nil || n != v {
		t.Fatalf("OptimizeNode on Var should return it unchanged, got %v, %v", n, err)
	}
}
