package blast

import (
	"errors"
	"testing"
)

func TestGateArityBounds(t *testing.T) {
	a := Const(0)
	if _, err := Gate([]uint8{0, 1}, a, a, a, a); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
	if _, err := Gate([]uint8{0, 1, 1}, a, a); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch for short table, got %v", err)
	}
}

func TestEvalUnassignedVar(t *testing.T) {
	v := NewVar()
	if _, err := Eval(v); !errors.Is(err, ErrNonConcrete) {
		t.Fatalf("want ErrNonConcrete, got %v", err)
	}
	if err := v.Assign(1); err != nil {
		t.Fatal(err)
	}
	got, err := Eval(v)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	v.Unassign()
	if _, err := Eval(v); !errors.Is(err, ErrNonConcrete) {
		t.Fatalf("want ErrNonConcrete after unassign, got %v", err)
	}
}

func TestGateTruthTable(t *testing.T) {
	a, b := Const(1), Const(0)
	g, err := Gate([]uint8{0, 1, 1, 0}, a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Eval(g)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("1 xor 0 = %d, want 1", got)
	}
}

func TestEvalMemoizesSharedSubexpression(t *testing.T) {
	a := NewVar()
	if err := a.Assign(1); err != nil {
		t.Fatal(err)
	}
	shared, err := Gate([]uint8{1, 0}, a)
	if err != nil {
		t.Fatal(err)
	}
	top, err := Gate([]uint8{0, 1, 1, 0}, shared, shared)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Eval(top)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Fatalf("x xor x = %d, want 0", got)
	}
}

func TestConstReturnsSharedSingleton(t *testing.T) {
	if Const(0) != Const(0) {
		t.Fatal("Const(0) allocated a new node on a second call")
	}
	if Const(1) != Const(1) {
		t.Fatal("Const(1) allocated a new node on a second call")
	}
	if Const(0) == Const(1) {
		t.Fatal("Const(0) and Const(1) share a node")
	}
}

func TestComparisonGates(t *testing.T) {
	for _, c := range []struct {
		name string
		fn   func(a, b *Bit) (*Bit, error)
		want [4]uint8 // indexed by 2*a+b over {0,1}x{0,1}
	}{
		{"Lt", Lt, [4]uint8{0, 0, 1, 0}},
		{"Le", Le, [4]uint8{1, 0, 1, 1}},
		{"Gt", Gt, [4]uint8{0, 1, 0, 0}},
		{"Ge", Ge, [4]uint8{1, 1, 0, 1}},
		{"Eq", Eq, [4]uint8{1, 0, 0, 1}},
		{"Ne", Ne, [4]uint8{0, 1, 1, 0}},
	} {
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				g, err := c.fn(Const(a), Const(b))
				if err != nil {
					t.Fatalf("%s(%d,%d): %v", c.name, a, b, err)
				}
				got, err := Eval(g)
				if err != nil {
					t.Fatal(err)
				}
				want := c.want[2*a+b]
				if uint8(got) != want {
					t.Fatalf("%s(%d,%d) = %d, want %d", c.name, a, b, got, want)
				}
			}
		}
	}
}

func TestInputsWalksFanInRegardlessOfAssignment(t *testing.T) {
	a, b := NewVar(), NewVar()
	if err := a.Assign(1); err != nil {
		t.Fatal(err)
	}
	g, err := Gate([]uint8{0, 1, 1, 0}, a, b)
	if err != nil {
		t.Fatal(err)
	}
	ins := Inputs(g)
	if len(ins) != 2 {
		t.Fatalf("got %d inputs, want 2 (assigned var still counts)", len(ins))
	}

	if ins := Inputs(Const(0)); len(ins) != 0 {
		t.Fatalf("Inputs(Const) = %v, want empty", ins)
	}
	if ins := Inputs(b); len(ins) != 1 || ins[0] != Reference(b) {
		t.Fatalf("Inputs(Var) = %v, want {b}", ins)
	}
}

func TestAdd3(t *testing.T) {
	for _, c := range []struct{ a, b, carry, sum, carryOut int }{
		{0, 0, 0, 0, 0},
		{1, 0, 0, 1, 0},
		{1, 1, 0, 0, 1},
		{1, 1, 1, 1, 1},
	} {
		sum, carryOut, err := add3(Const(c.a), Const(c.b), Const(c.carry))
		if err != nil {
			t.Fatal(err)
		}
		gotSum, err := Eval(sum)
		if err != nil {
			t.Fatal(err)
		}
		gotCarry, err := Eval(carryOut)
		if err != nil {
			t.Fatal(err)
		}
		if int(gotSum) != c.sum || int(gotCarry) != c.carryOut {
			t.Fatalf("add3(%d,%d,%d) = (%d,%d), want (%d,%d)",
				c.a, c.b, c.carry, gotSum, gotCarry, c.sum, c.carryOut)
		}
	}
}
