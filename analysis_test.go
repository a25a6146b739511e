package blast

import (
	"math/big"
	"testing"
)

func TestAnalysisInputsExcludesAssignedVar(t *testing.T) {
	v := NewVariables(3)
	if err := v.bits[1].Assign(1); err != nil {
		t.Fatal(err)
	}
	xored, err := v.Xor(FromBigInt(big.NewInt(0), 3))
	if err != nil {
		t.Fatal(err)
	}
	a := NewAnalysis(xored)
	inputs := a.Inputs()
	if len(inputs) != 2 {
		t.Fatalf("got %d free inputs, want 2 (assigned var excluded)", len(inputs))
	}
}

func TestAnalysisComputeRestoresVars(t *testing.T) {
	v := NewVariables(2)
	out, err := v.Xor(FromBigInt(big.NewInt(0b11), 2))
	if err != nil {
		t.Fatal(err)
	}
	a := NewAnalysis(out)
	inputs := a.Inputs()
	for i := 0; i < 4; i++ {
		if _, err := a.Compute(big.NewInt(int64(i))); err != nil {
			t.Fatal(err)
		}
	}
	for _, r := range inputs {
		if r.IsAssigned() {
			t.Fatalf("input %d left assigned after Compute", r.ID())
		}
	}
}

func TestInputsSizeZeroWhenNoFreeInputs(t *testing.T) {
	out := FromBigInt(big.NewInt(0b101), 3)
	a := NewAnalysis(out)
	if got := a.InputsLen(); got != 0 {
		t.Fatalf("InputsLen() = %d, want 0", got)
	}
	if got := a.InputsSize(); got.Sign() != 0 {
		t.Fatalf("InputsSize() = %s, want 0", got)
	}
}

func TestInputsSizeIndividualizedSkipsConstantPositions(t *testing.T) {
	vars := NewVariables(2).Bits()
	g, err := Gate([]uint8{0, 1, 1, 0}, vars[0], vars[1])
	if err != nil {
		t.Fatal(err)
	}
	out := FromBits(g, Const(0))
	a := NewAnalysis(out)
	got := a.InputsSizeIndividualized()
	want := big.NewInt(4) // position 0 has 2 free inputs (size 4); position 1 has none (size 0)
	if got.Cmp(want) != 0 {
		t.Fatalf("InputsSizeIndividualized() = %s, want %s", got, want)
	}
}

func TestOutputsDedupsByIdentity(t *testing.T) {
	v := NewVar()
	out := FromBits(v, v)
	a := NewAnalysis(out)
	outputs := a.Outputs()
	if len(outputs) != 1 {
		t.Fatalf("got %d distinct outputs, want 1 (same node repeated)", len(outputs))
	}
}

func TestComputeTableFullAdder(t *testing.T) {
	a, b, carry := NewVar(), NewVar(), NewVar()
	sum, _, err := add3(a, b, carry)
	if err != nil {
		t.Fatal(err)
	}
	an := NewAnalysis(FromBits(sum))
	table, err := an.ComputeTable()
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 1, 1, 0, 1, 0, 0, 1}
	if len(table) != len(want) {
		t.Fatalf("got table of length %d, want %d", len(table), len(want))
	}
	for i := range want {
		if table[i] != want[i] {
			t.Fatalf("table[%d]=%d, want %d", i, table[i], want[i])
		}
	}
}
