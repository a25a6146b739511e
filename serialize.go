package blast

import (
	"fmt"

	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// bitRecord is one node in a serialized document. Exactly one of Value or
// Gate is set for a Const or a Gate node respectively; both absent means an
// unassigned Var. This mirrors the ambiguity flagged in the format this
// one supersedes: a Var that happens to be concretely assigned at
// serialization time is indistinguishable from a Const, so Serialize
// always treats an assigned Var's current value as a plain Const on the
// wire, and a round trip through Deserialize will hand it back as a Const,
// not a Var.
type bitRecord struct {
	ID           int      `yaml:"id"`
	Value        *int     `yaml:"value,omitempty"`
	Gate         *uint64  `yaml:"gate,omitempty"`
	Dependencies []int    `yaml:"dependencies,omitempty"`
}

type document struct {
	Bits      []bitRecord `yaml:"bits"`
	BitVector []int       `yaml:"bitvector"`
}

// Serialize writes bv as a topologically ordered YAML document: every
// node is assigned an id in depth-first post-order, right after all of its
// dependencies have been assigned theirs, so by the time a
// Gate record appears, every id in its Dependencies list has already been
// written.
func Serialize(bv *BitVector) ([]byte, error) {
	ids := make(map[*Bit]int)
	var order []*Bit

	var walk func(b *Bit)
	walk = func(b *Bit) {
		if _, ok := ids[b]; ok {
			return
		}
		if b.kind == kindGate {
			for _, d := range b.deps {
				walk(d)
			}
		}
		ids[b] = len(order)
		order = append(order, b)
	}
	for _, b := range bv.bits {
		walk(b)
	}

	doc := document{Bits: make([]bitRecord, len(order))}
	for i, b := range order {
		rec := bitRecord{ID: i}
		switch b.kind {
		case kindConst:
			v := int(b.value)
			rec.Value = &v
		case kindVar:
			if b.value >= 0 {
				v := int(b.value)
				rec.Value = &v
			}
		case kindGate:
			g := encodeGateTable(b.table)
			rec.Gate = &g
			rec.Dependencies = make([]int, len(b.deps))
			for j, d := range b.deps {
				rec.Dependencies[j] = ids[d]
			}
		default:
			return nil, fmt.Errorf("blast: node %d: %w", b.id, ErrUnknownNodeKind)
		}
		doc.Bits[i] = rec
	}
	doc.BitVector = make([]int, len(bv.bits))
	for i, b := range bv.bits {
		doc.BitVector[i] = ids[b]
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("blast: marshal document: %w", err)
	}
	return out, nil
}

// Deserialize parses a document written by Serialize (or a hand-written
// document following the same shape) back into a BitVector. Node records
// must appear in topological order: a Gate's Dependencies may only
// reference ids already defined earlier in Bits.
func Deserialize(data []byte) (*BitVector, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("blast: unmarshal document: %w", err)
	}

	nodes := make(map[int]*Bit, len(doc.Bits))
	for _, rec := range doc.Bits {
		if _, dup := nodes[rec.ID]; dup {
			return nil, fmt.Errorf("blast: duplicate id %d: %w", rec.ID, ErrMalformedDocument)
		}
		var n *Bit
		switch {
		case rec.Gate != nil:
			arity := len(rec.Dependencies)
			if arity < 1 || arity > 3 {
				return nil, fmt.Errorf("blast: node %d: gate arity %d out of range: %w", rec.ID, arity, ErrMalformedDocument)
			}
			deps := make([]*Bit, arity)
			for i, depID := range rec.Dependencies {
				d, ok := nodes[depID]
				if !ok {
					return nil, fmt.Errorf("blast: node %d depends on undefined id %d: %w", rec.ID, depID, ErrMalformedDocument)
				}
				deps[i] = d
			}
			table, err := decodeGateTable(*rec.Gate, arity)
			if err != nil {
				return nil, fmt.Errorf("blast: node %d: %w", rec.ID, err)
			}
			n, err = Gate(table, deps...)
			if err != nil {
				return nil, fmt.Errorf("blast: node %d: %w", rec.ID, err)
			}
		case rec.Value != nil:
			if *rec.Value != 0 && *rec.Value != 1 {
				return nil, fmt.Errorf("blast: node %d: value %d out of range: %w", rec.ID, *rec.Value, ErrMalformedDocument)
			}
			n = Const(*rec.Value)
		default:
			n = NewVar()
		}
		nodes[rec.ID] = n
	}

	bits := make([]*Bit, len(doc.BitVector))
	for i, id := range doc.BitVector {
		b, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("blast: bitvector entry %d references undefined id %d: %w", i, id, ErrMalformedDocument)
		}
		bits[i] = b
	}
	if len(doc.Bits) == 0 {
		logrus.WithField("bits", 0).Warn("blast: deserialized a document with no nodes")
	}
	return &BitVector{bits: bits}, nil
}

// encodeGateTable packs table into a single integer with table[0] as the
// most significant bit: value = sum over k of table[k] * 2^(len-1-k).
func encodeGateTable(table []uint8) uint64 {
	var value uint64
	for _, t := range table {
		value <<= 1
		value |= uint64(t)
	}
	return value
}

// decodeGateTable is the inverse of encodeGateTable for a table of
// 2^arity entries.
func decodeGateTable(value uint64, arity int) ([]uint8, error) {
	size := 1 << uint(arity)
	table := make([]uint8, size)
	for k := 0; k < size; k++ {
		table[k] = uint8((value >> uint(size-1-k)) & 1)
	}
	return table, nil
}
