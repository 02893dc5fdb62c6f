package grammar

import "fmt"

// MakerKind distinguishes the two flavors spec.md §3/§9 names: a
// pass-through of one RHS value, or a constructor applied to several.
// Grounded on original_source/plare/parser.py's Maker/TMaker/IDMaker
// split, modeled here as a sum type rather than reflection over
// callables per spec.md §9 "Makers as closures over constructors".
type MakerKind int

const (
	MakerIdentity MakerKind = iota
	MakerConstruct
)

// Constructor builds a semantic value from the values popped for a
// reduction's selected RHS indices, in the order arg_indices names them.
type Constructor func(args []any) any

// Maker is the semantic action carried by a Production.
type Maker struct {
	kind    MakerKind
	index   int
	indices []int
	ctor    Constructor
}

// Identity returns a Maker that passes the RHS value at index through
// unchanged. It is accepted only on a production with exactly one RHS
// symbol and index 0; any other shape is rejected when the production is
// added, so a pass-through from a longer RHS uses Construct instead.
func Identity(index int) Maker {
	return Maker{kind: MakerIdentity, index: index}
}

// Construct returns a Maker that gathers the RHS values at indices, in
// that order, and calls ctor with them.
func Construct(ctor Constructor, indices ...int) Maker {
	idxCopy := make([]int, len(indices))
	copy(idxCopy, indices)
	return Maker{kind: MakerConstruct, indices: idxCopy, ctor: ctor}
}

// Kind reports which variant m is.
func (m Maker) Kind() MakerKind { return m.kind }

// validate checks that m is well-formed for a production of the given
// RHS length, per spec.md §4.7: "malformed production (e.g. None maker
// with |args| != 1...)".
func (m Maker) validate(rhsLen int) error {
	switch m.kind {
	case MakerIdentity:
		if rhsLen != 1 {
			return fmt.Errorf("identity maker requires exactly 1 RHS symbol, production has %d", rhsLen)
		}
		if m.index != 0 {
			return fmt.Errorf("identity maker index %d out of range for RHS of length %d", m.index, rhsLen)
		}
	case MakerConstruct:
		for _, i := range m.indices {
			if i < 0 || i >= rhsLen {
				return fmt.Errorf("constructor maker index %d out of range for RHS of length %d", i, rhsLen)
			}
		}
	}
	return nil
}

// Apply builds the semantic value for a reduction, given the full slice
// of values popped for the production's RHS, in RHS order.
func (m Maker) Apply(popped []any) any {
	switch m.kind {
	case MakerIdentity:
		return popped[m.index]
	case MakerConstruct:
		args := make([]any, len(m.indices))
		for i, idx := range m.indices {
			args[i] = popped[idx]
		}
		return m.ctor(args)
	default:
		return nil
	}
}
