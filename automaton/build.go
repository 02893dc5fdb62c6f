package automaton

import (
	"fmt"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/internal/collection"
)

// Edge is a labeled transition between two states. At most one outgoing
// edge per (state, symbol) exists in a built Collection (spec.md §3).
type Edge struct {
	From   int
	Symbol grammar.Symbol
	To     int
}

// Collection is the canonical collection of item sets produced by the
// worklist construction in spec.md §4.4: every state is reachable from
// some start state, each carries a unique id, and edges record the
// transitions Goto discovered between them.
type Collection struct {
	States []*State
	Edges  []Edge
	Starts map[string]int // entry nonterminal name -> start state id
}

// Closure computes the closure of an item set per spec.md §4.4: for each
// item with the dot before a nonterminal B, add every production of B
// with the dot at 0, repeating until no new items appear. Worklist-based
// so self- and mutually-recursive nonterminals terminate.
func Closure(g *grammar.Grammar, items []Item) *State {
	s := newState(nil)
	work := collection.NewStack[Item]()
	for _, it := range items {
		if s.add(it) {
			work.Push(it)
		}
	}

	for !work.Empty() {
		it := work.Pop()
		sym, ok := it.NextSymbol()
		if !ok || sym.IsTerminal() {
			continue
		}
		r, ok := g.Rule(sym.Name())
		if !ok {
			continue
		}
		for _, p := range r.Productions {
			newItem := Item{
				Left:       r.NonTerminal,
				RHS:        p.Symbols,
				Dot:        0,
				Maker:      p.Maker,
				Precedence: p.Precedence(),
				Augmented:  r.Augmented,
			}
			if s.add(newItem) {
				work.Push(newItem)
			}
		}
	}
	return s
}

// Goto computes goto(I, X) per spec.md §4.4: advance the dot in every
// item of I whose next symbol is X, then close the result.
func Goto(g *grammar.Grammar, i *State, x grammar.Symbol) *State {
	var advanced []Item
	for _, it := range i.Items() {
		sym, ok := it.NextSymbol()
		if !ok || !sym.Equal(x) {
			continue
		}
		advanced = append(advanced, it.Advance())
	}
	if len(advanced) == 0 {
		return newState(nil)
	}
	return Closure(g, advanced)
}

// Build constructs the canonical collection of item sets for g, with one
// start state per name in entries, via the worklist algorithm of
// spec.md §4.4.
func Build(g *grammar.Grammar, entries []string) (*Collection, error) {
	col := &Collection{Starts: make(map[string]int)}
	byCore := make(map[string]int)

	addState := func(s *State) int {
		if id, ok := byCore[s.coreKey()]; ok {
			return id
		}
		s.ID = len(col.States)
		col.States = append(col.States, s)
		byCore[s.coreKey()] = s.ID
		return s.ID
	}

	work := collection.NewStack[int]()

	for _, entry := range entries {
		start, err := g.Start(entry)
		if err != nil {
			return nil, err
		}
		startItem := Item{
			Left:      start.NonTerminal,
			RHS:       start.Productions[0].Symbols,
			Dot:       0,
			Maker:     start.Productions[0].Maker,
			Augmented: true,
		}
		s0 := Closure(g, []Item{startItem})
		id := addState(s0)
		col.Starts[entry] = id
		work.Push(id)
	}

	seen := collection.NewSet[int]()
	for !work.Empty() {
		id := work.Pop()
		if !seen.Add(id) {
			continue
		}
		from := col.States[id]

		symbols := collection.NewSet[string]()
		symOf := make(map[string]grammar.Symbol)
		for _, it := range from.Items() {
			sym, ok := it.NextSymbol()
			if !ok {
				continue
			}
			if symbols.Add(sym.Name()) {
				symOf[sym.Name()] = sym
			}
		}

		for _, name := range symbols.Elements() {
			sym := symOf[name]
			to := Goto(g, from, sym)
			if to.Len() == 0 {
				continue
			}
			toID := addState(to)
			col.Edges = append(col.Edges, Edge{From: id, Symbol: sym, To: toID})
			if !seen.Has(toID) {
				work.Push(toID)
			}
		}
	}

	if err := validateEdges(col); err != nil {
		return nil, err
	}
	return col, nil
}

// validateEdges enforces the "at most one outgoing edge per (state,
// symbol)" invariant from spec.md §3; a violation is a builder bug, not a
// user-facing grammar error, since Goto is deterministic by construction.
func validateEdges(col *Collection) error {
	seen := make(map[string]int)
	for _, e := range col.Edges {
		k := fmt.Sprintf("%d\x00%s", e.From, e.Symbol.Name())
		if prev, ok := seen[k]; ok && prev != e.To {
			return &icterrors.GrammarError{
				State: e.From,
				Cause: fmt.Sprintf("state %d has two outgoing edges on %q", e.From, e.Symbol.Name()),
			}
		}
		seen[k] = e.To
	}
	return nil
}
