// Package automaton builds the LR(0) item-set automaton: items, states
// (item sets), closure and goto, and the worklist-driven canonical
// collection construction described in spec.md §4.4.
//
// Grounded structurally on the teacher's grammar/item.go LR0Item (the
// NonTerminal/Left/Right-around-the-dot split, and its string-based
// equality), generalized to carry the maker and precedence spec.md §3
// attaches to every item, and to use a dot index directly rather than
// splitting Left/Right into two slices, which avoids reallocating a pair
// of slices on every dot advance.
package automaton

import (
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
)

// Item is an LR(0) item: a production with a dot marking how much of its
// RHS has been recognized. Equality and hashing use (Left, RHS, Dot) only
// (spec.md §3): maker and precedence are functionally determined by the
// production they were read from.
type Item struct {
	Left       string
	RHS        []grammar.Symbol
	Dot        int
	Maker      grammar.Maker
	Precedence int
	Augmented  bool
}

// Complete reports whether the dot has reached the end of the RHS.
func (it Item) Complete() bool { return it.Dot == len(it.RHS) }

// NextSymbol returns the symbol immediately after the dot and true, or
// the zero Symbol and false if the item is complete.
func (it Item) NextSymbol() (grammar.Symbol, bool) {
	if it.Complete() {
		return grammar.Symbol{}, false
	}
	return it.RHS[it.Dot], true
}

// Advance returns the item with its dot moved one position to the right.
// Callers must check NextSymbol first.
func (it Item) Advance() Item {
	it2 := it
	it2.Dot = it.Dot + 1
	return it2
}

// key is the equality/hash identity of an item: (Left, RHS, Dot). Two
// items with different makers or precedence but the same key are the
// same item, per spec.md §3.
func (it Item) key() string {
	var sb strings.Builder
	sb.WriteString(it.Left)
	sb.WriteString(" ->")
	for i, s := range it.RHS {
		if i == it.Dot {
			sb.WriteString(" .")
		}
		sb.WriteByte(' ')
		sb.WriteString(s.Name())
	}
	if it.Dot == len(it.RHS) {
		sb.WriteString(" .")
	}
	return sb.String()
}

func (it Item) String() string {
	return it.key()
}
