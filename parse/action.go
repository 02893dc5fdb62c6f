// Package parse builds the SLR(1) action/goto table from a grammar's
// item-set automaton and drives the shift/reduce parse loop over it.
//
// Grounded on the teacher's parse/slr.go (constructSimpleLRParseTable,
// slrTable.String) for the overall table-construction shape and its use
// of rosed for tabular rendering, and on spec.md §4.5/§4.6 for the exact
// conflict-resolution and parse-loop semantics, which differ from the
// teacher's allowAmbig-always-prefers-shift policy: this package follows
// precedence/associativity resolution exactly as spec.md §4.5 states it.
package parse

import (
	"strconv"

	"github.com/dekarrin/ictiobus/grammar"
)

// ActionKind is the kind of table entry at a (state, symbol) cell.
type ActionKind int

const (
	AShift ActionKind = iota
	AReduce
	AGoto
	AAccept
)

// Action is one cell of the action/goto table (spec.md §3, "Action
// table").
type Action struct {
	Kind ActionKind

	// Shift, Goto
	State int

	// Reduce
	Rule       string
	RHSLen     int
	Maker      grammar.Maker
	Precedence int

	// Accept
	Entry string
}

func (a Action) String() string {
	switch a.Kind {
	case AShift:
		return shiftLabel(a.State)
	case AReduce:
		return reduceLabel(a.Rule, a.RHSLen)
	case AGoto:
		return gotoLabel(a.State)
	case AAccept:
		return "acc"
	default:
		return ""
	}
}

func shiftLabel(s int) string { return "s" + strconv.Itoa(s) }
func gotoLabel(s int) string  { return strconv.Itoa(s) }
func reduceLabel(rule string, n int) string {
	return "r(" + rule + "," + strconv.Itoa(n) + ")"
}
