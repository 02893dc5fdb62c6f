package grammar

import "github.com/dekarrin/ictiobus/token"

// Rule is a nonterminal with its ordered alternatives, plus the FIRST and
// FOLLOW sets computed for it once the owning Grammar is built.
//
// Augmented is true for the synthetic S' -> S rules the builder
// generates per spec.md §3 "Augmented start" — one per entry
// nonterminal requested through Grammar.Start; nonterminals never
// requested as an entry get none — so S' participates in FOLLOW/closure
// as a distinct
// identity from the ordinary nonterminal S of the same text (spec.md §9,
// "Augmented start as a subtype").
type Rule struct {
	NonTerminal string
	Productions []Production
	Augmented   bool
	Entry       string

	first  map[string]token.Class
	follow map[string]token.Class
}

// AddProduction appends an alternative to r.
func (r *Rule) AddProduction(p Production) {
	r.Productions = append(r.Productions, p)
}

// First returns the rule's computed FIRST set (terminal classes, plus
// Epsilon if the rule is nullable). Valid only after the owning Grammar's
// ComputeFirstFollow has run.
func (r *Rule) First() map[string]token.Class { return r.first }

// Follow returns the rule's computed FOLLOW set. Valid only after the
// owning Grammar's ComputeFirstFollow has run.
func (r *Rule) Follow() map[string]token.Class { return r.follow }
