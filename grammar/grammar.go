package grammar

import (
	"fmt"
	"sort"

	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/token"
)

// Grammar is an incrementally-built, map-based collection of rules and
// terminals, built up via AddTerm/AddRule on a Grammar returned by New;
// the zero value has nil maps and is not usable. It is mutable until
// a parser is built from it, then treated as immutable (spec.md §3,
// "Lifecycles").
type Grammar struct {
	terms     map[string]token.Class
	termOrder []string

	rules map[string]*Rule
	order []string

	starts map[string]*Rule
}

// New returns an empty Grammar ready for AddTerm/AddRule calls.
func New() *Grammar {
	return &Grammar{
		terms:  make(map[string]token.Class),
		rules:  make(map[string]*Rule),
		starts: make(map[string]*Rule),
	}
}

// AddTerm declares a terminal kind usable in productions added afterward.
func (g *Grammar) AddTerm(class token.Class) {
	id := class.ID()
	if _, exists := g.terms[id]; !exists {
		g.termOrder = append(g.termOrder, id)
	}
	g.terms[id] = class
}

// Term looks up a previously-declared terminal kind by ID.
func (g *Grammar) Term(id string) (token.Class, bool) {
	c, ok := g.terms[id]
	return c, ok
}

// AddRule appends one production to nonterminal's alternatives, declaring
// the nonterminal if this is its first production.
func (g *Grammar) AddRule(nonterminal string, symbols []Symbol, maker Maker) error {
	p, err := newProduction(symbols, maker)
	if err != nil {
		return &icterrors.GrammarError{Cause: fmt.Sprintf("rule %q: %v", nonterminal, err)}
	}

	r, exists := g.rules[nonterminal]
	if !exists {
		r = &Rule{NonTerminal: nonterminal}
		g.rules[nonterminal] = r
		g.order = append(g.order, nonterminal)
	}
	r.AddProduction(p)
	return nil
}

// Rule looks up a declared nonterminal's rule.
func (g *Grammar) Rule(name string) (*Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// Nonterminals returns every declared (non-augmented) nonterminal name,
// in declaration order.
func (g *Grammar) Nonterminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Terminals returns every declared terminal kind, in declaration order.
func (g *Grammar) Terminals() []token.Class {
	out := make([]token.Class, len(g.termOrder))
	for i, id := range g.termOrder {
		out[i] = g.terms[id]
	}
	return out
}

// Start returns the augmented start rule S' -> S for entry, building and
// caching it on first request. entry must already be a declared
// nonterminal (spec.md §3, "Augmented start").
func (g *Grammar) Start(entry string) (*Rule, error) {
	if s, ok := g.starts[entry]; ok {
		return s, nil
	}
	if _, ok := g.rules[entry]; !ok {
		return nil, &icterrors.GrammarError{Cause: fmt.Sprintf("unknown entry nonterminal %q", entry)}
	}
	p, _ := newProduction([]Symbol{NonTerm(entry)}, Identity(0))
	s := &Rule{
		NonTerminal: entry,
		Augmented:   true,
		Entry:       entry,
		Productions: []Production{p},
	}
	g.starts[entry] = s
	return s, nil
}

// Validate checks the structural invariants spec.md §4.7 calls a
// "malformed production": at least one rule, at least one terminal, and
// every nonterminal referenced in any production's RHS is itself
// declared. Mirrors the teacher's grammar_test.go Test_Grammar_Validate
// expectations and plare.parser.Rule's "Unknown symbol" TypeError.
func (g *Grammar) Validate() error {
	if len(g.rules) == 0 {
		return &icterrors.GrammarError{Cause: "grammar has no rules"}
	}
	if len(g.terms) == 0 {
		return &icterrors.GrammarError{Cause: "grammar declares no terminals"}
	}

	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r := g.rules[name]
		for _, p := range r.Productions {
			for _, sym := range p.Symbols {
				if sym.IsTerminal() {
					continue
				}
				if _, ok := g.rules[sym.Name()]; !ok {
					return &icterrors.GrammarError{
						Cause: fmt.Sprintf("rule %q references unknown nonterminal %q", name, sym.Name()),
					}
				}
			}
		}
	}
	return nil
}
