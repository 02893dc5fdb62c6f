package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/token"
)

// Table is the built, immutable SLR(1) action/goto table: for each
// state, a map of terminal-kind ID to Shift/Reduce/Accept, and a map of
// nonterminal name to Goto (spec.md §3, "Action table").
type Table struct {
	g       *grammar.Grammar
	col     *automaton.Collection
	actions []map[string]Action // indexed by state id, keyed by terminal ID
	gotos   []map[string]Action // indexed by state id, keyed by nonterminal name
	entries []string
}

// Entries returns the declared entry nonterminals this table was built
// for, in the order passed to Build.
func (t *Table) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// StartState returns the automaton state id that parsing entry begins
// from.
func (t *Table) StartState(entry string) (int, bool) {
	id, ok := t.col.Starts[entry]
	return id, ok
}

// Action returns the table entry for (state, terminal), if any.
func (t *Table) Action(state int, term token.Class) (Action, bool) {
	a, ok := t.actions[state][term.ID()]
	return a, ok
}

// Goto returns the table entry for (state, nonterminal), if any.
func (t *Table) Goto(state int, nonterminal string) (Action, bool) {
	a, ok := t.gotos[state][nonterminal]
	return a, ok
}

// Build constructs the SLR(1) table for g with one start state per name
// in entries, per spec.md §4.4-§4.5. g.Validate and
// g.ComputeFirstFollow(entries) must have already succeeded.
func Build(g *grammar.Grammar, entries []string) (*Table, error) {
	col, err := automaton.Build(g, entries)
	if err != nil {
		return nil, err
	}

	t := &Table{
		g:       g,
		col:     col,
		actions: make([]map[string]Action, len(col.States)),
		gotos:   make([]map[string]Action, len(col.States)),
		entries: append([]string(nil), entries...),
	}
	for i := range col.States {
		t.actions[i] = make(map[string]Action)
		t.gotos[i] = make(map[string]Action)
	}

	for _, e := range col.Edges {
		if e.Symbol.IsTerminal() {
			logDebug("state %d: shift %q -> state %d", e.From, e.Symbol.Name(), e.To)
			t.actions[e.From][e.Symbol.Name()] = Action{Kind: AShift, State: e.To}
		} else {
			t.gotos[e.From][e.Symbol.Name()] = Action{Kind: AGoto, State: e.To}
		}
	}

	for _, s := range col.States {
		for _, it := range s.Items() {
			if !it.Complete() {
				continue
			}
			if it.Augmented {
				logDebug("state %d: accept on %q", s.ID, it.Left)
				t.actions[s.ID][token.EOS.ID()] = Action{Kind: AAccept, Entry: it.Left}
				continue
			}

			r, ok := g.Rule(it.Left)
			if !ok {
				return nil, &icterrors.GrammarError{State: s.ID, Cause: fmt.Sprintf("completed item references unknown rule %q", it.Left)}
			}
			reduce := Action{
				Kind: AReduce, Rule: it.Left, RHSLen: len(it.RHS),
				Maker: it.Maker, Precedence: it.Precedence,
			}

			ids := make([]string, 0, len(r.Follow()))
			for id := range r.Follow() {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				term := r.Follow()[id]
				if err := t.setReduce(s.ID, term, reduce); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// setReduce installs a Reduce action at (state, term), resolving against
// any existing Shift or Reduce per spec.md §4.5's conflict-resolution
// rules.
func (t *Table) setReduce(state int, term token.Class, reduce Action) error {
	existing, ok := t.actions[state][term.ID()]
	if !ok {
		t.actions[state][term.ID()] = reduce
		return nil
	}

	switch existing.Kind {
	case AShift:
		rp, ap := reduce.Precedence, term.Precedence()
		switch {
		case rp > ap:
			logWarn("state %d, %q: shift/reduce resolved to reduce (rule precedence %d > terminal precedence %d)", state, term.ID(), rp, ap)
			t.actions[state][term.ID()] = reduce
		case rp < ap:
			logWarn("state %d, %q: shift/reduce resolved to shift (rule precedence %d < terminal precedence %d)", state, term.ID(), rp, ap)
		default:
			if term.Associativity() == token.Right {
				logWarn("state %d, %q: shift/reduce tie at precedence %d resolved to shift (right-associative)", state, term.ID(), rp)
			} else {
				logWarn("state %d, %q: shift/reduce tie at precedence %d resolved to reduce (left-associative)", state, term.ID(), rp)
				t.actions[state][term.ID()] = reduce
			}
		}
		return nil
	case AReduce:
		if reduce.Precedence > existing.Precedence {
			logWarn("state %d, %q: reduce/reduce resolved in favor of %q (higher precedence)", state, term.ID(), reduce.Rule)
			t.actions[state][term.ID()] = reduce
			return nil
		}
		if reduce.Precedence < existing.Precedence {
			logWarn("state %d, %q: reduce/reduce resolved in favor of %q (higher precedence)", state, term.ID(), existing.Rule)
			return nil
		}
		return &icterrors.GrammarError{
			State: state,
			Rules: []string{existing.Rule, reduce.Rule},
			Cause: fmt.Sprintf("unresolvable reduce/reduce conflict on %q between %q and %q", term.ID(), existing.Rule, reduce.Rule),
		}
	case AAccept:
		logWarn("state %d, %q: reduce on augmented accept state ignored (accept wins)", state, term.ID())
		return nil
	default:
		return &icterrors.GrammarError{
			State: state,
			Cause: fmt.Sprintf("internal error: reduce action would overwrite a %v action at (%d, %q)", existing.Kind, state, term.ID()),
		}
	}
}
