package grammar

import "github.com/dekarrin/ictiobus/token"

// ComputeFirstFollow derives FIRST and FOLLOW for every declared rule and
// for the augmented start of each name in entries (spec.md §4.2, §4.3),
// storing the results on each Rule for later retrieval via First/Follow.
//
// Spec.md §4.2 describes FIRST as a single-rule recursive walk that
// defers the remaining suffix of a production when it recurses into its
// own nonterminal, then replays the deferred suffixes once nullability is
// known. That recursion-with-deferral technique exists to let a
// single-pass recursive implementation terminate on self-recursive rules.
// Here FIRST and FOLLOW are instead computed as one shared least-fixpoint
// iteration over every rule at once (repeat until no set grows), which
// reaches the identical least set for both self- and mutually-recursive
// rules without needing the deferral bookkeeping, and without a recursion
// depth tied to grammar size.
func (g *Grammar) ComputeFirstFollow(entries []string) error {
	for _, name := range g.order {
		r := g.rules[name]
		r.first = make(map[string]token.Class)
		r.follow = make(map[string]token.Class)
	}

	starts := make([]*Rule, 0, len(entries))
	for _, e := range entries {
		s, err := g.Start(e)
		if err != nil {
			return err
		}
		s.first = make(map[string]token.Class)
		s.follow = map[string]token.Class{token.EOS.ID(): token.EOS}
		starts = append(starts, s)
	}

	g.fixFirst()
	// S' -> S has FIRST(S') = FIRST(S).
	for _, s := range starts {
		for id, c := range g.rules[s.Entry].first {
			s.first[id] = c
		}
	}
	g.fixFollow(starts)
	return nil
}

// firstOfSymbol returns the FIRST set of a single symbol: a singleton set
// for a terminal, or the rule's current FIRST set for a nonterminal.
func (g *Grammar) firstOfSymbol(s Symbol) map[string]token.Class {
	if s.IsTerminal() {
		return map[string]token.Class{s.Class().ID(): s.Class()}
	}
	if r, ok := g.rules[s.Name()]; ok {
		return r.first
	}
	return nil
}

// firstOfSequence computes FIRST of a symbol sequence per spec.md §4.2:
// walk left to right, absorbing each nullable nonterminal's FIRST minus
// EPSILON, stopping at the first terminal or non-nullable nonterminal;
// EPSILON is added only if every symbol was nullable (or the sequence is
// empty).
func (g *Grammar) firstOfSequence(seq []Symbol) map[string]token.Class {
	out := make(map[string]token.Class)
	for _, s := range seq {
		sf := g.firstOfSymbol(s)
		nullable := false
		for id, c := range sf {
			if id == token.Epsilon.ID() {
				nullable = true
				continue
			}
			out[id] = c
		}
		if !nullable {
			return out
		}
	}
	out[token.Epsilon.ID()] = token.Epsilon
	return out
}

func (g *Grammar) fixFirst() {
	for {
		changed := false
		for _, name := range g.order {
			r := g.rules[name]
			for _, p := range r.Productions {
				var add map[string]token.Class
				if p.IsEpsilon() {
					add = map[string]token.Class{token.Epsilon.ID(): token.Epsilon}
				} else {
					add = g.firstOfSequence(p.Symbols)
				}
				for id, c := range add {
					if _, ok := r.first[id]; !ok {
						r.first[id] = c
						changed = true
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}

// fixFollow computes FOLLOW to a fixpoint per spec.md §4.3, seeded with
// {EOS} on every augmented start.
func (g *Grammar) fixFollow(starts []*Rule) {
	allRules := make([]*Rule, 0, len(g.order)+len(starts))
	for _, name := range g.order {
		allRules = append(allRules, g.rules[name])
	}
	allRules = append(allRules, starts...)

	for {
		changed := false
		for _, b := range allRules {
			for _, p := range b.Productions {
				for i, sym := range p.Symbols {
					if sym.IsTerminal() {
						continue
					}
					a, ok := g.rules[sym.Name()]
					if !ok {
						continue
					}
					beta := p.Symbols[i+1:]
					betaFirst := g.firstOfSequence(beta)
					for id, c := range betaFirst {
						if id == token.Epsilon.ID() {
							continue
						}
						if _, ok := a.follow[id]; !ok {
							a.follow[id] = c
							changed = true
						}
					}

					_, betaNullable := betaFirst[token.Epsilon.ID()]
					if (len(beta) == 0 || betaNullable) && b != a {
						for id, c := range b.follow {
							if _, ok := a.follow[id]; !ok {
								a.follow[id] = c
								changed = true
							}
						}
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}
