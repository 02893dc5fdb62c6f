package grammar

// Production is one alternative right-hand side for a nonterminal: an
// ordered sequence of symbols, the maker that builds a semantic value
// when it is reduced, and a precedence derived from its terminals.
type Production struct {
	Symbols    []Symbol
	Maker      Maker
	precedence int
}

// newProduction validates maker against symbols and derives precedence
// per spec.md §3/§9: "the precedence of the first terminal with positive
// precedence, else the first with negative precedence, else 0" — checked
// in two passes rather than one so a later positive always wins over an
// earlier negative, exactly as stated.
func newProduction(symbols []Symbol, maker Maker) (Production, error) {
	if err := maker.validate(len(symbols)); err != nil {
		return Production{}, err
	}

	prec := 0
	found := false
	for _, s := range symbols {
		if s.IsTerminal() && s.Class().Precedence() > 0 {
			prec = s.Class().Precedence()
			found = true
			break
		}
	}
	if !found {
		for _, s := range symbols {
			if s.IsTerminal() && s.Class().Precedence() < 0 {
				prec = s.Class().Precedence()
				found = true
				break
			}
		}
	}
	_ = found

	return Production{Symbols: symbols, Maker: maker, precedence: prec}, nil
}

// Precedence returns the production's derived precedence.
func (p Production) Precedence() int { return p.precedence }

// Len returns the number of RHS symbols.
func (p Production) Len() int { return len(p.Symbols) }

// IsEpsilon reports whether p has an empty RHS.
func (p Production) IsEpsilon() bool { return len(p.Symbols) == 0 }
