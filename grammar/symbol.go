// Package grammar holds the context-free grammar model: symbols,
// productions with their semantic-action "makers", rules, and the
// FIRST/FOLLOW fixed-point computation the automaton builder consults.
//
// Grounded on the teacher's grammar/item.go (LR0Item's NonTerminal/Left/
// Right split) for the overall shape, and on original_source/plare's
// Rule/Maker classes (plare/parser/rule.py, plare/parser.py) for the
// semantic-action and precedence-inference behavior, since the teacher's
// own grammar.go (defining Grammar itself) was not present in the
// retrieved pack.
package grammar

import "github.com/dekarrin/ictiobus/token"

// Symbol is either a terminal kind or a nonterminal name, per spec.md §3.
// Nonterminals are referenced by name and resolved through a Grammar's
// rule map at use, rather than by direct pointer, to avoid object cycles
// (spec.md §9, "Cyclic rule references").
type Symbol struct {
	terminal bool
	class    token.Class
	name     string
}

// Term wraps a terminal kind as a grammar symbol.
func Term(c token.Class) Symbol {
	return Symbol{terminal: true, class: c}
}

// NonTerm wraps a nonterminal name as a grammar symbol.
func NonTerm(name string) Symbol {
	return Symbol{name: name}
}

// IsTerminal reports whether s is a terminal kind rather than a
// nonterminal name.
func (s Symbol) IsTerminal() bool { return s.terminal }

// Class returns the terminal kind s wraps. Only meaningful when
// IsTerminal is true.
func (s Symbol) Class() token.Class { return s.class }

// Name returns the symbol's identity for lookup and display purposes: a
// terminal's class ID, or a nonterminal's declared name.
func (s Symbol) Name() string {
	if s.terminal {
		return s.class.ID()
	}
	return s.name
}

// Equal reports whether s and o denote the same symbol.
func (s Symbol) Equal(o Symbol) bool {
	if s.terminal != o.terminal {
		return false
	}
	if s.terminal {
		return s.class.Equal(o.class)
	}
	return s.name == o.name
}

func (s Symbol) String() string {
	if s.terminal {
		return s.class.Human()
	}
	return s.name
}
