// Package ictiobus is a runtime-constructed lexer and SLR(1) parser
// generator: callers supply prioritized regex lexical rules and a
// context-free grammar with inline semantic actions, in process, and get
// back a lazy tokenizer and a table-driven shift/reduce parser.
package ictiobus

import (
	"io"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lex"
	"github.com/dekarrin/ictiobus/parse"
	"github.com/dekarrin/ictiobus/token"
)

// NewLexer compiles patterns into a Lexer starting in startMode.
// patterns maps mode name to its ordered rule list; factory may be nil.
func NewLexer(startMode string, patterns map[string][]lex.Rule, factory lex.StateFactory) (*lex.Lexer, error) {
	return lex.New(startMode, patterns, factory)
}

// Parser is an immutable, built SLR(1) table paired with the grammar it
// was built from, ready to parse from any of its declared entry points
// (spec.md §3, "Augmented start").
type Parser struct {
	g     *grammar.Grammar
	table *parse.Table
}

// NewParser builds the FIRST/FOLLOW sets, item-set automaton, and action
// table for g, with one entry point per name in entries. g must already
// be fully populated via Grammar.AddTerm/AddRule.
func NewParser(g *grammar.Grammar, entries ...string) (*Parser, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := g.ComputeFirstFollow(entries); err != nil {
		return nil, err
	}
	table, err := parse.Build(g, entries)
	if err != nil {
		return nil, err
	}
	return &Parser{g: g, table: table}, nil
}

// Parse runs the shift/reduce driver from entry over the tokens src
// yields, returning the semantic value the grammar's makers built.
func (p *Parser) Parse(entry string, src parse.TokenSource) (any, error) {
	return parse.Parse(p.table, entry, src)
}

// Table returns the underlying action/goto table, for inspection or
// (*parse.Table).String() rendering.
func (p *Parser) Table() *parse.Table {
	return p.table
}

// SetDiagnosticLog redirects the package's diagnostic channel (shift/
// reduce conflict warnings and table-construction trace lines) to w.
// Passing nil silences it again. This is the only observable side
// effect the core produces, per spec.md §6.
func SetDiagnosticLog(w io.Writer) {
	parse.SetDiagnosticLog(w)
}

// Token and Class are re-exported here so simple callers need only import
// this package and lex/grammar for the pieces they construct.
type Token = token.Token
type Class = token.Class
