package main

import (
	"strconv"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lex"
	"github.com/dekarrin/ictiobus/token"
)

// node is the calculator's AST, grounded on original_source/examples/calc/calc.py's
// tiny Add/Sub/Mul/Div/Const node hierarchy, collapsed into one struct with
// an op tag since Go has no tagged-union inheritance to mirror that file's
// class-per-operator layout cleanly.
type node struct {
	op          byte // 0 for a leaf
	left, right *node
	value       int
}

func (n *node) Eval() int {
	switch n.op {
	case 0:
		return n.value
	case '+':
		return n.left.Eval() + n.right.Eval()
	case '-':
		return n.left.Eval() - n.right.Eval()
	case '*':
		return n.left.Eval() * n.right.Eval()
	case '/':
		return n.left.Eval() / n.right.Eval()
	}
	panic("unreachable")
}

var (
	tcNum    = token.NewClass("num", token.WithHuman("number"))
	tcPlus   = token.NewClass("plus", token.WithHuman("+"))
	tcMinus  = token.NewClass("minus", token.WithHuman("-"))
	tcStar   = token.NewClass("star", token.WithHuman("*"), token.WithPrecedence(1))
	tcSlash  = token.NewClass("slash", token.WithHuman("/"), token.WithPrecedence(1))
	tcLParen = token.NewClass("lparen", token.WithHuman("("))
	tcRParen = token.NewClass("rparen", token.WithHuman(")"))
)

func binOp(op byte) grammar.Constructor {
	return func(args []any) any {
		return &node{op: op, left: args[0].(*node), right: args[1].(*node)}
	}
}

// buildGrammar implements spec.md §8's Calc-1/2/3 grammar:
//
//	exp -> exp PLUS exp | exp MINUS exp | exp STAR exp | exp SLASH exp
//	     | LPAREN exp RPAREN | NUM
//
// with STAR and SLASH at precedence 1 and everything else at the default
// (0, left-associative).
func buildGrammar() *grammar.Grammar {
	g := grammar.New()
	for _, c := range []token.Class{tcNum, tcPlus, tcMinus, tcStar, tcSlash, tcLParen, tcRParen} {
		g.AddTerm(c)
	}

	g.AddRule("exp", []grammar.Symbol{grammar.NonTerm("exp"), grammar.Term(tcPlus), grammar.NonTerm("exp")}, grammar.Construct(binOp('+'), 0, 2))
	g.AddRule("exp", []grammar.Symbol{grammar.NonTerm("exp"), grammar.Term(tcMinus), grammar.NonTerm("exp")}, grammar.Construct(binOp('-'), 0, 2))
	g.AddRule("exp", []grammar.Symbol{grammar.NonTerm("exp"), grammar.Term(tcStar), grammar.NonTerm("exp")}, grammar.Construct(binOp('*'), 0, 2))
	g.AddRule("exp", []grammar.Symbol{grammar.NonTerm("exp"), grammar.Term(tcSlash), grammar.NonTerm("exp")}, grammar.Construct(binOp('/'), 0, 2))
	g.AddRule("exp", []grammar.Symbol{grammar.Term(tcLParen), grammar.NonTerm("exp"), grammar.Term(tcRParen)},
		grammar.Construct(func(args []any) any { return args[0] }, 1))
	g.AddRule("exp", []grammar.Symbol{grammar.Term(tcNum)}, grammar.Construct(func(args []any) any {
		n, _ := strconv.Atoi(args[0].(token.Token).Text)
		return &node{value: n}
	}, 0))

	return g
}

func buildLexer() (*lex.Lexer, error) {
	return lex.New("default", map[string][]lex.Rule{
		"default": {
			{Pattern: `\s+`, Action: lex.Jump("")},
			{Pattern: `[0-9]+`, Action: lex.Emit(tcNum)},
			{Pattern: `\+`, Action: lex.Emit(tcPlus)},
			{Pattern: `-`, Action: lex.Emit(tcMinus)},
			{Pattern: `\*`, Action: lex.Emit(tcStar)},
			{Pattern: `/`, Action: lex.Emit(tcSlash)},
			{Pattern: `\(`, Action: lex.Emit(tcLParen)},
			{Pattern: `\)`, Action: lex.Emit(tcRParen)},
		},
	}, nil)
}
