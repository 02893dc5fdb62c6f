package grammar

import (
	"testing"

	"github.com/dekarrin/ictiobus/token"
	"github.com/stretchr/testify/assert"
)

var tcNum = token.NewClass("num")

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func(g *Grammar)
		expectErr bool
	}{
		{
			name:      "empty grammar",
			build:     func(g *Grammar) {},
			expectErr: true,
		},
		{
			name: "no rules in grammar",
			build: func(g *Grammar) {
				g.AddTerm(tcNum)
			},
			expectErr: true,
		},
		{
			name: "no terms in grammar",
			build: func(g *Grammar) {
				g.AddRule("S", []Symbol{NonTerm("S")}, Identity(0))
			},
			expectErr: true,
		},
		{
			name: "references unknown nonterminal",
			build: func(g *Grammar) {
				g.AddTerm(tcNum)
				g.AddRule("S", []Symbol{NonTerm("UNKNOWN")}, Identity(0))
			},
			expectErr: true,
		},
		{
			name: "single rule grammar",
			build: func(g *Grammar) {
				g.AddTerm(tcNum)
				g.AddRule("S", []Symbol{Term(tcNum)}, Identity(0))
			},
			expectErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g := New()
			tc.build(g)

			err := g.Validate()
			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Production_Precedence_FirstPositiveThenFirstNegative(t *testing.T) {
	assert := assert.New(t)

	neg := token.NewClass("neg", token.WithPrecedence(-1))
	pos := token.NewClass("pos", token.WithPrecedence(3))
	zero := token.NewClass("zero")

	p1, err := newProduction([]Symbol{Term(zero), Term(neg), Term(pos)}, Identity(0))
	assert.NoError(err)
	assert.Equal(3, p1.Precedence(), "first positive wins even if a negative precedes it")

	p2, err := newProduction([]Symbol{Term(zero), Term(neg)}, Identity(0))
	assert.NoError(err)
	assert.Equal(-1, p2.Precedence(), "falls back to first negative when no positive exists")

	p3, err := newProduction([]Symbol{Term(zero)}, Identity(0))
	assert.NoError(err)
	assert.Equal(0, p3.Precedence())
}

func Test_Maker_Identity_RequiresSingleSymbol(t *testing.T) {
	assert := assert.New(t)

	_, err := newProduction([]Symbol{Term(tcNum), Term(tcNum)}, Identity(0))
	assert.Error(err)
}

func Test_FirstFollow_Calc(t *testing.T) {
	assert := assert.New(t)

	plus := token.NewClass("plus")
	num := token.NewClass("num")
	lparen := token.NewClass("lparen")
	rparen := token.NewClass("rparen")

	g := New()
	g.AddTerm(plus)
	g.AddTerm(num)
	g.AddTerm(lparen)
	g.AddTerm(rparen)

	ctor := func(args []any) any { return args }
	assert.NoError(g.AddRule("exp", []Symbol{NonTerm("exp"), Term(plus), NonTerm("exp")}, Construct(ctor, 0, 2)))
	assert.NoError(g.AddRule("exp", []Symbol{Term(lparen), NonTerm("exp"), Term(rparen)}, Construct(ctor, 1)))
	assert.NoError(g.AddRule("exp", []Symbol{Term(num)}, Identity(0)))

	assert.NoError(g.ComputeFirstFollow([]string{"exp"}))

	r, ok := g.Rule("exp")
	assert.True(ok)

	first := r.First()
	assert.Contains(first, num.ID())
	assert.Contains(first, lparen.ID())
	assert.NotContains(first, plus.ID())

	follow := r.Follow()
	assert.Contains(follow, plus.ID())
	assert.Contains(follow, rparen.ID())
	assert.Contains(follow, token.EOS.ID())
}

func Test_FirstFollow_Stabilizes(t *testing.T) {
	// Testable property from spec.md §8.1: running FIRST/FOLLOW twice
	// yields identical sets.
	assert := assert.New(t)

	a := token.NewClass("a")
	b := token.NewClass("b")

	build := func() *Grammar {
		g := New()
		g.AddTerm(a)
		g.AddTerm(b)
		ctor := func(args []any) any { return args }
		g.AddRule("S", []Symbol{NonTerm("A"), NonTerm("B")}, Construct(ctor, 0, 1))
		g.AddRule("A", []Symbol{Term(a)}, Identity(0))
		g.AddRule("A", []Symbol{}, Construct(func(args []any) any { return nil }))
		g.AddRule("B", []Symbol{Term(b)}, Identity(0))
		return g
	}

	g1, g2 := build(), build()
	assert.NoError(g1.ComputeFirstFollow([]string{"S"}))
	assert.NoError(g2.ComputeFirstFollow([]string{"S"}))

	r1, _ := g1.Rule("S")
	r2, _ := g2.Rule("S")
	assert.Equal(r1.First(), r2.First())
	assert.Equal(r1.Follow(), r2.Follow())
}
