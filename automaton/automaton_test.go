package automaton

import (
	"fmt"
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/token"
	"github.com/stretchr/testify/assert"
)

func calcGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	plus := token.NewClass("plus")
	num := token.NewClass("num")

	g := grammar.New()
	g.AddTerm(plus)
	g.AddTerm(num)

	ctor := func(args []any) any { return args }
	assert.NoError(t, g.AddRule("exp", []grammar.Symbol{grammar.NonTerm("exp"), grammar.Term(plus), grammar.NonTerm("exp")}, grammar.Construct(ctor, 0, 2)))
	assert.NoError(t, g.AddRule("exp", []grammar.Symbol{grammar.Term(num)}, grammar.Identity(0)))
	assert.NoError(t, g.ComputeFirstFollow([]string{"exp"}))
	return g
}

func Test_Closure_IsClosed(t *testing.T) {
	assert := assert.New(t)
	g := calcGrammar(t)

	start, err := g.Start("exp")
	assert.NoError(err)

	s0 := Closure(g, []Item{{
		Left: "exp", RHS: start.Productions[0].Symbols, Dot: 0, Augmented: true,
	}})

	// Testable property from spec.md §8.2: closure is idempotent.
	again := Closure(g, s0.Items())
	assert.ElementsMatch(keysOf(s0), keysOf(again))
}

func keysOf(s *State) []string {
	out := make([]string, 0, s.Len())
	for _, it := range s.Items() {
		out = append(out, it.key())
	}
	return out
}

func Test_Build_NoDuplicateEdgesPerSymbol(t *testing.T) {
	// Testable property implied by spec.md §3: "at most one outgoing
	// edge per (state, symbol)".
	assert := assert.New(t)
	g := calcGrammar(t)

	col, err := Build(g, []string{"exp"})
	assert.NoError(err)
	assert.NotEmpty(col.States)

	seen := make(map[string]bool)
	for _, e := range col.Edges {
		pairKey := fmt.Sprintf("%d\x00%s", e.From, e.Symbol.Name())
		assert.False(seen[pairKey], "duplicate edge from state %d on symbol %q", e.From, e.Symbol.Name())
		seen[pairKey] = true
	}
}

func Test_Build_AllStatesReachable(t *testing.T) {
	assert := assert.New(t)
	g := calcGrammar(t)

	col, err := Build(g, []string{"exp"})
	assert.NoError(err)

	reachable := map[int]bool{col.Starts["exp"]: true}
	changed := true
	for changed {
		changed = false
		for _, e := range col.Edges {
			if reachable[e.From] && !reachable[e.To] {
				reachable[e.To] = true
				changed = true
			}
		}
	}
	for _, s := range col.States {
		assert.True(reachable[s.ID], "state %d must be reachable from the start", s.ID)
	}
}
