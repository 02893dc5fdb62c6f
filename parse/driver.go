package parse

import (
	"fmt"

	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/internal/collection"
	"github.com/dekarrin/ictiobus/token"
)

// TokenSource is the minimal pull interface the parse driver needs from a
// lexer (lex.Stream satisfies it). It is defined here, not imported from
// lex, so parse has no dependency on the lexer's regex machinery — a
// driver can be fed tokens built any other way.
type TokenSource interface {
	Next() (token.Token, error)
}

// Parse runs the shift/reduce loop of spec.md §4.6 against table,
// starting from the state registered for entry, consuming tokens from
// src until Accept fires on an EOS lookahead. Parse does not append EOS
// itself: src must deliver an EOS-classed token when its tokens run out
// (lex.Stream does), after which src is not called again and EOS stays
// the lookahead.
func Parse(table *Table, entry string, src TokenSource) (any, error) {
	start, ok := table.StartState(entry)
	if !ok {
		return nil, &icterrors.GrammarError{Cause: fmt.Sprintf("%q is not a declared entry point", entry)}
	}

	states := collection.NewStack[int]()
	values := collection.NewStack[any]()
	states.Push(start)

	var lookahead token.Class
	var lookaheadTok token.Token
	var lookaheadIsToken bool
	haveLookahead := false
	exhausted := false

	fetch := func() error {
		if haveLookahead {
			return nil
		}
		if exhausted {
			lookahead = token.EOS
			lookaheadTok = token.New(token.EOS, "", lookaheadTok.Line, lookaheadTok.Offset)
			lookaheadIsToken = true
			haveLookahead = true
			return nil
		}
		t, err := src.Next()
		if err != nil {
			return err
		}
		if t.Class.Equal(token.EOS) {
			exhausted = true
		}
		lookahead = t.Class
		lookaheadTok = t
		lookaheadIsToken = true
		haveLookahead = true
		return nil
	}

	for {
		if err := fetch(); err != nil {
			return nil, err
		}

		top := states.Peek()

		var action Action
		var found bool
		if lookaheadIsToken {
			action, found = table.Action(top, lookahead)
		} else {
			action, found = table.Goto(top, lookahead.ID())
		}

		if !found {
			return nil, &icterrors.ParseError{
				Line: lookaheadTok.Line, Offset: lookaheadTok.Offset,
				Cause: fmt.Sprintf("unexpected %s", lookahead.Human()),
			}
		}

		switch action.Kind {
		case AShift:
			states.Push(action.State)
			values.Push(lookaheadTok)
			haveLookahead = false

		case AReduce:
			popped := make([]any, action.RHSLen)
			for i := action.RHSLen - 1; i >= 0; i-- {
				popped[i] = values.Pop()
				states.Pop()
			}
			values.Push(action.Maker.Apply(popped))
			lookahead = ruleClass(action.Rule)
			lookaheadIsToken = false
			haveLookahead = true

		case AGoto:
			states.Push(action.State)
			lookahead = lookaheadTok.Class
			lookaheadIsToken = true
			// lookaheadTok/haveLookahead are left as-is: the input token
			// that triggered the preceding Reduce was never consumed, so
			// it is still the pending lookahead now that Goto has fired.

		case AAccept:
			if action.Entry != entry {
				return nil, &icterrors.ParseError{
					Line: lookaheadTok.Line, Offset: lookaheadTok.Offset,
					Cause: fmt.Sprintf("accepted under entry %q, expected %q", action.Entry, entry),
				}
			}
			if values.Len() != 1 {
				return nil, &icterrors.ParseError{
					Cause: fmt.Sprintf("internal error: %d values remain on the stack at accept", values.Len()),
				}
			}
			return values.Pop(), nil
		}
	}
}

// ruleClass wraps a reduced-to nonterminal name as a pseudo terminal kind
// purely so the driver's lookahead variable can hold either a token class
// or a nonterminal name uniformly; it is never looked up in table.Action,
// only table.Goto, which keys on the raw name via ID().
func ruleClass(name string) token.Class {
	return token.NewClass(name)
}
