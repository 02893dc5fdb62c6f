// Package lex implements the mode-switching regex lexer engine: a
// collection of named modes, each an ordered list of (pattern, action)
// rules, compiled once and driven lazily over source text.
//
// The compiled form follows the teacher's lex/lazy.go "super pattern"
// trick: every rule in a mode is anchored at the start of input and
// joined into one alternation with one capturing group per rule, so a
// single regexp.FindStringSubmatchIndex call both finds the anchored
// match AND tells us which rule produced it. Go's
// regexp package matches alternation leftmost-first (Perl semantics, not
// POSIX leftmost-longest), which is exactly spec.md §4.1's "first rule in
// declaration order wins" requirement, so no reordering by length is ever
// needed.
package lex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dekarrin/ictiobus/icterrors"
)

// Rule is one (pattern, action) pair within a mode, in declaration order.
type Rule struct {
	Pattern string
	Action  Action
}

// StateFactory produces a fresh opaque per-run state value, threaded
// unchanged into every Custom action invoked during that run.
type StateFactory func() any

// Lexer is an immutable, built-once collection of modes. It is safe for
// concurrent use by multiple Lex calls, provided the StateFactory returns
// independent values per call (spec.md §5).
type Lexer struct {
	startMode string
	compiled  map[string]*compiledMode
	factory   StateFactory
}

type compiledMode struct {
	re    *regexp.Regexp
	rules []Rule
}

// New compiles patterns into a Lexer. patterns maps mode name to its
// ordered rule list; startMode is the mode lexing begins in. factory may
// be nil, in which case Custom actions receive a nil state.
func New(startMode string, patterns map[string][]Rule, factory StateFactory) (*Lexer, error) {
	if _, ok := patterns[startMode]; !ok {
		return nil, &icterrors.GrammarError{Cause: fmt.Sprintf("starting mode %q has no rules", startMode)}
	}
	if factory == nil {
		factory = func() any { return nil }
	}

	compiled := make(map[string]*compiledMode, len(patterns))
	for mode, rules := range patterns {
		var sb strings.Builder
		sb.WriteString("^(?:")
		for i, r := range rules {
			if i > 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte('(')
			sb.WriteString(r.Pattern)
			sb.WriteByte(')')
		}
		sb.WriteByte(')')

		re, err := regexp.Compile(sb.String())
		if err != nil {
			return nil, &icterrors.GrammarError{Cause: fmt.Sprintf("compiling rules for mode %q: %v", mode, err)}
		}
		compiled[mode] = &compiledMode{re: re, rules: rules}
	}

	return &Lexer{startMode: startMode, compiled: compiled, factory: factory}, nil
}

// Lex begins a fresh, lazy, non-restartable token stream over source.
func (lx *Lexer) Lex(source string) *Stream {
	return &Stream{
		lx:     lx,
		src:    source,
		mode:   lx.startMode,
		state:  lx.factory(),
		line:   1,
		offset: 0,
	}
}

