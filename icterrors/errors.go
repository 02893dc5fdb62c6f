// Package icterrors defines the three disjoint error kinds the core
// produces, modeled on plare.exception's LexingError/ParserError/
// ParsingError hierarchy and on the teacher package's convention of typed
// errors that carry enough structured context to format a diagnostic.
package icterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is against any of the three kinds.
var (
	ErrLexing  = errors.New("lexing error")
	ErrGrammar = errors.New("grammar error")
	ErrParsing = errors.New("parsing error")
)

// LexError is returned when the lexer engine cannot match any rule at a
// non-empty position in the input (spec.md §4.1, §4.7).
type LexError struct {
	Line   int
	Offset int
	Cause  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexing error at %d:%d: %s", e.Line, e.Offset, e.Cause)
}

func (e *LexError) Unwrap() error { return ErrLexing }

// GrammarError is returned when the table builder cannot construct a valid
// action table: an unresolved reduce/reduce conflict, or a malformed
// production (spec.md §4.5, §4.7).
type GrammarError struct {
	State int
	Rules []string
	Cause string
}

func (e *GrammarError) Error() string {
	if len(e.Rules) > 0 {
		return fmt.Sprintf("grammar error in state %d (%v): %s", e.State, e.Rules, e.Cause)
	}
	return fmt.Sprintf("grammar error: %s", e.Cause)
}

func (e *GrammarError) Unwrap() error { return ErrGrammar }

// ParseError is returned by the parse driver when no action exists for the
// current (state, lookahead) pair, when input ends unexpectedly, or when
// Accept is reached under the wrong entry (spec.md §4.6, §4.7).
type ParseError struct {
	Line   int
	Offset int
	Cause  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing error at %d:%d: %s", e.Line, e.Offset, e.Cause)
}

func (e *ParseError) Unwrap() error { return ErrParsing }
