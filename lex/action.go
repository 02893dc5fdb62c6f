package lex

import "github.com/dekarrin/ictiobus/token"

// ActionKind distinguishes the three things a matched pattern can do,
// collapsing the teacher's ActionNone/ActionScan/ActionState/
// ActionScanAndState split (lex/action.go) down to the three variants
// spec.md §4.1/§9 actually requires: jump, emit, and user-function.
type ActionKind int

const (
	// ActionJump consumes the match, emits no token, and switches the
	// lexer's active mode. Equivalent to the teacher's ActionNone (when no
	// mode is given) and ActionState (when one is).
	ActionJump ActionKind = iota
	// ActionEmit consumes the match and emits a token of a fixed class,
	// with no mode change. Equivalent to the teacher's ActionScan.
	ActionEmit
	// ActionCustom hands the match to caller code, which decides what (if
	// anything) to emit and whether to change mode.
	ActionCustom
)

// ResultKind tags what a CustomFunc decided to do, per spec.md §9's
// "classify function returns into Emitted(token) | EmittedMany(tokens) |
// Jump(mode)".
type ResultKind int

const (
	ResultEmitted ResultKind = iota
	ResultEmittedMany
	ResultJump
	ResultDiscard
)

// Result is the tagged return value of a CustomFunc.
type Result struct {
	kind   ResultKind
	token  token.Token
	tokens []token.Token
	mode   string
}

// Emitted returns a Result that emits a single token.
func Emitted(t token.Token) Result { return Result{kind: ResultEmitted, token: t} }

// EmittedMany returns a Result that emits every token in ts, in order.
func EmittedMany(ts []token.Token) Result { return Result{kind: ResultEmittedMany, tokens: ts} }

// JumpTo returns a Result that emits nothing and switches to mode.
func JumpTo(mode string) Result { return Result{kind: ResultJump, mode: mode} }

// Discarded returns a Result that emits nothing and makes no mode change.
func Discarded() Result { return Result{kind: ResultDiscard} }

// CustomFunc is called with the literal matched text, the per-run lexer
// state produced by the state factory, and the position the match started
// at, matching the external surface in spec.md §6:
// "(matched, state, lineno, offset) → token | list-of-tokens | mode-name".
type CustomFunc func(matched string, state any, lineno, offset int) Result

// Action is the tagged union of what happens when a pattern matches,
// grounded on lex/action.go's LexerAction interface but expressed as a
// plain value type, since spec.md §3 only ever needs to inspect which of
// the three things an action does.
type Action struct {
	kind  ActionKind
	mode  string
	class token.Class
	fn    CustomFunc
}

// Jump returns an action that consumes the match, emits nothing, and
// switches the lexer into mode. Passing "" as mode makes this a pure
// discard (whitespace, comments) with no transition.
func Jump(mode string) Action {
	return Action{kind: ActionJump, mode: mode}
}

// Emit returns an action that consumes the match and emits a token of the
// given class, using the matched text as the token's text, with no mode
// change.
func Emit(class token.Class) Action {
	return Action{kind: ActionEmit, class: class}
}

// Custom returns an action that defers the emit/jump decision to fn.
func Custom(fn CustomFunc) Action {
	return Action{kind: ActionCustom, fn: fn}
}

// Kind reports which variant this action is.
func (a Action) Kind() ActionKind { return a.kind }
