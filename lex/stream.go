package lex

import (
	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/token"
)

// Stream is a lazy, forward-only, non-restartable sequence of tokens over
// one source string, produced by Lexer.Lex. It is not safe for concurrent
// use; each call to Lex returns an independent Stream.
//
// Grounded structurally on lex/lazy.go's lazyLex, but operating directly
// on a string (spec.md §4.1 takes "source text", not an io.Reader) and
// using the single compiled alternation per mode to pick the winning rule
// in one regexp call instead of lazyLex's bespoke regexReader.
type Stream struct {
	lx  *Lexer
	src string

	mode  string
	state any

	line   int
	offset int

	pending []token.Token // queue filled by an EmittedMany custom action
	done    bool
	buf     *token.Token // one token of lookahead for Peek
	bufErr  error
}

// HasNext reports whether a call to Next would return a token rather than
// having already reached end of stream. It does not report lexing errors;
// call Next to discover those.
func (s *Stream) HasNext() bool {
	if s.done && s.buf == nil && len(s.pending) == 0 {
		return false
	}
	return true
}

// Peek returns the next token without consuming it. Subsequent calls to
// Peek or Next return the same token until Next is called.
func (s *Stream) Peek() (token.Token, error) {
	if s.buf == nil && s.bufErr == nil {
		t, err := s.next()
		s.buf, s.bufErr = &t, err
	}
	if s.bufErr != nil {
		return *s.buf, s.bufErr
	}
	return *s.buf, nil
}

// Next returns the next token in the stream and advances past it. Once
// the stream is exhausted it returns an EOS token on every subsequent
// call and a nil error.
func (s *Stream) Next() (token.Token, error) {
	if s.buf != nil || s.bufErr != nil {
		t, err := *s.buf, s.bufErr
		s.buf, s.bufErr = nil, nil
		return t, err
	}
	return s.next()
}

func (s *Stream) next() (token.Token, error) {
	for {
		if len(s.pending) > 0 {
			t := s.pending[0]
			s.pending = s.pending[1:]
			return t, nil
		}
		if s.done {
			return token.New(token.EOS, "", s.line, s.offset), nil
		}
		if len(s.src) == 0 {
			s.done = true
			return token.New(token.EOS, "", s.line, s.offset), nil
		}

		cm, ok := s.lx.compiled[s.mode]
		if !ok {
			return s.errorToken(s.line, s.offset), &icterrors.LexError{
				Line: s.line, Offset: s.offset,
				Cause: "no rules registered for mode " + s.mode,
			}
		}

		loc := cm.re.FindStringSubmatchIndex(s.src)
		if loc == nil {
			r := []rune(s.src)
			return s.errorToken(s.line, s.offset), &icterrors.LexError{
				Line: s.line, Offset: s.offset,
				Cause: "no rule matches input starting with " + string(r[:min(1, len(r))]),
			}
		}

		matchEnd := loc[1]
		ruleIdx := -1
		for i := range cm.rules {
			if loc[2+2*i] >= 0 {
				ruleIdx = i
				break
			}
		}
		matched := s.src[loc[0]:matchEnd]
		zeroWidth := matched == ""

		startLine, startOffset := s.line, s.offset
		s.advancePosition(matched)
		s.src = s.src[matchEnd:]

		rule := cm.rules[ruleIdx]
		switch rule.Action.kind {
		case ActionJump:
			if zeroWidth && (rule.Action.mode == "" || rule.Action.mode == s.mode) {
				return s.errorToken(startLine, startOffset), s.loopError(startLine, startOffset)
			}
			if rule.Action.mode != "" {
				s.mode = rule.Action.mode
			}
			continue
		case ActionEmit:
			return token.New(rule.Action.class, matched, startLine, startOffset), nil
		case ActionCustom:
			res := rule.Action.fn(matched, s.state, startLine, startOffset)
			switch res.kind {
			case ResultDiscard:
				if zeroWidth {
					return s.errorToken(startLine, startOffset), s.loopError(startLine, startOffset)
				}
				continue
			case ResultJump:
				if zeroWidth && res.mode == s.mode {
					return s.errorToken(startLine, startOffset), s.loopError(startLine, startOffset)
				}
				s.mode = res.mode
				continue
			case ResultEmitted:
				return res.token, nil
			case ResultEmittedMany:
				if len(res.tokens) == 0 {
					if zeroWidth {
						return s.errorToken(startLine, startOffset), s.loopError(startLine, startOffset)
					}
					continue
				}
				s.pending = res.tokens[1:]
				return res.tokens[0], nil
			}
		}
	}
}

// errorToken builds the token.Error-classed token paired with every error
// next returns, so a caller inspecting the token alone (not just the
// accompanying error) can still tell a lexing failure occurred.
func (s *Stream) errorToken(line, offset int) token.Token {
	return token.New(token.Error, "", line, offset)
}

func (s *Stream) loopError(line, offset int) error {
	return &icterrors.LexError{
		Line: line, Offset: offset,
		Cause: "rule produced a zero-width match without changing mode, which would loop forever",
	}
}

// advancePosition updates line/offset per spec.md §4.1 and §9: each '\n'
// in the matched text increments the line and resets the offset; the
// final (possibly only) line's rune count is added to offset. Counting is
// in runes, not bytes, so multi-byte code points are one position unit.
func (s *Stream) advancePosition(matched string) {
	for _, r := range matched {
		if r == '\n' {
			s.line++
			s.offset = 0
			continue
		}
		s.offset++
	}
}

