package lex

import (
	"testing"

	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/token"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/width"
)

var (
	tcNum    = token.NewClass("num", token.WithHuman("number"))
	tcPlus   = token.NewClass("plus", token.WithHuman("+"))
	tcLParen = token.NewClass("lparen", token.WithHuman("("))
	tcRParen = token.NewClass("rparen", token.WithHuman(")"))
)

func calcLexer(t *testing.T) *Lexer {
	t.Helper()
	lx, err := New("default", map[string][]Rule{
		"default": {
			{Pattern: `\s+`, Action: Jump("")},
			{Pattern: `[0-9]+`, Action: Emit(tcNum)},
			{Pattern: `\+`, Action: Emit(tcPlus)},
			{Pattern: `\(`, Action: Emit(tcLParen)},
			{Pattern: `\)`, Action: Emit(tcRParen)},
		},
	}, nil)
	assert.NoError(t, err)
	return lx
}

func Test_Lexer_EmitsTokensInSourceOrder(t *testing.T) {
	assert := assert.New(t)

	lx := calcLexer(t)
	stream := lx.Lex("1 + (2)")

	var got []string
	for {
		tok, err := stream.Next()
		assert.NoError(err)
		if tok.Class.Equal(token.EOS) {
			break
		}
		got = append(got, tok.Text)
	}
	assert.Equal([]string{"1", "+", "(", "2", ")"}, got)
}

func Test_Lexer_PositionTracking(t *testing.T) {
	assert := assert.New(t)

	lx := calcLexer(t)
	stream := lx.Lex("1\n  22")

	tok1, err := stream.Next()
	assert.NoError(err)
	assert.Equal(1, tok1.Line)
	assert.Equal(0, tok1.Offset)

	tok2, err := stream.Next()
	assert.NoError(err)
	assert.Equal(2, tok2.Line)
	assert.Equal(2, tok2.Offset)
}

func Test_Lexer_RunePosition_MultibyteCountsAsOne(t *testing.T) {
	assert := assert.New(t)

	fullwidthDigit := "１" // fullwidth "1", a multi-byte rune
	assert.Equal(width.EastAsianFullwidth, width.LookupRune([]rune(fullwidthDigit)[0]).Kind())

	lx, err := New("default", map[string][]Rule{
		"default": {{Pattern: fullwidthDigit, Action: Emit(tcNum)}},
	}, nil)
	assert.NoError(err)

	stream := lx.Lex(fullwidthDigit + "x")
	tok, err := stream.Next()
	assert.NoError(err)
	assert.Equal(0, tok.Offset)

	_, err = stream.Next()
	assert.Error(err)
	var lexErr *icterrors.LexError
	assert.ErrorAs(err, &lexErr)
	assert.Equal(1, lexErr.Offset) // one position unit consumed, not len(utf8 bytes)
}

func Test_Lexer_NoMatch_IsLexError(t *testing.T) {
	assert := assert.New(t)

	lx := calcLexer(t)
	stream := lx.Lex("1 @ 2")

	_, err := stream.Next()
	assert.NoError(err)
	_, err = stream.Next()
	assert.Error(err)
	assert.ErrorIs(err, icterrors.ErrLexing)
}

func Test_Lexer_ZeroWidthMatchWithoutModeChange_Errors(t *testing.T) {
	assert := assert.New(t)

	lx, err := New("start", map[string][]Rule{
		"start": {{Pattern: ``, Action: Jump("")}},
	}, nil)
	assert.NoError(err)

	stream := lx.Lex("x")
	_, err = stream.Next()
	assert.Error(err)
	assert.ErrorIs(err, icterrors.ErrLexing)
}

func Test_Lexer_ModeSwitch(t *testing.T) {
	assert := assert.New(t)

	lx, err := New("start", map[string][]Rule{
		"start": {
			{Pattern: `\+`, Action: Emit(tcPlus)},
			{Pattern: ``, Action: Jump("digit")},
		},
		"digit": {
			{Pattern: `[0-9]+`, Action: Emit(tcNum)},
			{Pattern: ``, Action: Jump("start")},
		},
	}, nil)
	assert.NoError(err)

	stream := lx.Lex("+123+")
	var got []string
	for {
		tok, err := stream.Next()
		assert.NoError(err)
		if tok.Class.Equal(token.EOS) {
			break
		}
		got = append(got, tok.Text)
	}
	assert.Equal([]string{"+", "123", "+"}, got)
}

func Test_Lexer_ErrorScenario_TrailingPlusUnreachable(t *testing.T) {
	// Error-2 from spec.md §8: rules {start: [(\+, PLUS), ("", digit)],
	// digit: [(\d+, NUM)]} on "+123+" must raise a lexing error at offset 4.
	assert := assert.New(t)

	lx, err := New("start", map[string][]Rule{
		"start": {
			{Pattern: `\+`, Action: Emit(tcPlus)},
			{Pattern: ``, Action: Jump("digit")},
		},
		"digit": {
			{Pattern: `[0-9]+`, Action: Emit(tcNum)},
		},
	}, nil)
	assert.NoError(err)

	stream := lx.Lex("+123+")
	_, err = stream.Next() // '+'
	assert.NoError(err)
	_, err = stream.Next() // '123', now stuck in mode "digit"
	assert.NoError(err)

	_, err = stream.Next() // trailing '+' unreachable from "digit" mode
	assert.Error(err)
	var lexErr *icterrors.LexError
	assert.ErrorAs(err, &lexErr)
	assert.Equal(4, lexErr.Offset)
}
