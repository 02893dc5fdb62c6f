package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Class_Defaults(t *testing.T) {
	assert := assert.New(t)

	c := NewClass("num")
	assert.Equal("num", c.ID())
	assert.Equal("num", c.Human())
	assert.Equal(0, c.Precedence())
	assert.Equal(Left, c.Associativity())
}

func Test_Class_Options(t *testing.T) {
	assert := assert.New(t)

	c := NewClass("star", WithPrecedence(2), WithAssociativity(Right), WithHuman("*"))
	assert.Equal("star", c.ID())
	assert.Equal("*", c.Human())
	assert.Equal(2, c.Precedence())
	assert.Equal(Right, c.Associativity())
}

func Test_Class_Equal_IgnoresAttributes(t *testing.T) {
	assert := assert.New(t)

	a := NewClass("num", WithPrecedence(1))
	b := NewClass("num", WithPrecedence(99), WithHuman("different"))
	assert.True(a.Equal(b))
}

func Test_Class_Equal_DifferentID(t *testing.T) {
	assert := assert.New(t)

	a := NewClass("num")
	b := NewClass("str")
	assert.False(a.Equal(b))
}

func Test_Token_Equal(t *testing.T) {
	assert := assert.New(t)

	num := NewClass("num")
	a := New(num, "1", 1, 0)
	b := New(num, "1", 1, 0)
	c := New(num, "2", 1, 0)

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}

func Test_Token_String(t *testing.T) {
	assert := assert.New(t)

	num := NewClass("num", WithHuman("number"))
	tok := New(num, "42", 3, 7)
	assert.Equal(`number("42")@3:7`, tok.String())
}
