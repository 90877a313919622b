package rpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_Value(t *testing.T) {
	v, ok := Value(-42).Value()
	assert.True(t, ok)
	assert.Equal(t, int32(-42), v)

	for _, op := range []Token{Add(), Subtract(), Multiply(), Divide()} {
		v, ok := op.Value()
		assert.False(t, ok, op.String())
		assert.Zero(t, v)
		assert.True(t, op.IsOperator())
	}

	assert.False(t, Value(0).IsOperator())
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "+", Add().String())
	assert.Equal(t, "-", Subtract().String())
	assert.Equal(t, "*", Multiply().String())
	assert.Equal(t, "/", Divide().String())
	assert.Equal(t, "-17", Value(-17).String())
	assert.Equal(t, "?", Token{Kind: "modulo"}.String())
}
