package rpn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse is a test helper that tokenizes known-good input
func parse(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Tokenize(input)
	require.NoError(t, err)
	return tokens
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int32
		ok       bool
	}{
		{name: "empty input", input: "", ok: false},
		{name: "simple value", input: "10", expected: 10, ok: true},
		{name: "negative value", input: "-10", expected: -10, ok: true},
		{name: "addition", input: "2 2 +", expected: 4, ok: true},
		{name: "subtraction keeps operand order", input: "7 11 -", expected: -4, ok: true},
		{name: "multiplication", input: "6 9 *", expected: 54, ok: true},
		{name: "division truncates", input: "57 19 /", expected: 3, ok: true},
		{name: "negative division truncates toward zero", input: "-7 2 /", expected: -3, ok: true},
		{name: "complex", input: "4 8 + 7 5 - /", expected: 6, ok: true},
		{name: "too few operands", input: "2 +", ok: false},
		{name: "too many operands", input: "2 2", ok: false},
		{name: "zero operands", input: "+", ok: false},
		{name: "intermediate error", input: "+ 2 2 *", ok: false},
		{name: "leftover after valid prefix", input: "1 2 + 3", ok: false},
		{name: "underflow late in sequence", input: "1 2 + * 4", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Evaluate(parse(t, tt.input))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, result)
			} else {
				assert.Zero(t, result)
			}
		})
	}
}

func TestEvaluate_NilInput(t *testing.T) {
	_, ok := Evaluate(nil)
	assert.False(t, ok)
}

func TestEvaluate_OperandOrder(t *testing.T) {
	pairs := [][2]int32{{7, 11}, {11, 7}, {-3, 5}, {100, -4}, {9, 3}}
	ops := []struct {
		token Token
		apply func(a, b int32) int32
	}{
		{Add(), func(a, b int32) int32 { return a + b }},
		{Subtract(), func(a, b int32) int32 { return a - b }},
		{Multiply(), func(a, b int32) int32 { return a * b }},
		{Divide(), func(a, b int32) int32 { return a / b }},
	}

	for _, op := range ops {
		for _, pair := range pairs {
			result, ok := Evaluate([]Token{Value(pair[0]), Value(pair[1]), op.token})
			require.True(t, ok, "%d %d %s", pair[0], pair[1], op.token)
			assert.Equal(t, op.apply(pair[0], pair[1]), result, "%d %d %s", pair[0], pair[1], op.token)
		}
	}
}

func TestEvaluate_Wraparound(t *testing.T) {
	result, ok := Evaluate([]Token{Value(math.MaxInt32), Value(1), Add()})
	require.True(t, ok)
	assert.Equal(t, int32(math.MinInt32), result)

	result, ok = Evaluate([]Token{Value(math.MinInt32), Value(1), Subtract()})
	require.True(t, ok)
	assert.Equal(t, int32(math.MaxInt32), result)
}

func TestEvaluate_DivideByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		Evaluate([]Token{Value(1), Value(0), Divide()})
	})
}

func TestEvaluate_DoesNotModifyInput(t *testing.T) {
	tokens := []Token{Value(4), Value(8), Add()}
	snapshot := append([]Token(nil), tokens...)

	_, _ = Evaluate(tokens)

	assert.Equal(t, snapshot, tokens)
}
