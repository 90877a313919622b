package rpn

import (
	"testing"

	arenaerr "github.com/KirkDiggler/arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("  4 8 +\t7 -5 -\n/ * ")
	require.NoError(t, err)

	expected := []Token{
		Value(4), Value(8), Add(), Value(7), Value(-5), Subtract(), Divide(), Multiply(),
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		tokens, err := Tokenize(input)
		require.NoError(t, err)
		assert.NotNil(t, tokens)
		assert.Empty(t, tokens)
	}
}

func TestTokenize_InvalidToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		token    string
		position int
	}{
		{"word", "2 two +", "two", 1},
		{"float", "1.5 2 +", "1.5", 0},
		{"out of int32 range", "1 2147483648 +", "2147483648", 1},
		{"unknown operator", "4 2 %", "%", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.True(t, arenaerr.IsInvalidArgument(err))

			meta := arenaerr.GetMeta(err)
			assert.Equal(t, tt.token, meta["token"])
			assert.Equal(t, tt.position, meta["position"])
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "4 8 + 7 5 - /", Format([]Token{
		Value(4), Value(8), Add(), Value(7), Value(5), Subtract(), Divide(),
	}))
	assert.Equal(t, "", Format(nil))

	tokens, err := Tokenize(Format([]Token{Value(-3), Value(2), Multiply()}))
	require.NoError(t, err)
	assert.Equal(t, []Token{Value(-3), Value(2), Multiply()}, tokens)
}
