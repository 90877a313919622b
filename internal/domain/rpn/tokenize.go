package rpn

import (
	"strconv"
	"strings"

	arenaerr "github.com/KirkDiggler/arena/internal/errors"
)

// Tokenize splits whitespace-delimited text into tokens. "+", "-", "*" and
// "/" become operators; every other field must parse as a base-10 int32.
func Tokenize(input string) ([]Token, error) {
	fields := strings.Fields(input)
	tokens := make([]Token, 0, len(fields))

	for i, field := range fields {
		switch field {
		case "+":
			tokens = append(tokens, Add())
		case "-":
			tokens = append(tokens, Subtract())
		case "*":
			tokens = append(tokens, Multiply())
		case "/":
			tokens = append(tokens, Divide())
		default:
			n, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				return nil, arenaerr.WrapWithCode(err, arenaerr.CodeInvalidArgument,
					"invalid token '"+field+"'").
					WithMeta("token", field).
					WithMeta("position", i)
			}
			tokens = append(tokens, Value(int32(n)))
		}
	}

	return tokens, nil
}

// Format renders tokens back into space separated postfix text
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = token.String()
	}
	return strings.Join(parts, " ")
}
