package rpn

import "strconv"

// Kind identifies which of the five token variants a Token holds
type Kind string

const (
	KindAdd      Kind = "add"
	KindSubtract Kind = "subtract"
	KindMultiply Kind = "multiply"
	KindDivide   Kind = "divide"
	KindValue    Kind = "value"
)

// Token is a single postfix input symbol: one of the four binary operators,
// or a value to push. The payload is only meaningful for KindValue.
type Token struct {
	Kind  Kind
	value int32
}

func Add() Token      { return Token{Kind: KindAdd} }
func Subtract() Token { return Token{Kind: KindSubtract} }
func Multiply() Token { return Token{Kind: KindMultiply} }
func Divide() Token   { return Token{Kind: KindDivide} }

// Value builds a token that pushes i onto the operand stack
func Value(i int32) Token {
	return Token{Kind: KindValue, value: i}
}

// Value returns the payload and true for value tokens, 0 and false otherwise
func (t Token) Value() (int32, bool) {
	if t.Kind != KindValue {
		return 0, false
	}
	return t.value, true
}

// IsOperator reports whether the token is one of the four binary operators
func (t Token) IsOperator() bool {
	switch t.Kind {
	case KindAdd, KindSubtract, KindMultiply, KindDivide:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	switch t.Kind {
	case KindAdd:
		return "+"
	case KindSubtract:
		return "-"
	case KindMultiply:
		return "*"
	case KindDivide:
		return "/"
	case KindValue:
		return strconv.FormatInt(int64(t.value), 10)
	default:
		return "?"
	}
}
