package rpn

// Evaluate runs a postfix token sequence and returns the single value it
// reduces to. The boolean is false when the expression is empty, an operator
// appears with fewer than two operands on the stack, or more than one value
// is left once every token has been consumed.
//
// Arithmetic wraps like any int32 arithmetic. Division truncates toward zero;
// dividing by zero is not trapped and panics with the runtime's
// integer-divide-by-zero error.
func Evaluate(tokens []Token) (int32, bool) {
	if len(tokens) == 0 {
		return 0, false
	}

	operands := &stack{values: make([]int32, 0, len(tokens))}
	for _, token := range tokens {
		if v, ok := token.Value(); ok {
			operands.push(v)
			continue
		}

		if operands.len() < 2 {
			return 0, false
		}

		// the operand pushed last is the right-hand side
		b := operands.pop()
		a := operands.pop()
		operands.push(apply(token.Kind, a, b))
	}

	if operands.len() != 1 {
		return 0, false
	}
	return operands.pop(), true
}

func apply(kind Kind, a, b int32) int32 {
	switch kind {
	case KindAdd:
		return a + b
	case KindSubtract:
		return a - b
	case KindMultiply:
		return a * b
	case KindDivide:
		return a / b
	default:
		panic("rpn: unknown operator " + string(kind))
	}
}
