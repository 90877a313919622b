package rpn

// stack is the operand stack for a single evaluation
type stack struct {
	values []int32
}

func (s *stack) push(v int32) {
	s.values = append(s.values, v)
}

// pop removes the top value. Callers check len first.
func (s *stack) pop() int32 {
	top := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return top
}

func (s *stack) len() int {
	return len(s.values)
}
