package shared

// ClampedSubtract returns a-b, floored at zero instead of wrapping.
func ClampedSubtract(a, b uint32) uint32 {
	if a >= b {
		return a - b
	}
	return 0
}
