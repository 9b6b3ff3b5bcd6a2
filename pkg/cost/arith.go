package cost

import "math"

// Add returns a+b for non-negative costs, or [ErrOverflow] when the sum does
// not fit in an int64.
func Add(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}
