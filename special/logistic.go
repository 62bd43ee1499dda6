package special

import "math"

// Logistic returns 1 / (1 + exp(-x)).
//
// The result is bounded in (0, 1) for finite x and saturates at the extremes:
// for large positive x the exp underflows to 0 and the result is exactly 1;
// for large negative x the exp overflows to +Inf and the result is exactly 0.
// NaN propagates. Logistic(0) == 0.5 exactly.
func Logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// LogisticDeriv returns the derivative of the logistic function at x,
// Logistic(x) * (1 - Logistic(x)). Maximum 0.25 at x == 0.
func LogisticDeriv(x float64) float64 {
	p := Logistic(x)
	return p * (1 - p)
}

func logisticKernel(dst, src []float64) {
	for i, x := range src {
		dst[i] = 1 / (1 + math.Exp(-x))
	}
}

// LogisticBlock writes dst[i] = Logistic(src[i]) for every index.
//
// dst and src may alias in any pattern, including dst being src itself for
// pure in-place evaluation; each element depends only on its own index.
// Returns ErrLengthMismatch, before writing anything, if the lengths differ.
func LogisticBlock(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	logisticKernel(dst, src)

	return nil
}

// LogisticVec applies Logistic element-wise and returns a new slice.
func LogisticVec(src []float64) []float64 {
	out := make([]float64, len(src))
	logisticKernel(out, src)

	return out
}
