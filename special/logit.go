package special

import "math"

// Logit returns log(p / (1 - p)), the inverse of Logistic on (0, 1).
//
// Boundary and out-of-domain inputs follow IEEE-754 propagation instead of
// raising errors: Logit(0) == -Inf, Logit(1) == +Inf, and any p outside
// [0, 1] yields NaN (log of a negative ratio). Logit(0.5) == 0 exactly.
// The function performs no domain validation; callers that need stricter
// guarantees must check p themselves.
func Logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

func logitKernel(dst, src []float64) {
	for i, p := range src {
		dst[i] = math.Log(p / (1 - p))
	}
}

// LogitBlock writes dst[i] = Logit(src[i]) for every index.
//
// Aliasing and error semantics match LogisticBlock: any overlap between dst
// and src is safe, and a length mismatch returns ErrLengthMismatch before
// any element is written.
func LogitBlock(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	logitKernel(dst, src)

	return nil
}

// LogitVec applies Logit element-wise and returns a new slice.
func LogitVec(src []float64) []float64 {
	out := make([]float64, len(src))
	logitKernel(out, src)

	return out
}

// OddsBlock writes dst[i] = p[i] / (1 - p[i]), the odds for a vector of
// probabilities. Logit is the log of this quantity. Same aliasing and error
// semantics as the other block kernels.
func OddsBlock(dst, p []float64) error {
	if len(dst) != len(p) {
		return ErrLengthMismatch
	}

	for i, v := range p {
		dst[i] = v / (1 - v)
	}

	return nil
}
