package special

import "github.com/meko-christian/algo-approx"

// LogisticFast returns an approximation of Logistic(x) built on
// approx.FastExp. Intended for hot paths where throughput matters more than
// the last bits of accuracy; useful for |x| up to roughly 10. The saturation
// behavior of Logistic at extreme inputs is not guaranteed here.
func LogisticFast(x float64) float64 {
	return 1 / (1 + approx.FastExp(-x))
}

// LogitFast returns an approximation of Logit(p) built on approx.FastLog.
// Behavior at the domain boundaries (p near 0 or 1) is not guaranteed.
func LogitFast(p float64) float64 {
	return approx.FastLog(p / (1 - p))
}

// LogisticFastBlock is the block form of LogisticFast. Aliasing and error
// semantics match LogisticBlock.
func LogisticFastBlock(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	for i, x := range src {
		dst[i] = 1 / (1 + approx.FastExp(-x))
	}

	return nil
}

// LogitFastBlock is the block form of LogitFast. Aliasing and error
// semantics match LogitBlock.
func LogitFastBlock(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	for i, p := range src {
		dst[i] = approx.FastLog(p / (1 - p))
	}

	return nil
}
