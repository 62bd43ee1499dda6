package special

import "github.com/cwbudde/algo-vecmath"

// VarianceWeightsBlock writes dst[i] = p[i] * (1 - p[i]) for a vector of
// fitted probabilities. This is the logistic variance function, used as the
// IRLS weight in logistic regression; it equals LogisticDeriv applied to the
// corresponding log-odds.
//
// The multiply runs through vecmath. A scratch slice of len(p) is allocated
// for the complements, so dst may alias p. Returns ErrLengthMismatch, before
// writing anything, if the lengths differ.
func VarianceWeightsBlock(dst, p []float64) error {
	if len(dst) != len(p) {
		return ErrLengthMismatch
	}

	q := make([]float64, len(p))
	for i, v := range p {
		q[i] = 1 - v
	}

	vecmath.MulBlock(dst, p, q)

	return nil
}

// VarianceWeightsVec applies the logistic variance function element-wise and
// returns a new slice.
func VarianceWeightsVec(p []float64) []float64 {
	out := make([]float64, len(p))
	_ = VarianceWeightsBlock(out, p)

	return out
}
