package testutil

import (
	"math"
	"math/rand"
)

// ProbabilityGrid returns n values evenly spaced across the open interval
// (0, 1), excluding both endpoints.
func ProbabilityGrid(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i+1) / float64(n+1)
	}
	return out
}

// LogOddsGrid returns n values evenly spaced across [-span, span].
func LogOddsGrid(n int, span float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = -span + 2*span*float64(i)/float64(n-1)
	}
	return out
}

// DeterministicProbabilities returns n pseudo-random draws from (0, 1) using
// a fixed seed for reproducibility.
func DeterministicProbabilities(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		v := rng.Float64()
		for v == 0 {
			v = rng.Float64()
		}
		out[i] = v
	}
	return out
}

// DeterministicLogOdds returns n pseudo-random Gaussian draws scaled by
// scale, using a fixed seed for reproducibility.
func DeterministicLogOdds(seed int64, scale float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * scale
	}
	return out
}

// Filled returns a slice of length n with every element set to value.
func Filled(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// NaNs returns a slice of length n filled with NaN, handy for detecting
// partial writes.
func NaNs(n int) []float64 {
	return Filled(math.NaN(), n)
}
