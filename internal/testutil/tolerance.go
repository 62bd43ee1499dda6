package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNearlyEqualRel fails t if got and want differ by more than rel in
// relative terms. Exact equality (including both infinite with the same
// sign) passes; a zero want falls back to absolute comparison.
func RequireNearlyEqualRel(t *testing.T, got, want, rel float64) {
	t.Helper()
	if got == want {
		return
	}
	if want == 0 {
		if math.Abs(got) > rel {
			t.Fatalf("got %v, want 0 (abs diff > %v)", got, rel)
		}
		return
	}
	if math.Abs(got-want)/math.Abs(want) > rel {
		t.Fatalf("got %v, want %v (rel diff > %v)", got, want, rel)
	}
}

// RequireSameBits fails t if a and b differ in length or if any element pair
// differs in its float64 bit pattern. Used for determinism checks where
// tolerance-based comparison would be too weak.
func RequireSameBits(t *testing.T, a, b []float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Fatalf("index %d: bit mismatch: %v (%#x) vs %v (%#x)",
				i, a[i], math.Float64bits(a[i]), b[i], math.Float64bits(b[i]))
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
