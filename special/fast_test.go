package special

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-logistic/internal/testutil"
)

// The fast variants trade accuracy for throughput, so these tests only pin
// down loose agreement with the exact kernels over moderate ranges.

func TestLogisticFastNearExact(t *testing.T) {
	for _, x := range testutil.LogOddsGrid(401, 8) {
		got := LogisticFast(x)
		want := Logistic(x)
		if math.Abs(got-want) > 0.05 {
			t.Fatalf("LogisticFast(%v) = %v, exact %v (diff > 0.05)", x, got, want)
		}
	}
}

func TestLogitFastNearExact(t *testing.T) {
	for _, p := range testutil.ProbabilityGrid(99) {
		if p < 0.1 || p > 0.9 {
			continue
		}
		got := LogitFast(p)
		want := Logit(p)
		if math.Abs(got-want) > 0.25 {
			t.Fatalf("LogitFast(%v) = %v, exact %v (diff > 0.25)", p, got, want)
		}
	}
}

func TestFastBlocksMatchScalar(t *testing.T) {
	z := testutil.DeterministicLogOdds(31, 2, 128)

	dst := make([]float64, len(z))
	if err := LogisticFastBlock(dst, z); err != nil {
		t.Fatalf("LogisticFastBlock error: %v", err)
	}
	for i := range z {
		if dst[i] != LogisticFast(z[i]) {
			t.Fatalf("index %d: block %v != scalar %v", i, dst[i], LogisticFast(z[i]))
		}
	}

	p := testutil.DeterministicProbabilities(32, 128)

	if err := LogitFastBlock(dst[:len(p)], p); err != nil {
		t.Fatalf("LogitFastBlock error: %v", err)
	}
	for i := range p {
		if dst[i] != LogitFast(p[i]) {
			t.Fatalf("index %d: block %v != scalar %v", i, dst[i], LogitFast(p[i]))
		}
	}
}

func TestFastBlockLengthMismatch(t *testing.T) {
	if err := LogisticFastBlock(make([]float64, 2), make([]float64, 3)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if err := LogitFastBlock(make([]float64, 2), make([]float64, 3)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}
