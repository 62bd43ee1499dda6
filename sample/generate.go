// Package sample generates deterministic numeric test inputs for the
// logistic/logit kernels. All randomness flows through a caller-supplied
// *rand.Rand; the package keeps no global state, so two generators built
// from identically seeded sources produce identical draws.
package sample

import (
	"fmt"
	"math/rand"
)

// Generator draws sample sequences from an explicit random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator using the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Probabilities returns n uniform draws from the open interval (0, 1),
// suitable as logit inputs. Exact zeros from the underlying [0, 1) source
// are redrawn so every value stays strictly inside the interval.
func (g *Generator) Probabilities(n int) ([]float64, error) {
	if g.rng == nil {
		return nil, fmt.Errorf("sample: generator has no random source")
	}
	if n <= 0 {
		return nil, fmt.Errorf("sample: count must be > 0: %d", n)
	}

	out := make([]float64, n)
	for i := range out {
		v := g.rng.Float64()
		for v == 0 {
			v = g.rng.Float64()
		}
		out[i] = v
	}

	return out, nil
}

// LogOdds returns n Gaussian draws scaled by scale, suitable as logistic
// inputs. scale 1 gives standard-normal log-odds.
func (g *Generator) LogOdds(n int, scale float64) ([]float64, error) {
	if g.rng == nil {
		return nil, fmt.Errorf("sample: generator has no random source")
	}
	if n <= 0 {
		return nil, fmt.Errorf("sample: count must be > 0: %d", n)
	}
	if scale < 0 {
		return nil, fmt.Errorf("sample: scale must be >= 0: %f", scale)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = g.rng.NormFloat64() * scale
	}

	return out, nil
}
