package builder

import (
	"math/rand"
)

// builderConfig is the resolved, immutable configuration seen by constructors.
type builderConfig struct {
	// idFn maps a vertex index to its label.
	idFn IDFn

	// rng drives stochastic constructors and weight functions. Nil unless
	// WithSeed or WithRand is supplied.
	rng *rand.Rand

	// weightFn draws one edge weight; it receives rng (possibly nil).
	weightFn WeightFn
}

// newBuilderConfig resolves options over the defaults: decimal labels, no
// RNG, constant weight DefaultEdgeWeight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
