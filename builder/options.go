package builder

import (
	"math/rand"

	"github.com/katalvlaran/antmst/rng"
)

// BuilderOption customizes builderConfig. Option constructors panic on
// programmer error (nil functions, impossible ranges).
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex labelling function.
// Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for stochastic topologies and weights. r is not
// goroutine-safe; do not share it across concurrent builds.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a deterministic RNG (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rng.FromSeed(seed)
	}
}

// WithWeightFn sets the edge-weight distribution.
// Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
