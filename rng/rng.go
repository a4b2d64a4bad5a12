// Package rng centralizes deterministic random generation for the stochastic
// parts of antmst: MST tie-breaking, ACO roulette draws and graph fixtures.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for repeated runs.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64-style finalizer, so that neighbouring stream ids yield
// uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic RNG stream from a base RNG and a
// stream identifier. If base==nil, DefaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once, so consecutive derivations with the
// same stream id still differ.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Or returns r when non-nil, else a fresh default stream (seed==0 policy).
func Or(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return FromSeed(0)
}
