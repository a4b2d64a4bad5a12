package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a failure while recording nodes or edges,
// e.g. a nil constructor or a label scheme producing an empty label.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadWeight indicates that the weight function produced a non-positive or
// non-finite weight.
var ErrBadWeight = errors.New("builder: weight must be finite and positive")
