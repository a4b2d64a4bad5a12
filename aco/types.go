package aco

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/antmst/core"
)

var (
	// ErrNilGraph is returned when no construction graph is supplied.
	ErrNilGraph = errors.New("aco: nil construction graph")

	// ErrInvalidOptions wraps every Options validation failure.
	ErrInvalidOptions = errors.New("aco: invalid options")

	// ErrTargetDisconnected is returned by New when the target tree does not
	// span the original graph, so its weight is not an MST weight.
	ErrTargetDisconnected = errors.New("aco: target tree is not connected")
)

// Default parameter values.
const (
	DefaultAlpha         = 1.0
	DefaultBeta          = 2.0
	DefaultRho           = 0.1
	DefaultMaxIterations = 5
)

// Options configures an Engine.
type Options struct {
	// Alpha is the pheromone exponent (≥ 0).
	Alpha float64
	// Beta is the heuristic exponent (≥ 0).
	Beta float64
	// Rho is the deposit/decay rate in (0, 1].
	Rho float64
	// MaxIterations (σ) bounds the number of tours (≥ 1).
	MaxIterations int
	// Seed drives the roulette draws; 0 selects rng.DefaultSeed.
	Seed int64

	// Logger receives per-tour Debug lines and a run summary at Info.
	// Nil discards everything.
	Logger logrus.FieldLogger
	// Observer is notified of tours, improvements and the final result. May be nil.
	Observer Observer
}

// DefaultOptions returns α=1, β=2, ρ=0.1, σ=5 with the default seed.
func DefaultOptions() Options {
	return Options{
		Alpha:         DefaultAlpha,
		Beta:          DefaultBeta,
		Rho:           DefaultRho,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks parameter ranges.
func (o Options) Validate() error {
	switch {
	case o.Alpha < 0 || math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0):
		return fmt.Errorf("alpha=%v must be finite and >= 0: %w", o.Alpha, ErrInvalidOptions)
	case o.Beta < 0 || math.IsNaN(o.Beta) || math.IsInf(o.Beta, 0):
		return fmt.Errorf("beta=%v must be finite and >= 0: %w", o.Beta, ErrInvalidOptions)
	case !(o.Rho > 0 && o.Rho <= 1):
		return fmt.Errorf("rho=%v must be in (0,1]: %w", o.Rho, ErrInvalidOptions)
	case o.MaxIterations < 1:
		return fmt.Errorf("max iterations=%d must be >= 1: %w", o.MaxIterations, ErrInvalidOptions)
	}

	return nil
}

// State is the phase of an Engine.
type State int

const (
	// Idle is the state before a run and between tours.
	Idle State = iota
	// TourInProgress is set while the ant walks.
	TourInProgress
	// TourComplete follows a walk, before fitness and pheromones are applied.
	TourComplete
	// PheromoneUpdated follows the pheromone update of a tour.
	PheromoneUpdated
	// Converged is terminal: the best tour reached the target weight.
	Converged
	// Exhausted is terminal: MaxIterations tours ran without reaching the target.
	Exhausted
)

var stateNames = [...]string{"idle", "tour-in-progress", "tour-complete", "pheromone-updated", "converged", "exhausted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}

	return stateNames[s]
}

// Observer receives progress notifications from Run. Calls happen on the
// goroutine executing Run, between tours.
type Observer interface {
	// TourCompleted is called after every tour with its 1-based iteration.
	TourCompleted(iteration int, weight float64)
	// BestImproved is called when a tour replaces the best solution.
	BestImproved(iteration int, weight float64)
	// RunFinished is called once with the final result.
	RunFinished(res *Result)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) TourCompleted(int, float64) {}
func (NopObserver) BestImproved(int, float64)  {}
func (NopObserver) RunFinished(*Result)        {}

// Result is the outcome of Run, detached from the engine's internal state.
type Result struct {
	// RunID correlates log lines and metrics of one run.
	RunID uuid.UUID
	// Tour is the best tour mapped back to original edges, in visiting order.
	Tour []*core.Edge
	// Nodes lists the construction labels of the best tour.
	Nodes []string
	// Weight is the best tour's total weight.
	Weight float64
	// TargetWeight is the MST weight convergence was measured against.
	TargetWeight float64
	// NumNodes is |V| of the original graph.
	NumNodes int
	// Iterations counts the tours executed.
	Iterations int
	// BestIteration is the 1-based iteration at which Weight was last reached.
	BestIteration int
	// MaxIterations is the configured σ.
	MaxIterations int
	// Converged reports Weight <= TargetWeight, up to one ulp per summed weight.
	Converged bool
}

// String renders "m = 2, n = 3, w = 3, i = 1/5, a = 1".
func (r *Result) String() string {
	return fmt.Sprintf("m = %d, n = %d, w = %s, i = %d/%d, a = %d",
		len(r.Tour), r.NumNodes, strconv.FormatFloat(r.Weight, 'g', -1, 64),
		r.Iterations, r.MaxIterations, r.BestIteration)
}
