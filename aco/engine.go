package aco

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/antmst/construction"
	"github.com/katalvlaran/antmst/mst"
	"github.com/katalvlaran/antmst/rng"
)

// Engine owns the run state of the single-ant ACO over one construction graph.
type Engine struct {
	cg       *construction.Graph
	opts     Options
	rnd      *rand.Rand
	log      logrus.FieldLogger
	observer Observer
	target   float64
	probs    []float64 // roulette scratch space

	state         State
	iterations    int
	bestIteration int
	best          *Tour
	last          *Tour
}

// New prepares an engine converging on the weight of target, which must span
// the original graph.
func New(cg *construction.Graph, target *mst.Tree, opts Options) (*Engine, error) {
	if cg == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if target == nil || !target.IsConnected() {
		return nil, fmt.Errorf("New: %w", ErrTargetDisconnected)
	}

	return NewWithTarget(cg, target.TotalWeight(), opts)
}

// NewWithTarget prepares an engine converging on a known optimum weight.
func NewWithTarget(cg *construction.Graph, weight float64, opts Options) (*Engine, error) {
	if cg == nil {
		return nil, fmt.Errorf("NewWithTarget: %w", ErrNilGraph)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewWithTarget: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	observer := opts.Observer
	if observer == nil {
		observer = NopObserver{}
	}

	return &Engine{
		cg:       cg,
		opts:     opts,
		rnd:      rng.FromSeed(opts.Seed),
		log:      logger.WithField("module", "aco"),
		observer: observer,
		target:   weight,
		probs:    make([]float64, 0, cg.NumEdgeNodes()),
	}, nil
}

// Run executes up to MaxIterations tours, stopping early once the best tour
// weighs no more than the target. Pheromones are reset to their initial value
// first, so repeated runs start from the same construction graph state.
//
// The only error is cancellation of ctx, checked before every tour.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.reset()
	runID := uuid.New()
	log := e.log.WithField("run_id", runID.String())

	for e.iterations < e.opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			e.state = Idle
			return nil, fmt.Errorf("Run: after %d iterations: %w", e.iterations, err)
		}

		e.state = TourInProgress
		tour := e.walk()
		e.iterations++
		e.last = tour
		e.state = TourComplete
		log.WithFields(logrus.Fields{
			"iteration": e.iterations,
			"weight":    tour.Weight,
			"edges":     len(tour.Nodes),
		}).Debug("tour complete")
		e.observer.TourCompleted(e.iterations, tour.Weight)

		// ties replace the best and move the best iteration forward
		if e.best == nil || tour.Weight <= e.best.Weight {
			e.best = tour
			e.bestIteration = e.iterations
			e.observer.BestImproved(e.iterations, tour.Weight)
		}

		e.updatePheromones(tour)
		e.state = PheromoneUpdated

		if e.reached() {
			e.state = Converged
			break
		}
		e.state = Idle
	}
	if e.state != Converged {
		e.state = Exhausted
	}

	res := e.result(runID)
	log.WithFields(logrus.Fields{
		"weight":         res.Weight,
		"target":         res.TargetWeight,
		"iterations":     res.Iterations,
		"best_iteration": res.BestIteration,
		"converged":      res.Converged,
	}).Info("run finished")
	e.observer.RunFinished(res)

	return res, nil
}

func (e *Engine) reset() {
	e.cg.ResetPheromones()
	e.state = Idle
	e.iterations = 0
	e.bestIteration = 0
	e.best = nil
	e.last = nil
}

// reached compares the best weight with the target. The slack is one ulp of
// the target per summed weight, the most that summing the same n-1 weights in
// another order can drift.
func (e *Engine) reached() bool {
	if e.best == nil {
		return false
	}
	terms := math.Max(1, float64(e.cg.Original().NumNodes()-1))
	eps := terms * 0x1p-52 * math.Abs(e.target)

	return e.best.Weight <= e.target+eps
}

func (e *Engine) result(runID uuid.UUID) *Result {
	res := &Result{
		RunID:         runID,
		TargetWeight:  e.target,
		NumNodes:      e.cg.Original().NumNodes(),
		Iterations:    e.iterations,
		BestIteration: e.bestIteration,
		MaxIterations: e.opts.MaxIterations,
		Converged:     e.state == Converged,
	}
	if e.best != nil {
		res.Tour = e.best.Originals()
		res.Nodes = e.best.Labels()
		res.Weight = e.best.Weight
	}

	return res
}

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Iterations returns the number of tours executed by the last Run.
func (e *Engine) Iterations() int { return e.iterations }

// BestIteration returns the 1-based iteration of the current best, or 0.
func (e *Engine) BestIteration() int { return e.bestIteration }

// MaxIterations returns σ.
func (e *Engine) MaxIterations() int { return e.opts.MaxIterations }

// Best returns the best tour so far, or nil before the first tour.
func (e *Engine) Best() *Tour { return e.best }

// BestWeight returns the best tour's weight, or +Inf before the first tour.
func (e *Engine) BestWeight() float64 {
	if e.best == nil {
		return math.Inf(1)
	}

	return e.best.Weight
}

// LastTour returns the most recent tour, or nil.
func (e *Engine) LastTour() *Tour { return e.last }

// Target returns the weight convergence is measured against.
func (e *Engine) Target() float64 { return e.target }

// Graph returns the construction graph the engine walks.
func (e *Engine) Graph() *construction.Graph { return e.cg }
