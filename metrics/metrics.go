// Package metrics records ACO run statistics as Prometheus metrics. Recorder
// implements aco.Observer and owns a private registry, so several recorders
// can coexist in one process (tests, repeated CLI runs).
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/antmst/aco"
)

// Outcome label values of the runs counter.
const (
	OutcomeConverged = "converged"
	OutcomeExhausted = "exhausted"
)

// Recorder collects ACO metrics.
type Recorder struct {
	registry *prometheus.Registry

	tours        prometheus.Counter
	tourWeight   prometheus.Histogram
	improvements prometheus.Counter
	runs         *prometheus.CounterVec
	runIters     prometheus.Histogram
	bestWeight   prometheus.Gauge
	targetWeight prometheus.Gauge
	gap          prometheus.Gauge
}

var _ aco.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder whose metric names start with namespace
// ("antmst" when empty).
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = "antmst"
	}
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.tours = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "tours_total",
		Help:      "Total number of completed ant tours",
	})
	r.tourWeight = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "tour_weight",
		Help:      "Total original-edge weight of each completed tour",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
	})
	r.improvements = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "best_replacements_total",
		Help:      "Number of tours that replaced the best solution (ties included)",
	})
	r.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "runs_total",
		Help:      "Finished runs by outcome",
	}, []string{"outcome"})
	r.runIters = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "run_iterations",
		Help:      "Iterations consumed per run",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
	r.bestWeight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "best_weight",
		Help:      "Best tour weight of the last finished run",
	})
	r.targetWeight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "target_weight",
		Help:      "MST weight the last run converged against",
	})
	r.gap = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "aco",
		Name:      "best_gap_ratio",
		Help:      "(best - target) / target of the last finished run",
	})

	r.registry.MustRegister(r.tours, r.tourWeight, r.improvements, r.runs,
		r.runIters, r.bestWeight, r.targetWeight, r.gap)

	return r
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// TourCompleted implements aco.Observer.
func (r *Recorder) TourCompleted(_ int, weight float64) {
	r.tours.Inc()
	r.tourWeight.Observe(weight)
}

// BestImproved implements aco.Observer.
func (r *Recorder) BestImproved(int, float64) {
	r.improvements.Inc()
}

// RunFinished implements aco.Observer.
func (r *Recorder) RunFinished(res *aco.Result) {
	if res == nil {
		return
	}
	outcome := OutcomeExhausted
	if res.Converged {
		outcome = OutcomeConverged
	}
	r.runs.WithLabelValues(outcome).Inc()
	r.runIters.Observe(float64(res.Iterations))
	r.bestWeight.Set(res.Weight)
	r.targetWeight.Set(res.TargetWeight)
	if res.TargetWeight > 0 {
		r.gap.Set((res.Weight - res.TargetWeight) / res.TargetWeight)
	} else {
		r.gap.Set(0)
	}
}

// WriteTextfile writes every metric to path in the text exposition format
// (node_exporter textfile collector compatible).
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("WriteTextfile(%s): %w", path, err)
	}

	return nil
}
