// Package metrics exports solver results as Prometheus metrics.
//
// A Recorder implements bnb.Recorder; pass it with bnb.WithRecorder. One
// Recorder may be shared by concurrent Solve calls.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/atsp/bnb"
)

// ErrRegister wraps a failure to register a collector.
var ErrRegister = errors.New("metrics: register collector")

const namespace = "atsp"

// Recorder holds the solver collectors.
type Recorder struct {
	solves      *prometheus.CounterVec
	created     prometheus.Counter
	pruned      prometheus.Counter
	solutions   prometheus.Counter
	duration    prometheus.Histogram
	maxFrontier prometheus.Histogram
}

var _ bnb.Recorder = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil). Registering twice on the same
// registry fails with ErrRegister.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	// Unregistered factory; registration below reports errors instead of panicking.
	f := promauto.With(nil)
	r := &Recorder{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed Solve calls by termination reason.",
		}, []string{"termination"}),
		created: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_created_total",
			Help:      "Search states created, root and child attempts.",
		}),
		pruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_pruned_total",
			Help:      "Search states discarded by a pruning rule.",
		}),
		solutions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_found_total",
			Help:      "Strict improvements of the best tour.",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of Solve.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		maxFrontier: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "max_frontier_size",
			Help:      "Largest frontier observed per Solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}

	var c prometheus.Collector
	for _, c = range []prometheus.Collector{r.solves, r.created, r.pruned, r.solutions, r.duration, r.maxFrontier} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegister, err)
		}
	}

	return r, nil
}

// ObserveSolve records one finished search.
func (r *Recorder) ObserveSolve(res bnb.Result) {
	r.solves.WithLabelValues(res.Termination.String()).Inc()
	r.created.Add(float64(res.StatesCreated))
	r.pruned.Add(float64(res.StatesPruned))
	r.solutions.Add(float64(res.SolutionsFound))
	r.duration.Observe(res.Elapsed.Seconds())
	r.maxFrontier.Observe(float64(res.MaxFrontier))
}
