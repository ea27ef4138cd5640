package bnb

import (
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"
)

// Defaults applied by DefaultOptions.
const (
	DefaultTimeAllowance       = 60 * time.Second
	DefaultPriorityWeight      = 16.0
	DefaultGreedyTimeAllowance = 10 * time.Second
)

// Option configures Solve via functional arguments. An invalid Option is
// recorded and surfaced by Solve as ErrOptionViolation.
type Option func(*Options)

// Options holds the solver configuration.
type Options struct {
	// TimeAllowance bounds the whole call, greedy seeding included. Must be > 0.
	TimeAllowance time.Duration

	// PriorityWeight is W in priority = lowerBound/W − depth. Larger values
	// favour depth over bound quality. Must be > 0 and finite.
	PriorityWeight float64

	// Seed, if non-nil, initialises BSSF.
	Seed *Seed

	// GreedySeed runs the nearest-neighbour heuristic when Seed is nil.
	GreedySeed bool

	// GreedyTimeAllowance bounds the heuristic. Must be > 0 when GreedySeed is set.
	GreedyTimeAllowance time.Duration

	// Logger receives run events; see package logging for verbosities.
	Logger logr.Logger

	// Recorder, if non-nil, observes every successful result.
	Recorder Recorder

	// TracerProvider supplies the tracer for the Solve span; nil selects
	// the global provider.
	TracerProvider trace.TracerProvider

	// OnEnqueue is called after every push onto the frontier, root included.
	OnEnqueue func(s State)

	// OnDequeue is called after a state is popped, before the prune check.
	OnDequeue func(s State)

	// OnImprove is called after every strict BSSF improvement.
	OnImprove func(imp Improvement)

	err error
}

// DefaultOptions returns:
//   - TimeAllowance:       60s
//   - PriorityWeight:      16
//   - GreedySeed:          false (GreedyTimeAllowance 10s when enabled)
//   - Logger:              discard
//   - no seed, recorder, tracer provider or hooks.
func DefaultOptions() Options {
	return Options{
		TimeAllowance:       DefaultTimeAllowance,
		PriorityWeight:      DefaultPriorityWeight,
		GreedyTimeAllowance: DefaultGreedyTimeAllowance,
		Logger:              logr.Discard(),
		OnEnqueue:           func(State) {},
		OnDequeue:           func(State) {},
		OnImprove:           func(Improvement) {},
	}
}

// WithTimeAllowance sets the overall time budget.
func WithTimeAllowance(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: %w: %v", ErrOptionViolation, ErrInvalidTimeAllowance, d)
			return
		}
		o.TimeAllowance = d
	}
}

// WithPriorityWeight sets W in the frontier priority.
func WithPriorityWeight(w float64) Option {
	return func(o *Options) {
		if !(w > 0) || math.IsInf(w, 0) {
			o.err = fmt.Errorf("%w: %w: %g", ErrOptionViolation, ErrInvalidPriorityWeight, w)
			return
		}
		o.PriorityWeight = w
	}
}

// WithSeed supplies an initial incumbent. It takes precedence over WithGreedySeed.
func WithSeed(s Seed) Option {
	return func(o *Options) {
		cp := s
		if s.Tour != nil {
			cp.Tour = append(make([]int, 0, len(s.Tour)), s.Tour...)
		}
		o.Seed = &cp
	}
}

// WithGreedySeed enables nearest-neighbour seeding with budget d.
func WithGreedySeed(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: %w: greedy %v", ErrOptionViolation, ErrInvalidTimeAllowance, d)
			return
		}
		o.GreedySeed = true
		o.GreedyTimeAllowance = d
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder sets the result recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// WithTracerProvider sets the tracer provider for the Solve span.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) { o.TracerProvider = tp }
}

// WithOnEnqueue registers a hook run after each frontier push.
func WithOnEnqueue(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a hook run after each pop.
func WithOnDequeue(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnImprove registers a hook run after each strict BSSF improvement.
func WithOnImprove(fn func(Improvement)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// validate checks fields that may have been set directly, bypassing the
// With* constructors.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.TimeAllowance <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeAllowance, o.TimeAllowance)
	}
	if !(o.PriorityWeight > 0) || math.IsInf(o.PriorityWeight, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidPriorityWeight, o.PriorityWeight)
	}
	if o.GreedySeed && o.GreedyTimeAllowance <= 0 {
		return fmt.Errorf("%w: greedy %v", ErrInvalidTimeAllowance, o.GreedyTimeAllowance)
	}
	if o.Seed != nil && len(o.Seed.Tour) == 0 && (math.IsNaN(o.Seed.Cost) || o.Seed.Cost < 0) {
		return fmt.Errorf("%w: cost %g", ErrInvalidSeed, o.Seed.Cost)
	}
	if o.OnEnqueue == nil {
		o.OnEnqueue = func(State) {}
	}
	if o.OnDequeue == nil {
		o.OnDequeue = func(State) {}
	}
	if o.OnImprove == nil {
		o.OnImprove = func(Improvement) {}
	}

	return nil
}
