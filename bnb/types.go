package bnb

import (
	"errors"
	"time"

	"github.com/katalvlaran/atsp/costmodel"
)

// Sentinel errors returned by Solve.
var (
	// ErrEmptyInput is returned for a model with zero locations.
	ErrEmptyInput = costmodel.ErrEmptyInput

	// ErrInvalidTimeAllowance indicates a non-positive search or greedy budget.
	ErrInvalidTimeAllowance = errors.New("bnb: time allowance must be positive")

	// ErrInvalidPriorityWeight indicates a non-positive or non-finite weight.
	ErrInvalidPriorityWeight = errors.New("bnb: priority weight must be positive and finite")

	// ErrInvalidSeed indicates a seed tour that is not a permutation of the
	// locations, or a NaN/negative seed cost.
	ErrInvalidSeed = errors.New("bnb: invalid seed")

	// ErrOptionViolation wraps errors recorded while applying functional options.
	ErrOptionViolation = errors.New("bnb: invalid option supplied")
)

// Termination tells why the search loop stopped.
type Termination int

const (
	// FrontierEmpty: every state was expanded or pruned; the search is exhaustive.
	FrontierEmpty Termination = iota

	// TimeExpired: the time allowance elapsed first.
	TimeExpired

	// Cancelled: the context was cancelled first.
	Cancelled
)

// String returns a lower-case label, also used as a metrics label value.
func (t Termination) String() string {
	switch t {
	case FrontierEmpty:
		return "frontier_empty"
	case TimeExpired:
		return "time_expired"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Seed is an externally supplied starting incumbent.
//
// With a non-empty Tour, the tour is validated, rotated to start at
// location 0 and re-costed against the model. A non-zero Cost that differs
// from the recomputed one is logged and replaced. A tour that cannot close
// is logged and dropped. With a nil or empty Tour, Cost alone becomes the
// initial pruning threshold and no tour is recorded.
type Seed struct {
	Cost float64
	Tour []int
}

// Result is the outcome of Solve.
type Result struct {
	// Cost of Tour including the closing edge; +Inf when no tour was found.
	Cost float64

	// Tour is the visiting order starting at 0, closing edge implied.
	// Empty when no feasible tour is known.
	Tour []int

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration

	// SolutionsFound counts strict improvements of BSSF during the search.
	SolutionsFound int

	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int

	// StatesCreated counts the root plus every child attempted.
	StatesCreated int

	// StatesPruned counts states discarded at any pruning point.
	StatesPruned int

	// StatesExpanded counts popped states that were branched.
	StatesExpanded int

	// ToursClosed counts complete tours that were not pruned (accepted
	// improvements, fallback acceptances and ties with the incumbent).
	ToursClosed int

	// FrontierLeft is the frontier size at exit.
	FrontierLeft int

	// Exhausted is true when the frontier emptied before the deadline.
	Exhausted bool

	// Optimal is true when Exhausted and a tour is known.
	Optimal bool

	// Seeded is true when BSSF started from a finite seed.
	Seeded bool

	// Termination tells why the search stopped.
	Termination Termination
}

// Improvement describes one strict BSSF update; see WithOnImprove.
type Improvement struct {
	Cost          float64
	Tour          []int
	Elapsed       time.Duration
	StatesCreated int
}

// Recorder receives the final Result of every successful Solve call.
// Implementations must be safe for concurrent use (see package metrics).
type Recorder interface {
	ObserveSolve(res Result)
}
