package greedy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/atsp/costmodel"
)

// ErrInvalidTimeAllowance indicates a non-positive time budget.
var ErrInvalidTimeAllowance = errors.New("greedy: time allowance must be positive")

// Result is the outcome of Seed.
type Result struct {
	// Tour is the open visiting order (closing edge implied). When
	// Completed is false it holds the longest partial tour found, or is
	// empty if none was attempted.
	Tour []int

	// Completed reports whether Tour visits every location.
	Completed bool

	// Cost is the closed-tour cost including the return edge. It is
	// Unreachable when the tour is incomplete or cannot close.
	Cost float64

	// Elapsed is the wall-clock time spent, model snapshot included.
	Elapsed time.Duration

	// StartsTried counts starting locations attempted.
	StartsTried int
}

// Seed runs the nearest-neighbour heuristic within timeAllowance.
//
// Errors: ErrInvalidTimeAllowance, and construction errors from
// costmodel.Snapshot (ErrEmptyInput, ErrNegativeCost, ErrNaNCost).
// Running out of time or being cancelled is not an error; the best partial
// result so far is returned.
func Seed(ctx context.Context, m costmodel.Model, timeAllowance time.Duration) (Result, error) {
	begin := time.Now()
	if timeAllowance <= 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidTimeAllowance, timeAllowance)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cm, err := costmodel.Snapshot(m)
	if err != nil {
		return Result{}, err
	}

	var (
		n        = cm.Len()
		deadline = begin.Add(timeAllowance)
		expired  = func() bool { return ctx.Err() != nil || !time.Now().Before(deadline) }
		res      = Result{Cost: costmodel.Unreachable}
		visited  = make([]bool, n)
		tour     = make([]int, 0, n)
		start    int
	)
	for start = 0; start < n && !expired(); start++ {
		res.StartsTried++
		tour = walk(cm, start, tour[:0], visited, expired)
		if len(tour) == n {
			res.Tour = append([]int(nil), tour...)
			res.Completed = true
			break
		}
		if len(tour) > len(res.Tour) {
			res.Tour = append([]int(nil), tour...)
		}
	}

	if res.Completed {
		res.Cost = costmodel.TourCost(cm, res.Tour)
	}
	res.Elapsed = time.Since(begin)

	return res, nil
}

// walk extends tour from start by repeatedly taking the cheapest reachable
// unvisited location. It stops when every location is visited, when no
// unvisited location is reachable, or when expired reports true.
// visited is cleared before returning.
func walk(cm *costmodel.Matrix, start int, tour []int, visited []bool, expired func() bool) []int {
	var (
		n        = cm.Len()
		cur      = start
		next     int
		nextCost float64
		c        int
		w        float64
	)
	tour = append(tour, start)
	visited[start] = true
	for len(tour) < n && !expired() {
		next, nextCost = -1, costmodel.Unreachable
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			w = cm.Cost(cur, c)
			if w < nextCost {
				next, nextCost = c, w
			}
		}
		if next < 0 {
			break // dead end
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}
	for _, c = range tour {
		visited[c] = false
	}

	return tour
}
