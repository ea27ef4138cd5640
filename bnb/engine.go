package bnb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/atsp/bound"
	"github.com/katalvlaran/atsp/costmodel"
	"github.com/katalvlaran/atsp/frontier"
	"github.com/katalvlaran/atsp/greedy"
	"github.com/katalvlaran/atsp/logging"
)

const tracerName = "github.com/katalvlaran/atsp/bnb"

// Solve searches for a minimum-cost closed tour over the locations of m,
// starting and ending at location 0.
//
// Errors are returned only for malformed input: ErrEmptyInput and the
// costmodel construction errors, ErrInvalidSeed, and option errors
// (ErrOptionViolation, ErrInvalidTimeAllowance, ErrInvalidPriorityWeight).
// Running out of time, cancellation and the absence of any feasible tour
// are reported through Result.
//
// A nil ctx is treated as context.Background().
//
// Complexity: exponential in n in the worst case; see the package docs.
func Solve(ctx context.Context, m costmodel.Model, opts ...Option) (Result, error) {
	begin := time.Now()

	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	ctx, span := tp.Tracer(tracerName).Start(ctx, "bnb.Solve")
	defer span.End()

	res, err := solve(ctx, begin, m, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return Result{}, err
	}
	span.SetAttributes(
		attribute.Int("atsp.n", m.Len()),
		attribute.Float64("atsp.cost", res.Cost),
		attribute.Bool("atsp.exhausted", res.Exhausted),
		attribute.Int("atsp.states_created", res.StatesCreated),
	)
	if o.Recorder != nil {
		o.Recorder.ObserveSolve(res)
	}

	return res, nil
}

// solver carries the per-call search state. Nothing in it outlives Solve.
type solver struct {
	ctx      context.Context
	cm       *costmodel.Matrix
	n        int
	opts     Options
	log      logr.Logger
	span     trace.Span
	begin    time.Time
	deadline time.Time

	queue    *frontier.Queue[*State]
	onTour   []bool
	bssfCost float64
	bssfTour []int

	res Result
}

func solve(ctx context.Context, begin time.Time, m costmodel.Model, o Options) (Result, error) {
	cm, err := costmodel.Snapshot(m)
	if err != nil {
		return Result{}, err
	}

	s := &solver{
		ctx:      ctx,
		cm:       cm,
		n:        cm.Len(),
		opts:     o,
		log:      o.Logger.WithName("bnb"),
		span:     trace.SpanFromContext(ctx),
		begin:    begin,
		deadline: begin.Add(o.TimeAllowance),
		queue:    frontier.New(byPriority),
		onTour:   make([]bool, cm.Len()),
		bssfCost: costmodel.Unreachable,
	}
	if err = s.seed(); err != nil {
		return Result{}, err
	}

	if s.n == 1 {
		s.bssfCost, s.bssfTour = 0, []int{0}
		s.res.SolutionsFound = 1
		s.res.Exhausted = true
		s.res.Termination = FrontierEmpty

		return s.result(), nil
	}

	s.log.V(logging.DEBUG).Info("solve started",
		"n", s.n, "timeAllowance", o.TimeAllowance, "seeded", s.res.Seeded, "bssf", s.bssfCost)
	s.run()
	res := s.result()
	s.log.Info("solve finished",
		"n", s.n,
		"cost", res.Cost,
		"exhausted", res.Exhausted,
		"termination", res.Termination.String(),
		"solutions", res.SolutionsFound,
		"created", res.StatesCreated,
		"pruned", res.StatesPruned,
		"maxFrontier", res.MaxFrontier,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// seed initialises BSSF from an explicit seed or, failing that, from the
// greedy heuristic.
func (s *solver) seed() error {
	if sd := s.opts.Seed; sd != nil {
		if len(sd.Tour) == 0 {
			s.bssfCost = sd.Cost
			s.res.Seeded = !math.IsInf(sd.Cost, 1)

			return nil
		}
		if !costmodel.IsPermutation(sd.Tour, s.n) {
			return fmt.Errorf("%w: tour %v is not a permutation of 0..%d", ErrInvalidSeed, sd.Tour, s.n-1)
		}
		tour, _ := costmodel.RotateToStart(sd.Tour, 0)
		cost := costmodel.TourCost(s.cm, tour)
		if costmodel.IsUnreachable(cost) {
			s.log.Info("seed tour uses a missing edge, ignored", "tour", sd.Tour)

			return nil
		}
		if sd.Cost != 0 && sd.Cost != cost {
			s.log.Info("seed cost disagrees with its tour, using the tour cost",
				"suppliedCost", sd.Cost, "tourCost", cost)
		}
		s.bssfCost, s.bssfTour = cost, tour
		s.res.Seeded = true

		return nil
	}

	if !s.opts.GreedySeed || s.n == 1 {
		return nil
	}
	budget := s.opts.GreedyTimeAllowance
	if left := time.Until(s.deadline); left < budget {
		budget = left
	}
	if budget <= 0 {
		return nil
	}
	g, err := greedy.Seed(s.ctx, s.cm, budget)
	if err != nil {
		return err
	}
	s.log.V(logging.DEBUG).Info("greedy seed",
		"completed", g.Completed, "cost", g.Cost, "startsTried", g.StartsTried, "elapsed", g.Elapsed)
	if g.Completed && !costmodel.IsUnreachable(g.Cost) {
		tour, _ := costmodel.RotateToStart(g.Tour, 0)
		s.bssfCost, s.bssfTour = g.Cost, tour
		s.res.Seeded = true
	}

	return nil
}

// run is the best-first loop.
func (s *solver) run() {
	root := &State{tour: []int{0}}
	root.matrix, root.lowerBound = bound.Build(s.cm)
	root.priority = priorityOf(root.lowerBound, 1, s.opts.PriorityWeight)
	s.res.StatesCreated++
	s.push(root)

	var (
		st *State
		ok bool
	)
	for s.queue.Len() > 0 {
		if t, stop := s.expired(); stop {
			s.res.Termination = t
			return
		}
		st, ok = s.queue.Pop()
		if !ok {
			break
		}
		s.opts.OnDequeue(*st)
		s.log.V(logging.TRACE).Info("pop",
			"depth", st.Depth(), "lowerBound", st.lowerBound, "priority", st.priority, "frontier", s.queue.Len())
		if st.lowerBound > s.bssfCost {
			s.res.StatesPruned++
			continue
		}
		s.res.StatesExpanded++
		s.expand(st)
	}
	s.res.Exhausted = true
	s.res.Termination = FrontierEmpty
}

// expired reports whether the search must stop and why.
func (s *solver) expired() (Termination, bool) {
	if err := s.ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return TimeExpired, true
		}
		return Cancelled, true
	}
	if !time.Now().Before(s.deadline) {
		return TimeExpired, true
	}

	return FrontierEmpty, false
}

// expand attempts every location as the next stop after parent.
func (s *solver) expand(parent *State) {
	var (
		last = parent.Last()
		v, c int
	)
	for _, v = range parent.tour {
		s.onTour[v] = true
	}
	defer func() {
		for _, v = range parent.tour {
			s.onTour[v] = false
		}
	}()

	var (
		w, newCost float64
		tour       []int
		child      *State
	)
	for c = 0; c < s.n; c++ {
		s.res.StatesCreated++
		if s.onTour[c] {
			s.res.StatesPruned++
			continue
		}
		w = s.cm.Cost(last, c)
		if costmodel.IsUnreachable(w) {
			s.res.StatesPruned++
			continue
		}
		newCost = parent.pathCost + w
		if newCost >= s.bssfCost {
			s.res.StatesPruned++
			continue
		}

		tour = make([]int, len(parent.tour)+1)
		copy(tour, parent.tour)
		tour[len(parent.tour)] = c
		if len(tour) == s.n {
			s.checkSolution(tour, newCost)
			continue
		}

		child = &State{tour: tour, pathCost: newCost, matrix: parent.matrix.Clone()}
		child.lowerBound = parent.lowerBound + child.matrix.CommitEdge(last, c)
		if child.lowerBound > s.bssfCost {
			s.res.StatesPruned++
			continue
		}
		child.priority = priorityOf(child.lowerBound, len(tour), s.opts.PriorityWeight)
		s.push(child)
	}
}

// checkSolution closes a complete tour and updates BSSF.
func (s *solver) checkSolution(tour []int, pathCost float64) {
	closing := s.cm.Cost(tour[len(tour)-1], tour[0])
	if costmodel.IsUnreachable(closing) {
		s.res.StatesPruned++
		return
	}
	total := pathCost + closing
	if total > s.bssfCost {
		s.res.StatesPruned++
		return
	}
	s.res.ToursClosed++

	switch {
	case total < s.bssfCost:
		s.bssfCost, s.bssfTour = total, tour
		s.res.SolutionsFound++
		imp := Improvement{
			Cost:          total,
			Tour:          append([]int(nil), tour...),
			Elapsed:       time.Since(s.begin),
			StatesCreated: s.res.StatesCreated,
		}
		s.log.V(logging.DEBUG).Info("improved", "cost", total, "solutions", s.res.SolutionsFound, "elapsed", imp.Elapsed)
		s.span.AddEvent("improved", trace.WithAttributes(attribute.Float64("atsp.cost", total)))
		s.opts.OnImprove(imp)
	case s.bssfTour == nil:
		// Equal to a cost-only seed: keep a feasible tour to report.
		s.bssfTour = tour
	}
}

func (s *solver) push(st *State) {
	s.queue.Push(st)
	if l := s.queue.Len(); l > s.res.MaxFrontier {
		s.res.MaxFrontier = l
	}
	s.opts.OnEnqueue(*st)
}

// result assembles the public Result from BSSF and the counters.
func (s *solver) result() Result {
	res := s.res
	res.FrontierLeft = s.queue.Len()
	res.Elapsed = time.Since(s.begin)
	if s.bssfTour != nil {
		res.Cost = s.bssfCost
		res.Tour = append([]int(nil), s.bssfTour...)
	} else {
		res.Cost = costmodel.Unreachable
		res.Tour = []int{}
	}
	res.Optimal = res.Exhausted && s.bssfTour != nil

	return res
}
