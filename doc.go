// Package atsp solves the asymmetric Travelling Salesman Problem under a
// wall-clock budget.
//
// Given n locations and a directed travel cost between every ordered pair,
// the solver returns the cheapest closed tour it can find before time runs
// out, and proves it optimal when the search finishes first.
//
// Packages:
//
//	costmodel/   the cost oracle (Model), its validated Matrix snapshot,
//	             FromRows / Func / Geo adapters and TourCost
//	bound/       reduced cost matrices and the admissible lower bound
//	frontier/    generic min-priority queue with FIFO tie-break
//	greedy/      nearest-neighbour seed tour
//	bnb/         best-first branch-and-bound engine (Solve)
//	config/      YAML / environment settings translated into bnb options
//	logging/     zap-backed logr.Logger with DEBUG and TRACE verbosities
//	metrics/     Prometheus recorder for solve statistics
//
// Quick start:
//
//	m, _ := costmodel.FromRows(rows)
//	res, err := bnb.Solve(ctx, m,
//		bnb.WithTimeAllowance(5*time.Second),
//		bnb.WithGreedySeed(time.Second),
//	)
//	// res.Tour starts at 0; res.Optimal reports a proof of optimality.
//
// Asymmetry is first-class: no symmetry or triangle inequality is assumed,
// and missing links are expressed as costmodel.Unreachable (+Inf).
package atsp
