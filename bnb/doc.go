// Package bnb implements an anytime best-first branch-and-bound solver for
// the asymmetric Travelling Salesman Problem.
//
// What
//
//   - Search states are partial tours starting at location 0. Each state
//     owns a reduced cost matrix (package bound) whose accumulated
//     reduction is an admissible lower bound on every completion.
//   - States wait in a priority frontier ordered by
//     lowerBound/PriorityWeight − depth, so at similar bound quality the
//     search dives deeper first and finds complete tours early.
//   - The best solution so far (BSSF) is the pruning threshold. It starts
//     at +Inf, or at an external seed, or at a nearest-neighbour tour
//     (package greedy) when WithGreedySeed is set.
//
// Pruning points (each increments StatesPruned):
//
//  1. popped state whose lower bound exceeds BSSF,
//  2. candidate already on the tour,
//  3. unreachable edge,
//  4. path cost ≥ BSSF,
//  5. child lower bound > BSSF,
//  6. complete tour with an unreachable closing edge,
//  7. complete tour costing more than BSSF.
//
// Termination
//
// The loop stops when the frontier empties (Exhausted=true, the result is
// optimal if a tour exists) or when the time allowance elapses or the
// context is cancelled (Exhausted=false, best effort). Neither is an
// error; only malformed input is.
//
// Bookkeeping identity, at exit:
//
//	StatesCreated == StatesPruned + StatesExpanded + ToursClosed + FrontierLeft
//
// Concurrency
//
// One Solve call runs on the calling goroutine and shares no mutable state
// with other calls. Hooks run synchronously on that goroutine.
//
// Complexity
//
//   - Per expanded state: O(n) children × O(n²) matrix clone + reduction.
//   - Worst case exponential in n; memory grows with the frontier
//     (O(n²) per queued state).
package bnb
