// Package costmodel defines the travel-cost oracle consumed by the solvers.
//
// A Model answers Cost(i, j) for location indices in [0..Len()-1]. Costs are
// non-negative reals or Unreachable (+Inf); Cost(i, i) is always Unreachable.
// No symmetry and no triangle inequality are assumed, so asymmetric inputs
// (one-way streets, uphill penalties, missing links) are first-class.
//
// Solvers never query a Model directly in their hot loops. They call
// Snapshot once, which evaluates every ordered pair, rejects malformed
// values (NaN, negative, −Inf) with a sentinel error naming the pair, and
// returns a dense, validated *Matrix.
//
// Adapters:
//
//   - FromRows: a [][]float64 cost table.
//   - Func: any func(i, j int) float64 closure.
//   - Geo: geographic sites (orb.Point + elevation) with haversine
//     distance, an asymmetric climb penalty and optional blocked links.
//
// Complexity:
//   - Snapshot / FromRows: O(n²) time and memory.
//   - Matrix.Cost:         O(1).
//   - TourCost:            O(n).
package costmodel
