// Package greedy builds a nearest-neighbour tour used to seed the
// branch-and-bound search with a finite upper bound.
//
// For each starting location in input order the heuristic repeatedly moves
// to the cheapest reachable unvisited location (first encountered wins a
// tie). The first start that visits every location ends the search; the
// result is therefore "first feasible", not "best of all starts". When no
// start completes, the longest partial tour observed is returned with
// Completed=false.
//
// One time budget covers all starts. The deadline and the context are
// polled before every start and before every extension step.
//
// Complexity: O(n³) in the worst case (n starts × n steps × n candidates).
package greedy
