// Package bound implements the reduced cost matrix used by the
// branch-and-bound engine to compute admissible lower bounds.
//
// Reduction: for every row, the minimum finite entry is subtracted from the
// whole row; then the same for every column. The sum of the subtracted
// minima is a lower bound on the cost of any tour that still has to leave
// every row and enter every column exactly once. Lines that are entirely
// +Inf contribute nothing and are left alone; they signal a dead end that
// the engine discovers later through unreachable edges.
//
// Committing an edge from→to closes row "from" and column "to", blocks the
// immediate return to→from, and re-reduces:
//
//	child.LB = parent.LB + a[from][to] + Reduce()
//
// The bound never exceeds the cheapest completion through that edge.
//
// Storage is a flat row-major buffer (offset i*n+j). Clone is O(n²); each
// search state owns its own copy, so no two states alias a buffer.
//
// Complexity:
//   - Build:      O(n²)
//   - Reduce:     O(n²)
//   - CommitEdge: O(n²)
//   - Clone:      O(n²) time and memory
package bound
