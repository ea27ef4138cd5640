// Package frontier provides the priority queue that holds not-yet-expanded
// search states.
//
// The ordering is supplied by the caller as an explicit comparator rather
// than derived from methods on the element type. Elements the comparator
// considers equal leave the queue in insertion order (FIFO), which makes the
// search reproducible for a fixed input.
//
// Complexity:
//   - Push / Pop: O(log n)
//   - Peek / Len: O(1)
package frontier
