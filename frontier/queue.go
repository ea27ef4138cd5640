package frontier

import "container/heap"

// Queue is a min-priority queue ordered by a caller-supplied comparator,
// with FIFO tie-breaking. It is not safe for concurrent use.
type Queue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// New returns an empty queue; less(a, b) reports whether a must leave before b.
// New panics on a nil comparator.
func New[T any](less func(a, b T) bool) *Queue[T] {
	if less == nil {
		panic("frontier: nil comparator")
	}

	return &Queue[T]{h: entryHeap[T]{less: less}}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Push inserts v.
func (q *Queue[T]) Push(v T) {
	heap.Push(&q.h, entry[T]{val: v, seq: q.seq})
	q.seq++
}

// Pop removes and returns the minimum element; ok is false when empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if len(q.h.items) == 0 {
		return v, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.val, true
}

// Peek returns the minimum element without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if len(q.h.items) == 0 {
		return v, false
	}

	return q.h.items[0].val, true
}

// entry pairs a value with its insertion sequence number.
type entry[T any] struct {
	val T
	seq uint64
}

// entryHeap implements heap.Interface over entries.
type entryHeap[T any] struct {
	items []entry[T]
	less  func(a, b T) bool
}

func (h entryHeap[T]) Len() int { return len(h.items) }

// Less orders by comparator, then by insertion order.
func (h entryHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.val, b.val) {
		return true
	}
	if h.less(b.val, a.val) {
		return false
	}

	return a.seq < b.seq
}

func (h entryHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(entry[T])) }

func (h *entryHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero
	h.items = old[:n-1]

	return item
}
