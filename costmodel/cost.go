package costmodel

// TourCost returns the cost of the closed tour visiting tour[0], tour[1], …,
// tour[len-1] and returning to tour[0]. The tour is given open (no repeated
// start). Any Unreachable edge makes the whole tour Unreachable.
//
// Degenerate inputs: an empty tour costs Unreachable; a one-location tour
// costs 0 (nothing to travel).
//
// Complexity: O(len(tour)).
func TourCost(m Model, tour []int) float64 {
	if m == nil || len(tour) == 0 {
		return Unreachable
	}
	if len(tour) == 1 {
		return 0
	}
	open := PathCost(m, tour)
	if IsUnreachable(open) {
		return Unreachable
	}
	closing := m.Cost(tour[len(tour)-1], tour[0])
	if IsUnreachable(closing) {
		return Unreachable
	}

	return open + closing
}

// PathCost returns the sum of consecutive edge costs along tour without the
// closing edge. Unreachable if any edge is missing.
//
// Complexity: O(len(tour)).
func PathCost(m Model, tour []int) float64 {
	var (
		sum float64
		w   float64
		i   int
	)
	for i = 1; i < len(tour); i++ {
		w = m.Cost(tour[i-1], tour[i])
		if IsUnreachable(w) {
			return Unreachable
		}
		sum += w
	}

	return sum
}

// IsPermutation reports whether tour visits every index in [0..n-1] exactly once.
//
// Complexity: O(n) time and memory.
func IsPermutation(tour []int, n int) bool {
	if len(tour) != n || n <= 0 {
		return false
	}
	seen := make([]bool, n)
	var v int
	for _, v = range tour {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// RotateToStart returns a copy of tour rotated so that it begins at start.
// ok is false when start does not occur in tour.
//
// Complexity: O(len(tour)).
func RotateToStart(tour []int, start int) (out []int, ok bool) {
	var (
		pivot = -1
		i     int
	)
	for i = range tour {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, false
	}
	out = make([]int, len(tour))
	for i = range tour {
		out[i] = tour[(pivot+i)%len(tour)]
	}

	return out, true
}
