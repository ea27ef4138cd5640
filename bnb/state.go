package bnb

import "github.com/katalvlaran/atsp/bound"

// State is one node of the search tree: a partial tour starting at
// location 0 plus its reduced cost matrix. A State handed to a hook is a
// read-only view; accessors return copies.
type State struct {
	tour       []int
	pathCost   float64
	matrix     *bound.Matrix
	lowerBound float64
	priority   float64
}

// Tour returns a copy of the partial tour.
func (s State) Tour() []int { return append([]int(nil), s.tour...) }

// Depth returns the number of locations on the partial tour.
func (s State) Depth() int { return len(s.tour) }

// Last returns the most recently added location.
func (s State) Last() int { return s.tour[len(s.tour)-1] }

// PathCost returns the summed cost of the committed edges.
func (s State) PathCost() float64 { return s.pathCost }

// LowerBound returns the admissible bound on any completion of the tour.
func (s State) LowerBound() float64 { return s.lowerBound }

// Priority returns the frontier key; lower leaves first.
func (s State) Priority() float64 { return s.priority }

// Matrix returns a copy of the reduced cost matrix.
func (s State) Matrix() *bound.Matrix { return s.matrix.Clone() }

func priorityOf(lb float64, depth int, w float64) float64 {
	return lb/w - float64(depth)
}

func byPriority(a, b *State) bool { return a.priority < b.priority }
