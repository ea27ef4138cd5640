package costmodel

import (
	"errors"
	"math"
)

// Sentinel errors returned by constructors in this package.
var (
	// ErrEmptyInput indicates a model with zero locations (or a nil model).
	ErrEmptyInput = errors.New("costmodel: no locations")

	// ErrNonSquare indicates a cost table whose rows differ in length from its row count.
	ErrNonSquare = errors.New("costmodel: cost table is not square")

	// ErrNegativeCost indicates a negative (or −Inf) travel cost.
	ErrNegativeCost = errors.New("costmodel: negative travel cost")

	// ErrNaNCost indicates a NaN travel cost.
	ErrNaNCost = errors.New("costmodel: NaN travel cost")

	// ErrIndexOutOfRange indicates a location index outside [0..n-1].
	ErrIndexOutOfRange = errors.New("costmodel: location index out of range")
)

// Unreachable is the sentinel cost of a missing edge.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether x is the Unreachable sentinel.
func IsUnreachable(x float64) bool { return math.IsInf(x, 1) }

// Model is the travel-cost oracle.
//
// Contract:
//   - Len() is the number of locations; indices are 0..Len()-1.
//   - Cost(i, j) is ≥ 0 or Unreachable; Cost(i, i) is Unreachable.
//   - Implementations need not be symmetric.
type Model interface {
	Len() int
	Cost(i, j int) float64
}

// Location is an opaque identity with an index into the cost matrix.
// Only Index matters to the solvers; ID is carried for callers.
type Location struct {
	ID    string
	Index int
}

// Locations builds one Location per id, indexed in argument order.
func Locations(ids ...string) []Location {
	out := make([]Location, len(ids))
	var i int
	for i = range ids {
		out[i] = Location{ID: ids[i], Index: i}
	}

	return out
}

// Func adapts a closure to Model. Fn is called for i≠j only when wrapped by
// Snapshot; direct callers get Unreachable on the diagonal regardless of Fn.
type Func struct {
	N  int
	Fn func(i, j int) float64
}

var _ Model = Func{}

// Len returns N.
func (f Func) Len() int { return f.N }

// Cost returns Fn(i, j), or Unreachable on the diagonal.
func (f Func) Cost(i, j int) float64 {
	if i == j || f.Fn == nil {
		return Unreachable
	}

	return f.Fn(i, j)
}
