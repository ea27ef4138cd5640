package costmodel

import (
	"fmt"
	"math"
)

// Matrix is a validated, dense snapshot of a Model.
// Storage is row-major: cost(i→j) lives at data[i*n+j]. The diagonal is
// always Unreachable. A Matrix is immutable after construction and safe
// for concurrent readers.
type Matrix struct {
	n    int
	data []float64
}

var _ Model = (*Matrix)(nil)

// Snapshot evaluates m on every ordered pair and validates the result.
//
// Validation (per off-diagonal pair, in row-major order; first failure wins):
//   - NaN              → ErrNaNCost
//   - negative or −Inf → ErrNegativeCost
//
// Returned errors wrap the sentinel with the offending pair, so callers can
// both match with errors.Is and report the location.
//
// Complexity: O(n²) time, O(n²) memory.
func Snapshot(m Model) (*Matrix, error) {
	if m == nil {
		return nil, ErrEmptyInput
	}
	if mm, ok := m.(*Matrix); ok {
		// A nil or zero-value *Matrix was never built by Snapshot.
		if mm == nil || mm.n <= 0 {
			return nil, ErrEmptyInput
		}
		// Already validated and immutable; share it.
		return mm, nil
	}
	n := m.Len()
	if n <= 0 {
		return nil, ErrEmptyInput
	}

	var (
		out  = &Matrix{n: n, data: make([]float64, n*n)}
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				out.data[i*n+j] = Unreachable
				continue
			}
			x = m.Cost(i, j)
			if err = checkCost(i, j, x); err != nil {
				return nil, err
			}
			out.data[i*n+j] = x
		}
	}

	return out, nil
}

// FromRows builds a Matrix from a square cost table. Diagonal entries of
// rows are ignored (replaced by Unreachable), so both 0 and +Inf diagonals
// are accepted.
//
// Errors: ErrEmptyInput, ErrNonSquare, ErrNaNCost, ErrNegativeCost.
//
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(rows[i]), n)
		}
	}

	return Snapshot(Func{N: n, Fn: func(i, j int) float64 { return rows[i][j] }})
}

// checkCost validates a single off-diagonal cost.
func checkCost(i, j int, x float64) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%w: cost(%d,%d)", ErrNaNCost, i, j)
	}
	if x < 0 {
		return fmt.Errorf("%w: cost(%d,%d)=%g", ErrNegativeCost, i, j, x)
	}

	return nil
}

// Len returns the number of locations.
func (m *Matrix) Len() int { return m.n }

// Cost returns the cost of travelling i→j. Out-of-range indices are
// reported as Unreachable; use At for an error-returning accessor.
func (m *Matrix) Cost(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return Unreachable
	}

	return m.data[i*m.n+j]
}

// At returns cost(i→j) or ErrIndexOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: (%d,%d) for n=%d", ErrIndexOutOfRange, i, j, m.n)
	}

	return m.data[i*m.n+j], nil
}

// Row returns a copy of row i (nil when out of range).
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}
