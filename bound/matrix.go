package bound

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/atsp/costmodel"
)

var inf = math.Inf(1)

// Formatting literals for String.
const (
	_fmtBlocked = "-"
	_fmtSep     = "  "
)

// Matrix is a square, row-major reduced cost matrix.
// Entries are non-negative or +Inf; the diagonal is always +Inf.
type Matrix struct {
	n    int
	data []float64
}

// Build fills a matrix from m (a[i][j] = cost(i,j), +Inf on the diagonal)
// and reduces it. It returns the reduced matrix and the root lower bound.
//
// m is expected to be validated already (see costmodel.Snapshot); Build
// does not re-check signs.
//
// Complexity: O(n²).
func Build(m costmodel.Model) (*Matrix, float64) {
	n := m.Len()
	out := &Matrix{n: n, data: make([]float64, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				out.data[i*n+j] = inf
				continue
			}
			out.data[i*n+j] = m.Cost(i, j)
		}
	}

	return out, out.Reduce()
}

// Len returns the matrix order n.
func (m *Matrix) Len() int { return m.n }

// At returns a[i][j]; out-of-range indices read as +Inf.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return inf
	}

	return m.data[i*m.n+j]
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{n: m.n, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// Reduce subtracts each row's, then each column's, minimum finite nonzero
// entry from that line and returns the total subtracted (delta ≥ 0).
// All-+Inf lines and lines already holding a zero are untouched.
//
// Complexity: O(n²).
func (m *Matrix) Reduce() float64 {
	var (
		n     = m.n
		delta float64
		i, j  int
		lo    float64
		row   []float64
	)

	// Rows.
	for i = 0; i < n; i++ {
		row = m.data[i*n : (i+1)*n]
		lo = inf
		for j = 0; j < n; j++ {
			if row[j] < lo {
				lo = row[j]
			}
		}
		if math.IsInf(lo, 1) || lo == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			row[j] -= lo // +Inf stays +Inf
		}
		delta += lo
	}

	// Columns.
	for j = 0; j < n; j++ {
		lo = inf
		for i = 0; i < n; i++ {
			if m.data[i*n+j] < lo {
				lo = m.data[i*n+j]
			}
		}
		if math.IsInf(lo, 1) || lo == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			m.data[i*n+j] -= lo
		}
		delta += lo
	}

	return delta
}

// CommitEdge fixes the edge from→to in place and returns the bound
// increase: the reduced cost of the edge plus the re-reduction delta.
//
// Steps:
//  1. extra = a[from][to]
//  2. row "from" and column "to" := +Inf (never depart from / arrive at again)
//  3. a[to][from] := +Inf (no immediate two-city cycle)
//  4. return extra + Reduce()
//
// Complexity: O(n²).
func (m *Matrix) CommitEdge(from, to int) float64 {
	var (
		n     = m.n
		extra = m.At(from, to)
		k     int
	)
	for k = 0; k < n; k++ {
		m.data[from*n+k] = inf
		m.data[k*n+to] = inf
	}
	m.data[to*n+from] = inf

	return extra + m.Reduce()
}

// IsReduced reports whether every row and every column either contains a
// zero or is entirely +Inf.
func (m *Matrix) IsReduced() bool {
	var (
		n              = m.n
		i, j           int
		rowOK, colOK   bool
		rowAll, colAll bool
	)
	for i = 0; i < n; i++ {
		rowOK, colOK = false, false
		rowAll, colAll = true, true
		for j = 0; j < n; j++ {
			if m.data[i*n+j] == 0 {
				rowOK = true
			}
			if !math.IsInf(m.data[i*n+j], 1) {
				rowAll = false
			}
			if m.data[j*n+i] == 0 {
				colOK = true
			}
			if !math.IsInf(m.data[j*n+i], 1) {
				colAll = false
			}
		}
		if !(rowOK || rowAll) || !(colOK || colAll) {
			return false
		}
	}

	return true
}

// String renders the matrix one row per line, right-aligned, with "-" for +Inf.
func (m *Matrix) String() string {
	var (
		cells = make([]string, len(m.data))
		width int
		k     int
		s     string
	)
	for k = range m.data {
		if math.IsInf(m.data[k], 1) {
			s = _fmtBlocked
		} else {
			s = strconv.FormatFloat(m.data[k], 'g', -1, 64)
		}
		cells[k] = s
		if len(s) > width {
			width = len(s)
		}
	}

	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			s = cells[i*m.n+j]
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
