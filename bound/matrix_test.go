package bound_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/bound"
	"github.com/katalvlaran/atsp/costmodel"
)

var inf = math.Inf(1)

func mustModel(t *testing.T, rows [][]float64) *costmodel.Matrix {
	t.Helper()
	m, err := costmodel.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randomRows returns an n×n integer-valued asymmetric table; integer costs
// keep every sum exact so bounds can be compared without tolerances.
func randomRows(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = float64(1 + rng.Intn(40))
			}
		}
	}

	return rows
}

// cheapestWithPrefix enumerates every closed tour that starts with prefix.
func cheapestWithPrefix(m costmodel.Model, prefix []int) float64 {
	n := m.Len()
	used := make([]bool, n)
	var v int
	for _, v = range prefix {
		used[v] = true
	}
	best := inf
	tour := append([]int(nil), prefix...)
	var rec func()
	rec = func() {
		if len(tour) == n {
			if c := costmodel.TourCost(m, tour); c < best {
				best = c
			}
			return
		}
		var c int
		for c = 0; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			tour = append(tour, c)
			rec()
			tour = tour[:len(tour)-1]
			used[c] = false
		}
	}
	rec()

	return best
}

func TestBuild_ThreeCityRing(t *testing.T) {
	m := mustModel(t, [][]float64{
		{0, 1, 5},
		{5, 0, 1},
		{1, 5, 0},
	})
	bm, lb := bound.Build(m)
	require.Equal(t, 3.0, lb)
	require.True(t, bm.IsReduced())
	require.Equal(t, 0.0, bm.At(0, 1))
	require.Equal(t, 4.0, bm.At(0, 2))
	require.True(t, math.IsInf(bm.At(2, 2), 1))
}

func TestBuild_SquareFixture(t *testing.T) {
	m := mustModel(t, [][]float64{
		{0, 1, 10, 1},
		{1, 0, 1, 10},
		{10, 1, 0, 1},
		{1, 10, 1, 0},
	})
	_, lb := bound.Build(m)
	require.Equal(t, 4.0, lb)
}

func TestReduce_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var k int
	for k = 0; k < 20; k++ {
		bm, _ := bound.Build(mustModel(t, randomRows(rng, 2+k%7)))
		require.Equal(t, 0.0, bm.Reduce(), "second reduction must be a no-op")
		require.True(t, bm.IsReduced())
	}
}

func TestReduce_ColumnsAfterRows(t *testing.T) {
	// Every row minimum is 1; afterwards column 0 still has minimum 2.
	m := mustModel(t, [][]float64{
		{0, 1, 4},
		{3, 0, 1},
		{5, 1, 0},
	})
	bm, lb := bound.Build(m)
	// rows: 1 + 1 + 1; column 0 then holds {-,2,4} → +2.
	require.Equal(t, 5.0, lb)
	require.Equal(t, 0.0, bm.At(1, 0))
}

func TestReduce_DeadLineContributesNothing(t *testing.T) {
	m := mustModel(t, [][]float64{
		{0, 2, 3},
		{inf, 0, inf},
		{4, 6, 0},
	})
	bm, lb := bound.Build(m)
	// Row 1 is all +Inf and stays so; rows 0 and 2 give 2 + 4, column 1 gives 0,
	// column 2 has {1, -, -} → +1.
	require.Equal(t, 7.0, lb)
	require.True(t, math.IsInf(bm.At(1, 0), 1))
	require.True(t, math.IsInf(bm.At(1, 2), 1))
	require.True(t, bm.IsReduced())
}

func TestCommitEdge_BlocksRowColumnAndReturn(t *testing.T) {
	m := mustModel(t, [][]float64{
		{0, 1, 5},
		{5, 0, 1},
		{1, 5, 0},
	})
	bm, _ := bound.Build(m)
	child := bm.Clone()
	add := child.CommitEdge(0, 1)
	require.Equal(t, 0.0, add)

	var k int
	for k = 0; k < 3; k++ {
		require.True(t, math.IsInf(child.At(0, k), 1), "row 0")
		require.True(t, math.IsInf(child.At(k, 1), 1), "col 1")
	}
	require.True(t, math.IsInf(child.At(1, 0), 1), "two-city cycle")
	require.Equal(t, 0.0, child.At(1, 2))
	require.Equal(t, 0.0, child.At(2, 0))

	// The parent copy is untouched.
	require.Equal(t, 0.0, bm.At(0, 1))
	require.Equal(t, 4.0, bm.At(0, 2))
}

func TestCommitEdge_AdmissibleAndMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var k, to int
	for k = 0; k < 15; k++ {
		n := 4 + k%4
		m := mustModel(t, randomRows(rng, n))
		root, rootLB := bound.Build(m)
		require.LessOrEqual(t, rootLB, cheapestWithPrefix(m, []int{0}))

		for to = 1; to < n; to++ {
			child := root.Clone()
			childLB := rootLB + child.CommitEdge(0, to)
			require.GreaterOrEqual(t, childLB, rootLB)
			require.GreaterOrEqual(t, childLB, m.Cost(0, to), "bound covers the committed edge")
			require.LessOrEqual(t, childLB, cheapestWithPrefix(m, []int{0, to}),
				"n=%d edge 0→%d", n, to)
			require.True(t, child.IsReduced())
		}
	}
}

func TestString(t *testing.T) {
	bm, _ := bound.Build(mustModel(t, [][]float64{
		{0, 1},
		{2, 0},
	}))
	require.Equal(t, "-  0\n0  -\n", bm.String())
	require.Equal(t, 2, bm.Len())
	require.True(t, math.IsInf(bm.At(5, 0), 1))
}
