package bnb_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/bnb"
	"github.com/katalvlaran/atsp/costmodel"
)

var inf = math.Inf(1)

// mustMatrix snapshots rows or fails the test.
func mustMatrix(t testing.TB, rows [][]float64) *costmodel.Matrix {
	t.Helper()
	m, err := costmodel.FromRows(rows)
	require.NoError(t, err)

	return m
}

// threeCity: forward ring costs 1, every reverse edge 5.
func threeCity() [][]float64 {
	return [][]float64{
		{inf, 1, 5},
		{5, inf, 1},
		{1, 5, inf},
	}
}

// square: four corners, side 1, diagonal 10.
func square() [][]float64 {
	return [][]float64{
		{inf, 1, 10, 1},
		{1, inf, 1, 10},
		{10, 1, inf, 1},
		{1, 10, 1, inf},
	}
}

// randomRows returns an n×n asymmetric integer matrix in [1, 20] with a
// fraction holes of off-diagonal entries set to +Inf.
func randomRows(rng *rand.Rand, n int, holes float64) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				rows[i][j] = inf
			case rng.Float64() < holes:
				rows[i][j] = inf
			default:
				rows[i][j] = float64(1 + rng.Intn(20))
			}
		}
	}

	return rows
}

// bruteForce returns the cheapest closed tour extending prefix (which must
// start at 0), or +Inf and nil when none exists.
func bruteForce(m costmodel.Model, prefix []int) (float64, []int) {
	var (
		n        = m.Len()
		used     = make([]bool, n)
		tour     = append(make([]int, 0, n), prefix...)
		best     = inf
		bestTour []int
		v        int
	)
	for _, v = range prefix {
		used[v] = true
	}
	var rec func()
	rec = func() {
		if len(tour) == n {
			if c := costmodel.TourCost(m, tour); c < best {
				best = c
				bestTour = append([]int(nil), tour...)
			}
			return
		}
		var c int
		for c = 0; c < n; c++ {
			if used[c] || costmodel.IsUnreachable(m.Cost(tour[len(tour)-1], c)) {
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

	return best, bestTour
}

// requireIdentity asserts the bookkeeping identity on res.
func requireIdentity(t testing.TB, res bnb.Result) {
	t.Helper()
	require.Equal(t, res.StatesCreated, res.StatesPruned+res.StatesExpanded+res.ToursClosed+res.FrontierLeft,
		"created=%d pruned=%d expanded=%d closed=%d left=%d",
		res.StatesCreated, res.StatesPruned, res.StatesExpanded, res.ToursClosed, res.FrontierLeft)
}
