package bnb_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/atsp/bnb"
	"github.com/katalvlaran/atsp/costmodel"
	"github.com/katalvlaran/atsp/logging"
)

// SeedSuite covers the ways BSSF can be initialised before the search.
type SeedSuite struct {
	suite.Suite
	m *costmodel.Matrix
}

func (s *SeedSuite) SetupTest() {
	var err error
	s.m, err = costmodel.FromRows(threeCity())
	require.NoError(s.T(), err)
}

// TestOptimalTourSeed: a rotated optimal tour is normalised and never beaten.
func (s *SeedSuite) TestOptimalTourSeed() {
	res, err := bnb.Solve(context.Background(), s.m, bnb.WithSeed(bnb.Seed{Tour: []int{1, 2, 0}, Cost: 999}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Seeded)
	require.Equal(s.T(), []int{0, 1, 2}, res.Tour)
	require.Equal(s.T(), 3.0, res.Cost, "seed cost is recomputed from the tour")
	require.Zero(s.T(), res.SolutionsFound)
	require.True(s.T(), res.Optimal)
	requireIdentity(s.T(), res)
}

// TestWorseTourSeed: the search improves on a poor seed.
func (s *SeedSuite) TestWorseTourSeed() {
	res, err := bnb.Solve(context.Background(), s.m, bnb.WithSeed(bnb.Seed{Tour: []int{0, 2, 1}}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Seeded)
	require.Equal(s.T(), []int{0, 1, 2}, res.Tour)
	require.Equal(s.T(), 3.0, res.Cost)
	require.Equal(s.T(), 1, res.SolutionsFound)
}

// TestCostOnlySeedEqualToOptimum: the tie is recorded so a tour is reported.
func (s *SeedSuite) TestCostOnlySeedEqualToOptimum() {
	res, err := bnb.Solve(context.Background(), s.m, bnb.WithSeed(bnb.Seed{Cost: 3}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Seeded)
	require.Equal(s.T(), []int{0, 1, 2}, res.Tour)
	require.Equal(s.T(), 3.0, res.Cost)
	require.Zero(s.T(), res.SolutionsFound)
	require.Equal(s.T(), 1, res.ToursClosed)
	require.True(s.T(), res.Optimal)
	requireIdentity(s.T(), res)
}

// TestCostOnlySeedBelowOptimum: nothing can match the threshold.
func (s *SeedSuite) TestCostOnlySeedBelowOptimum() {
	res, err := bnb.Solve(context.Background(), s.m, bnb.WithSeed(bnb.Seed{Cost: 2}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Seeded)
	require.True(s.T(), costmodel.IsUnreachable(res.Cost))
	require.Empty(s.T(), res.Tour)
	require.True(s.T(), res.Exhausted)
	require.False(s.T(), res.Optimal)
	require.Equal(s.T(), 1, res.StatesCreated)
	require.Equal(s.T(), 1, res.StatesPruned)
	requireIdentity(s.T(), res)
}

// TestEmptyTourSeedIsCostOnly: an empty, non-nil tour behaves like a nil one.
func (s *SeedSuite) TestEmptyTourSeedIsCostOnly() {
	res, err := bnb.Solve(context.Background(), s.m, bnb.WithSeed(bnb.Seed{Tour: []int{}, Cost: 3}))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Seeded)
	require.Equal(s.T(), []int{0, 1, 2}, res.Tour)
	require.Equal(s.T(), 3.0, res.Cost)
	require.Zero(s.T(), res.SolutionsFound)

	_, err = bnb.Solve(context.Background(), s.m, bnb.WithSeed(bnb.Seed{Tour: []int{}, Cost: -1}))
	require.ErrorIs(s.T(), err, bnb.ErrInvalidSeed)
}

// TestSeedCostMismatchIsLogged: the recomputed cost wins and the caller is told.
func (s *SeedSuite) TestSeedCostMismatchIsLogged() {
	var buf bytes.Buffer
	log, err := logging.New("info", &buf)
	require.NoError(s.T(), err)

	res, err := bnb.Solve(context.Background(), s.m,
		bnb.WithLogger(log),
		bnb.WithSeed(bnb.Seed{Tour: []int{0, 1, 2}, Cost: 7}),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, res.Cost)
	require.Contains(s.T(), buf.String(), `"msg":"seed cost disagrees with its tour, using the tour cost"`)
	require.Contains(s.T(), buf.String(), `"suppliedCost":7`)

	buf.Reset()
	_, err = bnb.Solve(context.Background(), s.m,
		bnb.WithLogger(log),
		bnb.WithSeed(bnb.Seed{Tour: []int{0, 1, 2}, Cost: 3}),
	)
	require.NoError(s.T(), err)
	require.NotContains(s.T(), buf.String(), "seed cost disagrees")
}

// TestUnclosableTourSeed: a seed tour using a missing edge is ignored and logged.
func (s *SeedSuite) TestUnclosableTourSeed() {
	m, err := costmodel.FromRows([][]float64{
		{inf, 1, 5},
		{inf, inf, 1},
		{1, 5, inf},
	})
	require.NoError(s.T(), err)

	var buf bytes.Buffer
	log, err := logging.New("info", &buf)
	require.NoError(s.T(), err)

	res, err := bnb.Solve(context.Background(), m,
		bnb.WithLogger(log),
		bnb.WithSeed(bnb.Seed{Tour: []int{0, 2, 1}}),
	)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Seeded)
	require.Equal(s.T(), []int{0, 1, 2}, res.Tour)
	require.Equal(s.T(), 3.0, res.Cost)
	require.Equal(s.T(), 1, res.SolutionsFound)
	require.Contains(s.T(), buf.String(), `"msg":"seed tour uses a missing edge, ignored"`)
}

// TestGreedySeedSquare: greedy already finds the optimum on the square.
func (s *SeedSuite) TestGreedySeedSquare() {
	m, err := costmodel.FromRows(square())
	require.NoError(s.T(), err)

	res, err := bnb.Solve(context.Background(), m, bnb.WithGreedySeed(time.Second))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Seeded)
	require.Equal(s.T(), []int{0, 1, 2, 3}, res.Tour)
	require.Equal(s.T(), 4.0, res.Cost)
	require.Zero(s.T(), res.SolutionsFound)
	require.True(s.T(), res.Optimal)
	requireIdentity(s.T(), res)
}

// TestExplicitSeedWinsOverGreedy: WithSeed takes precedence.
func (s *SeedSuite) TestExplicitSeedWinsOverGreedy() {
	res, err := bnb.Solve(context.Background(), s.m,
		bnb.WithGreedySeed(time.Second),
		bnb.WithSeed(bnb.Seed{Cost: 2}),
	)
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Tour, "greedy would have found cost 3")
}

// TestGreedySeedPrunesMore: a seeded search never creates more states.
func (s *SeedSuite) TestGreedySeedPrunesMore() {
	m, err := costmodel.FromRows(square())
	require.NoError(s.T(), err)

	plain, err := bnb.Solve(context.Background(), m)
	require.NoError(s.T(), err)
	seeded, err := bnb.Solve(context.Background(), m, bnb.WithGreedySeed(time.Second))
	require.NoError(s.T(), err)
	require.Equal(s.T(), plain.Cost, seeded.Cost)
	require.LessOrEqual(s.T(), seeded.StatesCreated, plain.StatesCreated)
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}
