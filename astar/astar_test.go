package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
)

// scenario returns the three-vertex map N0–N1–N2 with a costly N0–N2 shortcut.
func scenario(t *testing.T) (*core.Graph, core.Coordinates) {
	t.Helper()
	g, err := core.FromRecords([]core.EdgeRecord{
		{From: "N0", To: "N1", Weight: 1},
		{From: "N1", To: "N2", Weight: 1},
		{From: "N0", To: "N2", Weight: 5},
	}, core.WithWeighted())
	require.NoError(t, err)

	c := core.NewCoordinates(3)
	c.Set("N0", 0, 0)
	c.Set("N1", 1, 0)
	c.Set("N2", 2, 0)

	return g, c
}

// weighted builds a weighted graph from (from, to, w) triples.
func weighted(t *testing.T, edges ...core.EdgeRecord) *core.Graph {
	t.Helper()
	g, err := core.FromRecords(edges, core.WithWeighted())
	require.NoError(t, err)

	return g
}

func TestSearch_Validation(t *testing.T) {
	g, c := scenario(t)

	_, err := astar.Search(nil, c, "N0", "N2", heuristic.Euclidean)
	assert.ErrorIs(t, err, astar.ErrGraphNil)

	_, err = astar.Search(core.NewGraph(), c, "N0", "N2", heuristic.Euclidean)
	assert.ErrorIs(t, err, astar.ErrUnweightedGraph)

	_, err = astar.Search(g, c, "N0", "N2", nil)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)
}

func TestSearch_Scenario_AllHeuristics(t *testing.T) {
	for _, name := range heuristic.Names() {
		t.Run(name, func(t *testing.T) {
			g, c := scenario(t)
			h, err := heuristic.ByName(name)
			require.NoError(t, err)

			res, err := astar.Search(g, c, "N0", "N2", h)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, core.Path{"N0", "N1", "N2"}, res.Path)
			assert.InDelta(t, 2.0, res.Cost, 1e-12)
		})
	}
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g, c := scenario(t)
	res, err := astar.Search(g, c, "N1", "N1", heuristic.Euclidean)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, core.Path{"N1"}, res.Path)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 0, res.Expanded)
}

func TestSearch_NoPath(t *testing.T) {
	g := weighted(t,
		core.EdgeRecord{From: "A", To: "B", Weight: 1},
		core.EdgeRecord{From: "C", To: "D", Weight: 1},
	)
	c := core.NewCoordinates(4)
	for i, id := range []string{"A", "B", "C", "D"} {
		c.Set(id, float64(i), 0)
	}

	res, err := astar.Search(g, c, "A", "D", heuristic.Manhattan)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)

	// unknown start has no edges, so nothing is ever looked up
	res, err = astar.Search(g, c, "ghost", "D", heuristic.Manhattan)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_MissingCoordinate(t *testing.T) {
	g, c := scenario(t)
	delete(c, "N1")

	_, err := astar.Search(g, c, "N0", "N2", heuristic.Euclidean)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCoordinateNotFound)
	assert.Contains(t, err.Error(), `"N1"`)

	// a missing goal is fatal as soon as any neighbor is estimated
	g, c = scenario(t)
	_, err = astar.Search(g, c, "N0", "N9", heuristic.Chebyshev)
	assert.ErrorIs(t, err, core.ErrCoordinateNotFound)
}

func TestSearch_TieBreakByVertexID(t *testing.T) {
	// Two equal-cost routes S-b-G and S-a-G; b is loaded first.
	g := weighted(t,
		core.EdgeRecord{From: "S", To: "b", Weight: 1},
		core.EdgeRecord{From: "S", To: "a", Weight: 1},
		core.EdgeRecord{From: "b", To: "G", Weight: 1},
		core.EdgeRecord{From: "a", To: "G", Weight: 1},
	)
	res, err := astar.Search(g, nil, "S", "G", heuristic.Zero)
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "a", "G"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
}

func TestSearch_LazyDeletion(t *testing.T) {
	// C is first pushed at cost 5, then improved to 2 through B.
	g := weighted(t,
		core.EdgeRecord{From: "A", To: "B", Weight: 1},
		core.EdgeRecord{From: "A", To: "C", Weight: 5},
		core.EdgeRecord{From: "B", To: "C", Weight: 1},
		core.EdgeRecord{From: "C", To: "D", Weight: 1},
	)
	require.NoError(t, g.AddVertex("E"))

	res, err := astar.Search(g, nil, "A", "E", heuristic.Zero)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 4, res.Expanded)
	assert.Equal(t, 1, res.StaleSkipped)
	assert.Equal(t, 5, res.Pushed)

	res, err = astar.Search(g, nil, "A", "D", heuristic.Zero)
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

func TestSearch_OnExpand(t *testing.T) {
	g, c := scenario(t)
	type exp struct {
		id   string
		cost float64
	}
	var got []exp
	_, err := astar.Search(g, c, "N0", "N2", heuristic.Euclidean,
		astar.WithOnExpand(func(id string, cost float64) { got = append(got, exp{id, cost}) }))
	require.NoError(t, err)
	assert.Equal(t, []exp{{"N0", 0}, {"N1", 1}}, got)
}

func TestSearch_MaxExpansions(t *testing.T) {
	fx, err := builder.Build([]core.GraphOption{core.WithWeighted()}, nil, builder.Path(10))
	require.NoError(t, err)

	_, err = astar.Search(fx.Graph, fx.Coords, "N_0", "N_9", heuristic.Euclidean, astar.WithMaxExpansions(3))
	assert.ErrorIs(t, err, astar.ErrBudgetExceeded)

	res, err := astar.Search(fx.Graph, fx.Coords, "N_0", "N_9", heuristic.Euclidean, astar.WithMaxExpansions(9))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Len(t, res.Path, 10)
}

func TestSearch_InfEdgeThreshold(t *testing.T) {
	g, c := scenario(t)
	// the N1–N2 edge is a wall at threshold 50
	g2 := weighted(t,
		core.EdgeRecord{From: "N0", To: "N1", Weight: 1},
		core.EdgeRecord{From: "N1", To: "N2", Weight: 100},
		core.EdgeRecord{From: "N0", To: "N2", Weight: 5},
	)
	res, err := astar.Search(g2, c, "N0", "N2", heuristic.Euclidean, astar.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"N0", "N2"}, res.Path)

	res, err = astar.Search(g, c, "N0", "N2", heuristic.Euclidean, astar.WithInfEdgeThreshold(1))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { astar.WithMaxExpansions(-1) })
	assert.Panics(t, func() { astar.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { astar.WithInfEdgeThreshold(math.NaN()) })
	assert.NotPanics(t, func() { astar.WithInfEdgeThreshold(math.Inf(1)) })
}

// TestSearch_OptimalAgainstDijkstra compares admissible heuristics with the
// zero heuristic on seeded random geometric maps.
func TestSearch_OptimalAgainstDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		fx, err := builder.Build([]core.GraphOption{core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 3)},
			builder.RandomGeometric(80, 0.2))
		require.NoError(t, err)

		for _, goal := range []string{"N_79", "N_40", "N_13"} {
			oracle, err := astar.Search(fx.Graph, fx.Coords, "N_0", goal, heuristic.Zero)
			require.NoError(t, err)

			for _, h := range []heuristic.Func{heuristic.Euclidean, heuristic.Chebyshev} {
				res, err := astar.Search(fx.Graph, fx.Coords, "N_0", goal, h)
				require.NoError(t, err)
				require.Equal(t, oracle.Found, res.Found, "seed %d goal %s", seed, goal)
				if !res.Found {
					continue
				}
				assert.InDelta(t, oracle.Cost, res.Cost, 1e-9, "seed %d goal %s", seed, goal)

				walked, err := res.Path.Cost(fx.Graph)
				require.NoError(t, err)
				assert.InDelta(t, res.Cost, walked, 1e-9)
				assert.False(t, res.Path.HasRepeats())
			}
		}
	}
}
