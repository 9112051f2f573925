package builder_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
)

func TestOccupancy_Validation(t *testing.T) {
	t.Parallel()

	_, err := builder.Build(nil, nil, builder.Occupancy(nil, builder.DefaultOccupancyOptions()))
	assert.ErrorIs(t, err, builder.ErrEmptyGrid)

	_, err = builder.Build(nil, nil, builder.Occupancy([][]int{{0, 0}, {0}}, builder.DefaultOccupancyOptions()))
	assert.ErrorIs(t, err, builder.ErrNonRectangular)
}

func TestOccupancy_Conn4(t *testing.T) {
	t.Parallel()

	cells := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	fx, err := builder.Build(nil, nil, builder.Occupancy(cells, builder.DefaultOccupancyOptions()))
	require.NoError(t, err)

	// the wall N_4 is not a vertex; the ring of 8 free cells has 8 edges
	assert.Equal(t, 8, fx.Graph.VertexCount())
	assert.False(t, fx.Graph.HasVertex("N_4"))
	assert.Equal(t, 8, fx.Graph.EdgeCount())
	assert.Equal(t, []string{"N_1", "N_3"}, fx.Graph.NeighborIDs("N_0"))
	assert.Equal(t, orb.Point{2, 1}, fx.Coords["N_5"])
	assert.Equal(t, []string{"N_0", "N_1", "N_2", "N_3", "N_5", "N_6", "N_7", "N_8"}, fx.IDs)
}

func TestOccupancy_Conn8(t *testing.T) {
	t.Parallel()

	cells := [][]int{
		{0, 0, 5},
		{0, 0, 0},
	}
	opts := builder.OccupancyOptions{Blocked: 5, Conn: builder.Conn8}
	fx, err := builder.Build([]core.GraphOption{core.WithWeighted()}, nil, builder.Occupancy(cells, opts))
	require.NoError(t, err)

	// N_1 reaches N_5 diagonally only if N_2 is open; it is not.
	assert.Equal(t, []string{"N_0", "N_3", "N_4"}, fx.Graph.NeighborIDs("N_1"))
	w, ok := fx.Graph.MinWeight("N_0", "N_4")
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, w, 1e-12)

	// records: N_0: E, S, SE; N_1: SW, S; N_3: E; N_4: E
	assert.Equal(t, []core.EdgeRecord{
		{From: "N_0", To: "N_1", Weight: 1},
		{From: "N_0", To: "N_3", Weight: 1},
		{From: "N_0", To: "N_4", Weight: math.Sqrt2},
		{From: "N_1", To: "N_3", Weight: math.Sqrt2},
		{From: "N_1", To: "N_4", Weight: 1},
		{From: "N_3", To: "N_4", Weight: 1},
		{From: "N_4", To: "N_5", Weight: 1},
	}, fx.Records)
}
