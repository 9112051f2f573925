package scenario_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/loader"
	"github.com/katalvlaran/pathfind/logging"
	"github.com/katalvlaran/pathfind/scenario"
)

// writeGrid stores a weighted rows×cols grid as test case id in dir.
func writeGrid(t *testing.T, dir, id string, rows, cols int) {
	t.Helper()
	fx, err := builder.Build([]core.GraphOption{core.WithWeighted()}, nil, builder.Grid(rows, cols))
	require.NoError(t, err)
	writeFixture(t, dir, id, fx.Records, fx.Coords)
}

func writeFixture(t *testing.T, dir, id string, recs []core.EdgeRecord, coords core.Coordinates) {
	t.Helper()
	ep, np := loader.CasePaths(dir, id)
	var eb, nb bytes.Buffer
	require.NoError(t, loader.WriteEdges(&eb, recs))
	require.NoError(t, loader.WriteCoordinates(&nb, coords))
	require.NoError(t, os.WriteFile(ep, eb.Bytes(), 0o600))
	require.NoError(t, os.WriteFile(np, nb.Bytes(), 0o600))
}

func writeYAML(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	p := writeYAML(t, dir, `
data_dir: data
cases:
  - id: "01"
    start: N_0
    goal: N_24
  - id: "02"
    start: N_0
    goal: N_3
    algorithms: [A*]
    heuristics: [" Euclidean "]
    edge_file: custom.txt
`)
	cfg, err := scenario.Load(p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)

	c1 := cfg.Cases[0]
	assert.Equal(t, scenario.DefaultAlgorithms, c1.Algorithms)
	assert.Equal(t, scenario.DefaultHeuristics, c1.Heuristics)
	assert.Len(t, c1.Queries(), 5) // bfs, dfs, astar×3
	ep, np := c1.Paths(cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "data", "TestCase_01_EdgeList.txt"), ep)
	assert.Equal(t, filepath.Join(dir, "data", "TestCase_01_NodeID.csv"), np)

	c2 := cfg.Cases[1]
	assert.Equal(t, []scenario.Algorithm{scenario.AStar}, c2.Algorithms)
	assert.Equal(t, []string{"euclidean"}, c2.Heuristics)
	ep, _ = c2.Paths(cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "data", "custom.txt"), ep)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"no cases":          "data_dir: .\n",
		"missing id":        "cases:\n  - start: A\n    goal: B\n",
		"duplicate id":      "cases:\n  - {id: x, start: A, goal: B}\n  - {id: x, start: A, goal: C}\n",
		"missing goal":      "cases:\n  - {id: x, start: A}\n",
		"unknown algorithm": "cases:\n  - {id: x, start: A, goal: B, algorithms: [dijkstra]}\n",
		"unknown heuristic": "cases:\n  - {id: x, start: A, goal: B, heuristics: [octile]}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Load(writeYAML(t, t.TempDir(), body))
			assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}

	_, err := scenario.Load(writeYAML(t, t.TempDir(), "cases: []\nextra: 1\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReport_String(t *testing.T) {
	q := scenario.Query{CaseID: "01", Start: "N_0", Goal: "N_2"}
	path := core.Path{"N_0", "N_1", "N_2"}

	bfsQ := q
	bfsQ.Algorithm = scenario.BFS
	assert.Equal(t, "Robot Path found Using BFS Algorithm: in test case 01 N_0 => N_1 => N_2",
		scenario.Report{Query: bfsQ, Path: path, Found: true}.String())
	assert.Equal(t, "No Robot path found between N_0 and N_2 for test case 01 using BFS algorithm",
		scenario.Report{Query: bfsQ}.String())

	dfsQ := q
	dfsQ.Algorithm = scenario.DFS
	assert.Equal(t, "No Robot path found between N_0 and N_2 for test case 01 using DFS algorithm",
		scenario.Report{Query: dfsQ}.String())

	aq := q
	aq.Algorithm, aq.Heuristic = scenario.AStar, "euclidean"
	assert.Equal(t, "Robot path with A* and euclidean heuristic from N_0 to N_2 : N_0 => N_1 => N_2",
		scenario.Report{Query: aq, Path: path, Found: true}.String())
	assert.Equal(t, "No valid path found for Robot using A* search and euclidean heuristic between N_0 and N_2",
		scenario.Report{Query: aq}.String())
	assert.Equal(t, "Error in test case 01 using A*: boom",
		scenario.Report{Query: aq, Err: errors.New("boom")}.String())
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]scenario.Algorithm{"bfs": scenario.BFS, "DFS": scenario.DFS, "a*": scenario.AStar, "astar": scenario.AStar} {
		got, err := scenario.ParseAlgorithm(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := scenario.ParseAlgorithm("ucs")
	assert.ErrorIs(t, err, scenario.ErrUnknownAlgorithm)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeGrid(t, dir, "01", 5, 5)

	// two components, and a vertex without coordinates
	coords := core.NewCoordinates(3)
	coords.Set("A", 0, 0)
	coords.Set("B", 1, 0)
	coords.Set("C", 5, 5)
	writeFixture(t, dir, "02", []core.EdgeRecord{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	}, coords)

	cfg := &scenario.Config{DataDir: dir, Cases: []scenario.Case{
		{ID: "01", Start: "N_0", Goal: "N_24"},
		{ID: "02", Start: "A", Goal: "C", Algorithms: []scenario.Algorithm{scenario.BFS, scenario.AStar}, Heuristics: []string{"euclidean"}},
		{ID: "03", Start: "C", Goal: "D", Algorithms: []scenario.Algorithm{scenario.AStar}, Heuristics: []string{"manhattan", "zero"}, EdgeFile: loader.EdgeListName("02"), NodeFile: loader.NodeFileName("02")},
	}}
	require.NoError(t, cfg.Validate())

	reports, err := scenario.Run(context.Background(), cfg, scenario.WithParallelism(3))
	require.NoError(t, err)
	require.Len(t, reports, 5+2+2)

	// case 01: bfs, dfs, then A* per heuristic
	assert.Equal(t, scenario.BFS, reports[0].Algorithm)
	assert.True(t, reports[0].Found)
	assert.Equal(t, 8, reports[0].Path.Hops())
	assert.Equal(t, scenario.DFS, reports[1].Algorithm)
	assert.True(t, reports[1].Found)
	for i, h := range scenario.DefaultHeuristics {
		r := reports[2+i]
		require.NoError(t, r.Err)
		assert.Equal(t, h, r.Heuristic)
		assert.True(t, r.Found)
		assert.InDelta(t, 8.0, r.Cost, 1e-9)
	}

	// case 02: disconnected
	assert.False(t, reports[5].Found)
	assert.NoError(t, reports[5].Err)
	assert.False(t, reports[6].Found)
	assert.NoError(t, reports[6].Err)

	// case 03: D has no coordinates; only the zero heuristic copes
	assert.ErrorIs(t, reports[7].Err, core.ErrCoordinateNotFound)
	assert.True(t, reports[8].Found)
	assert.Equal(t, core.Path{"C", "D"}, reports[8].Path)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	cfg := &scenario.Config{DataDir: dir, Cases: []scenario.Case{{ID: "404", Start: "A", Goal: "B"}}}
	require.NoError(t, cfg.Validate())
	_, err := scenario.Run(context.Background(), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)

	writeGrid(t, dir, "01", 2, 2)
	cfg.Cases[0].ID = "01"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = scenario.Run(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Trace(t *testing.T) {
	dir := t.TempDir()
	writeGrid(t, dir, "01", 2, 2)
	cfg := &scenario.Config{DataDir: dir, Cases: []scenario.Case{
		{ID: "01", Start: "N_0", Goal: "N_3", Algorithms: []scenario.Algorithm{scenario.BFS, scenario.AStar}, Heuristics: []string{"euclidean"}},
	}}
	require.NoError(t, cfg.Validate())

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	_, err := scenario.Run(context.Background(), cfg, scenario.WithLogger(logger), scenario.WithParallelism(1))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=search.visit")
	assert.Contains(t, out, "msg=search.expand")
	assert.Contains(t, out, "msg=search.result")
	assert.Contains(t, out, "heuristic=euclidean")

	// info level drops the per-vertex trace
	buf.Reset()
	logger = logging.New(logging.Config{Level: logging.LevelInfo, Output: &buf})
	_, err = scenario.Run(context.Background(), cfg, scenario.WithLogger(logger))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "search.visit")
	assert.Contains(t, buf.String(), "search.result")
}
