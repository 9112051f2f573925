package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func generateGrid(t *testing.T, dir string) {
	t.Helper()
	out, _, err := execute(t, "generate", "grid", "--rows", "5", "--cols", "5", "--out", dir, "--id", "01")
	require.NoError(t, err)
	assert.Equal(t, "wrote TestCase_01_EdgeList.txt and TestCase_01_NodeID.csv (25 vertices, 40 edges)\n", out)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	generateGrid(t, dir)

	nodes, err := os.ReadFile(filepath.Join(dir, "TestCase_01_NodeID.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(nodes)), "\n")
	require.Len(t, lines, 25)
	assert.Equal(t, "N_0,0,0", lines[0])
	assert.Equal(t, "N_10,0,2", lines[10])

	edges, err := os.ReadFile(filepath.Join(dir, "TestCase_01_EdgeList.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(edges), "N_0,N_1,1\nN_0,N_5,1\n"))

	_, _, err = execute(t, "generate", "geometric", "--n", "50", "--radius", "0.3", "--out", dir, "--id", "02", "--hop-weights")
	require.NoError(t, err)

	gridFile := filepath.Join(dir, "room.txt")
	require.NoError(t, os.WriteFile(gridFile, []byte("...\n.#.\n...\n"), 0o600))
	out, _, err := execute(t, "generate", "occupancy", "--grid", gridFile, "--diagonal", "--out", dir, "--id", "03")
	require.NoError(t, err)
	assert.Equal(t, "wrote TestCase_03_EdgeList.txt and TestCase_03_NodeID.csv (8 vertices, 8 edges)\n", out)

	_, _, err = execute(t, "generate", "grid", "--out", dir)
	assert.Error(t, err, "--id is required")
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	generateGrid(t, dir)

	out, _, err := execute(t, "search", "--data-dir", dir, "--id", "01",
		"--algo", "astar", "--heuristic", "Manhattan", "--from", "N_0", "--to", "N_24")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Robot path with A* and manhattan heuristic from N_0 to N_24 : N_0 => "), out)
	assert.Equal(t, 8, strings.Count(out, " => "))

	out, _, err = execute(t, "search", "--data-dir", dir, "--id", "01",
		"--algo", "bfs", "--from-xy", "0.1,-0.2", "--to-xy", "3.9, 4.3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Robot Path found Using BFS Algorithm: in test case 01 N_0 => "), out)
	assert.True(t, strings.HasSuffix(out, "N_24\n"), out)

	out, _, err = execute(t, "search", "--data-dir", dir, "--id", "01",
		"--algo", "dfs", "--from", "N_0", "--to", "ghost")
	require.NoError(t, err, "no path is not an error")
	assert.Equal(t, "No Robot path found between N_0 and ghost for test case 01 using DFS algorithm\n", out)
}

func TestSearch_Errors(t *testing.T) {
	dir := t.TempDir()
	generateGrid(t, dir)
	base := []string{"search", "--data-dir", dir, "--id", "01"}

	for name, args := range map[string][]string{
		"no map":         {"search", "--from", "A", "--to", "B"},
		"no start":       append(append([]string{}, base...), "--to", "N_1"),
		"bad algorithm":  append(append([]string{}, base...), "--algo", "ucs", "--from", "N_0", "--to", "N_1"),
		"bad heuristic":  append(append([]string{}, base...), "--heuristic", "octile", "--from", "N_0", "--to", "N_1"),
		"bad position":   append(append([]string{}, base...), "--from-xy", "1;2", "--to", "N_1"),
		"budget":         append(append([]string{}, base...), "--max-expansions", "2", "--from", "N_0", "--to", "N_24"),
		"bad log format": {"--log-format", "xml", "search"},
		"missing file":   {"search", "--edges", filepath.Join(dir, "nope.txt"), "--from", "A", "--to", "B"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	generateGrid(t, dir)
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(`
data_dir: .
cases:
  - id: "01"
    start: N_0
    goal: N_24
`), 0o600))

	out, stderr, err := execute(t, "--log-level", "info", "run", scenarioPath, "--parallel", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Robot Path found Using BFS Algorithm: in test case 01 N_0"))
	assert.True(t, strings.HasPrefix(lines[1], "Robot Path found Using DFS Algorithm: in test case 01 N_0"))
	assert.True(t, strings.HasPrefix(lines[2], "Robot path with A* and chebyshev heuristic"))
	assert.True(t, strings.HasPrefix(lines[3], "Robot path with A* and euclidean heuristic"))
	assert.True(t, strings.HasPrefix(lines[4], "Robot path with A* and manhattan heuristic"))
	assert.Contains(t, stderr, "search.result")

	_, _, err = execute(t, "run", scenarioPath, "--max-expansions", "1")
	assert.ErrorContains(t, err, "3 of 5 queries failed")
}
