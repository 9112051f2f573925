package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/loader"
	"github.com/katalvlaran/pathfind/scenario"
	"github.com/katalvlaran/pathfind/spatial"
)

type searchFlags struct {
	dataDir, id     string
	edges, nodes    string
	algo, heuristic string
	from, to        string
	fromXY, toXY    string
	maxExpansions   int
}

func (a *app) newSearchCmd() *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path between two vertices of one map",
		Long: `Find a path between two vertices of one map.

The map is either --edges/--nodes, or test case --id inside --data-dir.
Endpoints are vertex IDs (--from/--to) or positions (--from-xy/--to-xy)
snapped to the nearest vertex.

Examples:
  pathfind search --data-dir data --id 01 --algo bfs --from N_0 --to N_24
  pathfind search --edges map.txt --nodes map.csv --algo astar --heuristic manhattan --from-xy 0,0 --to-xy 9.5,9.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSearch(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.dataDir, "data-dir", ".", "directory holding TestCase_<id>_* files")
	fl.StringVar(&f.id, "id", "", "test case id")
	fl.StringVar(&f.edges, "edges", "", "edge list file (a,b,w per line)")
	fl.StringVar(&f.nodes, "nodes", "", "node coordinate file (node,x,y per line)")
	fl.StringVar(&f.algo, "algo", "astar", "algorithm: bfs, dfs or astar")
	fl.StringVar(&f.heuristic, "heuristic", "euclidean", "A* heuristic: chebyshev, euclidean, manhattan or zero")
	fl.StringVar(&f.from, "from", "", "start vertex ID")
	fl.StringVar(&f.to, "to", "", "goal vertex ID")
	fl.StringVar(&f.fromXY, "from-xy", "", "start position x,y (nearest vertex)")
	fl.StringVar(&f.toXY, "to-xy", "", "goal position x,y (nearest vertex)")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "abort A* after this many expansions (0 = unlimited)")
	cmd.MarkFlagsMutuallyExclusive("from", "from-xy")
	cmd.MarkFlagsMutuallyExclusive("to", "to-xy")
	cmd.MarkFlagsMutuallyExclusive("id", "edges")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, f *searchFlags) error {
	algo, err := scenario.ParseAlgorithm(f.algo)
	if err != nil {
		return err
	}
	caseID := f.id
	edgePath, nodePath := f.edges, f.nodes
	switch {
	case f.id != "":
		edgePath, nodePath = loader.CasePaths(f.dataDir, f.id)
	case f.edges == "":
		return errors.New("either --id or --edges is required")
	default:
		caseID = f.edges
	}

	m, err := scenario.LoadMap(edgePath, nodePath, []scenario.Algorithm{algo})
	if err != nil {
		return err
	}
	a.logger.Info("map loaded", "edges", edgePath, "vertices", len(m.Coords))

	start, err := endpoint(m, "from", f.from, f.fromXY)
	if err != nil {
		return err
	}
	goal, err := endpoint(m, "to", f.to, f.toXY)
	if err != nil {
		return err
	}

	q := scenario.Query{CaseID: caseID, Algorithm: algo, Start: start, Goal: goal}
	if algo == scenario.AStar {
		q.Heuristic = strings.ToLower(strings.TrimSpace(f.heuristic))
	}
	rep := scenario.Execute(cmd.Context(), m, q, scenario.SearchOptions{
		Logger:        a.logger,
		MaxExpansions: f.maxExpansions,
	})
	if rep.Err != nil {
		return rep.Err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rep)

	return nil
}

// endpoint resolves a vertex from an explicit ID or a snapped position.
func endpoint(m *scenario.Map, name, id, xy string) (string, error) {
	if id != "" {
		return id, nil
	}
	if xy == "" {
		return "", fmt.Errorf("one of --%s or --%s-xy is required", name, name)
	}
	p, err := parsePoint(xy)
	if err != nil {
		return "", fmt.Errorf("--%s-xy: %w", name, err)
	}
	snapped, ok := spatial.NewIndex(m.Coords).Nearest(p)
	if !ok {
		return "", fmt.Errorf("--%s-xy: map has no coordinates", name)
	}

	return snapped, nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (orb.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return orb.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return orb.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return orb.Point{}, err
	}

	return orb.Point{x, y}, nil
}
