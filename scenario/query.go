package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dfs"
	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/loader"
)

// Map is one loaded robot map. Unweighted is nil unless BFS or DFS will run
// on it; Weighted is nil unless A* will.
type Map struct {
	Unweighted *core.Graph
	Weighted   *core.Graph
	Coords     core.Coordinates
}

// LoadMap reads the map files once per graph flavor needed by algos.
func LoadMap(edgePath, nodePath string, algos []Algorithm) (*Map, error) {
	var needPlain, needWeighted bool
	for _, a := range algos {
		if a.Weighted() {
			needWeighted = true
		} else {
			needPlain = true
		}
	}

	m := &Map{Coords: core.NewCoordinates(0)}
	var err error
	if needPlain {
		if m.Unweighted, m.Coords, err = loader.LoadUnweighted(edgePath, nodePath); err != nil {
			return nil, err
		}
	}
	if needWeighted {
		if m.Weighted, m.Coords, err = loader.LoadWeighted(edgePath, nodePath); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Query is a single search request against a Map.
type Query struct {
	CaseID    string
	Algorithm Algorithm
	Heuristic string // A* only
	Start     string
	Goal      string
}

// Report is the outcome of one Query.
type Report struct {
	Query
	Path     core.Path
	Found    bool
	Cost     float64 // A* only
	Expanded int
	Err      error
}

// String renders the report as a one-line sentence.
func (r Report) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("Error in test case %s using %s: %v", r.CaseID, r.Algorithm.Label(), r.Err)
	case r.Algorithm == AStar && r.Found:
		return fmt.Sprintf("Robot path with A* and %s heuristic from %s to %s : %s",
			r.Heuristic, r.Start, r.Goal, r.Path)
	case r.Algorithm == AStar:
		return fmt.Sprintf("No valid path found for Robot using A* search and %s heuristic between %s and %s",
			r.Heuristic, r.Start, r.Goal)
	case r.Found:
		return fmt.Sprintf("Robot Path found Using %s Algorithm: in test case %s %s",
			r.Algorithm.Label(), r.CaseID, r.Path)
	default:
		return fmt.Sprintf("No Robot path found between %s and %s for test case %s using %s algorithm",
			r.Start, r.Goal, r.CaseID, r.Algorithm.Label())
	}
}

// SearchOptions tunes Execute.
type SearchOptions struct {
	Logger        *slog.Logger
	MaxExpansions int
}

// Execute runs q on m. Search failures are returned in Report.Err.
// When logger has debug enabled every visited vertex is traced.
func Execute(ctx context.Context, m *Map, q Query, so SearchOptions) Report {
	rep := Report{Query: q}
	log := so.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("case", q.CaseID, "algorithm", string(q.Algorithm))
	if q.Algorithm == AStar {
		log = log.With("heuristic", q.Heuristic)
	}
	trace := log.Enabled(ctx, slog.LevelDebug)

	visit := func(id string, depth int) error {
		log.DebugContext(ctx, "search.visit", "id", id, "depth", depth)
		return nil
	}

	switch q.Algorithm {
	case BFS:
		var opts []bfs.Option
		if trace {
			opts = append(opts, bfs.WithOnVisit(visit))
		}
		res, err := bfs.Path(m.Unweighted, q.Start, q.Goal, opts...)
		if err != nil {
			rep.Err = err
			break
		}
		rep.Path, rep.Found, rep.Expanded = res.Path, res.Found, res.Expanded
	case DFS:
		var opts []dfs.Option
		if trace {
			opts = append(opts, dfs.WithOnVisit(visit))
		}
		res, err := dfs.Path(m.Unweighted, q.Start, q.Goal, opts...)
		if err != nil {
			rep.Err = err
			break
		}
		rep.Path, rep.Found, rep.Expanded = res.Path, res.Found, res.Expanded
	case AStar:
		h, err := heuristic.ByName(q.Heuristic)
		if err != nil {
			rep.Err = err
			break
		}
		var opts []astar.Option
		if trace {
			opts = append(opts, astar.WithOnExpand(func(id string, cost float64) {
				log.DebugContext(ctx, "search.expand", "id", id, "cost", cost)
			}))
		}
		if so.MaxExpansions > 0 {
			opts = append(opts, astar.WithMaxExpansions(so.MaxExpansions))
		}
		res, err := astar.Search(m.Weighted, m.Coords, q.Start, q.Goal, h, opts...)
		if err != nil {
			rep.Err = err
			break
		}
		rep.Path, rep.Found, rep.Cost, rep.Expanded = res.Path, res.Found, res.Cost, res.Expanded
	default:
		rep.Err = fmt.Errorf("%w: %q", ErrUnknownAlgorithm, q.Algorithm)
	}

	if rep.Err != nil {
		log.ErrorContext(ctx, "search.failed", "start", q.Start, "goal", q.Goal, "error", rep.Err)
	} else {
		log.InfoContext(ctx, "search.result", "start", q.Start, "goal", q.Goal,
			"found", rep.Found, "hops", rep.Path.Hops(), "expanded", rep.Expanded)
	}

	return rep
}

// canonical lower-cases and trims a heuristic name.
func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
