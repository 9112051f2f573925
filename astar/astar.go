package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
)

// Search finds a minimum-cost path from start to goal in the weighted graph g,
// guided by h evaluated against coords.
//
// The frontier is seeded with (0, start). Each popped vertex relaxes its
// edges; a neighbor is re-pushed with priority cost+h(neighbor, goal)
// whenever its cost from start strictly improves. Old entries stay in the
// heap and are skipped when popped (lazy deletion).
//
// The heuristic is evaluated only for neighbors, never for start. With an
// admissible h the returned Cost is optimal; admissibility is not checked.
//
// start == goal returns [start] with Cost 0. An unreachable goal yields
// Found == false and a nil error.
//
// Errors, in validation order:
//  1. ErrGraphNil
//  2. ErrUnweightedGraph
//  3. ErrNilHeuristic
//
// During the search a failing heuristic (typically a wrapped
// core.ErrCoordinateNotFound) aborts the call, as does ErrBudgetExceeded.
//
// Complexity: O((V + E) log E) time, O(V + E) space.
func Search(g *core.Graph, coords core.Coordinates, start, goal string, h heuristic.Func, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 2) Build options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Initialize runner and run main loop
	r := &runner{
		g:      g,
		coords: coords,
		goal:   goal,
		h:      h,
		opts:   cfg,
		best:   map[string]float64{start: 0},
		prev:   make(map[string]string),
		pq:     make(frontier, 0, 16),
		res:    &Result{},
	}
	r.push(start, 0, 0)

	return r.res, r.process(start)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *core.Graph
	coords core.Coordinates
	goal   string
	h      heuristic.Func
	opts   Options

	best map[string]float64 // cost from start of the cheapest known route
	prev map[string]string  // predecessor on that route; start has none
	pq   frontier
	seq  uint64
	res  *Result
}

// push inserts an entry for id and bumps the insertion counter.
func (r *runner) push(id string, cost, f float64) {
	heap.Push(&r.pq, &frontierItem{id: id, f: f, cost: cost, seq: r.seq})
	r.seq++
	r.res.Pushed++
}

// process pops entries until the goal is popped or the frontier empties.
func (r *runner) process(start string) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)

		// 1) Stale entry: a cheaper one for the same vertex was pushed later.
		if item.cost > r.best[item.id] {
			r.res.StaleSkipped++
			continue
		}

		// 2) Goal popped: its cost is final.
		if item.id == r.goal {
			r.res.Path = r.reconstruct(start)
			r.res.Cost = r.best[r.goal]
			r.res.Found = true

			return nil
		}

		// 3) Budget
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions without reaching %q",
				ErrBudgetExceeded, r.res.Expanded, r.goal)
		}
		r.res.Expanded++
		r.opts.OnExpand(item.id, item.cost)

		// 4) Relax outgoing edges
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge of u and pushes neighbors whose cost improves.
func (r *runner) relax(u string) error {
	base := r.best[u]
	for _, e := range r.g.Neighbors(u) {
		// Skip edges marked impassable by InfEdgeThreshold.
		if e.Weight >= r.opts.InfEdgeThreshold {
			continue
		}

		tentative := base + e.Weight
		if old, seen := r.best[e.To]; seen && tentative >= old {
			continue
		}
		r.best[e.To] = tentative
		r.prev[e.To] = u

		est, err := r.h(r.coords, e.To, r.goal)
		if err != nil {
			return fmt.Errorf("astar: heuristic at %q: %w", e.To, err)
		}
		r.push(e.To, tentative, tentative+est)
	}

	return nil
}

// reconstruct follows predecessor links from goal back to start and
// returns the forward path.
func (r *runner) reconstruct(start string) core.Path {
	var rev core.Path
	for v := r.goal; ; {
		rev = append(rev, v)
		if v == start {
			break
		}
		p, ok := r.prev[v]
		if !ok {
			break
		}
		v = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
