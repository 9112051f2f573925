package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// stackItem pairs a vertex with the path that reached it.
type stackItem struct {
	id   string
	path core.Path
}

// dfsWalker encapsulates state during one DFS call.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	goal    string
	stack   []stackItem
	visited map[string]bool
	res     *Result
}

// Path performs iterative depth-first search on g from start towards goal.
//
// The returned path is a valid walk without repeated vertices but is not
// necessarily the shortest. If goal is unreachable the Result has
// Found == false and a nil error. start == goal yields the one-element path
// [start], since the goal test runs on every popped vertex.
//
// Errors: ErrGraphNil, ErrOptionViolation, or a wrapped OnVisit hook error.
func Path(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	walker := &dfsWalker{
		graph:   g,
		opts:    dopts,
		goal:    goal,
		stack:   make([]stackItem, 0, 16),
		visited: make(map[string]bool),
		res:     &Result{},
	}

	// 3. Seed with (start, [start]) and run
	walker.push(start, core.Path{start})

	return walker.res, walker.run()
}

// push appends (id, path) to the stack and fires OnPush.
func (w *dfsWalker) push(id string, path core.Path) {
	w.res.Pushed++
	w.opts.OnPush(id, path.Hops())
	w.stack = append(w.stack, stackItem{id: id, path: path})
}

// pop removes the top of the stack and fires OnPop.
func (w *dfsWalker) pop() stackItem {
	last := len(w.stack) - 1
	item := w.stack[last]
	w.stack[last] = stackItem{}
	w.stack = w.stack[:last]
	w.opts.OnPop(item.id, item.path.Hops())

	return item
}

// run pops until the stack is empty, the goal is popped, or a hook fails.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		item := w.pop()

		// 1. Lazy deduplication: a vertex may be on the stack many times
		if w.visited[item.id] {
			continue
		}
		w.visited[item.id] = true
		w.res.Expanded++

		// 2. Visit hook
		if err := w.opts.OnVisit(item.id, item.path.Hops()); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", item.id, err)
		}

		// 3. Goal test on pop
		if item.id == w.goal {
			w.res.Path = item.path
			w.res.Found = true

			return nil
		}

		// 4. Depth limit
		if w.opts.MaxDepth > 0 && item.path.Hops() >= w.opts.MaxDepth {
			continue
		}

		// 5. Push every neighbor; visited ones are discarded when popped
		for _, nid := range w.graph.NeighborIDs(item.id) {
			if !w.opts.FilterNeighbor(item.id, nid) {
				continue
			}
			w.push(nid, extend(item.path, nid))
		}
	}

	return nil
}

// extend copies p and appends v.
func extend(p core.Path, v string) core.Path {
	out := make(core.Path, len(p)+1)
	copy(out, p)
	out[len(p)] = v

	return out
}
