package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// queueItem pairs a vertex ID with the path that reached it.
type queueItem struct {
	id   string
	path core.Path
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	goal    string
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Path runs breadth-first search on g from start towards goal,
// applying any number of functional Options.
//
// The returned path has the minimum number of edges among all start→goal
// walks. If goal is unreachable, or start is unknown to g, the Result has
// Found == false and err == nil.
//
// start == goal is not special-cased: the goal is only ever recognised as a
// neighbor of a visited vertex, so an isolated start never finds itself.
//
// Returns ErrGraphNil, ErrOptionViolation, or a wrapped OnVisit hook error.
func Path(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		goal:    goal,
		queue:   make([]queueItem, 0, 16),
		visited: make(map[string]bool),
		res:     &Result{},
	}

	// Seed queue with (start, [start])
	w.enqueue(start, core.Path{start})

	return w.res, w.loop()
}

// enqueue appends (id, path) to the queue and calls OnEnqueue.
func (w *walker) enqueue(id string, path core.Path) {
	w.res.Enqueued++
	w.opts.OnEnqueue(id, path.Hops())
	w.queue = append(w.queue, queueItem{id: id, path: path})
}

// loop processes the queue until empty, goal found, or hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if w.visited[item.id] {
			continue
		}
		w.visited[item.id] = true
		w.res.Expanded++

		if err := w.opts.OnVisit(item.id, item.path.Hops()); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.expand(item) {
			return nil
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue[0] = queueItem{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.path.Hops())

	return item
}

// expand walks item's neighbors in adjacency order. It returns true once a
// neighbor equals the goal, after recording the found path.
func (w *walker) expand(item queueItem) bool {
	nextDepth := len(item.path)
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return false
	}
	for _, nbr := range w.graph.NeighborIDs(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		next := extend(item.path, nbr)
		if nbr == w.goal {
			w.res.Path = next
			w.res.Found = true

			return true
		}
		w.enqueue(nbr, next)
	}

	return false
}

// extend returns a fresh copy of p with v appended; queued paths never share
// backing arrays.
func extend(p core.Path, v string) core.Path {
	out := make(core.Path, len(p)+1)
	copy(out, p)
	out[len(p)] = v

	return out
}
