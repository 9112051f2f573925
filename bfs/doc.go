// Package bfs provides breadth-first path search over a core.Graph,
// returning a fewest-edges path between two vertices.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from start.
//   - Return a Result containing:
//   - Path: start → … → goal, inclusive
//   - Found: false when goal is unreachable ("no path" is not an error)
//   - Expanded / Enqueued: work counters for diagnostics
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a (vertex, path) pair is queued)
//   - OnDequeue (for every dequeued pair, visited or not)
//   - OnVisit   (when a vertex is marked visited; may abort with an error)
//   - Allows filtering of individual neighbor entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Queue discipline
//
//	The queue stores (vertex, path-so-far). A vertex is marked visited only
//	when dequeued, so a vertex reachable by several equal-length paths may be
//	queued several times; the first dequeue wins and later ones are skipped.
//	Neighbors are tested against goal before being queued, and the search
//	returns on the first match. Marking on enqueue instead would change which
//	of several equal-length paths is returned.
//
//	Because the goal is only recognised as someone's neighbor, Path(g, s, s)
//	finds a path only when s is reachable back from itself (a self-loop gives
//	[s s]; a cycle through t gives [s t s]). An isolated s yields Found=false.
//
// Determinism
//
//	core.Graph keeps neighbors in first-insertion order and BFS enqueues them
//	in that order, so the returned path is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) queue operations, each copying a path of length ≤ V
//   - Memory: O(E · V) worst case for queued paths
//
// Usage
//
//	res, err := bfs.Path(g, "N_0", "N_24")
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, or an OnVisit hook error
//	}
//	if !res.Found {
//	    // no path
//	}
//	fmt.Println(res.Path) // N_0 => N_5 => ... => N_24
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
