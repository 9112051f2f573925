// Package dfs implements iterative depth-first path search on a core.Graph.
//
// What:
//
//   - Path(g, start, goal, opts...) walks an explicit LIFO stack of
//     (vertex, path-so-far) pairs seeded with (start, [start]).
//   - A vertex is marked visited when popped. Every neighbor is pushed
//     without a visited pre-check, so duplicates may sit on the stack and
//     are discarded when popped.
//   - The goal test runs on the popped vertex, unlike bfs, which tests
//     neighbors before enqueueing. start == goal therefore returns [start].
//   - The path found is valid and free of repeated vertices, not
//     necessarily the shortest.
//
// Stack order:
//
//	Neighbors are pushed in adjacency (first-insertion) order, so the last
//	loaded neighbor is explored first. There is no recursion, so deep
//	graphs cannot overflow the goroutine stack.
//
// Options:
//
//   - WithOnPush(fn), WithOnPop(fn)  observe stack traffic
//   - WithOnVisit(fn)                fires on first pop; an error aborts
//   - WithMaxDepth(limit)            caps path length in edges (0 = none)
//   - WithFilterNeighbor(fn)         skip adjacency entries
//
// Complexity:
//
//   - Time:   O(V + E) stack operations, each copying a path of length ≤ V
//   - Memory: O(E · V) worst case for stacked paths
//
// Errors:
//
//   - ErrGraphNil         graph pointer is nil
//   - ErrOptionViolation  invalid option (negative MaxDepth)
//   - hook errors         propagated from OnVisit
//
// "No path" is never an error: Result.Found is false.
package dfs
