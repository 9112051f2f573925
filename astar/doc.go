// Package astar implements heuristic-guided best-first search (A*) on a
// weighted core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Search(g, coords, start, goal, h, opts...) returns the cheapest
//     start→goal path when h is admissible (never overestimates the
//     remaining cost). heuristic.Zero turns it into Dijkstra's algorithm.
//   - best cost and predecessor maps are owned by one call and discarded.
//   - The frontier is a container/heap min-heap with lazy deletion: an
//     improved vertex is pushed again and the old entry is skipped when
//     popped (counted in Result.StaleSkipped).
//
// Tie-breaking:
//
//	Entries with equal priority pop in ascending vertex ID order, then in
//	push order. Among several equal-cost routes the returned one is
//	therefore stable for a given graph.
//
// Coordinates:
//
//	Every vertex the search relaxes, plus the goal, needs an entry in the
//	coordinate map. A missing one surfaces as core.ErrCoordinateNotFound
//	wrapped by the heuristic, and aborts the search: it is never treated as
//	a zero estimate.
//
// Options:
//
//   - WithOnExpand(fn)          observe each expansion with its cost from start
//   - WithMaxExpansions(n)      abort with ErrBudgetExceeded after n expansions
//   - WithInfEdgeThreshold(t)   treat edges with weight ≥ t as walls
//
// Complexity:
//
//   - Time:  O((V + E) log E); each edge may push one entry
//   - Space: O(V + E)
//
// Example usage:
//
//	h, _ := heuristic.ByName("euclidean")
//	res, err := astar.Search(g, coords, "N_0", "N_24", h)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Printf("%s (cost %.2f)\n", res.Path, res.Cost)
//	}
package astar
