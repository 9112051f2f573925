// Package pathfind finds robot routes over undirected maps stored as plain
// text: an edge list (a,b,w per line) and a coordinate file (node,x,y).
//
// What is in the box?
//
//	• Breadth-first search: fewest edges, weights ignored
//	• Depth-first search: any path, explicit stack, no recursion limits
//	• A*: cheapest path under Euclidean, Manhattan, Chebyshev or zero heuristics
//	• Loaders and writers for the map format, and a YAML scenario runner
//	• Deterministic map generators for tests and benchmarks
//
// Every search is a pure function of (graph, start, goal, options). Graphs
// are safe for any number of concurrent read-only searches; neighbor order
// is edge-file order, so results are reproducible run to run.
//
// Layout:
//
//	core/       - Graph, Edge, Path and Coordinates
//	heuristic/  - distance estimates for A*
//	bfs/, dfs/  - unweighted search engines with hooks
//	astar/      - weighted search engine (lazy-deletion priority queue)
//	spatial/    - R-tree index snapping positions to vertices
//	loader/     - edge-list / node-CSV / occupancy-grid I/O
//	builder/    - Path, Cycle, Grid, RandomGeometric and Occupancy fixtures
//	scenario/   - batch queries from YAML, run concurrently
//	logging/    - slog setup for the CLI
//	cmd/pathfind - command-line front end
//
// Quick example:
//
//	g, coords, _ := loader.LoadWeighted("TestCase_01_EdgeList.txt", "TestCase_01_NodeID.csv")
//	res, _ := astar.Search(g, coords, "N_0", "N_24", heuristic.Euclidean)
//	fmt.Println(res.Path) // N_0 => N_1 => ... => N_24
package pathfind
