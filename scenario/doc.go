// Package scenario runs batches of named robot-map queries.
//
// A scenario file (YAML) names a data directory and a list of test cases.
// Each case points at a map (by default TestCase_<id>_EdgeList.txt and
// TestCase_<id>_NodeID.csv inside data_dir) and asks for one start/goal
// query under any mix of algorithms and A* heuristics:
//
//	data_dir: data
//	cases:
//	  - id: "01"
//	    start: N_0
//	    goal: N_24
//	    algorithms: [bfs, dfs, astar]
//	    heuristics: [chebyshev, euclidean, manhattan]
//
// Run loads every map once, then executes all queries concurrently on the
// shared read-only graphs, and returns one Report per (case, algorithm,
// heuristic) in file order. A query that fails (for instance, a vertex
// without coordinates under a coordinate heuristic) is reported in its
// Report.Err; only unreadable maps and cancellation fail the whole run.
package scenario
