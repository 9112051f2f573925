// Package core provides the undirected, insertion-ordered Graph shared by the
// bfs, dfs and astar engines, plus the Coordinates map and Path value.
//
// The Graph G = (V,E) supports:
//
//   - Unweighted (default) vs. weighted edges (WithWeighted)
//   - Parallel edges and self-loops, stored exactly as loaded
//   - First-insertion neighbor order, which drives BFS/DFS tie-breaking
//   - Implicit empty adjacency for unknown vertices (Neighbors never fails)
//   - A single sync.RWMutex so many searches can share one built graph
//
// Construction:
//
//	g, err := core.FromRecords([]core.EdgeRecord{
//	    {From: "N_0", To: "N_1", Weight: 1},
//	    {From: "N_1", To: "N_2", Weight: 1},
//	}, core.WithWeighted())
//
// Core Methods:
//
//	AddVertex(id string) error                // O(1)
//	AddEdge(from, to string, w float64) error // O(1), mirrors to→from
//	HasVertex(id string) bool                 // O(1)
//	Neighbors(id string) []Edge               // O(d), insertion order, copy
//	NeighborIDs(id string) []string           // O(d), insertion order
//	Vertices() []string                       // O(V·log V), sorted
//	VertexCount(), EdgeCount(), Degree(id)    // O(1)
//	MinWeight(from, to string)                // O(d)
//	Stats() *GraphStats                       // O(V+E)
//
// Coordinates:
//
//	Coordinates is map[string]orb.Point. Lookup returns ErrCoordinateNotFound
//	for a missing vertex; heuristics propagate that error instead of
//	defaulting to zero.
//
// Path:
//
//	Path is []string. String() renders "A => B => C"; Cost(g) and Valid(g)
//	check a returned walk against the graph.
//
// Errors:
//
//	ErrEmptyVertexID      – zero-length vertex ID
//	ErrBadWeight          – non-zero weight on unweighted graph
//	ErrNegativeWeight     – negative or NaN weight on weighted graph
//	ErrCoordinateNotFound – vertex missing from a Coordinates map
//	ErrBrokenPath         – Path contains a non-adjacent consecutive pair
package core
