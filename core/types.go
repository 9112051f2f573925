// Package core defines the central Graph and Edge types used by every search
// engine in this module, together with the Coordinates map consumed by
// heuristics and the Path value returned by searches.
//
// All core APIs use a single sync.RWMutex, so a fully built Graph can be
// shared by any number of concurrent read-only searches.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID      - vertex ID is the empty string.
//	ErrBadWeight          - non-zero weight provided to an unweighted graph.
//	ErrNegativeWeight     - negative or NaN weight provided to a weighted graph.
//	ErrCoordinateNotFound - a vertex has no entry in a Coordinates map.
//	ErrBrokenPath         - consecutive path vertices are not adjacent.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNegativeWeight indicates a negative (or NaN) weight on a weighted graph.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrCoordinateNotFound indicates a lookup of a vertex absent from a Coordinates map.
	ErrCoordinateNotFound = errors.New("core: coordinate not found")

	// ErrBrokenPath indicates a Path whose consecutive vertices are not adjacent in the graph.
	ErrBrokenPath = errors.New("core: path is not a walk in the graph")
)

// Edge is one adjacency entry: the neighbor reached and the cost to reach it.
//
// Every undirected edge (a, b, w) is stored twice, as Edge{To: b, Weight: w}
// in a's list and Edge{To: a, Weight: w} in b's list.
type Edge struct {
	// To is the neighbor vertex ID.
	To string

	// Weight is the traversal cost. Always zero in unweighted graphs.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithCapacity pre-sizes the adjacency map for n vertices.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(g *Graph) { g.adjacency = make(map[string][]Edge, n) }
}

// Graph is an undirected adjacency-list graph.
//
// Neighbor order per vertex is first-insertion order: BFS and DFS tie-breaking
// depends on it, so it is never re-sorted. Duplicate edges and self-loops are
// stored as given.
type Graph struct {
	mu sync.RWMutex // guards adjacency and counters

	weighted bool // allow non-zero weights

	// adjacency[v] lists v's neighbors in insertion order.
	adjacency map[string][]Edge
	edgeCount int // undirected edges added via AddEdge
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make(map[string][]Edge)
	}

	return g
}
