// Package core: Graph method implementations
//
// Adjacency is stored as map[vertex][]Edge. AddEdge appends to both endpoint
// lists, so the neighbor order of every vertex is the order in which its
// edges were first loaded.

package core

import (
	"math"
	"sort"
)

// AddVertex registers an isolated vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; !exists {
		g.adjacency[id] = nil
	}

	return nil
}

// HasVertex reports whether id was registered via AddVertex or AddEdge.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// AddEdge inserts the undirected edge from-to with the given weight:
// to is appended to from's neighbor list and from to to's list.
//
// A self-loop (from == to) therefore appears twice in the vertex's list,
// and repeated calls for the same pair produce repeated entries.
//
// Returns ErrEmptyVertexID, ErrBadWeight (non-zero weight on an unweighted
// graph) or ErrNegativeWeight (negative/NaN weight on a weighted graph).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if weight < 0 || math.IsNaN(weight) {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Mirror for the undirected model.
	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Edge{To: from, Weight: weight})
	g.edgeCount++

	return nil
}

// Neighbors returns a copy of id's adjacency list in insertion order.
// An unknown vertex has an implicit empty list; Neighbors never fails.
// Complexity: O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}

// NeighborIDs returns the target IDs of Neighbors(id), in the same order.
// Duplicates are kept.
// Complexity: O(d)
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	if len(src) == 0 {
		return nil
	}
	ids := make([]string, len(src))
	for i, e := range src {
		ids[i] = e.To
	}

	return ids
}

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls that succeeded. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Degree returns the length of id's adjacency list (self-loops count twice).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// MinWeight returns the smallest weight among the parallel edges from→to,
// and false if to is not a neighbor of from.
// Complexity: O(d)
func (g *Graph) MinWeight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best, found := math.Inf(1), false
	for _, e := range g.adjacency[from] {
		if e.To == to && e.Weight < best {
			best, found = e.Weight, true
		}
	}

	return best, found
}
