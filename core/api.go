// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Construction from raw edge records and read-only diagnostics.
// Policy:
//   - No algorithms here.
//   - Records are applied strictly in order; the order defines neighbor order.

package core

import "fmt"

// EdgeRecord is one raw input edge as produced by a loader: (From, To[, Weight]).
// Weight is ignored (must be zero) when building an unweighted graph.
type EdgeRecord struct {
	From   string
	To     string
	Weight float64
}

// GraphStats is a read-only snapshot of a Graph's configuration and size.
type GraphStats struct {
	Weighted    bool
	VertexCount int
	EdgeCount   int
	SelfLoops   int
	MaxDegree   int
}

// FromRecords builds a Graph by applying AddEdge for every record in order.
//
// For unweighted graphs (no WithWeighted option) the record weights are
// discarded, mirroring loaders that read a weight column but build an
// unweighted adjacency.
//
// Errors:
//   - Wrapped AddEdge errors, annotated with the record index.
//
// Complexity:
//   - Time O(len(records)), Space O(V + E).
func FromRecords(records []EdgeRecord, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	var w float64
	for i, r := range records {
		w = r.Weight
		if !g.weighted {
			w = 0
		}
		if err := g.AddEdge(r.From, r.To, w); err != nil {
			return nil, fmt.Errorf("core: record %d (%s,%s): %w", i, r.From, r.To, err)
		}
	}

	return g, nil
}

// Stats produces a snapshot of configuration flags and sizes.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Weighted:    g.weighted,
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	for id, edges := range g.adjacency {
		if len(edges) > stats.MaxDegree {
			stats.MaxDegree = len(edges)
		}
		for _, e := range edges {
			if e.To == id {
				stats.SelfLoops++
			}
		}
	}
	// each self-loop is stored twice in its own list
	stats.SelfLoops /= 2

	return &stats
}
