package core

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// Coordinates maps a vertex ID to its planar position.
//
// Heuristics read it through Lookup, which fails loudly for missing vertices:
// a missing coordinate must never be treated as distance zero.
// Coordinates is read-only during a search and safe for concurrent readers.
type Coordinates map[string]orb.Point

// NewCoordinates returns an empty map sized for n vertices.
func NewCoordinates(n int) Coordinates {
	return make(Coordinates, n)
}

// Set records the position of id, replacing any previous value.
func (c Coordinates) Set(id string, x, y float64) {
	c[id] = orb.Point{x, y}
}

// Lookup returns the position of id or ErrCoordinateNotFound.
func (c Coordinates) Lookup(id string) (orb.Point, error) {
	p, ok := c[id]
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrCoordinateNotFound, id)
	}

	return p, nil
}

// IDs returns every vertex with a position, sorted.
func (c Coordinates) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Bound returns the axis-aligned bounding box of all positions.
// An empty map yields the zero Bound.
func (c Coordinates) Bound() orb.Bound {
	if len(c) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, 0, len(c))
	for _, p := range c {
		mp = append(mp, p)
	}

	return mp.Bound()
}

// Missing returns the vertices of g that have no position, sorted.
// Useful to validate a map before running A* with a coordinate heuristic.
func (c Coordinates) Missing(g *Graph) []string {
	var out []string
	for _, id := range g.Vertices() {
		if _, ok := c[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}
