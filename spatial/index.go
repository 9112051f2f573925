// Package spatial indexes vertex positions in an R-tree so callers can
// resolve a free 2D position to the nearest graph vertex, or list the
// vertices inside a box.
package spatial

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/pathfind/core"
)

// R-tree shape: 2D, 25..50 entries per node.
const (
	dims       = 2
	minEntries = 25
	maxEntries = 50

	// pointTol is the half-side of the box stored for each point.
	pointTol = 1e-9

	// nearestCandidates bounds how many approximate neighbors are re-ranked
	// by exact distance in Nearest.
	nearestCandidates = 8
)

// entry wraps one vertex position for R-tree storage.
type entry struct {
	id string
	pt orb.Point
	bb rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.bb }

// Index is a read-only spatial index over a coordinate map.
// Safe for concurrent queries once built.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds an index over every position in c. Entries are inserted
// in sorted ID order.
func NewIndex(c core.Coordinates) *Index {
	tree := rtreego.NewTree(dims, minEntries, maxEntries)
	for _, id := range c.IDs() {
		p := c[id]
		tree.Insert(&entry{
			id: id,
			pt: p,
			bb: rtreego.Point{p.X(), p.Y()}.ToRect(pointTol),
		})
	}

	return &Index{tree: tree, size: len(c)}
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the vertex closest to p. Equal distances resolve to the
// smaller ID. ok is false only for an empty index.
func (ix *Index) Nearest(p orb.Point) (id string, ok bool) {
	if ix.size == 0 {
		return "", false
	}
	k := nearestCandidates
	if ix.size < k {
		k = ix.size
	}

	best := math.Inf(1)
	for _, s := range ix.tree.NearestNeighbors(k, rtreego.Point{p.X(), p.Y()}) {
		if s == nil {
			continue
		}
		e := s.(*entry)
		d := planar.Distance(p, e.pt)
		if d < best || (d == best && e.id < id) {
			best, id = d, e.id
		}
	}

	return id, id != ""
}

// Within returns the sorted IDs of all vertices inside b, boundary included.
func (ix *Index) Within(b orb.Bound) []string {
	rect, err := boundRect(b)
	if err != nil {
		return nil
	}

	var out []string
	for _, s := range ix.tree.SearchIntersect(rect) {
		e := s.(*entry)
		if b.Contains(e.pt) {
			out = append(out, e.id)
		}
	}
	sort.Strings(out)

	return out
}

// WithinRadius returns the sorted IDs of all vertices whose distance to p is
// at most r.
func (ix *Index) WithinRadius(p orb.Point, r float64) []string {
	if r < 0 || math.IsNaN(r) {
		return nil
	}
	box := orb.Bound{Min: orb.Point{p.X() - r, p.Y() - r}, Max: orb.Point{p.X() + r, p.Y() + r}}
	rect, err := boundRect(box)
	if err != nil {
		return nil
	}

	var out []string
	for _, s := range ix.tree.SearchIntersect(rect) {
		e := s.(*entry)
		if planar.Distance(p, e.pt) <= r {
			out = append(out, e.id)
		}
	}
	sort.Strings(out)

	return out
}

// boundRect converts b to an rtreego.Rect, padding degenerate sides since
// rtreego rejects zero lengths.
func boundRect(b orb.Bound) (rtreego.Rect, error) {
	w := b.Max.X() - b.Min.X()
	h := b.Max.Y() - b.Min.Y()
	minX, minY := b.Min.X(), b.Min.Y()
	if w <= 0 {
		minX -= pointTol
		w = 2 * pointTol
	}
	if h <= 0 {
		minY -= pointTol
		h = 2 * pointTol
	}

	return rtreego.NewRect(rtreego.Point{minX, minY}, []float64{w, h})
}
