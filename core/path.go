package core

import (
	"fmt"
	"strings"
)

// PathSeparator joins vertices in Path.String.
const PathSeparator = " => "

// Path is an ordered walk from a start vertex to a goal vertex, both inclusive.
//
// Engines signal "no path" with a separate found flag; a found Path always
// has at least one vertex (start == goal yields a single-vertex Path).
type Path []string

// Hops returns the number of edges in the walk.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// String renders the walk as "N_0 => N_1 => N_2".
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Valid reports whether every consecutive pair of p is adjacent in g.
func (p Path) Valid(g *Graph) bool {
	_, err := p.Cost(g)
	return err == nil
}

// Cost sums, over consecutive pairs, the cheapest parallel edge weight.
// Returns ErrBrokenPath if some pair is not adjacent.
// Complexity: O(Σ deg(p[i])).
func (p Path) Cost(g *Graph) (float64, error) {
	var total float64
	for i := 1; i < len(p); i++ {
		w, ok := g.MinWeight(p[i-1], p[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s -> %s", ErrBrokenPath, p[i-1], p[i])
		}
		total += w
	}

	return total, nil
}

// HasRepeats reports whether some vertex appears more than once in p.
func (p Path) HasRepeats() bool {
	seen := make(map[string]struct{}, len(p))
	for _, v := range p {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}
