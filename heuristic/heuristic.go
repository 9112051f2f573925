// Package heuristic provides the distance estimators used by astar.Search.
//
// Every estimator has the signature of Func and reads positions from a
// core.Coordinates map. A vertex missing from the map is an error wrapped
// around core.ErrCoordinateNotFound, never a silent zero.
//
// Admissibility (never overestimating the true remaining cost) is the
// caller's responsibility: A* returns optimal paths only when the chosen
// estimator is admissible for the graph's edge weights. Euclidean is
// admissible whenever every edge weight is at least the straight-line
// length of the edge; Manhattan additionally requires axis-aligned
// movement costs; Chebyshev is admissible whenever Euclidean is.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/pathfind/core"
)

// ErrUnknownHeuristic is returned by ByName for unregistered names.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining cost from node to goal.
type Func func(c core.Coordinates, node, goal string) (float64, error)

// Names of the built-in estimators, as accepted by ByName.
const (
	NameEuclidean = "euclidean"
	NameManhattan = "manhattan"
	NameChebyshev = "chebyshev"
	NameZero      = "zero"
)

var registry = map[string]Func{
	NameEuclidean: Euclidean,
	NameManhattan: Manhattan,
	NameChebyshev: Chebyshev,
	NameZero:      Zero,
}

// Euclidean returns the straight-line distance sqrt(dx² + dy²).
func Euclidean(c core.Coordinates, node, goal string) (float64, error) {
	a, b, err := endpoints(c, node, goal)
	if err != nil {
		return 0, err
	}

	return planar.Distance(a, b), nil
}

// Manhattan returns |dx| + |dy|.
func Manhattan(c core.Coordinates, node, goal string) (float64, error) {
	a, b, err := endpoints(c, node, goal)
	if err != nil {
		return 0, err
	}

	return math.Abs(b.X()-a.X()) + math.Abs(b.Y()-a.Y()), nil
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(c core.Coordinates, node, goal string) (float64, error) {
	a, b, err := endpoints(c, node, goal)
	if err != nil {
		return 0, err
	}

	return math.Max(math.Abs(b.X()-a.X()), math.Abs(b.Y()-a.Y())), nil
}

// Zero always returns 0 and never reads the map; A* degrades to Dijkstra.
func Zero(_ core.Coordinates, _, _ string) (float64, error) {
	return 0, nil
}

// ByName resolves a case-insensitive estimator name.
func ByName(name string) (Func, error) {
	h, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownHeuristic, name, strings.Join(Names(), ", "))
	}

	return h, nil
}

// Names lists the registered estimator names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// endpoints looks up both positions; node is looked up first.
func endpoints(c core.Coordinates, node, goal string) (orb.Point, orb.Point, error) {
	a, err := c.Lookup(node)
	if err != nil {
		return orb.Point{}, orb.Point{}, fmt.Errorf("heuristic: node: %w", err)
	}
	b, err := c.Lookup(goal)
	if err != nil {
		return orb.Point{}, orb.Point{}, fmt.Errorf("heuristic: goal: %w", err)
	}

	return a, b, nil
}
