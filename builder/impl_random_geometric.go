// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_random_geometric.go - RandomGeometric(n, radius) constructor.
//
// Model:
//   • n points drawn uniformly from the square [0, spacing)², in index order,
//     two draws (x then y) per point.
//   • Vertices i < j are connected when their distance is ≤ radius·spacing.
//   • Neighbor candidates come from a spatial.Index R-tree query.
//
// Contract:
//   • n ≥ 2 (ErrTooFewVertices), radius finite and > 0 (ErrInvalidRadius),
//     cfg.rng != nil (ErrNeedRandSource), checked in that order.
//   • Edge order: by i ascending, then j ascending.
//   • All points are drawn before any weight, so weights never shift positions.
//
// Complexity: O(n log n + n·k) expected for k neighbors per point.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathfind/spatial"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minGeometricNodes     = 2
)

// RandomGeometric returns a Constructor for a seeded random geometric graph.
func RandomGeometric(n int, radius float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minGeometricNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minGeometricNodes, ErrTooFewVertices)
		}
		if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		// 1) Draw and place all points.
		ids := make([]string, n)
		index := make(map[string]int, n)
		for i := 0; i < n; i++ {
			x := cfg.rng.Float64() * cfg.spacing
			y := cfg.rng.Float64() * cfg.spacing
			ids[i] = cfg.idFn(i)
			index[ids[i]] = i
			if err := f.place(methodRandomGeometric, ids[i], orb.Point{x, y}); err != nil {
				return err
			}
		}

		// 2) Connect each i to every later j within reach.
		ix := spatial.NewIndex(f.Coords)
		reach := radius * cfg.spacing
		for i := 0; i < n; i++ {
			var later []int
			for _, id := range ix.WithinRadius(f.Coords[ids[i]], reach) {
				if j, ok := index[id]; ok && j > i {
					later = append(later, j)
				}
			}
			sort.Ints(later)
			for _, j := range later {
				if err := f.connect(methodRandomGeometric, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
