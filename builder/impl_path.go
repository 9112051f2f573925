// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex i gets ID cfg.idFn(i) and position (i·spacing, 0).
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n along the x axis.
func Path(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := f.place(methodPath, cfg.idFn(i), orb.Point{float64(i) * cfg.spacing, 0}); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := f.connect(methodPath, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
