// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) has index r*cols+c, ID cfg.idFn(index) and position
//     (c·spacing, r·spacing). With default IDs a 5×5 grid runs N_0..N_24,
//     the layout of the robot-map test cases.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices in row-major order.
//   • For each (r,c) emits Right then Bottom edge where they exist.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }

		// 2) Place all vertices in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := orb.Point{float64(c) * cfg.spacing, float64(r) * cfg.spacing}
				if err := f.place(methodGrid, id(r, c), p); err != nil {
					return err
				}
			}
		}

		// 3) Emit edges: Right then Bottom.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := f.connect(methodGrid, cfg, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := f.connect(methodGrid, cfg, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
