// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// Occupancy: robot map from an occupancy grid.
//
// Contract:
//   - cells[r][c] >= Blocked marks an obstacle; every other cell is free.
//   - Each free cell becomes a vertex idFn(r*cols + c) at (c·s, r·s), so IDs
//     line up with Grid(rows, cols) on the same dimensions.
//   - Free neighbors are joined with Conn4 (orthogonal) or Conn8 (plus
//     diagonals). Diagonals are never cut through: a diagonal move needs
//     both orthogonal cells it passes between to be free.
//   - Edge order per cell: E, then SW, S, SE (SW/SE only with Conn8).
// Complexity: O(rows·cols) time and memory.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
)

const methodOccupancy = "Occupancy"

// Connectivity selects orthogonal (Conn4) or orthogonal+diagonal (Conn8) moves.
type Connectivity int

const (
	// Conn4 moves N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// OccupancyOptions tunes Occupancy.
type OccupancyOptions struct {
	// Blocked is the smallest cell value treated as an obstacle.
	Blocked int
	// Conn selects the move set.
	Conn Connectivity
}

// DefaultOccupancyOptions returns Blocked=1 (0 free, 1 wall) and Conn4.
func DefaultOccupancyOptions() OccupancyOptions {
	return OccupancyOptions{Blocked: 1, Conn: Conn4}
}

// forward offsets {dc, dr} reaching cells later in row-major order.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// Occupancy returns a Constructor for the free space of cells.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func Occupancy(cells [][]int, opts OccupancyOptions) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if len(cells) == 0 || len(cells[0]) == 0 {
			return fmt.Errorf("%s: %w", methodOccupancy, ErrEmptyGrid)
		}
		rows, cols := len(cells), len(cells[0])
		for r, row := range cells {
			if len(row) != cols {
				return fmt.Errorf("%s: row %d has %d cells, want %d: %w",
					methodOccupancy, r, len(row), cols, ErrNonRectangular)
			}
		}
		free := func(r, c int) bool {
			return r >= 0 && r < rows && c >= 0 && c < cols && cells[r][c] < opts.Blocked
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !free(r, c) {
					continue
				}
				p := orb.Point{float64(c) * cfg.spacing, float64(r) * cfg.spacing}
				if err := f.place(methodOccupancy, id(r, c), p); err != nil {
					return err
				}
			}
		}

		offsets := forward4
		if opts.Conn == Conn8 {
			offsets = forward8
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !free(r, c) {
					continue
				}
				for _, d := range offsets {
					nr, nc := r+d[1], c+d[0]
					if !free(nr, nc) {
						continue
					}
					// diagonal: both corner cells must be open
					if d[0] != 0 && d[1] != 0 && (!free(r, nc) || !free(nr, c)) {
						continue
					}
					if err := f.connect(methodOccupancy, cfg, id(r, c), id(nr, nc)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
