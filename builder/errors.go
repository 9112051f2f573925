// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRadius indicates a connection radius that is not a positive
// finite number.
var ErrInvalidRadius = errors.New("builder: invalid radius")

// ErrConstructFailed indicates a programmer error in the constructor list
// (nil constructor) or a core rejection of a generated vertex or edge.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrEmptyGrid indicates an occupancy grid with no rows or no columns.
var ErrEmptyGrid = errors.New("builder: occupancy grid must have at least one row and one column")

// ErrNonRectangular indicates occupancy grid rows of differing lengths.
var ErrNonRectangular = errors.New("builder: all occupancy rows must have the same length")
