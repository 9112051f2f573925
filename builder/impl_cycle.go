// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices sit on a circle centered at the origin, counter-clockwise
//     from angle 0, with radius chosen so that consecutive vertices are
//     exactly one spacing apart.
//   • Emits edges i–(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex ring C_n.
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// chord length 2R·sin(π/n) == spacing
		radius := cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			p := orb.Point{radius * math.Cos(theta), radius * math.Sin(theta)}
			if err := f.place(methodCycle, cfg.idFn(i), p); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := f.connect(methodCycle, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
