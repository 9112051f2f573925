// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(gopts, bopts, cons...). Creates the graph and its
//     coordinate map, resolves cfg, runs cons in order.
//   - Every constructor places vertices (ID + position) and connects them;
//     edge records are kept in emission order so a fixture can be written
//     back out with loader.WriteEdges.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     fixtures, byte for byte once written.
//   - Constructors share one ID space; composing two of them overlays
//     vertices with equal IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Fixture is a generated map: a graph, a position for every vertex, and the
// vertex IDs and edge records in the order they were added.
type Fixture struct {
	Graph   *core.Graph
	Coords  core.Coordinates
	IDs     []string
	Records []core.EdgeRecord
}

// Constructor applies a deterministic mutation to a Fixture using the
// resolved builderConfig. Constructors validate parameters early and
// return sentinel errors; they never panic.
type Constructor func(f *Fixture, cfg builderConfig) error

// Build creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "Build: %w" and
// returned immediately; no partial fixture is returned.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each
// constructor.
func Build(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	f := &Fixture{
		Graph:  core.NewGraph(gopts...),
		Coords: core.NewCoordinates(0),
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return f, nil
}

// Topology factories, implemented in impl_*.go:
//
//	Path(n)                   P_n along the x axis
//	Cycle(n)                  C_n on a circle, consecutive vertices one spacing apart
//	Grid(rows, cols)          4-neighborhood lattice, row-major IDs
//	RandomGeometric(n, r)     n uniform points, edges between points ≤ r apart
//	Occupancy(cells, opts)    free cells of an occupancy grid, 4- or 8-connected
