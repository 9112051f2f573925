// Package builder: helpers shared by the impl_*.go constructors.
package builder

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/pathfind/core"
)

// place registers id in the graph and records its position.
func (f *Fixture) place(method, id string, p orb.Point) error {
	if err := f.Graph.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	if _, seen := f.Coords[id]; !seen {
		f.IDs = append(f.IDs, id)
	}
	f.Coords[id] = p

	return nil
}

// connect adds the undirected edge u–v and appends its record.
// Both endpoints must already be placed.
func (f *Fixture) connect(method string, cfg builderConfig, u, v string) error {
	w := f.weight(cfg, u, v)
	if err := f.Graph.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	f.Records = append(f.Records, core.EdgeRecord{From: u, To: v, Weight: w})

	return nil
}

// weight applies the configured weight policy; unweighted graphs get 0.
func (f *Fixture) weight(cfg builderConfig, u, v string) float64 {
	if !f.Graph.Weighted() {
		return 0
	}
	factor := cfg.weightFn(cfg.rng)
	if !cfg.metric {
		return factor
	}

	return planar.Distance(f.Coords[u], f.Coords[v]) * factor
}
