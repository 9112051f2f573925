// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = NodeIDFn          ("N_0","N_1",...)
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn   (factor 1)
//   • spacing  = 1.0
//   • metric   = true              (weight = edge length × factor)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Per-edge weight factor; used only for weighted graphs.
	weightFn WeightFn
	// Distance between neighboring lattice points.
	spacing float64
	// When true the factor multiplies the Euclidean edge length; when false
	// it is the weight itself.
	metric bool
}

const defaultSpacing = 1.0

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     NodeIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
		spacing:  defaultSpacing,
		metric:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
