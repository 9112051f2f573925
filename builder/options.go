// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// A nil fn is ignored and the current scheme is kept.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight factor. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSpacing sets the lattice pitch used by Path, Cycle and Grid and the
// side of the RandomGeometric square. Panics unless s is finite and > 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		panic(fmt.Sprintf("builder: WithSpacing(%g)", s))
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithHopWeights makes the weight function the edge weight itself instead
// of a factor on edge length. With the default factor every edge weighs 1,
// so weighted search costs equal hop counts.
func WithHopWeights() BuilderOption {
	return func(c *builderConfig) {
		c.metric = false
	}
}
