// Package astar defines options, results and sentinel errors for A* search.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors returned by Search.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Search.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrUnweightedGraph indicates that the graph was built without
	// core.WithWeighted; A* needs edge costs.
	ErrUnweightedGraph = errors.New("astar: graph must be weighted")

	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBudgetExceeded indicates that MaxExpansions vertices were expanded
	// without popping the goal.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")

	// ErrBadInfThreshold indicates a non-positive impassable-edge threshold,
	// which would block every edge.
	ErrBadInfThreshold = errors.New("astar: InfEdgeThreshold must be positive")
)

// Options configures the behavior of Search.
//
// OnExpand         – called for every vertex expanded, with its cost from start.
// MaxExpansions    – expansion budget; 0 means unlimited.
// InfEdgeThreshold – edges with weight ≥ threshold are impassable.
//
//	Default is +Inf (no edge is impassable).
type Options struct {
	OnExpand         func(id string, cost float64)
	MaxExpansions    int
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no hook, no budget and no impassable edges.
func DefaultOptions() Options {
	return Options{
		OnExpand:         func(string, float64) {},
		MaxExpansions:    0,
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithOnExpand installs a hook observing every expanded vertex.
func WithOnExpand(fn func(id string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expanded vertices. Search returns
// ErrBudgetExceeded once the cap is hit. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// Result holds the outcome of an A* search.
type Result struct {
	// Path runs from start to goal inclusive when Found; nil otherwise.
	Path core.Path

	// Cost is the sum of edge weights along Path.
	Cost float64

	// Found reports whether the goal was popped from the frontier.
	Found bool

	// Expanded counts vertices whose edges were relaxed.
	Expanded int

	// StaleSkipped counts popped frontier entries that were superseded by a
	// cheaper entry for the same vertex.
	StaleSkipped int

	// Pushed counts frontier insertions, the seed included.
	Pushed int
}
