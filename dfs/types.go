// Package dfs defines options, results and errors for depth-first path
// search over a core.Graph.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Path.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS.
// Use with Path(g, start, goal, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS.
// Complexity remains O(V+E) stack operations when hooks and filters are O(1).
type DFSOptions struct {
	// OnPush is invoked for every (vertex, path) pair pushed on the stack,
	// with the number of edges in that path.
	OnPush func(id string, depth int)

	// OnPop is invoked for every popped pair, including ones skipped because
	// the vertex was already visited.
	OnPop func(id string, depth int)

	// OnVisit is invoked when a popped vertex is marked visited.
	// Returning an error aborts the search with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops pushing neighbors of vertices whose path
	// already has MaxDepth edges. 0 means no limit.
	MaxDepth int

	// FilterNeighbor, if it returns false, skips the adjacency entry curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns DFSOptions with no hooks, no filter and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnPush:         func(string, int) {},
		OnPop:          func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithOnPush installs fn as the push hook.
func WithOnPush(fn func(id string, depth int)) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop installs fn as the pop hook.
func WithOnPop(fn func(id string, depth int)) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnVisit installs fn as the visit hook; an error from fn aborts the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the number of edges in any explored path.
// A negative limit is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips adjacency entries for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result captures the outcome of a depth-first path search.
type Result struct {
	// Path runs from start to goal inclusive when Found; nil otherwise.
	Path core.Path

	// Found reports whether goal was popped.
	Found bool

	// Expanded counts vertices marked visited.
	Expanded int

	// Pushed counts stack insertions, duplicates included.
	Pushed int
}
