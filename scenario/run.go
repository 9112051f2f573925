package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	parallel int
	search   SearchOptions
}

// WithParallelism caps the number of concurrent loads and queries.
// n <= 0 means runtime.GOMAXPROCS(0).
func WithParallelism(n int) RunOption {
	return func(o *runOptions) { o.parallel = n }
}

// WithLogger sets the logger passed to every query.
func WithLogger(l *slog.Logger) RunOption {
	return func(o *runOptions) { o.search.Logger = l }
}

// WithMaxExpansions bounds every A* query; 0 means unbounded.
func WithMaxExpansions(n int) RunOption {
	if n < 0 {
		panic(fmt.Sprintf("scenario: WithMaxExpansions(%d)", n))
	}
	return func(o *runOptions) { o.search.MaxExpansions = n }
}

// Queries expands c into one Query per algorithm, and one per heuristic
// for A*, in declaration order.
func (c Case) Queries() []Query {
	var out []Query
	for _, a := range c.Algorithms {
		q := Query{CaseID: c.ID, Algorithm: a, Start: c.Start, Goal: c.Goal}
		if a != AStar {
			out = append(out, q)
			continue
		}
		for _, h := range c.Heuristics {
			q.Heuristic = h
			out = append(out, q)
		}
	}

	return out
}

// Run loads every map of cfg, then executes all queries concurrently.
// Reports come back in case order, then query order within each case.
func Run(ctx context.Context, cfg *Config, opts ...RunOption) ([]Report, error) {
	o := runOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallel <= 0 {
		o.parallel = runtime.GOMAXPROCS(0)
	}

	// 1) Load all maps; graphs are read-only afterwards.
	maps := make([]*Map, len(cfg.Cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallel)
	for i, c := range cfg.Cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			edgePath, nodePath := c.Paths(cfg.DataDir)
			m, err := LoadMap(edgePath, nodePath, c.Algorithms)
			if err != nil {
				return fmt.Errorf("scenario: case %q: %w", c.ID, err)
			}
			maps[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 2) Fan out queries into fixed slots.
	type job struct {
		m *Map
		q Query
	}
	var jobs []job
	for i, c := range cfg.Cases {
		for _, q := range c.Queries() {
			jobs = append(jobs, job{m: maps[i], q: q})
		}
	}

	reports := make([]Report, len(jobs))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(o.parallel)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = Execute(gctx, j.m, j.q, o.search)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
