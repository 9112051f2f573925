// Package builder generates deterministic robot-map fixtures: a core.Graph,
// a position for every vertex, and the list of edge records.
//
// The package offers the following key components:
//
//   - Build(gopts, bopts, cons...): the single orchestrator returning a *Fixture.
//   - Constructors: Path, Cycle, Grid, RandomGeometric, Occupancy.
//   - Vertex‐ID schemes (IDFn): NodeIDFn ("N_0","N_1",…, the default),
//     DecimalIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Edge‐weight policies (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Weights:
//
//	On a weighted graph each edge weighs its Euclidean length times the
//	WeightFn factor (1 by default), so straight-line heuristics stay
//	admissible for factors ≥ 1. WithHopWeights drops the length term.
//	Unweighted graphs always get weight 0.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ same fixture.
//   - Fast‐fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ErrNeedRandSource,
//     ErrInvalidRadius, ErrEmptyGrid, ErrNonRectangular) wrapped with the
//     constructor name; they never panic.
//
// Fixtures feed the benchmarks, the cross-engine property tests and the
// `pathfind generate` command, which writes them with loader.WriteEdges and
// loader.WriteCoordinates.
package builder
