// Package builder generates deterministic graph descriptions for tests,
// benchmarks and the antmst CLI.
//
// Every topology is a Constructor; Build applies constructors in order to a
// shared draft and returns a core.Description, BuildGraph additionally turns
// it into a *core.Graph.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, label scheme and weight function.
//   - Label schemes (IDFn implementations):
//     – DefaultIDFn:     decimal strings ("0","1",…).
//     – SymbolIDFn:      single letters ("A","B",…,"Z").
//     – ExcelColumnIDFn: spreadsheet columns ("A",…,"Z","AA",…).
//     – SymbolNumberIDFn(prefix): prefixed decimals ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations), always positive:
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed value.
//     – UniformWeightFn:  ∼U[min,max).
//     – IntegerWeightFn:  uniform integers in [min,max], handy for ties.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomTree, RandomSparse.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical descriptions.
//   - Composition: a pair already present in the draft is skipped (first
//     weight wins), so RandomTree followed by RandomSparse yields a connected
//     random graph.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters return sentinel errors.
package builder
