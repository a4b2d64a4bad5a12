// Package antmst approximates minimum spanning trees with a single-ant
// colony and checks the ant against an exact randomized-tie Kruskal.
//
// The module is split into small packages that build on each other:
//
//	core/          weighted undirected Graph built from a node description (YAML/JSON)
//	cycle/         "would this edge close a cycle?" over a plain edge set
//	mst/           randomized-tie Kruskal (Compute) plus a union-find Reference
//	construction/  one node per original edge plus a root; pheromone + heuristic per arc
//	aco/           the ant: tours, pheromone update, convergence on the MST weight
//	builder/       deterministic graph generators (path, cycle, wheel, grid, random, ...)
//	config/        koanf-backed configuration with validation
//	metrics/       Prometheus recorder for ACO runs
//	rng/           seeded math/rand sources and seed derivation
//	cmd/antmst     command line: run, mst, inspect, generate
//
// Quick start:
//
//	g, _ := core.Load("roads.yaml")
//	tree, _ := mst.Compute(g, mst.WithSeed(1))
//	cg, _ := construction.Build(g)
//	eng, _ := aco.New(cg, tree, aco.DefaultOptions())
//	res, _ := eng.Run(ctx)
//	fmt.Println(res) // m = <tour edges>, n = <nodes>, w = <weight>, i = <tours>/<max>, a = <best at>
//
// Every random choice flows from an explicit seed, so equal seeds and equal
// inputs give equal tours.
package antmst
