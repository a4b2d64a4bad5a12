// Package aco runs a single-ant Ant Colony Optimisation over a
// construction.Graph to approximate the minimum spanning tree of the original
// graph.
//
// One iteration is one tour:
//
//  1. The ant starts at the root. At every step the available candidates are
//     the unvisited edge-nodes whose original edge does not close a cycle with
//     the edges chosen so far (cycle.CausesCycle). Nodes found to close a
//     cycle are remembered for the rest of the tour.
//  2. A candidate edge e is drawn by roulette wheel with weight
//     p(e) = τ(e)^α · η(e)^β.
//  3. The tour ends when no candidate remains. Its fitness is the summed
//     weight of the chosen original edges.
//
// After each tour the best solution is replaced when the tour weighs no more
// than it (ties move the best iteration forward), and every pheromone is
// updated:
//
//	destination visited:     τ' = min(1, (1−ρ)·τ + ρ)
//	destination not visited: τ' = max((1−ρ)·τ, floor)
//
// with floor = construction.PheromoneFloor(m, n); visited destinations are
// clamped to the floor as well. The run stops early once the best weight is no
// greater than the target MST weight (Converged), otherwise after
// MaxIterations tours (Exhausted). Neither outcome is an error.
//
// Concurrency: an Engine is single-threaded. Pheromones are only written
// between tours; do not call Run concurrently on one Engine or on engines
// sharing a construction graph.
package aco
