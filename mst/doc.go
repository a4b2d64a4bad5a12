// Package mst computes minimum spanning trees of a core.Graph.
//
// Compute is a Kruskal-style greedy builder with randomized tie-breaking:
//
//  1. The pool of usable edges starts as every edge of the graph, sorted by
//     ascending weight.
//  2. Each iteration takes the group of pool edges sharing the minimum weight.
//     A lone edge is tested directly; a larger group is shuffled with the
//     seeded RNG and tried in that order, each edge exactly once, until one
//     does not close a cycle with the tree built so far (cycle.CausesCycle).
//  3. The accepted edge joins the tree and leaves the pool. Every rejected
//     edge leaves the pool permanently.
//  4. The loop stops once the pool is empty, the tree spans the graph, or the
//     iteration bound is reached.
//
// A disconnected input is not an error: the resulting Tree simply reports
// IsConnected() == false and must not be trusted as a spanning tree.
//
// Reference is a deterministic union-find Kruskal used to verify the weight
// produced by Compute.
//
// Determinism: same graph and same seed ⇒ same tree.
//
// Complexity:
//
//   - Compute:   Time O(E log E + E·S²) (S = tree size, cycle search per test), Memory O(E).
//   - Reference: Time O(E log E + α(V)·E), Memory O(V + E).
package mst
