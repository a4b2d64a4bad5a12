// Package construction derives the search space walked by the ACO engine.
//
// Every edge of the original core.Graph becomes one construction node,
// labelled "1".."m" in the original edge order. A synthetic root "0" has no
// original edge and one outgoing construction edge to every edge-node. Every
// ordered pair of distinct edge-nodes (i, j) gets a directed construction edge
// i→j, giving m·(m−1)+m construction edges in total. The root has no incoming
// edges.
//
// Each construction edge carries:
//
//   - η (Eta): 1 / weight(original edge of the destination). Root edges use
//     the same formula; the root's own weight is never read.
//   - τ (pheromone): initialised to 1/(m·(m−1)+m) and rewritten only by the
//     ACO pheromone update, never during a tour.
//
// PheromoneFloor gives the lower bound 1/((m−n−1)·log2 n) that decayed
// pheromones are clamped to.
//
// Complexity: Build is O(m²) in time and memory.
package construction
