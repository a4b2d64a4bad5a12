// Package cycle answers one question for the MST builder and the ACO engine:
// would adding a proposed edge to an undirected edge set close a cycle?
//
// CausesCycle runs in two steps:
//
//  1. Shallow: collect the endpoint labels already referenced by the set. If
//     either endpoint of the proposed edge is missing, the edge hangs off the
//     structure and cannot close a cycle.
//  2. Deep: starting from every set edge touching endpoint A, walk the set
//     recursively towards endpoint B, never reusing an edge within the same
//     call. Reaching B means A and B are already connected.
//
// Every call is independent: the visited-edge registry lives only for the
// duration of one call, and no randomness is involved, so identical inputs
// always produce identical answers.
//
// Self-loops are not special-cased. Graphs built by core never contain them.
//
// Complexity:
//
//   - CausesCycle: Time O(S + S²) worst case (S = |set|), Memory O(S).
//   - FindPath:    same bounds; returns the edges of the connecting walk.
package cycle
