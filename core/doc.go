// Package core provides the immutable undirected weighted graph model used by
// antmst.
//
// A Graph G = (V,E) is built once from a Description, an ordered list of
// (label, neighbours, weights) entries:
//
//	desc := core.Description{
//		{Label: "A", Neighbors: []string{"B", "C"}, Weights: []float64{1, 3}},
//		{Label: "B", Neighbors: []string{"A", "C"}, Weights: []float64{1, 2}},
//		{Label: "C", Neighbors: []string{"A", "B"}, Weights: []float64{3, 2}},
//	}
//	g, err := core.New(desc)
//
// Undirected edges are shared, never mirrored: when B lists A after A already
// declared A–B, the existing *Edge is reused. The graph therefore has exactly
// one Edge per unordered pair, owned by a single edge store; nodes keep store
// indices of their incident edges.
//
// Malformed input fails fast in New with a wrapped sentinel error
// (ErrLengthMismatch, ErrDuplicateNode, ErrSelfLoop, ErrBadWeight, ...), so
// no partially built graph ever reaches the algorithms.
//
// Queries:
//
//	Nodes() / Labels()          // declaration order
//	Edges()                     // creation order
//	SortedEdges()               // stable ascending weight
//	Node(label), EdgeBetween(a, b), IncidentEdges(label)
//	NumNodes(), NumEdges(), Stats()
//
// Descriptions can be read from YAML or JSON files (DecodeDescription,
// LoadDescription, Load) and written back with EncodeDescription.
package core
