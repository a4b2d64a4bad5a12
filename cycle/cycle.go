package cycle

import (
	"github.com/katalvlaran/antmst/core"
)

// CausesCycle reports whether adding proposed to set would close a cycle.
// An empty set or a nil proposal never causes one.
func CausesCycle(set []*core.Edge, proposed *core.Edge) bool {
	if proposed == nil || len(set) == 0 {
		return false
	}

	// 1) Shallow check: both endpoints must already be part of the structure.
	touched := endpoints(set)
	if _, ok := touched[proposed.From]; !ok {
		return false
	}
	if _, ok := touched[proposed.To]; !ok {
		return false
	}

	// 2) Deep check: is there already a walk From -> To?
	_, found := FindPath(set, proposed.From, proposed.To)

	return found
}

// FindPath returns the edges of a walk in set leading from one label to the
// other, and whether such a walk exists. The walk is the first one found by
// a depth-first search that visits set edges in slice order. from == to
// yields an empty walk and true.
func FindPath(set []*core.Edge, from, to string) ([]*core.Edge, bool) {
	if from == to {
		return nil, true
	}

	s := &search{
		set:     set,
		target:  to,
		visited: make(map[string]struct{}, len(set)),
	}
	for _, e := range set {
		if e == nil || !e.Contains(from) {
			continue
		}
		key := e.Key()
		if _, seen := s.visited[key]; seen {
			continue
		}
		s.visited[key] = struct{}{}
		if s.walk(e, from) {
			return s.path, true
		}
	}

	return nil, false
}

// search carries the state of a single FindPath call.
type search struct {
	set     []*core.Edge
	target  string
	visited map[string]struct{} // keyed by core.Edge.Key
	path    []*core.Edge        // current walk, root first
}

// walk follows e away from the endpoint `from` and recurses into every unused
// set edge touching the far endpoint. It returns true once the target label is
// reached, leaving the successful walk in s.path.
func (s *search) walk(e *core.Edge, from string) bool {
	s.path = append(s.path, e)
	next := e.Other(from)
	if next == s.target {
		return true
	}

	for _, cand := range s.set {
		if cand == nil || !cand.Contains(next) {
			continue
		}
		key := cand.Key()
		if _, seen := s.visited[key]; seen {
			continue
		}
		s.visited[key] = struct{}{}
		if s.walk(cand, next) {
			return true
		}
	}

	// dead end: backtrack
	s.path = s.path[:len(s.path)-1]

	return false
}

// endpoints returns the set of labels referenced by the edges in set.
func endpoints(set []*core.Edge) map[string]struct{} {
	out := make(map[string]struct{}, 2*len(set))
	for _, e := range set {
		if e == nil {
			continue
		}
		out[e.From] = struct{}{}
		out[e.To] = struct{}{}
	}

	return out
}
