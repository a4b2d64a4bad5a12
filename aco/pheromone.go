package aco

import "math"

// updatePheromones applies deposit to every edge whose destination was
// visited by t and evaporation to every other edge. All results stay within
// [floor, 1].
func (e *Engine) updatePheromones(t *Tour) {
	visited := make(map[string]struct{}, len(t.Nodes))
	for _, n := range t.Nodes {
		visited[n.Label] = struct{}{}
	}

	rho, floor := e.opts.Rho, e.cg.Floor()
	for _, n := range e.cg.EdgeNodes() {
		_, hit := visited[n.Label]
		for _, ce := range e.cg.Incoming(n.Label) {
			tau := (1 - rho) * ce.Pheromone()
			if hit {
				tau = math.Min(1, tau+rho)
			}
			ce.SetPheromone(math.Max(tau, floor))
		}
	}
}
