package reduce

import "github.com/katalvlaran/tunnelsat/internal/solver"

// phi11Edges is φ11 (§4.2): if u is live at (p,h), the configuration at
// p+1 must be one of u's graph successors, at a height within one of h. A
// node with no successors at all forces ¬x[u,p,h].
func (b *builder) phi11Edges() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for u := 0; u < b.n; u++ {
			successors := b.successors(u)
			for h := 0; h < b.height; h++ {
				cond := b.namer.Path(u, p, h)
				if len(successors) == 0 {
					clauses = append(clauses, b.ctx.Not(cond))
					continue
				}
				var options []solver.Var
				for _, v := range successors {
					for _, hp := range b.validHeights(h) {
						options = append(options, b.namer.Path(v, p+1, hp))
					}
				}
				clauses = append(clauses, b.ctx.Implies(cond, b.ctx.Or(options...)))
			}
		}
	}
	return b.ctx.And(clauses...)
}

// successors lists every v with (u,v) ∈ E, in ascending order. It uses the
// Network's Successors hint when available (the concrete tnetwork.Graph
// does), falling back to probing IsEdge against every node.
func (b *builder) successors(u int) []int {
	type withSuccessors interface {
		Successors(u int) []int
	}
	if s, ok := b.net.(withSuccessors); ok {
		return s.Successors(u)
	}
	var res []int
	for v := 0; v < b.n; v++ {
		if b.net.IsEdge(u, v) {
			res = append(res, v)
		}
	}
	return res
}
