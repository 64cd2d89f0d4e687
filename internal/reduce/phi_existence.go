package reduce

import "github.com/katalvlaran/tunnelsat/internal/solver"

// phi1ExistenceUniqueness is φ1 (§4.2): at every position p ∈ [0,k], exactly
// one (u,h) pair is live. At-least-one is a single disjunction; at-most-one
// is the pairwise encoding the spec mandates for clarity.
func (b *builder) phi1ExistenceUniqueness() solver.Var {
	perPosition := make([]solver.Var, b.k+1)
	for p := 0; p <= b.k; p++ {
		pairs := b.configPairs(p)

		atLeastOne := make([]solver.Var, len(pairs))
		copy(atLeastOne, pairs)

		var atMostOne []solver.Var
		for i := 0; i < len(pairs); i++ {
			for j := i + 1; j < len(pairs); j++ {
				atMostOne = append(atMostOne, b.ctx.Or(b.ctx.Not(pairs[i]), b.ctx.Not(pairs[j])))
			}
		}

		perPosition[p] = b.ctx.And(append([]solver.Var{b.ctx.Or(atLeastOne...)}, atMostOne...)...)
	}
	return b.ctx.And(perPosition...)
}

// configPairs returns x[u,p,h] for every (u,h) pair at position p, in
// deterministic (u, then h) order.
func (b *builder) configPairs(p int) []solver.Var {
	pairs := make([]solver.Var, 0, b.n*b.height)
	for u := 0; u < b.n; u++ {
		for h := 0; h < b.height; h++ {
			pairs = append(pairs, b.namer.Path(u, p, h))
		}
	}
	return pairs
}

// phi2Boundary is φ2 (§4.2): the live node at p=0 is source with h=0 and a
// protocol-4 cell, and at p=k is sink with h=0 and a protocol-4 cell.
func (b *builder) phi2Boundary() solver.Var {
	return b.ctx.And(
		b.namer.Path(b.net.Initial(), 0, 0),
		b.namer.Four(0, 0),
		b.namer.Path(b.net.Final(), b.k, 0),
		b.namer.Four(b.k, 0),
	)
}
