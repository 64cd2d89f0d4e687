package reduce

import "github.com/katalvlaran/tunnelsat/internal/solver"

// phi6StackCoherence is φ6 (§4.2): whenever some node is live at (p,h),
// exactly one of y4[p,h], y6[p,h] holds.
func (b *builder) phi6StackCoherence() solver.Var {
	var clauses []solver.Var
	for p := 0; p <= b.k; p++ {
		for h := 0; h < b.height; h++ {
			coherent := b.ctx.Xor(b.namer.Four(p, h), b.namer.Six(p, h))
			clauses = append(clauses, b.ctx.Implies(b.liveAt(p, h), coherent))
		}
	}
	return b.ctx.And(clauses...)
}

// phi7TopAdmissibility is φ7 (§4.2): if u is live at (p,h) and u has no
// action accepting a protocol-4 top, the cell cannot hold 4; symmetrically
// for 6.
func (b *builder) phi7TopAdmissibility() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for h := 0; h < b.height; h++ {
			for u := 0; u < b.n; u++ {
				cond := b.namer.Path(u, p, h)
				if !b.acceptsAnyTop4(u) {
					clauses = append(clauses, b.ctx.Implies(cond, b.ctx.Not(b.namer.Four(p, h))))
				}
				if !b.acceptsAnyTop6(u) {
					clauses = append(clauses, b.ctx.Implies(cond, b.ctx.Not(b.namer.Six(p, h))))
				}
			}
		}
	}
	return b.ctx.And(clauses...)
}

func (b *builder) acceptsAnyTop4(u int) bool {
	for _, act := range allActions {
		if act.AcceptsTop4() && b.net.NodeHasAction(u, act) {
			return true
		}
	}
	return false
}

func (b *builder) acceptsAnyTop6(u int) bool {
	for _, act := range allActions {
		if act.AcceptsTop6() && b.net.NodeHasAction(u, act) {
			return true
		}
	}
	return false
}

// preserveBelow returns the conjunction, over every height k' in [0, upTo),
// of y4[p,k'] ↔ y4[p+1,k'] and y6[p,k'] ↔ y6[p+1,k'].
func (b *builder) preserveBelow(p, upTo int) solver.Var {
	var clauses []solver.Var
	for kp := 0; kp < upTo; kp++ {
		clauses = append(clauses,
			b.ctx.Iff(b.namer.Four(p, kp), b.namer.Four(p+1, kp)),
			b.ctx.Iff(b.namer.Six(p, kp), b.namer.Six(p+1, kp)),
		)
	}
	return b.ctx.And(clauses...)
}

// phi8PreserveOnTransmit is φ8 (§4.2): under a transmission at (p,h) (next
// live height is h), every cell strictly below h is preserved.
func (b *builder) phi8PreserveOnTransmit() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for h := 0; h < b.height; h++ {
			cond := b.ctx.And(b.liveAt(p, h), b.liveAt(p+1, h))
			clauses = append(clauses, b.ctx.Implies(cond, b.preserveBelow(p, h)))
		}
	}
	return b.ctx.And(clauses...)
}

// phi9PreserveOnPush is φ9 (§4.2): under an encapsulation at (p,h) (next
// live height is h+1), every cell up to and including h is preserved;
// naturally empty when height ≤ 1.
func (b *builder) phi9PreserveOnPush() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for h := 0; h < b.height-1; h++ {
			cond := b.ctx.And(b.liveAt(p, h), b.liveAt(p+1, h+1))
			clauses = append(clauses, b.ctx.Implies(cond, b.preserveBelow(p, h+1)))
		}
	}
	return b.ctx.And(clauses...)
}

// phi10PreserveOnPop is φ10 (§4.2): under a decapsulation at (p,h) (next
// live height is h-1), every cell strictly below h is preserved, which
// includes the top revealed at h-1; the discarded cell at h is excluded.
func (b *builder) phi10PreserveOnPop() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for h := 1; h < b.height; h++ {
			cond := b.ctx.And(b.liveAt(p, h), b.liveAt(p+1, h-1))
			clauses = append(clauses, b.ctx.Implies(cond, b.preserveBelow(p, h)))
		}
	}
	return b.ctx.And(clauses...)
}
