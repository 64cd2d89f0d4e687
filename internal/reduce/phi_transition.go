package reduce

import (
	"github.com/katalvlaran/tunnelsat/internal/action"
	"github.com/katalvlaran/tunnelsat/internal/solver"
)

// phi3Transmission is φ3 (§4.2): if u is live at (p,h) and some node is live
// at (p+1,h) — a same-height successor, i.e. a transmission — then the top
// protocol at (p,h) constrains u's capability: a protocol-4 top demands
// transmit_4 ∈ Cap(u), a protocol-6 top demands transmit_6 ∈ Cap(u).
func (b *builder) phi3Transmission() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for h := 0; h < b.height; h++ {
			same := b.liveAt(p+1, h)
			for u := 0; u < b.n; u++ {
				cond := b.ctx.And(b.namer.Path(u, p, h), same)
				clauses = append(clauses,
					b.capImplies(u, action.Transmit4, b.ctx.And(cond, b.namer.Four(p, h))),
					b.capImplies(u, action.Transmit6, b.ctx.And(cond, b.namer.Six(p, h))),
				)
			}
		}
	}
	return b.ctx.And(clauses...)
}

// phi4Encapsulation is φ4 (§4.2): if u is live at (p,h) and some node is
// live at (p+1,h+1) — a push — then for every (below, new-top) protocol
// pair, the matching push_<below>_<top> action must be in Cap(u).
func (b *builder) phi4Encapsulation() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for h := 0; h < b.height-1; h++ {
			pushed := b.liveAt(p+1, h+1)
			belowVars := [2]solver.Var{b.namer.Four(p, h), b.namer.Six(p, h)}
			topVars := [2]solver.Var{b.namer.Four(p+1, h+1), b.namer.Six(p+1, h+1)}
			for u := 0; u < b.n; u++ {
				cond := b.ctx.And(b.namer.Path(u, p, h), pushed)
				for bi, below := range [2]action.Protocol{action.Protocol4, action.Protocol6} {
					for ti, top := range [2]action.Protocol{action.Protocol4, action.Protocol6} {
						act := action.Push(below, top)
						clauses = append(clauses, b.capImplies(u, act,
							b.ctx.And(cond, belowVars[bi], topVars[ti])))
					}
				}
			}
		}
	}
	return b.ctx.And(clauses...)
}

// phi5Decapsulation is φ5 (§4.2): if u is live at (p,h) and some node is
// live at (p+1,h-1) — a pop — then for every (old-top, revealed-top)
// protocol pair, the matching pop_<below>_<top> action must be in Cap(u),
// using the below/top convention: below is the revealed protocol, top is
// the discarded one (§9).
func (b *builder) phi5Decapsulation() solver.Var {
	var clauses []solver.Var
	for p := 0; p < b.k; p++ {
		for h := 1; h < b.height; h++ {
			popped := b.liveAt(p+1, h-1)
			oldTopVars := [2]solver.Var{b.namer.Four(p, h), b.namer.Six(p, h)}
			revealedVars := [2]solver.Var{b.namer.Four(p, h-1), b.namer.Six(p, h-1)}
			for u := 0; u < b.n; u++ {
				cond := b.ctx.And(b.namer.Path(u, p, h), popped)
				for oi, oldTop := range [2]action.Protocol{action.Protocol4, action.Protocol6} {
					for ri, revealed := range [2]action.Protocol{action.Protocol4, action.Protocol6} {
						act := action.Pop(revealed, oldTop)
						clauses = append(clauses, b.capImplies(u, act,
							b.ctx.And(cond, oldTopVars[oi], revealedVars[ri])))
					}
				}
			}
		}
	}
	return b.ctx.And(clauses...)
}
