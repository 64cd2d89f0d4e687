// Package reduce is the reduction assembler R (§4.3) and the eleven clause
// builders φ1…φ11 (§4.2) it composes. Together they encode, for a fixed
// Tunnel Network and path length k, the proposition "a well-formed simple
// path of exactly k transitions exists from source to sink" as a single
// solver.Var whose satisfying models are in bijection with such paths.
//
// Builders never mutate the Network; they only read it through the
// tnetwork.Network interface and write fresh expressions into the given
// solver.Context via the satvar.Namer.
package reduce

import (
	"github.com/katalvlaran/tunnelsat/internal/action"
	"github.com/katalvlaran/tunnelsat/internal/satvar"
	"github.com/katalvlaran/tunnelsat/internal/solver"
	"github.com/katalvlaran/tunnelsat/internal/stacksize"
	"github.com/katalvlaran/tunnelsat/internal/tnetwork"
	"github.com/katalvlaran/tunnelsat/internal/tsaterr"
)

// allActions is a local alias for action.All, used by builders that scan
// every action a node might have.
var allActions = action.All

// builder carries the shared, read-only context every φ builder needs:
// the network, the path length, the derived height bound, and the namer
// used to mint variables. It holds no mutable state of its own beyond what
// the namer and context already own.
type builder struct {
	net    tnetwork.Network
	namer  *satvar.Namer
	ctx    solver.Context
	k      int
	n      int
	height int
}

// Reduction bundles everything produced by Build: the solver.Context every
// variable lives in, the root Var a Solver should decide, and the Namer
// that minted those variables — the decoder needs the very same Namer to
// translate a model back into a path, since variable identity is only
// stable within one naming scope (§5).
type Reduction struct {
	Ctx   solver.Context
	Root  solver.Var
	Namer *satvar.Namer
	K     int
	H     int
}

// Build validates (network, k) and returns the top-level conjunction of
// φ1…φ11, ready to be handed to a solver.Solver, per §4.3.
//
// k < 0, or a source/sink outside [0, NumNodes), is an InvalidInput error.
func Build(net tnetwork.Network, k int) (*Reduction, error) {
	if k < 0 {
		return nil, tsaterr.New(tsaterr.InvalidInput, "k must be non-negative")
	}
	n := net.NumNodes()
	if net.Initial() < 0 || net.Initial() >= n {
		return nil, tsaterr.New(tsaterr.InvalidInput, "source out of range")
	}
	if net.Final() < 0 || net.Final() >= n {
		return nil, tsaterr.New(tsaterr.InvalidInput, "sink out of range")
	}

	ctx := solver.NewCtx()
	b := &builder{
		net:    net,
		namer:  satvar.New(ctx),
		ctx:    ctx,
		k:      k,
		n:      n,
		height: stacksize.H(k),
	}

	root := b.ctx.And(
		b.phi1ExistenceUniqueness(),
		b.phi2Boundary(),
		b.phi3Transmission(),
		b.phi4Encapsulation(),
		b.phi5Decapsulation(),
		b.phi6StackCoherence(),
		b.phi7TopAdmissibility(),
		b.phi8PreserveOnTransmit(),
		b.phi9PreserveOnPush(),
		b.phi10PreserveOnPop(),
		b.phi11Edges(),
	)
	return &Reduction{Ctx: ctx, Root: root, Namer: b.namer, K: k, H: b.height}, nil
}

// liveAt returns Or_u x[u,p,h] — "some node is the live configuration at
// position p, height h".
func (b *builder) liveAt(p, h int) solver.Var {
	vars := make([]solver.Var, b.n)
	for u := 0; u < b.n; u++ {
		vars[u] = b.namer.Path(u, p, h)
	}
	return b.ctx.Or(vars...)
}

// capImplies encodes "cond → act ∈ Cap(u)" where membership is a constant
// known at build time: it collapses to True when the node already has the
// capability, and to ¬cond otherwise.
func (b *builder) capImplies(u int, act action.Action, cond solver.Var) solver.Var {
	if b.net.NodeHasAction(u, act) {
		return b.ctx.True()
	}
	return b.ctx.Not(cond)
}

// validHeights returns the subset of {h-1, h, h+1} that lies in [0, height).
func (b *builder) validHeights(h int) []int {
	res := make([]int, 0, 3)
	for _, cand := range [3]int{h - 1, h, h + 1} {
		if cand >= 0 && cand < b.height {
			res = append(res, cand)
		}
	}
	return res
}
