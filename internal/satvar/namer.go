// Package satvar implements the variable namer V (§4.1): it hands out
// stable solver.Var handles keyed by (kind, pos, height, node?), creating
// each handle exactly once and returning the same handle on repeat lookups.
package satvar

import (
	"fmt"

	"github.com/katalvlaran/tunnelsat/internal/solver"
)

// key identifies one Boolean variable. node is only meaningful for the
// path family; four/six ignore it.
type key struct {
	family family
	node   int
	pos    int
	height int
}

type family int

const (
	familyPath family = iota
	familyFour
	familySix
)

// Namer is a Context-scoped factory: a fresh Namer must be created per
// solve, mirroring the one-namer-per-solver-context rule of §5.
type Namer struct {
	ctx   solver.Context
	cache map[key]solver.Var
}

// New creates a Namer bound to ctx. ctx must outlive the Namer.
func New(ctx solver.Context) *Namer {
	return &Namer{ctx: ctx, cache: make(map[key]solver.Var)}
}

// Path returns x[u,p,h]: "node u is the current configuration at position p
// with current stack height h".
func (n *Namer) Path(u, p, h int) solver.Var {
	return n.get(key{family: familyPath, node: u, pos: p, height: h}, func() string {
		return fmt.Sprintf("node %d,pos %d, height %d", u, p, h)
	})
}

// Four returns y4[p,h]: "cell at height h at position p holds protocol 4".
func (n *Namer) Four(p, h int) solver.Var {
	return n.get(key{family: familyFour, pos: p, height: h}, func() string {
		return fmt.Sprintf("4 at height %d on pos %d", h, p)
	})
}

// Six returns y6[p,h]: "cell at height h at position p holds protocol 6".
func (n *Namer) Six(p, h int) solver.Var {
	return n.get(key{family: familySix, pos: p, height: h}, func() string {
		return fmt.Sprintf("6 at height %d on pos %d", h, p)
	})
}

func (n *Namer) get(k key, name func() string) solver.Var {
	if v, ok := n.cache[k]; ok {
		return v
	}
	v := n.ctx.FreshBoolVar(name())
	n.cache[k] = v
	return v
}

// Len reports how many distinct variables this Namer has produced so far,
// for diagnostics.
func (n *Namer) Len() int {
	return len(n.cache)
}
