package solver

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// dedupeCacheSize bounds the structural-hashing cache below: clause
// builders frequently reconstruct the same guard condition (e.g. the same
// "cond" in phi3/phi4/phi5) across many nearby (p,h) combinations, and an
// unbounded cache would grow with the formula itself. A few thousand
// recent shapes is enough to catch the locality those builders exhibit
// without holding onto the whole construction history.
const dedupeCacheSize = 4096

// kind classifies an expression node owned by a Ctx.
type kind int

const (
	kindLeaf kind = iota
	kindConst
	kindAnd
	kindOr
	kindNot
)

// node is one entry in a Ctx's expression DAG. Var i always denotes
// ctx.nodes[i]; children always reference earlier indices, so there is
// never a cycle — Contexts never rewrite an existing node in place.
type node struct {
	kind     kind
	name     string // advisory, kindLeaf only
	value    bool   // kindConst only
	children []Var
}

// Ctx is the in-process Context implementation backing Reference. It keeps
// every constructed expression alive as a node in a flat slice so a Solver
// can walk the DAG once per Solve call.
type Ctx struct {
	nodes []node
	dedup *lru.Cache[string, Var]
}

// NewCtx creates an empty expression context, one per solve per §5: a Ctx
// must never be shared between concurrent solves.
func NewCtx() *Ctx {
	cache, err := lru.New[string, Var](dedupeCacheSize)
	if err != nil {
		// only returns an error for a non-positive size, which is a
		// compile-time constant here.
		panic(err)
	}
	return &Ctx{dedup: cache}
}

func (c *Ctx) push(n node) Var {
	c.nodes = append(c.nodes, n)
	return Var(len(c.nodes) - 1)
}

// pushDeduped is like push, but recognizes a node it has recently built
// with the same kind and children and returns the existing Var instead of
// growing the DAG.
func (c *Ctx) pushDeduped(n node) Var {
	key := shapeKey(n)
	if v, ok := c.dedup.Get(key); ok {
		return v
	}
	v := c.push(n)
	c.dedup.Add(key, v)
	return v
}

func shapeKey(n node) string {
	var sb strings.Builder
	sb.WriteByte(byte('0' + n.kind))
	if n.kind == kindConst {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatBool(n.value))
	}
	for _, ch := range n.children {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(int(ch)))
	}
	return sb.String()
}

func (c *Ctx) FreshBoolVar(name string) Var {
	return c.push(node{kind: kindLeaf, name: name})
}

func (c *Ctx) True() Var {
	return c.pushDeduped(node{kind: kindConst, value: true})
}

func (c *Ctx) False() Var {
	return c.pushDeduped(node{kind: kindConst, value: false})
}

func (c *Ctx) And(vars ...Var) Var {
	if len(vars) == 0 {
		return c.True()
	}
	if len(vars) == 1 {
		return vars[0]
	}
	return c.pushDeduped(node{kind: kindAnd, children: append([]Var(nil), vars...)})
}

func (c *Ctx) Or(vars ...Var) Var {
	if len(vars) == 0 {
		return c.False()
	}
	if len(vars) == 1 {
		return vars[0]
	}
	return c.pushDeduped(node{kind: kindOr, children: append([]Var(nil), vars...)})
}

func (c *Ctx) Not(v Var) Var {
	return c.pushDeduped(node{kind: kindNot, children: []Var{v}})
}

func (c *Ctx) Implies(a, b Var) Var {
	return c.Or(c.Not(a), b)
}

func (c *Ctx) Iff(a, b Var) Var {
	return c.And(c.Implies(a, b), c.Implies(b, a))
}

func (c *Ctx) Xor(a, b Var) Var {
	return c.Not(c.Iff(a, b))
}

func (c *Ctx) node(v Var) node {
	return c.nodes[v]
}

func (c *Ctx) String() string {
	return fmt.Sprintf("Ctx{%d nodes}", len(c.nodes))
}
