// Package tnetwork defines the Tunnel Network collaborator the reduction
// core consumes, per §3 and §6 of the design. The core only ever sees the
// Network interface; this package additionally provides a concrete,
// JSON-file-backed implementation used by the CLI driver.
package tnetwork

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/tunnelsat/internal/action"
)

//go:generate mockgen -source network.go -destination network_mock.go -package tnetwork

// Network is the read-only collaborator queried by the reduction, per §6.
// It is never mutated by the core, and every query must be a pure function
// of the network's construction-time state.
type Network interface {
	// NumNodes returns |N|, the number of nodes in N = {0, ..., n-1}.
	NumNodes() int

	// Initial returns the designated source node.
	Initial() int

	// Final returns the designated sink node.
	Final() int

	// NodeName returns the display name of node u, for diagnostics only.
	NodeName(u int) string

	// IsEdge reports whether (u, v) is a member of the edge relation E.
	IsEdge(u, v int) bool

	// NodeHasAction reports whether act is a member of Cap(u).
	NodeHasAction(u int, act action.Action) bool
}

// Node is one member of N, with a name and a per-node capability set.
type Node struct {
	Name string
	Cap  action.Set
}

// Graph is the concrete, in-memory Network implementation. It stores edges
// as an adjacency set (a map keyed by target) per node so IsEdge is O(1).
type Graph struct {
	nodes   []Node
	source  int
	sink    int
	outEdge []map[int]struct{}
}

// New builds a Graph from an explicit node list, source/sink pair, and edge
// list. Self-loops are permitted; the loader does not reject them (§3).
func New(nodes []Node, source, sink int, edges [][2]int) *Graph {
	out := make([]map[int]struct{}, len(nodes))
	for i := range out {
		out[i] = map[int]struct{}{}
	}
	for _, e := range edges {
		out[e[0]][e[1]] = struct{}{}
	}
	return &Graph{nodes: nodes, source: source, sink: sink, outEdge: out}
}

func (g *Graph) NumNodes() int { return len(g.nodes) }
func (g *Graph) Initial() int  { return g.source }
func (g *Graph) Final() int    { return g.sink }

func (g *Graph) NodeName(u int) string {
	if u < 0 || u >= len(g.nodes) {
		return ""
	}
	return g.nodes[u].Name
}

func (g *Graph) IsEdge(u, v int) bool {
	if u < 0 || u >= len(g.outEdge) {
		return false
	}
	_, ok := g.outEdge[u][v]
	return ok
}

func (g *Graph) NodeHasAction(u int, act action.Action) bool {
	if u < 0 || u >= len(g.nodes) {
		return false
	}
	return g.nodes[u].Cap.Has(act)
}

// Successors returns every v such that (u, v) is an edge, in ascending
// order. The reduction assembler uses this to build φ11 deterministically
// instead of probing IsEdge for all n candidates.
func (g *Graph) Successors(u int) []int {
	if u < 0 || u >= len(g.outEdge) || len(g.outEdge[u]) == 0 {
		return nil
	}
	res := maps.Keys(g.outEdge[u])
	sort.Ints(res)
	return res
}
