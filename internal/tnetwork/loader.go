package tnetwork

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/tunnelsat/internal/action"
	"github.com/katalvlaran/tunnelsat/internal/tsaterr"
)

// fileNode is the on-disk representation of a single node.
type fileNode struct {
	Name         string   `json:"name"`
	Capabilities []string `json:"capabilities"`
}

// fileEdge is the on-disk representation of a directed edge.
type fileEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// fileNetwork is the on-disk representation of a whole Tunnel Network, as
// consumed by LoadFile.
type fileNetwork struct {
	Nodes  []fileNode `json:"nodes"`
	Edges  []fileEdge `json:"edges"`
	Source int        `json:"source"`
	Sink   int        `json:"sink"`
}

var nameToAction = func() map[string]action.Action {
	m := make(map[string]action.Action, len(action.All))
	for _, a := range action.All {
		m[a.String()] = a
	}
	return m
}()

// LoadFile reads a Tunnel Network description from a JSON file.
//
// Expected shape:
//
//	{
//	  "nodes":  [{"name": "A", "capabilities": ["transmit_4", "push_4_6"]}, ...],
//	  "edges":  [{"from": 0, "to": 1}, ...],
//	  "source": 0,
//	  "sink":   2
//	}
func LoadFile(path string) (*Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, tsaterr.Wrap(tsaterr.InvalidInput, "reading network file", err)
	}
	return Parse(raw)
}

// Parse decodes a Tunnel Network description from JSON bytes.
func Parse(raw []byte) (*Graph, error) {
	var fn fileNetwork
	if err := json.Unmarshal(raw, &fn); err != nil {
		return nil, tsaterr.Wrap(tsaterr.InvalidInput, "parsing network JSON", err)
	}

	nodes := make([]Node, len(fn.Nodes))
	for i, fnNode := range fn.Nodes {
		var caps action.Set
		for _, name := range fnNode.Capabilities {
			act, ok := nameToAction[name]
			if !ok {
				return nil, tsaterr.New(tsaterr.InvalidInput, fmt.Sprintf("node %d: unknown capability %q", i, name))
			}
			caps = caps.Add(act)
		}
		name := fnNode.Name
		if name == "" {
			name = fmt.Sprintf("n%d", i)
		}
		nodes[i] = Node{Name: name, Cap: caps}
	}

	edges := make([][2]int, len(fn.Edges))
	for i, e := range fn.Edges {
		if e.From < 0 || e.From >= len(nodes) || e.To < 0 || e.To >= len(nodes) {
			return nil, tsaterr.New(tsaterr.InvalidInput, fmt.Sprintf("edge %d: endpoint out of range", i))
		}
		edges[i] = [2]int{e.From, e.To}
	}

	if fn.Source < 0 || fn.Source >= len(nodes) {
		return nil, tsaterr.New(tsaterr.InvalidInput, "source out of range")
	}
	if fn.Sink < 0 || fn.Sink >= len(nodes) {
		return nil, tsaterr.New(tsaterr.InvalidInput, "sink out of range")
	}

	return New(nodes, fn.Source, fn.Sink, edges), nil
}
