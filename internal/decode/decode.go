// Package decode implements the model decoder D (§4.4): given a satisfying
// assignment of a reduce.Reduction, it reconstructs the labeled sequence of
// (action, src, tgt) steps the model encodes.
package decode

import (
	"fmt"

	"github.com/katalvlaran/tunnelsat/internal/action"
	"github.com/katalvlaran/tunnelsat/internal/reduce"
	"github.com/katalvlaran/tunnelsat/internal/solver"
	"github.com/katalvlaran/tunnelsat/internal/tnetwork"
	"github.com/katalvlaran/tunnelsat/internal/tsaterr"
)

// Step is one transition of a decoded path: action applied while moving
// from src to tgt.
type Step struct {
	Action action.Action
	Src    int
	Tgt    int
}

// live is one decoded configuration: the node occupying a position and the
// stack height it carries.
type live struct {
	node   int
	height int
}

// Decode reconstructs the length-k path encoded by model, per the table in
// §4.4. It returns tsaterr.ModelCorrupt if any position does not have
// exactly one live (node, height) pair.
func Decode(model solver.Model, red *reduce.Reduction, net tnetwork.Network) ([]Step, error) {
	n := net.NumNodes()
	lives := make([]live, red.K+1)
	for p := 0; p <= red.K; p++ {
		l, err := findLive(model, red, n, p)
		if err != nil {
			return nil, err
		}
		lives[p] = l
	}

	steps := make([]Step, red.K)
	for p := 0; p < red.K; p++ {
		cur, next := lives[p], lives[p+1]
		top, err := topProtocol(model, red, p, cur.height)
		if err != nil {
			return nil, err
		}

		var act action.Action
		switch next.height - cur.height {
		case 0:
			act = action.Transmit(top)
		case 1:
			newTop, err := topProtocol(model, red, p+1, next.height)
			if err != nil {
				return nil, err
			}
			act = action.Push(top, newTop)
		case -1:
			revealed, err := topProtocol(model, red, p, cur.height-1)
			if err != nil {
				return nil, err
			}
			act = action.Pop(revealed, top)
		default:
			return nil, tsaterr.New(tsaterr.ModelCorrupt,
				fmt.Sprintf("position %d: height jumped by %d", p, next.height-cur.height))
		}

		steps[p] = Step{Action: act, Src: cur.node, Tgt: next.node}
	}
	return steps, nil
}

// findLive scans every (u,h) pair at position p for the unique one the
// model marks live.
func findLive(model solver.Model, red *reduce.Reduction, n, p int) (live, error) {
	found := false
	var result live
	for u := 0; u < n; u++ {
		for h := 0; h < red.H; h++ {
			if !model.Value(red.Namer.Path(u, p, h)) {
				continue
			}
			if found {
				return live{}, tsaterr.New(tsaterr.ModelCorrupt,
					fmt.Sprintf("position %d: more than one live configuration", p))
			}
			found = true
			result = live{node: u, height: h}
		}
	}
	if !found {
		return live{}, tsaterr.New(tsaterr.ModelCorrupt,
			fmt.Sprintf("position %d: no live configuration", p))
	}
	return result, nil
}

// topProtocol reads the unique protocol the model assigns to (p,h).
func topProtocol(model solver.Model, red *reduce.Reduction, p, h int) (action.Protocol, error) {
	four := model.Value(red.Namer.Four(p, h))
	six := model.Value(red.Namer.Six(p, h))
	switch {
	case four && !six:
		return action.Protocol4, nil
	case six && !four:
		return action.Protocol6, nil
	default:
		return 0, tsaterr.New(tsaterr.ModelCorrupt,
			fmt.Sprintf("position %d, height %d: stack cell is not exactly one protocol", p, h))
	}
}
