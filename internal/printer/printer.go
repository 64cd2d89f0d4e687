// Package printer implements the model pretty-printer P (§4.5): a
// diagnostics-only rendering of every position's live configuration and
// stack contents, independent of whether decode.Decode would succeed.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tunnelsat/internal/reduce"
	"github.com/katalvlaran/tunnelsat/internal/solver"
	"github.com/katalvlaran/tunnelsat/internal/tnetwork"
)

// cellMark is the per-cell rendering used by Print.
type cellMark byte

const (
	markBlank cellMark = '.'
	mark4     cellMark = '4'
	mark6     cellMark = '6'
	markBoth  cellMark = 'X'
)

// Print writes one line per position p ∈ [0,k]: the live (node, height)
// pairs found, followed by the stack rendered left-to-right up to H-1.
func Print(w io.Writer, model solver.Model, red *reduce.Reduction, net tnetwork.Network) error {
	for p := 0; p <= red.K; p++ {
		liveNodes := liveNodesAt(model, red, net, p)
		cells := stackCells(model, red, p)

		var sb strings.Builder
		fmt.Fprintf(&sb, "p=%d live=%s stack=[", p, formatLive(liveNodes, net))
		illDefined := writeCells(&sb, cells)
		sb.WriteString("]")
		if illDefined {
			sb.WriteString(" ill-defined stack")
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

type nodeHeight struct {
	node   int
	height int
}

func liveNodesAt(model solver.Model, red *reduce.Reduction, net tnetwork.Network, p int) []nodeHeight {
	var res []nodeHeight
	for u := 0; u < net.NumNodes(); u++ {
		for h := 0; h < red.H; h++ {
			if model.Value(red.Namer.Path(u, p, h)) {
				res = append(res, nodeHeight{node: u, height: h})
			}
		}
	}
	return res
}

func formatLive(live []nodeHeight, net tnetwork.Network) string {
	if len(live) == 0 {
		return "-none-"
	}
	parts := make([]string, len(live))
	for i, l := range live {
		parts[i] = fmt.Sprintf("%s@h%d", net.NodeName(l.node), l.height)
	}
	return strings.Join(parts, ",")
}

func stackCells(model solver.Model, red *reduce.Reduction, p int) []cellMark {
	cells := make([]cellMark, red.H)
	for h := 0; h < red.H; h++ {
		four := model.Value(red.Namer.Four(p, h))
		six := model.Value(red.Namer.Six(p, h))
		switch {
		case four && six:
			cells[h] = markBoth
		case four:
			cells[h] = mark4
		case six:
			cells[h] = mark6
		default:
			cells[h] = markBlank
		}
	}
	return cells
}

// writeCells renders cells left to right and reports whether the stack is
// ill-defined: a double-assigned cell, or a live marking above the first
// blank cell.
func writeCells(sb *strings.Builder, cells []cellMark) bool {
	illDefined := false
	seenBlank := false
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(c))
		if c == markBoth {
			illDefined = true
		}
		if c == markBlank {
			seenBlank = true
		} else if seenBlank {
			illDefined = true
		}
	}
	return illDefined
}
