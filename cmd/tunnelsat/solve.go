package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/tunnelsat/internal/decode"
	"github.com/katalvlaran/tunnelsat/internal/printer"
	"github.com/katalvlaran/tunnelsat/internal/reduce"
	"github.com/katalvlaran/tunnelsat/internal/solver"
	"github.com/katalvlaran/tunnelsat/internal/tnetwork"
)

var SolveCmd = cli.Command{
	Action:    doSolve,
	Name:      "solve",
	Usage:     "Decide whether a Tunnel Network admits a length-k path from source to sink",
	ArgsUsage: "<network.json> <k>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "print-model",
			Usage: "render every step's live configuration and stack, not just the decoded path",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print formula size and solve duration to stderr",
		},
	},
}

func doSolve(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: tunnelsat solve <network.json> <k>")
	}
	path := c.Args().Get(0)
	k, err := parseK(c.Args().Get(1))
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading network file: %w", err)
	}
	net, err := tnetwork.Parse(raw)
	if err != nil {
		return err
	}

	start := time.Now()
	red, err := reduce.Build(net, k)
	if err != nil {
		return err
	}
	buildDuration := time.Since(start)

	solveStart := time.Now()
	model, sat, err := (solver.Reference{}).Solve(red.Ctx, red.Root)
	if err != nil {
		return err
	}
	solveDuration := time.Since(solveStart)

	if c.Bool("stats") {
		printStats(c.App.ErrWriter, raw, red, buildDuration, solveDuration)
	}

	if !sat {
		fmt.Fprintln(c.App.Writer, "UNSAT")
		return cli.Exit("", 1)
	}

	steps, err := decode.Decode(model, red, net)
	if err != nil {
		return err
	}
	for _, s := range steps {
		fmt.Fprintf(c.App.Writer, "%s %s -> %s\n", s.Action, net.NodeName(s.Src), net.NodeName(s.Tgt))
	}

	if c.Bool("print-model") {
		if err := printer.Print(c.App.Writer, model, red, net); err != nil {
			return err
		}
	}
	return nil
}

func parseK(s string) (int, error) {
	var k int
	if _, err := fmt.Sscanf(s, "%d", &k); err != nil {
		return 0, fmt.Errorf("k must be an integer: %w", err)
	}
	return k, nil
}

func printStats(w io.Writer, raw []byte, red *reduce.Reduction, build, solve time.Duration) {
	digest := sha3.Sum256(raw)
	fmt.Fprintf(w, "network digest: %x\n", digest[:8])
	fmt.Fprintf(w, "variables: %s, height bound: %d, build: %s, solve: %s\n",
		unitconv.FormatPrefix(float64(red.Namer.Len()), unitconv.SI, 0), red.H, build, solve)
}
