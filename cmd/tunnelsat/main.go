// Command tunnelsat is the thin CLI driver of §6: it takes a network file
// and a path length k, reduces the reachability question to a formula,
// solves it, and either prints the decoded path or reports UNSAT.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "tunnelsat",
		Usage:     "Decide and exhibit bounded-length paths through a Tunnel Network",
		Copyright: "(c) 2024 the tunnelsat authors",
		Commands: []*cli.Command{
			&SolveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		code := 2
		if coder, ok := err.(cli.ExitCoder); ok {
			code = coder.ExitCode()
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}
}
