package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

const s1Network = `{
	"nodes": [
		{"name": "A", "capabilities": ["transmit_4"]},
		{"name": "B", "capabilities": []}
	],
	"edges": [{"from": 0, "to": 1}],
	"source": 0,
	"sink": 1
}`

func newTestApp(stdout, stderr *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:           "tunnelsat",
		Commands:       []*cli.Command{&SolveCmd},
		Writer:         stdout,
		ErrWriter:      stderr,
		ExitErrHandler: func(*cli.Context, error) {}, // suppress os.Exit in tests
	}
}

func writeNetworkFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp network file: %v", err)
	}
	return path
}

func TestSolve_SatPrintsPath(t *testing.T) {
	path := writeNetworkFile(t, s1Network)

	var stdout, stderr bytes.Buffer
	app := newTestApp(&stdout, &stderr)
	err := app.Run([]string{"tunnelsat", "solve", path, "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := stdout.String(), "transmit_4 A -> B\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestSolve_UnsatReportsExitCodeOne(t *testing.T) {
	path := writeNetworkFile(t, s1Network)

	var stdout, stderr bytes.Buffer
	app := newTestApp(&stdout, &stderr)
	// k=0 cannot reach sink B from source A: UNSAT, exit code 1 per §6.
	err := app.Run([]string{"tunnelsat", "solve", path, "0"})
	if err == nil {
		t.Fatal("expected a non-nil ExitCoder error for UNSAT")
	}
	coder, ok := err.(cli.ExitCoder)
	if !ok {
		t.Fatalf("expected an cli.ExitCoder error, got %T: %v", err, err)
	}
	if got, want := coder.ExitCode(), 1; got != want {
		t.Errorf("exit code = %d, want %d", got, want)
	}
	if got, want := stdout.String(), "UNSAT\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestSolve_MissingFileIsAnError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := newTestApp(&stdout, &stderr)
	err := app.Run([]string{"tunnelsat", "solve", "/nonexistent/network.json", "1"})
	if err == nil {
		t.Fatal("expected an error for a missing network file")
	}
}

func TestSolve_WrongArgCountIsAnError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := newTestApp(&stdout, &stderr)
	err := app.Run([]string{"tunnelsat", "solve", "onlyonearg"})
	if err == nil {
		t.Fatal("expected an error when k is missing")
	}
}

func TestSolve_StatsFlagWritesToErrWriter(t *testing.T) {
	path := writeNetworkFile(t, s1Network)

	var stdout, stderr bytes.Buffer
	app := newTestApp(&stdout, &stderr)
	if err := app.Run([]string{"tunnelsat", "solve", "--stats", path, "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr.Len() == 0 {
		t.Error("expected --stats to write diagnostics to the error writer")
	}
}

func TestSolve_PrintModelFlagAppendsDiagnostics(t *testing.T) {
	path := writeNetworkFile(t, s1Network)

	var stdout, stderr bytes.Buffer
	app := newTestApp(&stdout, &stderr)
	if err := app.Run([]string{"tunnelsat", "solve", "--print-model", path, "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("p=0 live=")) {
		t.Errorf("expected --print-model diagnostics in stdout, got: %s", stdout.String())
	}
}
