package satvar

import (
	"testing"

	"github.com/katalvlaran/tunnelsat/internal/solver"
)

func TestNamer_StableIdentity(t *testing.T) {
	n := New(solver.NewCtx())

	p1 := n.Path(2, 3, 1)
	p2 := n.Path(2, 3, 1)
	if p1 != p2 {
		t.Errorf("Path(2,3,1) returned different vars: %v, %v", p1, p2)
	}

	f1 := n.Four(3, 1)
	f2 := n.Four(3, 1)
	if f1 != f2 {
		t.Errorf("Four(3,1) returned different vars: %v, %v", f1, f2)
	}

	s1 := n.Six(3, 1)
	s2 := n.Six(3, 1)
	if s1 != s2 {
		t.Errorf("Six(3,1) returned different vars: %v, %v", s1, s2)
	}
}

func TestNamer_DistinctAcrossFamiliesAndInputs(t *testing.T) {
	n := New(solver.NewCtx())

	seen := map[solver.Var]string{}
	record := func(label string, v solver.Var) {
		if other, ok := seen[v]; ok {
			t.Errorf("%s collided with %s on var %v", label, other, v)
		}
		seen[v] = label
	}

	record("path(0,0,0)", n.Path(0, 0, 0))
	record("path(1,0,0)", n.Path(1, 0, 0))
	record("path(0,1,0)", n.Path(0, 1, 0))
	record("path(0,0,1)", n.Path(0, 0, 1))
	record("four(0,0)", n.Four(0, 0))
	record("six(0,0)", n.Six(0, 0))
	record("four(1,0)", n.Four(1, 0))
	record("six(0,1)", n.Six(0, 1))
}

func TestNamer_Len(t *testing.T) {
	n := New(solver.NewCtx())
	if got := n.Len(); got != 0 {
		t.Fatalf("fresh namer Len() = %d, want 0", got)
	}

	n.Path(0, 0, 0)
	n.Four(0, 0)
	n.Six(0, 0)
	if got := n.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	// Repeat lookups must not grow the count.
	n.Path(0, 0, 0)
	if got := n.Len(); got != 3 {
		t.Errorf("Len() after repeat lookup = %d, want 3", got)
	}
}
