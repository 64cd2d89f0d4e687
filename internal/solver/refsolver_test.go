package solver

import "testing"

func TestReference_TrivialTrue(t *testing.T) {
	c := NewCtx()
	model, sat, err := (Reference{}).Solve(c, c.True())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sat {
		t.Fatal("True() should be satisfiable")
	}
	if model == nil {
		t.Fatal("sat result must carry a non-nil model")
	}
}

func TestReference_TrivialFalse(t *testing.T) {
	c := NewCtx()
	_, sat, err := (Reference{}).Solve(c, c.False())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sat {
		t.Fatal("False() should be unsatisfiable")
	}
}

func TestReference_FreeVariableIsSatisfiable(t *testing.T) {
	c := NewCtx()
	a := c.FreshBoolVar("a")
	model, sat, err := (Reference{}).Solve(c, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sat {
		t.Fatal("a free variable should be satisfiable")
	}
	if !model.Value(a) {
		t.Error("model should set a to true to satisfy root=a")
	}
}

func TestReference_ContradictionIsUnsat(t *testing.T) {
	c := NewCtx()
	a := c.FreshBoolVar("a")
	root := c.And(a, c.Not(a))
	_, sat, err := (Reference{}).Solve(c, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sat {
		t.Fatal("a ∧ ¬a must be unsatisfiable")
	}
}

func TestReference_XorForcesDistinctValues(t *testing.T) {
	c := NewCtx()
	a := c.FreshBoolVar("a")
	b := c.FreshBoolVar("b")
	model, sat, err := (Reference{}).Solve(c, c.Xor(a, b))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sat {
		t.Fatal("a xor b should be satisfiable")
	}
	if model.Value(a) == model.Value(b) {
		t.Error("model should assign a and b different truth values under xor")
	}
}

func TestReference_RejectsForeignContext(t *testing.T) {
	c := NewCtx()
	a := c.FreshBoolVar("a")
	_, _, err := (Reference{}).Solve(fakeContext{}, a)
	if err == nil {
		t.Fatal("expected an error when Solve is given a non-*Ctx Context")
	}
}

// fakeContext is a minimal Context that is not a *Ctx, used only to
// exercise Reference's type guard.
type fakeContext struct{}

func (fakeContext) FreshBoolVar(string) Var        { return 0 }
func (fakeContext) And(...Var) Var                 { return 0 }
func (fakeContext) Or(...Var) Var                  { return 0 }
func (fakeContext) Not(Var) Var                    { return 0 }
func (fakeContext) Implies(a, b Var) Var           { return 0 }
func (fakeContext) Iff(a, b Var) Var               { return 0 }
func (fakeContext) Xor(a, b Var) Var               { return 0 }
func (fakeContext) True() Var                      { return 0 }
func (fakeContext) False() Var                     { return 0 }
