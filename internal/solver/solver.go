// Package solver declares the propositional-logic collaborator the core
// consumes (§6): an opaque Context that manufactures Boolean variables and
// composes them into expressions, and a Model produced once a Context has
// been handed to a concrete Solver.
//
// The core never touches a Context's internals; it only calls the
// constructors below. A Solver is free to build a Tseitin-transformed CNF
// and hand the clauses to an external SAT engine, or — as Reference does —
// search that CNF itself with DPLL and unit propagation.
package solver

//go:generate mockgen -source solver.go -destination solver_mock.go -package solver

// Var is an opaque handle to a Boolean-valued expression node owned by a
// Context. Two Vars are equal iff they denote the same node; Vars from
// different Contexts must never be mixed.
type Var int

// Context is the solver collaborator of §6. All construction methods are
// pure with respect to any prior construction: calling them never mutates
// previously returned Vars.
type Context interface {
	// FreshBoolVar returns a new, previously unused Boolean variable. name
	// is advisory only (§6) — used for diagnostics, never for identity.
	FreshBoolVar(name string) Var

	And(vars ...Var) Var
	Or(vars ...Var) Var
	Not(v Var) Var
	Implies(a, b Var) Var
	Iff(a, b Var) Var
	Xor(a, b Var) Var
	True() Var
	False() Var
}

// Model is a satisfying assignment returned by a Solver. Value is defined
// only for Vars obtained from the Context that produced this Model.
type Model interface {
	Value(v Var) bool
}

// Solver turns a formula, expressed as a single root Var built against a
// Context, into a satisfying Model, or reports that none exists.
type Solver interface {
	// Solve decides satisfiability of root and returns a Model iff sat is
	// true. err is non-nil only on a construction/solve failure unrelated
	// to satisfiability (out of scope for the core itself, §7 SolverError).
	Solve(ctx Context, root Var) (model Model, sat bool, err error)
}
