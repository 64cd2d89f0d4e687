package solver

import "github.com/katalvlaran/tunnelsat/internal/tsaterr"

// Reference is the default Solver: it Tseitin-transforms the Ctx's
// expression DAG into CNF over one variable per node, then runs a DPLL
// search with unit propagation and chronological backtracking.
//
// It makes no attempt at pure-literal elimination, clause learning,
// restarts, or any other proof-search optimization — per §1 Non-goals,
// search quality is not part of this system's scope. It exists so the
// reduction can be exercised end-to-end without an external SAT engine
// dependency.
type Reference struct{}

// literal is a signed 1-indexed reference to a CNF variable: positive means
// the variable must be true, negative means false. Index 0 is unused so
// that the sign bit is meaningful.
type literal int32

func lit(v Var, positive bool) literal {
	l := literal(v) + 1
	if !positive {
		l = -l
	}
	return l
}

func (l literal) variable() int  { return abs(int(l)) - 1 }
func (l literal) positive() bool { return l > 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Solve implements Solver.
func (Reference) Solve(ctx Context, root Var) (Model, bool, error) {
	c, ok := ctx.(*Ctx)
	if !ok {
		return nil, false, tsaterr.New(tsaterr.SolverError, "Reference solver requires a *solver.Ctx")
	}

	clauses := tseitinCNF(c, root)
	assignment, sat := dpll(clauses, len(c.nodes))
	if !sat {
		return nil, false, nil
	}
	return refModel(assignment), true, nil
}

// tseitinCNF emits, for every node in c, the clauses equating its own
// variable with the Boolean function of its kind, plus a unit clause
// fixing root to true.
func tseitinCNF(c *Ctx, root Var) [][]literal {
	var clauses [][]literal
	for i, n := range c.nodes {
		v := Var(i)
		switch n.kind {
		case kindLeaf:
			// free variable, no defining clauses.
		case kindConst:
			clauses = append(clauses, []literal{lit(v, n.value)})
		case kindNot:
			a := n.children[0]
			clauses = append(clauses, []literal{lit(v, false), lit(a, false)})
			clauses = append(clauses, []literal{lit(v, true), lit(a, true)})
		case kindAnd:
			var big []literal
			big = append(big, lit(v, true))
			for _, ch := range n.children {
				clauses = append(clauses, []literal{lit(v, false), lit(ch, true)})
				big = append(big, lit(ch, false))
			}
			clauses = append(clauses, big)
		case kindOr:
			var big []literal
			big = append(big, lit(v, false))
			for _, ch := range n.children {
				clauses = append(clauses, []literal{lit(v, true), lit(ch, false)})
				big = append(big, lit(ch, true))
			}
			clauses = append(clauses, big)
		}
	}
	clauses = append(clauses, []literal{lit(root, true)})
	return clauses
}

// assignVal is the three-valued state of a CNF variable during search.
type assignVal int8

const (
	unassigned assignVal = iota
	isTrue
	isFalse
)

func dpll(clauses [][]literal, numVars int) (map[int]bool, bool) {
	assignment := make([]assignVal, numVars)
	ok := search(clauses, assignment)
	if !ok {
		return nil, false
	}
	res := make(map[int]bool, numVars)
	for i, v := range assignment {
		if v == unassigned {
			continue // unconstrained variable, either value is valid
		}
		res[i] = v == isTrue
	}
	return res, true
}

// search runs unit propagation to a fixed point, then branches on the first
// unassigned variable it finds. assignment is restored on backtrack so
// callers can reuse it across sibling branches without reallocating.
func search(clauses [][]literal, assignment []assignVal) bool {
	trail, ok := propagate(clauses, assignment)
	if !ok {
		undo(assignment, trail)
		return false
	}

	branchVar := -1
	for v, val := range assignment {
		if val == unassigned {
			branchVar = v
			break
		}
	}
	if branchVar == -1 {
		return true // every variable assigned, all clauses satisfied
	}

	assignment[branchVar] = isTrue
	if search(clauses, assignment) {
		return true
	}
	assignment[branchVar] = isFalse
	if search(clauses, assignment) {
		return true
	}
	assignment[branchVar] = unassigned
	undo(assignment, trail)
	return false
}

// propagate applies unit propagation until a fixed point or a conflict.
// It returns the list of variables it assigned, so the caller can undo
// exactly those on backtrack.
func propagate(clauses [][]literal, assignment []assignVal) ([]int, bool) {
	var trail []int
	for {
		progressed := false
		for _, clause := range clauses {
			status, unit := evalClause(clause, assignment)
			switch status {
			case clauseFalse:
				return trail, false
			case clauseUnit:
				v := unit.variable()
				assignment[v] = toAssignVal(unit.positive())
				trail = append(trail, v)
				progressed = true
			}
		}
		if !progressed {
			return trail, true
		}
	}
}

func toAssignVal(positive bool) assignVal {
	if positive {
		return isTrue
	}
	return isFalse
}

func undo(assignment []assignVal, trail []int) {
	for _, v := range trail {
		assignment[v] = unassigned
	}
}

type clauseStatus int

const (
	clauseSatisfied clauseStatus = iota
	clauseFalse
	clauseUnit
	clauseUnresolved
)

// evalClause classifies a clause under the current partial assignment. It
// returns the forcing literal when exactly one literal remains unassigned
// and all others are false.
func evalClause(clause []literal, assignment []assignVal) (clauseStatus, literal) {
	unassignedCount := 0
	var pending literal
	for _, l := range clause {
		v := l.variable()
		switch assignment[v] {
		case unassigned:
			unassignedCount++
			pending = l
		case isTrue:
			if l.positive() {
				return clauseSatisfied, 0
			}
		case isFalse:
			if !l.positive() {
				return clauseSatisfied, 0
			}
		}
	}
	switch unassignedCount {
	case 0:
		return clauseFalse, 0
	case 1:
		return clauseUnit, pending
	default:
		return clauseUnresolved, 0
	}
}

// refModel adapts a DPLL assignment to the Model interface.
type refModel map[int]bool

func (m refModel) Value(v Var) bool {
	return m[int(v)]
}
