// Package stacksize implements the stack-size policy S (§3): the derived
// bound H(k) on the maximum stack height reachable by any well-formed
// length-k path.
package stacksize

// H returns k/2 + 1, the maximum stack height any well-formed length-k path
// can reach, since every push must be matched by a pop within the
// remaining budget.
func H(k int) int {
	return k/2 + 1
}
