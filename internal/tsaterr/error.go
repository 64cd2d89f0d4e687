// Package tsaterr defines the error kinds the reduction, solver, and decoder
// collaborators report, per §7 of the design.
package tsaterr

import "fmt"

// Kind classifies an error raised anywhere in the core.
type Kind int

const (
	// InvalidInput covers a bad k or a network missing source/sink.
	InvalidInput Kind = iota
	// SolverError covers a failed construction of a solver AST node.
	SolverError
	// ModelCorrupt covers a decoder unable to find a unique live pair.
	ModelCorrupt
	// Internal covers any other invariant violation.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case SolverError:
		return "solver error"
	case ModelCorrupt:
		return "model corrupt"
	case Internal:
		return "internal error"
	default:
		return "unknown error"
	}
}

// Error wraps an underlying cause with a Kind, so callers can branch on
// classification without string matching.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error of the given Kind.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an *Error of the given Kind wrapping a lower-level cause.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ee, ok := err.(*Error); ok {
			e = ee
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
