// Package coreerrors defines the error kinds the engine may surface:
// snapshot invariant violations, configuration errors, and Markov
// non-convergence, plus invalid arguments (such as an unknown jail policy
// name) and internal programmer errors. All are fail-fast and unrecoverable
// at the decision boundary; the host must not retry a call that produced
// one of these.
package coreerrors

import "fmt"

// Kind tags which error surface produced an error.
type Kind int

const (
	KindInvalidSnapshot Kind = iota
	KindInvalidConfig
	KindInvalidArgument
	KindMarkovNonConvergent
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidSnapshot:
		return "InvalidSnapshot"
	case KindInvalidConfig:
		return "InvalidConfig"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindMarkovNonConvergent:
		return "MarkovNonConvergent"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the single error type the core produces. Callers should switch
// on Kind() rather than matching message text.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.kind, e.msg) }

// Kind returns the error surface that produced e.
func (e *Error) Kind() Kind { return e.kind }

func new_(k Kind, format string, args ...interface{}) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// InvalidSnapshot reports a programmer/host bug in the passed snapshot,
// e.g. houses recorded on a mortgaged square, or an owner index out of
// range.
func InvalidSnapshot(format string, args ...interface{}) *Error {
	return new_(KindInvalidSnapshot, format, args...)
}

// InvalidConfig reports a bad tuning-parameter configuration, caught at
// construction.
func InvalidConfig(format string, args ...interface{}) *Error {
	return new_(KindInvalidConfig, format, args...)
}

// InvalidArgument reports a bad argument to a decision call, such as an
// unknown jail policy name.
func InvalidArgument(format string, args ...interface{}) *Error {
	return new_(KindInvalidArgument, format, args...)
}

// MarkovNonConvergent reports that the stationary-distribution solve
// exceeded its iteration budget without meeting the convergence
// criterion. This indicates a bug in the Markov construction, not a
// transient condition; the host must not retry with the same policy.
func MarkovNonConvergent(format string, args ...interface{}) *Error {
	return new_(KindMarkovNonConvergent, format, args...)
}

// Internal reports a programmer error detected inside the core itself,
// such as a transition row failing to be row-stochastic.
func Internal(format string, args ...interface{}) *Error {
	return new_(KindInternal, format, args...)
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.kind == k
}
