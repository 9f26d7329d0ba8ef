package wfc

import (
	"errors"
	"fmt"
)

// The solver reports exactly two kinds of failure (spec.md §7): the problem
// is unsatisfiable, or the iteration bound was hit before a fixpoint was
// reached. Both follow the teacher's sentinel-error convention
// (fd.go's ErrInconsistent/ErrDomainEmpty, optimize.go's
// ErrSearchLimitReached) rather than github.com/pkg/errors' stack-trace
// wrapping, which buys nothing for a synchronous, single-call solver.
var (
	// ErrUnsatisfiable is returned by Run when a contradiction survives
	// every branch, or the entropy scan finds no branchable cell while
	// cells remain non-singleton.
	ErrUnsatisfiable = errors.New("wfc: no assignment satisfies the propagation rules")

	// ErrIterationLimit is returned by Run when MaxIterations is
	// exhausted before the wave either fully collapses or contradicts.
	ErrIterationLimit = errors.New("wfc: iteration bound exceeded")
)

// debugAsserts gates the engine-fatal invariant checks described in
// spec.md §7. Release builds of a library can't practically swap behavior
// per-build the way a C++ NDEBUG flag can, so gowfc keeps it as a package
// variable; setting it false elides the checks. It defaults to on, matching
// "in debug builds" being the default developer experience. The variable is
// unexported, so only code inside this package can turn the checks off.
var debugAsserts = true

// assertionError is the panic value raised by assertf. Engine-fatal
// invariant violations (duplicate queue push, pop from empty, an
// out-of-range variable index) are caller bugs, not Unsatisfiable results,
// so they panic rather than returning an error — exactly as spec.md §7
// describes ("these abort with a diagnostic").
type assertionError struct{ msg string }

func (e *assertionError) Error() string { return e.msg }

func assertf(cond bool, format string, args ...any) {
	if cond || !debugAsserts {
		return
	}
	panic(&assertionError{msg: fmt.Sprintf(format, args...)})
}
