// Package cancel implements the process-wide cooperative cancellation flag
// described in spec.md §5: a single atomic bool that every potentially-long
// loop in pkg/constructive polls once per iteration.
//
// There is no per-call cancellation token. Callers that want to abort an
// in-flight computation call Stop, wait for the unwinding call to return an
// Cancellation error, and call Reset before invoking the library again.
// Racing Stop/Reset against an overlapping computation is undefined, per
// spec.md §5.
package cancel

import (
	"context"
	"sync/atomic"
)

var stopped atomic.Bool

// Stop requests that any in-flight (or future, until Reset) computation
// abort at its next iteration boundary.
func Stop() {
	stopped.Store(true)
}

// Reset clears the stop request. Callers must wait for the aborted call to
// return before calling Reset.
func Reset() {
	stopped.Store(false)
}

// Requested reports whether a stop has been requested.
func Requested() bool {
	return stopped.Load()
}

type cancellationError struct{}

func (cancellationError) Error() string { return "computation cancelled" }

// Cancellation is returned by Check, and raised as a panic by CheckPanic,
// when a stop request is pending. The library's loops use CheckPanic and do
// not recover the panic themselves; Recover turns it back into an error.
var Cancellation error = cancellationError{}

// Check polls the global flag and, if ctx carries its own cancellation,
// ctx.Err() as well. It returns Cancellation (or ctx.Err()) the first time
// either fires, and nil otherwise. The library's own iterative loops poll
// through CheckPanic instead.
func Check(ctx context.Context) error {
	if ctx != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	if stopped.Load() {
		return Cancellation
	}
	return nil
}

// CheckPanic is the loop-body form of Check: the iterative algorithms
// (pkg/constructive's Taylor series, Gauss-Legendre AGM, refineMSD,
// InverseIncreasing and MonotoneDerivative, pkg/unified's CompareTo
// doubling, pkg/property's CommonPower) call this once per iteration
// instead of threading a context through the Real interface's
// approximate(p) method, which spec.md fixes in shape. Unwinds via
// panic(Cancellation); no library entry point recovers it, so it reaches
// the caller as a panic that Recover can turn into an error, consistent
// with spec.md §7: "library
// state remains consistent because cache updates are monotone."
func CheckPanic() {
	if stopped.Load() {
		panic(Cancellation)
	}
}

// Recover, called in a deferred func around code that can panic with
// Cancellation (or with one of pkg/constructive's own sentinel errors,
// which unwind the same way), turns that panic into an error. It sets
// *errp and swallows the panic only when the recovered value is an error;
// any other panic is re-raised.
func Recover(errp *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*errp = e
			return
		}
		panic(r)
	}
}
