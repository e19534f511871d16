// Panic recovery for the numerical layers. Optimizer and linear algebra
// paths run caller-supplied closures; a panic escaping one of them is
// returned as an error rather than crossing the package boundary.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is a panic converted into an error by Recover. It keeps the
// original panic value and the stack captured at recovery time.
type PanicError struct {
	PanicValue interface{}
	StackTrace string
	Operation  string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns nil; the panic value is not treated as a wrapped error.
func (e *PanicError) Unwrap() error { return nil }

// String renders the message together with the captured stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError captures the current stack and wraps the panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts an in-flight panic into an error on the deferred
// function's named return:
//
//	func (m *BFGSMinimizer) Minimize(...) (res *MinimizeResult, err error) {
//	    defer errors.Recover(&err, "BFGSMinimizer.Minimize")
//	    ...
//	}
//
// When the function already carries an error, the panic message wraps it
// so neither failure is lost.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = fmt.Errorf("panic in %s: %v (original error: %w)", operation, r, *err)
		return
	}
	*err = NewPanicError(operation, r)
}
