package internal

import "github.com/pkg/errors"

// Threading errors through every geometric helper would add a lot of noise for
// conditions that indicate a bug. Instead, we use panics, and the public API
// recovers to convert to an error.

type TriangulateError error

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}

// Like HandleTriangulatePanicRecover, but never re-panics. This is used around
// third party code that may index out of range on degenerate input.
func HandleAnyPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return errors.Wrap(err, "recovered panic")
	}
	return errors.Errorf("recovered panic: %v", r)
}
