package internal

import "github.com/pkg/errors"

// A round walks every edge of both chains and asks the geometry strategy about
// every point for each of them. Threading errors back out of those nested loops
// clutters the algorithm, so the inner code panics with a HullError and the
// public operations recover it.

type HullError struct {
	error
}

func (e HullError) Unwrap() error {
	return e.error
}

func (e HullError) Cause() error {
	return e.error
}

// Panic with a HullError wrapping err.
func throw(err error) {
	panic(HullError{err})
}

// Panic with a formatted HullError.
func fatalf(format string, args ...interface{}) {
	throw(errors.Errorf(format, args...))
}

// Convert a recovered HullError back into the error it carries. Any other panic
// value is re-raised.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
