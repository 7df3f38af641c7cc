package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// Returned when a builder is asked to initialize or advance with no points.
	ErrEmptyInput = errors.New("quickhull: empty point set")
	// Returned when the hull is queried before the baseline exists.
	ErrNotInitialized = errors.New("quickhull: hull not initialized")
	// Returned by InitializeBaseline when the chains already exist.
	ErrAlreadyInitialized = errors.New("quickhull: hull already initialized")
)

// A geometric computation hit an undefined case: a vertical edge in slope
// form, parallel lines, or a zero-length edge. Edge and Point name the inputs
// that triggered it; either may be nil.
type DegenerateGeometryError struct {
	Op     string
	Edge   *Edge
	Point  *Point
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	msg := fmt.Sprintf("quickhull: degenerate geometry in %s: %s", e.Op, e.Reason)
	if e.Edge != nil {
		msg += fmt.Sprintf(" (edge %v)", e.Edge)
	}
	if e.Point != nil {
		msg += fmt.Sprintf(" (point %v)", e.Point)
	}
	return msg
}

func degenerate(op string, edge *Edge, point *Point, reason string) error {
	return &DegenerateGeometryError{Op: op, Edge: edge, Point: point, Reason: reason}
}

// Reports whether err is, or wraps, a DegenerateGeometryError.
func IsDegenerate(err error) bool {
	var target *DegenerateGeometryError
	return errors.As(err, &target)
}
