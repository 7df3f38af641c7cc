// Stepwise convex hulls for Go.
//
// This package computes the convex hull of a set of 2-D points with a
// quickhull variant that runs one round at a time: each round replaces every
// hull edge that still has points outside it with two edges through the
// farthest of those points. Stopping after any round gives a valid
// intermediate hull, which is what makes the construction easy to animate.
package quickhull

import "github.com/osuushi/quickhull/internal"

type Point = internal.Point
type Edge = internal.Edge
type Line = internal.Line
type Chain = internal.Chain
type Side = internal.Side

type Builder = internal.Builder
type Option = internal.Option
type State = internal.State

type Geometry = internal.Geometry
type CrossGeometry = internal.CrossGeometry
type LineGeometry = internal.LineGeometry

type DegenerateGeometryError = internal.DegenerateGeometryError

const (
	Above = internal.Above
	Below = internal.Below

	Uninitialized = internal.Uninitialized
	Active        = internal.Active
)

var (
	ErrEmptyInput         = internal.ErrEmptyInput
	ErrNotInitialized     = internal.ErrNotInitialized
	ErrAlreadyInitialized = internal.ErrAlreadyInitialized
)

var (
	NewBuilder   = internal.NewBuilder
	WithGeometry = internal.WithGeometry
	WithLogger   = internal.WithLogger
	SetLogger    = internal.SetLogger

	EdgeToLine            = internal.EdgeToLine
	SideTest              = internal.SideTest
	LineIntersection      = internal.LineIntersection
	PerpendicularDistance = internal.PerpendicularDistance
)

// Compute the whole hull in one go. The result is the hull's vertices in loop
// order starting from the leftmost point, without repeating it.
func Hull(points ...*Point) ([]*Point, error) {
	builder := NewBuilder()
	builder.Reset(points)
	if _, err := builder.Run(0); err != nil {
		return nil, err
	}
	return builder.Loop()
}
