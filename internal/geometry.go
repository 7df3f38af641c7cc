package internal

import "math"

// The predicates a builder needs to refine a chain. Implementations must be
// pure functions of their arguments.
type Geometry interface {
	// Is the point strictly on the given side of the edge's line?
	Outside(edge *Edge, point *Point, side Side) (bool, error)
	// Perpendicular distance from the point to the edge's line.
	Distance(edge *Edge, point *Point) (float64, error)
}

// Cross product predicates. These never divide by the edge's x extent, so the
// only input they cannot resolve is a zero-length edge in Distance.
type CrossGeometry struct{}

// Slope/intercept predicates built on EdgeToLine, SideTest and
// PerpendicularDistance. Vertical edges are reported as degenerate.
type LineGeometry struct{}

var (
	_ Geometry = CrossGeometry{}
	_ Geometry = LineGeometry{}
)

// For a non-vertical edge, this agrees in sign with comparing the point's y
// against the line's y at the same x. A vertical edge is only ever created on
// the leftmost or rightmost x of the point set, so nothing lies strictly
// outside it.
func (CrossGeometry) Outside(edge *Edge, point *Point, side Side) (bool, error) {
	left, right := ordered(edge)
	if left.X == right.X {
		return false, nil
	}
	// With left.X < right.X, a negative cross product means a smaller y.
	c := Cross(left, right, point)
	switch side {
	case Above:
		return c < 0, nil
	case Below:
		return c > 0, nil
	}
	return false, degenerate("Outside", edge, point, "unknown side "+side.String())
}

func (CrossGeometry) Distance(edge *Edge, point *Point) (float64, error) {
	left, right := ordered(edge)
	length := Distance(left, right)
	if length == 0 {
		return 0, degenerate("Distance", edge, point, "edge endpoints coincide")
	}
	return math.Abs(Cross(left, right, point)) / length, nil
}

// The edge's endpoints by ascending x, then y. Rounding in Cross depends on
// which endpoint it starts from, so both directions of an edge must start from
// the same one.
func ordered(edge *Edge) (*Point, *Point) {
	a, b := edge.Start, edge.End
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		return b, a
	}
	return a, b
}

func (LineGeometry) Outside(edge *Edge, point *Point, side Side) (bool, error) {
	return SideTest(edge, point, side)
}

func (LineGeometry) Distance(edge *Edge, point *Point) (float64, error) {
	return PerpendicularDistance(edge, point)
}
