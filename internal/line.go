package internal

import "math"

// Slope/intercept primitives. These are the straightforward formulation of
// the hull predicates. Each one refuses to produce non-finite values: vertical
// edges and parallel lines fail with a DegenerateGeometryError instead.

func EdgeToLine(edge *Edge) (Line, error) {
	dx := edge.End.X - edge.Start.X
	if dx == 0 {
		return Line{}, degenerate("EdgeToLine", edge, nil, "vertical edge has no slope")
	}
	m := (edge.End.Y - edge.Start.Y) / dx
	t := edge.Start.Y - m*edge.Start.X
	if !isFinite(m, t) {
		return Line{}, degenerate("EdgeToLine", edge, nil, "slope is not finite")
	}
	return Line{M: m, T: t}, nil
}

// The y value of the line at x.
func (l Line) At(x float64) float64 {
	return l.M*x + l.T
}

// Strict side test. Points on the line are on neither side.
func SideTest(edge *Edge, point *Point, side Side) (bool, error) {
	line, err := EdgeToLine(edge)
	if err != nil {
		return false, err
	}
	y := line.At(point.X)
	switch side {
	case Above:
		return point.Y < y, nil
	case Below:
		return point.Y > y, nil
	}
	return false, degenerate("SideTest", edge, point, "unknown side "+side.String())
}

func LineIntersection(l1, l2 Line) (*Point, error) {
	if l1.M == l2.M {
		return nil, degenerate("LineIntersection", nil, nil, "lines are parallel")
	}
	denom := l1.M - l2.M
	p := &Point{
		X: (l2.T - l1.T) / denom,
		Y: (l1.M*l2.T - l2.M*l1.T) / denom,
	}
	if !isFinite(p.X, p.Y) {
		return nil, degenerate("LineIntersection", nil, nil, "intersection is not finite")
	}
	return p, nil
}

// Distance from point to the edge's line, found by intersecting the edge's line
// with the perpendicular through point. A horizontal edge has a vertical
// perpendicular, which has no slope form, so that case is answered directly.
func PerpendicularDistance(edge *Edge, point *Point) (float64, error) {
	line, err := EdgeToLine(edge)
	if err != nil {
		return 0, err
	}
	if line.M == 0 {
		return math.Abs(point.Y - line.T), nil
	}
	perpendicular := Line{M: -1 / line.M}
	perpendicular.T = point.Y - perpendicular.M*point.X
	foot, err := LineIntersection(line, perpendicular)
	if err != nil {
		return 0, degenerate("PerpendicularDistance", edge, point, "perpendicular does not meet the edge's line")
	}
	return Distance(point, foot), nil
}
