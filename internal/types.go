package internal

import "fmt"

type Point struct {
	X float64
	Y float64
}

// Edges hold pointers into the caller's point set. Points are never copied or
// modified once they have been handed to a builder, so pointer equality is
// point identity.
type Edge struct {
	Start *Point
	End   *Point
}

// Slope/intercept form of the infinite line through an edge. Only ever derived
// on demand with EdgeToLine.
type Line struct {
	M float64
	T float64
}

// Which side of an edge a chain is refined against. "Above" is the side with
// smaller y values than the line at the same x.
type Side int

const (
	Above Side = iota
	Below
)

func (s Side) String() string {
	switch s {
	case Above:
		return "above"
	case Below:
		return "below"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// A chain is an ordered list of edges, one half of the hull.
type Chain []*Edge

type PointSet map[*Point]struct{}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (e Edge) String() string {
	return fmt.Sprintf("%v→%v", e.Start, e.End)
}

func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	return append(Chain(nil), c...)
}

func (set PointSet) Add(p *Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p *Point) bool {
	_, ok := set[p]
	return ok
}
