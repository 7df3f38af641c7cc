package internal

// No tests in here, only helpers for checking hulls.

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// For comparing derived lengths. The hull predicates round too, so the sound
// hull check only suits points that are well away from collinear.
const Tolerance = 1e-9

// A hull is sound when no point is strictly outside any edge of the chain it
// belongs to: nothing above an above edge, nothing below a below edge.
func AssertSoundHull(t *testing.T, b *Builder) {
	t.Helper()
	above, below := b.Edges()
	geometry := CrossGeometry{}
	for _, p := range b.Points() {
		for _, edge := range above {
			outside, err := geometry.Outside(edge, p, Above)
			require.NoError(t, err)
			require.False(t, outside, "point %v is above hull edge %v", p, edge)
		}
		for _, edge := range below {
			outside, err := geometry.Outside(edge, p, Below)
			require.NoError(t, err)
			require.False(t, outside, "point %v is below hull edge %v", p, edge)
		}
	}
}

// Every strict corner of the reference hull must be a vertex of the builder's
// loop, and the loop may not contain anything that is not on the reference
// hull's boundary.
func AssertMatchesReferenceHull(t *testing.T, b *Builder) {
	t.Helper()
	loop, err := b.Loop()
	require.NoError(t, err)

	loopSet := make(PointSet)
	for _, p := range loop {
		loopSet.Add(p)
	}
	reference := monotoneChainHull(b.Points())
	for _, corner := range reference {
		require.True(t, loopSet.Contains(corner), "hull corner %v missing from loop %v", corner, loop)
	}
	for _, p := range loop {
		require.True(t, onPolygonBoundary(reference, p), "loop vertex %v is not on the hull", p)
	}
}

// Andrew's monotone chain, keeping only strict corners. Independent of the
// code under test.
func monotoneChainHull(points []*Point) []*Point {
	sorted := append([]*Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	if len(sorted) < 3 {
		return sorted
	}

	var lower, upper []*Point
	for _, p := range sorted {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func onPolygonBoundary(polygon []*Point, p *Point) bool {
	if len(polygon) == 1 {
		return polygon[0].X == p.X && polygon[0].Y == p.Y
	}
	for i, a := range polygon {
		b := polygon[(i+1)%len(polygon)]
		if Cross(a, b, p) != 0 {
			continue
		}
		if p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) && p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y) {
			return true
		}
	}
	return false
}

func randomPoints(seed uint64, n int) []*Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]*Point, n)
	for i := range points {
		points[i] = &Point{X: rng.Float64()*500 + 50, Y: rng.Float64()*300 + 50}
	}
	return points
}
