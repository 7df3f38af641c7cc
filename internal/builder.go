package internal

import (
	"context"
	"log/slog"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quickhull/internal/dbg"
)

// Builder computes the convex hull of a point set one round at a time, so that
// callers can show the intermediate hulls. A Builder is owned by a single
// caller and is not safe for concurrent use; wrap Reset, AdvanceRound and Edges
// in one mutex if it has to be shared.
//
// The hull is held as two chains seeded with the same baseline edge from the
// leftmost to the rightmost point. The above chain is only ever refined against
// points above its edges, and the below chain against points below, so the two
// halves never compete for a point.
//
// Each edge remembers the points that were strictly outside the edge it was
// split from, minus the new vertex, and is only ever tested against those. A
// point that is already a chain vertex is never picked again, so every split
// adds a new vertex and a point set of n points stabilizes after at most n
// splits, however the floating point side tests round.
type Builder struct {
	points []*Point
	above  Chain
	below  Chain
	// Candidates per chain edge, by index. A nil entry stands for the whole
	// point set.
	aboveCandidates [][]*Point
	belowCandidates [][]*Point
	vertices        PointSet
	state           State
	stable          bool
	rounds          int
	geometry        Geometry
	logger          *slog.Logger
}

type State int

const (
	// No point set, or a point set whose baseline has not been built.
	Uninitialized State = iota
	// Both chains exist and rounds can be applied.
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "uninitialized"
}

type Option func(*Builder)

// Use g for the side test and distance metric. The default is CrossGeometry.
func WithGeometry(g Geometry) Option {
	return func(b *Builder) {
		if g != nil {
			b.geometry = g
		}
	}
}

// Log to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{geometry: CrossGeometry{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Replace the point set and drop both chains. The slice is copied, the points
// are not: edges keep pointing at the caller's points.
func (b *Builder) Reset(points []*Point) {
	b.points = append([]*Point(nil), points...)
	b.above = nil
	b.below = nil
	b.aboveCandidates = nil
	b.belowCandidates = nil
	b.vertices = nil
	b.state = Uninitialized
	b.stable = false
	b.rounds = 0
	b.log().Debug("reset", slog.Int("points", len(points)))
}

// Build the baseline edge from the leftmost to the rightmost point and put a
// copy of it in each chain. Points sharing the extreme x are ordered by a
// stable sort, so the first of them in the point set is the leftmost and the
// last of them is the rightmost.
func (b *Builder) InitializeBaseline() error {
	if len(b.points) == 0 {
		return ErrEmptyInput
	}
	if b.state == Active {
		return ErrAlreadyInitialized
	}

	sorted := append([]*Point(nil), b.points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})
	leftmost, rightmost := sorted[0], sorted[len(sorted)-1]

	b.above = Chain{{Start: leftmost, End: rightmost}}
	b.below = Chain{{Start: leftmost, End: rightmost}}
	b.aboveCandidates = [][]*Point{nil}
	b.belowCandidates = [][]*Point{nil}
	b.vertices = PointSet{}
	b.vertices.Add(leftmost)
	b.vertices.Add(rightmost)
	b.state = Active
	b.stable = false
	b.rounds = 0

	b.log().Debug("baseline",
		slog.String("start", leftmost.String()),
		slog.String("end", rightmost.String()),
	)
	return nil
}

// Apply one round: every edge with points strictly outside it is replaced by
// two edges meeting at the farthest of those points, and every other edge is
// carried over as is. On an uninitialized builder the call builds the baseline
// instead, which is the first visible step of a construction.
//
// The new chains are computed in full before either is stored, so a round that
// fails leaves the previous chains untouched.
func (b *Builder) AdvanceRound() (err error) {
	if b.state == Uninitialized {
		return b.InitializeBaseline()
	}

	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	claimed := PointSet{}
	above, aboveCandidates, aboveSplits := b.refine(b.above, b.aboveCandidates, Above, claimed)
	below, belowCandidates, belowSplits := b.refine(b.below, b.belowCandidates, Below, claimed)

	b.above = above
	b.below = below
	b.aboveCandidates = aboveCandidates
	b.belowCandidates = belowCandidates
	for p := range claimed {
		b.vertices.Add(p)
	}
	b.rounds++
	b.stable = aboveSplits == 0 && belowSplits == 0

	b.log().Debug("round",
		slog.Int("round", b.rounds),
		slog.Int("above", len(b.above)),
		slog.Int("below", len(b.below)),
		slog.Int("splits", aboveSplits+belowSplits),
		slog.Bool("stable", b.stable),
	)
	return nil
}

// Advance until a round splits nothing, or until maxRounds rounds have been
// applied when maxRounds is positive. Builds the baseline first if needed; that
// step is not counted. Returns the number of rounds applied.
func (b *Builder) Run(maxRounds int) (int, error) {
	if b.state == Uninitialized {
		if err := b.InitializeBaseline(); err != nil {
			return 0, err
		}
	}
	rounds := 0
	for !b.stable && (maxRounds <= 0 || rounds < maxRounds) {
		if err := b.AdvanceRound(); err != nil {
			return rounds, err
		}
		rounds++
	}
	return rounds, nil
}

// Snapshots of both chains. The slices are copies; the edges are shared and
// must not be modified.
func (b *Builder) Edges() (above, below Chain) {
	return b.above.Clone(), b.below.Clone()
}

func (b *Builder) Points() []*Point {
	return append([]*Point(nil), b.points...)
}

func (b *Builder) State() State {
	return b.state
}

// True once a round has gone by without splitting any edge. Further rounds
// leave the chains exactly as they are.
func (b *Builder) Stable() bool {
	return b.stable
}

// Rounds applied since the last Reset.
func (b *Builder) Rounds() int {
	return b.rounds
}

// Refine one chain. New vertices are recorded in claimed rather than in
// b.vertices, so that a failed round leaves the builder untouched.
func (b *Builder) refine(chain Chain, candidates [][]*Point, side Side, claimed PointSet) (Chain, [][]*Point, int) {
	next := make(Chain, 0, 2*len(chain))
	nextCandidates := make([][]*Point, 0, 2*len(chain))
	splits := 0
	for i, edge := range chain {
		pool := candidates[i]
		if pool == nil {
			pool = b.points
		}
		outside := b.outside(edge, pool, side, claimed)
		farthest := b.farthest(edge, outside)
		if farthest == nil {
			next = append(next, edge)
			nextCandidates = append(nextCandidates, outside)
			continue
		}
		claimed.Add(farthest)

		remaining := make([]*Point, 0, len(outside)-1)
		for _, p := range outside {
			if p != farthest {
				remaining = append(remaining, p)
			}
		}
		// Replacements go where the edge was, so the chain keeps its left to right
		// order. Their direction runs from the old endpoints to the new point. Both
		// start from the same candidates and filter them against themselves next
		// round.
		next = append(next,
			&Edge{Start: edge.Start, End: farthest},
			&Edge{Start: edge.End, End: farthest},
		)
		nextCandidates = append(nextCandidates, remaining, remaining)
		splits++
		if b.debugEnabled() {
			b.log().Debug("split",
				slog.String("side", side.String()),
				slog.String("edge", edge.DbgName()),
				slog.String("point", farthest.String()),
			)
		}
	}
	return next, nextCandidates, splits
}

// The points of pool strictly on the given side of the edge, leaving out chain
// vertices. Never nil.
func (b *Builder) outside(edge *Edge, pool []*Point, side Side, claimed PointSet) []*Point {
	result := []*Point{}
	for _, point := range pool {
		if b.vertices.Contains(point) || claimed.Contains(point) {
			continue
		}
		outside, err := b.geometry.Outside(edge, point, side)
		if err != nil {
			throw(err)
		}
		if outside {
			result = append(result, point)
		}
	}
	return result
}

// The point farthest from the edge's line, or nil if there are none. The first
// point at the maximum distance wins.
func (b *Builder) farthest(edge *Edge, points []*Point) *Point {
	var farthest *Point
	var farthestDistance float64
	for _, point := range points {
		distance, err := b.geometry.Distance(edge, point)
		if err != nil {
			throw(err)
		}
		if farthest == nil || distance > farthestDistance {
			farthest = point
			farthestDistance = distance
		}
	}
	return farthest
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return Logger()
}

func (b *Builder) debugEnabled() bool {
	return b.log().Enabled(context.Background(), slog.LevelDebug)
}

// Readable name for logs. Degenerate edges (zero length or vertical) are red.
func (e *Edge) DbgName() string {
	name := dbg.Name(e.Start) + "→" + dbg.Name(e.End)
	if e.Start.X == e.End.X {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
