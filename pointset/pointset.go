// Package pointset supplies point sets for a hull builder: random samples in a
// rectangle, "x y" text, and SVG drawings.
package pointset

import (
	"bufio"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/quickhull"
	"github.com/pkg/errors"
)

// An axis aligned area to sample points in. Points land at least Margin inside
// every side.
type Bounds struct {
	Width, Height, Margin float64
}

// The canvas the hull demo has always drawn on.
var DefaultBounds = Bounds{Width: 600, Height: 400, Margin: 50}

const DefaultCount = 50

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Sample n points uniformly inside the bounds.
func Random(rng *rand.Rand, n int, bounds Bounds) []*quickhull.Point {
	points := make([]*quickhull.Point, n)
	for i := range points {
		points[i] = &quickhull.Point{
			X: randf(rng, bounds.Margin, bounds.Width-bounds.Margin),
			Y: randf(rng, bounds.Margin, bounds.Height-bounds.Margin),
		}
	}
	return points
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Read newline separated points in the form "x y". Blank lines and lines
// starting with '#' are skipped.
func ReadText(r io.Reader) ([]*quickhull.Point, error) {
	var points []*quickhull.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		point, err := parsePoint(parts[0], parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Read points from an SVG document. Each <circle> contributes its center, and
// each <polygon> or <polyline> contributes its vertices, in document order.
func ReadSVG(r io.Reader) ([]*quickhull.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []*quickhull.Point
	for _, el := range root.FindAll("circle") {
		point, err := parsePoint(el.Attributes["cx"], el.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle")
		}
		points = append(points, point)
	}
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrap(err, name)
			}
			points = append(points, vertices...)
		}
	}
	return points, nil
}

// Load points from a file, picking the format by extension. "-" reads text
// from stdin.
func Load(path string) ([]*quickhull.Point, error) {
	if path == "-" {
		return ReadText(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening point file")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ReadSVG(f)
	}
	return ReadText(f)
}

// SVG point lists separate coordinates with commas and/or whitespace.
func parsePointList(s string) ([]*quickhull.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]*quickhull.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(xString, yString string) (*quickhull.Point, error) {
	x, err := strconv.ParseFloat(xString, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", xString)
	}
	y, err := strconv.ParseFloat(yString, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", yString)
	}
	return &quickhull.Point{X: x, Y: y}, nil
}
