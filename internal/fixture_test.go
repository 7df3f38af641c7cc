package internal

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// Fixtures are svg files in fixtures/, named without the extension. Every
// <circle> is a point, at (cx, cy), in document order. If anything goes wrong,
// the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]*Point, 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q in fixture %q: %v", circle.Attributes["cx"], name, err)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q in fixture %q: %v", circle.Attributes["cy"], name, err)
		}
		points = append(points, &Point{x, y})
	}
	return points
}
