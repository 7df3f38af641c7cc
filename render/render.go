// Package render draws a hull under construction: the point set as dots and
// both chains as line segments on a dark canvas.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/quickhull"
	"golang.org/x/image/font/basicfont"
)

type Options struct {
	Width, Height int
	PointRadius   float64
	LineWidth     float64
	// Scale and translate the points to fill the image, keeping Padding pixels
	// clear on every side. Without it, point coordinates are pixel coordinates.
	Fit     bool
	Padding float64
	// Drawn in the top left corner when not empty.
	Label string
}

var DefaultOptions = Options{
	Width:       600,
	Height:      400,
	PointRadius: 3,
	LineWidth:   1.5,
	Padding:     20,
}

// Draw the points and chains into a new context. Canvas orientation is kept:
// y grows downwards, so the above chain is drawn on top.
func Draw(points []*quickhull.Point, above, below quickhull.Chain, opts Options) *gg.Context {
	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	project := identity
	if opts.Fit {
		project = fitProjection(points, opts)
	}

	c.SetRGB(1, 0, 0)
	for _, p := range points {
		x, y := project(p)
		c.DrawCircle(x, y, opts.PointRadius)
		c.Fill()
	}

	c.SetLineWidth(opts.LineWidth)
	for _, chain := range []quickhull.Chain{above, below} {
		c.SetRGB(1, 1, 0)
		for _, edge := range chain {
			x1, y1 := project(edge.Start)
			x2, y2 := project(edge.End)
			c.DrawLine(x1, y1, x2, y2)
			c.Stroke()
		}
	}

	if opts.Label != "" {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(1, 1, 1)
		c.DrawString(opts.Label, 8, 18)
	}
	return c
}

func SavePNG(c *gg.Context, path string) error {
	return c.SavePNG(path)
}

// Print a PNG inline in the terminal. Only iTerm compatible terminals show
// anything.
func Imgcat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

type projection func(*quickhull.Point) (float64, float64)

func identity(p *quickhull.Point) (float64, float64) {
	return p.X, p.Y
}

func fitProjection(points []*quickhull.Point, opts Options) projection {
	if len(points) == 0 {
		return identity
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	availableWidth := float64(opts.Width) - 2*opts.Padding
	availableHeight := float64(opts.Height) - 2*opts.Padding
	scale := math.Inf(1)
	if maxX > minX {
		scale = availableWidth / (maxX - minX)
	}
	if maxY > minY {
		scale = math.Min(scale, availableHeight/(maxY-minY))
	}
	if math.IsInf(scale, 1) {
		// Every point is in the same spot
		scale = 1
	}

	return func(p *quickhull.Point) (float64, float64) {
		return opts.Padding + (p.X-minX)*scale, opts.Padding + (p.Y-minY)*scale
	}
}
