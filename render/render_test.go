package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/quickhull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	a, b, c := &quickhull.Point{X: 100, Y: 300}, &quickhull.Point{X: 500, Y: 300}, &quickhull.Point{X: 300, Y: 100}
	opts := DefaultOptions
	opts.Label = "round 1"
	inside := &quickhull.Point{X: 300, Y: 250}
	ctx := Draw([]*quickhull.Point{a, b, c, inside}, quickhull.Chain{{Start: a, End: b}}, quickhull.Chain{{Start: a, End: c}, {Start: b, End: c}}, opts)

	img := ctx.Image()
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	r, g, bl, _ := img.At(300, 250).RGBA()
	assert.Equal(t, uint32(0xffff), r, "point is red")
	assert.Zero(t, g)
	assert.Zero(t, bl)

	r, g, bl, _ = img.At(300, 380).RGBA()
	assert.Zero(t, r+g+bl, "background is black")
}

func TestFitProjection(t *testing.T) {
	points := []*quickhull.Point{{X: -1, Y: -1}, {X: 1, Y: 0}}
	opts := Options{Width: 220, Height: 120, Padding: 10, Fit: true}
	project := fitProjection(points, opts)

	x, y := project(points[0])
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 10.0, y)
	x, y = project(points[1])
	assert.Equal(t, 210.0, x)
	assert.Equal(t, 110.0, y)

	t.Run("single point", func(t *testing.T) {
		p := &quickhull.Point{X: 5, Y: 5}
		x, y := fitProjection([]*quickhull.Point{p}, opts)(p)
		assert.Equal(t, 10.0, x)
		assert.Equal(t, 10.0, y)
	})
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hull.png")
	opts := DefaultOptions
	opts.Fit = true
	ctx := Draw([]*quickhull.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, nil, nil, opts)
	require.NoError(t, SavePNG(ctx, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
