package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(w, h float64) Polygon {
	return NewPolygon(
		Point{X: 0, Y: 0},
		Point{X: w, Y: 0},
		Point{X: w, Y: h},
		Point{X: 0, Y: h},
	)
}

func TestSignedArea_Rectangle(t *testing.T) {
	p := rect(200, 400)
	assert.InDelta(t, 80000, p.SignedArea(), 1e-9)
	assert.InDelta(t, 80000, p.Area(), 1e-9)
}

func TestSignedArea_WindingSign(t *testing.T) {
	p := rect(100, 100)
	hole := Polygon{Vertices: []Point{p.Vertices[3], p.Vertices[2], p.Vertices[1], p.Vertices[0]}}
	assert.Positive(t, p.SignedArea())
	assert.Negative(t, hole.SignedArea())
	assert.InDelta(t, p.Area(), hole.Area(), 1e-9)
}

func TestCentroid_Rectangle(t *testing.T) {
	c, err := rect(200, 400).Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 100, c.X, 1e-9)
	assert.InDelta(t, 200, c.Y, 1e-9)
}

func TestCentroid_Triangle(t *testing.T) {
	p := NewPolygon(Point{X: 0, Y: 0}, Point{X: 90, Y: 0}, Point{X: 0, Y: 30})
	c, err := p.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 30, c.X, 1e-9)
	assert.InDelta(t, 10, c.Y, 1e-9)
}

func TestIntegrals_RectangleSecondMoments(t *testing.T) {
	// About the origin: Iyy = b·h³/3 for a rectangle sitting on the x-axis.
	m := rect(200, 400).Integrals()
	assert.InEpsilon(t, 200*math.Pow(400, 3)/3, m.Iyy, 1e-12)
	assert.InEpsilon(t, 400*math.Pow(200, 3)/3, m.Izz, 1e-12)

	// Transferred to the centroid: b·h³/12.
	cy := m.Sx / m.Area
	assert.InEpsilon(t, 1.0666666667e9, m.Iyy-m.Area*cy*cy, 1e-6)
}

func TestIntegrals_HoleCarriesNegativeSign(t *testing.T) {
	solid := rect(100, 100)
	rev := make([]Point, len(solid.Vertices))
	for i, v := range solid.Vertices {
		rev[len(rev)-1-i] = v
	}
	hole := Polygon{Vertices: rev}

	assert.InDelta(t, -solid.Integrals().Area, hole.Integrals().Area, 1e-9)
	assert.InDelta(t, -solid.Integrals().Iyy, hole.Integrals().Iyy, 1e-6)
	assert.InDelta(t, -solid.Integrals().Sx, hole.Integrals().Sx, 1e-9)
}

func TestValidate(t *testing.T) {
	var geomErr *GeometryError

	err := NewPolygon(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}).Validate()
	require.ErrorAs(t, err, &geomErr)

	err = NewPolygon(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, Point{X: 0, Y: 0}, Point{X: 1, Y: 1}).Validate()
	require.ErrorAs(t, err, &geomErr)

	assert.NoError(t, rect(10, 10).Validate())
}

func TestTranslate(t *testing.T) {
	p := rect(200, 400).Translate(50, -100)
	assert.InDelta(t, 80000, p.SignedArea(), 1e-9)
	c, err := p.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 150, c.X, 1e-9)
	assert.InDelta(t, 100, c.Y, 1e-9)
}

func TestMirror_PreservesWinding(t *testing.T) {
	p := NewPolygon(Point{X: 0, Y: 0}, Point{X: 90, Y: 0}, Point{X: 0, Y: 30})
	my := p.MirrorY(0)
	mx := p.MirrorX(0)
	assert.InDelta(t, p.SignedArea(), my.SignedArea(), 1e-9)
	assert.InDelta(t, p.SignedArea(), mx.SignedArea(), 1e-9)

	c, err := my.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, -30, c.X, 1e-9)
}

func TestClipBelow(t *testing.T) {
	p := rect(200, 400)

	lower := p.ClipBelow(100)
	assert.InDelta(t, 20000, lower.SignedArea(), 1e-9)

	upper := p.ClipAbove(100)
	assert.InDelta(t, 60000, upper.SignedArea(), 1e-9)

	assert.Empty(t, p.ClipBelow(-1).Vertices)
	assert.InDelta(t, 80000, p.ClipBelow(500).SignedArea(), 1e-9)
}

func TestClip_PreservesHoleSign(t *testing.T) {
	rev := make([]Point, 4)
	for i, v := range rect(100, 100).Vertices {
		rev[3-i] = v
	}
	hole := Polygon{Vertices: rev}
	assert.InDelta(t, -5000, hole.ClipBelow(50).SignedArea(), 1e-9)
}

func TestContains(t *testing.T) {
	p := rect(200, 400)
	assert.True(t, p.Contains(Point{X: 100, Y: 200}))
	assert.True(t, p.Contains(Point{X: 0, Y: 200}), "edge point")
	assert.False(t, p.Contains(Point{X: -1, Y: 200}))
	assert.False(t, p.Contains(Point{X: 100, Y: 401}))
}

func TestArc(t *testing.T) {
	pts := Arc(Point{}, 10, 0, math.Pi/2, 8)
	require.Len(t, pts, 9)
	assert.InDelta(t, 10, pts[0].X, 1e-12)
	assert.InDelta(t, 0, pts[0].Y, 1e-12)
	assert.InDelta(t, 0, pts[8].X, 1e-12)
	assert.InDelta(t, 10, pts[8].Y, 1e-12)
	for _, p := range pts {
		assert.InDelta(t, 10, math.Hypot(p.X, p.Y), 1e-12)
	}
}
