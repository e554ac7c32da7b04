package rebar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcode/gosect/internal/geometry"
)

// beam300x500 is a typical beam boundary with 35 mm cover and Ø20 bars.
// Bar centers inset by cover + Ø/2 = 45 mm.
var beam300x500 = Config{
	Boundary: Boundary{Width: 300, Height: 500},
	Diameter: 20,
	Cover:    35,
}

func TestMinSpacing(t *testing.T) {
	assert.InDelta(t, 20, MinSpacing(12, 0), 1e-12)
	assert.InDelta(t, 25, MinSpacing(25, 16), 1e-12)
	assert.InDelta(t, 37, MinSpacing(20, 32), 1e-12, "aggregate + 5 governs")
}

func TestBarArea(t *testing.T) {
	assert.InDelta(t, math.Pi*100, BarArea(20), 1e-9)
}

func TestCorners(t *testing.T) {
	pts, err := Corners(beam300x500)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	assert.Equal(t, geometry.Point{X: 45, Y: 45}, pts[0])
	assert.Equal(t, geometry.Point{X: 255, Y: 45}, pts[1])
	assert.Equal(t, geometry.Point{X: 255, Y: 455}, pts[2])
	assert.Equal(t, geometry.Point{X: 45, Y: 455}, pts[3])
}

func TestBottomRow(t *testing.T) {
	pts, err := BottomRow(beam300x500, 4)
	require.NoError(t, err)
	require.Len(t, pts, 4)

	// Admissible width 210 mm over three gaps: 70 mm pitch.
	for i, p := range pts {
		assert.InDelta(t, 45+float64(i)*70, p.X, 1e-9)
		assert.InDelta(t, 45, p.Y, 1e-9)
	}

	single, err := BottomRow(beam300x500, 1)
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.InDelta(t, 150, single[0].X, 1e-9)
}

func TestBottomRow_SpacingViolation(t *testing.T) {
	var layoutErr *LayoutError

	// Ten Ø20 bars across 210 mm: pitch 23.3 mm, clear 3.3 mm.
	_, err := BottomRow(beam300x500, 10)
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Error(), "clear spacing")

	_, err = BottomRow(beam300x500, 0)
	require.ErrorAs(t, err, &layoutErr)
}

func TestExplicit(t *testing.T) {
	pts, err := Explicit(beam300x500, []geometry.Point{
		{X: 45, Y: 45},
		{X: 150, Y: 45},
		{X: 255, Y: 45},
	})
	require.NoError(t, err)
	assert.Len(t, pts, 3)

	var layoutErr *LayoutError
	_, err = Explicit(beam300x500, []geometry.Point{{X: 10, Y: 45}})
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Error(), "cover")

	_, err = Explicit(beam300x500, []geometry.Point{{X: 100, Y: 45}, {X: 110, Y: 45}})
	require.ErrorAs(t, err, &layoutErr)

	_, err = Explicit(beam300x500, nil)
	require.ErrorAs(t, err, &layoutErr)
}

func TestConfig_Validation(t *testing.T) {
	var layoutErr *LayoutError

	_, err := Corners(Config{Boundary: Boundary{Width: 0, Height: 500}, Diameter: 20, Cover: 35})
	require.ErrorAs(t, err, &layoutErr)

	_, err = Corners(Config{Boundary: Boundary{Width: 300, Height: 500}, Cover: 35})
	require.ErrorAs(t, err, &layoutErr)

	// Cover consumes the whole boundary.
	_, err = Corners(Config{Boundary: Boundary{Width: 100, Height: 100}, Diameter: 20, Cover: 45})
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Error(), "no room")
}
