package composite

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcode/gosect/internal/geometry"
)

var (
	steel    = Material{Name: "S235", E: 210000, Fy: 235}
	concrete = Material{Name: "C25/30", E: 31476, Fy: 25}
	b500     = Material{Name: "B500", E: 200000, Fy: 500}
)

func rectPoly(x0, y0, w, h float64) geometry.Polygon {
	return geometry.NewPolygon(
		geometry.Point{X: x0, Y: y0},
		geometry.Point{X: x0 + w, Y: y0},
		geometry.Point{X: x0 + w, Y: y0 + h},
		geometry.Point{X: x0, Y: y0 + h},
	)
}

func holePoly(x0, y0, w, h float64) geometry.Polygon {
	p := rectPoly(x0, y0, w, h)
	rev := make([]geometry.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		rev[len(rev)-1-i] = v
	}
	return geometry.Polygon{Vertices: rev}
}

func mustSection(t *testing.T, parts []Part, rebar []Rebar) *CrossSection {
	t.Helper()
	cs, err := New(parts, rebar)
	require.NoError(t, err)
	return cs
}

func TestProperties_Rectangle(t *testing.T) {
	cs := mustSection(t, []Part{{Label: "plate", Polygon: rectPoly(0, 0, 200, 400), Material: steel}}, nil)

	props, err := cs.Properties()
	require.NoError(t, err)

	assert.InDelta(t, 80000, props.Area, 1e-9)
	assert.InDelta(t, 100, props.CentroidX, 1e-9)
	assert.InDelta(t, 200, props.CentroidY, 1e-9)
	assert.InEpsilon(t, 200*math.Pow(400, 3)/12, props.Iyy, 1e-9)
	assert.InEpsilon(t, 400*math.Pow(200, 3)/12, props.Izz, 1e-9)
	assert.InDelta(t, 0, props.Ixy, 1e-3)

	// Wel = b·h²/6, Wpl = b·h²/4.
	assert.InEpsilon(t, 200*400*400/6, props.WelYTop, 1e-9)
	assert.InEpsilon(t, 200*400*400/6, props.WelYBottom, 1e-9)
	assert.InEpsilon(t, 200*400*400/4, props.WplY, 1e-9)
	assert.InEpsilon(t, 400*200*200/4, props.WplZ, 1e-9)

	// Symmetric fast path returns the centroid exactly.
	assert.Equal(t, 200.0, props.PlasticAxisY)
	assert.Equal(t, 100.0, props.PlasticAxisX)

	assert.InEpsilon(t, 400/math.Sqrt(12), props.GyrationY, 1e-9)
}

func TestProperties_ParallelAxisComposition(t *testing.T) {
	// Two 50×50 squares stacked with centers 100 mm apart vertically.
	cs := mustSection(t, []Part{
		{Polygon: rectPoly(-25, 25, 50, 50), Material: steel},
		{Polygon: rectPoly(-25, -75, 50, 50), Material: steel},
	}, nil)

	props, err := cs.Properties()
	require.NoError(t, err)

	iLocal := 50 * math.Pow(50, 3) / 12
	expected := 2*iLocal + 2*2500*50*50
	assert.InEpsilon(t, expected, props.Iyy, 1e-9)
	assert.InDelta(t, 0, props.CentroidY, 1e-9)
}

func TestProperties_HoleSubtracts(t *testing.T) {
	cs := mustSection(t, []Part{
		{Label: "outer", Polygon: rectPoly(-50, -50, 100, 100), Material: steel},
		{Label: "void", Polygon: holePoly(-40, -40, 80, 80), Material: steel},
	}, nil)

	props, err := cs.Properties()
	require.NoError(t, err)

	assert.InDelta(t, 100*100-80*80, props.Area, 1e-9)
	assert.InEpsilon(t, (math.Pow(100, 4)-math.Pow(80, 4))/12, props.Iyy, 1e-9)
}

func TestProperties_AsymmetricPlasticAxis(t *testing.T) {
	// T-section: 50×150 web below a 200×50 flange. The equal-area axis sits
	// inside the flange at y = 156.25.
	cs := mustSection(t, []Part{
		{Label: "web", Polygon: rectPoly(-25, 0, 50, 150), Material: steel},
		{Label: "flange", Polygon: rectPoly(-100, 150, 200, 50), Material: steel},
	}, nil)

	props, err := cs.Properties()
	require.NoError(t, err)

	assert.InDelta(t, 156.25, props.PlasticAxisY, 1e-6)
	assert.InDelta(t, 804687.5, props.WplY, 1)
	assert.NotEqual(t, props.PlasticAxisY, props.CentroidY)
	assert.Greater(t, props.WelYBottom, props.WelYTop, "bottom fiber is farther from the centroid")
}

func TestProperties_PlasticNotBelowElastic(t *testing.T) {
	// Doubly symmetric I-shape assembled from three strips.
	cs := mustSection(t, []Part{
		{Label: "top flange", Polygon: rectPoly(-75, 140, 150, 10), Material: steel},
		{Label: "web", Polygon: rectPoly(-4, -140, 8, 280), Material: steel},
		{Label: "bottom flange", Polygon: rectPoly(-75, -150, 150, 10), Material: steel},
	}, nil)

	props, err := cs.Properties()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, props.WplY, props.WelYTop)
	assert.GreaterOrEqual(t, props.WplZ, props.WelZLeft)
	assert.Equal(t, props.CentroidY, props.PlasticAxisY)
}

func TestTransformedProperties(t *testing.T) {
	// 300×500 concrete section with two bars near the bottom.
	bars := []Rebar{
		{Area: 314.16, At: geometry.Point{X: 75, Y: 50}, Material: b500},
		{Area: 314.16, At: geometry.Point{X: 225, Y: 50}, Material: b500},
	}
	cs := mustSection(t, []Part{{Label: "concrete", Polygon: rectPoly(0, 0, 300, 500), Material: concrete}}, bars)

	geo, err := cs.Properties()
	require.NoError(t, err)
	trans, err := cs.TransformedProperties(concrete)
	require.NoError(t, err)

	n := b500.E / concrete.E
	assert.InEpsilon(t, 150000+2*314.16, geo.Area, 1e-9)
	assert.InEpsilon(t, 150000+2*n*314.16, trans.Area, 1e-9)
	assert.Less(t, trans.CentroidY, geo.CentroidY, "stiff bars pull the weighted centroid down")

	// Same-material reference degenerates to the geometric result.
	same, err := cs.TransformedProperties(b500)
	require.NoError(t, err)
	assert.InEpsilon(t, geo.CentroidY, same.CentroidY, 1e-9)

	_, err = cs.TransformedProperties(Material{Name: "bad"})
	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)
}

func TestNew_Validation(t *testing.T) {
	var layoutErr *LayoutError

	_, err := New(nil, nil)
	require.ErrorAs(t, err, &layoutErr)

	_, err = New([]Part{{Polygon: geometry.NewPolygon(geometry.Point{}, geometry.Point{X: 1}), Material: steel}}, nil)
	require.ErrorAs(t, err, &layoutErr)

	p := rectPoly(0, 0, 100, 100)
	_, err = New([]Part{
		{Label: "a", Polygon: p, Material: steel},
		{Label: "b", Polygon: p, Material: steel},
	}, nil)
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Error(), "duplicates")

	_, err = New([]Part{{Polygon: p, Material: Material{Name: "void"}}}, nil)
	require.ErrorAs(t, err, &layoutErr)
}

func TestNew_RebarValidation(t *testing.T) {
	var layoutErr *LayoutError
	part := Part{Polygon: rectPoly(0, 0, 300, 500), Material: concrete}

	_, err := New([]Part{part}, []Rebar{{Area: 314, At: geometry.Point{X: 400, Y: 50}, Material: b500}})
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Error(), "outside")

	_, err = New([]Part{part}, []Rebar{{Area: -1, At: geometry.Point{X: 150, Y: 50}, Material: b500}})
	require.ErrorAs(t, err, &layoutErr)

	// A bar inside a hole is rejected too.
	_, err = New(
		[]Part{part, {Label: "duct", Polygon: holePoly(100, 200, 100, 100), Material: concrete}},
		[]Rebar{{Area: 314, At: geometry.Point{X: 150, Y: 250}, Material: b500}},
	)
	require.ErrorAs(t, err, &layoutErr)
}

func TestProperties_DegenerateSection(t *testing.T) {
	cs := mustSection(t, []Part{{Label: "void", Polygon: holePoly(0, 0, 100, 100), Material: steel}}, nil)

	_, err := cs.Properties()
	var degErr *DegenerateError
	require.ErrorAs(t, err, &degErr)
}

func TestDefinition_RoundTrip(t *testing.T) {
	def := Definition{
		Name: "RC beam",
		Parts: []PartDef{{
			Label:    "concrete",
			Material: concrete,
			Vertices: rectPoly(0, 0, 300, 500).Vertices,
		}},
		Rebar: []RebarDef{{Area: 314.16, X: 75, Y: 50, Material: b500}},
	}
	data, err := json.MarshalIndent(def, "", "  ")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "beam.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RC beam", loaded.Name)

	cs, err := loaded.CrossSection()
	require.NoError(t, err)
	props, err := cs.Properties()
	require.NoError(t, err)
	assert.InEpsilon(t, 150000+314.16, props.Area, 1e-9)
}
