package shape

import (
	"math"

	"github.com/structcode/gosect/internal/geometry"
)

// ISectionDims describes a doubly symmetric rolled I or H profile.
// The generated outline is centered on the origin.
type ISectionDims struct {
	H  float64 // overall height (mm)
	B  float64 // flange width (mm)
	Tw float64 // web thickness (mm)
	Tf float64 // flange thickness (mm)
	R  float64 // root fillet radius (mm)
}

func (d ISectionDims) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{{"H", d.H}, {"B", d.B}, {"Tw", d.Tw}, {"Tf", d.Tf}} {
		if err := positive(c.name, c.v); err != nil {
			return err
		}
	}
	if err := nonNegative("R", d.R); err != nil {
		return err
	}
	if d.Tw >= d.B {
		return &DimensionError{Parameter: "Tw", Reason: "web thickness must be less than flange width"}
	}
	if 2*d.Tf >= d.H {
		return &DimensionError{Parameter: "Tf", Reason: "flanges must be thinner than half the height"}
	}
	if d.Tw+2*d.R > d.B {
		return &DimensionError{Parameter: "R", Reason: "root fillets do not fit between web and flange tips"}
	}
	if 2*d.Tf+2*d.R > d.H {
		return &DimensionError{Parameter: "R", Reason: "root fillets do not fit between flanges"}
	}
	return nil
}

func (d ISectionDims) kind() Kind { return KindISection }

func (d ISectionDims) polygons() []geometry.Polygon {
	h2 := d.H / 2
	b2 := d.B / 2
	w2 := d.Tw / 2
	r := d.R
	segs := geometry.ArcSegments

	pts := []geometry.Point{
		{X: -b2, Y: -h2},
		{X: b2, Y: -h2},
		{X: b2, Y: -h2 + d.Tf},
	}
	// Lower-right root fillet: concave arc from the flange face up into the web.
	pts = append(pts, geometry.Arc(geometry.Point{X: w2 + r, Y: -h2 + d.Tf + r}, r, -math.Pi/2, -math.Pi, segs)...)
	// Upper-right root fillet.
	pts = append(pts, geometry.Arc(geometry.Point{X: w2 + r, Y: h2 - d.Tf - r}, r, math.Pi, math.Pi/2, segs)...)
	pts = append(pts,
		geometry.Point{X: b2, Y: h2 - d.Tf},
		geometry.Point{X: b2, Y: h2},
		geometry.Point{X: -b2, Y: h2},
		geometry.Point{X: -b2, Y: h2 - d.Tf},
	)
	// Upper-left root fillet.
	pts = append(pts, geometry.Arc(geometry.Point{X: -w2 - r, Y: h2 - d.Tf - r}, r, math.Pi/2, 0, segs)...)
	// Lower-left root fillet.
	pts = append(pts, geometry.Arc(geometry.Point{X: -w2 - r, Y: -h2 + d.Tf + r}, r, 0, -math.Pi/2, segs)...)
	pts = append(pts, geometry.Point{X: -b2, Y: -h2 + d.Tf})

	return []geometry.Polygon{{Vertices: pts}}
}

// StripDims describes a solid rectangular strip or plate, centered on the
// origin.
type StripDims struct {
	W float64 // width (mm)
	T float64 // thickness (mm)
}

func (d StripDims) Validate() error {
	if err := positive("W", d.W); err != nil {
		return err
	}
	return positive("T", d.T)
}

func (d StripDims) kind() Kind { return KindStrip }

func (d StripDims) polygons() []geometry.Polygon {
	w2 := d.W / 2
	t2 := d.T / 2
	return []geometry.Polygon{geometry.NewPolygon(
		geometry.Point{X: -w2, Y: -t2},
		geometry.Point{X: w2, Y: -t2},
		geometry.Point{X: w2, Y: t2},
		geometry.Point{X: -w2, Y: t2},
	)}
}
