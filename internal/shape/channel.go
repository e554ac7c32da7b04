package shape

import (
	"math"

	"github.com/structcode/gosect/internal/geometry"
)

// ChannelDims describes a U profile with the web on the left, flanges
// pointing in +x. Tapered flanges of the rolled UPN series are idealized as
// parallel flanges of mean thickness; toe radii are neglected. The outline
// spans x ∈ [0, B] and is centered vertically on the origin.
type ChannelDims struct {
	H  float64 // overall height (mm)
	B  float64 // flange width (mm)
	Tw float64 // web thickness (mm)
	Tf float64 // flange thickness, mean (mm)
	R  float64 // root fillet radius (mm)
}

func (d ChannelDims) Validate() error {
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
	if d.Tw+d.R > d.B || 2*d.Tf+2*d.R > d.H {
		return &DimensionError{Parameter: "R", Reason: "root fillets do not fit inside the profile"}
	}
	return nil
}

func (d ChannelDims) kind() Kind { return KindChannel }

func (d ChannelDims) polygons() []geometry.Polygon {
	h2 := d.H / 2
	r := d.R
	segs := geometry.ArcSegments

	pts := []geometry.Point{
		{X: 0, Y: -h2},
		{X: d.B, Y: -h2},
		{X: d.B, Y: -h2 + d.Tf},
	}
	// Lower root fillet.
	pts = append(pts, geometry.Arc(geometry.Point{X: d.Tw + r, Y: -h2 + d.Tf + r}, r, -math.Pi/2, -math.Pi, segs)...)
	// Upper root fillet.
	pts = append(pts, geometry.Arc(geometry.Point{X: d.Tw + r, Y: h2 - d.Tf - r}, r, math.Pi, math.Pi/2, segs)...)
	pts = append(pts,
		geometry.Point{X: d.B, Y: h2 - d.Tf},
		geometry.Point{X: d.B, Y: h2},
		geometry.Point{X: 0, Y: h2},
	)

	return []geometry.Polygon{{Vertices: pts}}
}

// AngleDims describes an L profile with the heel at the origin, the
// horizontal leg along +x and the vertical leg along +y. Toe radii are
// neglected.
type AngleDims struct {
	H float64 // vertical leg length (mm)
	B float64 // horizontal leg length (mm)
	T float64 // leg thickness (mm)
	R float64 // root fillet radius (mm)
}

func (d AngleDims) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{{"H", d.H}, {"B", d.B}, {"T", d.T}} {
		if err := positive(c.name, c.v); err != nil {
			return err
		}
	}
	if err := nonNegative("R", d.R); err != nil {
		return err
	}
	if d.T >= d.B || d.T >= d.H {
		return &DimensionError{Parameter: "T", Reason: "thickness must be less than both leg lengths"}
	}
	if d.T+d.R > d.B || d.T+d.R > d.H {
		return &DimensionError{Parameter: "R", Reason: "root fillet does not fit inside the legs"}
	}
	return nil
}

func (d AngleDims) kind() Kind { return KindAngle }

func (d AngleDims) polygons() []geometry.Polygon {
	r := d.R
	segs := geometry.ArcSegments

	pts := []geometry.Point{
		{X: 0, Y: 0},
		{X: d.B, Y: 0},
		{X: d.B, Y: d.T},
	}
	// Root fillet between the legs.
	pts = append(pts, geometry.Arc(geometry.Point{X: d.T + r, Y: d.T + r}, r, -math.Pi/2, -math.Pi, segs)...)
	pts = append(pts,
		geometry.Point{X: d.T, Y: d.H},
		geometry.Point{X: 0, Y: d.H},
	)

	return []geometry.Polygon{{Vertices: pts}}
}
