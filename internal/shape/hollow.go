package shape

import (
	"math"

	"github.com/structcode/gosect/internal/geometry"
)

// CHSDims describes a circular hollow section centered on the origin.
type CHSDims struct {
	D float64 // outer diameter (mm)
	T float64 // wall thickness (mm)
}

func (d CHSDims) Validate() error {
	if err := positive("D", d.D); err != nil {
		return err
	}
	if err := positive("T", d.T); err != nil {
		return err
	}
	if 2*d.T >= d.D {
		return &DimensionError{Parameter: "T", Reason: "wall thickness must be less than half the diameter"}
	}
	return nil
}

func (d CHSDims) kind() Kind { return KindCHS }

func (d CHSDims) polygons() []geometry.Polygon {
	segs := 4 * geometry.ArcSegments
	outer := circle(d.D/2, segs, false)
	inner := circle(d.D/2-d.T, segs, true)
	return []geometry.Polygon{outer, inner}
}

// circle builds a full discretized circle centered on the origin. reversed
// selects clockwise winding (a hole).
func circle(r float64, segs int, reversed bool) geometry.Polygon {
	a0, a1 := 0.0, 2*math.Pi
	if reversed {
		a0, a1 = a1, a0
	}
	pts := geometry.Arc(geometry.Point{}, r, a0, a1, segs)
	return geometry.Polygon{Vertices: pts[:len(pts)-1]} // drop duplicated closing point
}

// RHSDims describes a rectangular (or square) hollow section centered on the
// origin, with rounded outer and inner corners.
type RHSDims struct {
	H  float64 // overall height (mm)
	B  float64 // overall width (mm)
	T  float64 // wall thickness (mm)
	Ro float64 // outer corner radius (mm)
	Ri float64 // inner corner radius (mm)
}

// HotFinishedRHS fills in the EN 10210 corner radii convention
// (ro = 1.5t, ri = 1.0t).
func HotFinishedRHS(h, b, t float64) RHSDims {
	return RHSDims{H: h, B: b, T: t, Ro: 1.5 * t, Ri: t}
}

func (d RHSDims) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{{"H", d.H}, {"B", d.B}, {"T", d.T}} {
		if err := positive(c.name, c.v); err != nil {
			return err
		}
	}
	if 2*d.T >= d.B || 2*d.T >= d.H {
		return &DimensionError{Parameter: "T", Reason: "wall thickness must be less than half the smaller side"}
	}
	if err := nonNegative("Ro", d.Ro); err != nil {
		return err
	}
	if err := nonNegative("Ri", d.Ri); err != nil {
		return err
	}
	if 2*d.Ro > math.Min(d.B, d.H) {
		return &DimensionError{Parameter: "Ro", Reason: "outer corner radius exceeds half the smaller side"}
	}
	if 2*d.Ri > math.Min(d.B, d.H)-2*d.T {
		return &DimensionError{Parameter: "Ri", Reason: "inner corner radius exceeds half the inner opening"}
	}
	return nil
}

func (d RHSDims) kind() Kind { return KindRHS }

func (d RHSDims) polygons() []geometry.Polygon {
	outer := roundedRect(d.B, d.H, d.Ro)
	inner := roundedRect(d.B-2*d.T, d.H-2*d.T, d.Ri)
	return []geometry.Polygon{outer, reverse(inner)}
}

// roundedRect builds a counter-clockwise rectangle of width b and height h
// centered on the origin, with corner radius r (sharp corners when r = 0).
func roundedRect(b, h, r float64) geometry.Polygon {
	b2, h2 := b/2, h/2
	if r <= 0 {
		return geometry.NewPolygon(
			geometry.Point{X: -b2, Y: -h2},
			geometry.Point{X: b2, Y: -h2},
			geometry.Point{X: b2, Y: h2},
			geometry.Point{X: -b2, Y: h2},
		)
	}
	segs := geometry.ArcSegments
	var pts []geometry.Point
	pts = append(pts, geometry.Arc(geometry.Point{X: b2 - r, Y: -h2 + r}, r, -math.Pi/2, 0, segs)...)
	pts = append(pts, geometry.Arc(geometry.Point{X: b2 - r, Y: h2 - r}, r, 0, math.Pi/2, segs)...)
	pts = append(pts, geometry.Arc(geometry.Point{X: -b2 + r, Y: h2 - r}, r, math.Pi/2, math.Pi, segs)...)
	pts = append(pts, geometry.Arc(geometry.Point{X: -b2 + r, Y: -h2 + r}, r, math.Pi, 3*math.Pi/2, segs)...)
	return geometry.Polygon{Vertices: pts}
}

// reverse flips the winding of a polygon, turning a solid into a hole.
func reverse(p geometry.Polygon) geometry.Polygon {
	n := len(p.Vertices)
	out := make([]geometry.Point, n)
	for i, v := range p.Vertices {
		out[n-1-i] = v
	}
	return geometry.Polygon{Vertices: out}
}
