package composite

import (
	"math"

	"github.com/structcode/gosect/internal/geometry"
)

// Plastic neutral-axis search tolerances. The cumulative clipped area is
// monotone in the axis position, so bisection converges unconditionally;
// where a whole interval of axis positions balances the areas (a void at
// mid-height) the search settles on the interval midpoint.
const (
	plasticAreaTol  = 1e-9 // relative half-area imbalance
	plasticAxisTol  = 1e-9 // mm, bisection interval width
	plasticMaxIters = 200
)

// plasticHorizontal finds the horizontal plastic neutral axis (the y level
// splitting the weighted area in half) and the plastic section modulus about
// it: the sum of the absolute first moments of the two halves.
func (cs *CrossSection) plasticHorizontal(w weightFn, area, centroidY, minY, maxY float64) (wpl, axis float64) {
	below := func(level float64) float64 {
		var a float64
		for _, p := range cs.parts {
			a += w(p.Material) * p.Polygon.ClipBelow(level).Integrals().Area
		}
		for _, r := range cs.rebar {
			if r.At.Y <= level {
				a += w(r.Material) * r.Area
			}
		}
		return a
	}

	half := area / 2
	tol := plasticAreaTol * area

	// Symmetric fast path: when the elastic centroid already balances the
	// halves, it is the plastic axis and no search runs.
	if math.Abs(below(centroidY)-half) <= tol {
		axis = centroidY
	} else {
		lo, hi := minY, maxY
		axis = (lo + hi) / 2
		for i := 0; i < plasticMaxIters; i++ {
			imbalance := below(axis) - half
			if math.Abs(imbalance) <= tol || hi-lo <= plasticAxisTol {
				break
			}
			if imbalance < 0 {
				lo = axis
			} else {
				hi = axis
			}
			axis = (lo + hi) / 2
		}
	}

	// Wpl = |Q_above| + |Q_below| about the plastic axis.
	var qAbove, qBelow float64
	for _, p := range cs.parts {
		n := w(p.Material)
		mb := p.Polygon.ClipBelow(axis).Integrals()
		ma := p.Polygon.ClipAbove(axis).Integrals()
		qBelow += n * (mb.Sx - axis*mb.Area)
		qAbove += n * (ma.Sx - axis*ma.Area)
	}
	for _, r := range cs.rebar {
		q := w(r.Material) * r.Area * (r.At.Y - axis)
		if r.At.Y >= axis {
			qAbove += q
		} else {
			qBelow += q
		}
	}
	return qAbove - qBelow, axis
}

// plasticVertical runs the same search about a vertical axis by transposing
// the section and reusing the horizontal machinery.
func (cs *CrossSection) plasticVertical(w weightFn, area, centroidX, minX, maxX float64) (wpl, axis float64) {
	return cs.transposed().plasticHorizontal(w, area, centroidX, minX, maxX)
}

// transposed returns a copy of the section with x and y swapped. Vertex
// order is reversed so winding signs survive the swap.
func (cs *CrossSection) transposed() *CrossSection {
	out := &CrossSection{
		parts: make([]Part, len(cs.parts)),
		rebar: make([]Rebar, len(cs.rebar)),
	}
	for i, p := range cs.parts {
		n := len(p.Polygon.Vertices)
		vs := make([]geometry.Point, n)
		for j, v := range p.Polygon.Vertices {
			vs[n-1-j] = geometry.Point{X: v.Y, Y: v.X}
		}
		out.parts[i] = Part{Label: p.Label, Polygon: geometry.Polygon{Vertices: vs}, Material: p.Material}
	}
	for i, r := range cs.rebar {
		out.rebar[i] = Rebar{Label: r.Label, Area: r.Area, At: geometry.Point{X: r.At.Y, Y: r.At.X}, Material: r.Material}
	}
	return out
}
