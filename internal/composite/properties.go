package composite

import (
	"math"
)

// SectionProperties is the computed result record for a cross-section. All
// second moments are about the centroidal axes: the y-axis is horizontal,
// the z-axis vertical, so Iyy resists bending that curves the section about
// a horizontal axis. The record is a pure function output and is never
// cached or mutated by the engine.
type SectionProperties struct {
	Area float64 // mm²

	CentroidX float64 // mm
	CentroidY float64 // mm

	Iyy float64 // mm⁴, ∫(y-ȳ)² dA about the horizontal centroidal axis
	Izz float64 // mm⁴, ∫(x-x̄)² dA about the vertical centroidal axis
	Ixy float64 // mm⁴, centroidal product moment

	// Elastic section moduli for each extreme fiber (mm³). Top/Bottom
	// belong to Iyy, Left/Right to Izz. Symmetric sections report equal
	// pairs.
	WelYTop    float64
	WelYBottom float64
	WelZLeft   float64
	WelZRight  float64

	// Plastic section moduli (mm³) and the neutral-axis positions the
	// equal-area search converged to.
	WplY         float64
	WplZ         float64
	PlasticAxisY float64 // y of the horizontal plastic neutral axis (mm)
	PlasticAxisX float64 // x of the vertical plastic neutral axis (mm)

	// Radii of gyration (mm).
	GyrationY float64
	GyrationZ float64

	// Bounding box of the part outlines (mm).
	MinX, MinY, MaxX, MaxY float64
	Width, Height          float64
}

// weightFn maps a material to its area weighting factor.
type weightFn func(Material) float64

func unitWeight(Material) float64 { return 1 }

// Properties computes the geometric section properties.
func (cs *CrossSection) Properties() (*SectionProperties, error) {
	return cs.calculate(unitWeight)
}

// TransformedProperties computes modulus-weighted properties: every part and
// rebar area is scaled by the ratio of its elastic modulus to the reference
// material's modulus. With a concrete reference this yields the classic
// transformed reinforced-concrete section.
func (cs *CrossSection) TransformedProperties(ref Material) (*SectionProperties, error) {
	if ref.E <= 0 {
		return nil, &LayoutError{Part: "reference material", Reason: "needs a positive elastic modulus"}
	}
	return cs.calculate(func(m Material) float64 { return m.E / ref.E })
}

func (cs *CrossSection) calculate(w weightFn) (*SectionProperties, error) {
	props := &SectionProperties{}
	props.MinX, props.MinY, props.MaxX, props.MaxY = cs.Bounds()
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Weighted area integrals about the global origin. Holes carry negative
	// signed integrals, so plain summation subtracts them.
	var area, sx, sy, iyy, izz, ixy float64
	for _, p := range cs.parts {
		n := w(p.Material)
		m := p.Polygon.Integrals()
		area += n * m.Area
		sx += n * m.Sx
		sy += n * m.Sy
		iyy += n * m.Iyy
		izz += n * m.Izz
		ixy += n * m.Ixy
	}
	// Rebar: concentrated areas, no local second moment of their own.
	for _, r := range cs.rebar {
		na := w(r.Material) * r.Area
		area += na
		sx += na * r.At.Y
		sy += na * r.At.X
		iyy += na * r.At.Y * r.At.Y
		izz += na * r.At.X * r.At.X
		ixy += na * r.At.X * r.At.Y
	}

	if area <= 0 {
		return nil, &DegenerateError{Reason: "total area is not positive; holes outweigh solid material"}
	}

	props.Area = area
	props.CentroidX = sy / area
	props.CentroidY = sx / area

	// Parallel-axis transfer from the origin to the centroid.
	props.Iyy = iyy - area*props.CentroidY*props.CentroidY
	props.Izz = izz - area*props.CentroidX*props.CentroidX
	props.Ixy = ixy - area*props.CentroidX*props.CentroidY

	if d := props.MaxY - props.CentroidY; d > 0 {
		props.WelYTop = props.Iyy / d
	}
	if d := props.CentroidY - props.MinY; d > 0 {
		props.WelYBottom = props.Iyy / d
	}
	if d := props.MaxX - props.CentroidX; d > 0 {
		props.WelZRight = props.Izz / d
	}
	if d := props.CentroidX - props.MinX; d > 0 {
		props.WelZLeft = props.Izz / d
	}

	props.GyrationY = math.Sqrt(props.Iyy / area)
	props.GyrationZ = math.Sqrt(props.Izz / area)

	props.WplY, props.PlasticAxisY = cs.plasticHorizontal(w, area, props.CentroidY, props.MinY, props.MaxY)
	props.WplZ, props.PlasticAxisX = cs.plasticVertical(w, area, props.CentroidX, props.MinX, props.MaxX)

	return props, nil
}
