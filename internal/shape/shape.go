// Package shape turns profile dimension records into validated polygons.
//
// Each supported profile family is a typed dimension record (all fields in
// millimeters) with its own generator. The generated polygons follow the
// geometry package winding convention: the outer outline winds positive,
// interior voids of hollow sections wind negative.
//
// Fillets and corner radii are approximated by circular arcs discretized
// into geometry.ArcSegments straight segments per quarter arc.
package shape

import (
	"fmt"

	"github.com/structcode/gosect/internal/geometry"
)

// Kind identifies a profile shape family.
type Kind string

const (
	KindISection Kind = "i-section" // rolled I/H profile (HEA, HEB, IPE)
	KindChannel  Kind = "channel"   // U profile (UPN), parallel-flange idealization
	KindCHS      Kind = "chs"       // circular hollow section
	KindRHS      Kind = "rhs"       // rectangular/square hollow section
	KindStrip    Kind = "strip"     // solid rectangular strip or plate
	KindAngle    Kind = "angle"     // equal or unequal leg L profile
)

// Shape is the capability interface every generated profile satisfies.
// SecondMoments are centroidal.
type Shape interface {
	Kind() Kind
	Polygons() []geometry.Polygon
	Area() float64
	Centroid() (geometry.Point, error)
	SecondMoments() (geometry.Integrals, error)
}

// Dimensions is implemented by the per-family dimension records.
type Dimensions interface {
	Validate() error
	kind() Kind
	polygons() []geometry.Polygon
}

// New builds a Shape from a dimension record, validating it first. This is
// the single factory for all shape kinds; the concrete type of dims selects
// the generator.
func New(dims Dimensions) (Shape, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &generated{k: dims.kind(), polys: dims.polygons()}, nil
}

// NewKind builds a Shape from a kind tag and a matching dimension record.
// It fails when the record does not belong to the kind.
func NewKind(k Kind, dims Dimensions) (Shape, error) {
	if dims.kind() != k {
		return nil, &DimensionError{Parameter: "kind", Reason: fmt.Sprintf("dimensions are for %q, not %q", dims.kind(), k)}
	}
	return New(dims)
}

// DimensionError reports an invalid or inconsistent profile dimension.
type DimensionError struct {
	Parameter string
	Reason    string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("shape: invalid dimension %s: %s", e.Parameter, e.Reason)
}

type generated struct {
	k     Kind
	polys []geometry.Polygon
}

func (g *generated) Kind() Kind { return g.k }

func (g *generated) Polygons() []geometry.Polygon { return g.polys }

func (g *generated) Area() float64 {
	var a float64
	for _, p := range g.polys {
		a += p.SignedArea()
	}
	return a
}

func (g *generated) Centroid() (geometry.Point, error) {
	m := g.integrals()
	if m.Area <= 0 {
		return geometry.Point{}, &geometry.GeometryError{Reason: "shape has zero or negative area"}
	}
	return geometry.Point{X: m.Sy / m.Area, Y: m.Sx / m.Area}, nil
}

func (g *generated) SecondMoments() (geometry.Integrals, error) {
	m := g.integrals()
	if m.Area <= 0 {
		return geometry.Integrals{}, &geometry.GeometryError{Reason: "shape has zero or negative area"}
	}
	cx := m.Sy / m.Area
	cy := m.Sx / m.Area
	// Parallel-axis transfer of the origin integrals to the centroid.
	m.Iyy -= m.Area * cy * cy
	m.Izz -= m.Area * cx * cx
	m.Ixy -= m.Area * cx * cy
	m.Sx = 0
	m.Sy = 0
	return m, nil
}

func (g *generated) integrals() geometry.Integrals {
	var sum geometry.Integrals
	for _, p := range g.polys {
		m := p.Integrals()
		sum.Area += m.Area
		sum.Sx += m.Sx
		sum.Sy += m.Sy
		sum.Iyy += m.Iyy
		sum.Izz += m.Izz
		sum.Ixy += m.Ixy
	}
	return sum
}

func positive(name string, v float64) error {
	if v <= 0 {
		return &DimensionError{Parameter: name, Reason: fmt.Sprintf("must be positive, got %g", v)}
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return &DimensionError{Parameter: name, Reason: fmt.Sprintf("must not be negative, got %g", v)}
	}
	return nil
}
