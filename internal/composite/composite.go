// Package composite assembles polygon parts and point reinforcement into
// cross-sections and computes their section properties.
//
// A cross-section owns its parts. Parts and the section itself are immutable
// after construction; properties are recomputed on demand. Validation is
// eager: invalid geometry is rejected at construction and never reaches the
// property calculator.
package composite

import (
	"fmt"

	"github.com/structcode/gosect/internal/geometry"
)

// Material carries the mechanical data the engine consumes: the elastic
// modulus drives modulus-weighted (transformed) properties, the strength
// grade is passed through for downstream code checks.
type Material struct {
	Name string  `json:"name"`
	E    float64 `json:"e"`  // elastic modulus (MPa)
	Fy   float64 `json:"fy"` // strength grade: yield or characteristic strength (MPa)
}

// Part binds one polygon to a material. Winding selects sign: positive adds
// solid material, negative subtracts a hole.
type Part struct {
	Label    string           `json:"label,omitempty"`
	Polygon  geometry.Polygon `json:"polygon"`
	Material Material         `json:"material"`
}

// Rebar is a point-reinforcement entry: a concentrated area at a location,
// with no outline of its own. Rebar areas always add.
type Rebar struct {
	Label    string         `json:"label,omitempty"`
	Area     float64        `json:"area"` // mm²
	At       geometry.Point `json:"at"`
	Material Material       `json:"material"`
}

// CrossSection is an ordered collection of parts plus point reinforcement.
type CrossSection struct {
	parts []Part
	rebar []Rebar
}

// LayoutError reports an invalid part or reinforcement arrangement. Part
// names the offender.
type LayoutError struct {
	Part   string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("composite: %s: %s", e.Part, e.Reason)
}

// DegenerateError reports a section whose total area is zero or negative, a
// state the property formulas cannot divide through.
type DegenerateError struct {
	Reason string
}

func (e *DegenerateError) Error() string {
	return "composite: degenerate section: " + e.Reason
}

// New builds a cross-section from parts and optional reinforcement,
// validating every entry. The inputs are copied; the caller keeps no handle
// into the section's state.
func New(parts []Part, rebar []Rebar) (*CrossSection, error) {
	if len(parts) == 0 {
		return nil, &LayoutError{Part: "section", Reason: "needs at least one part"}
	}
	for i, p := range parts {
		name := partName(i, p.Label)
		if err := p.Polygon.Validate(); err != nil {
			return nil, &LayoutError{Part: name, Reason: err.Error()}
		}
		if p.Material.E <= 0 {
			return nil, &LayoutError{Part: name, Reason: fmt.Sprintf("material %q needs a positive elastic modulus", p.Material.Name)}
		}
		for j := 0; j < i; j++ {
			if samePolygon(p.Polygon, parts[j].Polygon) {
				return nil, &LayoutError{Part: name, Reason: fmt.Sprintf("duplicates the geometry of %s", partName(j, parts[j].Label))}
			}
		}
	}
	for i, r := range rebar {
		name := rebarName(i, r.Label)
		if r.Area <= 0 {
			return nil, &LayoutError{Part: name, Reason: fmt.Sprintf("needs a positive area, got %g", r.Area)}
		}
		if r.Material.E <= 0 {
			return nil, &LayoutError{Part: name, Reason: fmt.Sprintf("material %q needs a positive elastic modulus", r.Material.Name)}
		}
		if !insideSolid(parts, r.At) {
			return nil, &LayoutError{Part: name, Reason: fmt.Sprintf("location (%g, %g) lies outside the solid parts", r.At.X, r.At.Y)}
		}
	}
	cs := &CrossSection{
		parts: append([]Part(nil), parts...),
		rebar: append([]Rebar(nil), rebar...),
	}
	return cs, nil
}

// Parts returns a copy of the part list, e.g. for rendering.
func (cs *CrossSection) Parts() []Part {
	return append([]Part(nil), cs.parts...)
}

// Reinforcement returns a copy of the rebar entries.
func (cs *CrossSection) Reinforcement() []Rebar {
	return append([]Rebar(nil), cs.rebar...)
}

// Bounds returns the bounding box over all parts.
func (cs *CrossSection) Bounds() (minX, minY, maxX, maxY float64) {
	first := true
	for _, p := range cs.parts {
		x0, y0, x1, y1 := p.Polygon.Bounds()
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	return minX, minY, maxX, maxY
}

func partName(i int, label string) string {
	if label != "" {
		return fmt.Sprintf("part %q", label)
	}
	return fmt.Sprintf("part %d", i+1)
}

func rebarName(i int, label string) string {
	if label != "" {
		return fmt.Sprintf("rebar %q", label)
	}
	return fmt.Sprintf("rebar %d", i+1)
}

// samePolygon reports whether two polygons carry identical vertex rings in
// the same order and winding.
func samePolygon(a, b geometry.Polygon) bool {
	if len(a.Vertices) != len(b.Vertices) {
		return false
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			return false
		}
	}
	return true
}

// insideSolid reports whether a point lies in the union of solid parts and
// outside every hole.
func insideSolid(parts []Part, pt geometry.Point) bool {
	solid := false
	for _, p := range parts {
		if !p.Polygon.Contains(pt) {
			continue
		}
		if p.Polygon.SignedArea() >= 0 {
			solid = true
		} else {
			return false
		}
	}
	return solid
}
