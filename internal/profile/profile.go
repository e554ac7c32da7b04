// Package profile holds the standard rolled-profile dimension tables and
// builds shapes from them. The tables are immutable package data assembled
// once at load; the shape generators never consult them on their own — a
// dimensions record is always passed in explicitly.
package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/structcode/gosect/internal/shape"
)

// Family groups profiles of one catalog series.
type Family string

const (
	FamilyHEA Family = "HEA" // European wide-flange, light series
	FamilyHEB Family = "HEB" // European wide-flange, normal series
	FamilyIPE Family = "IPE" // European I profiles
	FamilyUPN Family = "UPN" // European channels (tapered flanges, idealized)
	FamilyCHS Family = "CHS" // circular hollow sections, EN 10210
	FamilySHS Family = "SHS" // square hollow sections, EN 10210
	FamilyL   Family = "L"   // equal-leg angles
)

// Families lists the supported series.
var Families = []Family{FamilyHEA, FamilyHEB, FamilyIPE, FamilyUPN, FamilyCHS, FamilySHS, FamilyL}

// Dimensions is the read-only catalog record for one profile. Only the
// fields relevant to the family are set. CatalogArea carries the published
// cross-section area and exists for verification, not for computation.
type Dimensions struct {
	Name   string
	Family Family

	H  float64 // overall height (mm)
	B  float64 // width / flange width (mm)
	Tw float64 // web thickness (mm)
	Tf float64 // flange thickness (mm)
	R  float64 // root fillet radius (mm)
	D  float64 // outer diameter (mm), CHS only
	T  float64 // wall or leg thickness (mm), hollow sections and angles

	CatalogArea float64 // published area (mm²)
}

// NotFoundError reports a failed profile lookup.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile: no profile named %q", e.Name)
}

// Lookup finds a profile by name. Lookup is tolerant of case, spaces and
// separators: "hea 200", "HEA-200" and "HEA200" resolve to the same record.
func Lookup(name string) (Dimensions, error) {
	d, ok := catalog[normalize(name)]
	if !ok {
		return Dimensions{}, &NotFoundError{Name: name}
	}
	return d, nil
}

// List returns the profiles of one family in catalog order.
func List(f Family) []Dimensions {
	var out []Dimensions
	for _, d := range catalog {
		if d.Family == f {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].H != out[j].H {
			return out[i].H < out[j].H
		}
		return out[i].D < out[j].D
	})
	return out
}

// Build generates the shape for a catalog record.
func Build(d Dimensions) (shape.Shape, error) {
	switch d.Family {
	case FamilyHEA, FamilyHEB, FamilyIPE:
		return shape.New(shape.ISectionDims{H: d.H, B: d.B, Tw: d.Tw, Tf: d.Tf, R: d.R})
	case FamilyUPN:
		return shape.New(shape.ChannelDims{H: d.H, B: d.B, Tw: d.Tw, Tf: d.Tf, R: d.R})
	case FamilyCHS:
		return shape.New(shape.CHSDims{D: d.D, T: d.T})
	case FamilySHS:
		return shape.New(shape.HotFinishedRHS(d.H, d.B, d.T))
	case FamilyL:
		return shape.New(shape.AngleDims{H: d.H, B: d.B, T: d.T, R: d.R})
	default:
		return nil, &NotFoundError{Name: d.Name}
	}
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ' || r == '-' || r == '_':
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}
