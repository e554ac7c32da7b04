// Package eurocode provides the material reference data and coefficient
// formulas the section engine and its callers share: structural steel grades
// per EN 10025-2 / EN 1993-1-1, concrete classes per EN 1992-1-1 and
// reinforcing steel per EN 10080.
package eurocode

import (
	"math"

	"github.com/structcode/gosect/internal/composite"
)

const (
	// Structural steel elastic constants, EN 1993-1-1 Section 3.2.6.
	Es       = 210000.0 // modulus of elasticity (MPa)
	Gs       = 81000.0  // shear modulus (MPa)
	NuSteel  = 0.3      // Poisson's ratio
	RhoSteel = 7850.0   // density (kg/m³)

	// Reinforcing steel, EN 1992-1-1 Section 3.2.7.
	EsRebar = 200000.0 // MPa

	// Partial factors, EN 1993-1-1 Section 6.1 and EN 1992-1-1 Table 2.1N.
	GammaM0 = 1.00 // resistance of cross-sections
	GammaM1 = 1.00 // resistance to instability
	GammaM2 = 1.25 // resistance of net sections / connections
	GammaC  = 1.50 // concrete
	GammaS  = 1.15 // reinforcing steel
)

// SteelGrade holds the nominal strengths of a structural steel grade for the
// thickness bands of EN 1993-1-1 Table 3.1.
type SteelGrade struct {
	Name    string
	FyThin  float64 // fy for t ≤ 40 mm (MPa)
	FuThin  float64 // fu for t ≤ 40 mm (MPa)
	FyThick float64 // fy for 40 < t ≤ 80 mm (MPa)
	FuThick float64 // fu for 40 < t ≤ 80 mm (MPa)
}

// Standard grades, EN 1993-1-1 Table 3.1.
var (
	S235 = SteelGrade{Name: "S235", FyThin: 235, FuThin: 360, FyThick: 215, FuThick: 360}
	S275 = SteelGrade{Name: "S275", FyThin: 275, FuThin: 430, FyThick: 255, FuThick: 410}
	S355 = SteelGrade{Name: "S355", FyThin: 355, FuThin: 510, FyThick: 335, FuThick: 470}
	S460 = SteelGrade{Name: "S460", FyThin: 460, FuThin: 540, FyThick: 410, FuThick: 550}
)

// SteelGrades lists the supported grades in ascending strength order.
var SteelGrades = []SteelGrade{S235, S275, S355, S460}

// Fy returns the nominal yield strength for an element thickness t (mm).
func (g SteelGrade) Fy(t float64) float64 {
	if t <= 40 {
		return g.FyThin
	}
	return g.FyThick
}

// Fu returns the nominal ultimate strength for an element thickness t (mm).
func (g SteelGrade) Fu(t float64) float64 {
	if t <= 40 {
		return g.FuThin
	}
	return g.FuThick
}

// Material builds the composite material record for the grade at element
// thickness t.
func (g SteelGrade) Material(t float64) composite.Material {
	return composite.Material{Name: g.Name, E: Es, Fy: g.Fy(t)}
}

// Epsilon is the section-classification strain parameter ε = √(235/fy),
// EN 1993-1-1 Table 5.2.
func Epsilon(fy float64) float64 {
	return math.Sqrt(235 / fy)
}

// ConcreteClass holds the strength data of a concrete class per
// EN 1992-1-1 Table 3.1.
type ConcreteClass struct {
	Name    string
	Fck     float64 // characteristic cylinder strength (MPa)
	FckCube float64 // characteristic cube strength (MPa)
}

// Standard classes, EN 1992-1-1 Table 3.1.
var (
	C20_25 = ConcreteClass{Name: "C20/25", Fck: 20, FckCube: 25}
	C25_30 = ConcreteClass{Name: "C25/30", Fck: 25, FckCube: 30}
	C30_37 = ConcreteClass{Name: "C30/37", Fck: 30, FckCube: 37}
	C35_45 = ConcreteClass{Name: "C35/45", Fck: 35, FckCube: 45}
	C40_50 = ConcreteClass{Name: "C40/50", Fck: 40, FckCube: 50}
	C45_55 = ConcreteClass{Name: "C45/55", Fck: 45, FckCube: 55}
	C50_60 = ConcreteClass{Name: "C50/60", Fck: 50, FckCube: 60}
)

// ConcreteClasses lists the supported classes in ascending strength order.
var ConcreteClasses = []ConcreteClass{C20_25, C25_30, C30_37, C35_45, C40_50, C45_55, C50_60}

// Fcm returns the mean cylinder strength fcm = fck + 8 MPa.
func (c ConcreteClass) Fcm() float64 {
	return c.Fck + 8
}

// Ecm returns the secant modulus of elasticity,
// Ecm = 22000·(fcm/10)^0.3 MPa, EN 1992-1-1 Table 3.1.
func (c ConcreteClass) Ecm() float64 {
	return 22000 * math.Pow(c.Fcm()/10, 0.3)
}

// Material builds the composite material record for the class.
func (c ConcreteClass) Material() composite.Material {
	return composite.Material{Name: c.Name, E: c.Ecm(), Fy: c.Fck}
}

// RebarB500 is reinforcing steel B500 per EN 10080 (fyk = 500 MPa).
func RebarB500() composite.Material {
	return composite.Material{Name: "B500", E: EsRebar, Fy: 500}
}
