// Package rebar positions reinforcement bars inside a rectangular concrete
// boundary under cover and clear-spacing constraints. Bars are returned as
// center coordinates, ready to become point-reinforcement entries of a
// composite cross-section.
package rebar

import (
	"fmt"
	"math"

	"github.com/structcode/gosect/internal/geometry"
)

// Boundary is the rectangular concrete outline the bars must stay inside,
// spanning x ∈ [0, Width], y ∈ [0, Height].
type Boundary struct {
	Width  float64 // mm
	Height float64 // mm
}

// Config holds the placement constraints.
type Config struct {
	Boundary Boundary
	Diameter float64 // bar diameter (mm)
	Cover    float64 // concrete cover to the bar surface (mm)

	// MinClearSpacing is the smallest allowed clear distance between bar
	// surfaces. Zero selects the EN 1992-1-1 Section 8.2 default.
	MinClearSpacing float64
}

// MinSpacing is the EN 1992-1-1 Section 8.2 minimum clear bar spacing for a
// bar diameter and maximum aggregate size (both mm).
func MinSpacing(diameter, aggregate float64) float64 {
	return math.Max(math.Max(diameter, aggregate+5), 20)
}

// LayoutError reports a placement that violates cover, spacing or boundary
// constraints.
type LayoutError struct {
	Reason string
}

func (e *LayoutError) Error() string {
	return "rebar: " + e.Reason
}

// BarArea returns the cross-section area of one bar of the given diameter.
func BarArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}

func (c Config) validate() error {
	if c.Boundary.Width <= 0 || c.Boundary.Height <= 0 {
		return &LayoutError{Reason: fmt.Sprintf("boundary %gx%g mm is not a valid rectangle", c.Boundary.Width, c.Boundary.Height)}
	}
	if c.Diameter <= 0 {
		return &LayoutError{Reason: fmt.Sprintf("bar diameter must be positive, got %g", c.Diameter)}
	}
	if c.Cover < 0 {
		return &LayoutError{Reason: fmt.Sprintf("cover must not be negative, got %g", c.Cover)}
	}
	return nil
}

// edge returns the inset rectangle of admissible bar centers.
func (c Config) edge() (x0, y0, x1, y1 float64, err error) {
	inset := c.Cover + c.Diameter/2
	x0, y0 = inset, inset
	x1, y1 = c.Boundary.Width-inset, c.Boundary.Height-inset
	if x1 < x0 || y1 < y0 {
		return 0, 0, 0, 0, &LayoutError{
			Reason: fmt.Sprintf("cover %g mm and diameter %g mm leave no room inside a %gx%g mm boundary",
				c.Cover, c.Diameter, c.Boundary.Width, c.Boundary.Height),
		}
	}
	return x0, y0, x1, y1, nil
}

func (c Config) minClear() float64 {
	if c.MinClearSpacing > 0 {
		return c.MinClearSpacing
	}
	return MinSpacing(c.Diameter, 0)
}

// Corners places one bar in each corner of the admissible rectangle.
func Corners(c Config) ([]geometry.Point, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	x0, y0, x1, y1, err := c.edge()
	if err != nil {
		return nil, err
	}
	pts := []geometry.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	return pts, c.checkSpacing(pts)
}

// BottomRow places count bars with uniform spacing along the bottom edge of
// the admissible rectangle. A single bar is centered.
func BottomRow(c Config, count int) ([]geometry.Point, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, &LayoutError{Reason: fmt.Sprintf("bar count must be at least 1, got %d", count)}
	}
	x0, y0, x1, _, err := c.edge()
	if err != nil {
		return nil, err
	}
	if count == 1 {
		return []geometry.Point{{X: (x0 + x1) / 2, Y: y0}}, nil
	}
	pts := make([]geometry.Point, count)
	step := (x1 - x0) / float64(count-1)
	for i := 0; i < count; i++ {
		pts[i] = geometry.Point{X: x0 + float64(i)*step, Y: y0}
	}
	if clear := step - c.Diameter; clear < c.minClear() {
		return nil, &LayoutError{
			Reason: fmt.Sprintf("%d bars of Ø%g mm leave %.1f mm clear spacing, below the %.1f mm minimum",
				count, c.Diameter, clear, c.minClear()),
		}
	}
	return pts, nil
}

// Explicit validates caller-supplied bar centers against the boundary,
// cover and spacing constraints.
func Explicit(c Config, pts []geometry.Point) ([]geometry.Point, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, &LayoutError{Reason: "explicit layout needs at least one bar"}
	}
	x0, y0, x1, y1, err := c.edge()
	if err != nil {
		return nil, err
	}
	const eps = 1e-9
	for i, p := range pts {
		if p.X < x0-eps || p.X > x1+eps || p.Y < y0-eps || p.Y > y1+eps {
			return nil, &LayoutError{
				Reason: fmt.Sprintf("bar %d at (%g, %g) violates the %g mm cover", i+1, p.X, p.Y, c.Cover),
			}
		}
	}
	return append([]geometry.Point(nil), pts...), c.checkSpacing(pts)
}

// checkSpacing verifies the pairwise clear distance between bar surfaces.
func (c Config) checkSpacing(pts []geometry.Point) error {
	minCenter := c.minClear() + c.Diameter
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
			if d < minCenter-1e-9 {
				return &LayoutError{
					Reason: fmt.Sprintf("bars %d and %d are %.1f mm apart, below the %.1f mm minimum center distance",
						i+1, j+1, d, minCenter),
				}
			}
		}
	}
	return nil
}
