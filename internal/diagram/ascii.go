// Package diagram renders composite cross-sections: quick ASCII sketches for
// terminal output and gonum/plot drawings for file export.
package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/structcode/gosect/internal/composite"
	"github.com/structcode/gosect/internal/geometry"
)

// DrawASCIISection sketches the section on a character grid, marking solid
// material, holes, rebar, the centroid and the horizontal plastic neutral
// axis.
func DrawASCIISection(cs *composite.CrossSection, props *composite.SectionProperties) string {
	const (
		widthChars  = 48
		heightChars = 22
	)

	if props.Width <= 0 || props.Height <= 0 {
		return ""
	}

	parts := cs.Parts()
	grid := make([][]rune, heightChars)
	for row := range grid {
		grid[row] = make([]rune, widthChars)
		for col := range grid[row] {
			// Sample the cell center; rows count down from the top.
			x := props.MinX + (float64(col)+0.5)/widthChars*props.Width
			y := props.MaxY - (float64(row)+0.5)/heightChars*props.Height
			if solidAt(parts, geometry.Point{X: x, Y: y}) {
				grid[row][col] = '░'
			} else {
				grid[row][col] = ' '
			}
		}
	}

	mark := func(x, y float64, r rune) {
		col := int((x - props.MinX) / props.Width * widthChars)
		row := int((props.MaxY - y) / props.Height * heightChars)
		if col >= 0 && col < widthChars && row >= 0 && row < heightChars {
			grid[row][col] = r
		}
	}
	for _, rb := range cs.Reinforcement() {
		mark(rb.At.X, rb.At.Y, '●')
	}
	mark(props.CentroidX, props.CentroidY, '+')

	pnaRow := int((props.MaxY - props.PlasticAxisY) / props.Height * heightChars)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for row := 0; row < heightChars; row++ {
		sb.WriteString(fmt.Sprintf("  │%s│", string(grid[row])))
		if row == pnaRow {
			sb.WriteString(" ◄─ PNA")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("  %g × %g mm, + centroid, ● rebar\n", props.Width, props.Height))
	return sb.String()
}

// WidthProfile charts the section width against height as an asciigraph line
// plot, bottom of the section on the left.
func WidthProfile(cs *composite.CrossSection, props *composite.SectionProperties) string {
	const samples = 64

	if props.Height <= 0 {
		return ""
	}
	parts := cs.Parts()
	data := make([]float64, samples)
	for i := 0; i < samples; i++ {
		y := props.MinY + (float64(i)+0.5)/samples*props.Height
		data[i] = widthAt(parts, y)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Caption("section width (mm), bottom → top"),
	)
}

// solidAt reports whether a point lies in solid material: inside some
// positive-winding part and outside every hole.
func solidAt(parts []composite.Part, pt geometry.Point) bool {
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

// widthAt sums the chord lengths of all parts at a horizontal level, holes
// subtracting.
func widthAt(parts []composite.Part, y float64) float64 {
	var total float64
	for _, p := range parts {
		xs := intersectionsAt(p.Polygon, y)
		sort.Float64s(xs)
		var chord float64
		for i := 0; i+1 < len(xs); i += 2 {
			chord += xs[i+1] - xs[i]
		}
		if p.Polygon.SignedArea() < 0 {
			chord = -chord
		}
		total += chord
	}
	return math.Max(total, 0)
}

// intersectionsAt finds the x coordinates where a horizontal line crosses
// the polygon edges.
func intersectionsAt(p geometry.Polygon, y float64) []float64 {
	var xs []float64
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
			t := (y - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
	}
	return xs
}
