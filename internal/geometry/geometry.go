// Package geometry provides the 2D primitives the cross-section engine is
// built on: points and closed polygons with the area, centroid and second
// moment integrals needed for section-property calculations.
//
// Coordinates are in millimeters. X increases to the right, Y increases
// upward. Polygon winding is significant: counter-clockwise (positive signed
// area) denotes solid material, clockwise (negative signed area) denotes a
// hole to be subtracted.
package geometry

import (
	"fmt"
	"math"
)

// ArcSegments is the number of straight segments used to approximate a
// quarter-circle arc (fillets, hollow-section corners, circular rings).
// At 16 segments a rolled profile's generated area agrees with its catalog
// value to well within 1%.
const ArcSegments = 16

// Point is a 2D coordinate in millimeters.
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Polygon is an ordered, closed ring of vertices. The closing edge from the
// last vertex back to the first is implicit. Polygons are treated as
// immutable: all operations return new polygons.
//
// Polygons are assumed simple (non-self-intersecting). This is a documented
// precondition, not validated; behavior is undefined if violated.
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// NewPolygon builds a polygon from vertices in order.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}
}

// GeometryError reports a malformed polygon.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "geometry: " + e.Reason
}

// Validate checks the polygon invariant: at least 3 distinct vertices.
func (p Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return &GeometryError{Reason: fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(p.Vertices))}
	}
	distinct := 0
	for i, v := range p.Vertices {
		dup := false
		for _, w := range p.Vertices[:i] {
			if v == w {
				dup = true
				break
			}
		}
		if !dup {
			distinct++
		}
	}
	if distinct < 3 {
		return &GeometryError{Reason: fmt.Sprintf("polygon needs at least 3 distinct vertices, got %d", distinct)}
	}
	return nil
}

// SignedArea returns the area by the shoelace formula. Positive for
// counter-clockwise winding (solid), negative for clockwise (hole).
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var twice float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		twice += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	return twice / 2
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Integrals holds the signed area integrals of a polygon about the global
// origin, computed with Green's theorem over the edges. For a hole (negative
// winding) every field carries a negative sign, so integrals of parts sum
// directly.
type Integrals struct {
	Area float64 // ∫dA        (mm²)
	Sx   float64 // ∫y·dA      (mm³) first moment about the x-axis
	Sy   float64 // ∫x·dA      (mm³) first moment about the y-axis
	Iyy  float64 // ∫y²·dA     (mm⁴) second moment about the horizontal axis
	Izz  float64 // ∫x²·dA     (mm⁴) second moment about the vertical axis
	Ixy  float64 // ∫x·y·dA    (mm⁴) product moment
}

// Integrals evaluates the polygon's area integrals about the origin.
func (p Polygon) Integrals() Integrals {
	var m Integrals
	n := len(p.Vertices)
	if n < 3 {
		return m
	}
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		m.Area += cross / 2
		m.Sx += cross * (a.Y + b.Y) / 6
		m.Sy += cross * (a.X + b.X) / 6
		m.Iyy += cross * (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y) / 12
		m.Izz += cross * (a.X*a.X + a.X*b.X + b.X*b.X) / 12
		m.Ixy += cross * (a.X*b.Y + 2*a.X*a.Y + 2*b.X*b.Y + b.X*a.Y) / 24
	}
	return m
}

// Centroid returns the centroid of the enclosed region. For holes the
// centroid is the same as for the solid of identical outline.
func (p Polygon) Centroid() (Point, error) {
	m := p.Integrals()
	if m.Area == 0 {
		return Point{}, &GeometryError{Reason: "zero-area polygon has no centroid"}
	}
	return Point{X: m.Sy / m.Area, Y: m.Sx / m.Area}, nil
}

// Translate returns the polygon shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(dx, dy)
	}
	return Polygon{Vertices: out}
}

// MirrorY returns the polygon mirrored about the vertical axis x = axisX.
// Vertex order is reversed so the winding sign is preserved.
func (p Polygon) MirrorY(axisX float64) Polygon {
	n := len(p.Vertices)
	out := make([]Point, n)
	for i, v := range p.Vertices {
		out[n-1-i] = Point{X: 2*axisX - v.X, Y: v.Y}
	}
	return Polygon{Vertices: out}
}

// MirrorX returns the polygon mirrored about the horizontal axis y = axisY.
// Vertex order is reversed so the winding sign is preserved.
func (p Polygon) MirrorX(axisY float64) Polygon {
	n := len(p.Vertices)
	out := make([]Point, n)
	for i, v := range p.Vertices {
		out[n-1-i] = Point{X: v.X, Y: 2*axisY - v.Y}
	}
	return Polygon{Vertices: out}
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = p.Vertices[0].X, p.Vertices[0].X
	minY, maxY = p.Vertices[0].Y, p.Vertices[0].Y
	for _, v := range p.Vertices[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// Contains reports whether the point lies inside the polygon outline
// (even-odd ray cast, winding ignored). Points exactly on an edge are
// treated as inside.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		if onSegment(a, b, pt) {
			return true
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b, pt Point) bool {
	const eps = 1e-9
	cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
	if math.Abs(cross) > eps*math.Max(1, math.Hypot(b.X-a.X, b.Y-a.Y)) {
		return false
	}
	dot := (pt.X-a.X)*(b.X-a.X) + (pt.Y-a.Y)*(b.Y-a.Y)
	if dot < -eps {
		return false
	}
	sq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot <= sq+eps
}

// ClipBelow returns the part of the polygon with y ≤ level, clipped against
// the horizontal line y = level. Winding (and therefore the solid/hole sign)
// is preserved. The result may be empty when the polygon lies entirely above
// the line.
func (p Polygon) ClipBelow(level float64) Polygon {
	return p.clipHalfPlane(level, true)
}

// ClipAbove returns the part of the polygon with y ≥ level.
func (p Polygon) ClipAbove(level float64) Polygon {
	return p.clipHalfPlane(level, false)
}

// clipHalfPlane is a Sutherland–Hodgman clip against a horizontal line.
func (p Polygon) clipHalfPlane(level float64, keepBelow bool) Polygon {
	n := len(p.Vertices)
	if n < 3 {
		return Polygon{}
	}
	keep := func(v Point) bool {
		if keepBelow {
			return v.Y <= level
		}
		return v.Y >= level
	}
	var out []Point
	for i := 0; i < n; i++ {
		curr := p.Vertices[i]
		next := p.Vertices[(i+1)%n]
		if keep(curr) {
			out = append(out, curr)
		}
		if keep(curr) != keep(next) {
			t := (level - curr.Y) / (next.Y - curr.Y)
			out = append(out, Point{X: curr.X + t*(next.X-curr.X), Y: level})
		}
	}
	if len(out) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: out}
}

// Arc appends points along a circular arc centered at c with radius r, from
// angle a0 to a1 (radians, counter-clockwise when a1 > a0), discretized into
// segs straight segments. The point at a0 is included, the point at a1 is
// included as the final entry.
func Arc(c Point, r, a0, a1 float64, segs int) []Point {
	if segs < 1 {
		segs = 1
	}
	pts := make([]Point, 0, segs+1)
	for i := 0; i <= segs; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(segs)
		pts = append(pts, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return pts
}
