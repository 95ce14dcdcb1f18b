package pmquadtree

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance on the horizontal extent of an edge below which it is treated as vertical by Edge.Intersects.
const Epsilon = 1e-9

// Point is a coordinate in 2D space. North is in the direction of positive Y.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q have bit-identical coordinates. There is no tolerance, two endpoints are only shared when they are exactly the same.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Edge is a line segment from A to B. The tree holds references to edges and never copies or modifies them, an edge must not be changed after it has been inserted.
type Edge struct {
	A, B Point
}

// Shares returns true if P is one of the endpoints of the edge.
func (e *Edge) Shares(p Point) bool {
	return e.A.Equals(p) || e.B.Equals(p)
}

// IsZero returns true if both endpoints coincide.
func (e *Edge) IsZero() bool {
	return e.A.Equals(e.B)
}

// Bounds returns the bounding rectangle of the edge.
func (e *Edge) Bounds() Rect {
	return NewRect(e.A.X, e.A.Y, e.B.X, e.B.Y)
}

// Intersects returns true if the edge overlaps the rectangle. It clips the x-projection of the edge against the rectangle, evaluates the line at the clipped x-range and clips the resulting y-range against the rectangle. This may report an overlap for some edges that pass close to a corner without touching the rectangle, but never misses an edge that does overlap it. Insertion and search must use the same test.
func (e *Edge) Intersects(r Rect) bool {
	// x-projection of the edge
	minX, maxX := e.A.X, e.B.X
	if e.B.X < e.A.X {
		minX, maxX = e.B.X, e.A.X
	}

	// clip against the x-projection of the rectangle
	if r.SE.X < maxX {
		maxX = r.SE.X
	}
	if minX < r.NW.X {
		minX = r.NW.X
	}
	if maxX < minX {
		return false
	}

	// y-projection of the edge over the clipped x-range
	minY, maxY := e.A.Y, e.B.Y
	if dx := e.B.X - e.A.X; Epsilon < math.Abs(dx) {
		a := (e.B.Y - e.A.Y) / dx
		b := e.A.Y - a*e.A.X
		minY = a*minX + b
		maxY = a*maxX + b
	}
	if maxY < minY {
		minY, maxY = maxY, minY
	}

	// clip against the y-projection of the rectangle
	if r.NW.Y < maxY {
		maxY = r.NW.Y
	}
	if minY < r.SE.Y {
		minY = r.SE.Y
	}
	return !(maxY < minY)
}

// Crosses returns true if the edge and F have at least one point in common. Unlike Intersects it is exact up to floating point rounding.
func (e *Edge) Crosses(f *Edge) bool {
	d1 := orientation(f.A, f.B, e.A)
	d2 := orientation(f.A, f.B, e.B)
	d3 := orientation(e.A, e.B, f.A)
	d4 := orientation(e.A, e.B, f.B)
	if (0.0 < d1 && d2 < 0.0 || d1 < 0.0 && 0.0 < d2) && (0.0 < d3 && d4 < 0.0 || d3 < 0.0 && 0.0 < d4) {
		return true
	}
	return d1 == 0.0 && onSegment(f.A, f.B, e.A) ||
		d2 == 0.0 && onSegment(f.A, f.B, e.B) ||
		d3 == 0.0 && onSegment(e.A, e.B, f.A) ||
		d4 == 0.0 && onSegment(e.A, e.B, f.B)
}

func (e *Edge) String() string {
	return fmt.Sprintf("%v--%v", e.A, e.B)
}

func orientation(a, b, c Point) float64 {
	return b.Sub(a).PerpDot(c.Sub(a))
}

// onSegment returns true if C, known to be collinear with AB, lies within the bounding box of AB.
func onSegment(a, b, c Point) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with its north-west corner (min x, max y) and south-east corner (max x, min y). The width and height are computed from the corners when the rectangle is created, a width or height of zero marks a rectangle that cannot be subdivided any further.
type Rect struct {
	NW, SE Point
	W, H   float64
}

// NewRect returns the rectangle spanned by (x0,y0) and (x1,y1), the coordinates may be given in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	r := Rect{
		NW: Point{math.Min(x0, x1), math.Max(y0, y1)},
		SE: Point{math.Max(x0, x1), math.Min(y0, y1)},
	}
	r.W = math.Abs(r.NW.X - r.SE.X)
	r.H = math.Abs(r.NW.Y - r.SE.Y)
	return r
}

// Contains returns true if P lies inside the rectangle or on its boundary.
func (r Rect) Contains(p Point) bool {
	return r.NW.X <= p.X && p.X <= r.SE.X && r.SE.Y <= p.Y && p.Y <= r.NW.Y
}

// Overlaps returns true if the rectangles have at least one point in common, including their boundaries.
func (r Rect) Overlaps(q Rect) bool {
	return r.NW.X <= q.SE.X && q.NW.X <= r.SE.X && r.SE.Y <= q.NW.Y && q.SE.Y <= r.NW.Y
}

// Degenerate returns true if the rectangle has zero width or height.
func (r Rect) Degenerate() bool {
	return r.W == 0.0 || r.H == 0.0
}

// Quadrants returns the NW, NE, SW and SE quadrants of the rectangle. All corners are derived from the same origin and half sizes so that the quadrants tile the rectangle without gaps.
func (r Rect) Quadrants() [4]Rect {
	x, y := r.NW.X, r.NW.Y
	hw, hh := r.W/2.0, r.H/2.0
	return [4]Rect{
		NW: NewRect(x, y-hh, x+hw, y),
		NE: NewRect(x+hw, y-hh, x+hw*2.0, y),
		SW: NewRect(x, y-hh*2.0, x+hw, y-hh),
		SE: NewRect(x+hw, y-hh*2.0, x+hw*2.0, y-hh),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v--%v", r.NW, r.SE)
}
