package pmquadtree

import (
	"github.com/paulmach/orb"
)

// NewFromBound returns an empty tree covering the bound.
func NewFromBound(b orb.Bound, opts ...Option) (*Tree, error) {
	return New(b.Min[0], b.Min[1], b.Max[0], b.Max[1], opts...)
}

// Bound returns the rectangle as an orb bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.NW.X, r.SE.Y},
		Max: orb.Point{r.SE.X, r.NW.Y},
	}
}

// LineString returns the edge as a line string of two points.
func (e *Edge) LineString() orb.LineString {
	return orb.LineString{{e.A.X, e.A.Y}, {e.B.X, e.B.Y}}
}

// EdgesFromGeometry decomposes line strings, rings and polygons, and their multi and collection variants, into edges between consecutive points. Zero-length edges are skipped and points carry no edges.
func EdgesFromGeometry(g orb.Geometry) []Edge {
	return appendGeometry(nil, g)
}

func appendGeometry(edges []Edge, g orb.Geometry) []Edge {
	switch g := g.(type) {
	case orb.LineString:
		edges = appendPoints(edges, g)
	case orb.Ring:
		edges = appendPoints(edges, g)
	case orb.Polygon:
		for _, ring := range g {
			edges = appendPoints(edges, ring)
		}
	case orb.MultiLineString:
		for _, ls := range g {
			edges = appendPoints(edges, ls)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			edges = appendGeometry(edges, poly)
		}
	case orb.Collection:
		for _, g2 := range g {
			edges = appendGeometry(edges, g2)
		}
	case orb.Bound:
		edges = appendGeometry(edges, g.ToRing())
	}
	return edges
}

func appendPoints(edges []Edge, ps []orb.Point) []Edge {
	for i := 1; i < len(ps); i++ {
		e := Edge{
			A: Point{ps[i-1][0], ps[i-1][1]},
			B: Point{ps[i][0], ps[i][1]},
		}
		if !e.IsZero() {
			edges = append(edges, e)
		}
	}
	return edges
}
