package pmquadtree

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	test.That(t, Point{1.0, 2.0}.Equals(Point{1.0, 2.0}))
	test.That(t, !Point{1.0, 2.0}.Equals(Point{1.0, 2.0 + 1e-15}))
	test.T(t, Point{3.0, 5.0}.Sub(Point{1.0, 2.0}), Point{2.0, 3.0})
	test.Float(t, Point{1.0, 0.0}.PerpDot(Point{0.0, 1.0}), 1.0)
	test.Float(t, Point{2.0, 2.0}.PerpDot(Point{1.0, 1.0}), 0.0)
	test.String(t, Point{1.5, -2.0}.String(), "[1.5; -2]")
}

func TestEdge(t *testing.T) {
	e := &Edge{Point{1.0, 2.0}, Point{3.0, -4.0}}
	test.That(t, e.Shares(Point{1.0, 2.0}))
	test.That(t, e.Shares(Point{3.0, -4.0}))
	test.That(t, !e.Shares(Point{2.0, -1.0}))
	test.That(t, !e.IsZero())
	test.That(t, (&Edge{Point{1.0, 1.0}, Point{1.0, 1.0}}).IsZero())
	test.T(t, e.Bounds(), NewRect(1.0, -4.0, 3.0, 2.0))
	test.String(t, e.String(), "[1; 2]--[3; -4]")
}

func TestNewRect(t *testing.T) {
	r := NewRect(10.0, 20.0, 0.0, 5.0)
	test.T(t, r.NW, Point{0.0, 20.0})
	test.T(t, r.SE, Point{10.0, 5.0})
	test.Float(t, r.W, 10.0)
	test.Float(t, r.H, 15.0)
	test.T(t, r, NewRect(0.0, 5.0, 10.0, 20.0))
	test.That(t, !r.Degenerate())
	test.That(t, NewRect(1.0, 1.0, 1.0, 5.0).Degenerate())
	test.String(t, r.String(), "[0; 20]--[10; 5]")
}

func TestRectContains(t *testing.T) {
	r := NewRect(0.0, 0.0, 10.0, 10.0)
	var tts = []struct {
		p        Point
		contains bool
	}{
		{Point{5.0, 5.0}, true},
		{Point{0.0, 0.0}, true},
		{Point{10.0, 10.0}, true},
		{Point{10.0, 5.0}, true},
		{Point{-1e-12, 5.0}, false},
		{Point{5.0, 10.000001}, false},
		{Point{20.0, 20.0}, false},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.p), func(t *testing.T) {
			test.T(t, r.Contains(tt.p), tt.contains)
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	r := NewRect(0.0, 0.0, 10.0, 10.0)
	test.That(t, r.Overlaps(NewRect(5.0, 5.0, 15.0, 15.0)))
	test.That(t, r.Overlaps(NewRect(10.0, 10.0, 15.0, 15.0)))
	test.That(t, r.Overlaps(NewRect(2.0, 2.0, 3.0, 3.0)))
	test.That(t, NewRect(2.0, 2.0, 3.0, 3.0).Overlaps(r))
	test.That(t, !r.Overlaps(NewRect(10.5, 0.0, 15.0, 10.0)))
	test.That(t, !r.Overlaps(NewRect(0.0, -5.0, 10.0, -1.0)))
}

func TestRectQuadrants(t *testing.T) {
	r := NewRect(0.0, 0.0, 100.0, 50.0)
	qs := r.Quadrants()
	test.T(t, qs[NW], NewRect(0.0, 25.0, 50.0, 50.0))
	test.T(t, qs[NE], NewRect(50.0, 25.0, 100.0, 50.0))
	test.T(t, qs[SW], NewRect(0.0, 0.0, 50.0, 25.0))
	test.T(t, qs[SE], NewRect(50.0, 0.0, 100.0, 25.0))
	for _, q := range qs {
		test.Float(t, q.W, 50.0)
		test.Float(t, q.H, 25.0)
	}
	test.That(t, r.divisible())

	// quadrants of a degenerate rectangle keep its zero height
	qs = NewRect(0.0, 3.0, 8.0, 3.0).Quadrants()
	test.T(t, qs[NW], NewRect(0.0, 3.0, 4.0, 3.0))
	test.T(t, qs[SE], NewRect(4.0, 3.0, 8.0, 3.0))

	test.That(t, !NewRect(1.0, 1.0, 1.0, 1.0).divisible())
	test.That(t, !NewRect(math.Inf(-1), 0.0, math.Inf(1), 1.0).divisible())
	test.That(t, !NewRect(math.NaN(), 0.0, 1.0, 1.0).divisible())
}

func TestEdgeIntersects(t *testing.T) {
	r := NewRect(0.0, 0.0, 1.0, 1.0)
	var tts = []struct {
		e          Edge
		intersects bool
	}{
		{Edge{Point{0.2, 0.2}, Point{0.8, 0.8}}, true},   // inside
		{Edge{Point{-1.0, 0.5}, Point{2.0, 0.5}}, true},  // through
		{Edge{Point{0.5, -1.0}, Point{0.5, 2.0}}, true},  // vertical through
		{Edge{Point{-1.0, 1.0}, Point{1.0, -1.0}}, true}, // touches the corner
		{Edge{Point{-1.0, 1.0}, Point{0.0, 1.0}}, true},  // touches the corner from the side
		{Edge{Point{2.0, 0.0}, Point{3.0, 1.0}}, false},  // right of
		{Edge{Point{0.0, 2.0}, Point{1.0, 3.0}}, false},  // above
		{Edge{Point{1.5, -1.0}, Point{1.5, 2.0}}, false}, // vertical beside
		{Edge{Point{-1.0, 1.5}, Point{1.5, 3.0}}, false}, // diagonal above
		// almost vertical, reported conservatively
		{Edge{Point{1.0, 5.0}, Point{1.0 + 9e-10, 0.5}}, true},
	}
	for _, tt := range tts {
		t.Run(tt.e.String(), func(t *testing.T) {
			test.T(t, tt.e.Intersects(r), tt.intersects)
		})
	}
}

func TestEdgeCrosses(t *testing.T) {
	var tts = []struct {
		e, f    Edge
		crosses bool
	}{
		{Edge{Point{0.0, 0.0}, Point{2.0, 2.0}}, Edge{Point{0.0, 2.0}, Point{2.0, 0.0}}, true},
		{Edge{Point{0.0, 0.0}, Point{2.0, 0.0}}, Edge{Point{0.0, 1.0}, Point{2.0, 1.0}}, false}, // parallel
		{Edge{Point{0.0, 0.0}, Point{2.0, 0.0}}, Edge{Point{2.0, 0.0}, Point{2.0, 1.0}}, true},  // shared endpoint
		{Edge{Point{0.0, 0.0}, Point{2.0, 0.0}}, Edge{Point{1.0, 0.0}, Point{3.0, 0.0}}, true},  // collinear overlap
		{Edge{Point{0.0, 0.0}, Point{1.0, 0.0}}, Edge{Point{2.0, 0.0}, Point{3.0, 0.0}}, false}, // collinear apart
		{Edge{Point{0.0, 0.0}, Point{2.0, 0.0}}, Edge{Point{1.0, 0.0}, Point{1.0, 1.0}}, true},  // T-junction
		{Edge{Point{0.0, 0.0}, Point{1.0, 1.0}}, Edge{Point{2.0, 0.0}, Point{1.6, 1.0}}, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.e.Crosses(&tt.f), tt.crosses)
			test.T(t, tt.f.Crosses(&tt.e), tt.crosses)
		})
	}
}
