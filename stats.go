package pmquadtree

import (
	"fmt"
	"math"
	"strings"
)

// Stats describes the shape of a tree.
type Stats struct {
	Edges      int // inserted edges
	Nodes      int
	Empty      int
	Internal   int
	PointLeafs int
	EdgeLeafs  int
	Refs       int // edge references held by leafs
	MaxDepth   int
	MaxList    int   // longest edge list of a point leaf
	MinLeaf    Point // smallest leaf width and height
}

// Stats walks the tree and returns its statistics.
func (t *Tree) Stats() Stats {
	s := Stats{
		Edges:   t.n,
		MinLeaf: Point{math.Inf(1), math.Inf(1)},
	}
	depth := 0
	_ = t.Walk(func(n *Node) error {
		depth++
		s.MaxDepth = max(s.MaxDepth, depth)
		s.Nodes++
		switch n.Kind() {
		case Empty:
			s.Empty++
		case Internal:
			s.Internal++
		case PointLeaf:
			s.PointLeafs++
			s.MaxList = max(s.MaxList, len(n.Edges()))
		case EdgeLeaf:
			s.EdgeLeafs++
		}
		if n.IsLeaf() {
			s.Refs += len(n.Edges())
			s.MinLeaf.X = math.Min(s.MinLeaf.X, n.rect.W)
			s.MinLeaf.Y = math.Min(s.MinLeaf.Y, n.rect.H)
		}
		return nil
	}, func(*Node) error {
		depth--
		return nil
	})
	if s.PointLeafs+s.EdgeLeafs == 0 {
		s.MinLeaf = Point{}
	}
	return s
}

func (s Stats) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "edges:       %d\n", s.Edges)
	fmt.Fprintf(&sb, "nodes:       %d\n", s.Nodes)
	fmt.Fprintf(&sb, "  empty:     %d\n", s.Empty)
	fmt.Fprintf(&sb, "  internal:  %d\n", s.Internal)
	fmt.Fprintf(&sb, "  point:     %d\n", s.PointLeafs)
	fmt.Fprintf(&sb, "  edge:      %d\n", s.EdgeLeafs)
	fmt.Fprintf(&sb, "references:  %d\n", s.Refs)
	fmt.Fprintf(&sb, "max depth:   %d\n", s.MaxDepth)
	fmt.Fprintf(&sb, "max list:    %d\n", s.MaxList)
	fmt.Fprintf(&sb, "min leaf:    %g x %g\n", s.MinLeaf.X, s.MinLeaf.Y)
	return sb.String()
}
