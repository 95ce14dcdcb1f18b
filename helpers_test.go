package pmquadtree

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

// gridEdges returns the horizontal and vertical edges between neighbouring points of an n by n lattice with the given spacing, offset by half a spacing. The edges only meet at shared endpoints, some of which lie on quadrant boundaries.
func gridEdges(n int, spacing float64) []Edge {
	edges := []Edge{}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			p := Point{spacing/2.0 + float64(i)*spacing, spacing/2.0 + float64(j)*spacing}
			if i+1 < n {
				edges = append(edges, Edge{p, Point{p.X + spacing, p.Y}})
			}
			if j+1 < n {
				edges = append(edges, Edge{p, Point{p.X, p.Y + spacing}})
			}
		}
	}
	return edges
}

func gridTree(t testing.TB) (*Tree, []Edge) {
	tree, err := New(0.0, 0.0, 100.0, 100.0)
	if err != nil {
		t.Fatal(err)
	}
	edges := gridEdges(10, 10.0)
	if n, err := tree.InsertAll(edges); err != nil {
		t.Fatal(fmt.Sprintf("edge %d:", n), err)
	}
	return tree, edges
}

func randomEdge(r *rand.Rand, size float64) Edge {
	return Edge{
		Point{r.Float64() * size, r.Float64() * size},
		Point{r.Float64() * size, r.Float64() * size},
	}
}

// checkInvariants verifies the containment and partition invariants of every node.
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	_ = tree.Walk(func(n *Node) error {
		switch n.Kind() {
		case Internal:
			children, _ := n.Children()
			area := 0.0
			for _, child := range children {
				test.Float(t, child.rect.W, n.rect.W/2.0, "half width of", child)
				test.Float(t, child.rect.H, n.rect.H/2.0, "half height of", child)
				area += child.rect.W * child.rect.H
			}
			test.Float(t, area, n.rect.W*n.rect.H, "area of", n)
			test.T(t, children[NW].rect.NW, n.rect.NW)
			test.T(t, children[SE].rect.SE, n.rect.SE)
			test.T(t, children[NW].rect.SE, children[SE].rect.NW)
			test.T(t, children[NE].rect.SE.X, n.rect.SE.X)
			test.T(t, children[SW].rect.SE.Y, n.rect.SE.Y)
		case PointLeaf:
			anchor, _ := n.Anchor()
			test.That(t, n.rect.Contains(anchor), "anchor outside", n)
			for _, e := range n.Edges() {
				test.That(t, e.Shares(anchor), e, "does not share anchor of", n)
			}
		case EdgeLeaf:
			e := n.Edges()[0]
			test.That(t, !n.rect.Contains(e.A) && !n.rect.Contains(e.B), "endpoint inside", n)
			test.That(t, e.Intersects(n.rect), "edge does not overlap", n)
		}
		return nil
	}, nil)
}
