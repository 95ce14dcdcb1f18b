// Package pmquadtree implements a PM quadtree, a spatial index for line segments that only meet at shared endpoints. Each leaf holds either the edges sharing a single endpoint or a single edge passing through.
package pmquadtree

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Tree.Insert, compare with errors.Is.
var (
	// ErrOutOfMemory is returned when a subdivision would exceed the node budget of the tree.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrOutOfBounds is returned when an endpoint of the edge lies outside the tree.
	ErrOutOfBounds = errors.New("edge out of bounds")

	// ErrIntersection is returned when an edge collides with previously inserted edges in a region that cannot be subdivided any further, typically because it crosses or overlaps another edge.
	ErrIntersection = errors.New("edge intersects existing edge")

	// ErrLogic is returned when an internal invariant is violated.
	ErrLogic = errors.New("logic error")
)

// Option configures a tree.
type Option func(*Tree)

// WithMaxNodes limits the number of nodes the tree may hold, including the root. Subdivisions that would exceed the limit fail with ErrOutOfMemory. Zero means unlimited.
func WithMaxNodes(n int) Option {
	return func(t *Tree) {
		t.maxNodes = n
	}
}

// Tree is a PM quadtree holding line segments. It is not safe for concurrent use: insertions must be serialized and the tree may not be modified from within Walk or Search callbacks. Concurrent read-only traversals are safe.
type Tree struct {
	root     *Node
	bounds   Rect
	n        int // number of inserted edges
	nodes    int
	maxNodes int
}

// New returns an empty tree covering the rectangle from (minX,minY) to (maxX,maxY). It returns ErrOutOfBounds if a coordinate is not finite or the width or height overflows.
func New(minX, minY, maxX, maxY float64, opts ...Option) (*Tree, error) {
	t := &Tree{
		bounds: NewRect(minX, minY, maxX, maxY),
	}
	if !t.bounds.finite() {
		return nil, fmt.Errorf("%w: tree bounds %v are not finite", ErrOutOfBounds, t.bounds)
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.reserve(1); err != nil {
		return nil, err
	}
	t.root = newNode(t.bounds)
	return t, nil
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Bounds returns the region covered by the tree.
func (t *Tree) Bounds() Rect {
	return t.bounds
}

// Len returns the number of successfully inserted edges.
func (t *Tree) Len() int {
	return t.n
}

// Nodes returns the number of nodes in the tree.
func (t *Tree) Nodes() int {
	return t.nodes
}

// Reset releases all nodes and leaves an empty tree with the same bounds and options. Edges are never modified.
func (t *Tree) Reset() {
	t.root.release()
	t.root = newNode(t.bounds)
	t.n = 0
	t.nodes = 1
}

// Insert adds an edge to the tree. The tree keeps a reference to E, which must not be changed afterwards. It returns ErrOutOfBounds if an endpoint lies outside the tree, ErrIntersection if the edge has zero length or collides with other edges at the precision limit of the tree, and ErrOutOfMemory if the node budget is exhausted. Out of bounds and zero-length edges leave the tree untouched, after the other errors the edge may be partially stored.
func (t *Tree) Insert(e *Edge) error {
	if !t.bounds.Contains(e.A) || !t.bounds.Contains(e.B) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, e, t.bounds)
	} else if e.IsZero() {
		return fmt.Errorf("%w: zero-length edge %v", ErrIntersection, e)
	}
	if err := t.insert(t.root, e); err != nil {
		return err
	}
	t.n++
	return nil
}

// InsertAll inserts the edges in order and returns the number of inserted edges before the first error. The tree keeps references into the slice.
func (t *Tree) InsertAll(edges []Edge) (int, error) {
	for i := range edges {
		if err := t.Insert(&edges[i]); err != nil {
			return i, err
		}
	}
	return len(edges), nil
}

func (t *Tree) insert(n *Node, e *Edge) error {
	switch data := n.data.(type) {
	case nil:
		hasA, hasB := n.rect.Contains(e.A), n.rect.Contains(e.B)
		if hasA && hasB {
			// both endpoints are in the region, split until they are separated
			if !n.rect.divisible() {
				return fmt.Errorf("%w: zero-length edge %v", ErrIntersection, e)
			} else if err := t.subdivide(n); err != nil {
				return err
			}
			return t.insert(n, e)
		} else if hasA {
			n.data = &pointLeaf{anchor: e.A, edges: []*Edge{e}}
		} else if hasB {
			n.data = &pointLeaf{anchor: e.B, edges: []*Edge{e}}
		} else if e.Intersects(n.rect) {
			n.data = &edgeLeaf{edge: e}
		}
		return nil
	case *internalNode:
		for _, child := range data.children {
			if err := t.insert(child, e); err != nil {
				return err
			}
		}
		return nil
	case *pointLeaf:
		if e.Shares(data.anchor) {
			data.edges = append(data.edges, e)
			return nil
		}
		// a point leaf that does not share the endpoint blocks the region like an edge leaf
	}

	if n.rect.Contains(e.A) || n.rect.Contains(e.B) || e.Intersects(n.rect) {
		if n.rect.Degenerate() || !n.rect.divisible() {
			return fmt.Errorf("%w: %v in %v", ErrIntersection, e, n.rect)
		} else if err := t.subdivide(n); err != nil {
			return err
		}
		return t.insert(n, e)
	}
	return nil
}

// subdivide turns a leaf or empty node into an internal node with four empty children and reinserts the edges it held.
func (t *Tree) subdivide(n *Node) error {
	if _, ok := n.data.(*internalNode); ok {
		return fmt.Errorf("%w: subdividing internal node %v", ErrLogic, n.rect)
	}
	if err := t.reserve(4); err != nil {
		return err
	}

	in := &internalNode{}
	for i, rect := range n.rect.Quadrants() {
		in.children[i] = newNode(rect)
	}
	prev := n.data
	n.data = in

	switch data := prev.(type) {
	case *edgeLeaf:
		return t.insert(n, data.edge)
	case *pointLeaf:
		for i, e := range data.edges {
			data.edges[i] = nil
			if err := t.insert(n, e); err != nil {
				// remaining edges are dropped
				return err
			}
		}
	}
	return nil
}

// reserve accounts for n new nodes.
func (t *Tree) reserve(n int) error {
	if 0 < t.maxNodes && t.maxNodes < t.nodes+n {
		return fmt.Errorf("%w: node limit of %d reached", ErrOutOfMemory, t.maxNodes)
	}
	t.nodes += n
	return nil
}

// divisible returns true if each quadrant of the rectangle is smaller than the rectangle itself, which stops holding when the floating point precision is exhausted.
func (r Rect) divisible() bool {
	for _, q := range r.Quadrants() {
		if math.IsNaN(q.W) || math.IsNaN(q.H) || q.W == r.W && q.H == r.H {
			return false
		}
	}
	return true
}

// finite returns true if the corners, width and height are all finite.
func (r Rect) finite() bool {
	for _, f := range []float64{r.NW.X, r.NW.Y, r.SE.X, r.SE.Y, r.W, r.H} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
