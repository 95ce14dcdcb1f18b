package pmquadtree

import "fmt"

// Quadrant identifies one of the four children of an internal node.
type Quadrant int

// The quadrants in the order in which they are visited.
const (
	NW Quadrant = iota
	NE
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// NodeKind is the variant of a node.
type NodeKind int

// The node variants. Empty nodes have no data, internal nodes have four children, point leafs hold all edges that share an endpoint inside the node and edge leafs hold a single edge that passes through the node.
const (
	Empty NodeKind = iota
	Internal
	PointLeaf
	EdgeLeaf
)

func (k NodeKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Internal:
		return "Internal"
	case PointLeaf:
		return "PointLeaf"
	case EdgeLeaf:
		return "EdgeLeaf"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// nodeData is the data of a non-empty node, it is one of *internalNode, *pointLeaf or *edgeLeaf.
type nodeData interface {
	kind() NodeKind
}

type internalNode struct {
	children [4]*Node
}

type pointLeaf struct {
	anchor Point
	edges  []*Edge
}

type edgeLeaf struct {
	edge *Edge
}

func (*internalNode) kind() NodeKind { return Internal }
func (*pointLeaf) kind() NodeKind    { return PointLeaf }
func (*edgeLeaf) kind() NodeKind     { return EdgeLeaf }

// Node is a region of the tree. Its rectangle is fixed when the node is created, its variant changes as edges are inserted: an empty node may become a point leaf, an edge leaf or an internal node, and leafs may become internal nodes. Internal nodes never change again.
type Node struct {
	rect Rect
	data nodeData // nil when empty
}

func newNode(rect Rect) *Node {
	return &Node{rect: rect}
}

// Rect returns the region covered by the node.
func (n *Node) Rect() Rect {
	return n.rect
}

// Kind returns the variant of the node.
func (n *Node) Kind() NodeKind {
	if n.data == nil {
		return Empty
	}
	return n.data.kind()
}

// IsLeaf returns true for point and edge leafs.
func (n *Node) IsLeaf() bool {
	k := n.Kind()
	return k == PointLeaf || k == EdgeLeaf
}

// Child returns the child in quadrant Q, or nil if the node is not internal.
func (n *Node) Child(q Quadrant) *Node {
	if in, ok := n.data.(*internalNode); ok {
		return in.children[q]
	}
	return nil
}

// Children returns the four children in NW, NE, SW, SE order, ok is false if the node is not internal.
func (n *Node) Children() (children [4]*Node, ok bool) {
	if in, ok := n.data.(*internalNode); ok {
		return in.children, true
	}
	return children, false
}

// Anchor returns the shared endpoint of a point leaf, ok is false for other variants.
func (n *Node) Anchor() (Point, bool) {
	if pl, ok := n.data.(*pointLeaf); ok {
		return pl.anchor, true
	}
	return Point{}, false
}

// Edges returns the edges referenced by a leaf in insertion order: all edges of a point leaf, or the single edge of an edge leaf. It returns nil for empty and internal nodes. The returned slice must not be modified.
func (n *Node) Edges() []*Edge {
	switch data := n.data.(type) {
	case *pointLeaf:
		return data.edges
	case *edgeLeaf:
		return []*Edge{data.edge}
	}
	return nil
}

func (n *Node) String() string {
	switch data := n.data.(type) {
	case *pointLeaf:
		return fmt.Sprintf("%v %v (%v, %d edges)", n.Kind(), n.rect, data.anchor, len(data.edges))
	case *edgeLeaf:
		return fmt.Sprintf("%v %v (%v)", n.Kind(), n.rect, data.edge)
	}
	return fmt.Sprintf("%v %v", n.Kind(), n.rect)
}

// release drops all references held by the node and its descendants, children before their parent.
func (n *Node) release() {
	switch data := n.data.(type) {
	case *internalNode:
		for i, child := range data.children {
			child.release()
			data.children[i] = nil
		}
	case *pointLeaf:
		clear(data.edges)
		data.edges = nil
	case *edgeLeaf:
		data.edge = nil
	}
	n.data = nil
}
