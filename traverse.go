package pmquadtree

import "errors"

// SkipAll can be returned from a callback to abort a traversal. As any other non-nil error it is returned unchanged to the caller of Walk or Search.
var SkipAll = errors.New("skip everything and stop the traversal")

// WalkFunc is called for nodes visited by Walk and SearchRect. Returning a non-nil error aborts the traversal.
type WalkFunc func(*Node) error

// SearchFunc is called for every leaf visited by Search together with the query edge. Returning a non-nil error aborts the search.
type SearchFunc func(*Node, *Edge) error

// Walk visits N and all its descendants. It calls descend before visiting the children of a node, in NW, NE, SW, SE order, and ascend afterwards. The first non-nil error returned by a callback stops the walk and is returned. Either callback may be nil.
func Walk(n *Node, descend, ascend WalkFunc) error {
	if descend != nil {
		if err := descend(n); err != nil {
			return err
		}
	}
	if in, ok := n.data.(*internalNode); ok {
		for _, child := range in.children {
			if err := Walk(child, descend, ascend); err != nil {
				return err
			}
		}
	}
	if ascend != nil {
		if err := ascend(n); err != nil {
			return err
		}
	}
	return nil
}

// Search calls fn for every point and edge leaf below N whose region is overlapped by the query edge Q, using the same overlap test as insertion. Children are visited in NW, NE, SW, SE order and only when Q overlaps them. The first non-nil error returned by fn stops the search and is returned.
func Search(n *Node, q *Edge, fn SearchFunc) error {
	switch data := n.data.(type) {
	case *internalNode:
		for _, child := range data.children {
			if q.Intersects(child.rect) {
				if err := Search(child, q, fn); err != nil {
					return err
				}
			}
		}
	case *pointLeaf, *edgeLeaf:
		if fn != nil {
			return fn(n, q)
		}
	}
	return nil
}

// Walk visits all nodes of the tree, see Walk.
func (t *Tree) Walk(descend, ascend WalkFunc) error {
	return Walk(t.root, descend, ascend)
}

// Search visits all leafs of the tree that are overlapped by Q, see Search. The root itself is visited regardless of Q.
func (t *Tree) Search(q *Edge, fn SearchFunc) error {
	return Search(t.root, q, fn)
}

// SearchEdges returns the edges referenced by the leafs that Search visits for Q, without duplicates and in order of first encounter. These are candidates: every edge crossing Q is included, but edges that merely share a region with Q are too.
func (t *Tree) SearchEdges(q *Edge) []*Edge {
	var edges []*Edge
	seen := map[*Edge]bool{}
	_ = t.Search(q, func(n *Node, _ *Edge) error {
		for _, e := range n.Edges() {
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
		return nil
	})
	return edges
}

// SearchRect calls fn for every point and edge leaf whose region overlaps R, in NW, NE, SW, SE order. The first non-nil error returned by fn stops the search and is returned.
func (t *Tree) SearchRect(r Rect, fn WalkFunc) error {
	return searchRect(t.root, r, fn)
}

func searchRect(n *Node, r Rect, fn WalkFunc) error {
	if !n.rect.Overlaps(r) {
		return nil
	}
	switch data := n.data.(type) {
	case *internalNode:
		for _, child := range data.children {
			if err := searchRect(child, r, fn); err != nil {
				return err
			}
		}
	case *pointLeaf, *edgeLeaf:
		return fn(n)
	}
	return nil
}
