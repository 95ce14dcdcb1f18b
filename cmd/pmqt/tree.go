package main

import (
	"os"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/tdewolff/pmquadtree"
	"github.com/tdewolff/pmquadtree/edgeio"
)

type source struct {
	Filename string
	OSM      bool
	Tags     string // comma separated
	EPSG     int
}

func (src source) Load() ([]pmquadtree.Edge, error) {
	f, err := os.Open(src.Filename)
	if err != nil {
		return nil, errors.New("opening input failed").WithTag("file", src.Filename).Wrap(err)
	}
	defer f.Close()

	var edges []pmquadtree.Edge
	if src.OSM {
		opts := []edgeio.OSMOption{}
		for _, tag := range strings.Split(src.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts = append(opts, edgeio.WithTag(tag))
			}
		}
		edges, err = edgeio.ReadOSM(f, opts...)
	} else {
		edges, err = edgeio.ReadText(f)
	}
	if err != nil {
		return nil, errors.New("reading edges failed").WithTag("file", src.Filename).Wrap(err)
	}

	if src.EPSG != 0 {
		proj, err := edgeio.NewProjection(src.EPSG)
		if err != nil {
			return nil, err
		} else if err := proj.Project(edges); err != nil {
			return nil, errors.New("projecting edges failed").WithTag("epsg", src.EPSG).Wrap(err)
		}
	}
	logs.WithTag("file", src.Filename).
		WithTag("edges", len(edges)).
		Info("edges loaded")
	return edges, nil
}

// build inserts the edges into a tree covering their bounds. Edges that fail to insert abort the build, or are logged and skipped when skipErrors is set.
func build(edges []pmquadtree.Edge, maxNodes int, skipErrors bool) (*pmquadtree.Tree, error) {
	bounds, ok := edgeio.Bounds(edges)
	if !ok {
		return nil, errors.New("no edges")
	}
	tree, err := pmquadtree.New(bounds.NW.X, bounds.SE.Y, bounds.SE.X, bounds.NW.Y, pmquadtree.WithMaxNodes(maxNodes))
	if err != nil {
		return nil, err
	}

	skipped := 0
	for i := range edges {
		if err := tree.Insert(&edges[i]); err != nil {
			err = errors.New("inserting edge failed").
				WithTag("index", i).
				WithTag("edge", edges[i].String()).
				Wrap(err)
			if !skipErrors {
				return nil, err
			}
			logs.Warn(err)
			skipped++
		}
	}
	logs.WithTag("edges", tree.Len()).
		WithTag("skipped", skipped).
		WithTag("nodes", tree.Nodes()).
		Info("tree built")
	return tree, nil
}

func parseEdge(s string) (pmquadtree.Edge, error) {
	edges, err := edgeio.ReadText(strings.NewReader(s))
	if err != nil {
		return pmquadtree.Edge{}, errors.New("bad query").WithTag("query", s).Wrap(err)
	} else if len(edges) != 1 {
		return pmquadtree.Edge{}, errors.New("query must be a single edge").WithTag("query", s)
	}
	return edges[0], nil
}

// searchEdge returns the candidate edges for Q, or only those that cross Q when exact is set.
func searchEdge(tree *pmquadtree.Tree, q *pmquadtree.Edge, exact bool) []*pmquadtree.Edge {
	edges := tree.SearchEdges(q)
	if !exact {
		return edges
	}
	crossing := edges[:0]
	for _, e := range edges {
		if e.Crosses(q) {
			crossing = append(crossing, e)
		}
	}
	return crossing
}

func searchRect(tree *pmquadtree.Tree, r pmquadtree.Rect) []*pmquadtree.Edge {
	var edges []*pmquadtree.Edge
	seen := map[*pmquadtree.Edge]bool{}
	_ = tree.SearchRect(r, func(n *pmquadtree.Node) error {
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

type edgeJSON struct {
	A [2]float64 `json:"a"`
	B [2]float64 `json:"b"`
}

func toJSON(edges []*pmquadtree.Edge) []edgeJSON {
	out := make([]edgeJSON, 0, len(edges))
	for _, e := range edges {
		out = append(out, edgeJSON{
			A: [2]float64{e.A.X, e.A.Y},
			B: [2]float64{e.B.X, e.B.Y},
		})
	}
	return out
}
