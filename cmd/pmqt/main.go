package main

import (
	"os"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/pmquadtree"
	"github.com/tdewolff/pmquadtree/edgeio"
)

type Main struct{}

type Stats struct {
	OSM        bool   `name:"osm" desc:"Input is OpenStreetMap XML"`
	Tag        string `desc:"Comma separated OSM tag keys to keep, eg. highway,building"`
	EPSG       int    `name:"epsg" desc:"Project longitude/latitude input to the given EPSG code"`
	MaxNodes   int    `name:"max-nodes" desc:"Maximum number of tree nodes, 0 is unlimited"`
	SkipErrors bool   `name:"skip-errors" desc:"Skip edges that cannot be inserted"`
	LogLevel   string `name:"log-level" default:"info" desc:"Log level: debug, info, warn or error"`
	Input      string `index:"0" desc:"Input file"`
}

type Search struct {
	OSM        bool   `name:"osm" desc:"Input is OpenStreetMap XML"`
	Tag        string `desc:"Comma separated OSM tag keys to keep, eg. highway,building"`
	EPSG       int    `name:"epsg" desc:"Project longitude/latitude input to the given EPSG code"`
	MaxNodes   int    `name:"max-nodes" desc:"Maximum number of tree nodes, 0 is unlimited"`
	SkipErrors bool   `name:"skip-errors" desc:"Skip edges that cannot be inserted"`
	LogLevel   string `name:"log-level" default:"info" desc:"Log level: debug, info, warn or error"`
	Query      string `short:"q" desc:"Query edge as x0,y0,x1,y1"`
	Rect       string `short:"r" desc:"Query region as x0,y0,x1,y1"`
	Exact      bool   `desc:"Only return edges that cross the query edge"`
	JSON       bool   `name:"json" desc:"Output JSON"`
	Input      string `index:"0" desc:"Input file"`
}

func main() {
	root := argp.NewCmd(&Main{}, "PM quadtree toolkit for indexing line segments")
	root.AddCmd(&Stats{}, "stats", "Build a tree and print its statistics")
	root.AddCmd(&Search{}, "search", "Find edges overlapping a query edge or region")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *Stats) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setupLogs(cmd.LogLevel)

	src := source{
		Filename: cmd.Input,
		OSM:      cmd.OSM,
		Tags:     cmd.Tag,
		EPSG:     cmd.EPSG,
	}
	edges, err := src.Load()
	if err != nil {
		return err
	}
	tree, err := build(edges, cmd.MaxNodes, cmd.SkipErrors)
	if err != nil {
		return err
	}

	s := tree.Stats()
	logs.WithTag("max_depth", s.MaxDepth).
		WithTag("leafs", s.PointLeafs+s.EdgeLeafs).
		Debug("tree statistics computed")
	_, err = os.Stdout.WriteString(s.String())
	return err
}

func (cmd *Search) Run() error {
	if cmd.Input == "" || (cmd.Query == "") == (cmd.Rect == "") {
		return argp.ShowUsage
	}
	setupLogs(cmd.LogLevel)

	src := source{
		Filename: cmd.Input,
		OSM:      cmd.OSM,
		Tags:     cmd.Tag,
		EPSG:     cmd.EPSG,
	}
	edges, err := src.Load()
	if err != nil {
		return err
	}
	tree, err := build(edges, cmd.MaxNodes, cmd.SkipErrors)
	if err != nil {
		return err
	}

	var found []*pmquadtree.Edge
	if cmd.Query != "" {
		q, err := parseEdge(cmd.Query)
		if err != nil {
			return err
		}
		found = searchEdge(tree, &q, cmd.Exact)
	} else {
		r, err := parseEdge(cmd.Rect)
		if err != nil {
			return err
		}
		found = searchRect(tree, r.Bounds())
	}
	logs.WithTag("found", len(found)).Info("search done")

	if cmd.JSON {
		b, err := json.MarshalIndent(toJSON(found), "", "  ")
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(b, '\n'))
		return err
	}
	return edgeio.WriteText(os.Stdout, found)
}

func setupLogs(level string) {
	logs.SetLevel(logs.ParseLevel(level))
	logs.Encoder = json.Marshal
}
