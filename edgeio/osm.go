package edgeio

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/tdewolff/pmquadtree"
)

type osmOptions struct {
	tags []string
}

// OSMOption configures ReadOSM.
type OSMOption func(*osmOptions)

// WithTag only keeps features that have the given tag key, eg. "highway" or "building". When given multiple times, features with any of the keys are kept.
func WithTag(key string) OSMOption {
	return func(o *osmOptions) {
		o.tags = append(o.tags, key)
	}
}

// ReadOSM reads an OpenStreetMap XML document and returns the edges of its ways, with X the longitude and Y the latitude. Open ways become polylines and closed areas become rings. Nodes do not produce edges.
func ReadOSM(r io.Reader, opts ...OSMOption) ([]pmquadtree.Edge, error) {
	options := osmOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	m := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}

	fc, err := osmgeojson.Convert(m,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}

	var edges []pmquadtree.Edge
	for _, f := range fc.Features {
		if 0 < len(options.tags) {
			tags, _ := f.Properties["tags"].(map[string]string)
			if !hasAnyTag(tags, options.tags) {
				continue
			}
		}
		edges = append(edges, pmquadtree.EdgesFromGeometry(f.Geometry)...)
	}
	return edges, nil
}

func hasAnyTag(tags map[string]string, keys []string) bool {
	for _, key := range keys {
		if _, ok := tags[key]; ok {
			return true
		}
	}
	return false
}
