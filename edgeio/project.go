package edgeio

import (
	"fmt"
	"math"

	"github.com/tdewolff/pmquadtree"
	"github.com/wroge/wgs84/v2"
)

// Projection converts longitude/latitude coordinates (EPSG:4326) to a projected coordinate system, so that edges can be indexed in a planar system such as UTM.
type Projection struct {
	EPSG int
	fn   func(float64, float64, float64) (float64, float64, float64)
}

// NewProjection returns the projection from WGS84 to the given EPSG code, eg. 3857 for web mercator or 32633 for UTM zone 33N.
func NewProjection(epsg int) (*Projection, error) {
	if epsg <= 0 {
		return nil, fmt.Errorf("bad EPSG code %d", epsg)
	}
	return &Projection{
		EPSG: epsg,
		fn:   wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(epsg)),
	}, nil
}

// Point projects a longitude/latitude pair.
func (p *Projection) Point(lon, lat float64) (pmquadtree.Point, error) {
	x, y, _ := p.fn(lon, lat, 0.0)
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return pmquadtree.Point{}, fmt.Errorf("cannot project %g,%g to EPSG:%d", lon, lat, p.EPSG)
	}
	return pmquadtree.Point{X: x, Y: y}, nil
}

// Project projects the edges in place. This must happen before the edges are inserted into a tree.
func (p *Projection) Project(edges []pmquadtree.Edge) error {
	for i := range edges {
		a, err := p.Point(edges[i].A.X, edges[i].A.Y)
		if err != nil {
			return err
		}
		b, err := p.Point(edges[i].B.X, edges[i].B.Y)
		if err != nil {
			return err
		}
		edges[i].A, edges[i].B = a, b
	}
	return nil
}
