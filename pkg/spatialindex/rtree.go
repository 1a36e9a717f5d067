package spatialindex

import (
	"math"

	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type PointSource interface {
	ForEachPoint(handle func(p geo.GeoPoint))
	NumPoints() int
}

// Rtree indexes graph points so a raw coordinate can be snapped to the nearest point of the street graph.
type Rtree struct {
	tr   *rtree.RTreeG[geo.GeoPoint]
	size int
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[geo.GeoPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. insert every point of src as a degenerate (zero area) rectangle.
func (rt *Rtree) Build(src PointSource, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("points", src.NumPoints()))
	src.ForEachPoint(func(p geo.GeoPoint) {
		rt.Insert(p)
	})
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Insert(p geo.GeoPoint) {
	pos := [2]float64{p.GetLon(), p.GetLat()}
	rt.tr.Insert(pos, pos, p)
	rt.size++
}

func (rt *Rtree) Size() int {
	return rt.size
}

// SearchWithinRadius returns every point inside the bounding box of the circle of radius (km) around (qLat, qLon).
// the box corners lie on the diagonals, radius*sqrt(2) away.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []geo.GeoPoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius*math.Sqrt2)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius*math.Sqrt2)

	results := make([]geo.GeoPoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data geo.GeoPoint) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestPoint returns the point closest (great-circle) to (qLat, qLon) that lies within radius km, ok=false if none.
func (rt *Rtree) NearestPoint(qLat, qLon, radius float64) (geo.GeoPoint, float64, bool) {
	var (
		best     geo.GeoPoint
		bestDist = radius
		found    bool
	)
	for _, p := range rt.SearchWithinRadius(qLat, qLon, radius) {
		dist := geo.CalculateHaversineDistance(qLat, qLon, p.GetLat(), p.GetLon())
		if dist <= bestDist {
			best, bestDist, found = p, dist, true
		}
	}
	return best, bestDist, found
}
