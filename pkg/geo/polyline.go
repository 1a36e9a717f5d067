package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromPoints encodes points as a google encoded polyline (lat, lon order).
func PolylineFromPoints(points []GeoPoint) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.GetLat(), p.GetLon()}
	}
	return string(polyline.EncodeCoords(coords))
}
