package geo

import (
	"strconv"

	"github.com/lintang-b-s/tourguide/pkg"
)

// GeoPoint is identified by the decimal text of its coordinates, exactly as it was read. The parsed float values are
// only used for distance and angle math.
type GeoPoint struct {
	sLat string
	sLon string
	lat  float64
	lon  float64
}

// NewGeoPoint keeps lat/lon text verbatim as the point identity. Unparseable text yields 0 for the numeric form.
func NewGeoPoint(lat, lon string) GeoPoint {
	fLat, _ := strconv.ParseFloat(lat, 64)
	fLon, _ := strconv.ParseFloat(lon, 64)
	return GeoPoint{
		sLat: lat,
		sLon: lon,
		lat:  fLat,
		lon:  fLon,
	}
}

// NewGeoPointFromDegrees formats lat/lon with fixed precision, the form used by synthetic points.
func NewGeoPointFromDegrees(lat, lon float64) GeoPoint {
	return NewGeoPoint(formatDegree(lat), formatDegree(lon))
}

func formatDegree(deg float64) string {
	return strconv.FormatFloat(deg, 'f', pkg.COORDINATE_PRECISION, 64)
}

func (p GeoPoint) GetLat() float64 {
	return p.lat
}

func (p GeoPoint) GetLon() float64 {
	return p.lon
}

func (p GeoPoint) GetLatText() string {
	return p.sLat
}

func (p GeoPoint) GetLonText() string {
	return p.sLon
}

// Key is the identity of the point, used as map key everywhere.
func (p GeoPoint) Key() string {
	return p.sLat + "," + p.sLon
}

func (p GeoPoint) String() string {
	return p.Key()
}

func (p GeoPoint) Equal(other GeoPoint) bool {
	return p.sLat == other.sLat && p.sLon == other.sLon
}

func (p GeoPoint) IsZero() bool {
	return p.sLat == "" && p.sLon == ""
}

// EdgeKey keys the ordered pair (a, b).
func EdgeKey(a, b GeoPoint) string {
	return a.Key() + b.Key()
}
