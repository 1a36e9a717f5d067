package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/tourguide/pkg"
	"github.com/lintang-b-s/tourguide/pkg/util"
)

const (
	earthRadiusKM = 6371.0
)

// DistanceEarthKm. great-circle distance in km
func DistanceEarthKm(a, b GeoPoint) float64 {
	return CalculateHaversineDistance(a.GetLat(), a.GetLon(), b.GetLat(), b.GetLon())
}

func DistanceEarthMiles(a, b GeoPoint) float64 {
	return DistanceEarthKm(a, b) * pkg.MILES_PER_KM
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	p1 := s2.LatLngFromDegrees(latOne, longOne)
	p2 := s2.LatLngFromDegrees(latTwo, longTwo)
	return p1.Distance(p2).Radians() * earthRadiusKM
}

// ManhattanDegrees. |Δlat| + |Δlon| in degrees, the A* estimate of the remaining cost.
func ManhattanDegrees(p, goal GeoPoint) float64 {
	return math.Abs(p.GetLat()-goal.GetLat()) + math.Abs(p.GetLon()-goal.GetLon())
}

// MidPoint. coordinate-wise mean of a and b, keyed with fixed precision.
func MidPoint(a, b GeoPoint) GeoPoint {
	return NewGeoPointFromDegrees((a.GetLat()+b.GetLat())/2, (a.GetLon()+b.GetLon())/2)
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return util.RadiansToDegree(lat2), normalizeLongitude(util.RadiansToDegree(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}
