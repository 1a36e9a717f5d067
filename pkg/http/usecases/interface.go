package usecases

import (
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/guidance"
)

type TourEngine interface {
	PoiNames() []string
	GetPoiLocation(poi string) (geo.GeoPoint, bool)
	RouteWithStats(start, goal geo.GeoPoint) ([]geo.GeoPoint, float64, int)
	GenerateTour(stops guidance.Stops) []da.TourCommand
	NearestPoint(lat, lon, radius float64) (geo.GeoPoint, float64, bool)
}
