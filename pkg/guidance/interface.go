package guidance

import (
	"github.com/lintang-b-s/tourguide/pkg/geo"
)

type GeoDatabase interface {
	GetPoiLocation(poi string) (geo.GeoPoint, bool)
	GetStreetName(a, b geo.GeoPoint) string
}

type Router interface {
	Route(start, goal geo.GeoPoint) []geo.GeoPoint
}

// Stops is the ordered list of tour stops. GetPoiData returns ok=false when i is out of range.
type Stops interface {
	Size() int
	GetPoiData(i int) (poi string, commentary string, ok bool)
}
