package routing

import (
	"github.com/lintang-b-s/tourguide/pkg/geo"
)

// Graph is the connectivity the router searches over.
type Graph interface {
	GetConnectedPoints(p geo.GeoPoint) []geo.GeoPoint
}
