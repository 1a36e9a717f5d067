package controllers

import (
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/http/usecases"
	"github.com/lintang-b-s/tourguide/pkg/stops"
)

type TourService interface {
	PoiNames() []string
	PoiLocation(poi string) (geo.GeoPoint, error)
	Route(fromPoi, toPoi string) (usecases.Route, error)
	Nearest(lat, lon float64) (geo.GeoPoint, float64, error)
	GenerateTour(tourStops []stops.Stop) (usecases.Tour, error)
}
