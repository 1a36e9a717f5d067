package usecases

import (
	"errors"

	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/guidance"
	"github.com/lintang-b-s/tourguide/pkg/stops"
	"github.com/lintang-b-s/tourguide/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrPoiNotFound     = errors.New("point of interest not found")
	ErrPathNotFound    = errors.New("path not found")
	ErrNoNearbyPoint   = errors.New("no street point nearby")
	ErrTourUnavailable = errors.New("tour can not be generated")
)

type Route struct {
	Path     []geo.GeoPoint
	Polyline string
	Distance float64 // miles
	Settled  int
}

type Tour struct {
	Commands []da.TourCommand
	Summary  guidance.TourSummary
}

type TourService struct {
	log          *zap.Logger
	engine       TourEngine
	searchRadius float64
}

func NewTourService(log *zap.Logger, engine TourEngine, searchRadius float64) *TourService {
	return &TourService{
		log:          log,
		engine:       engine,
		searchRadius: searchRadius,
	}
}

func (ts *TourService) PoiNames() []string {
	return ts.engine.PoiNames()
}

func (ts *TourService) PoiLocation(poi string) (geo.GeoPoint, error) {
	loc, ok := ts.engine.GetPoiLocation(poi)
	if !ok {
		return geo.GeoPoint{}, util.WrapErrorf(ErrPoiNotFound, util.ErrNotFound, "unknown point of interest %q", poi)
	}
	return loc, nil
}

func (ts *TourService) Route(fromPoi, toPoi string) (Route, error) {
	from, err := ts.PoiLocation(fromPoi)
	if err != nil {
		return Route{}, err
	}
	to, err := ts.PoiLocation(toPoi)
	if err != nil {
		return Route{}, err
	}

	path, dist, settled := ts.engine.RouteWithStats(from, to)
	if len(path) == 0 {
		return Route{}, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no path found from %q to %q",
			fromPoi, toPoi)
	}

	return Route{
		Path:     path,
		Polyline: geo.PolylineFromPoints(path),
		Distance: dist,
		Settled:  settled,
	}, nil
}

// Nearest returns the graph point nearest to (lat, lon) and its distance in km.
func (ts *TourService) Nearest(lat, lon float64) (geo.GeoPoint, float64, error) {
	p, dist, ok := ts.engine.NearestPoint(lat, lon, ts.searchRadius)
	if !ok {
		return geo.GeoPoint{}, 0, util.WrapErrorf(ErrNoNearbyPoint, util.ErrNotFound,
			"no street point within %.3f km of %f,%f", ts.searchRadius, lat, lon)
	}
	return p, dist, nil
}

func (ts *TourService) GenerateTour(tourStops []stops.Stop) (Tour, error) {
	commands := ts.engine.GenerateTour(stops.NewStops(tourStops))
	if len(commands) == 0 {
		return Tour{}, util.WrapErrorf(ErrTourUnavailable, util.ErrUnprocessable,
			"a stop is unknown or two consecutive stops are not connected")
	}

	ts.log.Debug("tour generated", zap.Int("stops", len(tourStops)), zap.Int("commands", len(commands)))
	return Tour{
		Commands: commands,
		Summary:  guidance.Summarize(commands),
	}, nil
}
