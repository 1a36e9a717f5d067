package controllers

import (
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/geo"
	"github.com/lintang-b-s/tourguide/pkg/guidance"
	"github.com/lintang-b-s/tourguide/pkg/http/usecases"
	"github.com/lintang-b-s/tourguide/pkg/stops"
	"github.com/lintang-b-s/tourguide/pkg/util"
)

type coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func newCoordinate(p geo.GeoPoint) coordinate {
	return coordinate{Lat: p.GetLat(), Lon: p.GetLon()}
}

type poiResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func NewPoiResponse(name string, p geo.GeoPoint) poiResponse {
	return poiResponse{Name: name, Lat: p.GetLat(), Lon: p.GetLon()}
}

type routeResponse struct {
	Path     []coordinate `json:"path"`
	Polyline string       `json:"polyline"`
	Dist     float64      `json:"distance_miles"`
	Settled  int          `json:"settled"`
}

func NewRouteResponse(route usecases.Route) routeResponse {
	path := make([]coordinate, len(route.Path))
	for i, p := range route.Path {
		path[i] = newCoordinate(p)
	}
	return routeResponse{
		Path:     path,
		Polyline: route.Polyline,
		Dist:     util.RoundFloat(route.Distance, 6),
		Settled:  route.Settled,
	}
}

type nearestRequest struct {
	Lat float64 `validate:"min=-90,max=90"`
	Lon float64 `validate:"min=-180,max=180"`
}

type nearestResponse struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Dist float64 `json:"distance_km"`
}

type stopRequest struct {
	Name       string `json:"name" validate:"required"`
	Commentary string `json:"commentary"`
}

type tourRequest struct {
	Stops []stopRequest `json:"stops" validate:"required,min=1,dive"`
}

func (r tourRequest) ToStops() []stops.Stop {
	out := make([]stops.Stop, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = stops.Stop{Poi: s.Name, Commentary: s.Commentary}
	}
	return out
}

type tourCommandResponse struct {
	Type       string      `json:"type"`
	Poi        string      `json:"poi,omitempty"`
	Commentary string      `json:"commentary,omitempty"`
	Direction  string      `json:"direction,omitempty"`
	Street     string      `json:"street,omitempty"`
	Dist       float64     `json:"distance_miles,omitempty"`
	From       *coordinate `json:"from,omitempty"`
	To         *coordinate `json:"to,omitempty"`
}

func NewTourCommandResponse(cmd da.TourCommand) tourCommandResponse {
	resp := tourCommandResponse{
		Type:       cmd.GetCommandType().String(),
		Poi:        cmd.GetPoi(),
		Commentary: cmd.GetCommentary(),
		Direction:  cmd.GetDirection(),
		Street:     cmd.GetStreet(),
	}
	if cmd.GetCommandType() == da.PROCEED {
		from, to := newCoordinate(cmd.GetFrom()), newCoordinate(cmd.GetTo())
		resp.Dist = cmd.GetDistance()
		resp.From, resp.To = &from, &to
	}
	return resp
}

type tourStepResponse struct {
	Type       string  `json:"type"`
	Poi        string  `json:"poi,omitempty"`
	Commentary string  `json:"commentary,omitempty"`
	Direction  string  `json:"direction,omitempty"`
	Street     string  `json:"street,omitempty"`
	Dist       float64 `json:"distance_miles,omitempty"`
}

type tourResponse struct {
	Commands []tourCommandResponse `json:"commands"`
	Steps    []tourStepResponse    `json:"steps"`
	Dist     float64               `json:"total_distance_miles"`
}

func NewTourResponse(tour usecases.Tour) tourResponse {
	resp := tourResponse{
		Commands: make([]tourCommandResponse, len(tour.Commands)),
		Steps:    newTourSteps(tour.Summary),
		Dist:     util.RoundFloat(tour.Summary.TotalDistance, 6),
	}
	for i, cmd := range tour.Commands {
		resp.Commands[i] = NewTourCommandResponse(cmd)
	}
	return resp
}

func newTourSteps(summary guidance.TourSummary) []tourStepResponse {
	steps := make([]tourStepResponse, len(summary.Steps))
	for i, s := range summary.Steps {
		steps[i] = tourStepResponse{
			Type:       s.CommandType.String(),
			Poi:        s.Poi,
			Commentary: s.Commentary,
			Direction:  s.Direction,
			Street:     s.Street,
			Dist:       s.Distance,
		}
	}
	return steps
}
