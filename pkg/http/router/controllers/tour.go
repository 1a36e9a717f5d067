package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/tourguide/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type tourAPI struct {
	tourService TourService
	log         *zap.Logger
}

func New(tourService TourService, log *zap.Logger) *tourAPI {
	return &tourAPI{
		tourService: tourService,
		log:         log,
	}
}

func (api *tourAPI) Routes(group *helper.RouteGroup) {
	group.GET("/pois", api.poiNames)
	group.GET("/pois/:name", api.poiLocation)
	group.GET("/route", api.route)
	group.GET("/nearest", api.nearest)
	group.POST("/tour", api.generateTour)
}

// poiNames
//
//	@Summary	every point of interest name, sorted
//	@Tags		pois
//	@Produce	json
//	@Success	200	{object}	map[string][]string
//	@Router		/pois [get]
func (api *tourAPI) poiNames(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := writeJSON(w, http.StatusOK, envelope{"data": api.tourService.PoiNames()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// poiLocation
//
//	@Summary	location of a point of interest
//	@Tags		pois
//	@Produce	json
//	@Param		name	path		string	true	"point of interest name"
//	@Success	200		{object}	poiResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/pois/{name} [get]
func (api *tourAPI) poiLocation(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	name := p.ByName("name")
	loc, err := api.tourService.PoiLocation(name)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewPoiResponse(name, loc)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// route
//
//	@Summary	walking route between two points of interest
//	@Tags		routing
//	@Produce	json
//	@Param		from	query		string	true	"origin point of interest"
//	@Param		to		query		string	true	"destination point of interest"
//	@Success	200		{object}	routeResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/route [get]
func (api *tourAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	from, to := query.Get("from"), query.Get("to")
	if from == "" || to == "" {
		api.BadRequestResponse(w, r, errors.New("from and to are required"))
		return
	}

	route, err := api.tourService.Route(from, to)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(route)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// nearest
//
//	@Summary	street graph point nearest to a coordinate
//	@Tags		routing
//	@Produce	json
//	@Param		lat	query		number	true	"latitude"
//	@Param		lon	query		number	true	"longitude"
//	@Success	200	{object}	nearestResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/nearest [get]
func (api *tourAPI) nearest(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestRequest
		err     error
	)

	query := r.URL.Query()
	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	point, dist, err := api.tourService.Nearest(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	resp := nearestResponse{Lat: point.GetLat(), Lon: point.GetLon(), Dist: dist}
	if err := writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// generateTour
//
//	@Summary	turn-by-turn tour through a list of stops
//	@Tags		tour
//	@Accept		json
//	@Produce	json
//	@Param		body	body		tourRequest	true	"stops"
//	@Success	200		{object}	tourResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	422		{object}	errorResponse
//	@Router		/tour [post]
func (api *tourAPI) generateTour(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request tourRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	tour, err := api.tourService.GenerateTour(request.ToStops())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"data": NewTourResponse(tour)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
