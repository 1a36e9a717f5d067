package guidance

import (
	"github.com/lintang-b-s/tourguide/pkg"
	da "github.com/lintang-b-s/tourguide/pkg/datastructure"
	"github.com/lintang-b-s/tourguide/pkg/geo"
)

// TourGenerator turns a list of stops into commentary, proceed and turn commands.
type TourGenerator struct {
	db     GeoDatabase
	router Router
}

func NewTourGenerator(db GeoDatabase, router Router) *TourGenerator {
	return &TourGenerator{
		db:     db,
		router: router,
	}
}

// GenerateTour returns the commands of the whole tour, or an empty slice if any stop is unknown or any two consecutive
// stops are not connected.
func (tg *TourGenerator) GenerateTour(stops Stops) []da.TourCommand {
	commands := make([]da.TourCommand, 0)

	for i := 0; i < stops.Size(); i++ {
		poi, commentary, ok := stops.GetPoiData(i)
		if !ok {
			break
		}
		commands = append(commands, da.NewCommentaryCommand(poi, commentary))

		nextPoi, _, ok := stops.GetPoiData(i + 1)
		if !ok {
			return commands
		}

		from, ok := tg.db.GetPoiLocation(poi)
		if !ok {
			return []da.TourCommand{}
		}
		to, ok := tg.db.GetPoiLocation(nextPoi)
		if !ok {
			return []da.TourCommand{}
		}

		route := tg.router.Route(from, to)
		if len(route) == 0 {
			return []da.TourCommand{}
		}

		commands = append(commands, tg.buildRouteCommands(route)...)
	}

	return commands
}

/*
buildRouteCommands. one proceed command per edge of the route. a turn command is added between two edges when the
street name changes and the turning angle at the shared point is within [1°, 359°]:

	route[j] ---firstStreet---> route[j+1]
	                                |
	                           secondStreet
	                                |
	                                v
	                            route[j+2]
*/
func (tg *TourGenerator) buildRouteCommands(route []geo.GeoPoint) []da.TourCommand {
	commands := make([]da.TourCommand, 0, len(route))

	for j := 0; j+1 < len(route); j++ {
		firstStreet := tg.db.GetStreetName(route[j], route[j+1])
		distance := geo.DistanceEarthMiles(route[j], route[j+1])
		direction := getCompassDirection(route[j], route[j+1])

		commands = append(commands, da.NewProceedCommand(direction.String(), firstStreet, distance,
			route[j], route[j+1]))

		if j+2 >= len(route) {
			continue
		}

		secondStreet := tg.db.GetStreetName(route[j+1], route[j+2])
		if firstStreet == secondStreet {
			continue
		}
		turnType := getTurnType(geo.AngleOfTurn(route[j], route[j+1], route[j+2]))
		if turnType == pkg.NONE {
			continue
		}
		commands = append(commands, da.NewTurnCommand(turnType.String(), secondStreet))
	}

	return commands
}
