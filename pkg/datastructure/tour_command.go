package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/tourguide/pkg/geo"
)

type CommandType uint8

const (
	COMMENTARY CommandType = iota
	PROCEED
	TURN
)

func (c CommandType) String() string {
	switch c {
	case COMMENTARY:
		return "commentary"
	case PROCEED:
		return "proceed"
	case TURN:
		return "turn"
	default:
		return "invalid"
	}
}

// TourCommand is one of: commentary about a stop, proceeding along one edge of a route, or a turn onto a street.
type TourCommand struct {
	commandType CommandType
	poi         string
	commentary  string
	direction   string
	street      string
	distance    float64
	from        geo.GeoPoint
	to          geo.GeoPoint
}

func NewCommentaryCommand(poi, commentary string) TourCommand {
	return TourCommand{
		commandType: COMMENTARY,
		poi:         poi,
		commentary:  commentary,
	}
}

// NewProceedCommand. distance in miles
func NewProceedCommand(direction, street string, distance float64, from, to geo.GeoPoint) TourCommand {
	return TourCommand{
		commandType: PROCEED,
		direction:   direction,
		street:      street,
		distance:    distance,
		from:        from,
		to:          to,
	}
}

func NewTurnCommand(direction, street string) TourCommand {
	return TourCommand{
		commandType: TURN,
		direction:   direction,
		street:      street,
	}
}

func (tc TourCommand) GetCommandType() CommandType {
	return tc.commandType
}

func (tc TourCommand) GetPoi() string {
	return tc.poi
}

func (tc TourCommand) GetCommentary() string {
	return tc.commentary
}

func (tc TourCommand) GetDirection() string {
	return tc.direction
}

func (tc TourCommand) GetStreet() string {
	return tc.street
}

func (tc TourCommand) GetDistance() float64 {
	return tc.distance
}

func (tc TourCommand) GetFrom() geo.GeoPoint {
	return tc.from
}

func (tc TourCommand) GetTo() geo.GeoPoint {
	return tc.to
}

func (tc TourCommand) String() string {
	switch tc.commandType {
	case COMMENTARY:
		return fmt.Sprintf("commentary %s: %s", tc.poi, tc.commentary)
	case PROCEED:
		return fmt.Sprintf("proceed %.3f miles %s on %s (%s -> %s)", tc.distance, tc.direction, tc.street, tc.from, tc.to)
	case TURN:
		return fmt.Sprintf("turn %s on %s", tc.direction, tc.street)
	default:
		return "invalid command"
	}
}
