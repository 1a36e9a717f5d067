package pkg

const (
	INF_WEIGHT float64 = 1e15

	// street name of the spur between a segment midpoint and one of its points of interest
	FOOTPATH_STREET_NAME = "a path"

	DEFAULT_MAX_LOAD_FACTOR = 0.75
	DEFAULT_HASHMAP_BUCKETS = 10

	// synthetic points (midpoints) are keyed with this many digits after the decimal point
	COORDINATE_PRECISION = 6

	MILES_PER_KM = 1 / 1.609344
)

const (
	DEBUG = false
)

type CompassDirection uint8

// 45° sectors centered on the cardinal/intercardinal directions, counter-clockwise from east
const (
	EAST CompassDirection = iota
	NORTHEAST
	NORTH
	NORTHWEST
	WEST
	SOUTHWEST
	SOUTH
	SOUTHEAST
)

func (d CompassDirection) String() string {
	switch d {
	case EAST:
		return "east"
	case NORTHEAST:
		return "northeast"
	case NORTH:
		return "north"
	case NORTHWEST:
		return "northwest"
	case WEST:
		return "west"
	case SOUTHWEST:
		return "southwest"
	case SOUTH:
		return "south"
	case SOUTHEAST:
		return "southeast"
	default:
		return "unknown"
	}
}

// enum of turn_type
type TurnType uint8

const (
	LEFT_TURN TurnType = iota
	RIGHT_TURN
	NONE
)

func (t TurnType) String() string {
	switch t {
	case LEFT_TURN:
		return "left"
	case RIGHT_TURN:
		return "right"
	default:
		return ""
	}
}
