package guidance

import (
	"github.com/lintang-b-s/tourguide/pkg"
	"github.com/lintang-b-s/tourguide/pkg/geo"
)

/*
getCompassDirection. bucket the angle of the line a->b into 45° sectors:

	[0, 22.5)      east
	[22.5, 67.5)   northeast
	[67.5, 112.5)  north
	[112.5, 157.5) northwest
	[157.5, 202.5) west
	[202.5, 247.5) southwest
	[247.5, 292.5) south
	[292.5, 337.5) southeast
	[337.5, 360)   east
*/
func getCompassDirection(a, b geo.GeoPoint) pkg.CompassDirection {
	return compassDirectionOfAngle(geo.AngleOfLine(a, b))
}

func compassDirectionOfAngle(angle float64) pkg.CompassDirection {
	switch {
	case angle < 22.5:
		return pkg.EAST
	case angle < 67.5:
		return pkg.NORTHEAST
	case angle < 112.5:
		return pkg.NORTH
	case angle < 157.5:
		return pkg.NORTHWEST
	case angle < 202.5:
		return pkg.WEST
	case angle < 247.5:
		return pkg.SOUTHWEST
	case angle < 292.5:
		return pkg.SOUTH
	case angle < 337.5:
		return pkg.SOUTHEAST
	default:
		return pkg.EAST
	}
}

// getTurnType. turning angle in [1, 180) is a left turn, [180, 359] a right turn, anything else is not announced.
func getTurnType(turningAngle float64) pkg.TurnType {
	switch {
	case turningAngle >= 1 && turningAngle < 180:
		return pkg.LEFT_TURN
	case turningAngle >= 180 && turningAngle <= 359:
		return pkg.RIGHT_TURN
	default:
		return pkg.NONE
	}
}
